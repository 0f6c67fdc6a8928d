package steam

import (
	"errors"
	"fmt"

	"relog/internal/registry"
)

// CurrentUser resolves the client's persisted auto-login username against
// the discovered account cache. DiscoverAccounts must have run first.
// Returns ErrAccountNotFound when the value was never written or matches
// no cached account; callers fall back to the first discovered account.
func (m *Model) CurrentUser() (Account, error) {
	name, err := m.store.GetString(registryRoot, "AutoLoginUser")
	if errors.Is(err, registry.ErrNotExist) {
		return Account{}, fmt.Errorf("%w: no auto-login user persisted", ErrAccountNotFound)
	}
	if err != nil {
		return Account{}, fmt.Errorf("read auto-login user: %w", err)
	}
	return m.AccountByName(name)
}

// RememberPassword reads the client's remember-password flag.
func (m *Model) RememberPassword() (bool, error) {
	val, err := m.store.GetDWord(registryRoot, "RememberPassword")
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read remember-password flag: %w", err)
	}
	return val == 1, nil
}

// SetLoginAccount persists the account as the client's auto-login identity.
// Returns ErrAlreadyLoggedIn when the account is already persisted, so
// callers can skip a pointless client restart. RememberPassword is forced
// on: the client must not prompt interactively on the following start.
func (m *Model) SetLoginAccount(account Account) error {
	current, err := m.store.GetString(registryRoot, "AutoLoginUser")
	if err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("read auto-login user: %w", err)
	}
	if current == account.Name {
		return ErrAlreadyLoggedIn
	}

	if err := m.store.SetString(registryRoot, "AutoLoginUser", account.Name); err != nil {
		return fmt.Errorf("write auto-login user: %w", err)
	}
	if err := m.store.SetDWord(registryRoot, "RememberPassword", 1); err != nil {
		return fmt.Errorf("write remember-password flag: %w", err)
	}

	// Clear the stale session markers so the client rereads its config on
	// the next start. Best effort; older clients lack these values.
	_ = m.store.SetDWord(registryRoot, "Offline", 0)
	_ = m.store.SetDWord(registryRoot+`\ActiveProcess`, "ActiveUser", 0)
	_ = m.store.SetDWord(registryRoot+`\ActiveProcess`, "pid", 0)

	return nil
}
