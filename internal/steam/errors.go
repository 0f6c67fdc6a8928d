package steam

import (
	"errors"
	"fmt"
)

// ErrAlreadyLoggedIn signals that the requested account is already the
// persisted auto-login account. It is an expected short-circuit condition,
// not a fault; callers use it to skip an unnecessary client restart.
var ErrAlreadyLoggedIn = errors.New("already logged in")

// ErrAccountNotFound is returned when a lookup does not match any
// discovered account. Callers recover by falling back to a default.
var ErrAccountNotFound = errors.New("account not found")

// DiscoveryError reports that a file required for account or install
// discovery is missing or unreadable. The discovery call that produced it
// left the previous model state untouched.
type DiscoveryError struct {
	Err  error
	Path string
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("steam: discovery failed at %s: %v", e.Path, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }
