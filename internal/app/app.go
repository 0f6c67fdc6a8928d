// Package app wires the Steam model, the persisted settings, and the
// process orchestrator together and implements the login and launch flows.
package app

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"relog/internal/config"
	"relog/internal/processes"
	"relog/internal/steam"
)

// Accounts is the slice of the Steam model the coordinator needs: the
// discovered account cache and the persisted auto-login state.
type Accounts interface {
	Accounts() []steam.Account
	AccountByName(name string) (steam.Account, error)
	CurrentUser() (steam.Account, error)
	SetLoginAccount(account steam.Account) error
}

// Client is the process control boundary around the Steam client.
type Client interface {
	Restart(args []string, exitHost bool) error
	Spawn(args ...string) error
}

// App owns all cross-component state: the settings instance, the library
// model, and the orchestrator. Nothing here is package-level; the context
// object is passed to whoever needs it.
type App struct {
	cfg      *config.Instance
	model    *steam.Model
	accounts Accounts
	client   Client
	open     func(url string) error
	exit     func(code int)
}

// New builds the application context around a discovered model.
func New(cfg *config.Instance, model *steam.Model, proc *processes.Orchestrator) *App {
	return &App{
		cfg:      cfg,
		model:    model,
		accounts: model,
		client:   proc,
		open:     openURL,
		exit:     os.Exit,
	}
}

// Model exposes the library model to the presentation layer.
func (a *App) Model() *steam.Model { return a.model }

// Config exposes the persisted settings instance.
func (a *App) Config() *config.Instance { return a.cfg }

// Login persists the account as the auto-login identity and restarts the
// client. When the account is already active there is nothing to do: the
// remember-password side effect happened on the earlier call, and a no-op
// restart would be wasted work.
func (a *App) Login(account steam.Account, exitAfter bool) error {
	err := a.accounts.SetLoginAccount(account)
	switch {
	case errors.Is(err, steam.ErrAlreadyLoggedIn):
		log.Info().Str("account", account.Name).Msg("already logged in, no restart needed")
		return nil
	case err != nil:
		return err
	}

	log.Info().Str("account", account.Name).Msg("switching login account")
	return a.client.Restart(nil, exitAfter)
}

// LaunchGame switches to the account and starts the app. If the account is
// already active the full exit/relaunch cycle is skipped and the client is
// asked to start the game directly. Any real failure from the account
// switch propagates unchanged; retrying is the caller's decision.
func (a *App) LaunchGame(account steam.Account, appID int, closeAfter bool) error {
	args := []string{"-noreactlogin", "-applaunch", strconv.Itoa(appID)}

	err := a.accounts.SetLoginAccount(account)
	switch {
	case errors.Is(err, steam.ErrAlreadyLoggedIn):
		log.Info().Str("account", account.Name).Int("appID", appID).
			Msg("account already active, launching directly")
		if err := a.client.Spawn(args...); err != nil {
			return err
		}
		if closeAfter {
			a.exit(0)
		}
		return nil
	case err != nil:
		return err
	}

	log.Info().Str("account", account.Name).Int("appID", appID).
		Msg("switching account and launching")
	return a.client.Restart(args, closeAfter)
}

// CurrentAccount resolves the active auto-login account, falling back to
// the first discovered account when the persisted name is absent or
// unknown. The fallback is deliberate: a stale registry value must not
// make the library unusable.
func (a *App) CurrentAccount() (steam.Account, error) {
	acc, err := a.accounts.CurrentUser()
	if err == nil {
		return acc, nil
	}
	if !errors.Is(err, steam.ErrAccountNotFound) {
		return steam.Account{}, err
	}

	all := a.accounts.Accounts()
	if len(all) == 0 {
		return steam.Account{}, fmt.Errorf("%w: no accounts discovered", steam.ErrAccountNotFound)
	}
	log.Warn().Msg("auto-login user not in account cache, falling back to first account")
	return all[0], nil
}

// GameAccount returns the account assigned to launch the app. On first
// reference the current account is assigned and persisted.
func (a *App) GameAccount(appID int) (steam.Account, error) {
	if name, ok := a.cfg.GameAccount(appID); ok {
		acc, err := a.accounts.AccountByName(name)
		if err == nil {
			return acc, nil
		}
		log.Warn().Str("account", name).Int("appID", appID).
			Msg("assigned account no longer exists, reassigning")
	}

	acc, err := a.CurrentAccount()
	if err != nil {
		return steam.Account{}, err
	}
	a.cfg.SetGameAccount(appID, acc.Name)
	if err := a.cfg.Save(); err != nil {
		log.Warn().Err(err).Msg("could not persist game account assignment")
	}
	return acc, nil
}

// AssignGameAccount overrides the account used to launch the app.
func (a *App) AssignGameAccount(appID int, accountName string) error {
	if _, err := a.accounts.AccountByName(accountName); err != nil {
		return err
	}
	a.cfg.SetGameAccount(appID, accountName)
	return a.cfg.Save()
}

// ToggleFavorite flips the favorite flag and reports the new state.
func (a *App) ToggleFavorite(appID int) (bool, error) {
	favorite := !a.cfg.IsFavorite(appID)
	a.cfg.SetFavorite(appID, favorite)
	return favorite, a.cfg.Save()
}

// SetHidden marks an app hidden from the library view, or unhides it.
func (a *App) SetHidden(appID int, hidden bool) error {
	a.cfg.SetHidden(appID, hidden)
	return a.cfg.Save()
}

// VisibleApps returns the library view: hidden apps removed, favorites
// first, each group sorted by name.
func (a *App) VisibleApps() []steam.App {
	var apps []steam.App
	for _, app := range a.model.Apps() {
		if !a.cfg.IsHidden(app.ID) {
			apps = append(apps, app)
		}
	}
	sort.SliceStable(apps, func(i, j int) bool {
		fi, fj := a.cfg.IsFavorite(apps[i].ID), a.cfg.IsFavorite(apps[j].ID)
		if fi != fj {
			return fi
		}
		return strings.ToLower(apps[i].Name) < strings.ToLower(apps[j].Name)
	})
	return apps
}

// StoreURL is the SteamDB details page for an app.
func (a *App) StoreURL(appID int) string {
	return "https://steamdb.info/app/" + strconv.Itoa(appID)
}

// OpenStorePage opens the app's SteamDB page in the default browser.
func (a *App) OpenStorePage(appID int) error {
	return a.open(a.StoreURL(appID))
}
