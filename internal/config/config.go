// Package config persists user settings: favorites, hidden apps, per-game
// account assignments, and the close-after policy. The core never writes
// these directly; it exposes plain account and app-id values and this
// package stores them under its own scheme.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgFile       = "relog.toml"
)

// Close-after policies: whether the host exits once the client has been
// relaunched.
const (
	CloseNone   = "none"
	CloseLogin  = "login"
	CloseLaunch = "launch"
	CloseBoth   = "both"
)

type Values struct {
	Launch       Launch  `toml:"launch,omitempty"`
	Steam        Steam   `toml:"steam,omitempty"`
	Library      Library `toml:"library,omitempty"`
	ConfigSchema int     `toml:"config_schema"`
	DebugLogging bool    `toml:"debug_logging"`
}

type Steam struct {
	// InstallDir overrides registry-based Steam discovery when set.
	InstallDir string `toml:"install_dir,omitempty"`
}

type Library struct {
	Favorites []int `toml:"favorites,omitempty"`
	Hidden    []int `toml:"hidden,omitempty"`
}

type Launch struct {
	GameAccounts map[string]string `toml:"game_accounts,omitempty"`
	CloseAfter   string            `toml:"close_after,omitempty"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Launch: Launch{
		CloseAfter: CloseNone,
	},
}

// Instance is a mutex-guarded view of the persisted settings file.
type Instance struct {
	vals Values
	path string
	mu   sync.RWMutex
}

// DefaultDir returns the per-user settings directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "relog"), nil
}

// NewConfig loads the settings file under configDir, creating it with
// defaults on first run.
//
//nolint:gocritic // defaults copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfg := &Instance{
		path: filepath.Join(configDir, CfgFile),
		vals: defaults,
	}

	if _, err := os.Stat(cfg.path); os.IsNotExist(err) {
		log.Info().Str("path", cfg.path).Msg("saving new default config to disk")
		if err := cfg.Save(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if err := cfg.Load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load rereads the settings file from disk.
func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &c.vals); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// Save writes the current settings to disk.
func (c *Instance) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := toml.Marshal(c.vals)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SteamInstallDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Steam.InstallDir
}

func (c *Instance) Favorites() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]int, len(c.vals.Library.Favorites))
	copy(out, c.vals.Library.Favorites)
	return out
}

func (c *Instance) IsFavorite(appID int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return contains(c.vals.Library.Favorites, appID)
}

// SetFavorite adds or removes an app from the favorites set.
func (c *Instance) SetFavorite(appID int, favorite bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Library.Favorites = setMembership(c.vals.Library.Favorites, appID, favorite)
}

func (c *Instance) IsHidden(appID int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return contains(c.vals.Library.Hidden, appID)
}

// SetHidden adds or removes an app from the hidden set.
func (c *Instance) SetHidden(appID int, hidden bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Library.Hidden = setMembership(c.vals.Library.Hidden, appID, hidden)
}

// GameAccount returns the account name assigned to launch the app.
func (c *Instance) GameAccount(appID int) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, ok := c.vals.Launch.GameAccounts[strconv.Itoa(appID)]
	return name, ok
}

// SetGameAccount assigns the account used to launch the app.
func (c *Instance) SetGameAccount(appID int, account string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.vals.Launch.GameAccounts == nil {
		c.vals.Launch.GameAccounts = make(map[string]string)
	}
	c.vals.Launch.GameAccounts[strconv.Itoa(appID)] = account
}

func (c *Instance) CloseAfter() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Launch.CloseAfter == "" {
		return CloseNone
	}
	return c.vals.Launch.CloseAfter
}

func (c *Instance) SetCloseAfter(policy string) error {
	switch policy {
	case CloseNone, CloseLogin, CloseLaunch, CloseBoth:
	default:
		return fmt.Errorf("unknown close-after policy: %q", policy)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Launch.CloseAfter = policy
	return nil
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func setMembership(ids []int, id int, member bool) []int {
	if member {
		if contains(ids, id) {
			return ids
		}
		return append(ids, id)
	}
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
