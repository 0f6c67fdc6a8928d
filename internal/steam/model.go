// Package steam owns the parsed view of a local Steam installation: saved
// logins, installed apps with their manifests, library folders, and the
// persisted auto-login state.
package steam

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"relog/internal/keyvalues"
	"relog/internal/registry"
)

// registryRoot is the Steam client's key under the current user hive.
const registryRoot = `Software\Valve\Steam`

// Model aggregates everything discovered from a Steam install. Discovery
// rebuilds each cache wholesale and swaps it in atomically; nothing mutates
// the caches field-by-field, so reads need no locking.
type Model struct {
	store     registry.Store
	apps      map[int]App
	manifests map[int]keyvalues.Object
	folders   map[string][]int
	path      string
	accounts  []Account
}

// NewModel opens the Steam installation at installDir, or resolves the
// install path from the registry when installDir is empty.
func NewModel(store registry.Store, installDir string) (*Model, error) {
	path := installDir
	if path == "" {
		var err error
		path, err = installPath(store)
		if err != nil {
			return nil, err
		}
	}
	return &Model{
		store:     store,
		path:      path,
		apps:      make(map[int]App),
		manifests: make(map[int]keyvalues.Object),
		folders:   make(map[string][]int),
	}, nil
}

// installPath reads SteamPath from the registry. The client stores it with
// forward slashes.
func installPath(store registry.Store) (string, error) {
	path, err := store.GetString(registryRoot, "SteamPath")
	if err != nil {
		return "", fmt.Errorf("resolve steam install path: %w", err)
	}
	return filepath.Clean(strings.ReplaceAll(path, "/", string(filepath.Separator))), nil
}

// Path returns the Steam install root.
func (m *Model) Path() string { return m.path }

// Accounts returns discovered accounts in discovery order.
func (m *Model) Accounts() []Account { return m.accounts }

// AccountByName looks up a discovered account by its login name.
func (m *Model) AccountByName(name string) (Account, error) {
	for _, acc := range m.accounts {
		if acc.Name == name {
			return acc, nil
		}
	}
	return Account{}, fmt.Errorf("%w: %q", ErrAccountNotFound, name)
}

// Apps returns installed apps sorted by id.
func (m *Model) Apps() []App {
	apps := make([]App, 0, len(m.apps))
	for _, app := range m.apps {
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].ID < apps[j].ID })
	return apps
}

// App looks up one installed app by id.
func (m *Model) App(appID int) (App, bool) {
	app, ok := m.apps[appID]
	return app, ok
}

// Manifest returns the parsed install manifest owned by the given app.
func (m *Model) Manifest(appID int) (keyvalues.Object, bool) {
	manifest, ok := m.manifests[appID]
	return manifest, ok
}

// LibraryFolders maps each discovered library root to the app ids it holds.
func (m *Model) LibraryFolders() map[string][]int {
	return m.folders
}
