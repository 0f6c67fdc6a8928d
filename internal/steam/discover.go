package steam

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"relog/internal/keyvalues"
)

var numericKey = regexp.MustCompile(`^[0-9]+$`)

// DiscoverAccounts rebuilds the account cache from config/loginusers.vdf
// and each account's userdata localconfig.vdf. A malformed entry is logged
// and skipped; a missing required file aborts the whole rebuild and leaves
// the previous cache in place.
func (m *Model) DiscoverAccounts() ([]Account, error) {
	loginusersPath := filepath.Join(m.path, "config", "loginusers.vdf")
	users, err := keyvalues.ParseFile(loginusersPath)
	if err != nil {
		return nil, &DiscoveryError{Path: loginusersPath, Err: err}
	}

	// Sort by SteamID64 so discovery order, and with it the fallback
	// account, is stable across runs.
	keys := make([]string, 0, len(users))
	for key := range users {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	accounts := make([]Account, 0, len(keys))
	for _, key := range keys {
		entry, ok := users[key].(keyvalues.Object)
		if !ok {
			log.Warn().Str("key", key).Msg("loginusers entry is not an object, skipping")
			continue
		}

		name, _ := keyvalues.GetString(entry, "AccountName")
		if name == "" {
			log.Warn().Str("key", key).Msg("loginusers entry has no AccountName, skipping")
			continue
		}

		id64, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			log.Warn().Str("key", key).Msg("loginusers key is not a SteamID64, skipping")
			continue
		}
		id := SteamIDFrom64(id64)

		games, err := m.accountGames(id)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, Account{
			Name:  name,
			ID:    &id,
			Games: games,
		})
	}

	m.accounts = accounts
	return accounts, nil
}

// accountGames extracts the app-ownership table from an account's
// localconfig.vdf. The Valve/Steam path segments appear in two known
// casings in the wild; both are tried, and anything else degrades to an
// empty game set rather than failing the account.
func (m *Model) accountGames(id SteamID) (map[int]struct{}, error) {
	localconfigPath := filepath.Join(
		m.path, "userdata", strconv.FormatInt(id.ID3, 10), "config", "localconfig.vdf")
	if _, err := os.Stat(localconfigPath); err != nil {
		return nil, &DiscoveryError{Path: localconfigPath, Err: err}
	}

	localconfig, err := keyvalues.ParseFile(localconfigPath)
	if err != nil {
		return nil, &DiscoveryError{Path: localconfigPath, Err: err}
	}

	games := make(map[int]struct{})

	software, ok := keyvalues.GetObject(localconfig, "Software")
	if !ok {
		log.Warn().Int64("id3", id.ID3).Msg("localconfig has no Software table")
		return games, nil
	}
	valve, ok := firstObject(software, "Valve", "valve")
	if !ok {
		log.Warn().Int64("id3", id.ID3).Msg("localconfig has no Valve table")
		return games, nil
	}
	steamTable, ok := firstObject(valve, "Steam", "steam")
	if !ok {
		log.Warn().Int64("id3", id.ID3).Msg("localconfig has no Steam table")
		return games, nil
	}
	apps, ok := keyvalues.GetObject(steamTable, "apps")
	if !ok {
		return games, nil
	}

	for key := range apps {
		appID, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		games[appID] = struct{}{}
	}
	return games, nil
}

func firstObject(obj keyvalues.Object, keys ...string) (keyvalues.Object, bool) {
	for _, key := range keys {
		if nested, ok := keyvalues.GetObject(obj, key); ok {
			return nested, true
		}
	}
	return nil, false
}

// DiscoverInstalls rebuilds the installed-app caches from
// steamapps/libraryfolders.vdf and each library's appmanifest_*.acf files.
// The rebuild is atomic: on any error the previous caches survive intact.
func (m *Model) DiscoverInstalls() ([]App, error) {
	libfoldersPath := filepath.Join(m.path, "steamapps", "libraryfolders.vdf")
	libfolders, err := keyvalues.ParseFile(libfoldersPath)
	if err != nil {
		return nil, &DiscoveryError{Path: libfoldersPath, Err: err}
	}

	keys := make([]string, 0, len(libfolders))
	for key := range libfolders {
		if numericKey.MatchString(key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	apps := make(map[int]App)
	manifests := make(map[int]keyvalues.Object)
	folders := make(map[string][]int)

	for _, key := range keys {
		entry, ok := libfolders[key].(keyvalues.Object)
		if !ok {
			log.Warn().Str("key", key).Msg("library folder entry is not an object, skipping")
			continue
		}
		folderPath, ok := keyvalues.GetString(entry, "path")
		if !ok || folderPath == "" {
			log.Warn().Str("key", key).Msg("library folder has no path, skipping")
			continue
		}

		folderApps, _ := keyvalues.GetObject(entry, "apps")
		if len(folderApps) == 0 {
			log.Warn().Str("path", folderPath).Msg("library folder lists no apps, skipping")
			continue
		}
		ids := make([]int, 0, len(folderApps))
		for appKey := range folderApps {
			if appID, err := strconv.Atoi(appKey); err == nil {
				ids = append(ids, appID)
			}
		}
		sort.Ints(ids)
		folders[folderPath] = ids

		if err := scanManifests(folderPath, apps, manifests); err != nil {
			return nil, err
		}
	}

	m.apps = apps
	m.manifests = manifests
	m.folders = folders
	return m.Apps(), nil
}

// scanManifests parses every appmanifest .acf under a library folder into
// the staging maps. A manifest missing its appid is logged and skipped;
// manifests repeated across folders overwrite, last write wins.
func scanManifests(folderPath string, apps map[int]App, manifests map[int]keyvalues.Object) error {
	steamappsDir := filepath.Join(folderPath, "steamapps")
	entries, err := os.ReadDir(steamappsDir)
	if err != nil {
		return &DiscoveryError{Path: steamappsDir, Err: err}
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".acf" {
			continue
		}
		manifestPath := filepath.Join(steamappsDir, entry.Name())
		manifest, err := keyvalues.ParseFile(manifestPath)
		if err != nil {
			return &DiscoveryError{Path: manifestPath, Err: err}
		}

		idStr, _ := keyvalues.GetString(manifest, "appid")
		appID, err := strconv.Atoi(idStr)
		if err != nil {
			log.Warn().Str("path", manifestPath).Msg("manifest has no usable appid, skipping")
			continue
		}

		name, _ := keyvalues.GetString(manifest, "name")
		installDir, _ := keyvalues.GetString(manifest, "installdir")

		app := App{
			ID:         appID,
			Name:       name,
			InstallDir: filepath.Join(steamappsDir, "common", installDir),
		}
		if lastPlayed, ok := keyvalues.GetString(manifest, "LastPlayed"); ok {
			if secs, err := strconv.ParseInt(lastPlayed, 10, 64); err == nil && secs > 0 {
				app.LastPlayed = time.Unix(secs, 0)
			}
		}

		apps[appID] = app
		manifests[appID] = manifest
	}
	return nil
}
