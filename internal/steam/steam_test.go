package steam

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"relog/internal/registry"
)

// writeFile creates path (and parents) with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// fakeSteamRoot builds a minimal Steam install with one saved login.
func fakeSteamRoot(t *testing.T) (root string, id SteamID) {
	t.Helper()
	root = t.TempDir()
	id = SteamIDFrom64(76561198000000001)

	writeFile(t, filepath.Join(root, "config", "loginusers.vdf"),
		`"users"
{
	"76561198000000001"
	{
		"AccountName"		"alice"
		"PersonaName"		"Alice"
	}
}
`)
	writeFile(t, localconfigPath(root, id),
		`"UserLocalConfigStore"
{
	"Software"
	{
		"Valve"
		{
			"Steam"
			{
				"apps"
				{
					"440"
					{
						"LastPlayed"		"1700000000"
					}
					"730"
					{
					}
				}
			}
		}
	}
}
`)
	return root, id
}

func localconfigPath(root string, id SteamID) string {
	return filepath.Join(root, "userdata",
		strconv.FormatInt(id.ID3, 10), "config", "localconfig.vdf")
}

func newTestModel(t *testing.T, root string) *Model {
	t.Helper()
	m, err := NewModel(registry.NewMemoryStore(), root)
	require.NoError(t, err)
	return m
}

// appManifest renders a minimal appmanifest .acf document.
func appManifest(appID int, name string) string {
	id := strconv.Itoa(appID)
	return `"AppState"
{
	"appid"		"` + id + `"
	"name"		"` + name + `"
	"installdir"		"` + name + `"
	"LastPlayed"		"1700000000"
}
`
}

// libraryFolders renders a libraryfolders.vdf with one folder holding the
// given apps.
func libraryFolders(folderPath string, appIDs ...int) string {
	apps := ""
	for _, id := range appIDs {
		apps += "\t\t\t\"" + strconv.Itoa(id) + "\"\t\t\"123456\"\n"
	}
	return `"libraryfolders"
{
	"contentstatsid"		"-123"
	"0"
	{
		"path"		"` + folderPath + `"
		"apps"
		{
` + apps + `		}
	}
}
`
}
