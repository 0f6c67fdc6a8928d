package steam

import (
	"sort"
	"time"
)

// SteamID is a Steam account identifier. ID3 is always derived from the
// low 32 bits of ID64 and is never stored independently of it.
type SteamID struct {
	ID64 int64
	ID3  int64
}

// SteamIDFrom64 derives the per-machine ID3 from a 64-bit identifier.
func SteamIDFrom64(id64 int64) SteamID {
	return SteamID{
		ID64: id64,
		ID3:  id64 & 0xFFFFFFFF,
	}
}

// Account is a saved Steam login. Accounts are built in bulk during
// discovery and never mutated afterwards; re-discovery replaces the whole
// set.
type Account struct {
	Games map[int]struct{}
	ID    *SteamID
	Name  string
}

// OwnsGame reports whether the account's local config lists the app.
func (a Account) OwnsGame(appID int) bool {
	_, ok := a.Games[appID]
	return ok
}

// GameIDs returns the owned app ids in ascending order.
func (a Account) GameIDs() []int {
	ids := make([]int, 0, len(a.Games))
	for id := range a.Games {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// App is one installed title. Identity is the integer ID alone; name,
// install location and last-played time are non-identifying metadata.
type App struct {
	LastPlayed time.Time
	Name       string
	InstallDir string
	ID         int
}

// Thumbnail holds cached library art paths for one app. Either field may be
// empty; missing art is a valid result, not an error.
type Thumbnail struct {
	Portrait  string
	Landscape string
}
