package steam

import (
	"os"
	"path/filepath"
	"strconv"
)

// thumbnailExts in probe order; the first extension found wins per slot.
var thumbnailExts = [...]string{"jpg", "png"}

// Thumbnail probes the client's library art cache for the app's portrait
// and landscape images. Art assets are optional: a wholly absent thumbnail
// is a valid result with both fields empty, never an error.
func (m *Model) Thumbnail(appID int) Thumbnail {
	cacheDir := filepath.Join(m.path, "appcache", "librarycache")
	id := strconv.Itoa(appID)

	var thumb Thumbnail
	for _, ext := range thumbnailExts {
		if thumb.Portrait == "" {
			path := filepath.Join(cacheDir, id+"_library_600x900."+ext)
			if fileExists(path) {
				thumb.Portrait = path
			}
		}
		if thumb.Landscape == "" {
			path := filepath.Join(cacheDir, id+"_header."+ext)
			if fileExists(path) {
				thumb.Landscape = path
			}
		}
		if thumb.Portrait != "" && thumb.Landscape != "" {
			break
		}
	}
	return thumb
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
