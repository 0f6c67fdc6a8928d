package steam

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThumbnail_AbsentArtIsNotAnError(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, t.TempDir())

	thumb := m.Thumbnail(440)
	assert.Empty(t, thumb.Portrait)
	assert.Empty(t, thumb.Landscape)
}

func TestThumbnail_FindsBothSlots(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cache := filepath.Join(root, "appcache", "librarycache")
	writeFile(t, filepath.Join(cache, "440_library_600x900.jpg"), "jpg")
	writeFile(t, filepath.Join(cache, "440_header.png"), "png")

	m := newTestModel(t, root)
	thumb := m.Thumbnail(440)
	assert.Equal(t, filepath.Join(cache, "440_library_600x900.jpg"), thumb.Portrait)
	assert.Equal(t, filepath.Join(cache, "440_header.png"), thumb.Landscape)
}

func TestThumbnail_PrefersJpgOverPng(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cache := filepath.Join(root, "appcache", "librarycache")
	writeFile(t, filepath.Join(cache, "440_header.jpg"), "jpg")
	writeFile(t, filepath.Join(cache, "440_header.png"), "png")

	m := newTestModel(t, root)
	thumb := m.Thumbnail(440)
	require.NotEmpty(t, thumb.Landscape)
	assert.Equal(t, ".jpg", filepath.Ext(thumb.Landscape))
	assert.Empty(t, thumb.Portrait)
}
