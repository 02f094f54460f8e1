package assets

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const folderYAML = `
images:
  2536-desoto-st: "2536 Desoto St. Shreveport, LA 71103"
  2424-highland-ave: "2424 Highland Ave. Shreveport, LA 71104"
thumbnails:
  2536-desoto-st: 2536-desoto-st-shreveport-la-71103
`

func testMap(t *testing.T) *FolderMap {
	t.Helper()
	m, err := Parse(strings.NewReader(folderYAML))
	require.NoError(t, err)
	return m
}

func TestImagePathEncodesFolder(t *testing.T) {
	t.Parallel()

	m := testMap(t)
	got, err := m.ImagePath("2536-desoto-st", "front.jpg")
	require.NoError(t, err)
	require.Equal(t, "assets/images/2536%20Desoto%20St.%20Shreveport%2C%20LA%2071103/front.jpg", got)
}

func TestThumbnailPathNormalisesExtension(t *testing.T) {
	t.Parallel()

	m := testMap(t)
	tests := map[string]string{
		"front.jpg":  "assets/thumbnails/2536-desoto-st-shreveport-la-71103/thumb-front.jpg",
		"yard.PNG":   "assets/thumbnails/2536-desoto-st-shreveport-la-71103/thumb-yard.jpg",
		"den.jpeg":   "assets/thumbnails/2536-desoto-st-shreveport-la-71103/thumb-den.jpg",
		"plan.webp":  "assets/thumbnails/2536-desoto-st-shreveport-la-71103/thumb-plan.webp",
		"no-ext":     "assets/thumbnails/2536-desoto-st-shreveport-la-71103/thumb-no-ext",
		"a.tar.png":  "assets/thumbnails/2536-desoto-st-shreveport-la-71103/thumb-a.tar.jpg",
	}
	for name, want := range tests {
		got, err := m.ThumbnailPath("2536-desoto-st", name)
		require.NoError(t, err)
		require.Equal(t, want, got, name)
	}
}

func TestUnmappedIDFails(t *testing.T) {
	t.Parallel()

	m := testMap(t)

	_, err := m.ImagePath("missing", "front.jpg")
	require.ErrorIs(t, err, ErrUnmappedID)

	// Present in images but not thumbnails.
	_, err = m.ThumbnailPath("2424-highland-ave", "front.jpg")
	require.ErrorIs(t, err, ErrUnmappedID)

	err = m.Check("2424-highland-ave")
	require.ErrorIs(t, err, ErrUnmappedID)
	require.Contains(t, err.Error(), TableThumbnails)
	require.NotContains(t, err.Error(), "from "+TableImages)

	require.NoError(t, m.Check("2536-desoto-st"))
}

func TestNilMapReportsUnmapped(t *testing.T) {
	t.Parallel()

	var m *FolderMap
	err := m.Check("any")
	require.True(t, errors.Is(err, ErrUnmappedID))
}

func TestVideoPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, "assets/videos/tour.mp4", VideoPath("tour.mp4"))
	require.Equal(t, "assets/videos/walk%20through.mp4", VideoPath("walk through.mp4"))
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("pictures:\n  a: b\n"))
	require.Error(t, err)
}

func TestValidateReportsEveryUnmappedID(t *testing.T) {
	t.Parallel()

	m := &FolderMap{
		Images:     map[string]string{"a": "A", "b": "B"},
		Thumbnails: map[string]string{"a": "a"},
	}
	err := m.Validate([]string{"a", "b", "c"})
	require.ErrorIs(t, err, ErrUnmappedID)
	require.Contains(t, err.Error(), `"b"`)
	require.Contains(t, err.Error(), `"c"`)
	require.NotContains(t, err.Error(), `"a"`)

	require.NoError(t, m.Validate(nil))
}
