package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotesRendersMarkdown(t *testing.T) {
	t.Parallel()

	got, err := Notes("Original **hardwood** floors")
	require.NoError(t, err)
	require.Contains(t, string(got), "<strong>hardwood</strong>")
}

func TestNotesStripsScripts(t *testing.T) {
	t.Parallel()

	got, err := Notes(`Nice <script>alert(1)</script><img src=x onerror="alert(2)"> porch`)
	require.NoError(t, err)
	out := string(got)
	require.NotContains(t, out, "<script")
	require.NotContains(t, out, "onerror")
	require.Contains(t, out, "porch")
}

func TestNotesEmpty(t *testing.T) {
	t.Parallel()

	got, err := Notes("   ")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	got := PlainText("<p>New <strong>roof</strong>\n in 2023.</p><p>Corner lot</p>")
	require.Equal(t, "New roof in 2023. Corner lot", got)
}

func TestExcerpt(t *testing.T) {
	t.Parallel()

	require.Equal(t, "short", Excerpt("short", 10))
	got := Excerpt("three bedroom home near the park", 15)
	require.True(t, strings.HasSuffix(got, "…"))
	require.LessOrEqual(t, len([]rune(got)), 16)
	require.Equal(t, "three bedroom…", got)
}
