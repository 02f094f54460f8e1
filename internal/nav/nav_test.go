package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildMarksListingsActive(t *testing.T) {
	items := Build("")
	require.Len(t, items, 1)
	require.True(t, items[0].Active)

	items = Build("/property")
	require.False(t, items[0].Active)
}

func TestBreadcrumbs(t *testing.T) {
	crumbs := Breadcrumbs("/", "ignored")
	require.Equal(t, []Crumb{{Href: "/", Label: HomeLabel, Active: true}}, crumbs)

	crumbs = Breadcrumbs("/property", "2536 Desoto St.")
	require.Len(t, crumbs, 2)
	require.False(t, crumbs[0].Active)
	require.Equal(t, Crumb{Href: "/property", Label: "2536 Desoto St.", Active: true}, crumbs[1])
}
