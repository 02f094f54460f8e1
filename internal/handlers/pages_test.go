package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SnakeO/dominion-llc/internal/config"
	"github.com/SnakeO/dominion-llc/internal/nav"
)

func TestNewPageDataFillsLayoutDefaults(t *testing.T) {
	crumbs := nav.Breadcrumbs("/property", "2536 Desoto St.")
	vm := NewPageData(PageProperty, "2536 Desoto St. - Dominion Investors LLC", "Dominion Investors LLC", "/property", crumbs, Analytics{})

	require.Equal(t, PageProperty, vm.Page)
	require.Equal(t, vm.Title, vm.SEO.Title)
	require.Equal(t, vm.Title, vm.SEO.OG.Title)
	require.Equal(t, "Dominion Investors LLC", vm.SEO.OG.SiteName)
	require.Equal(t, "summary_large_image", vm.SEO.Twitter.Card)
	require.Len(t, vm.Nav, len(nav.Main))
	require.False(t, vm.Nav[0].Active)
	require.Equal(t, crumbs, vm.Breadcrumbs)
}

func TestAnalyticsEnabled(t *testing.T) {
	require.False(t, Analytics{}.Enabled())
	a := AnalyticsFromConfig(config.AnalyticsConfig{GA4MeasurementID: "G-TEST", Debug: true})
	require.True(t, a.Enabled())
	require.True(t, a.Debug)
}
