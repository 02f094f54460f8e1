package handlers

import (
	"github.com/SnakeO/dominion-llc/internal/nav"
	"github.com/SnakeO/dominion-llc/internal/seo"
)

// Page names selecting the body rendered by the base layout.
const (
	PageListings = "listings"
	PageProperty = "property"
)

// PageData is the view model for pages using the shared layout.
type PageData struct {
	Page      string
	Title     string
	SiteName  string
	SEO       SEOData
	Analytics Analytics

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	// Per-page view model payloads
	Listings any
	Property any
}

// SEOData carries the meta tags rendered in the layout head.
type SEOData struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          seo.OpenGraph
	Twitter     seo.Twitter
	JSONLD      []string
}

// NewPageData fills the layout fields shared by every page.
func NewPageData(page, title, siteName, path string, crumbs []nav.Crumb, analytics Analytics) PageData {
	vm := PageData{
		Page:        page,
		Title:       title,
		SiteName:    siteName,
		Analytics:   analytics,
		Path:        path,
		Nav:         nav.Build(path),
		Breadcrumbs: crumbs,
	}
	vm.SEO.Title = title
	vm.SEO.OG.Title = title
	vm.SEO.OG.SiteName = siteName
	vm.SEO.OG.Type = "website"
	vm.SEO.Twitter.Card = "summary_large_image"
	return vm
}
