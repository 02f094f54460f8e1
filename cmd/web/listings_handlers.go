package main

import (
	"net/http"
	"strconv"

	handlersPkg "github.com/SnakeO/dominion-llc/internal/handlers"
	"github.com/SnakeO/dominion-llc/internal/nav"
	"github.com/SnakeO/dominion-llc/internal/seo"
)

// ListingsHandler renders the listings page. The same query the grid
// fragment pushes (beds, status, sort) is honoured so pushed URLs and plain
// form submissions reload into the same state.
func ListingsHandler(w http.ResponseWriter, r *http.Request) {
	view, err := buildListingsView(r.URL.Query())
	if err != nil {
		renderFailed(w, r, "listings", err)
		return
	}

	title := "Investment Properties"
	vm := handlersPkg.NewPageData(handlersPkg.PageListings, title, siteName(), r.URL.Path, nav.Breadcrumbs(r.URL.Path, ""), analytics)
	vm.Listings = view

	vm.SEO.Title = title + " | " + siteName()
	vm.SEO.Description = "Browse " + strconv.Itoa(view.Total) + " Shreveport investment properties from " + siteName() + ": rentals with tenants in place and homes available now."
	vm.SEO.Canonical = absoluteURL(r, "/")
	vm.SEO.OG.URL = vm.SEO.Canonical
	vm.SEO.OG.Title = vm.SEO.Title
	vm.SEO.OG.Description = vm.SEO.Description
	if view.Filtered {
		// filtered permutations duplicate the canonical page
		vm.SEO.Robots = "noindex,follow"
	}
	urls := make([]string, 0, len(view.Cards))
	for _, c := range view.Cards {
		urls = append(urls, absoluteURL(r, c.Href))
	}
	vm.SEO.JSONLD = []string{
		seo.JSON(seo.Organization(siteName(), absoluteURL(r, "/"), "")),
		seo.JSON(seo.ItemList(urls)),
	}

	renderPage(w, r, handlersPkg.PageListings, vm)
}

// ListingsGridFrag re-renders the whole grid for the current filter controls
// and pushes the matching page URL.
func ListingsGridFrag(w http.ResponseWriter, r *http.Request) {
	view, err := buildListingsView(r.URL.Query())
	if err != nil {
		renderFailed(w, r, "frag_listings_grid", err)
		return
	}
	push := "/"
	if view.Query != "" {
		push = push + "?" + view.Query
	}
	w.Header().Set("HX-Push-Url", push)
	renderTemplate(w, r, "frag_listings_grid", view)
}
