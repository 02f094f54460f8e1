package main

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/SnakeO/dominion-llc/internal/catalog"
	handlersPkg "github.com/SnakeO/dominion-llc/internal/handlers"
	"github.com/SnakeO/dominion-llc/internal/markup"
	"github.com/SnakeO/dominion-llc/internal/nav"
	"github.com/SnakeO/dominion-llc/internal/observability"
	"github.com/SnakeO/dominion-llc/internal/seo"
)

const metaDescriptionMax = 160

// PropertyHandler renders the detail page for ?id=. An unknown or missing id
// sends the visitor back to the listings page.
func PropertyHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	p, err := listings.Lookup(id)
	if err != nil {
		observability.FromContext(r.Context()).Info("property not found, redirecting", zap.String("id", id))
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	view, err := buildPropertyView(p)
	if err != nil {
		renderFailed(w, r, "property", err)
		return
	}

	title := p.Address + " - " + siteName()
	vm := handlersPkg.NewPageData(handlersPkg.PageProperty, title, siteName(), r.URL.Path, nav.Breadcrumbs(r.URL.Path, p.Address), analytics)
	vm.Property = view

	canonical := absoluteURL(r, "/property?id="+p.ID)
	vm.SEO.Description = describe(p, view)
	vm.SEO.Canonical = canonical
	vm.SEO.OG.URL = canonical
	vm.SEO.OG.Description = vm.SEO.Description
	vm.SEO.OG.Type = "article"
	images := make([]string, 0, len(view.Gallery.Slides))
	for _, s := range view.Gallery.Slides {
		images = append(images, absoluteURL(r, s.Src))
	}
	if len(images) > 0 {
		vm.SEO.OG.Image = images[0]
		vm.SEO.Twitter.Image = images[0]
	}
	vm.SEO.JSONLD = []string{
		seo.JSON(seo.Listing(seo.Residence{
			Name:        p.Address,
			Description: vm.SEO.Description,
			URL:         canonical,
			ImageURLs:   images,
			Street:      p.Address,
			Locality:    p.City,
			Bedrooms:    p.Beds,
			Bathrooms:   p.Baths,
			FloorSqft:   p.Sqft,
			Price:       p.Price.Int(),
		})),
		seo.JSON(seo.BreadcrumbList([]seo.BreadcrumbItem{
			{Name: nav.HomeLabel, Item: absoluteURL(r, "/")},
			{Name: p.Address, Item: canonical},
		})),
	}

	renderPage(w, r, handlersPkg.PageProperty, vm)
}

// describe prefers the listing notes as meta description and falls back to a
// summary of the headline facts.
func describe(p catalog.Property, v PropertyView) string {
	if text := markup.PlainText(string(v.Notes)); text != "" {
		return markup.Excerpt(p.Address+", "+p.City+". "+text, metaDescriptionMax)
	}
	return markup.Excerpt(p.Address+", "+p.City+": "+strconv.Itoa(v.Beds)+" beds, "+v.Baths+" baths, "+v.Sqft+" sqft. "+v.Price+".", metaDescriptionMax)
}
