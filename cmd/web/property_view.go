package main

import (
	"fmt"
	"html/template"

	"github.com/SnakeO/dominion-llc/internal/assets"
	"github.com/SnakeO/dominion-llc/internal/catalog"
	"github.com/SnakeO/dominion-llc/internal/format"
	"github.com/SnakeO/dominion-llc/internal/gallery"
	"github.com/SnakeO/dominion-llc/internal/markup"
)

const acNotSpecified = "Not specified"

// PropertyView backs the detail page. Empty strings mean the block is not
// rendered.
type PropertyView struct {
	ID      string
	Address string
	City    string
	Price   string
	Badge   *StatusBadge
	Beds    int
	Baths   string
	Sqft    string
	AC      string

	CurrentRent   string
	SuggestedRent string
	// BelowMarket adds the long-term tenant note naming RentalDuration.
	BelowMarket    bool
	RentalDuration string
	PropertyTax    string
	ParishTax      string
	Notes          template.HTML

	Gallery gallery.Gallery
	// Placeholder stands in for the carousel when there are no images.
	Placeholder string
	Video       *VideoView
}

// VideoView is the walkthrough player with its initial state.
type VideoView struct {
	Src   string
	State string
}

func buildPropertyView(p catalog.Property) (PropertyView, error) {
	v := PropertyView{
		ID:          p.ID,
		Address:     p.Address,
		City:        p.City,
		Price:       money(p.Price),
		Badge:       statusBadge(p),
		Beds:        p.Beds,
		Baths:       format.Decimal(p.Baths),
		Sqft:        format.Number(int64(p.Sqft)),
		AC:          p.AC,
		CurrentRent: currentRent(p),
		Placeholder: assetURL(assets.PlaceholderPath()),
	}
	if v.AC == "" {
		v.AC = acNotSpecified
	}

	// Suggested rent belongs to listed homes; tenancy details to rented ones.
	if p.MarketRent.Present() && p.Status != "" {
		v.SuggestedRent = money(p.MarketRent)
	}
	if p.IsRented() && p.RentalTime != "" {
		v.RentalDuration = p.RentalTime
		v.BelowMarket = belowMarket(p)
	}
	if p.PropertyTax.Present() {
		v.PropertyTax = money(p.PropertyTax)
	}
	if p.ParishTax.Present() {
		v.ParishTax = money(p.ParishTax)
	}

	notes, err := markup.Notes(p.Notes)
	if err != nil {
		return PropertyView{}, fmt.Errorf("property %s: %w", p.ID, err)
	}
	v.Notes = notes

	g, err := gallery.Build(p.Address, p.Images,
		func(name string) (string, error) {
			s, err := folders.ImagePath(p.ID, name)
			return assetURL(s), err
		},
		func(name string) (string, error) {
			s, err := folders.ThumbnailPath(p.ID, name)
			return assetURL(s), err
		},
	)
	if err != nil {
		return PropertyView{}, fmt.Errorf("property %s: %w", p.ID, err)
	}
	v.Gallery = g

	if p.Video != "" {
		var player gallery.Player
		v.Video = &VideoView{Src: assetURL(assets.VideoPath(p.Video)), State: player.State().String()}
	}
	return v, nil
}

// belowMarket reports whether a known monthly rent is under the market rent.
// A rent without a figure ("TBD") is never below market.
func belowMarket(p catalog.Property) bool {
	rent, market := p.MonthlyRent.Int(), p.MarketRent.Int()
	return p.MarketRent.Present() && rent > 0 && rent < market
}
