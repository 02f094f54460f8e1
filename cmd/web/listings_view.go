package main

import (
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"github.com/SnakeO/dominion-llc/internal/assets"
	"github.com/SnakeO/dominion-llc/internal/catalog"
	"github.com/SnakeO/dominion-llc/internal/format"
	"github.com/SnakeO/dominion-llc/internal/listing"
	"github.com/SnakeO/dominion-llc/internal/markup"
)

// ListingsView backs the listings page and the grid fragment.
type ListingsView struct {
	Options  listing.Options
	Cards    []CardView
	Filtered bool
	// Query is the canonical filter query, empty when unfiltered.
	Query string
	Count int
	Total int
}

// StatusBadge is the status pill shown on cards and the detail header.
type StatusBadge struct {
	Label string
	Tone  string // success | warning
}

// CardView is one property card in the grid.
type CardView struct {
	ID            string
	Href          string
	Address       string
	City          string
	Image         string
	Badge         *StatusBadge
	Beds          int
	Baths         string
	Sqft          string
	Price         string
	MonthlyIncome string
	Notes         template.HTML

	DataBeds   string
	DataStatus string
	DataPrice  string
}

func buildListingsView(q url.Values) (ListingsView, error) {
	crit := listing.ParseCriteria(q)
	all := listings.All()
	shown := listing.Apply(all, crit)

	view := ListingsView{
		Options:  listing.BuildOptions(all, crit),
		Filtered: crit.State() == listing.Filtered,
		Query:    crit.Query(),
		Count:    len(shown),
		Total:    len(all),
		Cards:    make([]CardView, 0, len(shown)),
	}
	for _, p := range shown {
		card, err := buildCard(p)
		if err != nil {
			return ListingsView{}, err
		}
		view.Cards = append(view.Cards, card)
	}
	return view, nil
}

func buildCard(p catalog.Property) (CardView, error) {
	image := assets.PlaceholderPath()
	if len(p.Images) > 0 {
		var err error
		image, err = folders.ImagePath(p.ID, p.Images[0])
		if err != nil {
			return CardView{}, fmt.Errorf("card %s: %w", p.ID, err)
		}
	}
	notes, err := markup.Notes(p.Notes)
	if err != nil {
		return CardView{}, fmt.Errorf("card %s: %w", p.ID, err)
	}
	return CardView{
		ID:            p.ID,
		Href:          propertyHref(p.ID),
		Address:       p.Address,
		City:          p.City,
		Image:         assetURL(image),
		Badge:         statusBadge(p),
		Beds:          p.Beds,
		Baths:         format.Decimal(p.Baths),
		Sqft:          format.Number(int64(p.Sqft)),
		Price:         money(p.Price),
		MonthlyIncome: currentRent(p),
		Notes:         notes,
		DataBeds:      strconv.Itoa(p.Beds),
		DataStatus:    p.Status,
		DataPrice:     strconv.FormatInt(p.Price.Int(), 10),
	}, nil
}

// statusBadge applies the shared badge rule: no badge without a status, and a
// rented home with a known rent shows it alongside the status.
func statusBadge(p catalog.Property) *StatusBadge {
	if p.Status == "" {
		return nil
	}
	b := &StatusBadge{Label: p.Status, Tone: "warning"}
	if p.IsRented() {
		b.Tone = "success"
		if rent := currentRent(p); rent != "" {
			b.Label = p.Status + " | " + rent + "/mo"
		}
	}
	return b
}

// currentRent is the formatted monthly rent of a rented home, empty otherwise.
func currentRent(p catalog.Property) string {
	if !p.IsRented() || !p.MonthlyRent.Present() {
		return ""
	}
	return money(p.MonthlyRent)
}

// money formats an amount for display. Whole-dollar figures are reformatted;
// any other text ("$1,100.50", "1,100 - 1,200", "TBD") is shown as written,
// with a dollar sign added when it starts with a digit.
func money(a catalog.Amount) string {
	switch {
	case !a.Present():
		return format.Currency(0)
	case a.Whole():
		return format.Currency(a.Int())
	}
	raw := strings.TrimSpace(a.Raw)
	if c := raw[0]; c >= '0' && c <= '9' {
		raw = "$" + raw
	}
	return raw
}

func propertyHref(id string) string {
	return "/property.html?" + url.Values{"id": {id}}.Encode()
}
