package seo

import (
	"encoding/json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// Residence describes a single home for the listing schema.
type Residence struct {
	Name        string
	Description string
	URL         string
	ImageURLs   []string
	Street      string
	Locality    string
	Bedrooms    int
	Bathrooms   float64
	FloorSqft   int
	Price       int64 // whole dollars, 0 when unpriced
}

// Listing returns a RealEstateListing schema wrapping a SingleFamilyResidence.
// The offer is omitted for unpriced homes.
func Listing(in Residence) map[string]any {
	home := map[string]any{
		"@type": "SingleFamilyResidence",
		"name":  in.Name,
		"address": map[string]any{
			"@type":           "PostalAddress",
			"streetAddress":   in.Street,
			"addressLocality": in.Locality,
			"addressCountry":  "US",
		},
		"numberOfBedrooms":       in.Bedrooms,
		"numberOfBathroomsTotal": in.Bathrooms,
		"floorSize": map[string]any{
			"@type":    "QuantitativeValue",
			"value":    in.FloorSqft,
			"unitCode": "FTK",
		},
	}
	m := map[string]any{
		"@context":   "https://schema.org",
		"@type":      "RealEstateListing",
		"name":       in.Name,
		"mainEntity": home,
	}
	if in.Description != "" {
		m["description"] = in.Description
	}
	if in.URL != "" {
		m["url"] = in.URL
	}
	if len(in.ImageURLs) > 0 {
		m["image"] = in.ImageURLs
	}
	if in.Price > 0 {
		m["offers"] = map[string]any{
			"@type":         "Offer",
			"price":         in.Price,
			"priceCurrency": "USD",
		}
	}
	return m
}

// ItemList returns a schema.org ItemList of listing URLs in display order.
func ItemList(urls []string) map[string]any {
	el := make([]map[string]any, 0, len(urls))
	for i, u := range urls {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"url":      u,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"itemListElement": el,
	}
}
