package nav

import "strings"

// Item represents a top-level navigation item.
type Item struct {
	Path  string // e.g. "/"
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/", Label: "Listings"},
}

// HomeLabel is the label of the first breadcrumb.
const HomeLabel = "Listings"

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/property" or "/property/..."
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs returns the trail for a page. The listings page is the root;
// any other page appends leaf as the active entry.
func Breadcrumbs(currentPath, leaf string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: HomeLabel, Active: currentPath == "/"}}
	if currentPath == "/" || strings.TrimSpace(leaf) == "" {
		return crumbs
	}
	return append(crumbs, Crumb{Href: currentPath, Label: leaf, Active: true})
}
