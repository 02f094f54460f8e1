// Package listing filters and sorts the catalog for the grid view.
package listing

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/SnakeO/dominion-llc/internal/catalog"
)

// Order is the price sort direction.
type Order string

const (
	Unsorted   Order = ""
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// Query parameter names shared by the filter form and the grid fragment.
const (
	ParamBeds   = "beds"
	ParamStatus = "status"
	ParamSort   = "sort"
	// ParamReset, when present, discards the other controls.
	ParamReset = "reset"
)

// State is the grid controller state.
type State int

const (
	Unfiltered State = iota
	Filtered
)

// Criteria holds the three independent filter controls. The zero value is
// the reset state: no constraint, catalog order.
type Criteria struct {
	Beds   *int
	Status string
	Sort   Order
}

// ParseCriteria reads filter controls from a query string. Unparseable
// values are treated as "no constraint".
func ParseCriteria(q url.Values) Criteria {
	if _, ok := q[ParamReset]; ok {
		return Reset()
	}
	var c Criteria
	if raw := strings.TrimSpace(q.Get(ParamBeds)); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			c.Beds = &n
		}
	}
	c.Status = strings.TrimSpace(q.Get(ParamStatus))
	switch Order(strings.ToLower(strings.TrimSpace(q.Get(ParamSort)))) {
	case Ascending:
		c.Sort = Ascending
	case Descending:
		c.Sort = Descending
	}
	return c
}

// Reset returns the criteria that show the full catalog in original order.
func Reset() Criteria { return Criteria{} }

// IsZero reports whether no control is set.
func (c Criteria) IsZero() bool {
	return c.Beds == nil && c.Status == "" && c.Sort == Unsorted
}

// State returns Unfiltered for zero criteria, Filtered otherwise.
func (c Criteria) State() State {
	if c.IsZero() {
		return Unfiltered
	}
	return Filtered
}

// Values encodes the criteria back into query parameters.
func (c Criteria) Values() url.Values {
	v := url.Values{}
	if c.Beds != nil {
		v.Set(ParamBeds, strconv.Itoa(*c.Beds))
	}
	if c.Status != "" {
		v.Set(ParamStatus, c.Status)
	}
	if c.Sort != Unsorted {
		v.Set(ParamSort, string(c.Sort))
	}
	return v
}

// Query is the canonical encoded query string, empty for zero criteria.
func (c Criteria) Query() string { return c.Values().Encode() }

// Matches reports whether p passes the bedroom and status filters.
func (c Criteria) Matches(p catalog.Property) bool {
	if c.Beds != nil && p.Beds != *c.Beds {
		return false
	}
	if c.Status != "" && p.Status != c.Status {
		return false
	}
	return true
}

// Apply returns the listings passing both filters, sorted by price when a
// direction is chosen. Missing prices sort as 0. The input is not modified.
func Apply(props []catalog.Property, c Criteria) []catalog.Property {
	out := make([]catalog.Property, 0, len(props))
	for _, p := range props {
		if c.Matches(p) {
			out = append(out, p)
		}
	}
	switch c.Sort {
	case Ascending:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.Int() < out[j].Price.Int() })
	case Descending:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.Int() > out[j].Price.Int() })
	}
	return out
}
