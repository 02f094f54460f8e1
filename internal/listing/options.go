package listing

import (
	"sort"
	"strconv"

	"github.com/SnakeO/dominion-llc/internal/catalog"
)

// Option is one entry of a filter select control.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Options backs the three filter controls.
type Options struct {
	Beds   []Option
	Status []Option
	Sort   []Option
}

// BuildOptions derives the select options from the catalog: distinct bedroom
// counts ascending, statuses in first-seen order. Each control starts with an
// "any" entry whose value is empty.
func BuildOptions(props []catalog.Property, c Criteria) Options {
	seenBeds := map[int]bool{}
	var beds []int
	seenStatus := map[string]bool{}
	var statuses []string
	for _, p := range props {
		if !seenBeds[p.Beds] {
			seenBeds[p.Beds] = true
			beds = append(beds, p.Beds)
		}
		if p.Status != "" && !seenStatus[p.Status] {
			seenStatus[p.Status] = true
			statuses = append(statuses, p.Status)
		}
	}
	sort.Ints(beds)

	var o Options
	o.Beds = append(o.Beds, Option{Value: "", Label: "All Bedrooms", Selected: c.Beds == nil})
	for _, n := range beds {
		label := strconv.Itoa(n) + " Bedrooms"
		if n == 1 {
			label = "1 Bedroom"
		}
		o.Beds = append(o.Beds, Option{
			Value:    strconv.Itoa(n),
			Label:    label,
			Selected: c.Beds != nil && *c.Beds == n,
		})
	}

	o.Status = append(o.Status, Option{Value: "", Label: "All Statuses", Selected: c.Status == ""})
	for _, s := range statuses {
		o.Status = append(o.Status, Option{Value: s, Label: s, Selected: c.Status == s})
	}

	o.Sort = []Option{
		{Value: "", Label: "Sort by Price", Selected: c.Sort == Unsorted},
		{Value: string(Ascending), Label: "Price: Low to High", Selected: c.Sort == Ascending},
		{Value: string(Descending), Label: "Price: High to Low", Selected: c.Sort == Descending},
	}
	return o
}
