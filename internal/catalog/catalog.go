package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/SnakeO/dominion-llc/internal/assets"
)

// Status labels used by the listing data.
const (
	StatusRented    = "Rented"
	StatusAvailable = "Available"
)

// ErrNotFound is returned when no property matches a slug.
var ErrNotFound = errors.New("catalog: property not found")

// Property is a single listing as supplied by the catalog file.
type Property struct {
	ID          string   `yaml:"id" validate:"required"`
	Address     string   `yaml:"address" validate:"required"`
	City        string   `yaml:"city" validate:"required"`
	Beds        int      `yaml:"beds" validate:"gte=0"`
	Baths       float64  `yaml:"baths" validate:"gte=0"`
	Sqft        int      `yaml:"sqft" validate:"gte=0"`
	Price       Amount   `yaml:"price"`
	Status      string   `yaml:"status"`
	MonthlyRent Amount   `yaml:"monthlyRent"`
	MarketRent  Amount   `yaml:"marketRent"`
	PropertyTax Amount   `yaml:"propertyTax"`
	ParishTax   Amount   `yaml:"parishTax"`
	RentalTime  string   `yaml:"rentalTime"`
	AC          string   `yaml:"ac"`
	Notes       string   `yaml:"notes"`
	Images      []string `yaml:"images" validate:"dive,required"`
	Video       string   `yaml:"video"`
}

// IsRented reports whether the property currently has a tenant.
func (p Property) IsRented() bool { return p.Status == StatusRented }

// Catalog is the ordered, read-only set of listings. It is built once at
// start-up and shared by every request.
type Catalog struct {
	items []Property
	index map[string]int
}

type catalogFile struct {
	Properties []Property `yaml:"properties"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the catalog file at path and validates it against folders.
func Load(path string, folders *assets.FolderMap) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open: %w", err)
	}
	defer f.Close()
	return Parse(f, folders)
}

// Parse decodes a YAML catalog and validates it against folders.
func Parse(r io.Reader, folders *assets.FolderMap) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	return New(file.Properties, folders)
}

// New validates props and returns a catalog holding a private copy of them.
// Every problem found is reported at once in a *ValidationError; an id that
// is missing from either folder table is one of those problems.
func New(props []Property, folders *assets.FolderMap) (*Catalog, error) {
	c := &Catalog{
		items: make([]Property, 0, len(props)),
		index: make(map[string]int, len(props)),
	}
	var problems []Problem
	for i, p := range props {
		if err := validate.Struct(p); err != nil {
			problems = append(problems, structProblems(i, p.ID, err)...)
		}
		if p.ID == "" {
			continue
		}
		if _, dup := c.index[p.ID]; dup {
			problems = append(problems, Problem{Index: i, ID: p.ID, Field: "id", Err: errDuplicateID})
			continue
		}
		if err := folders.Check(p.ID); err != nil {
			problems = append(problems, Problem{Index: i, ID: p.ID, Field: "id", Err: err})
		}
		p.Images = append([]string(nil), p.Images...)
		c.index[p.ID] = len(c.items)
		c.items = append(c.items, p)
	}
	if len(problems) > 0 {
		return nil, &ValidationError{problems: problems}
	}
	return c, nil
}

// All returns the listings in catalog order. The slice is a copy.
func (c *Catalog) All() []Property {
	out := make([]Property, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of listings.
func (c *Catalog) Len() int { return len(c.items) }

// Find returns the listing with the given slug.
func (c *Catalog) Find(id string) (Property, bool) {
	i, ok := c.index[strings.TrimSpace(id)]
	if !ok {
		return Property{}, false
	}
	return c.items[i], true
}

// Lookup is Find with an error for callers that propagate failures.
func (c *Catalog) Lookup(id string) (Property, error) {
	p, ok := c.Find(id)
	if !ok {
		return Property{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return p, nil
}

// IDs returns every slug in catalog order.
func (c *Catalog) IDs() []string {
	out := make([]string, 0, len(c.items))
	for _, p := range c.items {
		out = append(out, p.ID)
	}
	return out
}
