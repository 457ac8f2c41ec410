package achievements

import (
	"fmt"
	"slices"
	"sort"
)

// Definition is a single unlockable milestone. Definitions are compiled in and
// never change at runtime; the ID is the join key between persisted unlock sets,
// the catalog and externally owned display text.
type Definition struct {
	ID          string
	Icon        string
	Requirement int
	Category    Category
}

// Catalog is an immutable, indexed set of achievement definitions.
type Catalog struct {
	all        []Definition
	byID       map[string]Definition
	byCategory map[Category][]Definition
}

// NewCatalog indexes defs and checks the catalog invariants: ids are unique,
// every category is known, and within a category requirements never decrease
// in declaration order.
func NewCatalog(defs []Definition) (*Catalog, error) {
	c := &Catalog{
		all:        make([]Definition, 0, len(defs)),
		byID:       make(map[string]Definition, len(defs)),
		byCategory: make(map[Category][]Definition),
	}

	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("achievement with empty id in category %q", d.Category)
		}
		if !d.Category.Valid() {
			return nil, fmt.Errorf("achievement %q: unknown category %q", d.ID, d.Category)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate achievement id %q", d.ID)
		}
		prev := c.byCategory[d.Category]
		if n := len(prev); n > 0 && prev[n-1].Requirement > d.Requirement {
			return nil, fmt.Errorf("achievement %q: requirement %d is below %q (%d)",
				d.ID, d.Requirement, prev[n-1].ID, prev[n-1].Requirement)
		}

		c.all = append(c.all, d)
		c.byID[d.ID] = d
		c.byCategory[d.Category] = append(prev, d)
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on an invalid definition list.
// It is meant for compiled-in data.
func MustCatalog(defs []Definition) *Catalog {
	c, err := NewCatalog(defs)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultCatalog = MustCatalog(definitions)

// Default returns the compiled-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// All returns every definition in declaration order.
func (c *Catalog) All() []Definition {
	out := make([]Definition, len(c.all))
	copy(out, c.all)
	return out
}

// ForCategory returns a copy of the category's definitions in ascending
// requirement order.
func (c *Catalog) ForCategory(cat Category) []Definition {
	return slices.Clone(c.byCategory[cat])
}

// Lookup returns the definition with the given id.
func (c *Catalog) Lookup(id string) (Definition, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// Len returns the number of definitions in the catalog.
func (c *Catalog) Len() int {
	return len(c.all)
}

// Next returns the lowest definition in cat whose requirement is above value,
// or false when every milestone of the category has been reached.
func (c *Catalog) Next(cat Category, value int) (Definition, bool) {
	defs := c.byCategory[cat]
	i := sort.Search(len(defs), func(i int) bool { return defs[i].Requirement > value })
	if i == len(defs) {
		return Definition{}, false
	}
	return defs[i], true
}
