// Package catalog holds the read-only set of exercise definitions that plans
// are built from.
package catalog

import (
	"errors"
	"fmt"

	"waltgoat/walker-app/internal/domain"

	"go.uber.org/multierr"
)

var ErrEmptyCatalog = errors.New("catalog has no exercises")

// Catalog is an immutable, ordered lookup of exercise definitions.
// It is safe for concurrent use.
type Catalog struct {
	ordered []domain.ExerciseDefinition
	byID    map[string]int
}

// New validates defs and builds a catalog preserving their order.
// Every problem found is reported, not just the first one.
func New(defs []domain.ExerciseDefinition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		ordered: make([]domain.ExerciseDefinition, 0, len(defs)),
		byID:    make(map[string]int, len(defs)),
	}

	var err error
	for i, d := range defs {
		if d.ID == "" {
			err = multierr.Append(err, fmt.Errorf("entry %d: missing exercise id", i))
			continue
		}
		if _, dup := c.byID[d.ID]; dup {
			err = multierr.Append(err, fmt.Errorf("%s: duplicate exercise id", d.ID))
			continue
		}
		if _, ok := domain.ParseCategory(string(d.Category)); !ok {
			err = multierr.Append(err, fmt.Errorf("%s: unknown category %q", d.ID, d.Category))
		}
		if d.DefaultSets < 1 {
			err = multierr.Append(err, fmt.Errorf("%s: default sets must be at least 1", d.ID))
		}
		if d.BandColor != "" {
			if _, ok := d.BandColor.Kg(); !ok {
				err = multierr.Append(err, fmt.Errorf("%s: unknown band colour %q", d.ID, d.BandColor))
			}
		}
		c.byID[d.ID] = len(c.ordered)
		c.ordered = append(c.ordered, d.Clone())
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Default returns the catalog built from the bundled dataset.
func Default() *Catalog {
	c, err := New(builtin)
	if err != nil {
		// the bundled data is covered by tests
		panic(fmt.Sprintf("builtin catalog is invalid: %v", err))
	}
	return c
}

// Builtin returns a copy of the bundled dataset, e.g. for seeding a store.
func Builtin() []domain.ExerciseDefinition {
	out := make([]domain.ExerciseDefinition, len(builtin))
	for i, d := range builtin {
		out[i] = d.Clone()
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.ordered)
}

// All returns every definition in catalog order.
func (c *Catalog) All() []domain.ExerciseDefinition {
	out := make([]domain.ExerciseDefinition, len(c.ordered))
	for i, d := range c.ordered {
		out[i] = d.Clone()
	}
	return out
}

func (c *Catalog) ByID(id string) (domain.ExerciseDefinition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.ExerciseDefinition{}, false
	}
	return c.ordered[i].Clone(), true
}

// ByCategory returns the definitions of the given category in catalog order.
func (c *Catalog) ByCategory(cat domain.Category) []domain.ExerciseDefinition {
	var out []domain.ExerciseDefinition
	for _, d := range c.ordered {
		if d.Category == cat {
			out = append(out, d.Clone())
		}
	}
	return out
}

// Categories returns the fixed category list.
func (c *Catalog) Categories() []domain.Category {
	return domain.AllCategories()
}

// Bands returns the resistance band table.
func (c *Catalog) Bands() []domain.BandInfo {
	return domain.Bands()
}
