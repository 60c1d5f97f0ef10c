package atlas

import (
	"slices"

	"github.com/rohanthewiz/atlas/consts"
)

// Comparator orders two models: negative when a goes first, positive when b does, 0 for a tie.
type Comparator func(a, b *Model) int

// ResetOptions is the metadata passed with a "reset" event.
type ResetOptions struct {
	Silent bool
}

// Collection is an ordered set of models.
// Not safe for concurrent use.
type Collection struct {
	Events
	models []*Model
}

// NewCollection creates a collection holding models in the given order.
func NewCollection(models ...*Model) *Collection {
	return &Collection{models: slices.Clone(models)}
}

// Add appends models, triggering "add" with (model, collection) for each.
func (c *Collection) Add(models ...*Model) *Collection {
	for _, m := range models {
		c.models = append(c.models, m)
		c.Trigger(consts.EventAdd, m, c)
	}
	return c
}

// Reset replaces the contents and triggers "reset" with (collection, ResetOptions{}).
func (c *Collection) Reset(models ...*Model) *Collection {
	c.models = slices.Clone(models)
	c.Trigger(consts.EventReset, c, ResetOptions{})
	return c
}

// Models returns the models in their current order.
func (c *Collection) Models() []*Model {
	return slices.Clone(c.models)
}

// Len is the number of models.
func (c *Collection) Len() int {
	return len(c.models)
}

// At returns the model at index i.
func (c *Collection) At(i int) *Model {
	return c.models[i]
}

// Pluck returns attr of every model, in order.
func (c *Collection) Pluck(attr string) []any {
	values := make([]any, len(c.models))
	for i, m := range c.models {
		values[i] = m.Get(attr)
	}
	return values
}

// SortWith reorders the models in place with cmp. Ties keep their relative order.
// A nil cmp leaves the collection untouched. Unless silent, "reset" fires
// with (collection, ResetOptions{Silent: silent}).
func (c *Collection) SortWith(cmp Comparator, silent bool) *Collection {
	if cmp == nil {
		return c
	}

	slices.SortStableFunc(c.models, cmp)
	if !silent {
		c.Trigger(consts.EventReset, c, ResetOptions{Silent: silent})
	}
	return c
}

// SortOn sorts by the natural order of attr, ascending.
func (c *Collection) SortOn(attr string, silent bool) *Collection {
	return c.SortWith(attributeComparator(attr), silent)
}

// ReverseSortOn sorts by the natural order of attr, descending.
func (c *Collection) ReverseSortOn(attr string, silent bool) *Collection {
	ascending := attributeComparator(attr)
	return c.SortWith(func(a, b *Model) int {
		return -1 * ascending(a, b)
	}, silent)
}

func attributeComparator(attr string) Comparator {
	return func(a, b *Model) int {
		return NaturalCompare(a.Get(attr), b.Get(attr))
	}
}
