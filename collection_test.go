package atlas_test

import (
	"math"
	"testing"
	"time"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/atlas"
)

func people() *atlas.Collection {
	return atlas.NewCollection(
		atlas.NewModel(atlas.Attributes{"name": "carol", "age": 41}),
		atlas.NewModel(atlas.Attributes{"name": "alice", "age": 29}),
		atlas.NewModel(atlas.Attributes{"name": "bob", "age": 35.5}),
		atlas.NewModel(atlas.Attributes{"name": "dave", "age": 29}),
	)
}

func names(c *atlas.Collection) []any {
	return c.Pluck("name")
}

func TestSortOn(t *testing.T) {
	c := people()
	c.SortOn("name", true)
	assert.DeepEqual(t, names(c), []any{"alice", "bob", "carol", "dave"})

	c.ReverseSortOn("name", true)
	assert.DeepEqual(t, names(c), []any{"dave", "carol", "bob", "alice"})
}

func TestSortOnOrdersEveryPair(t *testing.T) {
	c := people()

	position := func(c *atlas.Collection) map[*atlas.Model]int {
		pos := map[*atlas.Model]int{}
		for i, m := range c.Models() {
			pos[m] = i
		}
		return pos
	}

	c.SortOn("age", true)
	ascending := position(c)
	c.ReverseSortOn("age", true)
	descending := position(c)

	for _, a := range c.Models() {
		for _, b := range c.Models() {
			if atlas.NaturalCompare(a.Get("age"), b.Get("age")) < 0 {
				assert.True(t, ascending[a] < ascending[b])
				assert.True(t, descending[a] > descending[b])
			}
		}
	}
}

func TestSortOnTiesAreStable(t *testing.T) {
	c := people()
	c.SortOn("age", true)
	// alice and dave share an age and keep their original order
	assert.DeepEqual(t, names(c), []any{"alice", "dave", "bob", "carol"})

	c.ReverseSortOn("age", true)
	assert.DeepEqual(t, names(c), []any{"carol", "bob", "alice", "dave"})
}

func TestSortWithNil(t *testing.T) {
	c := people()
	resets := 0
	c.On("reset", func(args ...any) { resets++ })

	assert.True(t, c.SortWith(nil, false) == c)
	assert.DeepEqual(t, names(c), []any{"carol", "alice", "bob", "dave"})
	assert.Equal(t, resets, 0)
}

func TestSortWithResetEvent(t *testing.T) {
	c := people()

	var payload []any
	c.On("reset", func(args ...any) { payload = args })

	byLength := func(a, b *atlas.Model) int {
		return len(a.Get("name").(string)) - len(b.Get("name").(string))
	}

	c.SortWith(byLength, false)
	assert.DeepEqual(t, names(c), []any{"bob", "dave", "carol", "alice"})
	assert.Equal(t, len(payload), 2)
	assert.True(t, payload[0].(*atlas.Collection) == c)
	// the silent flag always rides along, false here
	assert.Equal(t, payload[1].(atlas.ResetOptions), atlas.ResetOptions{Silent: false})

	payload = nil
	c.SortWith(byLength, true)
	assert.Equal(t, len(payload), 0)
}

func TestCollectionAddAndReset(t *testing.T) {
	c := atlas.NewCollection()
	var added []any
	c.On("add", func(args ...any) { added = append(added, args[0].(*atlas.Model).Get("name")) })

	c.Add(atlas.NewModel(atlas.Attributes{"name": "x"}), atlas.NewModel(atlas.Attributes{"name": "y"}))
	assert.Equal(t, c.Len(), 2)
	assert.Equal(t, c.At(1).Get("name"), any("y"))
	assert.DeepEqual(t, added, []any{"x", "y"})

	resets := 0
	c.On("reset", func(args ...any) { resets++ })
	c.Reset(atlas.NewModel(atlas.Attributes{"name": "z"}))
	assert.Equal(t, c.Len(), 1)
	assert.Equal(t, resets, 1)
}

func TestNaturalCompare(t *testing.T) {
	early := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)

	tests := []struct {
		name     string
		a, b     any
		expected int
	}{
		{"Ints", 1, 2, -1},
		{"Mixed numbers", 2.5, 2, 1},
		{"Unsigned", uint8(3), int64(3), 0},
		{"Strings", "b", "a", 1},
		{"Bools", false, true, -1},
		{"Times", late, early, 1},
		{"NaN", math.NaN(), 1.0, 0},
		{"Mixed kinds", "1", 1, 0},
		{"Nil", nil, 1, 0},
		{"Both nil", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, atlas.NaturalCompare(tt.a, tt.b), tt.expected)
		})
	}
}
