package atlas_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/atlas"
)

func TestEventsOrder(t *testing.T) {
	var e atlas.Events
	var calls []string

	e.On("ping", func(args ...any) { calls = append(calls, "first:"+args[0].(string)) })
	e.On("ping", func(args ...any) { calls = append(calls, "second:"+args[0].(string)) })
	e.On("all", func(args ...any) { calls = append(calls, "all:"+args[0].(string)) })

	e.Trigger("ping", "x")

	assert.DeepEqual(t, calls, []string{"first:x", "second:x", "all:ping"})
}

func TestEventsOnce(t *testing.T) {
	var e atlas.Events
	count := 0
	e.Once("tick", func(args ...any) { count++ })

	e.Trigger("tick")
	e.Trigger("tick")

	assert.Equal(t, count, 1)
	assert.False(t, e.HasListeners("tick"))
}

func TestEventsOff(t *testing.T) {
	var e atlas.Events
	count := 0
	sub := e.On("tick", func(args ...any) { count++ })

	e.Trigger("tick")
	assert.True(t, e.Off(sub))
	assert.False(t, e.Off(sub))
	e.Trigger("tick")

	assert.Equal(t, count, 1)
}

func TestEventsOffDuringTrigger(t *testing.T) {
	var e atlas.Events
	var calls []string
	var second atlas.Subscription

	e.On("tick", func(args ...any) {
		calls = append(calls, "first")
		e.Off(second)
	})
	second = e.On("tick", func(args ...any) { calls = append(calls, "second") })

	// the running trigger still reaches every listener it started with
	e.Trigger("tick")
	e.Trigger("tick")

	assert.DeepEqual(t, calls, []string{"first", "second", "first"})
}

func TestEventsOffAll(t *testing.T) {
	var e atlas.Events
	e.On("a", func(args ...any) {})
	e.On("b", func(args ...any) {})

	e.OffAll("a")
	assert.False(t, e.HasListeners("a"))
	assert.True(t, e.HasListeners("b"))

	e.OffAll("")
	assert.False(t, e.HasListeners("b"))
}
