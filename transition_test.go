package atlas_test

import (
	"errors"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/atlas"
)

func noop(r *atlas.Router, params atlas.Params) error { return nil }

func newRouter(start string) *atlas.Router {
	h := atlas.NewHistory(atlas.NewMemoryLocation(start), atlas.HistoryOptions{Silent: true})
	return atlas.NewRouter(h)
}

func TestTransitionPairs(t *testing.T) {
	r := newRouter("/")
	ti := atlas.RouterEvents(r)
	journal := atlas.NewJournal().WatchRouter(r)

	r.Route("a", "showA", noop).
		Route("b", "showB", noop).
		Route("c/:id", "showC", noop)

	for _, fragment := range []string{"a", "b", "c/1", "a"} {
		matched, err := r.History().LoadURL(fragment)
		assert.Nil(t, err)
		assert.True(t, matched)
	}

	entries := journal.Entries()
	assert.Equal(t, len(entries), 8)

	expected := []atlas.RouteInfo{
		{Route: "a", Name: "showA"},
		{Route: "b", Name: "showB"},
		{Route: "c/:id", Name: "showC"},
		{Route: "a", Name: "showA"},
	}

	for k, info := range expected {
		before, after := entries[2*k], entries[2*k+1]
		assert.Equal(t, before.Event, "before")
		assert.Equal(t, after.Event, "after")
		assert.Equal(t, before.Info, info)
		assert.Equal(t, after.Info, info)

		if k == 0 {
			assert.True(t, before.Previous.IsZero())
		} else {
			assert.Equal(t, before.Previous, expected[k-1])
		}
		assert.Equal(t, after.Previous, before.Previous)
	}

	assert.Equal(t, ti.Previous(), atlas.RouteInfo{Route: "a", Name: "showA"})
}

func TestTransitionHandlerReceivesRouterAndParams(t *testing.T) {
	r := newRouter("/")
	atlas.RouterEvents(r)

	var gotRouter *atlas.Router
	var gotID string
	r.Route("users/:id", "user", func(rr *atlas.Router, params atlas.Params) error {
		gotRouter = rr
		gotID = params.Get("id")
		return nil
	})

	_, err := r.History().LoadURL("users/42")
	assert.Nil(t, err)
	assert.True(t, gotRouter == r)
	assert.Equal(t, gotID, "42")
}

func TestTransitionHandlerError(t *testing.T) {
	r := newRouter("/")
	ti := atlas.RouterEvents(r)
	journal := atlas.NewJournal().WatchRouter(r)

	errBoom := errors.New("boom")
	r.Route("ok", "ok", noop)
	r.Route("fail", "fail", func(r *atlas.Router, params atlas.Params) error { return errBoom })

	_, err := r.History().LoadURL("ok")
	assert.Nil(t, err)

	matched, err := r.History().LoadURL("fail")
	assert.True(t, matched)
	assert.True(t, err == errBoom)

	// before fired, after did not, carry untouched
	assert.DeepEqual(t, journal.Names(), []string{"before", "after", "before"})
	assert.Equal(t, ti.Previous(), atlas.RouteInfo{Route: "ok", Name: "ok"})

	// later dispatches still work and still see the last settled transition
	_, err = r.History().LoadURL("ok")
	assert.Nil(t, err)
	entries := journal.Entries()
	assert.Equal(t, len(entries), 5)
	assert.Equal(t, entries[3].Previous, atlas.RouteInfo{Route: "ok", Name: "ok"})
}

func TestTransitionHandlerPanic(t *testing.T) {
	r := newRouter("/")
	ti := atlas.RouterEvents(r)
	journal := atlas.NewJournal().WatchRouter(r)

	r.Route("panic", "panic", func(r *atlas.Router, params atlas.Params) error { panic("handler blew up") })

	func() {
		defer func() {
			assert.NotEqual(t, recover(), nil)
		}()
		_, _ = r.History().LoadURL("panic")
	}()

	assert.DeepEqual(t, journal.Names(), []string{"before"})
	assert.True(t, ti.Previous().IsZero())
}

func TestTransitionInstallOnce(t *testing.T) {
	r := newRouter("/")
	first := atlas.RouterEvents(r)
	second := atlas.RouterEvents(r)
	assert.True(t, first == second)

	journal := atlas.NewJournal().WatchRouter(r)
	r.Route("a", "a", noop)
	_, err := r.History().LoadURL("a")
	assert.Nil(t, err)
	assert.Equal(t, len(journal.Entries()), 2)
}

func TestTransitionSharedAcrossRouters(t *testing.T) {
	h := atlas.NewHistory(atlas.NewMemoryLocation("/"))
	mail := atlas.NewRouter(h)
	settings := atlas.NewRouter(h)

	ti := atlas.NewTransitionInterceptor()
	ti.Install(mail)
	ti.Install(settings)

	var settingsPrevious atlas.RouteInfo
	settings.On("before", func(args ...any) { settingsPrevious = args[0].(atlas.RouteInfo) })

	mail.Route("inbox", "inbox", noop)
	settings.Route("settings", "settings", noop)

	_, _ = h.LoadURL("inbox")
	_, _ = h.LoadURL("settings")

	assert.Equal(t, settingsPrevious, atlas.RouteInfo{Route: "inbox", Name: "inbox"})
}

func TestTransitionRouteEventsFollowAfter(t *testing.T) {
	r := newRouter("/")
	atlas.RouterEvents(r)

	var names []string
	r.On("all", func(args ...any) { names = append(names, args[0].(string)) })

	var historyRoute string
	r.History().On("route", func(args ...any) { historyRoute = args[1].(string) })

	r.Route("inbox", "inbox", noop)
	_, err := r.History().LoadURL("inbox")
	assert.Nil(t, err)

	assert.DeepEqual(t, names, []string{"before", "after", "route:inbox", "route"})
	assert.Equal(t, historyRoute, "inbox")
}

func TestRoutesBeforeInstallAreNotBracketed(t *testing.T) {
	r := newRouter("/")
	r.Route("early", "early", noop)
	atlas.RouterEvents(r)
	r.Route("late", "late", noop)

	journal := atlas.NewJournal().WatchRouter(r)
	_, _ = r.History().LoadURL("early")
	assert.Equal(t, len(journal.Entries()), 0)

	_, _ = r.History().LoadURL("late")
	assert.Equal(t, len(journal.Entries()), 2)
}
