package atlas

import "github.com/rohanthewiz/atlas/consts"

// Entry is one recorded lifecycle event.
// Navigation events fill From and To, transition events fill Previous and Info.
type Entry struct {
	Event    string
	From     string
	To       string
	Previous RouteInfo
	Info     RouteInfo
}

// Journal records the lifecycle events of routers and histories in the order they fire.
type Journal struct {
	entries []Entry
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Watch records transition events of r and navigation events of its history.
func (j *Journal) Watch(r *Router) *Journal {
	j.WatchRouter(r)
	return j.WatchHistory(r.History())
}

// WatchRouter records "before" and "after" on r.
func (j *Journal) WatchRouter(r *Router) *Journal {
	for _, event := range []string{consts.EventBefore, consts.EventAfter} {
		r.On(event, func(args ...any) {
			if len(args) < 2 {
				return
			}
			previous, _ := args[0].(RouteInfo)
			info, _ := args[1].(RouteInfo)
			j.entries = append(j.entries, Entry{Event: event, Previous: previous, Info: info})
		})
	}
	return j
}

// WatchHistory records "willNavigate", "didNavigate" and "didNotNavigate" on h.
func (j *Journal) WatchHistory(h *History) *Journal {
	for _, event := range []string{consts.EventWillNavigate, consts.EventDidNavigate, consts.EventDidNotNavigate} {
		h.On(event, func(args ...any) {
			if len(args) < 2 {
				return
			}
			from, _ := args[0].(string)
			to, _ := args[1].(string)
			j.entries = append(j.entries, Entry{Event: event, From: from, To: to})
		})
	}
	return j
}

// Entries returns the recorded events, oldest first.
func (j *Journal) Entries() []Entry {
	entries := make([]Entry, len(j.entries))
	copy(entries, j.entries)
	return entries
}

// Names returns just the event names, oldest first.
func (j *Journal) Names() []string {
	names := make([]string, len(j.entries))
	for i, entry := range j.entries {
		names[i] = entry.Event
	}
	return names
}

// Clear forgets everything recorded so far. Subscriptions stay in place.
func (j *Journal) Clear() {
	j.entries = j.entries[:0]
}
