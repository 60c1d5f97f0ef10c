package atlas

import "github.com/rohanthewiz/atlas/consts"

// Listener receives the payload of a triggered event.
type Listener func(args ...any)

// Emitter is anything events can be triggered on.
type Emitter interface {
	Trigger(name string, args ...any)
}

// Subscription identifies one registered listener so it can be removed with Off.
type Subscription struct {
	name string
	id   uint64
}

type listenerEntry struct {
	id   uint64
	fn   Listener
	once bool
}

// Events is a per-instance publish/subscribe hub.
// It is embedded by Router, History, Model and Collection.
// The zero value is ready to use. Not safe for concurrent use.
type Events struct {
	listeners map[string][]listenerEntry
	lastID    uint64
}

// On registers fn for the named event.
// Listeners on "all" receive every event with its name prepended to the payload.
func (e *Events) On(name string, fn Listener) Subscription {
	return e.add(name, fn, false)
}

// Once registers fn to run on the next trigger of the named event only.
func (e *Events) Once(name string, fn Listener) Subscription {
	return e.add(name, fn, true)
}

func (e *Events) add(name string, fn Listener, once bool) Subscription {
	if e.listeners == nil {
		e.listeners = make(map[string][]listenerEntry)
	}
	e.lastID++
	e.listeners[name] = append(e.listeners[name], listenerEntry{id: e.lastID, fn: fn, once: once})
	return Subscription{name: name, id: e.lastID}
}

// Off removes a listener. It reports whether the subscription was still active.
func (e *Events) Off(sub Subscription) bool {
	entries := e.listeners[sub.name]
	for i, entry := range entries {
		if entry.id == sub.id {
			e.listeners[sub.name] = append(entries[:i:i], entries[i+1:]...)
			return true
		}
	}
	return false
}

// OffAll removes every listener of the named event, or of all events when name is empty.
func (e *Events) OffAll(name string) {
	if name == "" {
		e.listeners = nil
		return
	}
	delete(e.listeners, name)
}

// HasListeners reports whether anything listens to name.
func (e *Events) HasListeners(name string) bool {
	return len(e.listeners[name]) > 0
}

// Trigger calls the listeners of name synchronously, in registration order,
// followed by the "all" listeners.
func (e *Events) Trigger(name string, args ...any) {
	e.dispatch(name, args)
	if name != consts.EventAll {
		e.dispatch(consts.EventAll, append([]any{name}, args...))
	}
}

func (e *Events) dispatch(name string, args []any) {
	entries := e.listeners[name]
	if len(entries) == 0 {
		return
	}

	// listeners may subscribe or unsubscribe while we run
	snapshot := make([]listenerEntry, len(entries))
	copy(snapshot, entries)

	for _, entry := range snapshot {
		if entry.once {
			e.Off(Subscription{name: name, id: entry.id})
		}
		entry.fn(args...)
	}
}
