package atlas

import (
	"strings"

	"github.com/rohanthewiz/atlas/consts"
	"github.com/rohanthewiz/atlas/core/rtr"
	"github.com/rohanthewiz/logger"
)

// Callback is run by LoadURL when a registered pattern matches the fragment.
type Callback func(fragment string, params []rtr.Parameter) error

// NavigateFunc is the shape of the History navigate entry point.
type NavigateFunc func(fragment string, opts NavigateOptions) (bool, error)

// LoadURLFunc is the shape of the History dispatch entry point.
// It reports whether a registered pattern matched.
type LoadURLFunc func(path string) (bool, error)

// Traverser is implemented by locations that can move through their entries.
type Traverser interface {
	Back() bool
	Forward() bool
}

// History tracks the current fragment and dispatches it to registered callbacks.
// Navigate and LoadURL go through replaceable entry points so interceptors can wrap them.
// Not safe for concurrent use.
type History struct {
	Events
	location Location
	opts     HistoryOptions
	handlers *rtr.Router[Callback]
	fragment string
	started  bool

	navigate NavigateFunc
	loadURL  LoadURLFunc

	navigation *NavigationInterceptor
}

// NewHistory creates a history over loc.
func NewHistory(loc Location, opts ...HistoryOptions) *History {
	h := &History{
		location: loc,
		handlers: rtr.New[Callback](),
	}
	if len(opts) > 0 {
		h.opts = opts[0]
	}
	h.opts.Root = normalizeRoot(h.opts.Root)

	h.navigate = h.defaultNavigate
	h.loadURL = h.defaultLoadURL
	return h
}

// Route registers callback for pattern.
// Patterns may use ":name" for one segment and "*name" for the remainder.
func (h *History) Route(pattern string, callback Callback) {
	h.handlers.Add(pattern, callback)
}

// Routes lists the registered patterns.
func (h *History) Routes() []rtr.RouteList {
	return h.handlers.ListRoutes()
}

// Location returns the underlying location.
func (h *History) Location() Location {
	return h.location
}

// Fragment is the last fragment recorded by Navigate or LoadURL.
func (h *History) Fragment() string {
	return h.fragment
}

// Started reports whether Start has been called without a following Stop.
func (h *History) Started() bool {
	return h.started
}

// GetFragment returns override stripped of one leading '#' or '/'.
// An empty override reads the current location, minus the root.
func (h *History) GetFragment(override string) string {
	if override != "" {
		return stripLeading(override)
	}

	path := h.location.Path()
	if h.opts.Root != consts.FwdSlash {
		if trimmed, ok := strings.CutPrefix(path, h.opts.Root); ok {
			path = trimmed
		} else if path+consts.FwdSlash == h.opts.Root {
			path = ""
		}
	}
	return stripLeading(path)
}

// Start begins handling navigation.
// Unless Silent is set, the current location is dispatched right away.
func (h *History) Start() (bool, error) {
	if h.started {
		return false, ErrAlreadyStarted
	}
	h.started = true

	if h.opts.Verbose {
		logger.Info("History started", "root", h.opts.Root, "location", h.location.Path())
	}

	if h.opts.Silent {
		h.fragment = h.GetFragment("")
		return false, nil
	}
	return h.LoadURL("")
}

// Stop ends navigation handling. Registered routes are kept.
func (h *History) Stop() {
	h.started = false
}

// Navigate records fragment as current and updates the location.
// With Trigger set the fragment is also dispatched and the match result returned.
func (h *History) Navigate(fragment string, opts NavigateOptions) (bool, error) {
	return h.navigate(fragment, opts)
}

// LoadURL dispatches path, or the current location when path is empty.
// "/" is a path, the empty fragment, not a missing one.
func (h *History) LoadURL(path string) (bool, error) {
	if path == "" {
		path = h.GetFragment("")
	}
	return h.loadURL(path)
}

// CheckURL is the browser-driven entry point: when the location no longer
// matches the recorded fragment (back/forward, manual edits) it is dispatched.
func (h *History) CheckURL() (bool, error) {
	if !h.started {
		return false, ErrNotStarted
	}
	if h.GetFragment("") == h.fragment {
		return false, nil
	}

	matched, err := h.LoadURL("")
	if err != nil && h.opts.Verbose {
		logger.LogErr(err, "route handler failed on location change", "fragment", h.fragment)
	}
	return matched, err
}

// Back steps the location back and dispatches the result.
func (h *History) Back() (bool, error) {
	return h.traverse(func(t Traverser) bool { return t.Back() })
}

// Forward steps the location forward and dispatches the result.
func (h *History) Forward() (bool, error) {
	return h.traverse(func(t Traverser) bool { return t.Forward() })
}

func (h *History) traverse(move func(Traverser) bool) (bool, error) {
	t, ok := h.location.(Traverser)
	if !ok || !move(t) {
		return false, nil
	}
	return h.CheckURL()
}

func (h *History) defaultNavigate(fragment string, opts NavigateOptions) (bool, error) {
	if !h.started {
		return false, nil
	}

	fragment = stripLeading(fragment)
	if fragment == h.fragment {
		return false, nil
	}
	h.fragment = fragment

	path := h.opts.Root + fragment
	if opts.Replace {
		h.location.Replace(path)
	} else {
		h.location.Push(path)
	}

	if opts.Trigger {
		return h.LoadURL(fragment)
	}
	return false, nil
}

// defaultLoadURL dispatches path as given. An empty path is the empty fragment.
func (h *History) defaultLoadURL(path string) (bool, error) {
	fragment := stripLeading(path)
	h.fragment = fragment

	callback, params, ok := h.handlers.Lookup(fragment)
	if !ok {
		return false, nil
	}
	return true, callback(fragment, params)
}

func stripLeading(s string) string {
	if s != "" && (s[0] == consts.RuneHash || s[0] == consts.RuneFwdSlash) {
		return s[1:]
	}
	return s
}

// normalizeRoot always yields a root with leading and trailing slashes.
func normalizeRoot(root string) string {
	root = strings.Trim(root, consts.FwdSlash)
	if root == "" {
		return consts.FwdSlash
	}
	return consts.FwdSlash + root + consts.FwdSlash
}
