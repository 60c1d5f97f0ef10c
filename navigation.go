package atlas

import (
	"strings"

	"github.com/rohanthewiz/atlas/consts"
)

// NavigationInterceptor brackets every dispatch attempt of a History with
// lifecycle events on that history:
//
//	willNavigate(from, to)
//	didNavigate(from, to)     // a route matched
//	didNotNavigate(from, to)  // nothing matched
//
// from is the fragment captured by the Navigate that led here, or the
// history's recorded fragment when the dispatch came from the location
// itself (back/forward). to is the normalized target fragment.
type NavigationInterceptor struct {
	history *History

	// set by a wrapped Navigate, consumed and cleared by the next wrapped LoadURL
	pending    string
	hasPending bool
}

// NewNavigationInterceptor creates an interceptor for h. It does not install itself.
func NewNavigationInterceptor(h *History) *NavigationInterceptor {
	return &NavigationInterceptor{history: h}
}

// Pending returns the fragment captured by Navigate that no LoadURL has consumed yet.
// A Navigate that dispatches nothing (no Trigger, an unchanged fragment, or a
// history not yet started) leaves its capture pending, and the next LoadURL,
// browser-driven ones included, reports it as from.
func (ni *NavigationInterceptor) Pending() (string, bool) {
	return ni.pending, ni.hasPending
}

// WrapNavigate captures the current fragment before next changes it.
// The capture is kept until a LoadURL consumes it, even when next dispatches nothing.
func (ni *NavigationInterceptor) WrapNavigate(next NavigateFunc) NavigateFunc {
	return func(fragment string, opts NavigateOptions) (bool, error) {
		ni.pending = ni.history.GetFragment("")
		ni.hasPending = true
		return next(fragment, opts)
	}
}

// WrapLoadURL resolves from and to, announces the attempt and reports its outcome.
// Only an empty path reads the location; "/" dispatches the empty fragment.
// A handler error is returned unchanged and neither didNavigate nor didNotNavigate fires.
func (ni *NavigationInterceptor) WrapLoadURL(next LoadURLFunc) LoadURLFunc {
	return func(path string) (bool, error) {
		if path == "" {
			path = ni.history.GetFragment("")
		}

		from := ni.history.Fragment()
		if ni.hasPending {
			from = ni.pending
		}
		to := NormalizeFragment(path)

		ni.pending, ni.hasPending = "", false

		ni.history.Trigger(consts.EventWillNavigate, from, to)

		matched, err := next(to)
		if err != nil {
			return matched, err
		}

		if matched {
			ni.history.Trigger(consts.EventDidNavigate, from, to)
			return true, nil
		}
		ni.history.Trigger(consts.EventDidNotNavigate, from, to)
		return false, nil
	}
}

// Install wraps the Navigate and LoadURL entry points of its history.
// Installing twice is a no-op.
func (ni *NavigationInterceptor) Install() {
	h := ni.history
	if h.navigation != nil {
		return
	}
	h.navigate = ni.WrapNavigate(h.navigate)
	h.loadURL = ni.WrapLoadURL(h.loadURL)
	h.navigation = ni
}

// NavigationEvents installs a navigation interceptor on h, or returns the one already installed.
func NavigationEvents(h *History) *NavigationInterceptor {
	if h.navigation != nil {
		return h.navigation
	}
	ni := NewNavigationInterceptor(h)
	ni.Install()
	return ni
}

// NormalizeFragment strips one leading and one trailing slash.
//
//	"/inbox/"  => "inbox"
//	"//inbox"  => "/inbox"
func NormalizeFragment(path string) string {
	path = strings.TrimPrefix(path, consts.FwdSlash)
	return strings.TrimSuffix(path, consts.FwdSlash)
}
