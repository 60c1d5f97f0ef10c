package atlas

import "github.com/rohanthewiz/atlas/consts"

// RouteInfo describes a matched route.
type RouteInfo struct {
	Route string
	Name  string
}

// IsZero reports whether info is the empty record passed before the first transition.
func (info RouteInfo) IsZero() bool {
	return info == RouteInfo{}
}

// TransitionInterceptor brackets every route handler with "before" and "after"
// events on the router that owns the route:
//
//	before(previous, info)
//	handler(router, params)
//	after(previous, info)
//
// previous is the last settled transition, the zero RouteInfo at first.
// When the handler fails, its error is returned as is, "after" is not
// triggered and previous is left alone.
type TransitionInterceptor struct {
	// written only by a wrapped handler after "after" fires
	previous RouteInfo
}

// NewTransitionInterceptor creates an interceptor with no settled transition.
func NewTransitionInterceptor() *TransitionInterceptor {
	return &TransitionInterceptor{}
}

// Previous returns the last settled transition.
func (ti *TransitionInterceptor) Previous() RouteInfo {
	return ti.previous
}

// Wrap returns a registration entry point that hands route a bracketed handler.
func (ti *TransitionInterceptor) Wrap(route RouteFunc) RouteFunc {
	return func(pattern, name string, handler Handler) {
		route(pattern, name, ti.bracket(pattern, name, handler))
	}
}

func (ti *TransitionInterceptor) bracket(pattern, name string, handler Handler) Handler {
	return func(r *Router, params Params) error {
		info := RouteInfo{Route: pattern, Name: name}
		previous := ti.previous

		r.Trigger(consts.EventBefore, previous, info)
		if err := handler(r, params); err != nil {
			return err
		}
		r.Trigger(consts.EventAfter, previous, info)

		ti.previous = info
		return nil
	}
}

// Install wraps the registration entry point of r.
// One interceptor may be installed on several routers to share its carry-over.
// Installing on a router that already has an interceptor is a no-op.
func (ti *TransitionInterceptor) Install(r *Router) {
	if r.transitions != nil {
		return
	}
	r.route = ti.Wrap(r.route)
	r.transitions = ti
}

// RouterEvents installs a transition interceptor on r, or returns the one already installed.
func RouterEvents(r *Router) *TransitionInterceptor {
	if r.transitions != nil {
		return r.transitions
	}
	ti := NewTransitionInterceptor()
	ti.Install(r)
	return ti
}
