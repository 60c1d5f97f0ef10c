package atlas

import (
	"github.com/rohanthewiz/atlas/consts"
	"github.com/rohanthewiz/atlas/core/rtr"
)

// Params holds the values captured from a matched fragment.
type Params []rtr.Parameter

// Get returns the value captured for key, or "" when there is none.
func (p Params) Get(key string) string {
	for _, param := range p {
		if param.Key == key {
			return param.Value
		}
	}
	return ""
}

// Handler runs when its route matches. r is the router the route was registered on.
type Handler func(r *Router, params Params) error

// RouteFunc is the shape of the Router registration entry point.
type RouteFunc func(pattern, name string, handler Handler)

// Route is a pattern, name and handler triple for AddRoutes.
type Route struct {
	Pattern string
	Name    string
	Handler Handler
}

// Router binds named handlers to fragment patterns on a History.
// Registration goes through a replaceable entry point so interceptors can wrap handlers.
// Not safe for concurrent use.
type Router struct {
	Events
	history *History
	route   RouteFunc
	names   map[string]string // pattern -> name

	transitions *TransitionInterceptor
}

// NewRouter creates a router that registers its routes on h.
func NewRouter(h *History) *Router {
	r := &Router{history: h, names: make(map[string]string)}
	r.route = r.bind
	return r
}

// Route registers handler under pattern and name.
// Interceptors only see routes registered after they are installed.
func (r *Router) Route(pattern, name string, handler Handler) *Router {
	r.route(pattern, name, handler)
	return r
}

// AddRoutes registers each route in order.
func (r *Router) AddRoutes(routes ...Route) *Router {
	for _, route := range routes {
		r.Route(route.Pattern, route.Name, route.Handler)
	}
	return r
}

// Navigate forwards to the history.
func (r *Router) Navigate(fragment string, opts NavigateOptions) (bool, error) {
	return r.history.Navigate(fragment, opts)
}

// History returns the history the router registers on.
func (r *Router) History() *History {
	return r.history
}

// RouteName returns the name registered for pattern.
func (r *Router) RouteName(pattern string) (string, bool) {
	name, ok := r.names[pattern]
	return name, ok
}

// bind is the original registration entry point.
// After a successful handler it announces the route on the router and the history.
func (r *Router) bind(pattern, name string, handler Handler) {
	r.names[pattern] = name

	r.history.Route(pattern, func(fragment string, params []rtr.Parameter) error {
		args := Params(params)
		if err := handler(r, args); err != nil {
			return err
		}

		r.Trigger(consts.EventRoutePrefix+name, args)
		r.Trigger(consts.EventRoute, name, args)
		r.history.Trigger(consts.EventRoute, r, name, args)
		return nil
	})
}
