// Package atlas layers lifecycle events and conveniences onto a small
// client-side model, collection, router and history toolkit.
//
// Two interceptors turn plain calls into observable events:
//
//   - RouterEvents wraps route registration so every matched handler is
//     bracketed by "before" and "after" on its router.
//   - NavigationEvents wraps History.Navigate and History.LoadURL so every
//     dispatch attempt fires "willNavigate", then "didNavigate" or
//     "didNotNavigate", on the history.
//
// Alongside them, DefineModel builds an accessor table per model type and
// Collection offers SortWith, SortOn and ReverseSortOn.
//
// Everything runs synchronously on the caller's goroutine. None of the types
// are safe for concurrent use.
package atlas

// All installs both interceptors: transition events on r and navigation events on its history.
// Install before registering routes; handlers registered earlier are not bracketed.
func All(r *Router) (*TransitionInterceptor, *NavigationInterceptor) {
	return RouterEvents(r), NavigationEvents(r.History())
}
