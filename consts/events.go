package consts

// Route transition events, triggered on a Router.
const (
	EventBefore = "before"
	EventAfter  = "after"
	EventRoute  = "route"
	// EventRoutePrefix is joined with a route name, e.g. "route:show".
	EventRoutePrefix = "route:"
)

// Navigation lifecycle events, triggered on a History.
const (
	EventWillNavigate   = "willNavigate"
	EventDidNavigate    = "didNavigate"
	EventDidNotNavigate = "didNotNavigate"
)

// Model and collection events.
const (
	EventChange       = "change"
	EventChangePrefix = "change:"
	EventReset        = "reset"
	EventAdd          = "add"
	// EventAll listeners receive every event, name first.
	EventAll = "all"
)

// IDAttribute is the identity attribute. It never gets a synthesized accessor.
const IDAttribute = "id"
