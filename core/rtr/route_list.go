package rtr

// RouteList describes one registered pattern, for inspection and debugging.
type RouteList struct {
	Pattern    string
	Dynamic    bool // pattern has :params or a *splat
	HandlerRef string
}
