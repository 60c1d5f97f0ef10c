package rtr

import (
	"fmt"
	"strings"

	"github.com/rohanthewiz/atlas/consts"
)

// Router matches fragments against registered patterns.
// Static patterns live in a hash table and win over dynamic ones,
// which live in a radix tree. Fragments carry no leading slash.
type Router[T any] struct {
	static  map[string]T
	dynamic Tree[T]
	list    []RouteList
}

// New creates an empty fragment router.
func New[T any]() *Router[T] {
	return &Router[T]{static: make(map[string]T, 16)}
}

// Add registers data for pattern. Registering the same pattern again replaces it.
func (r *Router[T]) Add(pattern string, data T) {
	dynamic := IsDynamic(pattern)
	if dynamic {
		r.dynamic.Add(treeKey(pattern), data)
	} else {
		r.static[pattern] = data
	}

	entry := RouteList{Pattern: pattern, Dynamic: dynamic, HandlerRef: fmt.Sprintf("%T", data)}
	for i := range r.list {
		if r.list[i].Pattern == pattern {
			r.list[i] = entry
			return
		}
	}
	r.list = append(r.list, entry)
}

// Lookup finds the data for fragment along with any captured parameters.
func (r *Router[T]) Lookup(fragment string) (data T, params []Parameter, ok bool) {
	if data, ok = r.static[fragment]; ok {
		return data, nil, true
	}
	return r.dynamic.Lookup(treeKey(fragment))
}

// ListRoutes returns the registered patterns in registration order.
func (r *Router[T]) ListRoutes() []RouteList {
	routes := make([]RouteList, len(r.list))
	copy(routes, r.list)
	return routes
}

// IsDynamic reports whether pattern has a parameter or splat segment.
func IsDynamic(pattern string) bool {
	return strings.IndexByte(pattern, consts.RuneColon) >= 0 ||
		strings.IndexByte(pattern, consts.RuneAsterisk) >= 0
}

// the tree expects every key to share a leading separator
func treeKey(s string) string {
	return consts.FwdSlash + s
}
