package rtr

import "github.com/rohanthewiz/atlas/consts"

// Tree is a radix tree keyed by slash-separated paths.
// Segments starting with ':' capture one segment, segments starting with '*' capture the rest.
//
//	root
//	 └── "/users"          (users)
//	      └── ":"          (parameter)
//	           └── "id"    (users/:id)
//
// The zero value is ready to use.
type Tree[T any] struct {
	root treeNode[T]
}

// Add inserts data for path, splitting nodes where the new path diverges.
// Adding an existing path replaces its data.
func (tree *Tree[T]) Add(path string, data T) {
	i := 0      // position in path
	offset := 0 // where the current node's prefix starts in path
	node := &tree.root

	for {
	begin:
		switch node.kind {
		case consts.RuneColon:
			// same parameter route added twice
			if i == len(path) {
				node.assign(data)
				return
			}

			// separator after the parameter name: move to the child
			if path[i] == consts.RuneFwdSlash {
				var control flow
				node, offset, control = node.end(path, data, i, offset)
				if control == flowStop {
					return
				}
				goto next
			}

		default:
			if i == len(path) {
				// node: users|    path: users|
				if i-offset == len(node.prefix) {
					node.assign(data)
					return
				}

				// node: users|/new    path: users|
				node.split(i-offset, "", data)
				return
			}

			// node: /|    path: /|users
			if i-offset == len(node.prefix) {
				var control flow
				node, offset, control = node.end(path, data, i, offset)

				switch control {
				case flowStop:
					return
				case flowBegin:
					goto begin
				case flowNext:
					goto next
				}
			}

			// node: /u|sers    path: /u|pdates
			if path[i] != node.prefix[i-offset] {
				node.split(i-offset, path[i:], data)
				return
			}
		}

	next:
		i++
	}
}

// Lookup returns the data registered for path and the captured parameters.
// ok is false when nothing matched.
func (tree *Tree[T]) Lookup(path string) (data T, params []Parameter, ok bool) {
	data, ok = tree.walk(path, &params)
	return data, params, ok
}

// walk descends the tree for path, appending captures to params.
// A wildcard seen on the way down is kept as the fallback for a miss;
// captures made past it are dropped when it is used.
func (tree *Tree[T]) walk(path string, params *[]Parameter) (T, bool) {
	var (
		i            uint
		wildcardPath string
		wildcardKeep int
		wildcard     *treeNode[T]
		node         = &tree.root
	)

	// nearly every key starts with the same byte as the root prefix
	if len(path) > 0 && len(node.prefix) > 0 && path[0] == node.prefix[0] {
		i = 1
	}

begin:
	for i < uint(len(path)) {
		if i == uint(len(node.prefix)) {
			if node.wildcard != nil {
				wildcard = node.wildcard
				wildcardPath = path[i:]
				wildcardKeep = len(*params)
			}

			char := path[i]

			if char >= node.startIndex && char < node.endIndex {
				index := node.indices[char-node.startIndex]

				if index != 0 {
					node = node.children[index]
					path = path[i:]
					i = 1
					continue
				}
			}

			if node.parameter != nil {
				node = node.parameter
				path = path[i:]
				i = 1

				for i < uint(len(path)) {
					// node: :id|/posts    path: 42|/posts
					if path[i] == consts.RuneFwdSlash {
						*params = append(*params, Parameter{Key: node.prefix, Value: path[:i]})
						index := node.childIndex(consts.RuneFwdSlash)
						if index == 0 {
							goto notFound
						}
						node = node.children[index]
						path = path[i:]
						i = 1
						goto begin
					}

					i++
				}

				if node.set {
					*params = append(*params, Parameter{Key: node.prefix, Value: path[:i]})
					return node.data, true
				}
			}

			goto notFound
		}

		if path[i] != node.prefix[i] {
			goto notFound
		}

		i++
	}

	if i == uint(len(node.prefix)) {
		if node.set {
			return node.data, true
		}

		// node: files/|*path    path: files/|
		if node.wildcard != nil {
			*params = append(*params, Parameter{Key: node.wildcard.prefix, Value: ""})
			return node.wildcard.data, true
		}
	}

notFound:
	if wildcard != nil {
		*params = append((*params)[:wildcardKeep], Parameter{Key: wildcard.prefix, Value: wildcardPath})
		return wildcard.data, true
	}

	*params = nil
	var empty T
	return empty, false
}
