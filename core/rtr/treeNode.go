package rtr

import (
	"strings"

	"github.com/rohanthewiz/atlas/consts"
)

// treeNode is one node of the radix tree.
// Static children are found through indices, a byte-offset table over [startIndex, endIndex).
// Parameter and wildcard children are kept apart so static segments always win.
type treeNode[T any] struct {
	prefix     string
	data       T
	set        bool // data was assigned for this exact path
	children   []*treeNode[T]
	parameter  *treeNode[T]
	wildcard   *treeNode[T]
	indices    []uint8
	startIndex uint8
	endIndex   uint8
	kind       byte // ':', '*' or 0 for static
}

func (node *treeNode[T]) assign(data T) {
	node.data = data
	node.set = true
}

// split cuts the node at index. The tail keeps the old data and children;
// path (if any) becomes a sibling of the tail. An empty path assigns data to the node itself.
//
//	"users" + "user"  =>  "user" (new) -> "s" (old)
func (node *treeNode[T]) split(index int, path string, data T) {
	tail := node.clone(node.prefix[index:])
	node.reset(node.prefix[:index])

	if path == "" {
		node.assign(data)
		node.addChild(tail)
		return
	}

	node.addChild(tail)
	node.append(path, data)
}

// clone copies the node under a new prefix. Children are shared, not duplicated.
func (node *treeNode[T]) clone(prefix string) *treeNode[T] {
	return &treeNode[T]{
		prefix:     prefix,
		data:       node.data,
		set:        node.set,
		indices:    node.indices,
		startIndex: node.startIndex,
		endIndex:   node.endIndex,
		children:   node.children,
		parameter:  node.parameter,
		wildcard:   node.wildcard,
		kind:       node.kind,
	}
}

// reset turns the node into a bare routing node with the given prefix.
func (node *treeNode[T]) reset(prefix string) {
	var empty T
	node.prefix = prefix
	node.data = empty
	node.set = false
	node.parameter = nil
	node.wildcard = nil
	node.kind = 0
	node.startIndex = 0
	node.endIndex = 0
	node.indices = nil
	node.children = nil
}

// addChild indexes child by the first byte of its prefix, growing the index range as needed.
// Slot 0 of children is reserved to mean "no child".
func (node *treeNode[T]) addChild(child *treeNode[T]) {
	if len(node.children) == 0 {
		node.children = append(node.children, nil)
	}

	firstChar := child.prefix[0]

	switch {
	case node.startIndex == 0:
		node.startIndex = firstChar
		node.indices = []uint8{0}
		node.endIndex = node.startIndex + uint8(len(node.indices))

	case firstChar < node.startIndex:
		diff := node.startIndex - firstChar
		newIndices := make([]uint8, diff+uint8(len(node.indices)))
		copy(newIndices[diff:], node.indices)
		node.startIndex = firstChar
		node.indices = newIndices
		node.endIndex = node.startIndex + uint8(len(node.indices))

	case firstChar >= node.endIndex:
		diff := firstChar - node.endIndex + 1
		newIndices := make([]uint8, diff+uint8(len(node.indices)))
		copy(newIndices, node.indices)
		node.indices = newIndices
		node.endIndex = node.startIndex + uint8(len(node.indices))
	}

	index := node.indices[firstChar-node.startIndex]

	if index == 0 {
		node.indices[firstChar-node.startIndex] = uint8(len(node.children))
		node.children = append(node.children, child)
		return
	}

	node.children[index] = child
}

// childIndex returns the children slot for a static child starting with char, 0 when there is none.
func (node *treeNode[T]) childIndex(char byte) uint8 {
	if char < node.startIndex || char >= node.endIndex {
		return 0
	}
	return node.indices[char-node.startIndex]
}

// append hangs path below the node, creating static, parameter and wildcard nodes as it goes.
func (node *treeNode[T]) append(path string, data T) {
	for {
		if path == "" {
			node.assign(data)
			return
		}

		paramStart := strings.IndexByte(path, consts.RuneColon)
		if paramStart == -1 {
			paramStart = strings.IndexByte(path, consts.RuneAsterisk)
		}

		// only static text left
		if paramStart == -1 {
			if node.prefix == "" {
				node.prefix = path
				node.assign(data)
				return
			}

			child := &treeNode[T]{prefix: path, data: data, set: true}
			node.addChild(child)
			return
		}

		// parameter or wildcard right here
		if paramStart == 0 {
			paramEnd := strings.IndexByte(path, consts.RuneFwdSlash)
			if paramEnd == -1 {
				paramEnd = len(path)
			}

			child := &treeNode[T]{
				prefix: path[1:paramEnd], // name without the marker
				kind:   path[paramStart],
			}

			switch child.kind {
			case consts.RuneColon:
				node.parameter = child
				node = child
				path = path[paramEnd:]
				continue

			case consts.RuneAsterisk:
				child.assign(data)
				node.wildcard = child
				return
			}
		}

		// static text, then a parameter further on
		if node.prefix == "" {
			node.prefix = path[:paramStart]
			path = path[paramStart:]
			continue
		}

		child := &treeNode[T]{prefix: path[:paramStart]}
		node.addChild(child)
		node = child
		path = path[paramStart:]
	}
}

// end decides where Add goes once the node prefix is fully matched.
func (node *treeNode[T]) end(path string, data T, i int, offset int) (*treeNode[T], int, flow) {
	char := path[i]

	if char >= node.startIndex && char < node.endIndex {
		index := node.indices[char-node.startIndex]

		if index != 0 {
			node = node.children[index]
			offset = i
			return node, offset, flowNext
		}
	}

	// root
	if node.prefix == "" {
		node.append(path[i:], data)
		return node, offset, flowStop
	}

	// node: users/|:id (has parameter)    path: users/|:id/edit
	if node.parameter != nil && path[i] == consts.RuneColon {
		node = node.parameter
		offset = i
		return node, offset, flowBegin
	}

	node.append(path[i:], data)
	return node, offset, flowStop
}
