// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package arenatree

// Node carries one payload plus the links that place it in a Tree: an
// optional parent NodeID and an ordered list of child NodeIDs. The links are
// maintained exclusively by Tree operations; callers read them through
// Parent and Children and mutate only the payload.
//
// Invariant (restored before every public Tree operation returns): a node C
// appears in P's child list iff C's parent is P's NodeID.
type Node[T any] struct {
	data     T
	parent   *NodeID
	children []NodeID
}

// NewNode creates a detached Node holding data. It joins a tree only once it
// is passed to Tree.Insert or TreeBuilder.WithRoot.
func NewNode[T any](data T) *Node[T] {
	return &Node[T]{data: data}
}

// Data returns the node's payload.
func (n *Node[T]) Data() T {
	return n.data
}

// SetData overwrites the node's payload.
func (n *Node[T]) SetData(data T) {
	n.data = data
}

// ReplaceData overwrites the node's payload and returns the previous one.
func (n *Node[T]) ReplaceData(data T) T {
	old := n.data
	n.data = data
	return old
}

// Parent returns the NodeID of this node's parent, if it has one.
func (n *Node[T]) Parent() (NodeID, bool) {
	if n.parent == nil {
		return NodeID{}, false
	}
	return *n.parent, true
}

// Children returns the node's child NodeIDs in stored order. The returned
// slice is the node's own bookkeeping; callers must treat it as read-only.
func (n *Node[T]) Children() []NodeID {
	return n.children
}

func (n *Node[T]) setParent(parent *NodeID) {
	if parent == nil {
		n.parent = nil
		return
	}
	p := *parent
	n.parent = &p
}

func (n *Node[T]) addChild(child NodeID) {
	n.children = append(n.children, child)
}

func (n *Node[T]) removeChild(child NodeID) {
	kept := n.children[:0]
	for _, id := range n.children {
		if id != child {
			kept = append(kept, id)
		}
	}
	n.children = kept
}

// replaceChild swaps oldID for newID in place, keeping the child's position.
func (n *Node[T]) replaceChild(oldID, newID NodeID) {
	for i, id := range n.children {
		if id == oldID {
			n.children[i] = newID
			return
		}
	}
}

func (n *Node[T]) childIndex(child NodeID) int {
	for i, id := range n.children {
		if id == child {
			return i
		}
	}
	return -1
}

func (n *Node[T]) takeChildren() []NodeID {
	children := n.children
	n.children = nil
	return children
}

func (n *Node[T]) setChildren(children []NodeID) {
	n.children = children
}
