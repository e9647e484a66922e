// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package arenatree

import (
	"fmt"

	"github.com/hashicorp/go-uuid"
)

// coreTree is the arena backing one Tree: an indexable vector of optional
// node slots plus a LIFO free list of vacated indices. It owns every node,
// issues and recycles slot indices, and is the single source of truth for
// whether a NodeID currently names a live node.
type coreTree[T any] struct {
	id      string
	root    *NodeID
	nodes   []*Node[T]
	freeIDs []NodeID
}

func newCoreTree[T any](nodeCapacity, swapCapacity int) coreTree[T] {
	treeID, err := uuid.GenerateUUID()
	if err != nil {
		panic(fmt.Sprintf("arenatree: generating tree id: %v", err))
	}
	return coreTree[T]{
		id:      treeID,
		nodes:   make([]*Node[T], 0, nodeCapacity),
		freeIDs: make([]NodeID, 0, swapCapacity),
	}
}

// insert places node into the arena and returns its NodeID, reusing the most
// recently freed slot when one exists. It never fails.
func (c *coreTree[T]) insert(node *Node[T]) NodeID {
	if n := len(c.freeIDs); n > 0 {
		id := c.freeIDs[n-1]
		c.freeIDs = c.freeIDs[:n-1]
		c.nodes[id.index] = node
		return id
	}
	id := NodeID{treeID: c.id, index: len(c.nodes)}
	c.nodes = append(c.nodes, node)
	return id
}

// remove vacates the slot named by id and returns its node with links still
// intact. The caller must have validated id. Root tracking is cleared when
// the removed node was the root.
func (c *coreTree[T]) remove(id NodeID) *Node[T] {
	node := c.getUnsafe(id)
	c.nodes[id.index] = nil
	c.freeIDs = append(c.freeIDs, id)
	if c.root != nil && *c.root == id {
		c.root = nil
	}
	return node
}

// get returns the node named by id after validating it.
func (c *coreTree[T]) get(id NodeID) (*Node[T], error) {
	if err := c.validate(id); err != nil {
		return nil, err
	}
	return c.nodes[id.index], nil
}

// getUnsafe returns the node named by id without validation. It is only for
// ids already validated (or discovered through live links) during the current
// operation; a vacant slot here means internal corruption and panics.
func (c *coreTree[T]) getUnsafe(id NodeID) *Node[T] {
	node := c.nodes[id.index]
	if node == nil {
		panic(fmt.Sprintf("arenatree: %v names a vacant slot in what should be pre-validated access", id))
	}
	return node
}

// lookup returns the node named by id, or nil when the slot is vacant or the
// id is foreign. Unlike getUnsafe it never panics; iterators use it so that a
// mutation during iteration ends the walk instead of crashing.
func (c *coreTree[T]) lookup(id NodeID) *Node[T] {
	if id.treeID != c.id || id.index < 0 || id.index >= len(c.nodes) {
		return nil
	}
	return c.nodes[id.index]
}

// validate decides whether id currently names a live node in this arena.
// A foreign or zero id fails with ErrInvalidNodeIDForTree; a vacant slot
// fails with ErrNodeIDNoLongerValid. An index outside the ever-allocated
// range cannot be produced by a legitimately obtained NodeID, so it is
// treated as a bug and panics.
func (c *coreTree[T]) validate(id NodeID) error {
	if id.treeID != c.id {
		return ErrInvalidNodeIDForTree
	}
	if id.index < 0 || id.index >= len(c.nodes) {
		panic(fmt.Sprintf("arenatree: %v is out of bounds (%d slots allocated); this is a bug", id, len(c.nodes)))
	}
	if c.nodes[id.index] == nil {
		return ErrNodeIDNoLongerValid
	}
	return nil
}

func (c *coreTree[T]) rootID() (NodeID, bool) {
	if c.root == nil {
		return NodeID{}, false
	}
	return *c.root, true
}

func (c *coreTree[T]) setRoot(id *NodeID) {
	if id == nil {
		c.root = nil
		return
	}
	r := *id
	c.root = &r
}
