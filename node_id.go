// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package arenatree

import "fmt"

// NodeID is an opaque identifier for a Node inside one Tree. It pairs the
// owning tree's tag with the slot index the node occupies. NodeIDs are cheap
// to copy and compare, but they carry no liveness guarantee: a NodeID held
// across a removal goes stale, and every operation re-checks it against the
// tree before touching anything. Slot indices are recycled, so a stale NodeID
// must never be assumed to still name the node it was issued for.
//
// The zero NodeID belongs to no tree and fails validation everywhere with
// ErrInvalidNodeIDForTree.
type NodeID struct {
	treeID string
	index  int
}

// Index returns the arena slot index this NodeID names. It is mainly useful
// for debugging; the index alone does not identify a node across trees or
// across removal/insertion cycles.
func (id NodeID) Index() int {
	return id.index
}

func (id NodeID) String() string {
	return fmt.Sprintf("NodeID{tree: %s, index: %d}", id.treeID, id.index)
}
