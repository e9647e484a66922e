// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package arenatree

// Each structural operation takes a small closed mode type selecting one of
// its variants. Variants that need a target NodeID carry one; the rest carry
// nothing.

// InsertBehavior selects where Tree.Insert places a new node.
type InsertBehavior struct {
	parent *NodeID
}

// AsRoot inserts the new node as the tree's root. An existing root becomes
// the sole child of the new node.
func AsRoot() InsertBehavior {
	return InsertBehavior{}
}

// UnderNode inserts the new node as the last child of the node named by
// parentID.
func UnderNode(parentID NodeID) InsertBehavior {
	return InsertBehavior{parent: &parentID}
}

// RemoveBehavior selects what Tree.Remove does with the removed node's
// children.
type RemoveBehavior int

const (
	// DropChildren removes the node's entire subtree from the tree.
	DropChildren RemoveBehavior = iota

	// LiftChildren re-attaches the node's children to the node's parent.
	// If the node has no parent this behaves like OrphanChildren.
	LiftChildren

	// OrphanChildren clears the children's parent links and leaves them in
	// the arena as disconnected subtrees.
	OrphanChildren
)

func (b RemoveBehavior) String() string {
	switch b {
	case DropChildren:
		return "DropChildren"
	case LiftChildren:
		return "LiftChildren"
	case OrphanChildren:
		return "OrphanChildren"
	default:
		return "RemoveBehavior(unknown)"
	}
}

// MoveBehavior selects where Tree.MoveNode relocates a subtree.
type MoveBehavior struct {
	parent *NodeID
}

// ToRoot makes the moved node the tree's root; the previous root (if any,
// and if different from the moved node) becomes a child of it.
func ToRoot() MoveBehavior {
	return MoveBehavior{}
}

// ToParent re-attaches the moved node as the last child of the node named by
// parentID.
func ToParent(parentID NodeID) MoveBehavior {
	return MoveBehavior{parent: &parentID}
}

// SwapBehavior selects how Tree.SwapNodes treats the two nodes' children.
type SwapBehavior int

const (
	// TakeChildren swaps the two nodes' positions wholesale; each keeps its
	// own children attached.
	TakeChildren SwapBehavior = iota

	// LeaveChildren swaps the two nodes' positions but the children stay
	// behind, re-attached to whichever node now occupies their old spot.
	LeaveChildren

	// ChildrenOnly leaves both nodes in place and exchanges only their
	// children.
	ChildrenOnly
)

func (b SwapBehavior) String() string {
	switch b {
	case TakeChildren:
		return "TakeChildren"
	case LeaveChildren:
		return "LeaveChildren"
	case ChildrenOnly:
		return "ChildrenOnly"
	default:
		return "SwapBehavior(unknown)"
	}
}
