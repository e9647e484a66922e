// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package arenatree

import (
	"fmt"
	"slices"
)

// SwapNodes exchanges the positions of the two nodes named by firstID and
// secondID per behavior. Both ids are validated before anything is touched.
//
// Each behavior distinguishes the ancestor/descendant relationship from the
// unrelated ("across") one, because swapping along an ancestry line has to
// splice the lower node into the upper node's old position instead of a
// plain exchange. The relationship test is the same upward walk MoveNode
// uses.
func (t *Tree[T]) SwapNodes(firstID, secondID NodeID, behavior SwapBehavior) error {
	if err := t.core.validate(firstID); err != nil {
		return err
	}
	if err := t.core.validate(secondID); err != nil {
		return err
	}
	switch behavior {
	case TakeChildren:
		t.swapTakeChildren(firstID, secondID)
	case LeaveChildren:
		t.swapLeaveChildren(firstID, secondID)
	case ChildrenOnly:
		t.swapChildrenOnly(firstID, secondID)
	default:
		panic(fmt.Sprintf("arenatree: unknown swap behavior %d", behavior))
	}
	return nil
}

// lowerUpper orients a pair along their ancestry line: when one node is an
// ancestor of the other it returns (descendant, ancestor, true).
func (t *Tree[T]) lowerUpper(firstID, secondID NodeID) (NodeID, NodeID, bool) {
	if _, ok := t.findSubtreeRoot(firstID, secondID); ok {
		return firstID, secondID, true
	}
	if _, ok := t.findSubtreeRoot(secondID, firstID); ok {
		return secondID, firstID, true
	}
	return NodeID{}, NodeID{}, false
}

// swapTakeChildren trades the two nodes' places wholesale; children stay
// attached to their nodes and travel with them.
func (t *Tree[T]) swapTakeChildren(firstID, secondID NodeID) {
	if lowerID, upperID, ok := t.lowerUpper(firstID, secondID); ok {
		// ancestry line: splice lower into upper's old position, then
		// hang upper beneath it.
		upperParent := t.core.getUnsafe(upperID).parent
		var upperParentID *NodeID
		if upperParent != nil {
			p := *upperParent
			upperParentID = &p
		}

		lower := t.core.getUnsafe(lowerID)
		// lower is below upper, so it has a parent for sure
		lowerParentID := *lower.parent
		lower.setParent(upperParentID)

		t.detachFromParent(lowerParentID, lowerID)

		if upperParentID != nil {
			t.core.getUnsafe(*upperParentID).replaceChild(upperID, lowerID)
		} else if rootID, hasRoot := t.core.rootID(); hasRoot && rootID == upperID {
			t.core.setRoot(&lowerID)
		}

		t.core.getUnsafe(upperID).setParent(&lowerID)
		t.core.getUnsafe(lowerID).addChild(upperID)
		return
	}

	// just across

	firstParent := t.core.getUnsafe(firstID).parent
	secondParent := t.core.getUnsafe(secondID).parent

	switch {
	case firstParent == nil && secondParent == nil:
		// two parentless nodes (or the root with itself): no positions to
		// exchange
		return

	case firstParent == nil:
		// first is the root or an orphan; it takes second's slot and second
		// becomes parentless in its stead
		secondParentID := *secondParent
		t.core.getUnsafe(secondParentID).replaceChild(secondID, firstID)
		t.core.getUnsafe(firstID).setParent(&secondParentID)
		t.core.getUnsafe(secondID).setParent(nil)
		if rootID, hasRoot := t.core.rootID(); hasRoot && rootID == firstID {
			t.core.setRoot(&secondID)
		}

	case secondParent == nil:
		firstParentID := *firstParent
		t.core.getUnsafe(firstParentID).replaceChild(firstID, secondID)
		t.core.getUnsafe(firstID).setParent(nil)
		t.core.getUnsafe(secondID).setParent(&firstParentID)
		if rootID, hasRoot := t.core.rootID(); hasRoot && rootID == secondID {
			t.core.setRoot(&firstID)
		}

	case *firstParent == *secondParent:
		parent := t.core.getUnsafe(*firstParent)
		firstIndex := parent.childIndex(firstID)
		secondIndex := parent.childIndex(secondID)
		parent.children[firstIndex], parent.children[secondIndex] =
			parent.children[secondIndex], parent.children[firstIndex]

	default:
		firstParentID := *firstParent
		secondParentID := *secondParent

		t.core.getUnsafe(firstID).setParent(&secondParentID)
		t.core.getUnsafe(secondID).setParent(&firstParentID)

		t.core.getUnsafe(firstParentID).replaceChild(firstID, secondID)
		t.core.getUnsafe(secondParentID).replaceChild(secondID, firstID)
	}
}

// swapLeaveChildren trades the two nodes' places but each node's children
// stay behind, re-attached to the node that now occupies their old spot.
//
// The children's parent links are rewritten before the two nodes' own parent
// links are read: when the pair lies on one ancestry line those reads pick
// up the rewritten values, and the case analysis below relies on that to
// land the nodes correctly. Do not reorder.
func (t *Tree[T]) swapLeaveChildren(firstID, secondID NodeID) {
	t.setParentOfChildren(firstID, &secondID)
	t.setParentOfChildren(secondID, &firstID)

	firstChildren := t.core.getUnsafe(firstID).takeChildren()
	secondChildren := t.core.getUnsafe(secondID).takeChildren()
	t.core.getUnsafe(firstID).setChildren(secondChildren)
	t.core.getUnsafe(secondID).setChildren(firstChildren)

	firstParent := t.core.getUnsafe(firstID).parent
	secondParent := t.core.getUnsafe(secondID).parent

	switch {
	case firstParent != nil && secondParent != nil:
		firstParentID := *firstParent
		secondParentID := *secondParent

		firstIndex := t.core.getUnsafe(firstParentID).childIndex(firstID)
		secondIndex := t.core.getUnsafe(secondParentID).childIndex(secondID)

		t.core.getUnsafe(firstParentID).children[firstIndex] = secondID
		t.core.getUnsafe(secondParentID).children[secondIndex] = firstID

		t.core.getUnsafe(firstID).setParent(&secondParentID)
		t.core.getUnsafe(secondID).setParent(&firstParentID)

	case firstParent != nil:
		firstParentID := *firstParent

		firstIndex := t.core.getUnsafe(firstParentID).childIndex(firstID)
		t.core.getUnsafe(firstParentID).children[firstIndex] = secondID

		t.core.getUnsafe(firstID).setParent(nil)
		t.core.getUnsafe(secondID).setParent(&firstParentID)

		if rootID, hasRoot := t.core.rootID(); hasRoot && rootID == secondID {
			t.core.setRoot(&firstID)
		}

	case secondParent != nil:
		secondParentID := *secondParent

		secondIndex := t.core.getUnsafe(secondParentID).childIndex(secondID)
		t.core.getUnsafe(secondParentID).children[secondIndex] = firstID

		t.core.getUnsafe(firstID).setParent(&secondParentID)
		t.core.getUnsafe(secondID).setParent(nil)

		if rootID, hasRoot := t.core.rootID(); hasRoot && rootID == firstID {
			t.core.setRoot(&secondID)
		}

	default:
		if rootID, hasRoot := t.core.rootID(); hasRoot {
			if rootID == firstID {
				t.core.setRoot(&secondID)
			} else if rootID == secondID {
				t.core.setRoot(&firstID)
			}
		}
	}
}

// swapChildrenOnly leaves both nodes where they are and exchanges only their
// children. Along an ancestry line the lower node is itself among the
// handles that would be reassigned to it, so it is excluded from that set
// and the structural ancestor→descendant link is re-established afterwards;
// a node never ends up its own child.
func (t *Tree[T]) swapChildrenOnly(firstID, secondID NodeID) {
	lowerID, upperID, related := t.lowerUpper(firstID, secondID)

	firstChildren := slices.Clone(t.core.getUnsafe(firstID).Children())
	secondChildren := slices.Clone(t.core.getUnsafe(secondID).Children())

	if related {
		// lower is below upper, so it has a parent for sure
		lowerParentID := *t.core.getUnsafe(lowerID).parent

		var upperChildren, lowerChildren []NodeID
		if upperID == firstID {
			upperChildren, lowerChildren = firstChildren, secondChildren
		} else {
			upperChildren, lowerChildren = secondChildren, firstChildren
		}

		for _, childID := range upperChildren {
			t.core.getUnsafe(childID).setParent(&lowerID)
		}
		for _, childID := range lowerChildren {
			t.core.getUnsafe(childID).setParent(&upperID)
		}

		if upperID == lowerParentID {
			// lower is a direct child of upper; keep it out of its own
			// new child list
			upperChildren = slices.DeleteFunc(upperChildren, func(id NodeID) bool {
				return id == lowerID
			})
		} else {
			// lower moves up to hang directly under upper; its old
			// parent must not keep a stale entry for it
			t.detachFromParent(lowerParentID, lowerID)
		}

		t.core.getUnsafe(upperID).setChildren(lowerChildren)
		t.core.getUnsafe(lowerID).setChildren(upperChildren)

		t.setAsParentAndChild(upperID, lowerID)
		return
	}

	// just across

	for _, childID := range firstChildren {
		t.core.getUnsafe(childID).setParent(&secondID)
	}
	for _, childID := range secondChildren {
		t.core.getUnsafe(childID).setParent(&firstID)
	}

	t.core.getUnsafe(firstID).setChildren(secondChildren)
	t.core.getUnsafe(secondID).setChildren(firstChildren)
}
