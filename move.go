// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package arenatree

// MoveNode relocates the subtree rooted at id per behavior. Moving a node
// under itself is a no-op.
//
// Moving a node under one of its own descendants cannot simply relink, or it
// would create a cycle. In that case the child of the moving node that lies
// on the path to the destination (the pivot) is detached first and takes
// over the moving node's old position, then the moving node is attached
// under the destination.
func (t *Tree[T]) MoveNode(id NodeID, behavior MoveBehavior) error {
	if err := t.core.validate(id); err != nil {
		return err
	}
	if behavior.parent != nil {
		parentID := *behavior.parent
		if err := t.core.validate(parentID); err != nil {
			return err
		}
		t.moveToParent(id, parentID)
		return nil
	}
	t.moveToRoot(id)
	return nil
}

// findSubtreeRoot walks parent links upward from lowerID looking for
// upperID. When upperID is an ancestor, it returns the child of upperID on
// the path down to lowerID (the pivot) and true; otherwise false.
func (t *Tree[T]) findSubtreeRoot(lowerID, upperID NodeID) (NodeID, bool) {
	current := lowerID
	for {
		parent := t.core.getUnsafe(current).parent
		if parent == nil {
			// ran out of ancestors without meeting upperID
			return NodeID{}, false
		}
		if *parent == upperID {
			return current, true
		}
		current = *parent
	}
}

func (t *Tree[T]) moveToParent(id, parentID NodeID) {
	// a node has no position under itself to move to
	if id == parentID {
		return
	}

	if pivotID, ok := t.findSubtreeRoot(parentID, id); ok {
		// id sits above parentID: moving it down its own subtree. The
		// pivot absorbs id's old position before id is re-attached.
		rootID, hasRoot := t.core.rootID()

		if hasRoot && rootID == id {
			t.detachFromParent(id, pivotID)
			t.clearParent(pivotID)
			t.core.setRoot(&pivotID)
			t.setAsParentAndChild(parentID, id)
			return
		}

		if oldParent := t.core.getUnsafe(id).parent; oldParent != nil {
			oldParentID := *oldParent
			t.detachFromParent(oldParentID, id)
			t.setAsParentAndChild(oldParentID, pivotID)
		} else {
			// id is an orphan; the pivot becomes one too
			t.clearParent(pivotID)
		}
		t.detachFromParent(id, pivotID)
		t.setAsParentAndChild(parentID, id)
		return
	}

	// plain move across or up the tree
	if oldParent := t.core.getUnsafe(id).parent; oldParent != nil {
		t.detachFromParent(*oldParent, id)
	}
	t.setAsParentAndChild(parentID, id)

	if rootID, hasRoot := t.core.rootID(); hasRoot && rootID == id {
		// the old root now hangs inside a formerly disconnected component;
		// that component's top ancestor takes over the root slot
		top := parentID
		for {
			parent := t.core.getUnsafe(top).parent
			if parent == nil {
				break
			}
			top = *parent
		}
		t.core.setRoot(&top)
	}
}

// moveToRoot makes id the root, leaving its children in place, then moves
// the previous root (when it exists and differs from id) underneath it so
// the single-root invariant holds.
func (t *Tree[T]) moveToRoot(id NodeID) {
	oldRoot := t.core.root
	var oldRootID *NodeID
	if oldRoot != nil {
		r := *oldRoot
		oldRootID = &r
	}

	if parent := t.core.getUnsafe(id).parent; parent != nil {
		t.detachFromParent(*parent, id)
	}
	t.clearParent(id)
	t.core.setRoot(&id)

	if oldRootID != nil && *oldRootID != id {
		t.moveToParent(*oldRootID, id)
	}
}
