// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package arenatree

import (
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"
)

// Tree is an arena-backed tree of Node[T]s addressed by NodeIDs. All
// structural state lives in one arena; nodes never reference each other
// directly, only through NodeIDs, so parent/child back-references cannot
// dangle or cycle through raw pointers.
//
// A Tree is not safe for concurrent use. Every operation validates its
// NodeID arguments before mutating anything: on error the tree is unchanged.
type Tree[T any] struct {
	core coreTree[T]
}

// TreeBuilder configures a Tree before construction.
type TreeBuilder[T any] struct {
	root         *Node[T]
	nodeCapacity int
	swapCapacity int
}

// NewTreeBuilder creates a TreeBuilder with no root and no pre-allocation.
func NewTreeBuilder[T any]() *TreeBuilder[T] {
	return &TreeBuilder[T]{}
}

// WithRoot sets the node the built Tree starts with as root.
func (b *TreeBuilder[T]) WithRoot(root *Node[T]) *TreeBuilder[T] {
	b.root = root
	return b
}

// WithNodeCapacity pre-allocates arena slots. Useful when the maximum number
// of nodes the tree will hold at any one time is known up front.
func (b *TreeBuilder[T]) WithNodeCapacity(nodeCapacity int) *TreeBuilder[T] {
	b.nodeCapacity = nodeCapacity
	return b
}

// WithSwapCapacity pre-allocates free-list entries. Useful when the maximum
// net number of removals at any one time is known up front.
func (b *TreeBuilder[T]) WithSwapCapacity(swapCapacity int) *TreeBuilder[T] {
	b.swapCapacity = swapCapacity
	return b
}

// Build constructs the Tree. Capacity hints only affect allocation, never
// behavior.
func (b *TreeBuilder[T]) Build() *Tree[T] {
	t := &Tree[T]{core: newCoreTree[T](b.nodeCapacity, b.swapCapacity)}
	if b.root != nil {
		id := t.core.insert(b.root)
		t.core.setRoot(&id)
	}
	return t
}

// NewTree creates an empty Tree with default settings.
func NewTree[T any]() *Tree[T] {
	return NewTreeBuilder[T]().Build()
}

// Insert adds node to the tree per behavior and returns its NodeID.
//
// AsRoot always succeeds; an existing root is demoted to the sole child of
// the new node. UnderNode fails with ErrInvalidNodeIDForTree or
// ErrNodeIDNoLongerValid when the parent id is stale or foreign.
func (t *Tree[T]) Insert(node *Node[T], behavior InsertBehavior) (NodeID, error) {
	if behavior.parent != nil {
		parentID := *behavior.parent
		if err := t.core.validate(parentID); err != nil {
			return NodeID{}, err
		}
		return t.insertWithParent(node, parentID), nil
	}
	return t.setRoot(node), nil
}

// Get returns the node named by id. The returned pointer allows payload
// mutation; the structural links remain under the tree's control.
func (t *Tree[T]) Get(id NodeID) (*Node[T], error) {
	return t.core.get(id)
}

// RootNodeID returns the NodeID of the root node, if the tree has one.
func (t *Tree[T]) RootNodeID() (NodeID, bool) {
	return t.core.rootID()
}

// Len returns the number of live nodes, including disconnected ones.
func (t *Tree[T]) Len() int {
	return len(t.core.nodes) - len(t.core.freeIDs)
}

// Height returns the number of levels below the root, counting the root
// itself: 0 for an empty tree, 1 for a lone root.
func (t *Tree[T]) Height() int {
	rootID, ok := t.core.rootID()
	if !ok {
		return 0
	}
	height := 0
	level := []NodeID{rootID}
	for len(level) > 0 {
		height++
		var next []NodeID
		for _, id := range level {
			next = append(next, t.core.getUnsafe(id).children...)
		}
		level = next
	}
	return height
}

// Remove takes the node named by id out of the tree and returns it, handling
// its children per behavior. The returned node has its parent and child
// links cleared: they described a topology that no longer exists, and
// keeping them would hand the caller ids it should not rely on.
//
// If the removed node was the root, the tree's root tracking is cleared in
// all three modes.
func (t *Tree[T]) Remove(id NodeID, behavior RemoveBehavior) (*Node[T], error) {
	if err := t.core.validate(id); err != nil {
		return nil, err
	}
	switch behavior {
	case DropChildren:
		return t.removeDropChildren(id), nil
	case LiftChildren:
		return t.removeLiftChildren(id), nil
	case OrphanChildren:
		return t.removeOrphanChildren(id), nil
	default:
		panic(fmt.Sprintf("arenatree: unknown remove behavior %d", behavior))
	}
}

// SortChildrenBy reorders the children of the node named by id using cmp,
// which follows the cmp.Compare convention: negative when a sorts before b.
// The sort is stable. Payloads and subtrees stay attached to their nodes;
// only the child order changes.
func (t *Tree[T]) SortChildrenBy(id NodeID, cmp func(a, b *Node[T]) int) error {
	if err := t.core.validate(id); err != nil {
		return err
	}
	children := t.core.getUnsafe(id).takeChildren()
	sort.SliceStable(children, func(i, j int) bool {
		return cmp(t.core.getUnsafe(children[i]), t.core.getUnsafe(children[j])) < 0
	})
	t.core.getUnsafe(id).setChildren(children)
	return nil
}

// SortChildrenByData reorders the children of the node named by id by their
// payloads' natural order. It is a package function because a method cannot
// introduce the Ordered constraint on T.
func SortChildrenByData[T constraints.Ordered](t *Tree[T], id NodeID) error {
	return t.SortChildrenBy(id, func(a, b *Node[T]) int {
		switch {
		case a.data < b.data:
			return -1
		case a.data > b.data:
			return 1
		default:
			return 0
		}
	})
}

// SortChildrenByKey reorders the children of the node named by id by the key
// f derives from each child. Like SortChildrenByData it is a package function
// so the key type can carry the Ordered constraint.
func SortChildrenByKey[T any, K constraints.Ordered](t *Tree[T], id NodeID, f func(*Node[T]) K) error {
	return t.SortChildrenBy(id, func(a, b *Node[T]) int {
		ka, kb := f(a), f(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		default:
			return 0
		}
	})
}

// setRoot places newRoot in the arena as the tree's root, demoting any
// current root to its sole child.
func (t *Tree[T]) setRoot(newRoot *Node[T]) NodeID {
	currentRoot := t.core.root
	newRootID := t.core.insert(newRoot)
	t.core.setRoot(&newRootID)
	if currentRoot != nil {
		t.setAsParentAndChild(newRootID, *currentRoot)
	}
	return newRootID
}

func (t *Tree[T]) insertWithParent(child *Node[T], parentID NodeID) NodeID {
	childID := t.core.insert(child)
	t.setAsParentAndChild(parentID, childID)
	return childID
}

// removeDropChildren removes the node's entire subtree. The walk uses an
// explicit stack so arbitrarily deep trees cannot exhaust the call stack.
// Descendants are discovered through live links, so no re-validation is
// needed on the way down.
func (t *Tree[T]) removeDropChildren(id NodeID) *Node[T] {
	stack := t.core.getUnsafe(id).takeChildren()
	for len(stack) > 0 {
		childID := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		child := t.core.remove(childID)
		stack = append(stack, child.children...)
		child.children = nil
		child.parent = nil
	}
	return t.removeNodeInternal(id)
}

// removeLiftChildren re-attaches the node's children to its parent,
// appending them after the parent's existing children. With no parent it
// degrades to orphaning.
func (t *Tree[T]) removeLiftChildren(id NodeID) *Node[T] {
	if parent, ok := t.core.getUnsafe(id).Parent(); ok {
		for _, childID := range t.core.getUnsafe(id).Children() {
			t.setAsParentAndChild(parent, childID)
		}
	} else {
		t.clearParentOfChildren(id)
	}
	return t.removeNodeInternal(id)
}

// removeOrphanChildren clears the children's parent links and leaves them in
// the arena as disconnected subtrees.
func (t *Tree[T]) removeOrphanChildren(id NodeID) *Node[T] {
	t.clearParentOfChildren(id)
	return t.removeNodeInternal(id)
}

// removeNodeInternal is the shared removal post-step: vacate the slot,
// detach the node from its parent's child list, and clear the returned
// node's links.
func (t *Tree[T]) removeNodeInternal(id NodeID) *Node[T] {
	node := t.core.remove(id)
	if node.parent != nil {
		t.core.getUnsafe(*node.parent).removeChild(id)
	}
	node.children = nil
	node.parent = nil
	return node
}

func (t *Tree[T]) setAsParentAndChild(parentID, childID NodeID) {
	t.core.getUnsafe(parentID).addChild(childID)
	t.core.getUnsafe(childID).setParent(&parentID)
}

func (t *Tree[T]) detachFromParent(parentID, id NodeID) {
	t.core.getUnsafe(parentID).removeChild(id)
}

func (t *Tree[T]) clearParent(id NodeID) {
	t.core.getUnsafe(id).setParent(nil)
}

func (t *Tree[T]) setParentOfChildren(id NodeID, newParent *NodeID) {
	for _, childID := range t.core.getUnsafe(id).Children() {
		t.core.getUnsafe(childID).setParent(newParent)
	}
}

func (t *Tree[T]) clearParentOfChildren(id NodeID) {
	t.setParentOfChildren(id, nil)
}
