// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package arenatree

// Traversal iterators. Each is constructed from an already-validated start
// NodeID (construction fails with ErrInvalidNodeIDForTree or
// ErrNodeIDNoLongerValid otherwise) and walks the live structure lazily; it
// sees mutations made after construction, so do not mutate the tree while
// iterating. A restart means constructing a new iterator.
//
// Pre-order and post-order use explicit stacks and level-order a queue, so
// tree depth never translates into call-stack depth.

// AncestorIDs yields the NodeIDs on the path from the start node's parent up
// to the root.
type AncestorIDs[T any] struct {
	tree    *Tree[T]
	current NodeID
}

// AncestorIDs returns an iterator over the ids of the ancestors of the node
// named by id, nearest first, excluding the node itself.
func (t *Tree[T]) AncestorIDs(id NodeID) (*AncestorIDs[T], error) {
	if err := t.core.validate(id); err != nil {
		return nil, err
	}
	return &AncestorIDs[T]{tree: t, current: id}, nil
}

func (it *AncestorIDs[T]) Next() (NodeID, bool) {
	node := it.tree.core.lookup(it.current)
	if node == nil || node.parent == nil {
		return NodeID{}, false
	}
	it.current = *node.parent
	return it.current, true
}

// Ancestors yields the nodes on the path from the start node's parent up to
// the root.
type Ancestors[T any] struct {
	ids AncestorIDs[T]
}

// Ancestors returns an iterator over the ancestors of the node named by id,
// nearest first, excluding the node itself.
func (t *Tree[T]) Ancestors(id NodeID) (*Ancestors[T], error) {
	ids, err := t.AncestorIDs(id)
	if err != nil {
		return nil, err
	}
	return &Ancestors[T]{ids: *ids}, nil
}

func (it *Ancestors[T]) Next() (*Node[T], bool) {
	id, ok := it.ids.Next()
	if !ok {
		return nil, false
	}
	node := it.ids.tree.core.lookup(id)
	return node, node != nil
}

// ChildrenIDs yields the start node's direct child ids in stored order.
type ChildrenIDs[T any] struct {
	tree *Tree[T]
	ids  []NodeID
	pos  int
}

// ChildrenIDs returns an iterator over the ids of the direct children of the
// node named by id.
func (t *Tree[T]) ChildrenIDs(id NodeID) (*ChildrenIDs[T], error) {
	if err := t.core.validate(id); err != nil {
		return nil, err
	}
	return &ChildrenIDs[T]{tree: t, ids: t.core.getUnsafe(id).children}, nil
}

func (it *ChildrenIDs[T]) Next() (NodeID, bool) {
	if it.pos >= len(it.ids) {
		return NodeID{}, false
	}
	id := it.ids[it.pos]
	it.pos++
	return id, true
}

// Children yields the start node's direct children in stored order.
type Children[T any] struct {
	ids ChildrenIDs[T]
}

// Children returns an iterator over the direct children of the node named by
// id.
func (t *Tree[T]) Children(id NodeID) (*Children[T], error) {
	ids, err := t.ChildrenIDs(id)
	if err != nil {
		return nil, err
	}
	return &Children[T]{ids: *ids}, nil
}

func (it *Children[T]) Next() (*Node[T], bool) {
	id, ok := it.ids.Next()
	if !ok {
		return nil, false
	}
	node := it.ids.tree.core.lookup(id)
	return node, node != nil
}

// PreOrderIDs yields ids depth-first, each node before its subtrees, subtrees
// in child order.
type PreOrderIDs[T any] struct {
	tree  *Tree[T]
	stack []NodeID
}

// TraversePreOrderIDs returns a pre-order id iterator over the subtree
// rooted at id, starting with id itself.
func (t *Tree[T]) TraversePreOrderIDs(id NodeID) (*PreOrderIDs[T], error) {
	if err := t.core.validate(id); err != nil {
		return nil, err
	}
	return &PreOrderIDs[T]{tree: t, stack: []NodeID{id}}, nil
}

func (it *PreOrderIDs[T]) Next() (NodeID, bool) {
	if len(it.stack) == 0 {
		return NodeID{}, false
	}
	id := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	if node := it.tree.core.lookup(id); node != nil {
		// push in reverse so the first child is visited next
		for i := len(node.children) - 1; i >= 0; i-- {
			it.stack = append(it.stack, node.children[i])
		}
	}
	return id, true
}

// PreOrder yields nodes depth-first, each node before its subtrees.
type PreOrder[T any] struct {
	ids PreOrderIDs[T]
}

// TraversePreOrder returns a pre-order node iterator over the subtree rooted
// at id, starting with the node itself.
func (t *Tree[T]) TraversePreOrder(id NodeID) (*PreOrder[T], error) {
	ids, err := t.TraversePreOrderIDs(id)
	if err != nil {
		return nil, err
	}
	return &PreOrder[T]{ids: *ids}, nil
}

func (it *PreOrder[T]) Next() (*Node[T], bool) {
	id, ok := it.ids.Next()
	if !ok {
		return nil, false
	}
	node := it.ids.tree.core.lookup(id)
	return node, node != nil
}

// PostOrderIDs yields ids depth-first, each node after its subtrees,
// subtrees in child order.
type PostOrderIDs[T any] struct {
	tree  *Tree[T]
	stack []postFrame
}

type postFrame struct {
	id   NodeID
	next int
}

// TraversePostOrderIDs returns a post-order id iterator over the subtree
// rooted at id, ending with id itself.
func (t *Tree[T]) TraversePostOrderIDs(id NodeID) (*PostOrderIDs[T], error) {
	if err := t.core.validate(id); err != nil {
		return nil, err
	}
	return &PostOrderIDs[T]{tree: t, stack: []postFrame{{id: id}}}, nil
}

func (it *PostOrderIDs[T]) Next() (NodeID, bool) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		node := it.tree.core.lookup(top.id)
		if node != nil && top.next < len(node.children) {
			child := node.children[top.next]
			top.next++
			it.stack = append(it.stack, postFrame{id: child})
			continue
		}
		id := top.id
		it.stack = it.stack[:len(it.stack)-1]
		return id, true
	}
	return NodeID{}, false
}

// PostOrder yields nodes depth-first, each node after its subtrees.
type PostOrder[T any] struct {
	ids PostOrderIDs[T]
}

// TraversePostOrder returns a post-order node iterator over the subtree
// rooted at id, ending with the node itself.
func (t *Tree[T]) TraversePostOrder(id NodeID) (*PostOrder[T], error) {
	ids, err := t.TraversePostOrderIDs(id)
	if err != nil {
		return nil, err
	}
	return &PostOrder[T]{ids: *ids}, nil
}

func (it *PostOrder[T]) Next() (*Node[T], bool) {
	id, ok := it.ids.Next()
	if !ok {
		return nil, false
	}
	node := it.ids.tree.core.lookup(id)
	return node, node != nil
}

// LevelOrderIDs yields ids breadth-first, level by level, left to right.
type LevelOrderIDs[T any] struct {
	tree  *Tree[T]
	queue []NodeID
}

// TraverseLevelOrderIDs returns a breadth-first id iterator over the subtree
// rooted at id, starting with id itself.
func (t *Tree[T]) TraverseLevelOrderIDs(id NodeID) (*LevelOrderIDs[T], error) {
	if err := t.core.validate(id); err != nil {
		return nil, err
	}
	return &LevelOrderIDs[T]{tree: t, queue: []NodeID{id}}, nil
}

func (it *LevelOrderIDs[T]) Next() (NodeID, bool) {
	if len(it.queue) == 0 {
		return NodeID{}, false
	}
	id := it.queue[0]
	it.queue = it.queue[1:]
	if node := it.tree.core.lookup(id); node != nil {
		it.queue = append(it.queue, node.children...)
	}
	return id, true
}

// LevelOrder yields nodes breadth-first, level by level, left to right.
type LevelOrder[T any] struct {
	ids LevelOrderIDs[T]
}

// TraverseLevelOrder returns a breadth-first node iterator over the subtree
// rooted at id, starting with the node itself.
func (t *Tree[T]) TraverseLevelOrder(id NodeID) (*LevelOrder[T], error) {
	ids, err := t.TraverseLevelOrderIDs(id)
	if err != nil {
		return nil, err
	}
	return &LevelOrder[T]{ids: *ids}, nil
}

func (it *LevelOrder[T]) Next() (*Node[T], bool) {
	id, ok := it.ids.Next()
	if !ok {
		return nil, false
	}
	node := it.ids.tree.core.lookup(id)
	return node, node != nil
}
