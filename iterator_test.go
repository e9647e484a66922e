// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package arenatree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildFixtureTree returns the tree
//
//	0
//	├── 1
//	│   ├── 3
//	│   └── 4
//	└── 2
//	    └── 5
//
// along with the ids indexed by payload.
func buildFixtureTree(t *testing.T) (*Tree[int], []NodeID) {
	t.Helper()
	tree := NewTree[int]()
	ids := make([]NodeID, 6)
	var err error
	ids[0], err = tree.Insert(NewNode(0), AsRoot())
	require.NoError(t, err)
	ids[1], err = tree.Insert(NewNode(1), UnderNode(ids[0]))
	require.NoError(t, err)
	ids[2], err = tree.Insert(NewNode(2), UnderNode(ids[0]))
	require.NoError(t, err)
	ids[3], err = tree.Insert(NewNode(3), UnderNode(ids[1]))
	require.NoError(t, err)
	ids[4], err = tree.Insert(NewNode(4), UnderNode(ids[1]))
	require.NoError(t, err)
	ids[5], err = tree.Insert(NewNode(5), UnderNode(ids[2]))
	require.NoError(t, err)
	return tree, ids
}

func collectIDs(next func() (NodeID, bool)) []NodeID {
	var out []NodeID
	for id, ok := next(); ok; id, ok = next() {
		out = append(out, id)
	}
	return out
}

func collectData[T any](next func() (*Node[T], bool)) []T {
	var out []T
	for node, ok := next(); ok; node, ok = next() {
		out = append(out, node.Data())
	}
	return out
}

func TestAncestors(t *testing.T) {
	t.Parallel()

	tree, ids := buildFixtureTree(t)

	it, err := tree.Ancestors(ids[3])
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, collectData[int](it.Next))

	it, err = tree.Ancestors(ids[0])
	require.NoError(t, err)
	require.Empty(t, collectData[int](it.Next))

	idIt, err := tree.AncestorIDs(ids[5])
	require.NoError(t, err)
	require.Equal(t, []NodeID{ids[2], ids[0]}, collectIDs(idIt.Next))
}

func TestChildren(t *testing.T) {
	t.Parallel()

	tree, ids := buildFixtureTree(t)

	it, err := tree.Children(ids[1])
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, collectData[int](it.Next))

	idIt, err := tree.ChildrenIDs(ids[0])
	require.NoError(t, err)
	require.Equal(t, []NodeID{ids[1], ids[2]}, collectIDs(idIt.Next))

	it, err = tree.Children(ids[5])
	require.NoError(t, err)
	require.Empty(t, collectData[int](it.Next))
}

func TestTraversePreOrder(t *testing.T) {
	t.Parallel()

	tree, ids := buildFixtureTree(t)

	it, err := tree.TraversePreOrder(ids[0])
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3, 4, 2, 5}, collectData[int](it.Next))

	// a subtree start bounds the walk
	it, err = tree.TraversePreOrder(ids[1])
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 4}, collectData[int](it.Next))

	idIt, err := tree.TraversePreOrderIDs(ids[2])
	require.NoError(t, err)
	require.Equal(t, []NodeID{ids[2], ids[5]}, collectIDs(idIt.Next))
}

func TestTraversePostOrder(t *testing.T) {
	t.Parallel()

	tree, ids := buildFixtureTree(t)

	it, err := tree.TraversePostOrder(ids[0])
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 1, 5, 2, 0}, collectData[int](it.Next))

	it, err = tree.TraversePostOrder(ids[1])
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 1}, collectData[int](it.Next))

	idIt, err := tree.TraversePostOrderIDs(ids[5])
	require.NoError(t, err)
	require.Equal(t, []NodeID{ids[5]}, collectIDs(idIt.Next))
}

func TestTraverseLevelOrder(t *testing.T) {
	t.Parallel()

	tree, ids := buildFixtureTree(t)

	it, err := tree.TraverseLevelOrder(ids[0])
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, collectData[int](it.Next))

	idIt, err := tree.TraverseLevelOrderIDs(ids[1])
	require.NoError(t, err)
	require.Equal(t, []NodeID{ids[1], ids[3], ids[4]}, collectIDs(idIt.Next))
}

func TestTraversalSeesDisconnectedSubtreeOnly(t *testing.T) {
	t.Parallel()

	// orphaned subtrees are traversable from their own root
	tree, ids := buildFixtureTree(t)
	_, err := tree.Remove(ids[0], OrphanChildren)
	require.NoError(t, err)

	it, err := tree.TraversePreOrder(ids[1])
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 4}, collectData[int](it.Next))
}

func TestIteratorConstructionValidatesStart(t *testing.T) {
	t.Parallel()

	tree, ids := buildFixtureTree(t)
	stale := ids[5]
	_, err := tree.Remove(stale, DropChildren)
	require.NoError(t, err)

	_, err = tree.Ancestors(stale)
	require.ErrorIs(t, err, ErrNodeIDNoLongerValid)
	_, err = tree.AncestorIDs(stale)
	require.ErrorIs(t, err, ErrNodeIDNoLongerValid)
	_, err = tree.Children(stale)
	require.ErrorIs(t, err, ErrNodeIDNoLongerValid)
	_, err = tree.ChildrenIDs(stale)
	require.ErrorIs(t, err, ErrNodeIDNoLongerValid)
	_, err = tree.TraversePreOrder(stale)
	require.ErrorIs(t, err, ErrNodeIDNoLongerValid)
	_, err = tree.TraversePostOrder(stale)
	require.ErrorIs(t, err, ErrNodeIDNoLongerValid)
	_, err = tree.TraverseLevelOrder(stale)
	require.ErrorIs(t, err, ErrNodeIDNoLongerValid)

	other := NewTreeBuilder[int]().WithRoot(NewNode(9)).Build()
	foreignID, _ := other.RootNodeID()
	_, err = tree.TraverseLevelOrderIDs(foreignID)
	require.ErrorIs(t, err, ErrInvalidNodeIDForTree)
	_, err = tree.TraversePreOrderIDs(foreignID)
	require.ErrorIs(t, err, ErrInvalidNodeIDForTree)
	_, err = tree.TraversePostOrderIDs(foreignID)
	require.ErrorIs(t, err, ErrInvalidNodeIDForTree)
}
