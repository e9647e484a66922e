// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package arenatree

import "errors"

// The two recoverable failure kinds for operations that take a NodeID. Both
// are reported before any mutation happens, so an error always means the tree
// is unchanged.
var (
	// ErrInvalidNodeIDForTree means the NodeID was issued by a different
	// Tree (or is the zero NodeID).
	ErrInvalidNodeIDForTree = errors.New("arenatree: node id does not belong to this tree")

	// ErrNodeIDNoLongerValid means the NodeID belongs to this Tree but the
	// slot it names is vacant: the node was removed after the id was issued.
	ErrNodeIDNoLongerValid = errors.New("arenatree: node id is no longer valid")
)
