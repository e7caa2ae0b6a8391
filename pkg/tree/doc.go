// Package tree lays out binary trees level by level.
//
// # Overview
//
// [Layout] walks a [Tree] breadth-first from its root and places every
// reachable node by its heap index (root 1, left child 2i, right child 2i+1).
// Level d is divided into 2^d evenly spaced slots across the canvas width, so
// a node's x position depends only on its depth and its path from the root:
//
//	x = (indexInLevel + 1) · width / (2^d + 1)
//	y = d · levelSpacing + nodeSize/2
//
// Even per-level spacing keeps the layout stable while nodes are inserted or
// removed during an algorithm walkthrough, at the cost of crowding deep, wide
// trees.
//
// # Robustness
//
// Layout never fails. Child ids that do not resolve produce no node and no
// edge, nodes not reachable from the root are not laid out, and a node
// reached twice is placed only at its first (shallowest) visit. [Validate]
// reports these conditions for callers that want to reject them.
//
// # Frames
//
// Pointer motions arc above (and, from the third one on, below) the nodes.
// [NewFrame] computes the extra padding a renderer needs around the layout.
package tree
