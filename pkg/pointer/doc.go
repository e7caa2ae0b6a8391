// Package pointer models the named annotations drawn on top of graph and
// tree layouts: pointer badges that sit above a node ("i", "left", "slow")
// and pointer motions that draw a curved arrow from one node to another.
//
// # Markers
//
// A [Marker] targets either a graph node (by index) or a tree node (by id).
// Markers that target the same node are stacked vertically above it in
// input order; [GroupByIndex] and [GroupByNode] build those stacks and
// [BadgeMetrics] computes their offsets.
//
// # Colors
//
// Every annotation resolves to a color: the explicit one when set, otherwise
// a deterministic slot of the [Palette] chosen by hashing the lowercase name
// with FNV-1a. The same name therefore always gets the same color across
// runs, processes and platforms.
//
// # Motion Routing
//
// [Route] turns the i-th motion between two laid-out node centers into a
// quadratic curve plus arrowhead. The first two motions arc above the nodes,
// later ones arc below, and each additional motion on the same side is
// lifted further so curves do not overlap.
package pointer
