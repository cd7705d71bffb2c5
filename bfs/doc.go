// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted single-source distances.
//
// Distances explores vertices in non-decreasing order of edge-count
// distance from a start vertex, using a FIFO queue; each vertex is
// enqueued at most once, so it runs in O(V + E). Unreachable vertices
// receive -1.
//
// Determinism
//
//	core.Graph lays out each vertex's adjacency block in a fixed order
//	(edge-insertion order at Build time), and Distances enqueues neighbors
//	in that order, so the result is fully reproducible for a given Graph.
package bfs
