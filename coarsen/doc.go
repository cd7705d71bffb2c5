// Package coarsen reduces a fine core.Graph to a smaller weighted
// core.CoarseGraph by repeatedly matching adjacent vertices and
// contracting each matched pair into one coarse vertex.
//
// What
//
//	Coarsen runs up to Options.MaxRounds matching rounds. In each round,
//	every not-yet-matched vertex (in increasing fine-vertex order) scans
//	its neighbors for another unmatched vertex and merges with the first
//	one found, always keeping the lower id as the surviving representative.
//	Rounds stop early once the coarse vertex count drops to or below
//	Options.TargetVertexCount. The final vertex partition is renumbered
//	into consecutive coarse ids (0..k-1, assigned in increasing order of
//	fine representative id) and every fine incidence is remapped through
//	that partition, sorted, and run-length compacted by core.NewCoarseGraph
//	into a weighted coarse graph.
//
// Why
//
//	Operating on a coarse graph first and lifting the result back to the
//	fine graph is dramatically cheaper than running the embedding pipeline
//	directly on a large fine graph, and produces a comparable layout because
//	coarsening preserves the graph's large-scale connectivity structure.
//
// Determinism
//
//	The matching scan order is always increasing fine-vertex id and
//	neighbors are scanned in a vertex's fixed adjacency order, with no
//	randomness anywhere in the process, so Coarsen is fully deterministic
//	for a given input graph and Options.
package coarsen
