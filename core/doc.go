// Package core defines the central Graph and CoarseGraph types of the
// spectral embedding engine, and the thread-safe Builder used to assemble
// them from a stream of unordered edge pairs.
//
// What
//
//   - Graph is an immutable compressed-sparse-row (CSR) adjacency: two
//     parallel arrays (RowOffsets, Adj) describing, for every vertex, the
//     contiguous slice of Adj holding its neighbors.
//   - CoarseGraph is the same CSR layout plus a parallel EWeights array
//     produced by contracting a Graph during coarsening.
//   - Builder accumulates (u, v) pairs under a mutex, then freezes them
//     into a Graph via Build. Duplicates and self-loops are retained
//     verbatim; nothing is deduplicated at this layer.
//
// Why
//
//   - CSR keeps neighbor iteration allocation-free and cache-friendly,
//     which the coarsening, transition-matrix, BFS, and power-iteration
//     phases all depend on for their complexity bounds.
//   - Separating the mutable Builder from the frozen Graph makes the
//     "immutable thereafter" lifecycle from the data model explicit in
//     the type system rather than by convention.
//
// Determinism
//
//	Build lays out each vertex's adjacency block in edge-insertion order,
//	so two Builders fed the same edge sequence produce byte-identical
//	Graphs.
package core
