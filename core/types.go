package core

import "errors"

// Sentinel errors for core graph construction.
var (
	// ErrNegativeVertexID indicates AddEdge was called with a negative id.
	ErrNegativeVertexID = errors.New("core: vertex id must be non-negative")

	// ErrVertexOutOfRange indicates an accessor was called with an id
	// outside [0, N()).
	ErrVertexOutOfRange = errors.New("core: vertex id out of range")

	// ErrInternalCSRInvariant indicates the CSR symmetry invariant was
	// violated; this should never happen for graphs produced by Builder
	// and signals a programmer error rather than bad input.
	ErrInternalCSRInvariant = errors.New("core: CSR symmetry invariant violated")
)

// Graph is an immutable undirected graph stored in compressed-sparse-row
// form. RowOffsets has length N()+1; Adj has length RowOffsets[N()].
// Self-loops and parallel edges are preserved exactly as supplied to the
// Builder that produced this Graph.
type Graph struct {
	rowOffsets []int
	adj        []int
}

// N returns the number of vertices (max vertex id seen + 1).
func (g *Graph) N() int {
	if g.rowOffsets == nil {
		return 0
	}
	return len(g.rowOffsets) - 1
}

// M returns the number of directed incidences, i.e. 2*|E| counting each
// undirected edge from both endpoints (self-loops contribute 2).
func (g *Graph) M() int {
	return len(g.adj)
}

// Neighbors returns vertex v's adjacency block. The returned slice aliases
// Graph's backing array and must not be mutated by callers.
func (g *Graph) Neighbors(v int) []int {
	return g.adj[g.rowOffsets[v]:g.rowOffsets[v+1]]
}

// Degree returns the number of directed incidences at v (unweighted
// degree; multi-edges and self-loops counted with multiplicity).
func (g *Graph) Degree(v int) int {
	return g.rowOffsets[v+1] - g.rowOffsets[v]
}

// RowOffsets exposes the raw CSR row-offset array for callers (e.g.
// transition, coarsen) that need to walk it directly rather than through
// Neighbors. The returned slice must not be mutated.
func (g *Graph) RowOffsets() []int {
	return g.rowOffsets
}

// Adj exposes the raw CSR adjacency array. The returned slice must not be
// mutated.
func (g *Graph) Adj() []int {
	return g.adj
}

// CoarseGraph is a Graph produced by contraction, carrying a parallel
// EWeights array: EWeights[j] is the weight of the coarse edge stored at
// Adj()[j], i.e. the number of fine incidences (or accumulated weight, for
// chained coarsening) that collapsed into it.
type CoarseGraph struct {
	Graph
	EWeights []float64
}

// Weight returns the weight of the j-th adjacency entry, where j indexes
// into the flat Adj()/EWeights arrays (e.g. an index returned while
// iterating a row via RowOffsets).
func (cg *CoarseGraph) Weight(j int) float64 {
	return cg.EWeights[j]
}
