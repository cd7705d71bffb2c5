package core

import (
	"fmt"
	"sync"
)

// Builder accumulates edges for a single Graph under a mutex, then freezes
// them into CSR form via Build. A Builder is safe for concurrent AddEdge
// calls from multiple goroutines (e.g. parallel parsing); Build must only
// be called once all contributing goroutines have finished.
type Builder struct {
	mu        sync.Mutex
	edges     [][2]int
	maxVertex int
	built     bool
}

// NewBuilder returns an empty Builder ready to accept edges.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddEdge records an undirected edge between u and v. Self-loops (u == v)
// and parallel edges are both permitted and retained verbatim; this layer
// performs no deduplication. Returns ErrNegativeVertexID for malformed
// ids, matching the InputError policy of the edge-list contract.
//
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(u, v int) error {
	if u < 0 || v < 0 {
		return fmt.Errorf("core.Builder.AddEdge(%d,%d): %w", u, v, ErrNegativeVertexID)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.edges = append(b.edges, [2]int{u, v})
	if u > b.maxVertex {
		b.maxVertex = u
	}
	if v > b.maxVertex {
		b.maxVertex = v
	}

	return nil
}

// EdgeCount returns the number of edges recorded so far.
func (b *Builder) EdgeCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.edges)
}

// Build freezes the accumulated edges into an immutable Graph. The vertex
// count is max_vertex_id+1; a Builder with no edges yields a zero-vertex
// Graph. Build may be called more than once; each call produces an
// independent Graph sharing no backing storage with the Builder.
//
// Layout: each vertex's adjacency block is populated in edge-insertion
// order, so two Builders fed the same edge sequence produce
// byte-identical Graphs (required for the determinism property).
//
// Complexity: O(n + m) time and memory.
func (b *Builder) Build() (*Graph, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	if len(b.edges) > 0 {
		n = b.maxVertex + 1
	}

	rowOffsets := make([]int, n+1)
	for _, e := range b.edges {
		rowOffsets[e[0]+1]++
		rowOffsets[e[1]+1]++
	}
	for i := 1; i <= n; i++ {
		rowOffsets[i] += rowOffsets[i-1]
	}

	adj := make([]int, rowOffsets[n])
	cursor := make([]int, n)
	copy(cursor, rowOffsets[:n])
	for _, e := range b.edges {
		u, v := e[0], e[1]
		adj[cursor[u]] = v
		cursor[u]++
		adj[cursor[v]] = u
		cursor[v]++
	}

	return &Graph{rowOffsets: rowOffsets, adj: adj}, nil
}

// NewCoarseGraph assembles a CoarseGraph from a lexicographically sorted
// list of coarse endpoint pairs (u, v), one entry per fine incidence that
// maps to that coarse pair. Consecutive identical pairs are compacted into
// a single adjacency entry whose weight is the run length. This mirrors
// the contraction step of the coarsener exactly (sort, then run-length
// compact) and keeps CSR assembly — the physical data-structure concern —
// in the same package as Graph/Builder.
//
// pairs must already be sorted by (u, v) lexicographically; NewCoarseGraph
// does not sort them itself.
//
// Complexity: O(nCoarse + len(pairs)).
func NewCoarseGraph(nCoarse int, pairs [][2]int) *CoarseGraph {
	if len(pairs) == 0 {
		return &CoarseGraph{Graph: Graph{rowOffsets: make([]int, nCoarse+1)}}
	}

	// Pass 1: count compacted run lengths and row sizes.
	rowOffsets := make([]int, nCoarse+1)
	mCoarse := 1
	prevU, prevV := pairs[0][0], pairs[0][1]
	rowOffsets[prevU+1]++
	for i := 1; i < len(pairs); i++ {
		u, v := pairs[i][0], pairs[i][1]
		if u != prevU || v != prevV {
			mCoarse++
			rowOffsets[u+1]++
			prevU, prevV = u, v
		}
	}
	for i := 1; i <= nCoarse; i++ {
		rowOffsets[i] += rowOffsets[i-1]
	}

	// Pass 2: fill adj/eweights in the same run-compacted order.
	adj := make([]int, mCoarse)
	eweights := make([]float64, mCoarse)
	idx := 0
	adj[idx] = pairs[0][1]
	eweights[idx] = 1
	prevU, prevV = pairs[0][0], pairs[0][1]
	for i := 1; i < len(pairs); i++ {
		u, v := pairs[i][0], pairs[i][1]
		if u != prevU || v != prevV {
			idx++
			adj[idx] = v
			eweights[idx] = 1
			prevU, prevV = u, v
		} else {
			eweights[idx]++
		}
	}

	return &CoarseGraph{
		Graph:    Graph{rowOffsets: rowOffsets, adj: adj},
		EWeights: eweights,
	}
}
