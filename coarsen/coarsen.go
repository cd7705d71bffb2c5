package coarsen

import (
	"sort"

	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/core"
)

// Result bundles the coarse graph with the fine-to-coarse vertex mapping
// needed to lift a coarse embedding back onto the fine graph.
type Result struct {
	Coarse       *core.CoarseGraph
	FineToCoarse []int // length g.N(); FineToCoarse[i] is i's coarse vertex id
}

// Coarsen reduces g to a weighted coarse graph per opts (zero fields take
// package defaults). Returns ErrGraphNil or ErrEmptyGraph on invalid input.
func Coarsen(g *core.Graph, opts Options) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.N()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	opts = opts.withDefaults()

	cID := runMatching(g, opts)

	vertIDs := make([]int, n)
	for i := range vertIDs {
		vertIDs[i] = -1
	}
	newID := 0
	for i := 0; i < n; i++ {
		if cID[i] == i {
			vertIDs[i] = newID
			newID++
		}
	}
	for i := 0; i < n; i++ {
		if vertIDs[i] == -1 {
			vertIDs[i] = vertIDs[cID[i]]
		}
	}

	pairs := make([][2]int, 0, g.M())
	for i := 0; i < n; i++ {
		u := vertIDs[i]
		for _, j := range g.Neighbors(i) {
			v := vertIDs[j]
			pairs = append(pairs, [2]int{u, v})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})

	return &Result{
		Coarse:       core.NewCoarseGraph(newID, pairs),
		FineToCoarse: vertIDs,
	}, nil
}
