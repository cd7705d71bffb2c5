package coarsen

import "github.com/SpectralGraphDrawingKbtuDiploma/spectra/core"

// find resolves x to its matching-tree root, compressing the path by
// halving as it walks (cID[x] = cID[cID[x]]), so repeated calls against
// the same cID slice amortize toward O(1).
func find(cID []int, x int) int {
	for cID[x] != x {
		cID[x] = cID[cID[x]]
		x = cID[x]
	}
	return x
}

// runMatching performs up to opts.MaxRounds matching rounds over g,
// returning the union-find parent array once the coarse vertex count has
// reached opts.TargetVertexCount or the round cap is hit.
func runMatching(g *core.Graph, opts Options) []int {
	n := g.N()
	cID := make([]int, n)
	for i := range cID {
		cID[i] = i
	}
	toMatch := make([]bool, n)

	coarseVertCount := n
	rounds := 0
	for coarseVertCount > opts.TargetVertexCount && rounds < opts.MaxRounds {
		rounds++
		for i := range toMatch {
			toMatch[i] = true
		}

		numMatched := 0
		for i := 0; i < n; i++ {
			u := find(cID, i)
			if !toMatch[u] {
				continue
			}
			for _, raw := range g.Neighbors(u) {
				v := find(cID, raw)
				if v == u {
					continue
				}
				if !toMatch[v] {
					continue
				}
				if u < v {
					cID[v] = u
				} else {
					cID[u] = v
				}
				toMatch[u] = false
				toMatch[v] = false
				numMatched += 2
				break
			}
		}

		numUnmatched := coarseVertCount - numMatched
		coarseVertCount = numMatched/2 + numUnmatched
	}

	for i := 0; i < n; i++ {
		cID[i] = find(cID, i)
	}
	return cID
}
