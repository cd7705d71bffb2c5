package hde

import (
	"math"

	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/bfs"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/core"
)

// K is the number of iterated-BFS pivot passes HDE performs before
// D-orthogonalization.
const K = 50

const hdeInfinity = 1 << 30

// pivotColumns runs K BFS passes, each from the vertex farthest (by
// running minimum distance) from all prior pivots, and returns the K
// resulting distance columns as float64 vectors, each already normalized
// to unit Euclidean length. Returns ErrDisconnectedGraph if any pass
// fails to reach every vertex.
func pivotColumns(g *core.Graph) ([][]float64, error) {
	return pivotColumnsK(g, K)
}

// pivotColumnsK is pivotColumns with the pass count overridden, for callers
// that source it from config instead of the package default.
func pivotColumnsK(g *core.Graph, k int) ([][]float64, error) {
	n := g.N()
	minDist := make([]int, n)
	for i := range minDist {
		minDist[i] = hdeInfinity
	}

	columns := make([][]float64, 0, k)
	pivot := 0
	for pass := 1; pass <= k; pass++ {
		dist, err := bfs.Distances(g, pivot)
		if err != nil {
			return nil, err
		}

		col := make([]float64, n)
		for i, d := range dist {
			if d < 0 {
				return nil, ErrDisconnectedGraph
			}
			col[i] = float64(d)
			if d < minDist[i] {
				minDist[i] = d
			}
		}
		normalizeInPlace(col)
		columns = append(columns, col)

		maxVal := -1
		next := pivot
		for i, d := range minDist {
			if d > maxVal {
				maxVal = d
				next = i
			}
		}
		pivot = next
	}

	return columns, nil
}

func normalizeInPlace(v []float64) {
	n := euclideanNorm(v)
	if n == 0 {
		return
	}
	for i := range v {
		v[i] /= n
	}
}

func euclideanNorm(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
