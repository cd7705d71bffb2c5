package hde

import "github.com/SpectralGraphDrawingKbtuDiploma/spectra/core"

// laplacianMulVec computes y = L·x for the combinatorial Laplacian
// L = D − A of g, without materializing L: y[i] = deg[i]*x[i] minus the
// sum of x over i's neighbors (multiplicities counted, matching deg).
func laplacianMulVec(g *core.Graph, deg []float64, x []float64) []float64 {
	n := g.N()
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := deg[i] * x[i]
		for _, j := range g.Neighbors(i) {
			sum -= x[j]
		}
		y[i] = sum
	}
	return y
}
