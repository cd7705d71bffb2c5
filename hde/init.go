package hde

import (
	"fmt"

	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/core"
	"gonum.org/v1/gonum/mat"
)

// Result holds the two HDE-seeded starting vectors for Koren's power
// iteration.
type Result struct {
	Second []float64
	Third  []float64
}

// Init computes the HDE initialization for g using the default K pivot
// passes, using deg as both the D-orthogonalization weight vector and the
// Laplacian diagonal. deg must have length g.N() and match the degree
// vector transition.BuildFine produced for the same graph.
func Init(g *core.Graph, deg []float64) (*Result, error) {
	return InitK(g, deg, K)
}

// InitK is Init with the number of pivot BFS passes overridden (typically
// sourced from config.Config.HDEK rather than the package default).
func InitK(g *core.Graph, deg []float64, k int) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.N()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if k < 2 {
		return nil, ErrInsufficientColumns
	}

	columns, err := pivotColumnsK(g, k)
	if err != nil {
		return nil, err
	}

	retained := dOrthogonalize(columns, deg)
	if len(retained) == 0 {
		return nil, ErrAllColumnsDiscarded
	}
	if len(retained) < 2 {
		return nil, ErrInsufficientColumns
	}

	kPrime := len(retained)
	small := mat.NewSymDense(kPrime, nil)
	lx := make([][]float64, kPrime)
	for b := range retained {
		lx[b] = laplacianMulVec(g, deg, retained[b])
	}
	for a := 0; a < kPrime; a++ {
		for b := a; b < kPrime; b++ {
			v := dot(retained[a], lx[b])
			small.SetSym(a, b, v)
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(small, true); !ok {
		return nil, fmt.Errorf("hde.Init: %w", ErrEigenSolveFailed)
	}

	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	second := liftColumn(retained, &vectors, 0)
	third := liftColumn(retained, &vectors, 1)

	return &Result{Second: second, Third: third}, nil
}

// liftColumn computes X * eigvecs[:,col] where X's columns are retained.
func liftColumn(retained [][]float64, eigvecs *mat.Dense, col int) []float64 {
	n := len(retained[0])
	kPrime := len(retained)
	out := make([]float64, n)
	for a := 0; a < kPrime; a++ {
		coeff := eigvecs.At(a, col)
		if coeff == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			out[i] += coeff * retained[a][i]
		}
	}
	return out
}

func dot(x, y []float64) float64 {
	sum := 0.0
	for i := range x {
		sum += x[i] * y[i]
	}
	return sum
}
