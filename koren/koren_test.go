package koren_test

import (
	"math"
	"testing"

	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/core"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/koren"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/transition"
	"github.com/stretchr/testify/require"
)

func buildMatrix(t *testing.T, edges [][2]int) *transition.Matrix {
	t.Helper()
	b := core.NewBuilder()
	for _, e := range edges {
		require.NoError(t, b.AddEdge(e[0], e[1]))
	}
	g, err := b.Build()
	require.NoError(t, err)
	m, err := transition.BuildFine(g)
	require.NoError(t, err)
	return m
}

func firstVector(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	norm := math.Sqrt(float64(n))
	for i := range v {
		v[i] /= norm
	}
	return v
}

func dDot(x, y, deg []float64) float64 {
	sum := 0.0
	for i := range x {
		sum += x[i] * y[i] * deg[i]
	}
	return sum
}

func TestSecondEigenvector_Errors(t *testing.T) {
	m := buildMatrix(t, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	_, _, err := koren.SecondEigenvector(nil, nil, nil, koren.Options{Eps: 1e-5})
	require.ErrorIs(t, err, koren.ErrMatrixNil)

	first := firstVector(m.N())
	_, _, err = koren.SecondEigenvector(m, first, []float64{1, 2}, koren.Options{Eps: 1e-5})
	require.ErrorIs(t, err, koren.ErrDimensionMismatch)
}

func TestSecondEigenvector_PathConverges(t *testing.T) {
	m := buildMatrix(t, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	first := firstVector(m.N())
	start := []float64{0.6, 0.3, -0.3, -0.6}
	second, iters, err := koren.SecondEigenvector(m, first, start, koren.Options{Eps: 1e-5})
	require.NoError(t, err)
	require.Greater(t, iters, 0)

	deg := m.Degree()
	require.InDelta(t, 0, dDot(first, second, deg), 1e-3)

	monotoneInc := second[0] < second[1] && second[1] < second[2] && second[2] < second[3]
	monotoneDec := second[0] > second[1] && second[1] > second[2] && second[2] > second[3]
	require.True(t, monotoneInc || monotoneDec, "expected monotone Fiedler vector along P4, got %v", second)
}

func TestThirdEigenvector_DOrthogonalToSecond(t *testing.T) {
	m := buildMatrix(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}})
	first := firstVector(m.N())
	startSecond := []float64{0.5, 0.3, -0.1, -0.5, -0.3, 0.1}
	second, _, err := koren.SecondEigenvector(m, first, startSecond, koren.Options{Eps: 1e-5})
	require.NoError(t, err)

	startThird := []float64{0.2, -0.5, 0.4, -0.2, 0.5, -0.4}
	third, _, err := koren.ThirdEigenvector(m, first, second, startThird, koren.Options{Eps: 1e-5})
	require.NoError(t, err)

	deg := m.Degree()
	require.InDelta(t, 0, dDot(first, third, deg), 1e-3)
	require.InDelta(t, 0, dDot(second, third, deg), 1e-3)
}

func TestSecondEigenvector_MaxIterWarning(t *testing.T) {
	m := buildMatrix(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}})
	first := firstVector(m.N())
	start := []float64{0.5, 0.3, -0.1, -0.5, -0.3, 0.1}

	var warnings []string
	_, iters, err := koren.SecondEigenvector(m, first, start, koren.Options{
		Eps:       1e-12,
		MaxIter:   2,
		OnWarning: func(msg string) { warnings = append(warnings, msg) },
	})
	require.NoError(t, err)
	require.Equal(t, 2, iters)
	require.Len(t, warnings, 1)
}
