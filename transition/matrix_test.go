package transition_test

import (
	"testing"

	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/core"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/transition"
	"github.com/stretchr/testify/require"
)

func buildFineGraph(t *testing.T, edges [][2]int) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	for _, e := range edges {
		require.NoError(t, b.AddEdge(e[0], e[1]))
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func rowSum(m *transition.Matrix, v int) float64 {
	cols, vals, diag := m.Row(v)
	sum := diag
	for i := range cols {
		sum += vals[i]
	}
	return sum
}

func TestBuildFine_Errors(t *testing.T) {
	_, err := transition.BuildFine(nil)
	require.ErrorIs(t, err, transition.ErrGraphNil)

	g := buildFineGraph(t, nil)
	_, err = transition.BuildFine(g)
	require.ErrorIs(t, err, transition.ErrEmptyGraph)
}

func TestBuildFine_RowStochastic(t *testing.T) {
	g := buildFineGraph(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	m, err := transition.BuildFine(g)
	require.NoError(t, err)
	for v := 0; v < m.N(); v++ {
		require.InDelta(t, 1.0, rowSum(m, v), 1e-12)
	}
}

func TestBuildFine_MulVecMatchesParallel(t *testing.T) {
	g := buildFineGraph(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {0, 2}})
	m, err := transition.BuildFine(g)
	require.NoError(t, err)

	x := []float64{1, 2, 3, 4, 5}
	serial, err := m.MulVec(x)
	require.NoError(t, err)
	parallel, err := m.MulVecParallel(x, 4)
	require.NoError(t, err)
	require.Equal(t, serial, parallel)
}

func TestBuildFine_DimensionMismatch(t *testing.T) {
	g := buildFineGraph(t, [][2]int{{0, 1}})
	m, err := transition.BuildFine(g)
	require.NoError(t, err)
	_, err = m.MulVec([]float64{1, 2, 3})
	require.ErrorIs(t, err, transition.ErrDimensionMismatch)
}

func TestBuildCoarse_RowStochasticWithSelfLoop(t *testing.T) {
	pairs := [][2]int{
		{0, 1}, {0, 1},
		{1, 0}, {1, 0},
		{1, 1}, {1, 1},
	}
	cg := core.NewCoarseGraph(2, pairs)
	m, err := transition.BuildCoarse(cg)
	require.NoError(t, err)
	for v := 0; v < m.N(); v++ {
		require.InDelta(t, 1.0, rowSum(m, v), 1e-12)
	}
}

func TestDoubledZeroDiag(t *testing.T) {
	g := buildFineGraph(t, [][2]int{{0, 1}, {1, 2}})
	m, err := transition.BuildFine(g)
	require.NoError(t, err)
	d := m.DoubledZeroDiag()
	for v := 0; v < d.N(); v++ {
		_, _, diag := d.Row(v)
		require.Equal(t, 0.0, diag)
	}
	_, origVals, _ := m.Row(0)
	_, doubledVals, _ := d.Row(0)
	for i := range origVals {
		require.InDelta(t, 2*origVals[i], doubledVals[i], 1e-12)
	}
}
