package tutte_test

import (
	"testing"

	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/core"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/transition"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/tutte"
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

func TestSmooth_Errors(t *testing.T) {
	m := buildMatrix(t, [][2]int{{0, 1}, {1, 2}})
	_, err := tutte.Smooth(nil, []float64{1, 2, 3}, 10)
	require.ErrorIs(t, err, tutte.ErrMatrixNil)

	_, err = tutte.Smooth(m, []float64{1, 2}, 10)
	require.ErrorIs(t, err, tutte.ErrDimensionMismatch)
}

func TestSmooth_DoesNotMutateInput(t *testing.T) {
	m := buildMatrix(t, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	vec := []float64{1, -1, 1, -1}
	orig := append([]float64(nil), vec...)
	_, err := tutte.Smooth(m, vec, 5)
	require.NoError(t, err)
	require.Equal(t, orig, vec)
}

func TestSmooth_CycleSymmetryPreserved(t *testing.T) {
	// On C6 with an antisymmetric start vector, every round preserves the
	// antisymmetry v[i] == -v[i+3] since the smoothing operator commutes
	// with the graph's rotational symmetry.
	m := buildMatrix(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}})
	vec := []float64{1, 0.5, -0.5, -1, -0.5, 0.5}
	out, err := tutte.Smooth(m, vec, tutte.DefaultRounds)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.InDelta(t, -out[i], out[i+3], 1e-6)
	}
}
