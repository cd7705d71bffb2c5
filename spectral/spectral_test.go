package spectral_test

import (
	"testing"

	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/core"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/spectral"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T, edges [][2]int) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	for _, e := range edges {
		require.NoError(t, b.AddEdge(e[0], e[1]))
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestRun_Errors(t *testing.T) {
	_, err := spectral.Run(nil, spectral.DefaultOptions())
	require.ErrorIs(t, err, spectral.ErrGraphNil)

	g := buildGraph(t, nil)
	_, err = spectral.Run(g, spectral.DefaultOptions())
	require.ErrorIs(t, err, spectral.ErrEmptyGraph)
}

// S1 — Path graph P4: the refined second eigenvector is strictly
// monotone along the path, in either direction.
func TestRun_S1_PathGraph(t *testing.T) {
	g := buildGraph(t, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	opts := spectral.DefaultOptions()
	opts.Refine = spectral.RefineKoren
	opts.Seed = 42

	emb, err := spectral.Run(g, opts)
	require.NoError(t, err)
	require.Len(t, emb.Second, 4)

	inc := emb.Second[0] < emb.Second[1] && emb.Second[1] < emb.Second[2] && emb.Second[2] < emb.Second[3]
	dec := emb.Second[0] > emb.Second[1] && emb.Second[1] > emb.Second[2] && emb.Second[2] > emb.Second[3]
	require.True(t, inc || dec, "expected monotone second eigenvector along P4, got %v", emb.Second)
}

// S2 — Cycle C6: diametrically opposite vertex pairs' (second, third)
// coordinates sum to near zero.
func TestRun_S2_CycleGraph(t *testing.T) {
	g := buildGraph(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}})
	opts := spectral.DefaultOptions()
	opts.Refine = spectral.RefineKoren
	opts.Seed = 7

	emb, err := spectral.Run(g, opts)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.InDelta(t, 0, emb.Second[i]+emb.Second[i+3], 1e-3)
		require.InDelta(t, 0, emb.Third[i]+emb.Third[i+3], 1e-3)
	}
}

// S3 — two triangles joined by a bridge: second eigenvector separates
// the two triangles by sign.
func TestRun_S3_BridgedTriangles(t *testing.T) {
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
		{2, 3},
	}
	g := buildGraph(t, edges)
	opts := spectral.DefaultOptions()
	opts.Refine = spectral.RefineKoren
	opts.Seed = 11

	emb, err := spectral.Run(g, opts)
	require.NoError(t, err)

	sign := func(x float64) bool { return x >= 0 }
	s0, s1, s2 := sign(emb.Second[0]), sign(emb.Second[1]), sign(emb.Second[2])
	s3, s4, s5 := sign(emb.Second[3]), sign(emb.Second[4]), sign(emb.Second[5])
	require.Equal(t, s0, s1)
	require.Equal(t, s1, s2)
	require.Equal(t, s3, s4)
	require.Equal(t, s4, s5)
	require.NotEqual(t, s0, s3)
}

// S4 — star K1,5: the five leaves receive approximately equal
// second-eigenvector coordinates; the center differs in sign.
func TestRun_S4_StarGraph(t *testing.T) {
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}}
	g := buildGraph(t, edges)
	opts := spectral.DefaultOptions()
	opts.Refine = spectral.RefineKoren
	opts.Seed = 3

	emb, err := spectral.Run(g, opts)
	require.NoError(t, err)

	leaf := emb.Second[1]
	for _, v := range emb.Second[2:] {
		require.InDelta(t, leaf, v, 1e-3)
	}
	require.NotEqual(t, leaf >= 0, emb.Second[0] >= 0)
}

// S5 — coarsen-and-stop on K10: the coarse graph has far fewer than 10
// vertices and the embedding carries exactly that many coordinates.
func TestRun_S5_CoarsenAndStopK10(t *testing.T) {
	edges := make([][2]int, 0, 45)
	for i := 0; i < 10; i++ {
		for j := i + 1; j < 10; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	g := buildGraph(t, edges)
	opts := spectral.DefaultOptions()
	opts.Coarsen = spectral.CoarsenStop
	opts.CoarsenNTarget = 5
	opts.Refine = spectral.RefineKoren
	opts.Seed = 99

	emb, err := spectral.Run(g, opts)
	require.NoError(t, err)
	require.LessOrEqual(t, len(emb.Second), 5)
	require.Equal(t, len(emb.Second), len(emb.Third))
}

// S6 — HDE alone (no refinement) on a long path produces a near-monotone
// second eigenvector.
func TestRun_S6_HDEOnLongPath(t *testing.T) {
	n := 200
	edges := make([][2]int, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	g := buildGraph(t, edges)
	opts := spectral.DefaultOptions()
	opts.HDE = spectral.HDEOn
	opts.Refine = spectral.RefineNone

	emb, err := spectral.Run(g, opts)
	require.NoError(t, err)
	require.Len(t, emb.Second, n)

	extrema := 0
	for i := 1; i < n-1; i++ {
		if (emb.Second[i] > emb.Second[i-1]) != (emb.Second[i+1] > emb.Second[i]) {
			extrema++
		}
	}
	require.LessOrEqual(t, extrema, 2, "expected a near-monotone sequence, found %d local extrema", extrema)
}

func TestRun_Determinism(t *testing.T) {
	g := buildGraph(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	opts := spectral.DefaultOptions()
	opts.Refine = spectral.RefineKoren
	opts.Seed = 123

	e1, err := spectral.Run(g, opts)
	require.NoError(t, err)
	e2, err := spectral.Run(g, opts)
	require.NoError(t, err)
	require.Equal(t, e1.Second, e2.Second)
	require.Equal(t, e1.Third, e2.Third)
}

func TestRun_HDEWithCustomK(t *testing.T) {
	n := 30
	edges := make([][2]int, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	g := buildGraph(t, edges)
	opts := spectral.DefaultOptions()
	opts.HDE = spectral.HDEOn
	opts.HDEK = 5
	opts.Refine = spectral.RefineKoren
	opts.Seed = 21

	emb, err := spectral.Run(g, opts)
	require.NoError(t, err)
	require.Len(t, emb.Second, n)
}

func TestRun_CoarsenLift(t *testing.T) {
	n := 40
	edges := make([][2]int, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	g := buildGraph(t, edges)
	opts := spectral.DefaultOptions()
	opts.Coarsen = spectral.CoarsenLift
	opts.CoarsenNTarget = 10
	opts.Refine = spectral.RefineKoren
	opts.Seed = 5

	emb, err := spectral.Run(g, opts)
	require.NoError(t, err)
	require.Len(t, emb.Second, n)
	require.Len(t, emb.Third, n)
}
