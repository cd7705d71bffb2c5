package edgeio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/edgeio"
	"github.com/stretchr/testify/require"
)

func TestReadEdges_SkipsBlankAndMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edges.txt")
	content := "0 1\n\n  \nmalformed line\n1 2\n-1 3\n3 4 5\n2 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	edges, err := edgeio.ReadEdges(path)
	require.NoError(t, err)
	require.Equal(t, []edgeio.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}, edges)
}

func TestReadEdges_MissingFile(t *testing.T) {
	_, err := edgeio.ReadEdges(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	require.Error(t, err)
}

func TestReadEdges_EmptyGraph(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n\nnot numbers\n"), 0o644))

	_, err := edgeio.ReadEdges(path)
	require.ErrorIs(t, err, edgeio.ErrEmptyGraph)
}

func TestWriteEmbedding_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	second := []float64{0.1, -0.2, 0.3}
	third := []float64{-0.4, 0.5, -0.6}

	require.NoError(t, edgeio.WriteEmbedding(dir, second, third))

	data, err := os.ReadFile(filepath.Join(dir, "embedding.txt"))
	require.NoError(t, err)
	require.Equal(t, "0.1 -0.4\n-0.2 0.5\n0.3 -0.6\n", string(data))
}

func TestWriteEmbedding_DimensionMismatch(t *testing.T) {
	err := edgeio.WriteEmbedding(t.TempDir(), []float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, edgeio.ErrDimensionMismatch)
}

func TestWriteEmbedding_NoPartialFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	err := edgeio.WriteEmbedding(dir, []float64{1}, []float64{1, 2})
	require.Error(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "embedding.txt"))
	require.True(t, os.IsNotExist(statErr))
}
