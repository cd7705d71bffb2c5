package edgeio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// WriteEmbedding writes <dir>/embedding.txt atomically: one line per
// vertex in ascending id order, "second third" as space-separated
// float64s, trailing newline on every line. The file only appears at its
// final path once every line has been written successfully.
func WriteEmbedding(dir string, second, third []float64) error {
	if len(second) != len(third) {
		return fmt.Errorf("edgeio.WriteEmbedding: %w", ErrDimensionMismatch)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("edgeio.WriteEmbedding: mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "embedding-*.tmp")
	if err != nil {
		return fmt.Errorf("edgeio.WriteEmbedding: create temp: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	w := bufio.NewWriter(tmp)
	for i := range second {
		line := strconv.FormatFloat(second[i], 'g', -1, 64) + " " + strconv.FormatFloat(third[i], 'g', -1, 64) + "\n"
		if _, err := w.WriteString(line); err != nil {
			return fmt.Errorf("edgeio.WriteEmbedding: write line %d: %w", i, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("edgeio.WriteEmbedding: flush: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("edgeio.WriteEmbedding: close temp: %w", err)
	}

	finalPath := filepath.Join(dir, "embedding.txt")
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return fmt.Errorf("edgeio.WriteEmbedding: rename: %w", err)
	}
	return nil
}
