package tutte

import (
	"fmt"

	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/transition"
)

// DefaultRounds is the number of smoothing rounds applied when the caller
// does not override it.
const DefaultRounds = 500

// Smooth applies vec ← (2M with zeroed diagonal)·vec for rounds rounds
// (DefaultRounds if rounds <= 0), returning the smoothed vector. vec is
// not mutated in place; the result is a fresh slice.
func Smooth(m *transition.Matrix, vec []float64, rounds int) ([]float64, error) {
	if m == nil {
		return nil, ErrMatrixNil
	}
	if len(vec) != m.N() {
		return nil, fmt.Errorf("tutte.Smooth(len=%d, n=%d): %w", len(vec), m.N(), ErrDimensionMismatch)
	}
	if rounds <= 0 {
		rounds = DefaultRounds
	}

	m2 := m.DoubledZeroDiag()
	cur := append([]float64(nil), vec...)
	for r := 0; r < rounds; r++ {
		next, err := m2.MulVec(cur)
		if err != nil {
			return nil, fmt.Errorf("tutte.Smooth: %w", err)
		}
		cur = next
	}
	return cur, nil
}
