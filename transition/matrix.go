package transition

import "fmt"

// Matrix is an immutable sparse row-major representation of a transition
// matrix M = ½(I + D⁻¹A). The diagonal is stored densely (one entry per
// row: ½, plus any folded-in coarse self-loop weight; 1 for an isolated
// vertex; 0 in a DoubledZeroDiag matrix) and off-diagonal entries are
// stored in CSR form, mirroring core.Graph's own rowOffsets/adj split.
type Matrix struct {
	n          int
	diag       []float64
	rowOffsets []int
	colIdx     []int
	vals       []float64
	degree     []float64
}

// N returns the matrix dimension.
func (m *Matrix) N() int { return m.n }

// Degree returns the degree (fine: edge count; coarse: summed incident
// weight) used to build row v, needed by callers that compute D-orthogonal
// inner products.
func (m *Matrix) Degree() []float64 { return m.degree }

// NNZ returns the number of stored off-diagonal entries.
func (m *Matrix) NNZ() int { return len(m.vals) }

// Row returns the off-diagonal column indices and values for row v, plus
// the row's diagonal entry.
func (m *Matrix) Row(v int) (cols []int, vals []float64, diag float64) {
	start, end := m.rowOffsets[v], m.rowOffsets[v+1]
	return m.colIdx[start:end], m.vals[start:end], m.diag[v]
}

// MulVec computes y = M·x serially, row by row.
func (m *Matrix) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.n {
		return nil, fmt.Errorf("transition.MulVec(len=%d, n=%d): %w", len(x), m.n, ErrDimensionMismatch)
	}
	y := make([]float64, m.n)
	for v := 0; v < m.n; v++ {
		m.mulRow(v, x, y)
	}
	return y, nil
}

func (m *Matrix) mulRow(v int, x, y []float64) {
	sum := m.diag[v] * x[v]
	for k := m.rowOffsets[v]; k < m.rowOffsets[v+1]; k++ {
		sum += m.vals[k] * x[m.colIdx[k]]
	}
	y[v] = sum
}

// MulVecParallel computes y = M·x, partitioning rows across workers
// goroutines. Each goroutine owns a disjoint contiguous row range and
// writes only to its own slice of y, so the result is bit-identical to
// MulVec regardless of workers. workers <= 1 falls back to MulVec.
func (m *Matrix) MulVecParallel(x []float64, workers int) ([]float64, error) {
	if len(x) != m.n {
		return nil, fmt.Errorf("transition.MulVecParallel(len=%d, n=%d): %w", len(x), m.n, ErrDimensionMismatch)
	}
	if workers <= 1 || m.n < workers {
		return m.MulVec(x)
	}

	y := make([]float64, m.n)
	chunk := (m.n + workers - 1) / workers
	done := make(chan struct{}, workers)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > m.n {
			hi = m.n
		}
		if lo >= hi {
			done <- struct{}{}
			continue
		}
		go func(lo, hi int) {
			for v := lo; v < hi; v++ {
				m.mulRow(v, x, y)
			}
			done <- struct{}{}
		}(lo, hi)
	}
	for w := 0; w < workers; w++ {
		<-done
	}
	return y, nil
}

// DoubledZeroDiag returns a Matrix representing 2M with the diagonal
// zeroed, the operator Tutte smoothing repeatedly applies.
func (m *Matrix) DoubledZeroDiag() *Matrix {
	vals := make([]float64, len(m.vals))
	for i, v := range m.vals {
		vals[i] = 2 * v
	}
	return &Matrix{
		n:          m.n,
		diag:       make([]float64, m.n), // zero
		rowOffsets: m.rowOffsets,
		colIdx:     m.colIdx,
		vals:       vals,
		degree:     m.degree,
	}
}
