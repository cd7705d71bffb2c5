package transition

import "github.com/SpectralGraphDrawingKbtuDiploma/spectra/core"

// BuildFine builds the transition matrix M = ½(I + D⁻¹A) for an unweighted
// fine graph. Isolated vertices (degree 0) get an absorbing row, M[i,i]=1,
// since D⁻¹ is undefined at degree 0.
func BuildFine(g *core.Graph) (*Matrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.N()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	degree := make([]float64, n)
	diag := make([]float64, n)
	colIdx := make([]int, 0, g.M())
	vals := make([]float64, 0, g.M())

	newRowOffsets := make([]int, n+1)
	for v := 0; v < n; v++ {
		deg := g.Degree(v)
		degree[v] = float64(deg)
		if deg == 0 {
			diag[v] = 1
			newRowOffsets[v+1] = newRowOffsets[v]
			continue
		}
		diag[v] = 0.5
		w := 1 / (2 * float64(deg))
		for _, u := range g.Neighbors(v) {
			colIdx = append(colIdx, u)
			vals = append(vals, w)
		}
		newRowOffsets[v+1] = newRowOffsets[v] + deg
	}

	return &Matrix{
		n:          n,
		diag:       diag,
		rowOffsets: newRowOffsets,
		colIdx:     colIdx,
		vals:       vals,
		degree:     degree,
	}, nil
}

// BuildCoarse builds the transition matrix for a weighted coarse graph. A
// coarse self-loop's weight folds into the diagonal rather than appearing
// as a separate off-diagonal entry.
func BuildCoarse(cg *core.CoarseGraph) (*Matrix, error) {
	if cg == nil {
		return nil, ErrGraphNil
	}
	n := cg.N()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	degree := make([]float64, n)
	diag := make([]float64, n)
	rowOffsets := cg.RowOffsets()
	adj := cg.Adj()

	for v := 0; v < n; v++ {
		sum := 0.0
		for j := rowOffsets[v]; j < rowOffsets[v+1]; j++ {
			sum += cg.Weight(j)
		}
		degree[v] = sum
	}

	newRowOffsets := make([]int, n+1)
	colIdx := make([]int, 0, len(adj))
	vals := make([]float64, 0, len(adj))

	for v := 0; v < n; v++ {
		if degree[v] == 0 {
			diag[v] = 1
			newRowOffsets[v+1] = newRowOffsets[v]
			continue
		}
		diag[v] = 0.5
		denom := 2 * degree[v]
		for j := rowOffsets[v]; j < rowOffsets[v+1]; j++ {
			u := adj[j]
			w := cg.Weight(j)
			if u == v {
				diag[v] += w / denom
				continue
			}
			colIdx = append(colIdx, u)
			vals = append(vals, w/denom)
		}
		newRowOffsets[v+1] = len(colIdx)
	}

	return &Matrix{
		n:          n,
		diag:       diag,
		rowOffsets: newRowOffsets,
		colIdx:     colIdx,
		vals:       vals,
		degree:     degree,
	}, nil
}
