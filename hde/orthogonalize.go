package hde

// discardThreshold is the Euclidean-norm floor below which a column is
// treated as numerically collapsed and dropped rather than normalized.
const discardThreshold = 0.001

// dOrthogonalize D-orthogonalizes columns against each other in the order
// given, using the degree-weighted inner product ⟨x,y⟩_D = xᵀDy, and
// returns the surviving (normalized) columns. A column whose norm drops
// below discardThreshold after projecting out every already-retained
// column is dropped entirely rather than kept as a zero vector; later
// columns only ever orthogonalize against what survived, matching the
// "shift subsequent columns down" behavior of the step-by-step algorithm.
func dOrthogonalize(columns [][]float64, deg []float64) [][]float64 {
	retained := make([][]float64, 0, len(columns))
	for _, col := range columns {
		for _, kept := range retained {
			dotColKept := dDot(col, kept, deg)
			dotKeptKept := dDot(kept, kept, deg)
			if dotKeptKept == 0 {
				continue
			}
			coeff := dotColKept / dotKeptKept
			for i := range col {
				col[i] -= coeff * kept[i]
			}
		}
		if euclideanNorm(col) < discardThreshold {
			continue
		}
		normalizeInPlace(col)
		retained = append(retained, col)
	}
	return retained
}

// dDot computes the D-weighted inner product xᵀDy for a diagonal degree
// matrix D represented as the vector deg.
func dDot(x, y, deg []float64) float64 {
	sum := 0.0
	for i := range x {
		sum += x[i] * y[i] * deg[i]
	}
	return sum
}
