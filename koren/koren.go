package koren

import (
	"fmt"
	"math"

	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/transition"
)

// SecondEigenvector extracts the second eigenvector of m via power
// iteration, deflating against first on every round. start is the
// iteration seed (HDE output, a lifted coarse vector, or a sign-fixed
// random vector). Returns the converged vector and the iteration count.
func SecondEigenvector(m *transition.Matrix, first, start []float64, opts Options) ([]float64, int, error) {
	if err := validate(m, first, start); err != nil {
		return nil, 0, err
	}
	deg := m.Degree()
	vec, iters, err := iterate(m, deg, [][]float64{first}, start, opts, "second")
	if err != nil {
		return nil, 0, err
	}
	return vec, iters, nil
}

// ThirdEigenvector extracts the third eigenvector, deflating against both
// first and second, using double the base tolerance.
func ThirdEigenvector(m *transition.Matrix, first, second, start []float64, opts Options) ([]float64, int, error) {
	if err := validate(m, first, start); err != nil {
		return nil, 0, err
	}
	if len(second) != m.N() {
		return nil, 0, fmt.Errorf("koren.ThirdEigenvector(second): %w", ErrDimensionMismatch)
	}
	opts.Eps *= 2
	deg := m.Degree()
	vec, iters, err := iterate(m, deg, [][]float64{first, second}, start, opts, "third")
	if err != nil {
		return nil, 0, err
	}
	return vec, iters, nil
}

func validate(m *transition.Matrix, first, start []float64) error {
	if m == nil {
		return ErrMatrixNil
	}
	if len(first) != m.N() || len(start) != m.N() {
		return fmt.Errorf("koren: %w", ErrDimensionMismatch)
	}
	return nil
}

// iterate runs the deflate/multiply/normalize loop until convergence or
// the iteration cap, deflating against every vector in against on each
// round (in order), using the D-weighted inner product.
func iterate(m *transition.Matrix, deg []float64, against [][]float64, start []float64, opts Options, label string) ([]float64, int, error) {
	n := m.N()
	dAgainst := make([][]float64, len(against))
	denom := make([]float64, len(against))
	for i, v := range against {
		dAgainst[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			dAgainst[i][j] = v[j] * deg[j]
		}
		denom[i] = dot(v, dAgainst[i])
	}

	uHat := append([]float64(nil), start...)
	iters := 0
	for {
		u := append([]float64(nil), uHat...)
		for i, v := range against {
			num := dot(u, dAgainst[i])
			coeff := num / denom[i]
			for j := 0; j < n; j++ {
				u[j] -= coeff * v[j]
			}
		}

		mu, err := m.MulVec(u)
		if err != nil {
			return nil, 0, fmt.Errorf("koren.iterate(%s): %w", label, err)
		}
		normalizeInPlace(mu)
		iters++

		res := residualNorm(u, mu)
		uHat = mu
		if res < opts.Eps {
			break
		}
		if opts.MaxIter > 0 && iters >= opts.MaxIter {
			if opts.OnWarning != nil {
				opts.OnWarning(fmt.Sprintf("koren: %s eigenvector hit iteration cap %d before convergence (residual %.3g)", label, opts.MaxIter, res))
			}
			break
		}
	}
	return uHat, iters, nil
}

func dot(x, y []float64) float64 {
	sum := 0.0
	for i := range x {
		sum += x[i] * y[i]
	}
	return sum
}

func residualNorm(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func normalizeInPlace(v []float64) {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	n := math.Sqrt(sum)
	if n == 0 {
		return
	}
	for i := range v {
		v[i] /= n
	}
}
