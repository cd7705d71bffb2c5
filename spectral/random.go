package spectral

import (
	"math"
	"math/rand"
)

// defaultSeed is the fixed seed used when Options.Seed is left at zero,
// keeping a zero-value Options reproducible rather than time-based.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 maps to
// defaultSeed so a caller who never set Options.Seed still gets
// reproducible runs rather than an unseeded stream.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// randomSignFixedUnitVector draws n components uniformly from [-1, 1],
// flips the sign of every component if the first is negative, and
// normalizes to unit Euclidean length.
func randomSignFixedUnitVector(r *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = r.Float64()*2 - 1
	}
	if n > 0 && v[0] < 0 {
		for i := range v {
			v[i] = -v[i]
		}
	}
	normalizeInPlace(v)
	return v
}

func normalizeInPlace(v []float64) {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
}
