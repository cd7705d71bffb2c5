package spectral

import (
	"math/rand"

	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/coarsen"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/core"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/hde"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/koren"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/transition"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/tutte"
)

// Embedding is the final per-vertex coordinate pair: the second and third
// eigenvectors of whichever graph resolution the run settled on.
type Embedding struct {
	Second []float64
	Third  []float64
}

// Run executes the full pipeline over g per opts and returns the
// resulting embedding. Every error is wrapped in InputError, NumericError,
// or Internal.
func Run(g *core.Graph, opts Options) (*Embedding, error) {
	if g == nil {
		return nil, &InputError{Err: ErrGraphNil}
	}
	if g.N() == 0 {
		return nil, &InputError{Err: ErrEmptyGraph}
	}
	opts = opts.withDefaults()
	rng := rngFromSeed(opts.Seed)

	var fineSecondSeed, fineThirdSeed []float64

	if opts.Coarsen != CoarsenNone {
		coarseEmbedding, coarseRes, err := runCoarseLevel(g, opts, rng)
		if err != nil {
			return nil, err
		}
		if opts.Coarsen == CoarsenStop {
			return coarseEmbedding, nil
		}
		fineSecondSeed, fineThirdSeed = liftToFine(g.N(), coarseRes.FineToCoarse, coarseEmbedding)
	}

	fineMatrix, err := transition.BuildFine(g)
	if err != nil {
		return nil, &Internal{Err: err}
	}
	firstFine := onesUnitVector(g.N())

	if opts.Coarsen == CoarsenNone {
		if opts.HDE == HDEOn {
			res, err := hde.InitK(g, fineMatrix.Degree(), opts.HDEK)
			if err != nil {
				return nil, &NumericError{Err: err}
			}
			fineSecondSeed, fineThirdSeed = res.Second, res.Third
		} else {
			fineSecondSeed = randomSignFixedUnitVector(rng, g.N())
			fineThirdSeed = randomSignFixedUnitVector(rng, g.N())
		}
	}

	second, third, err := refine(fineMatrix, firstFine, fineSecondSeed, fineThirdSeed, opts)
	if err != nil {
		return nil, err
	}
	return &Embedding{Second: second, Third: third}, nil
}

// runCoarseLevel builds the coarse graph and its transition matrix, seeds
// second/third with sign-fixed random vectors, and runs Koren at the
// tighter coarse-level tolerance — the coarse resolution always uses
// Koren, regardless of the fine-level refine choice.
func runCoarseLevel(g *core.Graph, opts Options, rng *rand.Rand) (*Embedding, *coarsen.Result, error) {
	coarseRes, err := coarsen.Coarsen(g, coarsen.Options{
		MaxRounds:         opts.CoarsenRoundCap,
		TargetVertexCount: opts.CoarsenNTarget,
	})
	if err != nil {
		return nil, nil, &Internal{Err: err}
	}

	coarseMatrix, err := transition.BuildCoarse(coarseRes.Coarse)
	if err != nil {
		return nil, nil, &Internal{Err: err}
	}

	nc := coarseRes.Coarse.N()
	first := onesUnitVector(nc)
	second := randomSignFixedUnitVector(rng, nc)
	third := randomSignFixedUnitVector(rng, nc)

	korenOpts := koren.Options{Eps: opts.KorenEpsCoarse, MaxIter: opts.KorenMaxIter, OnWarning: opts.OnWarning}
	second, _, err = koren.SecondEigenvector(coarseMatrix, first, second, korenOpts)
	if err != nil {
		return nil, nil, &NumericError{Err: err}
	}
	third, _, err = koren.ThirdEigenvector(coarseMatrix, first, second, third, korenOpts)
	if err != nil {
		return nil, nil, &NumericError{Err: err}
	}

	return &Embedding{Second: second, Third: third}, coarseRes, nil
}

// liftToFine maps each fine vertex's coarse-level second/third value
// through fineToCoarse and renormalizes.
func liftToFine(n int, fineToCoarse []int, coarseEmbedding *Embedding) (second, third []float64) {
	second = make([]float64, n)
	third = make([]float64, n)
	for i, c := range fineToCoarse {
		second[i] = coarseEmbedding.Second[c]
		third[i] = coarseEmbedding.Third[c]
	}
	normalizeInPlace(second)
	normalizeInPlace(third)
	return second, third
}

// refine applies the chosen RefineMode to the fine-level seeds.
func refine(m *transition.Matrix, first, second, third []float64, opts Options) ([]float64, []float64, error) {
	switch opts.Refine {
	case RefineNone:
		second = append([]float64(nil), second...)
		third = append([]float64(nil), third...)
		normalizeInPlace(second)
		normalizeInPlace(third)
		return second, third, nil

	case RefineKoren:
		return runKoren(m, first, second, third, opts.KorenEpsFine, opts.KorenMaxIter, opts.OnWarning)

	case RefineTutte:
		return runTutte(m, second, third, opts.TutteRounds)

	case RefineTutteThenKoren:
		second, third, err := runTutte(m, second, third, opts.TutteRounds)
		if err != nil {
			return nil, nil, err
		}
		return runKoren(m, first, second, third, opts.KorenEpsFine, opts.KorenMaxIter, opts.OnWarning)

	default:
		return nil, nil, &Internal{Err: ErrUnknownRefineMode}
	}
}

func runKoren(m *transition.Matrix, first, second, third []float64, eps float64, maxIter int, onWarning func(string)) ([]float64, []float64, error) {
	opts := koren.Options{Eps: eps, MaxIter: maxIter, OnWarning: onWarning}
	second, _, err := koren.SecondEigenvector(m, first, second, opts)
	if err != nil {
		return nil, nil, &NumericError{Err: err}
	}
	third, _, err = koren.ThirdEigenvector(m, first, second, third, opts)
	if err != nil {
		return nil, nil, &NumericError{Err: err}
	}
	return second, third, nil
}

func runTutte(m *transition.Matrix, second, third []float64, rounds int) ([]float64, []float64, error) {
	second, err := tutte.Smooth(m, second, rounds)
	if err != nil {
		return nil, nil, &Internal{Err: err}
	}
	third, err = tutte.Smooth(m, third, rounds)
	if err != nil {
		return nil, nil, &Internal{Err: err}
	}
	return second, third, nil
}

func onesUnitVector(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	normalizeInPlace(v)
	return v
}
