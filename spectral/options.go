package spectral

import (
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/coarsen"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/hde"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/koren"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/tutte"
)

// CoarsenMode selects whether and how coarsening participates in the run.
type CoarsenMode int

const (
	CoarsenNone CoarsenMode = iota // no coarsening
	CoarsenLift                    // coarsen, embed, lift result to seed fine iteration
	CoarsenStop                    // coarsen, embed, stop (fine graph is never touched)
)

// HDEMode selects whether HDE seeds the fine-level iteration.
type HDEMode int

const (
	HDEOff HDEMode = iota
	HDEOn
)

// RefineMode selects the fine-level refinement strategy. It is not applied
// under CoarsenStop: the coarse level is always refined with Koren.
type RefineMode int

const (
	RefineNone RefineMode = iota
	RefineKoren
	RefineTutte
	RefineTutteThenKoren
)

// DefaultKorenMaxIter bounds Koren's power iteration as a safety cap the
// reference algorithm does not itself impose.
const DefaultKorenMaxIter = 100000

// Options configures a single Run. The zero value is not directly usable
// for Coarsen/HDE/Refine (all default to "none"/"off"), but numeric
// tunables fall back to package defaults when left at zero.
type Options struct {
	Coarsen CoarsenMode
	HDE     HDEMode
	Refine  RefineMode

	// Seed drives every random vector this run generates. Two Run calls
	// with the same graph, Options, and Seed produce byte-identical
	// embeddings.
	Seed int64

	CoarsenRoundCap int
	CoarsenNTarget  int
	HDEK            int
	KorenEpsFine    float64
	KorenEpsCoarse  float64
	KorenMaxIter    int
	TutteRounds     int

	// OnWarning, if non-nil, receives non-fatal diagnostics: Run passes it
	// to Koren, which reports reaching its iteration cap. HDE column
	// discards are not reported. Nil is a valid no-op default.
	OnWarning func(string)
}

// DefaultOptions returns an Options with CoarsenNone/HDEOff/RefineNone and
// every numeric tunable at its package default.
func DefaultOptions() Options {
	return Options{
		Coarsen:         CoarsenNone,
		HDE:             HDEOff,
		Refine:          RefineNone,
		CoarsenRoundCap: coarsen.DefaultMaxRounds,
		CoarsenNTarget:  coarsen.DefaultTargetVertexCount,
		HDEK:            hde.K,
		KorenEpsFine:    koren.DefaultEpsFine,
		KorenEpsCoarse:  koren.DefaultEpsCoarse,
		KorenMaxIter:    DefaultKorenMaxIter,
		TutteRounds:     tutte.DefaultRounds,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.CoarsenRoundCap <= 0 {
		o.CoarsenRoundCap = d.CoarsenRoundCap
	}
	if o.CoarsenNTarget <= 0 {
		o.CoarsenNTarget = d.CoarsenNTarget
	}
	if o.HDEK <= 0 {
		o.HDEK = d.HDEK
	}
	if o.KorenEpsFine <= 0 {
		o.KorenEpsFine = d.KorenEpsFine
	}
	if o.KorenEpsCoarse <= 0 {
		o.KorenEpsCoarse = d.KorenEpsCoarse
	}
	if o.KorenMaxIter <= 0 {
		o.KorenMaxIter = d.KorenMaxIter
	}
	if o.TutteRounds <= 0 {
		o.TutteRounds = d.TutteRounds
	}
	return o
}

func (o Options) warn(msg string) {
	if o.OnWarning != nil {
		o.OnWarning(msg)
	}
}
