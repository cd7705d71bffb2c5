package spectral

import "errors"

// ErrGraphNil is returned when a nil *core.Graph is passed to Run.
var ErrGraphNil = errors.New("spectral: graph is nil")

// ErrEmptyGraph is returned when the graph has zero vertices.
var ErrEmptyGraph = errors.New("spectral: graph has no vertices")

// ErrUnknownRefineMode is returned when Options.Refine holds a value
// outside the RefineNone..RefineTutteThenKoren range.
var ErrUnknownRefineMode = errors.New("spectral: unknown refine mode")

// InputError wraps a failure caused by malformed or unusable input: a
// missing/empty graph, or an edge-list parsing problem surfaced from a
// lower layer.
type InputError struct{ Err error }

func (e *InputError) Error() string { return "spectral: input error: " + e.Err.Error() }
func (e *InputError) Unwrap() error { return e.Err }

// NumericError wraps a failure in the numeric core: a small eigensolve
// that failed to converge, or HDE discarding every candidate column.
type NumericError struct{ Err error }

func (e *NumericError) Error() string { return "spectral: numeric error: " + e.Err.Error() }
func (e *NumericError) Unwrap() error { return e.Err }

// Internal wraps a failure that should be impossible given validated
// input: a CSR invariant violation, a dimension mismatch between
// internally-constructed vectors, or similar defects in the pipeline
// itself rather than in what was handed to it.
type Internal struct{ Err error }

func (e *Internal) Error() string { return "spectral: internal error: " + e.Err.Error() }
func (e *Internal) Unwrap() error { return e.Err }
