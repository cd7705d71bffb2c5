package hde

import "errors"

// ErrGraphNil is returned when a nil *core.Graph is passed to Init.
var ErrGraphNil = errors.New("hde: graph is nil")

// ErrEmptyGraph is returned when the graph has zero vertices.
var ErrEmptyGraph = errors.New("hde: graph has no vertices")

// ErrDisconnectedGraph is returned when a BFS pivot cannot reach every
// vertex. HDE's pivot-selection heuristic assumes a single connected
// component; see the package-level Open Question decision in the design
// notes for why this is a hard requirement rather than a silent fallback.
var ErrDisconnectedGraph = errors.New("hde: graph is not connected")

// ErrAllColumnsDiscarded is a NumericError: every BFS distance column
// collapsed below the discard threshold during D-orthogonalization,
// leaving nothing to build the small eigenproblem from.
var ErrAllColumnsDiscarded = errors.New("hde: all candidate columns discarded during orthogonalization")

// ErrEigenSolveFailed wraps a failure of the small dense symmetric
// eigensolve in step 6.
var ErrEigenSolveFailed = errors.New("hde: small symmetric eigensolve did not converge")

// ErrInsufficientColumns is a NumericError: fewer than two columns
// survived D-orthogonalization, so the small eigenproblem cannot yield
// the two eigenvectors HDE needs to seed both second and third vectors.
var ErrInsufficientColumns = errors.New("hde: fewer than two columns survived orthogonalization")
