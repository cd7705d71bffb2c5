package transition

import "errors"

// ErrGraphNil is returned when a nil graph is passed to a Build function.
var ErrGraphNil = errors.New("transition: graph is nil")

// ErrEmptyGraph is returned when the graph has zero vertices; a transition
// matrix is meaningless without at least one row.
var ErrEmptyGraph = errors.New("transition: graph has no vertices")

// ErrDimensionMismatch is returned by MulVec/MulVecParallel when the input
// vector's length does not match the matrix's vertex count.
var ErrDimensionMismatch = errors.New("transition: vector length does not match matrix dimension")
