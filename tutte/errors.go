package tutte

import "errors"

// ErrMatrixNil is returned when a nil *transition.Matrix is passed to Smooth.
var ErrMatrixNil = errors.New("tutte: matrix is nil")

// ErrDimensionMismatch is returned when vec's length does not match the
// matrix dimension.
var ErrDimensionMismatch = errors.New("tutte: vector length does not match matrix dimension")
