package koren

import "errors"

// ErrMatrixNil is returned when a nil *transition.Matrix is passed in.
var ErrMatrixNil = errors.New("koren: matrix is nil")

// ErrDimensionMismatch is returned when first/second/start vectors don't
// match the matrix dimension.
var ErrDimensionMismatch = errors.New("koren: vector length does not match matrix dimension")
