package coarsen

import "errors"

// ErrGraphNil is returned when a nil *core.Graph is passed to Coarsen.
var ErrGraphNil = errors.New("coarsen: graph is nil")

// ErrEmptyGraph is returned when the graph has zero vertices.
var ErrEmptyGraph = errors.New("coarsen: graph has no vertices")
