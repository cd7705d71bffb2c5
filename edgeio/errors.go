package edgeio

import "errors"

// ErrEmptyGraph is returned by ReadEdges when the file contains no
// parseable edges.
var ErrEmptyGraph = errors.New("edgeio: edge list contains no parseable edges")

// ErrDimensionMismatch is returned by WriteEmbedding when second and
// third have different lengths.
var ErrDimensionMismatch = errors.New("edgeio: second and third vectors have different lengths")
