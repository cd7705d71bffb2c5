package render

import "errors"

// ErrDimensionMismatch is returned when second and third have different
// lengths.
var ErrDimensionMismatch = errors.New("render: second and third vectors have different lengths")

// ErrEmptyEmbedding is returned when there are no vertices to draw.
var ErrEmptyEmbedding = errors.New("render: embedding has no vertices")

// ErrVertexOutOfRange is returned when an edge references a vertex index
// outside the embedding.
var ErrVertexOutOfRange = errors.New("render: edge references a vertex outside the embedding")
