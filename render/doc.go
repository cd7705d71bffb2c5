// Package render rasterizes a 2D embedding and its edge set to a PNG. It
// mirrors the reference renderer: a fixed 1200x800 canvas, the embedding's
// bounding box mapped to fill it, royal-blue edges over a white backdrop,
// with vertex markers added for readability.
package render
