package render

import (
	"fmt"
	"image/color"

	"git.sr.ht/~sbinet/gg"
	"github.com/SpectralGraphDrawingKbtuDiploma/spectra/edgeio"
)

// Width and Height are the fixed canvas dimensions, matching the reference
// renderer's fixed 1200x800 output.
const (
	Width   = 1200
	Height  = 800
	padding = 40.0
)

var (
	colorBackdrop = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorEdge     = color.RGBA{0x41, 0x69, 0xe1, 0xff} // royal blue
	colorVertex   = color.RGBA{0x22, 0x22, 0x22, 0xff}
)

// Draw renders second/third as vertex coordinates with edges overlaid and
// saves the result to path as a PNG. edges may reference any subset of
// vertices; an out-of-range endpoint is an error.
func Draw(path string, second, third []float64, edges []edgeio.Edge) error {
	if len(second) != len(third) {
		return fmt.Errorf("render.Draw: %w", ErrDimensionMismatch)
	}
	n := len(second)
	if n == 0 {
		return fmt.Errorf("render.Draw: %w", ErrEmptyEmbedding)
	}
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return fmt.Errorf("render.Draw: %w", ErrVertexOutOfRange)
		}
	}

	xs, ys := project(second, third)

	dc := gg.NewContext(Width, Height)
	dc.SetColor(colorBackdrop)
	dc.Clear()

	dc.SetColor(colorEdge)
	dc.SetLineWidth(1)
	for _, e := range edges {
		dc.DrawLine(xs[e.U], ys[e.U], xs[e.V], ys[e.V])
		dc.Stroke()
	}

	dc.SetColor(colorVertex)
	for i := range xs {
		dc.DrawCircle(xs[i], ys[i], 2.5)
		dc.Fill()
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render.Draw: save %s: %w", path, err)
	}
	return nil
}

// project maps (second, third) into pixel coordinates: the embedding's
// bounding box scaled to fill the canvas minus a fixed padding margin on
// every side, y flipped so increasing third points up.
func project(second, third []float64) (xs, ys []float64) {
	minX, maxX := second[0], second[0]
	minY, maxY := third[0], third[0]
	for i := range second {
		if second[i] < minX {
			minX = second[i]
		}
		if second[i] > maxX {
			maxX = second[i]
		}
		if third[i] < minY {
			minY = third[i]
		}
		if third[i] > maxY {
			maxY = third[i]
		}
	}
	rangeX := maxX - minX
	if rangeX == 0 {
		rangeX = 1e-9
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1e-9
	}

	drawW := float64(Width) - 2*padding
	drawH := float64(Height) - 2*padding

	xs = make([]float64, len(second))
	ys = make([]float64, len(third))
	for i := range second {
		xs[i] = padding + (second[i]-minX)/rangeX*drawW
		ys[i] = float64(Height) - padding - (third[i]-minY)/rangeY*drawH
	}
	return xs, ys
}
