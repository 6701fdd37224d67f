package render

import (
	"context"

	"github.com/san-kum/lyapfrac/internal/dynamo"
	"github.com/san-kum/lyapfrac/internal/grid"
)

// Frame is a row-major width×height raster of encoded samples.
type Frame[P any] struct {
	Width  int
	Height int
	Pix    []P
}

func NewFrame[P any](width, height int) *Frame[P] {
	return &Frame[P]{Width: width, Height: height, Pix: make([]P, width*height)}
}

// Row returns row y as a slice into Pix.
func (f *Frame[P]) Row(y int) []P {
	return f.Pix[y*f.Width : (y+1)*f.Width]
}

// Sweep evaluates every sample of plane at control value c and stores
// encode(λ) in f. Rows run in parallel; the returned extrema are reduced
// from per-row values once all rows are done. Rows not yet started when ctx
// is canceled are skipped and the context error is returned.
func Sweep[P any](ctx context.Context, ev *dynamo.Evaluator, plane grid.Plane, c float64, f *Frame[P], encode func(float64) P, workers int, progress func(row int)) (dynamo.Extrema, error) {
	rows := make([]dynamo.Extrema, plane.Height())

	err := dynamo.ForEachRow(plane.Height(), workers, func(y int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if progress != nil {
			progress(y)
		}
		ext := dynamo.NewExtrema()
		p := dynamo.Params{A: plane.Rows.At(y), C: c}
		out := f.Row(y)
		for x := range out {
			p.B = plane.Cols.At(x)
			s := ev.Exponent(p)
			ext.Observe(s)
			out[x] = encode(s.Lambda)
		}
		rows[y] = ext
		return nil
	})
	if err != nil {
		return dynamo.Extrema{}, err
	}

	return dynamo.Reduce(rows), nil
}
