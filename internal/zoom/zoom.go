// Package zoom plans a zoom flight: a batch of render commands whose
// parameter window shrinks geometrically around a fixed center.
package zoom

import (
	"errors"
	"fmt"
	"io"
	"math"
)

var (
	ErrFrames = errors.New("zoom: frame count must be positive")
	ErrZoom   = errors.New("zoom: zoom level must be positive")
)

// Flight describes the starting window and how far to zoom into it.
type Flight struct {
	Program    string
	Width      int
	Height     int
	Sequence   string
	Iterations int
	BMin, BMax float64 // horizontal
	AMin, AMax float64 // vertical
	Frames     int
	Zoom       float64
}

// Step is one frame of the flight.
type Step struct {
	Frame      int
	Scale      float64
	BMin, BMax float64
	AMin, AMax float64
}

func (f Flight) validate() error {
	if f.Frames <= 0 {
		return fmt.Errorf("%w: %d", ErrFrames, f.Frames)
	}
	if !(f.Zoom > 0) {
		return fmt.Errorf("%w: %v", ErrZoom, f.Zoom)
	}
	return nil
}

// Steps scales the window by (1/zoom)^(f/frames) for frame f. The last
// frame stops one step short of the full zoom.
func (f Flight) Steps() ([]Step, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	centerB := (f.BMin + f.BMax) / 2
	centerA := (f.AMin + f.AMax) / 2
	db := f.BMax - centerB
	da := f.AMax - centerA

	scale := math.Pow(1.0/f.Zoom, 1.0/float64(f.Frames))
	steps := make([]Step, f.Frames)
	for i := range steps {
		scl := math.Pow(scale, float64(i))
		steps[i] = Step{
			Frame: i,
			Scale: scl,
			BMin:  centerB - db*scl,
			BMax:  centerB + db*scl,
			AMin:  centerA - da*scl,
			AMax:  centerA + da*scl,
		}
	}
	return steps, nil
}

// WriteScript writes one comment and one shell pipeline per frame. Each
// pipeline renders a frame and converts it to zoom-NNNN.png.
func (f Flight) WriteScript(w io.Writer) error {
	steps, err := f.Steps()
	if err != nil {
		return err
	}

	for _, s := range steps {
		_, err := fmt.Fprintf(w,
			"# Frame #%d:  scale=%f: \n"+
				"%s -W %d -H %d -s %s -i %d "+
				"-x %10.8f -X %10.8f -y %10.8f -Y %10.8f "+
				" | convert -verbose ppm:- zoom-%04d.png\n",
			s.Frame, s.Scale,
			f.Program, f.Width, f.Height, f.Sequence, f.Iterations,
			s.BMin, s.BMax, s.AMin, s.AMax,
			s.Frame)
		if err != nil {
			return err
		}
	}
	return nil
}
