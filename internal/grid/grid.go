// Package grid maps integer sample indices onto real control parameters.
//
// Every axis is sampled at cell centres: index i of an axis with n cells
// maps to lo + (hi-lo)/n*(i+0.5). An axis with lo > hi runs backwards, which
// is how the vertical axis is conventionally stored (row 0 at the top holds
// the largest value).
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadCenter indicates a center specification that is not "cx:cy:span".
var ErrBadCenter = errors.New("grid: cannot parse center as cx:cy:x_size")

// Axis is one sampled parameter range.
type Axis struct {
	Lo   float64
	Hi   float64
	Size int
}

// At returns the cell-center value for index i. Size must be positive.
func (a Axis) At(i int) float64 {
	return a.Lo + (a.Hi-a.Lo)/float64(a.Size)*(float64(i)+0.5)
}

// Values returns At(i) for every index of the axis.
func (a Axis) Values() []float64 {
	v := make([]float64, a.Size)
	for i := range v {
		v[i] = a.At(i)
	}
	return v
}

// Plane is the 2-D sampling grid of one frame: rows walk the a axis,
// columns walk the b axis.
type Plane struct {
	Rows Axis
	Cols Axis
}

func (p Plane) Width() int  { return p.Cols.Size }
func (p Plane) Height() int { return p.Rows.Size }

// Center is a view given as a center point and a horizontal span.
type Center struct {
	X    float64
	Y    float64
	Span float64
}

// ParseCenter reads "cx:cy:span".
func ParseCenter(text string) (Center, error) {
	fields := strings.Split(text, ":")
	if len(fields) != 3 {
		return Center{}, fmt.Errorf("%w: %q has %d fields", ErrBadCenter, text, len(fields))
	}

	var v [3]float64
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Center{}, fmt.Errorf("%w: %q: %v", ErrBadCenter, text, err)
		}
		v[i] = x
	}
	return Center{X: v[0], Y: v[1], Span: v[2]}, nil
}

// Bounds derives the horizontal (b) and vertical (a) ranges for a
// width×height image. The vertical span keeps the pixel aspect ratio and the
// vertical range is inverted so larger rows map to smaller values.
func (c Center) Bounds(width, height int) (bLo, bHi, aLo, aHi float64) {
	dy := c.Span * float64(height) / float64(width)
	bLo = c.X - c.Span/2
	bHi = c.X + c.Span/2
	aLo = c.Y + dy/2
	aHi = c.Y - dy/2
	return
}
