package analysis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/lyapfrac/internal/dynamo"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrAxis  = errors.New("analysis: axis must be a, b or c")
	ErrSteps = errors.New("analysis: at least two steps are required")
)

// Axis names the parameter a profile varies.
type Axis string

const (
	AxisA Axis = "a"
	AxisB Axis = "b"
	AxisC Axis = "c"
)

func ParseAxis(s string) (Axis, error) {
	switch ax := Axis(strings.ToLower(s)); ax {
	case AxisA, AxisB, AxisC:
		return ax, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrAxis, s)
	}
}

// With returns p with the value for ax replaced by v.
func (ax Axis) With(p dynamo.Params, v float64) dynamo.Params {
	switch ax {
	case AxisA:
		p.A = v
	case AxisB:
		p.B = v
	case AxisC:
		p.C = v
	}
	return p
}

// Point is one sample of a profile.
type Point struct {
	Param  float64
	Lambda float64
}

// Profile is λ sampled at evenly spaced values of one axis.
type Profile struct {
	Axis   Axis
	Base   dynamo.Params
	Points []Point
}

func (p *Profile) Params() []float64 {
	out := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		out[i] = pt.Param
	}
	return out
}

func (p *Profile) Lambdas() []float64 {
	out := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		out[i] = pt.Lambda
	}
	return out
}

// Sweep evaluates λ at steps values spanning [lo, hi] on ax, both ends
// included. The other two parameters come from base.
func Sweep(ev *dynamo.Evaluator, ax Axis, base dynamo.Params, lo, hi float64, steps, workers int) (*Profile, error) {
	if _, err := ParseAxis(string(ax)); err != nil {
		return nil, err
	}
	if steps < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrSteps, steps)
	}

	values := floats.Span(make([]float64, steps), lo, hi)
	points := make([]Point, steps)
	err := dynamo.ForEachRow(steps, workers, func(i int) error {
		s := ev.Exponent(ax.With(base, values[i]))
		points[i] = Point{Param: values[i], Lambda: s.Lambda}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Profile{Axis: ax, Base: base, Points: points}, nil
}
