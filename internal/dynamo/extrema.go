package dynamo

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Extrema tracks the range of final map states and exponents seen so far.
// It is diagnostic only.
type Extrema struct {
	MinX, MaxX           float64
	MinLambda, MaxLambda float64
	Count                int
}

// NewExtrema returns an empty range (+Inf minima, -Inf maxima).
func NewExtrema() Extrema {
	return Extrema{
		MinX:      math.Inf(1),
		MaxX:      math.Inf(-1),
		MinLambda: math.Inf(1),
		MaxLambda: math.Inf(-1),
	}
}

// Observe widens the range with s. NaN values never win a comparison.
func (e *Extrema) Observe(s Sample) {
	if s.X > e.MaxX {
		e.MaxX = s.X
	}
	if s.X < e.MinX {
		e.MinX = s.X
	}
	if s.Lambda > e.MaxLambda {
		e.MaxLambda = s.Lambda
	}
	if s.Lambda < e.MinLambda {
		e.MinLambda = s.Lambda
	}
	e.Count++
}

// Reduce combines per-row ranges into one.
func Reduce(parts []Extrema) Extrema {
	if len(parts) == 0 {
		return NewExtrema()
	}

	minX := make([]float64, len(parts))
	maxX := make([]float64, len(parts))
	minL := make([]float64, len(parts))
	maxL := make([]float64, len(parts))
	count := 0
	for i, p := range parts {
		minX[i], maxX[i] = p.MinX, p.MaxX
		minL[i], maxL[i] = p.MinLambda, p.MaxLambda
		count += p.Count
	}

	return Extrema{
		MinX:      floats.Min(minX),
		MaxX:      floats.Max(maxX),
		MinLambda: floats.Min(minL),
		MaxLambda: floats.Max(maxL),
		Count:     count,
	}
}
