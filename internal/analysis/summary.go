package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the finite exponents of a profile.
type Summary struct {
	Samples         int     // all values, finite or not
	Finite          int     // values that entered the statistics
	Mean            float64
	StdDev          float64
	Min             float64
	Max             float64
	ChaoticFraction float64 // share of finite values above zero
}

// Summarize ignores NaN and ±Inf when computing moments and range. With no
// finite value every statistic is NaN.
func Summarize(lambdas []float64) Summary {
	finite := make([]float64, 0, len(lambdas))
	chaotic := 0
	for _, l := range lambdas {
		if math.IsNaN(l) || math.IsInf(l, 0) {
			continue
		}
		finite = append(finite, l)
		if l > 0 {
			chaotic++
		}
	}

	s := Summary{Samples: len(lambdas), Finite: len(finite)}
	if len(finite) == 0 {
		nan := math.NaN()
		s.Mean, s.StdDev, s.Min, s.Max, s.ChaoticFraction = nan, nan, nan, nan, nan
		return s
	}

	s.Mean, s.StdDev = stat.MeanStdDev(finite, nil)
	if len(finite) == 1 {
		s.StdDev = 0
	}
	s.Min = floats.Min(finite)
	s.Max = floats.Max(finite)
	s.ChaoticFraction = float64(chaotic) / float64(len(finite))
	return s
}
