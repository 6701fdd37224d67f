// Package palette turns Lyapunov exponents into pixel values.
package palette

import "math"

// Breakpoints of the colour curve, chosen to match the classic
// Lyapunov-space prints.
const (
	LambdaMin = -2.55
	LambdaMax = 0.3959
)

// RGB is one 24-bit pixel.
type RGB struct {
	R, G, B uint8
}

// Clamp converts v to a byte, saturating at 0 and 255 and truncating the
// fraction. NaN maps to 0.
func Clamp(v float64) uint8 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > 255:
		return 255
	case v < 0:
		return 0
	default:
		return uint8(v)
	}
}

// Color encodes λ: positive (chaotic) exponents shade blue, negative
// (stable) ones run from yellow through red to black as λ approaches
// LambdaMin. λ == 0 is black.
func Color(lambda float64) RGB {
	switch {
	case lambda > 0:
		return RGB{B: Clamp(255 * lambda / LambdaMax)}
	case lambda == 0:
		return RGB{}
	default:
		ratio := lambda / LambdaMin
		return RGB{
			R: Clamp(255 * (1 - math.Pow(ratio, 2.0/3.0))),
			G: Clamp(255 * (1 - math.Pow(ratio, 1.0/3.0))),
		}
	}
}

// Gray encodes λ as a single intensity centred on 127.
func Gray(lambda float64) uint8 {
	return Clamp(math.Round(127 - lambda*100))
}
