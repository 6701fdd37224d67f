package dynamo

import (
	"fmt"

	"github.com/san-kum/lyapfrac/internal/sequence"
)

// Params are the three control values a sample is evaluated at.
type Params struct {
	A float64
	B float64
	C float64
}

// Rate returns the growth rate selected by sym.
func (p Params) Rate(sym sequence.Symbol) float64 {
	switch sym {
	case sequence.A:
		return p.A
	case sequence.B:
		return p.B
	case sequence.C:
		return p.C
	default:
		panic(fmt.Sprintf("dynamo: unknown symbol %d", uint8(sym)))
	}
}

// Sample is the outcome of one exponent evaluation.
type Sample struct {
	Lambda float64 // Lyapunov exponent per sub-step
	X      float64 // map state after the last round
}
