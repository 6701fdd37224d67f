package dynamo

import (
	"math"

	"github.com/san-kum/lyapfrac/internal/sequence"
)

// StartX is the initial map state. It is the unstable fixed point of the
// derivative, so one unrecorded pass runs before measuring.
const StartX = 0.5

// Evaluator computes Lyapunov exponents for a fixed control sequence and
// round count.
type Evaluator struct {
	seq    sequence.Sequence
	rounds int
}

// NewEvaluator validates the sequence and round count.
func NewEvaluator(seq sequence.Sequence, rounds int) (*Evaluator, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	if rounds < 1 {
		return nil, ErrIterations
	}
	s := make(sequence.Sequence, len(seq))
	copy(s, seq)
	return &Evaluator{seq: s, rounds: rounds}, nil
}

func (e *Evaluator) Sequence() sequence.Sequence { return e.seq }
func (e *Evaluator) Rounds() int                 { return e.rounds }

// Exponent iterates the forced logistic map at p and returns the exponent
//
//	λ = Σ_rounds log|Π_seq r(1-2x)| / (rounds * len(seq))
//
// The derivative product is logged once per round, not once per sub-step.
// NaN and ±Inf are returned as they come.
func (e *Evaluator) Exponent(p Params) Sample {
	x := StartX
	for _, sym := range e.seq {
		r := p.Rate(sym)
		x = r * x * (1 - x)
	}

	sumLog := 0.0
	for n := 0; n < e.rounds; n++ {
		prod := 1.0
		for _, sym := range e.seq {
			r := p.Rate(sym)
			prod *= r * (1 - 2*x)
			x = r * x * (1 - x)
		}
		sumLog += math.Log(math.Abs(prod))
	}

	return Sample{
		Lambda: sumLog / float64(e.rounds*len(e.seq)),
		X:      x,
	}
}
