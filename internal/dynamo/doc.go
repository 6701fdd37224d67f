// Package dynamo evaluates the forced logistic map behind Lyapunov fractals.
//
// A control sequence of symbols A, B and C selects, for every sub-step, which
// of the parameters a, b or c is used as the growth rate r in
//
//	x <- r*x*(1-x)
//
// The Lyapunov exponent of a sample is the time average of log|d/dx| over the
// iterated map:
//
//	ev, _ := dynamo.NewEvaluator(seq, 1000)
//	s := ev.Exponent(dynamo.Params{A: 3.2, B: 3.7})
//	if s.Lambda > 0 {
//	    // chaotic
//	}
//
// # Thread Safety
//
// An [Evaluator] is immutable and may be shared by any number of goroutines.
// [Extrema] is not synchronized; give every row its own value and combine
// them with [Reduce] once the sweep has finished.
package dynamo
