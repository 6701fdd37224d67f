// Package analysis inspects the Lyapunov exponent along a single parameter
// axis.
//
//   - [Sweep]: λ profile along a, b or c with the other two values fixed
//   - [Summarize]: mean, spread, range and chaotic fraction of a profile
//   - [Orbits]: attractor states per parameter value (orbit diagram)
//
// # Chaos Detection
//
// A positive exponent marks a chaotic parameter choice:
//
//	prof, _ := analysis.Sweep(ev, analysis.AxisA, base, 2.5, 4, 400, 0)
//	sum := analysis.Summarize(prof.Lambdas())
//	if sum.ChaoticFraction > 0 {
//	    // part of the segment is chaotic
//	}
package analysis
