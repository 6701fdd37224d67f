package dynamo

// Orbit iterates the forced map at p from StartX, discards transient full
// passes over the sequence and returns the state after each of the next
// record passes.
func (e *Evaluator) Orbit(p Params, transient, record int) []float64 {
	x := StartX
	step := func() {
		for _, sym := range e.seq {
			r := p.Rate(sym)
			x = r * x * (1 - x)
		}
	}

	for n := 0; n < transient; n++ {
		step()
	}
	if record <= 0 {
		return nil
	}

	out := make([]float64, record)
	for n := range out {
		step()
		out[n] = x
	}
	return out
}
