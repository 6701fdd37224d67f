package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/lyapfrac/internal/dynamo"
	"gonum.org/v1/gonum/floats"
)

// OrbitPoint holds the distinct attractor states found at one parameter value.
type OrbitPoint struct {
	Param  float64
	Values []float64
}

// Orbits sweeps ax like Sweep but records where the map settles instead of
// how fast it diverges. States closer than 1e-3 count as one.
func Orbits(ev *dynamo.Evaluator, ax Axis, base dynamo.Params, lo, hi float64, steps, transient, record int) ([]OrbitPoint, error) {
	if _, err := ParseAxis(string(ax)); err != nil {
		return nil, err
	}
	if steps < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrSteps, steps)
	}

	values := floats.Span(make([]float64, steps), lo, hi)
	out := make([]OrbitPoint, steps)
	for i, v := range values {
		seen := make(map[int64]bool)
		var distinct []float64
		for _, x := range ev.Orbit(ax.With(base, v), transient, record) {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				continue
			}
			key := int64(math.Round(x * 1000))
			if !seen[key] {
				seen[key] = true
				distinct = append(distinct, x)
			}
		}
		out[i] = OrbitPoint{Param: v, Values: distinct}
	}
	return out, nil
}

// OrbitASCII draws orbit points on a width×height character canvas, one
// column per parameter bucket, larger states towards the top.
func OrbitASCII(data []OrbitPoint, width, height int) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range data {
		for _, v := range p.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		return ""
	}
	if hi == lo {
		hi = lo + 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	for i, p := range data {
		col := i * width / len(data)
		for _, v := range p.Values {
			row := height - 1 - int((v-lo)/(hi-lo)*float64(height-1))
			canvas[row][col] = '•'
		}
	}

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
