package dynamo

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/lyapfrac/internal/sequence"
)

func mustEvaluator(t *testing.T, seq string, rounds int) *Evaluator {
	t.Helper()
	ev, err := NewEvaluator(sequence.MustParse(seq), rounds)
	if err != nil {
		t.Fatalf("NewEvaluator failed: %v", err)
	}
	return ev
}

func TestNewEvaluator_Invalid(t *testing.T) {
	if _, err := NewEvaluator(nil, 10); !errors.Is(err, ErrEmptySequence) {
		t.Errorf("expected ErrEmptySequence, got %v", err)
	}
	if _, err := NewEvaluator(sequence.MustParse("AB"), 0); !errors.Is(err, ErrIterations) {
		t.Errorf("expected ErrIterations, got %v", err)
	}
}

func TestExponent_LogisticRegimes(t *testing.T) {
	tests := []struct {
		name   string
		a      float64
		rounds int
		want   float64
		tol    float64
	}{
		// stable fixed point x* = 0.6 with slope -0.5
		{"fixed point", 2.5, 2000, math.Log(0.5), 1e-2},
		// period two, still stable
		{"period two", 3.2, 2000, math.Inf(-1), 0},
		// 0.5 -> 1 -> 0 and the orbit sits on the repelling fixed point
		{"exact four", 4.0, 100, math.Log(4), 1e-12},
		// fully developed chaos
		{"near four", 4 - 1e-6, 200000, math.Ln2, 3e-2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := mustEvaluator(t, "A", tt.rounds)
			got := ev.Exponent(Params{A: tt.a}).Lambda

			if math.IsInf(tt.want, -1) {
				if got >= 0 {
					t.Errorf("lambda = %v, want negative", got)
				}
				return
			}
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("lambda = %v, want %v ± %v", got, tt.want, tt.tol)
			}
		})
	}
}

func TestExponent_SuperstableIsMinusInf(t *testing.T) {
	// a = 2 keeps x at 0.5 where the derivative vanishes
	s := mustEvaluator(t, "A", 10).Exponent(Params{A: 2})
	if !math.IsInf(s.Lambda, -1) {
		t.Errorf("lambda = %v, want -Inf", s.Lambda)
	}
	if s.X != 0.5 {
		t.Errorf("x = %v, want 0.5", s.X)
	}
}

func TestExponent_SymbolSelectsParameter(t *testing.T) {
	p := Params{A: 3.1, B: 3.6, C: 2.9}

	viaC := mustEvaluator(t, "CB", 300).Exponent(p)
	viaA := mustEvaluator(t, "AB", 300).Exponent(Params{A: p.C, B: p.B})

	if viaC != viaA {
		t.Errorf("C should act like A with the same value: %+v vs %+v", viaC, viaA)
	}
}

func TestExponent_Deterministic(t *testing.T) {
	ev := mustEvaluator(t, "BBBABBAAAAAA", 500)
	p := Params{A: 3.4, B: 3.8, C: 2.5}

	first := ev.Exponent(p)
	for i := 0; i < 5; i++ {
		if got := ev.Exponent(p); got != first {
			t.Fatalf("run %d = %+v, first = %+v", i, got, first)
		}
	}
}

func TestExponent_NonFinitePropagates(t *testing.T) {
	s := mustEvaluator(t, "AB", 50).Exponent(Params{A: math.NaN(), B: 3})
	if !math.IsNaN(s.Lambda) {
		t.Errorf("lambda = %v, want NaN", s.Lambda)
	}
}

func TestRate_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown symbol")
		}
	}()
	Params{}.Rate(sequence.Symbol(9))
}

func TestOrbit(t *testing.T) {
	ev := mustEvaluator(t, "A", 1)

	// a = 2.5 settles on x* = 0.6
	orbit := ev.Orbit(Params{A: 2.5}, 500, 4)
	if len(orbit) != 4 {
		t.Fatalf("len = %d, want 4", len(orbit))
	}
	for i, x := range orbit {
		if math.Abs(x-0.6) > 1e-9 {
			t.Errorf("orbit[%d] = %v, want 0.6", i, x)
		}
	}

	if got := ev.Orbit(Params{A: 2.5}, 10, 0); got != nil {
		t.Errorf("record=0 returned %v", got)
	}

	// a = 3.2 alternates between two branches
	two := ev.Orbit(Params{A: 3.2}, 2000, 2)
	if math.Abs(two[0]-two[1]) < 0.1 {
		t.Errorf("expected a period-two orbit, got %v", two)
	}
}
