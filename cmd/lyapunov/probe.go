package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/lyapfrac/internal/analysis"
	"github.com/san-kum/lyapfrac/internal/config"
	"github.com/san-kum/lyapfrac/internal/dynamo"
	"github.com/san-kum/lyapfrac/internal/sequence"
	"github.com/san-kum/lyapfrac/internal/storage"
	"github.com/san-kum/lyapfrac/internal/viz"
)

const (
	orbitTransient = 500
	orbitRecord    = 64
)

func newProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "plot the exponent along one parameter axis",
		Args:  cobra.NoArgs,
		RunE:  runProbe,
	}

	f := cmd.Flags()
	f.StringVar(&axis, "axis", "a", "axis to sweep (a, b or c)")
	f.Float64Var(&probeMin, "min", 2.4, "sweep start")
	f.Float64Var(&probeMax, "max", 4.0, "sweep end")
	f.IntVar(&steps, "steps", 200, "number of samples, both ends included")
	f.Float64Var(&fixedA, "a", 3.4, "fixed value of a")
	f.Float64Var(&fixedB, "b", 3.4, "fixed value of b")
	f.Float64Var(&fixedC, "c", 3.4, "fixed value of c")
	f.StringVarP(&seq, "seq", "s", config.DefaultSequence, "control sequence")
	f.IntVarP(&iterations, "iter", "i", config.DefaultIterations, "iteration rounds")
	f.IntVar(&workers, "workers", 0, "parallel workers (0 = number of CPUs)")
	f.BoolVar(&asJSON, "json", false, "print the profile as JSON instead of a plot")
	f.BoolVar(&showOrbits, "orbits", false, "also draw the orbit diagram")
	f.StringVar(&recordDir, "record", "", "store a run record under this directory")
	return cmd
}

func runProbe(cmd *cobra.Command, args []string) error {
	ax, err := analysis.ParseAxis(axis)
	if err != nil {
		return &config.Error{Field: "axis", Err: err}
	}
	if steps < 2 {
		return &config.Error{Field: "steps", Err: analysis.ErrSteps}
	}
	s, err := sequence.Parse(seq)
	if err != nil {
		return &config.Error{Field: "sequence", Err: err}
	}
	ev, err := dynamo.NewEvaluator(s, iterations)
	if err != nil {
		return &config.Error{Field: "iterations", Err: err}
	}

	base := dynamo.Params{A: fixedA, B: fixedB, C: fixedC}
	prof, err := analysis.Sweep(ev, ax, base, probeMin, probeMax, steps, workers)
	if err != nil {
		return err
	}
	sum := analysis.Summarize(prof.Lambdas())

	meta := storage.RunMetadata{
		Kind:       storage.KindProbe,
		Sequence:   s.String(),
		Iterations: iterations,
		Axis:       string(ax),
		Min:        probeMin,
		Max:        probeMax,
		Steps:      steps,
		A:          fixedA,
		B:          fixedB,
		C:          fixedC,
		Metrics:    summaryMetrics(sum),
	}

	out := cmd.OutOrStdout()
	if asJSON {
		if err := storage.ExportJSON(out, meta, prof.Points); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, viz.Plot(prof.Lambdas(), probeCaption(meta)))
		fmt.Fprintln(out, viz.Sparkline(prof.Lambdas(), 80))
		fmt.Fprintln(out, viz.SummaryPanel(sum))
	}

	if showOrbits {
		orbits, err := analysis.Orbits(ev, ax, base, probeMin, probeMax, steps, orbitTransient, orbitRecord)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, viz.Separator(80))
		fmt.Fprint(out, analysis.OrbitASCII(orbits, 80, 20))
	}

	if recordDir == "" {
		return nil
	}
	st := storage.New(recordDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(meta, prof.Points)
	if err != nil {
		return err
	}
	log.WithField("run", runID).Info("run recorded")
	return nil
}

func summaryMetrics(s analysis.Summary) map[string]float64 {
	return map[string]float64{
		"mean":             s.Mean,
		"std_dev":          s.StdDev,
		"min":              s.Min,
		"max":              s.Max,
		"chaotic_fraction": s.ChaoticFraction,
	}
}

func probeCaption(meta storage.RunMetadata) string {
	return fmt.Sprintf("lambda vs %s in [%g, %g]  seq=%s  a=%g b=%g c=%g",
		meta.Axis, meta.Min, meta.Max, meta.Sequence, meta.A, meta.B, meta.C)
}
