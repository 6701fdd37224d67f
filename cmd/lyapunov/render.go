package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/lyapfrac/internal/render"
	"github.com/san-kum/lyapfrac/internal/storage"
	"github.com/san-kum/lyapfrac/internal/viz"
)

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	r, err := render.New(cfg, render.WithLogger(log))
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"mode":       r.Mode(),
		"size":       fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"frames":     cfg.Frames,
		"sequence":   cfg.Sequence,
		"iterations": cfg.Iterations,
	}).Info("rendering")

	rep, err := r.Render(cmd.Context(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if log.IsLevelEnabled(logrus.InfoLevel) {
		fmt.Fprintln(os.Stderr, viz.Diagnostics(rep))
	}

	if recordDir == "" {
		return nil
	}
	st := storage.New(recordDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Kind:       storage.KindRender,
		Sequence:   cfg.Sequence,
		Iterations: cfg.Iterations,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Frames:     cfg.Frames,
		A:          cfg.A.Min,
		B:          cfg.B.Min,
		C:          cfg.C.Min,
		Metrics: map[string]float64{
			"x_min":      rep.Extrema.MinX,
			"x_max":      rep.Extrema.MaxX,
			"lambda_min": rep.Extrema.MinLambda,
			"lambda_max": rep.Extrema.MaxLambda,
			"elapsed_s":  rep.Elapsed.Seconds(),
		},
	}, nil)
	if err != nil {
		return err
	}
	log.WithField("run", runID).Info("run recorded")
	return nil
}
