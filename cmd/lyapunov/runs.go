package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/san-kum/lyapfrac/internal/analysis"
	"github.com/san-kum/lyapfrac/internal/config"
	"github.com/san-kum/lyapfrac/internal/storage"
	"github.com/san-kum/lyapfrac/internal/viz"
)

const defaultDataDir = ".lyapunov"

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list named parameter regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), viz.PresetTable(config.ListPresets()))
			return err
		},
	}
}

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "list recorded runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}
	cmd.Flags().StringVar(&dataDir, "data", defaultDataDir, "data directory")
	return cmd
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "plot a recorded probe profile",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	cmd.Flags().StringVar(&dataDir, "data", defaultDataDir, "data directory")
	return cmd
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), viz.RunTable(runs))
	return err
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "kind: %s\n", meta.Kind)
	fmt.Fprintf(out, "recorded: %s\n\n", meta.Timestamp.Format("2006-01-02 15:04:05"))

	if meta.Kind != storage.KindProbe {
		keys := make([]string, 0, len(meta.Metrics))
		for k := range meta.Metrics {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "%s: %g\n", k, meta.Metrics[k])
		}
		return nil
	}

	points, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("run %s has an empty profile", runID)
	}

	prof := analysis.Profile{Axis: analysis.Axis(meta.Axis), Points: points}
	fmt.Fprintln(out, viz.Plot(prof.Lambdas(), probeCaption(*meta)))
	fmt.Fprintln(out, viz.SummaryPanel(analysis.Summarize(prof.Lambdas())))
	return nil
}
