package main

import (
	"github.com/spf13/cobra"

	"github.com/san-kum/lyapfrac/internal/config"
	"github.com/san-kum/lyapfrac/internal/sequence"
	"github.com/san-kum/lyapfrac/internal/zoom"
)

func newZoomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zoom",
		Short: "print a shell script rendering a zoom flight frame by frame",
		Args:  cobra.NoArgs,
		RunE:  runZoom,
	}

	f := cmd.Flags()
	f.IntVarP(&width, "width", "W", config.DefaultWidth, "frame width")
	f.IntVarP(&height, "height", "H", config.DefaultHeight, "frame height")
	f.Float64VarP(&bMin, "xmin", "x", config.DefaultBMin, "b range start")
	f.Float64VarP(&bMax, "xmax", "X", config.DefaultBMax, "b range end")
	f.Float64VarP(&aMin, "ymin", "y", config.DefaultAMin, "a range start")
	f.Float64VarP(&aMax, "ymax", "Y", config.DefaultAMax, "a range end")
	f.StringVarP(&seq, "seq", "s", config.DefaultSequence, "control sequence")
	f.IntVarP(&iterations, "iter", "i", config.DefaultIterations, "iteration rounds")
	f.IntVarP(&zoomFrames, "frames", "F", 100, "number of frames")
	f.Float64VarP(&zoomLevel, "zoom", "z", 20, "total magnification")
	f.StringVar(&program, "program", "./lyapunov", "renderer invoked by the script")
	return cmd
}

func runZoom(cmd *cobra.Command, args []string) error {
	if _, err := sequence.Parse(seq); err != nil {
		return &config.Error{Field: "sequence", Err: err}
	}
	if width <= 0 || height <= 0 {
		return &config.Error{Field: "size", Err: config.ErrSize}
	}

	flight := zoom.Flight{
		Program:    program,
		Width:      width,
		Height:     height,
		Sequence:   seq,
		Iterations: iterations,
		BMin:       bMin,
		BMax:       bMax,
		AMin:       aMin,
		AMax:       aMax,
		Frames:     zoomFrames,
		Zoom:       zoomLevel,
	}
	if _, err := flight.Steps(); err != nil {
		return &config.Error{Field: "zoom", Err: err}
	}
	return flight.WriteScript(cmd.OutOrStdout())
}
