package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/lyapfrac/internal/config"
)

var log = logrus.New()

var (
	// render
	width        int
	height       int
	frames       int
	cMin         float64
	cMax         float64
	center       string
	bMin         float64
	bMax         float64
	aMin         float64
	aMax         float64
	seq          string
	iterations   int
	workers      int
	strictHeader bool
	configFile   string
	preset       string
	recordDir    string
	logLevel     string

	// zoom
	zoomFrames int
	zoomLevel  float64
	program    string

	// sequences
	count int

	// probe
	axis       string
	probeMin   float64
	probeMax   float64
	steps      int
	fixedA     float64
	fixedB     float64
	fixedC     float64
	asJSON     bool
	showOrbits bool

	dataDir string
)

// main builds the lyapunov command tree and maps failures to exit codes.
func main() {
	rootCmd := newRootCmd()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Error(err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lyapunov",
		Short:         "render Lyapunov fractals of the forced logistic map",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
		RunE: runRender,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "info", "log level (panic, fatal, error, warn, info, debug, trace)")

	f := rootCmd.Flags()
	f.IntVarP(&width, "width", "W", config.DefaultWidth, "image width (b axis)")
	f.IntVarP(&height, "height", "H", config.DefaultHeight, "image height (a axis)")
	f.IntVarP(&frames, "frames", "F", 0, "frame count; > 0 writes a 3df volume along c")
	f.Float64VarP(&cMin, "zmin", "z", config.DefaultCMin, "c range start")
	f.Float64VarP(&cMax, "zmax", "Z", config.DefaultCMax, "c range end")
	f.StringVarP(&center, "center", "c", "", "center and span as cx:cy:dx (overrides -x -X -y -Y)")
	f.Float64VarP(&bMin, "xmin", "x", config.DefaultBMin, "b range start")
	f.Float64VarP(&bMax, "xmax", "X", config.DefaultBMax, "b range end")
	f.Float64VarP(&aMin, "ymin", "y", config.DefaultAMin, "a range start (top row)")
	f.Float64VarP(&aMax, "ymax", "Y", config.DefaultAMax, "a range end (bottom row)")
	f.StringVarP(&seq, "seq", "s", config.DefaultSequence, "control sequence over A, B and C")
	f.IntVarP(&iterations, "iter", "i", config.DefaultIterations, "iteration rounds")
	f.IntVar(&workers, "workers", 0, "parallel row workers (0 = number of CPUs)")
	f.BoolVar(&strictHeader, "strict-header", false, "write the complete P6 header before any pixel")
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset region")
	f.StringVar(&recordDir, "record", "", "store a run record under this directory")

	rootCmd.AddCommand(
		newZoomCmd(),
		newSequencesCmd(),
		newProbeCmd(),
		newPresetsCmd(),
		newRunsCmd(),
		newShowCmd(),
	)
	return rootCmd
}

func setupLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(lvl)
	return nil
}

// buildConfig layers defaults, preset, config file and explicit flags, then
// applies the center specification.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, &config.Error{
				Field: "preset",
				Err:   fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets()),
			}
		}
		cfg.ApplyPreset(p)
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("width") {
		cfg.Width = width
	}
	if changed("height") {
		cfg.Height = height
	}
	if changed("frames") {
		cfg.Frames = frames
	}
	if changed("zmin") {
		cfg.C.Min = cMin
	}
	if changed("zmax") {
		cfg.C.Max = cMax
	}
	if changed("xmin") {
		cfg.B.Min = bMin
	}
	if changed("xmax") {
		cfg.B.Max = bMax
	}
	if changed("ymin") {
		cfg.A.Min = aMin
	}
	if changed("ymax") {
		cfg.A.Max = aMax
	}
	if changed("seq") {
		cfg.Sequence = seq
	}
	if changed("iter") {
		cfg.Iterations = iterations
	}
	if changed("workers") {
		cfg.Workers = workers
	}
	if changed("strict-header") {
		cfg.StrictHeader = strictHeader
	}
	if changed("center") {
		cfg.Center = center
	}

	if _, err := cfg.ApplyCenter(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
