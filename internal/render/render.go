// Package render drives the Lyapunov pipeline: grid sampling, exponent
// evaluation, colour encoding and serialization.
//
// Without frames a single RGB image is streamed as P6. With frames > 0 a
// stack of grey frames is computed along the c axis, smoothed three frames at
// a time and streamed as a 3df volume.
package render

import (
	"context"
	"io"
	"time"

	"github.com/san-kum/lyapfrac/internal/config"
	"github.com/san-kum/lyapfrac/internal/dynamo"
	"github.com/san-kum/lyapfrac/internal/export"
	"github.com/san-kum/lyapfrac/internal/grid"
	"github.com/san-kum/lyapfrac/internal/palette"
	"github.com/san-kum/lyapfrac/internal/volume"
	"github.com/sirupsen/logrus"
)

type Mode string

const (
	ModeImage  Mode = "image"
	ModeVolume Mode = "volume"
)

// Report summarizes a finished render.
type Report struct {
	Mode    Mode
	Width   int
	Height  int
	Frames  int
	Extrema dynamo.Extrema
	Elapsed time.Duration
}

type Option func(*Renderer)

// WithLogger sets the progress logger. The default discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Renderer) { r.log = l }
}

// WithWorkers bounds the number of rows computed at once.
func WithWorkers(n int) Option {
	return func(r *Renderer) { r.workers = n }
}

type Renderer struct {
	cfg     config.Config
	ev      *dynamo.Evaluator
	plane   grid.Plane
	workers int
	log     logrus.FieldLogger
}

// New validates cfg and prepares a renderer. cfg is copied.
func New(cfg *config.Config, opts ...Option) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seq, err := cfg.ControlSequence()
	if err != nil {
		return nil, err
	}
	ev, err := dynamo.NewEvaluator(seq, cfg.Iterations)
	if err != nil {
		return nil, &config.Error{Field: "iterations", Err: err}
	}

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	r := &Renderer{
		cfg:     *cfg,
		ev:      ev,
		plane:   cfg.Plane(),
		workers: cfg.Workers,
		log:     quiet,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Mode reports which output Render will produce.
func (r *Renderer) Mode() Mode {
	if r.cfg.Frames > 0 {
		return ModeVolume
	}
	return ModeImage
}

// Render writes the image or volume to w.
func (r *Renderer) Render(ctx context.Context, w io.Writer) (*Report, error) {
	if r.Mode() == ModeVolume {
		return r.Volume(ctx, w)
	}
	return r.Image(ctx, w)
}

// Image computes one RGB frame at c = C.Min and writes it as P6. The magic
// goes out before computing, the rest once the frame is complete.
func (r *Renderer) Image(ctx context.Context, w io.Writer) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	rw := export.NewRasterWriter(w, r.cfg.Layout())
	if err := rw.WriteMagic(); err != nil {
		return nil, err
	}

	frame := NewFrame[palette.RGB](r.plane.Width(), r.plane.Height())
	ext, err := sweepFrame(ctx, r, frame, r.cfg.C.Min, palette.Color)
	if err != nil {
		return nil, err
	}

	meta := export.Metadata{
		Iterations: r.cfg.Iterations,
		Sequence:   r.ev.Sequence().String(),
		AMin:       r.cfg.A.Min,
		AMax:       r.cfg.A.Max,
		BMin:       r.cfg.B.Min,
		BMax:       r.cfg.B.Max,
		C:          r.cfg.C.Min,
		Width:      frame.Width,
		Height:     frame.Height,
	}
	if err := rw.WriteMetadata(meta); err != nil {
		return nil, err
	}
	for y := 0; y < frame.Height; y++ {
		if err := rw.WriteRow(frame.Row(y)); err != nil {
			return nil, err
		}
	}

	return &Report{
		Mode:    ModeImage,
		Width:   frame.Width,
		Height:  frame.Height,
		Extrema: ext,
		Elapsed: time.Since(start),
	}, nil
}

// Volume computes Frames grey frames along the c axis. Each new frame enters
// a three-frame window and the blurred middle frame is written, so output
// frame k is centred on computed frame k-1.
func (r *Renderer) Volume(ctx context.Context, w io.Writer) (*Report, error) {
	start := time.Now()
	width, height, depth := r.plane.Width(), r.plane.Height(), r.cfg.Frames

	vw := export.NewVolumeWriter(w)
	if err := vw.WriteHeader(width, height, depth); err != nil {
		return nil, err
	}

	win := volume.NewWindow(width, height)
	out := make([]uint8, width*height)
	axis := r.cfg.Depth()
	parts := make([]dynamo.Extrema, 0, depth)

	for k := 0; k < depth; k++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c := axis.At(k)
		r.log.WithFields(logrus.Fields{"frame": k, "frames": depth, "c": c}).Info("computing frame")

		frame := &Frame[uint8]{Width: width, Height: height, Pix: win.Newest()}
		ext, err := sweepFrame(ctx, r, frame, c, palette.Gray)
		if err != nil {
			return nil, err
		}
		parts = append(parts, ext)

		r.log.WithField("frame", k).Debug("blurring")
		win.Blur(out)
		if err := vw.WriteFrame(out); err != nil {
			return nil, err
		}
		win.Slide()
	}

	return &Report{
		Mode:    ModeVolume,
		Width:   width,
		Height:  height,
		Frames:  depth,
		Extrema: dynamo.Reduce(parts),
		Elapsed: time.Since(start),
	}, nil
}

func sweepFrame[P any](ctx context.Context, r *Renderer, f *Frame[P], c float64, encode func(float64) P) (dynamo.Extrema, error) {
	height := r.plane.Height()
	ext, err := Sweep(ctx, r.ev, r.plane, c, f, encode, r.workers, func(row int) {
		r.log.WithFields(logrus.Fields{"row": row, "rows": height}).Debug("computing row")
	})
	if err != nil {
		return ext, err
	}
	r.log.WithFields(logrus.Fields{
		"x_min":      ext.MinX,
		"x_max":      ext.MaxX,
		"lambda_min": ext.MinLambda,
		"lambda_max": ext.MaxLambda,
	}).Info("sweep finished")
	return ext, nil
}
