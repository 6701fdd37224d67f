package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/san-kum/lyapfrac/internal/palette"
)

// ErrOutput wraps every failure of the underlying byte stream.
var ErrOutput = errors.New("export: output stream failure")

// Layout selects how the P6 header is arranged.
type Layout int

const (
	// LayoutLegacy writes the magic first and, once the image is computed, the
	// metadata comment with width and height on the same line, then the max
	// value and the pixels. Readers that honour comments will not see the
	// dimensions.
	LayoutLegacy Layout = iota

	// LayoutStrict writes a conventional header: magic, comment line,
	// dimensions line, max value.
	LayoutStrict
)

// Metadata describes a rendered image for the header comment.
type Metadata struct {
	Iterations int
	Sequence   string
	AMin, AMax float64
	BMin, BMax float64
	C          float64
	Width      int
	Height     int
}

// Comment returns the single-line metadata comment without dimensions.
func (m Metadata) Comment() string {
	return fmt.Sprintf("# Lyapunov: max_iter=%d  seq='%s'  a=%f ... %f  b=%f ... %f  c=%f",
		m.Iterations, m.Sequence, m.AMin, m.AMax, m.BMin, m.BMax, m.C)
}

// RasterWriter streams an RGB image as binary PPM (P6).
type RasterWriter struct {
	w      *bufio.Writer
	layout Layout
	row    []byte
}

func NewRasterWriter(w io.Writer, layout Layout) *RasterWriter {
	return &RasterWriter{w: bufio.NewWriter(w), layout: layout}
}

// WriteMagic writes and flushes "P6\n" so a consumer can start before the
// pixels are ready.
func (r *RasterWriter) WriteMagic() error {
	if _, err := r.w.WriteString("P6\n"); err != nil {
		return outputErr(err)
	}
	return r.flush()
}

// WriteMetadata writes and flushes the comment, dimensions and max value.
func (r *RasterWriter) WriteMetadata(m Metadata) error {
	sep := "  "
	if r.layout == LayoutStrict {
		sep = "\n"
	}
	if _, err := fmt.Fprintf(r.w, "%s%s%d %d\n255\n", m.Comment(), sep, m.Width, m.Height); err != nil {
		return outputErr(err)
	}
	return r.flush()
}

// WriteRow writes one row of pixels, 3 bytes each, and flushes.
func (r *RasterWriter) WriteRow(px []palette.RGB) error {
	if cap(r.row) < 3*len(px) {
		r.row = make([]byte, 3*len(px))
	}
	buf := r.row[:3*len(px)]
	for i, p := range px {
		buf[3*i] = p.R
		buf[3*i+1] = p.G
		buf[3*i+2] = p.B
	}
	if _, err := r.w.Write(buf); err != nil {
		return outputErr(err)
	}
	return r.flush()
}

func (r *RasterWriter) flush() error {
	if err := r.w.Flush(); err != nil {
		return outputErr(err)
	}
	return nil
}

func outputErr(err error) error {
	return fmt.Errorf("%w: %w", ErrOutput, err)
}
