package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/san-kum/lyapfrac/internal/palette"
)

type failingWriter struct {
	after int
	n     int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.n+len(p) > f.after {
		return 0, errors.New("pipe closed")
	}
	f.n += len(p)
	return len(p), nil
}

func testMetadata() Metadata {
	return Metadata{
		Iterations: 1000,
		Sequence:   "AB",
		AMin:       3.999, AMax: 2.4,
		BMin: 2.4, BMax: 3.999,
		C:     2.5,
		Width: 2, Height: 1,
	}
}

func TestRasterWriter_Legacy(t *testing.T) {
	var buf bytes.Buffer
	rw := NewRasterWriter(&buf, LayoutLegacy)

	if err := rw.WriteMagic(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "P6\n" {
		t.Fatalf("magic not flushed: %q", buf.String())
	}
	if err := rw.WriteMetadata(testMetadata()); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "  2 1\n255\n") {
		t.Fatalf("header not flushed before pixels: %q", buf.String())
	}
	if err := rw.WriteRow([]palette.RGB{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}}); err != nil {
		t.Fatal(err)
	}

	want := "P6\n# Lyapunov: max_iter=1000  seq='AB'  a=3.999000 ... 2.400000  b=2.400000 ... 3.999000  c=2.500000  2 1\n255\n" +
		"\x01\x02\x03\x04\x05\x06"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("legacy raster mismatch (-want +got):\n%s", diff)
	}
}

func TestRasterWriter_Strict(t *testing.T) {
	var buf bytes.Buffer
	rw := NewRasterWriter(&buf, LayoutStrict)

	if err := rw.WriteMagic(); err != nil {
		t.Fatal(err)
	}
	if err := rw.WriteMetadata(testMetadata()); err != nil {
		t.Fatal(err)
	}

	want := "P6\n# Lyapunov: max_iter=1000  seq='AB'  a=3.999000 ... 2.400000  b=2.400000 ... 3.999000  c=2.500000\n2 1\n255\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("strict header mismatch (-want +got):\n%s", diff)
	}
}

func TestRasterWriter_OutputFailure(t *testing.T) {
	rw := NewRasterWriter(&failingWriter{after: 0}, LayoutLegacy)
	if err := rw.WriteMagic(); !errors.Is(err, ErrOutput) {
		t.Errorf("expected ErrOutput, got %v", err)
	}
}

func TestVolumeWriter(t *testing.T) {
	var buf bytes.Buffer
	vw := NewVolumeWriter(&buf)

	if err := vw.WriteHeader(300, 2, 1); err != nil {
		t.Fatal(err)
	}
	if got := buf.Bytes(); !bytes.Equal(got, []byte{0x01, 0x2c, 0x00, 0x02, 0x00, 0x01}) {
		t.Fatalf("header = % x", got)
	}

	frame := make([]uint8, 600)
	frame[0], frame[599] = 7, 9
	if err := vw.WriteFrame(frame); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 6+600 {
		t.Errorf("stream length = %d, want 606", buf.Len())
	}
	if buf.Bytes()[6] != 7 || buf.Bytes()[605] != 9 {
		t.Error("frame bytes not written in order")
	}
}

func TestVolumeWriter_Errors(t *testing.T) {
	vw := NewVolumeWriter(&bytes.Buffer{})
	if err := vw.WriteHeader(MaxVolumeDim+1, 1, 1); !errors.Is(err, ErrDimension) {
		t.Errorf("expected ErrDimension, got %v", err)
	}

	if err := vw.WriteHeader(2, 2, 1); err != nil {
		t.Fatal(err)
	}
	if err := vw.WriteFrame(make([]uint8, 3)); err == nil {
		t.Error("expected error for short frame")
	}

	failing := NewVolumeWriter(&failingWriter{after: 6})
	if err := failing.WriteHeader(2, 2, 1); err != nil {
		t.Fatal(err)
	}
	if err := failing.WriteFrame(make([]uint8, 4)); !errors.Is(err, ErrOutput) {
		t.Errorf("expected ErrOutput, got %v", err)
	}
}

func TestRasterWriter_MetadataOutputFailure(t *testing.T) {
	// room for the magic only
	rw := NewRasterWriter(&failingWriter{after: 3}, LayoutStrict)
	if err := rw.WriteMagic(); err != nil {
		t.Fatal(err)
	}
	if err := rw.WriteMetadata(testMetadata()); !errors.Is(err, ErrOutput) {
		t.Errorf("expected ErrOutput from the header flush, got %v", err)
	}
}
