package export

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MaxVolumeDim is the largest extent a 3df header can carry.
const MaxVolumeDim = 1<<16 - 1

// ErrDimension indicates a volume extent that does not fit the header.
var ErrDimension = errors.New("export: volume dimension out of range")

// VolumeWriter streams a 3df volume: a 6-byte big-endian header (width,
// height, depth) followed by depth raw byte frames.
type VolumeWriter struct {
	w          *bufio.Writer
	frameBytes int
}

func NewVolumeWriter(w io.Writer) *VolumeWriter {
	return &VolumeWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes and flushes the header.
func (v *VolumeWriter) WriteHeader(width, height, depth int) error {
	for _, d := range []int{width, height, depth} {
		if d < 0 || d > MaxVolumeDim {
			return fmt.Errorf("%w: %dx%dx%d", ErrDimension, width, height, depth)
		}
	}

	var hdr [6]byte
	binary.BigEndian.PutUint16(hdr[0:], uint16(width))
	binary.BigEndian.PutUint16(hdr[2:], uint16(height))
	binary.BigEndian.PutUint16(hdr[4:], uint16(depth))
	if _, err := v.w.Write(hdr[:]); err != nil {
		return outputErr(err)
	}
	v.frameBytes = width * height
	return v.flush()
}

// WriteFrame writes one width×height frame and flushes.
func (v *VolumeWriter) WriteFrame(frame []uint8) error {
	if len(frame) != v.frameBytes {
		return fmt.Errorf("export: frame has %d bytes, header announced %d", len(frame), v.frameBytes)
	}
	if _, err := v.w.Write(frame); err != nil {
		return outputErr(err)
	}
	return v.flush()
}

func (v *VolumeWriter) flush() error {
	if err := v.w.Flush(); err != nil {
		return outputErr(err)
	}
	return nil
}
