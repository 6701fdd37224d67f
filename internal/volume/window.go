// Package volume smooths a stream of byte frames with a 3×3×3 box filter.
//
// The filter looks at three consecutive frames at a time. Neighbours outside
// the frame count as zero and the sum is always divided by 27, so borders
// come out darker than the interior.
package volume

// Window holds the three most recent frames, oldest first.
type Window struct {
	width  int
	height int
	frames [3][]uint8
}

// NewWindow returns a window of three zeroed width×height frames.
func NewWindow(width, height int) *Window {
	w := &Window{width: width, height: height}
	for i := range w.frames {
		w.frames[i] = make([]uint8, width*height)
	}
	return w
}

func (w *Window) Width() int  { return w.width }
func (w *Window) Height() int { return w.height }

// Oldest, Middle and Newest expose the frames in row-major order.
func (w *Window) Oldest() []uint8 { return w.frames[0] }
func (w *Window) Middle() []uint8 { return w.frames[1] }

// Newest is the buffer the next frame must be written into before Blur.
func (w *Window) Newest() []uint8 { return w.frames[2] }

// Blur writes the smoothed middle frame into dst, which must hold
// width*height bytes.
func (w *Window) Blur(dst []uint8) {
	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			var sum uint
			for z := 0; z < 3; z++ {
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						sum += uint(w.at(z, x+dx, y+dy))
					}
				}
			}
			dst[y*w.width+x] = uint8(sum / 27)
		}
	}
}

// Slide drops the oldest frame and recycles its buffer as the new newest.
// The recycled buffer keeps stale data until it is overwritten.
func (w *Window) Slide() {
	w.frames[0], w.frames[1], w.frames[2] = w.frames[1], w.frames[2], w.frames[0]
}

func (w *Window) at(z, x, y int) uint8 {
	if uint(y) >= uint(w.height) || uint(x) >= uint(w.width) {
		return 0
	}
	return w.frames[z][y*w.width+x]
}
