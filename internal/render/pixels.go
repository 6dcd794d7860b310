package render

import (
	"image"
	"image/color"
)

// Buffer is an in-memory RGBA Surface. Present marks the buffer dirty so a
// painter can upload it once per frame.
type Buffer struct {
	w, h     int
	buf      []byte
	dirty    bool
	presents int
}

// NewBuffer allocates a transparent buffer of size w*h.
func NewBuffer(w, h int) *Buffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Buffer{w: w, h: h, buf: make([]byte, 4*w*h)}
}

// WritePixel stores c at (x, y). Writes outside the buffer are ignored.
func (b *Buffer) WritePixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	base := 4 * (y*b.w + x)
	b.buf[base+0] = c.R
	b.buf[base+1] = c.G
	b.buf[base+2] = c.B
	b.buf[base+3] = c.A
}

// Present marks pending writes as ready for display.
func (b *Buffer) Present() {
	b.dirty = true
	b.presents++
}

// At returns the colour stored at (x, y).
func (b *Buffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return color.RGBA{}
	}
	base := 4 * (y*b.w + x)
	return color.RGBA{R: b.buf[base+0], G: b.buf[base+1], B: b.buf[base+2], A: b.buf[base+3]}
}

// Pixels exposes the RGBA bytes in row-major order.
func (b *Buffer) Pixels() []byte { return b.buf }

// Size returns the buffer dimensions.
func (b *Buffer) Size() (int, int) { return b.w, b.h }

// Presents reports how many times Present has been called.
func (b *Buffer) Presents() int { return b.presents }

// TakeDirty reports whether Present was called since the last TakeDirty and
// clears the flag.
func (b *Buffer) TakeDirty() bool {
	d := b.dirty
	b.dirty = false
	return d
}

// Image returns a copy of the buffer as an *image.RGBA.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.w, b.h))
	copy(img.Pix, b.buf)
	return img
}

// fillGrayRGBA converts normalized values into opaque grayscale pixels in buf.
func fillGrayRGBA(buf []byte, vals []float64) {
	for i, v := range vals {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		g := uint8(v*255 + 0.5)
		base := i * 4
		buf[base+0] = g
		buf[base+1] = g
		buf[base+2] = g
		buf[base+3] = 255
	}
}

// GrayBuffer renders normalized values of a w*h field as a grayscale Buffer.
func GrayBuffer(w, h int, vals []float64) *Buffer {
	b := NewBuffer(w, h)
	if len(vals) == w*h {
		fillGrayRGBA(b.buf, vals)
	}
	return b
}
