package render

import "image/color"

// Surface is a pixel-addressable drawing target. Writes may be buffered until
// Present is called.
type Surface interface {
	WritePixel(x, y int, c color.RGBA)
	Present()
}
