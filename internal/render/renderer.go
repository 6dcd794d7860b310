//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads a Buffer into an ebiten image whenever it has been presented.
type Painter struct {
	src *Buffer
	img *ebiten.Image
}

// NewPainter allocates an image matching the buffer dimensions. The first
// Draw after a Present uploads the pixels.
func NewPainter(src *Buffer) *Painter {
	w, h := src.Size()
	return &Painter{src: src, img: ebiten.NewImage(w, h)}
}

// Draw refreshes the image if the buffer is dirty and draws it scaled.
func (p *Painter) Draw(dst *ebiten.Image, scale int) {
	if p.src.TakeDirty() {
		p.img.WritePixels(p.src.Pixels())
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Image exposes the backing ebiten image.
func (p *Painter) Image() *ebiten.Image { return p.img }
