//go:build ebiten

package ui

import (
	"islands/internal/render"
	"islands/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay draws the raw height grid as grayscale on top of the map.
type Overlay struct {
	world *world.World
	scale int
	show  bool
	img   *ebiten.Image
}

// NewOverlay constructs an overlay for w.
func NewOverlay(w *world.World, scale int) *Overlay {
	return &Overlay{world: w, scale: scale}
}

// SetWorld drops the cached image and follows a regenerated world.
func (o *Overlay) SetWorld(w *world.World) {
	o.world = w
	if o.img != nil {
		o.img.Dispose()
		o.img = nil
	}
}

// Toggle flips the overlay visibility.
func (o *Overlay) Toggle() { o.show = !o.show }

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o.show }

// Draw renders the heightmap at reduced opacity when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.world == nil {
		return
	}
	if o.img == nil {
		heights := o.world.Terrain().Heights()
		gray := render.GrayBuffer(heights.W, heights.H, heights.Values())
		o.img = ebiten.NewImage(heights.W, heights.H)
		o.img.WritePixels(gray.Pixels())
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	op.ColorScale.ScaleAlpha(0.7)
	screen.DrawImage(o.img, op)
}
