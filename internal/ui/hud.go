//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"islands/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudLineHeight = 14
	hudPadding    = 6
	hudWidth      = 300
)

// HUD draws pointer diagnostics and territory totals over the map.
type HUD struct {
	world   *world.World
	scale   int
	cursorX int
	cursorY int
	paused  bool
	status  string

	panel *ebiten.Image
}

// NewHUD constructs a HUD for w drawn at the given pixel scale.
func NewHUD(w *world.World, scale int) *HUD {
	if scale <= 0 {
		scale = 1
	}
	return &HUD{world: w, scale: scale, cursorX: -1, cursorY: -1}
}

// SetWorld points the HUD at a regenerated world.
func (h *HUD) SetWorld(w *world.World) { h.world = w }

// SetPaused updates the pause indicator.
func (h *HUD) SetPaused(p bool) { h.paused = p }

// SetStatus shows a one-line message under the totals.
func (h *HUD) SetStatus(s string) { h.status = s }

// Update samples the cursor position in map coordinates.
func (h *HUD) Update() {
	x, y := ebiten.CursorPosition()
	h.cursorX, h.cursorY = x/h.scale, y/h.scale
}

// Cursor returns the last sampled map coordinate.
func (h *HUD) Cursor() (int, int) { return h.cursorX, h.cursorY }

// Draw renders the panel in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h.world == nil {
		return
	}
	lines := h.lines()
	height := hudPadding*2 + hudLineHeight*len(lines)
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(hudWidth, height)
		h.panel.Fill(color.RGBA{A: 160})
	}
	screen.DrawImage(h.panel, nil)
	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, hudPadding, hudPadding+hudLineHeight*(i+1)-3, color.White)
	}
}

func (h *HUD) lines() []string {
	var out []string
	if ht, ok := h.world.HeightAt(h.cursorX, h.cursorY); ok {
		biome, _ := h.world.BiomeAt(h.cursorX, h.cursorY)
		out = append(out, fmt.Sprintf("(%d,%d) h=%.3f %s", h.cursorX, h.cursorY, ht, biome))
	} else {
		out = append(out, "(--,--)")
	}
	r := h.world.Report()
	state := ""
	if h.paused {
		state = " [paused]"
	}
	out = append(out, fmt.Sprintf("countries=%d claimed=%d/%d%s", len(r.Territories), r.Claimed, r.LandCells, state))
	if h.status != "" {
		out = append(out, h.status)
	}
	out = append(out, "click:spawn spc:pause n:step h:height c:copy")
	return out
}
