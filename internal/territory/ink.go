package territory

import (
	"image/color"

	"islands/internal/claims"
	"islands/internal/core"
)

// Ink is the colour of coastline and border pixels.
var Ink = color.RGBA{A: 255}

// InkTargets returns the cells to repaint with Ink when c has been claimed:
// c itself if it touches water or a cell owned by another territory, plus
// every such foreign neighbour. Unclaimed cells yield nothing.
func InkTargets(g *core.HeightGrid, reg *claims.Registry, c core.Coord, waterLevel float64) []core.Coord {
	owner, ok := reg.Owner(c)
	if !ok {
		return nil
	}
	var foreign []core.Coord
	for _, n := range c.Neighbors() {
		if id, ok := reg.Owner(n); ok && id != owner {
			foreign = append(foreign, n)
		}
	}
	if len(foreign) == 0 && !g.TouchesWater(c.X, c.Y, waterLevel) {
		return nil
	}
	return append([]core.Coord{c}, foreign...)
}

// inkPass repaints the claimed cells met during the last sweep. It runs
// after every ownership change of the sweep has been applied.
func (t *Territory) inkPass() {
	if len(t.inkQueue) == 0 {
		return
	}
	seen := make(map[core.Coord]struct{}, len(t.inkQueue))
	inked := make(map[core.Coord]struct{})
	for _, c := range t.inkQueue {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		for _, p := range InkTargets(t.env.Heights, t.env.Claims, c, t.cfg.WaterLevel) {
			if _, ok := inked[p]; ok {
				continue
			}
			inked[p] = struct{}{}
			t.env.Surface.WritePixel(p.X, p.Y, Ink)
			t.wrote = true
		}
	}
	t.inkQueue = t.inkQueue[:0]
}
