// Package territory implements frontier growth of a single country across
// the height grid.
package territory

import (
	"image/color"
	"slices"
	"time"

	"islands/internal/claims"
	"islands/internal/core"
	"islands/internal/render"
)

// Env bundles the shared world state a territory grows against.
type Env struct {
	Heights *core.HeightGrid
	Claims  *claims.Registry
	Surface render.Surface
}

// Territory is a growing region seeded from one origin cell.
type Territory struct {
	id     claims.ID
	origin core.Coord
	color  color.RGBA
	cfg    Config
	env    Env

	area    map[core.Coord]struct{}
	border  []core.Coord
	timers  map[core.Coord]time.Duration
	elapsed time.Duration
	sweeps  int

	inkQueue []core.Coord
	wrote    bool
}

// Seed claims origin for id and returns the new territory. It fails when
// origin is out of bounds, water, or already claimed.
func Seed(id claims.ID, origin core.Coord, c color.RGBA, env Env, cfg Config) (*Territory, bool) {
	h, ok := env.Heights.At(origin.X, origin.Y)
	if !ok || h < cfg.WaterLevel {
		return nil, false
	}
	if !env.Claims.Claim(origin, id) {
		return nil, false
	}
	t := &Territory{
		id:     id,
		origin: origin,
		color:  c,
		cfg:    cfg,
		env:    env,
		area:   map[core.Coord]struct{}{origin: {}},
		border: []core.Coord{origin},
		timers: make(map[core.Coord]time.Duration),
	}
	t.env.Surface.WritePixel(origin.X, origin.Y, c)
	t.env.Surface.Present()
	return t, true
}

// ID returns the claim identifier of the territory.
func (t *Territory) ID() claims.ID { return t.id }

// Origin returns the seed cell.
func (t *Territory) Origin() core.Coord { return t.origin }

// Color returns the fill colour.
func (t *Territory) Color() color.RGBA { return t.color }

// Area returns the number of claimed cells.
func (t *Territory) Area() int { return len(t.area) }

// Contains reports whether c belongs to the territory.
func (t *Territory) Contains(c core.Coord) bool {
	_, ok := t.area[c]
	return ok
}

// Cells returns the claimed cells in row-major order.
func (t *Territory) Cells() []core.Coord {
	out := make([]core.Coord, 0, len(t.area))
	for c := range t.area {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b core.Coord) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return out
}

// Border returns a copy of the current frontier.
func (t *Territory) Border() []core.Coord { return slices.Clone(t.border) }

// Pending returns the number of candidate cells with a partially elapsed timer.
func (t *Territory) Pending() int { return len(t.timers) }

// Sweeps returns how many frontier sweeps have run.
func (t *Territory) Sweeps() int { return t.sweeps }

// Done reports whether the frontier is exhausted. A done territory never grows again.
func (t *Territory) Done() bool { return len(t.border) == 0 }

// Advance accumulates delta and, once UpdateInterval has elapsed, sweeps the
// frontier once. Candidate timers accumulate the delta of the sweeping call.
func (t *Territory) Advance(delta time.Duration) {
	t.elapsed += delta
	if t.elapsed < t.cfg.UpdateInterval {
		return
	}
	t.elapsed = 0
	if len(t.border) == 0 {
		return
	}
	t.sweeps++

	next := make([]core.Coord, 0, len(t.border))
	inNext := make(map[core.Coord]struct{}, len(t.border))
	push := func(c core.Coord) {
		if _, ok := inNext[c]; ok {
			return
		}
		inNext[c] = struct{}{}
		next = append(next, c)
	}

	for _, pos := range t.border {
		pending := false
		for _, n := range pos.Neighbors() {
			h, ok := t.env.Heights.At(n.X, n.Y)
			if !ok {
				continue
			}
			if t.env.Claims.IsClaimed(n) {
				delete(t.timers, n)
				t.inkQueue = append(t.inkQueue, n)
				continue
			}
			if h < t.cfg.WaterLevel {
				continue
			}
			waited := t.timers[n] + delta
			if waited < t.delay(h) {
				t.timers[n] = waited
				pending = true
				continue
			}
			delete(t.timers, n)
			if t.claim(n) {
				push(n)
			}
		}
		if pending {
			push(pos)
		}
	}

	t.border = next
	t.inkPass()
	if t.wrote {
		t.env.Surface.Present()
		t.wrote = false
	}
}

func (t *Territory) delay(h float64) time.Duration {
	if len(t.area) < t.cfg.BootstrapArea {
		return t.cfg.BootstrapDelay
	}
	return time.Duration(float64(t.cfg.BaseDelay) * h * t.cfg.DelayK)
}

func (t *Territory) claim(c core.Coord) bool {
	if !t.env.Claims.Claim(c, t.id) {
		return false
	}
	t.area[c] = struct{}{}
	t.env.Surface.WritePixel(c.X, c.Y, t.color)
	t.wrote = true
	return true
}
