// Package world owns the shared simulation state: the generated terrain, the
// claim registry and every territory spawned on it.
package world

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"islands/internal/claims"
	"islands/internal/core"
	"islands/internal/render"
	"islands/internal/terrain"
	"islands/internal/territory"
)

// World mediates every spawn and tick against one terrain and registry.
type World struct {
	cfg     Config
	terrain *terrain.Terrain
	claims  *claims.Registry
	surface render.Surface
	colors  *core.RNG
	log     *slog.Logger

	territories []*territory.Territory
	landCells   int

	ticks int
	now   time.Duration
}

// New validates cfg, generates the terrain and paints it onto surface.
func New(cfg Config, surface render.Surface) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tr, err := terrain.Generate(cfg.Terrain)
	if err != nil {
		return nil, fmt.Errorf("generate terrain: %w", err)
	}
	return newWorld(cfg, tr, surface), nil
}

// NewFromTerrain builds a world around an existing terrain.
func NewFromTerrain(cfg Config, tr *terrain.Terrain, surface render.Surface) (*World, error) {
	if err := cfg.Growth.Validate(); err != nil {
		return nil, err
	}
	cfg.Terrain = tr.Params()
	return newWorld(cfg, tr, surface), nil
}

func newWorld(cfg Config, tr *terrain.Terrain, surface render.Surface) *World {
	h := tr.Heights()
	w := &World{
		cfg:     cfg,
		terrain: tr,
		claims:  claims.New(h.W, h.H),
		surface: surface,
		colors:  core.NewRNG(cfg.Terrain.Seed),
		log:     slog.Default(),
	}
	for _, v := range h.Values() {
		if v >= cfg.Growth.WaterLevel {
			w.landCells++
		}
	}
	tr.Paint(surface)
	return w
}

// SetLogger replaces the logger used for spawn events.
func (w *World) SetLogger(l *slog.Logger) {
	if l != nil {
		w.log = l
	}
}

// Config returns the effective configuration.
func (w *World) Config() Config { return w.cfg }

// Size reports the map dimensions.
func (w *World) Size() core.Size { return w.terrain.Heights().Size() }

// Terrain exposes the generated terrain.
func (w *World) Terrain() *terrain.Terrain { return w.terrain }

// Claims exposes the shared claim registry.
func (w *World) Claims() *claims.Registry { return w.claims }

// Territories returns the live territories in spawn order.
func (w *World) Territories() []*territory.Territory {
	return append([]*territory.Territory(nil), w.territories...)
}

// HeightAt samples the height grid for pointer diagnostics.
func (w *World) HeightAt(x, y int) (float64, bool) {
	return w.terrain.Heights().At(x, y)
}

// BiomeAt returns the biome under (x, y).
func (w *World) BiomeAt(x, y int) (terrain.Biome, bool) {
	if !w.Size().Contains(x, y) {
		return terrain.BiomeWater, false
	}
	return w.terrain.BiomeAt(x, y), true
}

// Spawn seeds a territory at (x, y). Clicks on water, claimed cells or
// outside the map spawn nothing.
func (w *World) Spawn(x, y int) (*territory.Territory, bool) {
	if len(w.territories) >= math.MaxUint16 {
		return nil, false
	}
	id := claims.ID(len(w.territories) + 1)
	env := territory.Env{
		Heights: w.terrain.Heights(),
		Claims:  w.claims,
		Surface: w.surface,
	}
	origin := core.Coord{X: x, Y: y}
	t, ok := territory.Seed(id, origin, w.colors.Color(), env, w.cfg.Growth)
	if !ok {
		w.log.Debug("spawn rejected", "x", x, "y", y)
		return nil, false
	}
	w.territories = append(w.territories, t)
	w.log.Debug("spawn", "id", id, "x", x, "y", y)
	return t, true
}

// Tick advances every territory once, in spawn order.
func (w *World) Tick(now, delta time.Duration) {
	w.ticks++
	w.now = now
	for _, t := range w.territories {
		t.Advance(delta)
	}
}

// Ticks returns the number of ticks delivered so far.
func (w *World) Ticks() int { return w.ticks }

// Settled reports whether every territory has exhausted its frontier.
func (w *World) Settled() bool {
	for _, t := range w.territories {
		if !t.Done() {
			return false
		}
	}
	return true
}

// TerritoryStats summarizes one territory.
type TerritoryStats struct {
	ID       claims.ID
	Origin   core.Coord
	Area     int
	Frontier int
	Done     bool
}

// Report is a snapshot of simulation progress.
type Report struct {
	Ticks       int
	Elapsed     time.Duration
	Claimed     int
	LandCells   int
	Territories []TerritoryStats
}

// Report captures the current progress.
func (w *World) Report() Report {
	r := Report{
		Ticks:     w.ticks,
		Elapsed:   w.now,
		Claimed:   w.claims.Len(),
		LandCells: w.landCells,
	}
	for _, t := range w.territories {
		r.Territories = append(r.Territories, TerritoryStats{
			ID:       t.ID(),
			Origin:   t.Origin(),
			Area:     t.Area(),
			Frontier: len(t.Border()),
			Done:     t.Done(),
		})
	}
	return r
}

// String formats the report as fixed-width lines.
func (r Report) String() string {
	var b strings.Builder
	share := 0.0
	if r.LandCells > 0 {
		share = 100 * float64(r.Claimed) / float64(r.LandCells)
	}
	fmt.Fprintf(&b, "ticks=%d elapsed=%v claimed=%d/%d (%.1f%%)\n", r.Ticks, r.Elapsed, r.Claimed, r.LandCells, share)
	for _, t := range r.Territories {
		state := "growing"
		if t.Done {
			state = "done"
		}
		fmt.Fprintf(&b, "  #%-3d origin=(%d,%d) area=%-7d frontier=%-5d %s\n", t.ID, t.Origin.X, t.Origin.Y, t.Area, t.Frontier, state)
	}
	return b.String()
}
