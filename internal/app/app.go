//go:build ebiten

package app

import (
	"fmt"
	"log/slog"
	"time"

	"islands/internal/core"
	"islands/internal/render"
	"islands/internal/ui"
	"islands/internal/world"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a world to the ebiten.Game interface.
type Game struct {
	cfg     world.Config
	world   *world.World
	buf     *render.Buffer
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay
	clock   *core.Clock
	log     *slog.Logger

	scale    int
	paused   bool
	tickOnce bool
}

// New generates the world described by cfg and wraps it for ebiten.
func New(cfg world.Config, scale int, log *slog.Logger) (*Game, error) {
	if scale <= 0 {
		scale = 1
	}
	g := &Game{cfg: cfg, scale: scale, log: log, clock: core.NewClock(250 * time.Millisecond)}
	if err := g.Reset(cfg.Terrain.Seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset regenerates the terrain with seed and drops every territory.
func (g *Game) Reset(seed int64) error {
	cfg := g.cfg
	cfg.Terrain.Seed = seed
	buf := render.NewBuffer(cfg.Terrain.Width, cfg.Terrain.Height)
	w, err := world.New(cfg, buf)
	if err != nil {
		return err
	}
	w.SetLogger(g.log)
	g.cfg, g.world, g.buf = cfg, w, buf
	g.painter = render.NewPainter(buf)
	if g.hud == nil {
		g.hud = ui.NewHUD(w, g.scale)
		g.overlay = ui.NewOverlay(w, g.scale)
	} else {
		g.hud.SetWorld(w)
		g.overlay.SetWorld(w)
	}
	g.hud.SetStatus(fmt.Sprintf("seed %d", seed))
	g.clock.Resync()
	g.log.Info("world generated", "seed", seed, "w", cfg.Terrain.Width, "h", cfg.Terrain.Height)
	return nil
}

// Update handles input and delivers one simulation tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.hud.SetPaused(g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.overlay.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.cfg.Terrain.Seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyReport()
	}

	g.hud.Update()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := g.hud.Cursor()
		if t, ok := g.world.Spawn(x, y); ok {
			g.hud.SetStatus(fmt.Sprintf("country #%d at (%d,%d)", t.ID(), x, y))
		}
	}

	now, delta := g.clock.Tick()
	switch {
	case g.tickOnce:
		g.world.Tick(now, g.cfg.Growth.UpdateInterval)
		g.tickOnce = false
	case !g.paused:
		g.world.Tick(now, delta)
	}
	return nil
}

func (g *Game) copyReport() {
	if err := clipboard.WriteAll(g.world.Report().String()); err != nil {
		g.log.Warn("copy report", "err", err)
		g.hud.SetStatus("clipboard unavailable")
		return
	}
	g.hud.SetStatus("report copied")
}

// Draw renders the map, the optional heightmap overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W * g.scale, s.H * g.scale
}
