package world

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"islands/internal/claims"
	"islands/internal/core"
	"islands/internal/render"
	"islands/internal/terrain"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Terrain.Width = 120
	cfg.Terrain.Height = 90
	cfg.Terrain.Seed = 7
	return cfg
}

func flatWorld(t *testing.T, w, h int, height float64) (*World, *render.Buffer) {
	t.Helper()
	cfg := DefaultConfig()
	buf := render.NewBuffer(w, h)
	tr := terrain.FromHeights(cfg.Terrain, core.FlatHeightGrid(w, h, height))
	world, err := NewFromTerrain(cfg, tr, buf)
	if err != nil {
		t.Fatalf("world: %v", err)
	}
	return world, buf
}

// landCells returns up to n inland cells spread evenly over the map's land.
func landCells(w *World, n int) []core.Coord {
	var land []core.Coord
	size := w.Size()
	level := w.Config().Growth.WaterLevel
	heights := w.Terrain().Heights()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if heights.IsWater(x, y, level) || heights.TouchesWater(x, y, level) {
				continue
			}
			if x == 0 || y == 0 || x == size.W-1 || y == size.H-1 {
				continue
			}
			land = append(land, core.Coord{X: x, Y: y})
		}
	}
	if len(land) < n {
		return land
	}
	out := make([]core.Coord, 0, n)
	for k := 0; k < n; k++ {
		out = append(out, land[k*len(land)/n])
	}
	return out
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Terrain.Width = -3
	cfg.Growth.WaterLevel = 2
	_, err := New(cfg, render.NewBuffer(1, 1))
	if err == nil {
		t.Fatal("expected config error")
	}
	if !errors.Is(err, core.ErrInvalidConfig) {
		t.Fatalf("error %v does not wrap ErrInvalidConfig", err)
	}
	for _, want := range []string{"width", "water_level"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q does not mention %s", err, want)
		}
	}
}

func TestSpawnRejectsInvalidLocations(t *testing.T) {
	world, _ := flatWorld(t, 10, 10, 0.5)
	if _, ok := world.Spawn(4, 4); !ok {
		t.Fatal("spawn on free land rejected")
	}
	for _, c := range [][2]int{{4, 4}, {-1, 0}, {10, 3}, {3, 10}} {
		if _, ok := world.Spawn(c[0], c[1]); ok {
			t.Fatalf("spawn at %v should be ignored", c)
		}
	}
	if got := len(world.Territories()); got != 1 {
		t.Fatalf("territories = %d, want 1", got)
	}

	water, _ := flatWorld(t, 10, 10, 0.1)
	if _, ok := water.Spawn(5, 5); ok {
		t.Fatal("spawn on water should be ignored")
	}
}

func TestGeneratedWorldInvariants(t *testing.T) {
	buf := render.NewBuffer(120, 90)
	world, err := New(smallConfig(), buf)
	if err != nil {
		t.Fatalf("world: %v", err)
	}
	seeds := landCells(world, 4)
	if len(seeds) < 2 {
		t.Fatalf("generated island has too little land: %d seeds", len(seeds))
	}
	for _, s := range seeds {
		if _, ok := world.Spawn(s.X, s.Y); !ok {
			t.Fatalf("spawn at %v rejected", s)
		}
	}

	size := world.Size()
	prev := make([]int, len(seeds))
	delta := 16 * time.Millisecond
	for tick := 1; tick <= 300; tick++ {
		world.Tick(time.Duration(tick)*delta, delta)

		sum := 0
		for i, tr := range world.Territories() {
			if tr.Area() < prev[i] {
				t.Fatalf("tick %d: territory %d shrank %d -> %d", tick, tr.ID(), prev[i], tr.Area())
			}
			prev[i] = tr.Area()
			sum += tr.Area()
			for _, c := range tr.Cells() {
				if !size.Contains(c.X, c.Y) {
					t.Fatalf("tick %d: cell %v outside the map", tick, c)
				}
				if id, ok := world.Claims().Owner(c); !ok || id != tr.ID() {
					t.Fatalf("tick %d: registry owner of %v = %d,%v, want %d", tick, c, id, ok, tr.ID())
				}
			}
		}
		if world.Claims().Len() != sum {
			t.Fatalf("tick %d: registry holds %d claims, areas sum to %d", tick, world.Claims().Len(), sum)
		}
	}
	for _, tr := range world.Territories() {
		if tr.Area() <= 1 {
			t.Fatalf("territory %d never grew", tr.ID())
		}
		if n := world.Claims().CountOwned(tr.ID()); n != tr.Area() {
			t.Fatalf("territory %d area %d, registry owns %d", tr.ID(), tr.Area(), n)
		}
	}
	if r := world.Report(); r.Ticks != 300 || r.Claimed == 0 || len(r.Territories) != len(seeds) {
		t.Fatalf("unexpected report %+v", r)
	}
}

func TestTickFansOutAndSettles(t *testing.T) {
	world, buf := flatWorld(t, 12, 12, 0.5)
	world.Spawn(2, 2)
	world.Spawn(9, 9)
	presents := buf.Presents()

	delta := 50 * time.Millisecond
	for i := 1; i <= 200 && !world.Settled(); i++ {
		world.Tick(time.Duration(i)*delta, delta)
	}
	if !world.Settled() {
		t.Fatal("territories never settled on a closed map")
	}
	if world.Claims().Len() != 144 {
		t.Fatalf("claimed %d cells, want 144", world.Claims().Len())
	}
	if buf.Presents() <= presents {
		t.Fatal("growth never presented the surface")
	}
	report := world.Report().String()
	if !strings.Contains(report, "claimed=144/144") || strings.Count(report, "done") != 2 {
		t.Fatalf("unexpected report:\n%s", report)
	}
}

func TestConfigApply(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Apply(map[string]string{
		"w":               "64",
		"seed":            "-9",
		"delay_k":         "2.5",
		"update_interval": "20ms",
		"forest_level":    "0.7",
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.Terrain.Width != 64 || cfg.Terrain.Seed != -9 || cfg.Growth.DelayK != 2.5 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Growth.UpdateInterval != 20*time.Millisecond || cfg.Terrain.Levels.Forest != 0.7 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}

	err = cfg.Apply(map[string]string{"bogus": "1", "octaves": "many"})
	if !errors.Is(err, core.ErrInvalidConfig) {
		t.Fatalf("apply error = %v, want ErrInvalidConfig", err)
	}
	if !strings.Contains(err.Error(), "bogus") || !strings.Contains(err.Error(), "octaves") {
		t.Fatalf("apply error %q should name both keys", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "islands.yaml")
	doc := `terrain:
  width: 200
  seed: 99
  levels:
    water: 0.3
    sand: 0.32
growth:
  update_interval: 25ms
  delay_k: 0.8
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Terrain.Width != 200 || cfg.Terrain.Seed != 99 || cfg.Terrain.Levels.Water != 0.3 {
		t.Fatalf("terrain not loaded: %+v", cfg.Terrain)
	}
	if cfg.Terrain.Height != 768 || cfg.Terrain.Levels.Land != 0.45 {
		t.Fatalf("defaults not kept for omitted keys: %+v", cfg.Terrain)
	}
	if cfg.Growth.UpdateInterval != 25*time.Millisecond || cfg.Growth.DelayK != 0.8 {
		t.Fatalf("growth not loaded: %+v", cfg.Growth)
	}
	if cfg.Growth.BootstrapArea != 30 {
		t.Fatalf("bootstrap area default lost: %d", cfg.Growth.BootstrapArea)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("loaded config invalid: %v", err)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file should fail")
	}
}

func TestParametersSnapshot(t *testing.T) {
	world, _ := flatWorld(t, 4, 4, 0.5)
	p, ok := world.Parameters().Lookup("update_interval")
	if !ok || p.Value != "50ms" || p.Type != core.ParamTypeDuration {
		t.Fatalf("update_interval param = %+v, %v", p, ok)
	}
	if p, ok := world.Parameters().Lookup("w"); !ok || p.Value != "4" {
		t.Fatalf("width param = %+v, %v", p, ok)
	}
}

func TestSpawnIDsAreSequential(t *testing.T) {
	world, _ := flatWorld(t, 6, 6, 0.5)
	a, _ := world.Spawn(0, 0)
	world.Spawn(0, 0)
	b, _ := world.Spawn(5, 5)
	if a.ID() != claims.ID(1) || b.ID() != claims.ID(2) {
		t.Fatalf("ids = %d,%d, want 1,2", a.ID(), b.ID())
	}
	if a.Color() == b.Color() {
		t.Fatal("territories should get distinct colours")
	}
}
