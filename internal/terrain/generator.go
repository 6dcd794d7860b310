// Package terrain synthesizes island heightmaps from fractal noise and
// classifies them into biomes.
package terrain

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"islands/internal/core"
	"islands/internal/noise"
	"islands/internal/render"
)

// Terrain is a generated heightmap together with its biome classification.
type Terrain struct {
	params  Params
	heights *core.HeightGrid
	biomes  *core.ByteGrid
}

// Generate builds the terrain for p using OpenSimplex noise seeded with p.Seed.
func Generate(p Params) (*Terrain, error) {
	return GenerateWith(p, noise.New(p.Seed))
}

// GenerateWith builds the terrain for p sampling the provided field.
func GenerateWith(p Params, field *noise.Field) (*Terrain, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	heights, err := buildHeights(p, field)
	if err != nil {
		return nil, err
	}
	return &Terrain{params: p, heights: heights, biomes: classifyAll(heights, p.Levels)}, nil
}

// Heights exposes the height grid. Callers must not modify it.
func (t *Terrain) Heights() *core.HeightGrid { return t.heights }

// Biomes exposes the classified grid; values are Biome codes.
func (t *Terrain) Biomes() *core.ByteGrid { return t.biomes }

// BiomeAt returns the classification at (x, y).
func (t *Terrain) BiomeAt(x, y int) Biome { return Biome(t.biomes.At(x, y)) }

// Params returns the parameters the terrain was generated with.
func (t *Terrain) Params() Params { return t.params }

// Paint writes every cell's biome colour to s and presents once.
func (t *Terrain) Paint(s render.Surface) {
	for y := 0; y < t.biomes.H; y++ {
		for x := 0; x < t.biomes.W; x++ {
			s.WritePixel(x, y, Biome(t.biomes.At(x, y)).Color())
		}
	}
	s.Present()
}

// EdgeFalloff returns the suppression factor in [0, 1] for (x, y): zero at
// the centre, growing along an ellipse towards the edges.
func EdgeFalloff(x, y, width, height int, power float64) float64 {
	dx := (float64(x)/float64(width) - 0.5) * 1.4
	dy := (float64(y)/float64(height) - 0.5) * 1.2
	d := math.Min(math.Sqrt(dx*dx+dy*dy), 1)
	return math.Pow(d, power)
}

// HeightAt computes the shaped height of a single cell.
func HeightAt(p Params, field *noise.Field, x, y int) float64 {
	nx := float64(x) / float64(p.Width) * p.Scale
	ny := float64(y) / float64(p.Height) * p.Scale
	v := field.Fractal(nx, ny, noise.Octaves{
		Count:       p.Octaves,
		Persistence: p.Persistence,
		Lacunarity:  p.Lacunarity,
	})
	h := (v + 1) / 2
	h *= 1 - EdgeFalloff(x, y, p.Width, p.Height, p.EdgePower)
	h = math.Pow(h, p.Sharpen)
	return math.Max(0, math.Min(1, h))
}

func buildHeights(p Params, field *noise.Field) (*core.HeightGrid, error) {
	g := core.NewHeightGrid(p.Width, p.Height)
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for y := 0; y < p.Height; y++ {
		y := y
		eg.Go(func() error {
			row := g.Row(y)
			for x := range row {
				row[x] = HeightAt(p, field, x, y)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return g, nil
}

func classifyAll(g *core.HeightGrid, lv Levels) *core.ByteGrid {
	out := core.NewByteGrid(g.W, g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			out.Set(x, y, uint8(Classify(g, x, y, lv)))
		}
	}
	return out
}

// FromHeights wraps an existing height grid, classifying it with p.Levels.
// p.Width and p.Height are taken from the grid.
func FromHeights(p Params, g *core.HeightGrid) *Terrain {
	p.Width, p.Height = g.W, g.H
	return &Terrain{params: p, heights: g, biomes: classifyAll(g, p.Levels)}
}
