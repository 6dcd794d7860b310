package terrain

import (
	"image/color"

	"islands/internal/core"
)

// Biome is the derived label of a terrain cell.
type Biome uint8

const (
	BiomeWater Biome = iota
	BiomeCoastline
	BiomeSand
	BiomeLand
	BiomeForest
	BiomeHills
)

var biomeNames = [...]string{"water", "coastline", "sand", "land", "forest", "hills"}

func (b Biome) String() string {
	if int(b) < len(biomeNames) {
		return biomeNames[b]
	}
	return "unknown"
}

var palette = [...]color.RGBA{
	BiomeWater:     {R: 0, G: 0, B: 255, A: 255},
	BiomeCoastline: {R: 14, G: 14, B: 14, A: 255},
	BiomeSand:      {R: 222, G: 204, B: 140, A: 255},
	BiomeLand:      {R: 0, G: 187, B: 0, A: 255},
	BiomeForest:    {R: 13, G: 73, B: 13, A: 255},
	BiomeHills:     {R: 200, G: 255, B: 200, A: 255},
}

// Color returns the fill colour used for the biome.
func (b Biome) Color() color.RGBA {
	if int(b) < len(palette) {
		return palette[b]
	}
	return color.RGBA{A: 255}
}

// Classify labels the cell at (x, y). Land cells touching water on any of the
// eight sides are coastline. Out-of-range cells report water.
func Classify(g *core.HeightGrid, x, y int, lv Levels) Biome {
	h, ok := g.At(x, y)
	if !ok || h < lv.Water {
		return BiomeWater
	}
	if g.TouchesWater(x, y, lv.Water) {
		return BiomeCoastline
	}
	switch {
	case h < lv.Sand:
		return BiomeSand
	case h < lv.Land:
		return BiomeLand
	case h < lv.Forest:
		return BiomeForest
	default:
		return BiomeHills
	}
}
