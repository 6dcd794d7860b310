package core

import (
	"image/color"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Color returns a saturated opaque colour. Components are kept away from pure
// black so territory fills never match the border ink.
func (r *RNG) Color() color.RGBA {
	c := color.RGBA{A: 255}
	for {
		c.R = uint8(40 + r.r.IntN(216))
		c.G = uint8(40 + r.r.IntN(216))
		c.B = uint8(40 + r.r.IntN(216))
		lo, hi := minMax(c.R, c.G, c.B)
		if hi-lo >= 60 {
			return c
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

func minMax(vals ...uint8) (uint8, uint8) {
	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}
