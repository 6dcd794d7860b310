// Package noise wraps a seeded coherent-noise source and builds fractal
// height samples on top of it.
package noise

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source produces coherent 2D noise in roughly [-1, 1].
type Source interface {
	Eval2(x, y float64) float64
}

// Octaves configures fractal summation.
type Octaves struct {
	Count       int
	Persistence float64
	Lacunarity  float64
}

// Field samples a Source. It is safe for concurrent reads.
type Field struct {
	src Source
}

// New returns a Field backed by OpenSimplex noise seeded with seed.
func New(seed int64) *Field {
	return &Field{src: opensimplex.New(seed)}
}

// FromSource wraps an arbitrary Source.
func FromSource(src Source) *Field {
	return &Field{src: src}
}

// Sample returns the raw noise value at (x, y), clamped to [-1, 1].
func (f *Field) Sample(x, y float64) float64 {
	return clamp(f.src.Eval2(x, y), -1, 1)
}

// Height returns the noise value at (x, y) remapped to [0, 1].
func (f *Field) Height(x, y float64) float64 {
	return (f.Sample(x, y) + 1) / 2
}

// Fractal sums o.Count octaves of noise and normalizes by the total
// amplitude, so the result stays in [-1, 1].
func (f *Field) Fractal(x, y float64, o Octaves) float64 {
	total := 0.0
	frequency := 1.0
	amplitude := 1.0
	maxValue := 0.0
	for i := 0; i < o.Count; i++ {
		total += f.Sample(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= o.Persistence
		frequency *= o.Lacunarity
	}
	if maxValue == 0 {
		return 0
	}
	return clamp(total/maxValue, -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
