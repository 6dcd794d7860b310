package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Size reports the grid dimensions.
func (g *ByteGrid) Size() Size { return Size{W: g.W, H: g.H} }

// At returns the value at (x, y). Out-of-range reads return 0.
func (g *ByteGrid) At(x, y int) uint8 {
	if !g.Size().Contains(x, y) {
		return 0
	}
	return g.data[g.Index(x, y)]
}

// Set stores v at (x, y). Out-of-range writes are ignored.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if !g.Size().Contains(x, y) {
		return
	}
	g.data[g.Index(x, y)] = v
}

// HeightGrid stores normalized terrain heights in row-major order.
type HeightGrid struct {
	W, H int
	data []float64
}

// NewHeightGrid allocates a zeroed height grid.
func NewHeightGrid(w, h int) *HeightGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &HeightGrid{W: w, H: h, data: make([]float64, w*h)}
}

// FlatHeightGrid returns a grid with every cell set to v.
func FlatHeightGrid(w, h int, v float64) *HeightGrid {
	g := NewHeightGrid(w, h)
	for i := range g.data {
		g.data[i] = v
	}
	return g
}

// Size reports the grid dimensions.
func (g *HeightGrid) Size() Size { return Size{W: g.W, H: g.H} }

// InBounds reports whether (x, y) addresses a cell.
func (g *HeightGrid) InBounds(x, y int) bool { return g.Size().Contains(x, y) }

// Index returns the linear slice index for coordinates (x, y).
func (g *HeightGrid) Index(x, y int) int { return y*g.W + x }

// Values exposes the backing slice.
func (g *HeightGrid) Values() []float64 { return g.data }

// Row exposes the backing slice for row y.
func (g *HeightGrid) Row(y int) []float64 { return g.data[y*g.W : (y+1)*g.W] }

// At returns the height at (x, y) and false when the cell is out of range.
func (g *HeightGrid) At(x, y int) (float64, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.data[g.Index(x, y)], true
}

// Set stores v at (x, y). Out-of-range writes are ignored.
func (g *HeightGrid) Set(x, y int, v float64) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[g.Index(x, y)] = v
}

// IsWater reports whether (x, y) is in range and strictly below level.
func (g *HeightGrid) IsWater(x, y int, level float64) bool {
	h, ok := g.At(x, y)
	return ok && h < level
}

// TouchesWater reports whether any in-range Moore neighbour of (x, y) lies below level.
func (g *HeightGrid) TouchesWater(x, y int, level float64) bool {
	for _, d := range Moore {
		if g.IsWater(x+d[0], y+d[1], level) {
			return true
		}
	}
	return false
}
