package core

import "errors"

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Contains reports whether (x, y) lies inside the grid.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

// Coord addresses a single cell. It is comparable and used directly as a map key.
type Coord struct {
	X, Y int
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord { return Coord{X: c.X + dx, Y: c.Y + dy} }

// Less orders coordinates row-major.
func (c Coord) Less(o Coord) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// Moore lists the eight neighbour offsets in a fixed order.
var Moore = [8][2]int{
	{1, 0},
	{-1, 0},
	{0, 1},
	{0, -1},
	{1, 1},
	{-1, -1},
	{1, -1},
	{-1, 1},
}

// Neighbors returns the eight surrounding coordinates, including out-of-bounds ones.
func (c Coord) Neighbors() [8]Coord {
	var out [8]Coord
	for i, d := range Moore {
		out[i] = c.Add(d[0], d[1])
	}
	return out
}
