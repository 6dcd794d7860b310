package core

import (
	"testing"
	"time"
)

func TestClockDeltas(t *testing.T) {
	base := time.Unix(100, 0)
	now := base
	clock := NewClockFunc(100*time.Millisecond, func() time.Time { return now })

	elapsed, delta := clock.Tick()
	if elapsed != 0 || delta != 0 {
		t.Fatalf("first tick = (%v, %v), want zeros", elapsed, delta)
	}

	now = now.Add(16 * time.Millisecond)
	elapsed, delta = clock.Tick()
	if elapsed != 16*time.Millisecond || delta != 16*time.Millisecond {
		t.Fatalf("second tick = (%v, %v), want 16ms both", elapsed, delta)
	}

	now = now.Add(time.Second)
	elapsed, delta = clock.Tick()
	if delta != 100*time.Millisecond {
		t.Fatalf("delta after long stall = %v, want clamp to 100ms", delta)
	}
	if elapsed != 1016*time.Millisecond {
		t.Fatalf("elapsed = %v, want wall time since start", elapsed)
	}

	now = now.Add(5 * time.Second)
	clock.Resync()
	now = now.Add(10 * time.Millisecond)
	if _, delta = clock.Tick(); delta != 10*time.Millisecond {
		t.Fatalf("delta after resync = %v, want 10ms", delta)
	}
}

func TestHeightGridWaterTests(t *testing.T) {
	g := FlatHeightGrid(4, 4, 0.5)
	g.Set(0, 0, 0.1)

	if !g.IsWater(0, 0, 0.2) {
		t.Fatal("cell (0,0) should be water")
	}
	if g.IsWater(-1, 0, 0.2) {
		t.Fatal("out-of-range cells are never water")
	}
	if !g.TouchesWater(1, 1, 0.2) {
		t.Fatal("(1,1) touches (0,0) diagonally")
	}
	if g.TouchesWater(3, 3, 0.2) {
		t.Fatal("(3,3) has no water neighbour")
	}
	if _, ok := g.At(4, 0); ok {
		t.Fatal("At must report out-of-range")
	}
}

func TestCoordNeighborsAreDistinct(t *testing.T) {
	c := Coord{X: 5, Y: 5}
	seen := map[Coord]bool{}
	for _, n := range c.Neighbors() {
		if n == c {
			t.Fatal("neighbour list must not contain the centre")
		}
		if seen[n] {
			t.Fatalf("duplicate neighbour %v", n)
		}
		seen[n] = true
		dx, dy := n.X-c.X, n.Y-c.Y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Fatalf("neighbour %v is not adjacent", n)
		}
	}
	if len(seen) != 8 {
		t.Fatalf("got %d neighbours, want 8", len(seen))
	}
}

func TestRNGColorDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 32; i++ {
		ca, cb := a.Color(), b.Color()
		if ca != cb {
			t.Fatalf("colour %d differs: %v vs %v", i, ca, cb)
		}
		if ca.A != 255 {
			t.Fatalf("colour %d not opaque", i)
		}
		if ca.R < 40 || ca.G < 40 || ca.B < 40 {
			t.Fatalf("colour %d too dark: %v", i, ca)
		}
	}
}
