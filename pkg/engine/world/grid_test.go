package world

import "testing"

func TestGridStartsSolid(t *testing.T) {
	g := NewGrid(10, 8)
	if g.Width() != 10 || g.Height() != 8 {
		t.Fatalf("expected 10x8 grid, got %dx%d", g.Width(), g.Height())
	}
	if g.FloorCount() != 0 {
		t.Errorf("fresh grid should be all wall, found %d floor tiles", g.FloorCount())
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(5, 5)
	if g.At(-1, 0) != TileWall || g.At(0, 99) != TileWall {
		t.Error("out-of-bounds reads should be wall")
	}
	g.Set(-1, -1, TileFloor) // must not panic
	if g.IsFloor(-1, -1) {
		t.Error("out-of-bounds writes should be ignored")
	}
}

func TestCarveRectClips(t *testing.T) {
	g := NewGrid(10, 10)
	g.CarveRect(Rect{X: 7, Y: 7, W: 6, H: 6})
	if !g.IsFloor(9, 9) {
		t.Error("in-bounds part of the rect should be carved")
	}
	if g.FloorCount() != 9 {
		t.Errorf("expected 9 carved tiles after clipping, got %d", g.FloorCount())
	}
}

func TestReachableFloor(t *testing.T) {
	g := NewGrid(20, 10)
	g.CarveRect(Rect{X: 1, Y: 1, W: 4, H: 4})
	g.CarveRect(Rect{X: 10, Y: 1, W: 4, H: 4})

	reached := g.ReachableFloor(Point{X: 2, Y: 2})
	if len(reached) != 16 {
		t.Errorf("expected only the first room reachable (16 tiles), got %d", len(reached))
	}
	if reached[Point{X: 11, Y: 2}] {
		t.Error("disconnected room should not be reachable")
	}

	// Connect them and flood again.
	for x := 1; x < 14; x++ {
		g.Set(x, 2, TileFloor)
	}
	reached = g.ReachableFloor(Point{X: 2, Y: 2})
	if !reached[Point{X: 11, Y: 2}] {
		t.Error("connected room should be reachable")
	}
}

func TestReachableFloorFromWall(t *testing.T) {
	g := NewGrid(5, 5)
	if len(g.ReachableFloor(Point{X: 2, Y: 2})) != 0 {
		t.Error("flood fill from a wall should reach nothing")
	}
}
