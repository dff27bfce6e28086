package generator

import (
	"math/rand"

	"dungeonforge/pkg/engine/world"
)

// CarveCorridor connects two points with an L-shaped corridor, carving the
// horizontal leg first or the vertical leg first at random. Corridors are
// two tiles wide so formations can move through them.
func CarveCorridor(grid *world.Grid, rng *rand.Rand, a, b world.Point) {
	if rng.Intn(2) == 0 {
		carveHorizontal(grid, a.X, b.X, a.Y)
		carveVertical(grid, a.Y, b.Y, b.X)
	} else {
		carveVertical(grid, a.Y, b.Y, a.X)
		carveHorizontal(grid, a.X, b.X, b.Y)
	}
}

func carveHorizontal(grid *world.Grid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		grid.Set(x, y, world.TileFloor)
		grid.Set(x, y+1, world.TileFloor)
	}
}

func carveVertical(grid *world.Grid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		grid.Set(x, y, world.TileFloor)
		grid.Set(x+1, y, world.TileFloor)
	}
}
