package world

// Grid is the level tile map with encapsulated tile storage.
// Tiles are stored row-major: the cell at column x, row y is tiles[y][x].
type Grid struct {
	tiles  [][]Tile
	width  int
	height int
}

// NewGrid creates a new all-wall grid with the given dimensions.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// Build resets the grid to all-wall at the given dimensions.
func (g *Grid) Build(width, height int) {
	g.width = width
	g.height = height
	g.tiles = make([][]Tile, height)
	for y := range g.tiles {
		g.tiles[y] = make([]Tile, width)
	}
}

// Width returns the number of columns in the grid.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid.
func (g *Grid) Height() int {
	return g.height
}

// InBounds checks if a column/row position is within grid bounds.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the tile at the given position. Out-of-bounds positions
// read as solid wall.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.tiles[y][x]
}

// Set writes the tile at the given position. Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, t Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[y][x] = t
}

// IsFloor reports whether the tile at the given position is walkable floor.
func (g *Grid) IsFloor(x, y int) bool {
	return g.At(x, y).Walkable()
}

// CarveRect sets every tile covered by r to floor, clipped to the grid.
func (g *Grid) CarveRect(r Rect) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			g.Set(x, y, TileFloor)
		}
	}
}

// ForEach calls fn for every tile in the grid, row by row.
func (g *Grid) ForEach(fn func(x, y int, t Tile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.tiles[y][x])
		}
	}
}

// FloorCount returns the number of walkable floor tiles.
func (g *Grid) FloorCount() int {
	n := 0
	g.ForEach(func(x, y int, t Tile) {
		if t.Walkable() {
			n++
		}
	})
	return n
}

// ReachableFloor flood-fills from start over walkable tiles using 4-way
// movement and returns the set of reachable floor positions. An unwalkable
// start yields an empty set.
func (g *Grid) ReachableFloor(start Point) map[Point]bool {
	visited := make(map[Point]bool)
	if !g.IsFloor(start.X, start.Y) {
		return visited
	}

	queue := []Point{start}
	visited[start] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		neighbors := []Point{
			{current.X, current.Y - 1},
			{current.X + 1, current.Y},
			{current.X, current.Y + 1},
			{current.X - 1, current.Y},
		}
		for _, n := range neighbors {
			if !visited[n] && g.IsFloor(n.X, n.Y) {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	return visited
}
