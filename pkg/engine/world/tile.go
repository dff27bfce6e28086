package world

// Tile is a single map cell tag.
type Tile uint8

// Tile kinds. The zero value is a solid wall so a freshly built grid is
// all rock until rooms are carved out of it.
const (
	TileWall Tile = iota
	TileFloor
	TilePillar
)

// Walkable reports whether entities can stand on this tile.
func (t Tile) Walkable() bool {
	return t == TileFloor
}

// String returns the tile name for logs and dumps.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TilePillar:
		return "pillar"
	default:
		return "unknown"
	}
}
