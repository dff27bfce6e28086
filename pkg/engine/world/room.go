package world

import "math/rand"

// RoomType tags the gameplay role of a room.
type RoomType string

// Room types. RoomStandard is the only type the start room may have.
const (
	RoomStandard  RoomType = "standard"
	RoomLarge     RoomType = "large"
	RoomCorridor  RoomType = "corridor"
	RoomCircular  RoomType = "circular"
	RoomIrregular RoomType = "irregular"
	RoomTreasure  RoomType = "treasure"
	RoomChallenge RoomType = "challenge"
	RoomArena     RoomType = "arena"
	RoomBoss      RoomType = "boss"
	RoomPuzzle    RoomType = "puzzle"
)

// Room is a placed rectangular room plus annotations written by later
// generation passes. The grid remains the source of truth for geometry;
// the annotations describe presentation and pacing only.
type Room struct {
	Rect
	Type RoomType

	// Set by the theme layer.
	CorridorWidth int
	CeilingScale  float64
	ThemeFeatures []string

	// Set by the narrative layer.
	NarrativeRole  string
	DramaticReveal bool
	Climactic      bool
}

// NewRoom creates a room of the given bounds and type.
func NewRoom(x, y, w, h int, t RoomType) *Room {
	return &Room{
		Rect:         Rect{X: x, Y: y, W: w, H: h},
		Type:         t,
		CeilingScale: 1.0,
	}
}

// RandomPoint returns a uniformly random interior point, keeping the
// 1-tile rim next to the walls free.
func (r *Room) RandomPoint(rng *rand.Rand) Point {
	return Point{
		X: r.X + 1 + rng.Intn(max(1, r.W-2)),
		Y: r.Y + 1 + rng.Intn(max(1, r.H-2)),
	}
}

// RandomPoints returns count uniformly random interior points.
func (r *Room) RandomPoints(rng *rand.Rand, count int) []Point {
	points := make([]Point, 0, count)
	for i := 0; i < count; i++ {
		points = append(points, r.RandomPoint(rng))
	}
	return points
}

// Overlaps reports whether the two rooms' rectangles intersect when both
// are expanded by a 1-tile buffer.
func (r *Room) Overlaps(other *Room) bool {
	return r.Rect.Intersects(other.Rect, 1)
}
