package world

import "math"

// Point is a tile coordinate: X is the column, Y is the row.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// DistanceTo returns the Euclidean distance to other, in tiles.
func (p Point) DistanceTo(other Point) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle of tiles.
type Rect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Center returns the center tile of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies within the rectangle. The rectangle
// covers the half-open span [X, X+W) x [Y, Y+H), matching the tiles
// CarveRect floors.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W &&
		p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects reports whether the two rectangles overlap once both are
// expanded by buffer tiles in every direction. Spans are half-open, so
// rects separated by a gap of 2*buffer tiles are clear while anything
// tighter intersects. Rooms are tested with a 1-tile buffer so no two
// rooms ever share a wall.
func (r Rect) Intersects(other Rect, buffer int) bool {
	return r.X-buffer < other.X+other.W+buffer &&
		other.X-buffer < r.X+r.W+buffer &&
		r.Y-buffer < other.Y+other.H+buffer &&
		other.Y-buffer < r.Y+r.H+buffer
}
