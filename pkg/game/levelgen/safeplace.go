package levelgen

import (
	"math"
	"math/rand"

	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/config"
)

// Placer resolves desired spawn offsets into usable floor positions.
// The search is three-tiered: the exact candidate first, then an angular
// sweep on growing rings around it, then bounded random room points. The
// final fallback is the room center, so resolution always terminates.
type Placer struct {
	Grid  *world.Grid
	Rng   *rand.Rand
	Start world.Point
	Cfg   config.PlacementConfig
}

// NewPlacer creates a placer for one generation run.
func NewPlacer(grid *world.Grid, rng *rand.Rand, start world.Point, cfg config.PlacementConfig) *Placer {
	return &Placer{Grid: grid, Rng: rng, Start: start, Cfg: cfg}
}

// Safe reports whether p is a usable spawn point inside room: in bounds,
// on a floor tile, and far enough from the player start.
func (pl *Placer) Safe(room *world.Room, p world.Point) bool {
	if !pl.safeLoose(room, p) {
		return false
	}
	return p.DistanceTo(pl.Start) >= pl.Cfg.MinStartDistance
}

// safeLoose is Safe without the start-distance rule, used for exits.
func (pl *Placer) safeLoose(room *world.Room, p world.Point) bool {
	if !pl.Grid.InBounds(p.X, p.Y) || !room.Contains(p) {
		return false
	}
	return pl.Grid.IsFloor(p.X, p.Y)
}

// Resolve finds a safe position at or near want, falling back to
// progressively looser candidates. The returned position is always inside
// the room; the room center tier ignores the distance rule so the search
// never fails outright.
func (pl *Placer) Resolve(room *world.Room, want world.Point) world.Point {
	p, _ := pl.resolve(room, want, pl.Safe)
	return p
}

// TryResolve is Resolve for placements that may be dropped: it reports
// failure instead of returning an unsafe room center.
func (pl *Placer) TryResolve(room *world.Room, want world.Point) (world.Point, bool) {
	return pl.resolve(room, want, pl.Safe)
}

// ResolveLoose resolves without the start-distance rule.
func (pl *Placer) ResolveLoose(room *world.Room, want world.Point) (world.Point, bool) {
	return pl.resolve(room, want, pl.safeLoose)
}

func (pl *Placer) resolve(room *world.Room, want world.Point, safe func(*world.Room, world.Point) bool) (world.Point, bool) {
	if safe(room, want) {
		return want, true
	}

	// Angular sweep on growing rings around the candidate. Consumes no
	// randomness, so retries never perturb later draws.
	for radius := 1; radius <= pl.Cfg.SweepRadius; radius++ {
		for i := 0; i < pl.Cfg.SweepAngles; i++ {
			angle := 2 * math.Pi * float64(i) / float64(pl.Cfg.SweepAngles)
			cand := world.Point{
				X: want.X + int(math.Round(float64(radius)*math.Cos(angle))),
				Y: want.Y + int(math.Round(float64(radius)*math.Sin(angle))),
			}
			if safe(room, cand) {
				return cand, true
			}
		}
	}

	for i := 0; i < pl.Cfg.RandomAttempts; i++ {
		cand := room.RandomPoint(pl.Rng)
		if safe(room, cand) {
			return cand, true
		}
	}

	center := room.Center()
	return center, safe(room, center)
}

// RoomEligible reports whether a room can host distance-checked spawns at
// all: its center must be carved floor and far enough from the player
// start that the center fallback still honors the distance rule.
func (pl *Placer) RoomEligible(room *world.Room) bool {
	center := room.Center()
	if !pl.Grid.IsFloor(center.X, center.Y) {
		return false
	}
	return center.DistanceTo(pl.Start) >= pl.Cfg.MinStartDistance
}
