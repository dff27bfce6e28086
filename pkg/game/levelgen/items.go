package levelgen

import (
	"math/rand"

	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/config"
)

// itemDistanceAttempts bounds the per-item redraws used to keep items off
// the player's doorstep. Items skip the full safe-position search because
// overlap with other content is tolerated.
const itemDistanceAttempts = 8

// PlaceItems distributes items over the rooms by room type, capped by the
// per-level budget. Positions are uniform interior points; an item whose
// redraws never clear the start-distance rule is dropped rather than
// placed unsafely.
func PlaceItems(rng *rand.Rand, cfg *config.Config, depth int, rooms []*world.Room, start world.Point) []world.Point {
	budget := cfg.Items.PerLevelBase + depth/2
	if budget > cfg.Items.PerLevelCap {
		budget = cfg.Items.PerLevelCap
	}

	var items []world.Point
	for _, room := range rooms {
		r, ok := cfg.Items.PerRoom[room.Type]
		if !ok {
			continue
		}
		count := r.Min
		if r.Max > r.Min {
			count += rng.Intn(r.Max - r.Min + 1)
		}
		if remaining := budget - len(items); count > remaining {
			count = remaining
		}

		for i := 0; i < count; i++ {
			if pos, ok := drawItemPoint(rng, room, start, cfg.Placement.MinStartDistance); ok {
				items = append(items, pos)
			}
		}
		if len(items) >= budget {
			break
		}
	}
	return items
}

// drawItemPoint redraws uniform room points until one clears the
// start-distance rule, giving up after a bounded number of attempts.
func drawItemPoint(rng *rand.Rand, room *world.Room, start world.Point, minDistance float64) (world.Point, bool) {
	for i := 0; i < itemDistanceAttempts; i++ {
		pos := room.RandomPoint(rng)
		if pos.DistanceTo(start) >= minDistance {
			return pos, true
		}
	}
	return world.Point{}, false
}
