package advanced

import (
	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/generator"
)

// narrativeSequence is the fixed pacing arc assigned to the first rooms in
// placement order.
var narrativeSequence = []string{
	"entrance",
	"exploration",
	"challenge",
	"revelation",
	"climax",
}

// applyNarrative assigns the pacing arc to the first rooms when the level
// has enough of them, tags the single farthest room as climactic, and may
// flag one room for a dramatic reveal.
func (p *Pipeline) applyNarrative(result *generator.Result, meta *generator.AdvancedMetadata) {
	rooms := result.Rooms
	if len(rooms) >= len(narrativeSequence) {
		for i, role := range narrativeSequence {
			rooms[i].NarrativeRole = role
			meta.NarrativeRoles = append(meta.NarrativeRoles, role)
		}
	}

	if far := farthestRoom(rooms); far != nil {
		far.Climactic = true
	}

	if len(rooms) > 1 && p.rng.Float64() < p.cfg.Advanced.DramaticRevealChance {
		rooms[1+p.rng.Intn(len(rooms)-1)].DramaticReveal = true
	}
}

// farthestRoom returns the room whose center is farthest from the start
// room's center, or nil for a single-room level.
func farthestRoom(rooms []*world.Room) *world.Room {
	if len(rooms) < 2 {
		return nil
	}
	start := rooms[0].Center()
	best := rooms[1]
	bestDist := -1.0
	for _, room := range rooms[1:] {
		if d := room.Center().DistanceTo(start); d > bestDist {
			best, bestDist = room, d
		}
	}
	return best
}
