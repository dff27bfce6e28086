package levelgen

import (
	"math/rand"
	"sort"

	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/config"
)

// PlaceExits places level exits. With multiple exits enabled, the non-start
// rooms are ranked by distance from the start room (farthest first) and a
// random number of the top-ranked rooms each receive one exit. If nothing
// was placed, or multiple exits are disabled, a single stairs-down goes
// into the farthest room. A single-room level gets its stairs in a corner
// so every level has a way down.
func PlaceExits(rng *rand.Rand, cfg *config.Config, rooms []*world.Room, placer *Placer) []ExitSpawn {
	if len(rooms) == 0 {
		return nil
	}

	if len(rooms) == 1 {
		room := rooms[0]
		return []ExitSpawn{{
			Kind: "stairs_down",
			Pos:  world.Point{X: room.X + 1, Y: room.Y + 1},
		}}
	}

	startCenter := rooms[0].Center()
	ranked := make([]*world.Room, len(rooms)-1)
	copy(ranked, rooms[1:])
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Center().DistanceTo(startCenter) > ranked[j].Center().DistanceTo(startCenter)
	})

	var exits []ExitSpawn
	if cfg.Exits.MultipleExits && len(cfg.Exits.Kinds) > 0 {
		maxExits := cfg.Exits.MaxExits
		if maxExits > len(ranked) {
			maxExits = len(ranked)
		}
		if maxExits > 0 {
			count := 1 + rng.Intn(maxExits)
			for i := 0; i < count; i++ {
				room := ranked[i]
				kind := cfg.Exits.Kinds[rng.Intn(len(cfg.Exits.Kinds))]
				if pos, ok := placer.ResolveLoose(room, room.RandomPoint(rng)); ok {
					exits = append(exits, ExitSpawn{Kind: kind, Pos: pos})
				}
			}
		}
	}

	// Guarantee at least one way down.
	if len(exits) == 0 {
		room := ranked[0]
		pos, ok := placer.ResolveLoose(room, room.RandomPoint(rng))
		if !ok {
			pos = room.Center()
		}
		exits = append(exits, ExitSpawn{Kind: "stairs_down", Pos: pos})
	}

	return exits
}
