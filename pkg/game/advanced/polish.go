package advanced

import (
	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/generator"
)

// polish repairs connectivity damage from the carving passes. Any room
// whose center pillar placement or erosion cut off from the start gets a
// fresh corridor back to the start room. Secret areas stay sealed on
// purpose and are left alone.
func (p *Pipeline) polish(result *generator.Result) {
	start := result.PlayerStart
	if !result.Grid.IsFloor(start.X, start.Y) {
		result.Grid.Set(start.X, start.Y, world.TileFloor)
	}

	reachable := result.Grid.ReachableFloor(start)
	repaired := false
	for _, room := range result.Rooms[1:] {
		center := room.Center()
		if !result.Grid.IsFloor(center.X, center.Y) {
			result.Grid.Set(center.X, center.Y, world.TileFloor)
		}
		if !reachable[center] {
			generator.CarveCorridor(result.Grid, p.rng, result.Rooms[0].Center(), center)
			repaired = true
		}
	}

	if repaired {
		p.log.Debug("connectivity repaired", "depth", p.depth)
	}
}
