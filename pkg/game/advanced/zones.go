package advanced

import (
	"sort"

	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/generator"
)

// zoneMultipliers scales encounter difficulty inside each zone kind
// relative to the level baseline.
var zoneMultipliers = map[string]float64{
	"safe":      0.5,
	"challenge": 1.5,
	"elite":     2.0,
	"puzzle":    1.0,
	"ambush":    1.8,
}

// zoneRules are the gameplay rules each zone kind carries.
var zoneRules = map[string][]string{
	"safe":      {"no_spawns", "rest_allowed"},
	"challenge": {"wave_spawns"},
	"elite":     {"elite_spawns", "bonus_loot"},
	"puzzle":    {"sealed_until_solved"},
	"ambush":    {"delayed_spawn", "hidden_until_triggered"},
}

// assignZones marks rooms as difficulty zones. Each kind's expected room
// count is its configured frequency times the room count, with the
// fractional remainder resolved probabilistically. A room carries at most
// one zone and the start room never carries any.
func (p *Pipeline) assignZones(result *generator.Result, meta *generator.AdvancedMetadata) {
	candidates := make([]*world.Room, 0, len(result.Rooms))
	for _, room := range result.Rooms[1:] {
		candidates = append(candidates, room)
	}
	if len(candidates) == 0 {
		return
	}

	kinds := make([]string, 0, len(p.cfg.Advanced.ZoneFrequencies))
	for kind := range p.cfg.Advanced.ZoneFrequencies {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	for _, kind := range kinds {
		expected := p.cfg.Advanced.ZoneFrequencies[kind] * float64(len(result.Rooms))
		count := int(expected)
		if p.rng.Float64() < expected-float64(count) {
			count++
		}

		for i := 0; i < count && len(candidates) > 0; i++ {
			idx := p.rng.Intn(len(candidates))
			room := candidates[idx]
			candidates = append(candidates[:idx], candidates[idx+1:]...)

			meta.Zones = append(meta.Zones, generator.DifficultyZone{
				Kind:       kind,
				Area:       room.Rect,
				Multiplier: zoneMultipliers[kind],
				Rules:      zoneRules[kind],
			})
		}
	}
}
