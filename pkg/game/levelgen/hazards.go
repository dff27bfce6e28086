package levelgen

import (
	"math/rand"

	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/biome"
	"dungeonforge/pkg/game/config"
)

// PlaceHazards places environmental hazards drawn from the active biome's
// hazard list. Hazards never land in the start room, and each position
// goes through the safe-position search; a hazard with no safe home is
// dropped.
func PlaceHazards(rng *rand.Rand, cfg *config.Config, depth int, rooms []*world.Room, def biome.Definition, placer *Placer) []HazardSpawn {
	if len(def.Hazards) == 0 || len(rooms) < 2 {
		return nil
	}

	count := contentCount(len(rooms), cfg.Hazards.HazardDensity, cfg.Hazards.DensityDepthScale, depth)
	var hazards []HazardSpawn
	for i := 0; i < count; i++ {
		room := rooms[1+rng.Intn(len(rooms)-1)]
		kind := def.Hazards[rng.Intn(len(def.Hazards))]
		if !placer.RoomEligible(room) {
			continue
		}
		if pos, ok := placer.TryResolve(room, room.RandomPoint(rng)); ok {
			hazards = append(hazards, HazardSpawn{Kind: kind, Pos: pos})
		}
	}
	return hazards
}

// PlaceFeatures places special features drawn from the active biome's
// feature list. Any room may host features, subject to the same safety
// rules as hazards.
func PlaceFeatures(rng *rand.Rand, cfg *config.Config, depth int, rooms []*world.Room, def biome.Definition, placer *Placer) []FeatureSpawn {
	if len(def.Features) == 0 || len(rooms) == 0 {
		return nil
	}

	count := contentCount(len(rooms), cfg.Hazards.FeatureDensity, cfg.Hazards.DensityDepthScale, depth)
	var features []FeatureSpawn
	for i := 0; i < count; i++ {
		room := rooms[rng.Intn(len(rooms))]
		kind := def.Features[rng.Intn(len(def.Features))]
		if !placer.RoomEligible(room) {
			continue
		}
		if pos, ok := placer.TryResolve(room, room.RandomPoint(rng)); ok {
			features = append(features, FeatureSpawn{Kind: kind, Pos: pos})
		}
	}
	return features
}

// contentCount derives an instance count from the room count and a
// depth-scaled density factor.
func contentCount(roomCount int, density, depthScale float64, depth int) int {
	scaled := density * (1.0 + float64(depth)*depthScale)
	return int(float64(roomCount) * scaled)
}
