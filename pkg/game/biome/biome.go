// Package biome defines the thematic content bundles a level can be
// generated with and the depth-weighted selection between them.
package biome

import (
	"math"
	"math/rand"
	"sort"
)

// ID names a biome content bundle.
type ID string

// Built-in biomes.
const (
	Dungeon       ID = "dungeon"
	Forest        ID = "forest"
	Cave          ID = "cave"
	Volcanic      ID = "volcanic"
	CrystalCavern ID = "crystal_cavern"
	Necropolis    ID = "necropolis"
	FrozenWastes  ID = "frozen_wastes"
	ShadowRealm   ID = "shadow_realm"
)

// DefaultBiome is the fallback when the configured table is empty or a
// lookup misses.
const DefaultBiome = Dungeon

// Definition bundles the palette and content lists for one biome.
type Definition struct {
	Primary     string   `yaml:"primary"`
	Secondary   string   `yaml:"secondary"`
	Decoration  string   `yaml:"decoration"`
	Hazards     []string `yaml:"hazards"`
	Features    []string `yaml:"features"`
	SpawnWeight float64  `yaml:"spawn_weight"`
}

// Table maps biome IDs to their definitions.
type Table map[ID]Definition

// Get returns the definition for id, falling back to DefaultBiome when the
// id is unknown. A second fallback to a zero definition covers tables that
// lack the default entirely.
func (t Table) Get(id ID) Definition {
	if def, ok := t[id]; ok {
		return def
	}
	return t[DefaultBiome]
}

// DefaultTable returns the built-in biome definitions.
func DefaultTable() Table {
	return Table{
		Dungeon: {
			Primary: "stone_brick", Secondary: "stone_cracked", Decoration: "torch",
			Hazards:     []string{"spike_trap", "poison_dart"},
			Features:    []string{"fountain", "statue", "bookshelf"},
			SpawnWeight: 10,
		},
		Forest: {
			Primary: "mossy_stone", Secondary: "dirt", Decoration: "vines",
			Hazards:     []string{"thorn_patch", "sinkhole"},
			Features:    []string{"ancient_tree", "mushroom_ring"},
			SpawnWeight: 7,
		},
		Cave: {
			Primary: "rough_rock", Secondary: "gravel", Decoration: "stalactite",
			Hazards:     []string{"rockfall", "chasm"},
			Features:    []string{"crystal_node", "underground_pool"},
			SpawnWeight: 8,
		},
		Volcanic: {
			Primary: "basalt", Secondary: "obsidian", Decoration: "ember_vent",
			Hazards:     []string{"lava_pool", "steam_vent", "fire_geyser"},
			Features:    []string{"obsidian_altar", "magma_forge"},
			SpawnWeight: 5,
		},
		CrystalCavern: {
			Primary: "crystal_wall", Secondary: "quartz", Decoration: "glow_shard",
			Hazards:     []string{"shard_cluster", "resonance_field"},
			Features:    []string{"prism_column", "singing_geode"},
			SpawnWeight: 4,
		},
		Necropolis: {
			Primary: "bone_brick", Secondary: "grave_dirt", Decoration: "cobweb",
			Hazards:     []string{"curse_sigil", "bone_pit"},
			Features:    []string{"sarcophagus", "ritual_circle", "ossuary"},
			SpawnWeight: 4,
		},
		FrozenWastes: {
			Primary: "packed_ice", Secondary: "permafrost", Decoration: "icicle",
			Hazards:     []string{"thin_ice", "frost_vent"},
			Features:    []string{"frozen_statue", "aurora_shrine"},
			SpawnWeight: 3,
		},
		ShadowRealm: {
			Primary: "void_stone", Secondary: "umbral_slate", Decoration: "shadow_wisp",
			Hazards:     []string{"void_rift", "shadow_snare"},
			Features:    []string{"dark_obelisk", "whispering_gate"},
			SpawnWeight: 2,
		},
	}
}

// EffectiveWeight returns the depth-adjusted draw weight for a definition:
// the base spawn weight multiplied by 0.5 + min(depth/10, 1.0). Weights
// grow with depth but never reach zero for shallow levels.
func EffectiveWeight(def Definition, depth int) float64 {
	return def.SpawnWeight * (0.5 + math.Min(float64(depth)/10.0, 1.0))
}

// Select draws one biome from the table by depth-adjusted weight.
// An empty or weightless table yields DefaultBiome.
func Select(rng *rand.Rand, depth int, table Table) ID {
	if len(table) == 0 {
		return DefaultBiome
	}

	// Iterate in sorted order so identical RNG sequences pick identical biomes.
	ids := make([]ID, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	total := 0.0
	for _, id := range ids {
		total += EffectiveWeight(table[id], depth)
	}
	if total <= 0 {
		return DefaultBiome
	}

	roll := rng.Float64() * total
	for _, id := range ids {
		roll -= EffectiveWeight(table[id], depth)
		if roll < 0 {
			return id
		}
	}
	return ids[len(ids)-1]
}
