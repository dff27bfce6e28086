// Package config holds the read-only tuning surface of the level generator.
// Everything the generator scales by depth starts from the values here.
package config

import (
	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/biome"
)

// Range is an inclusive integer interval.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Config is the full configuration consumed by one generator instance.
// The generator never mutates it.
type Config struct {
	Map       MapConfig       `yaml:"map"`
	Rooms     RoomConfig      `yaml:"rooms"`
	Enemies   EnemyConfig     `yaml:"enemies"`
	Items     ItemConfig      `yaml:"items"`
	Hazards   HazardConfig    `yaml:"hazards"`
	Exits     ExitConfig      `yaml:"exits"`
	Placement PlacementConfig `yaml:"placement"`
	Advanced  AdvancedConfig  `yaml:"advanced"`
	Biomes    biome.Table     `yaml:"biomes"`
}

// MapConfig controls map dimensions and their depth scaling.
// A level at the given depth measures
// round(base * min(scale_factor^((depth-1)/5), max_multiplier)) per axis.
type MapConfig struct {
	BaseWidth     int     `yaml:"base_width"`
	BaseHeight    int     `yaml:"base_height"`
	ScaleFactor   float64 `yaml:"scale_factor"`
	MaxMultiplier float64 `yaml:"max_multiplier"`
}

// RoomConfig controls room placement.
type RoomConfig struct {
	MinSize     int `yaml:"min_size"`
	MaxSize     int `yaml:"max_size"`
	MaxRooms    int `yaml:"max_rooms"`
	MaxRoomsCap int `yaml:"max_rooms_cap"`

	// TypeWeights drives the weighted room-type draw for every room after
	// the start room. SizeModifiers widens the size range per type.
	TypeWeights   map[world.RoomType]float64 `yaml:"type_weights"`
	SizeModifiers map[world.RoomType]int     `yaml:"size_modifiers"`

	// ExtraCorridorChance is the probability of carving a redundant corridor
	// from a random earlier room, creating loops in the level graph.
	ExtraCorridorChance float64 `yaml:"extra_corridor_chance"`
}

// EnemyConfig controls enemy budgets, grouping, and typed spawns.
type EnemyConfig struct {
	MaxBase         int     `yaml:"max_base"`
	ScalingPerDepth int     `yaml:"scaling_per_depth"`
	Cap             int     `yaml:"cap"`
	MinPerLevel     int     `yaml:"min_per_level"`
	DensityPerDepth float64 `yaml:"density_per_depth"`

	MinGroupSize int `yaml:"min_group_size"`
	MaxGroupSize int `yaml:"max_group_size"`

	// TypedMinDepth is the depth from which spawns carry an enemy kind;
	// below it the legacy position-only form is produced.
	TypedMinDepth int `yaml:"typed_min_depth"`

	// KindWeights is the enemy-kind draw table. AdvancedKinds names the
	// subset whose weight is boosted by AdvancedBoostPerDepth per depth.
	KindWeights           map[string]float64 `yaml:"kind_weights"`
	AdvancedKinds         []string           `yaml:"advanced_kinds"`
	AdvancedBoostPerDepth float64            `yaml:"advanced_boost_per_depth"`
}

// ItemConfig controls item distribution.
type ItemConfig struct {
	PerLevelBase int                      `yaml:"per_level_base"`
	PerLevelCap  int                      `yaml:"per_level_cap"`
	PerRoom      map[world.RoomType]Range `yaml:"per_room"`
}

// HazardConfig controls hazard and special-feature density. Counts derive
// from room_count * density, with density itself scaled by depth.
type HazardConfig struct {
	HazardDensity     float64 `yaml:"hazard_density"`
	FeatureDensity    float64 `yaml:"feature_density"`
	DensityDepthScale float64 `yaml:"density_depth_scale"`
}

// ExitConfig controls exit and stairs placement.
type ExitConfig struct {
	MultipleExits bool     `yaml:"multiple_exits"`
	MaxExits      int      `yaml:"max_exits"`
	Kinds         []string `yaml:"kinds"`
}

// PlacementConfig tunes the safe-position search shared by enemy, hazard,
// and feature placement.
type PlacementConfig struct {
	MinStartDistance float64 `yaml:"min_start_distance"`
	SweepRadius      int     `yaml:"sweep_radius"`
	SweepAngles      int     `yaml:"sweep_angles"`
	RandomAttempts   int     `yaml:"random_attempts"`
}

// AdvancedConfig gates and tunes the advanced layer pipeline.
type AdvancedConfig struct {
	Enabled  bool `yaml:"enabled"`
	MinDepth int  `yaml:"min_depth"`

	DramaticRevealChance float64            `yaml:"dramatic_reveal_chance"`
	ZoneFrequencies      map[string]float64 `yaml:"zone_frequencies"`
	SecretChances        map[string]float64 `yaml:"secret_chances"`
	DiscoveryMethods     []string           `yaml:"discovery_methods"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Map: MapConfig{
			BaseWidth:     60,
			BaseHeight:    45,
			ScaleFactor:   1.25,
			MaxMultiplier: 2.0,
		},
		Rooms: RoomConfig{
			MinSize:     6,
			MaxSize:     12,
			MaxRooms:    35,
			MaxRoomsCap: 80,
			TypeWeights: map[world.RoomType]float64{
				world.RoomStandard:  55,
				world.RoomLarge:     10,
				world.RoomTreasure:  8,
				world.RoomChallenge: 8,
				world.RoomArena:     5,
				world.RoomCorridor:  5,
				world.RoomCircular:  4,
				world.RoomIrregular: 3,
				world.RoomPuzzle:    2,
			},
			SizeModifiers: map[world.RoomType]int{
				world.RoomStandard:  0,
				world.RoomLarge:     1,
				world.RoomTreasure:  1,
				world.RoomChallenge: 2,
				world.RoomArena:     3,
				world.RoomCorridor:  0,
				world.RoomCircular:  0,
				world.RoomIrregular: 0,
				world.RoomPuzzle:    1,
			},
			ExtraCorridorChance: 0.3,
		},
		Enemies: EnemyConfig{
			MaxBase:         10,
			ScalingPerDepth: 3,
			Cap:             60,
			MinPerLevel:     1,
			DensityPerDepth: 0.1,
			MinGroupSize:    2,
			MaxGroupSize:    4,
			TypedMinDepth:   3,
			KindWeights: map[string]float64{
				"grunt":    30,
				"scout":    20,
				"brute":    15,
				"archer":   12,
				"mage":     8,
				"elite":    6,
				"assassin": 5,
				"warlock":  4,
			},
			AdvancedKinds:         []string{"elite", "assassin", "warlock"},
			AdvancedBoostPerDepth: 0.1,
		},
		Items: ItemConfig{
			PerLevelBase: 5,
			PerLevelCap:  15,
			PerRoom: map[world.RoomType]Range{
				world.RoomStandard:  {Min: 0, Max: 1},
				world.RoomLarge:     {Min: 0, Max: 1},
				world.RoomTreasure:  {Min: 2, Max: 3},
				world.RoomChallenge: {Min: 1, Max: 1},
				world.RoomArena:     {Min: 1, Max: 2},
				world.RoomBoss:      {Min: 2, Max: 3},
				world.RoomPuzzle:    {Min: 1, Max: 1},
			},
		},
		Hazards: HazardConfig{
			HazardDensity:     0.25,
			FeatureDensity:    0.2,
			DensityDepthScale: 0.05,
		},
		Exits: ExitConfig{
			MultipleExits: true,
			MaxExits:      3,
			Kinds:         []string{"stairs_down", "portal", "ladder", "gateway"},
		},
		Placement: PlacementConfig{
			MinStartDistance: 5,
			SweepRadius:      6,
			SweepAngles:      16,
			RandomAttempts:   20,
		},
		Advanced: AdvancedConfig{
			Enabled:              true,
			MinDepth:             2,
			DramaticRevealChance: 0.2,
			ZoneFrequencies: map[string]float64{
				"safe":      0.1,
				"challenge": 0.2,
				"elite":     0.05,
				"puzzle":    0.1,
				"ambush":    0.15,
			},
			SecretChances: map[string]float64{
				"hidden_room":    0.15,
				"secret_passage": 0.1,
				"treasure_vault": 0.05,
			},
			DiscoveryMethods: []string{"hidden_switch", "cracked_wall", "pressure_plate", "arcane_sight"},
		},
		Biomes: biome.DefaultTable(),
	}
}
