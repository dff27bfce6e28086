package generator

import (
	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/biome"
	"dungeonforge/pkg/game/levelgen"
)

// Result is one fully generated level.
type Result struct {
	Grid        *world.Grid   `yaml:"-"`
	PlayerStart world.Point   `yaml:"player_start"`
	Rooms       []*world.Room `yaml:"-"`
	Biome       biome.ID      `yaml:"biome"`

	Enemies  []levelgen.EnemySpawn   `yaml:"enemies"`
	Groups   []levelgen.EnemyGroup   `yaml:"groups"`
	Items    []world.Point           `yaml:"items"`
	Exits    []levelgen.ExitSpawn    `yaml:"exits"`
	Hazards  []levelgen.HazardSpawn  `yaml:"hazards,omitempty"`
	Features []levelgen.FeatureSpawn `yaml:"features,omitempty"`

	// Advanced is nil when the advanced layer pipeline did not run.
	Advanced *AdvancedMetadata `yaml:"advanced,omitempty"`
}

// AdvancedMetadata records what the advanced layer passes did to a level.
// NarrativeRoles lists the assigned room roles in room placement order.
type AdvancedMetadata struct {
	ThemeName      string           `yaml:"theme"`
	NarrativeRoles []string         `yaml:"narrative_roles,omitempty"`
	Zones          []DifficultyZone `yaml:"zones,omitempty"`
	Secrets        []SecretArea     `yaml:"secrets,omitempty"`
}

// DifficultyZone marks a region whose encounters deviate from the level
// baseline by Multiplier.
type DifficultyZone struct {
	Kind       string     `yaml:"kind"`
	Area       world.Rect `yaml:"area"`
	Multiplier float64    `yaml:"multiplier"`
	Rules      []string   `yaml:"rules,omitempty"`
}

// SecretArea is a hidden region carved outside the regular rooms.
type SecretArea struct {
	Kind            string      `yaml:"kind"`
	Location        world.Point `yaml:"location"`
	W               int         `yaml:"w"`
	H               int         `yaml:"h"`
	DiscoveryMethod string      `yaml:"discovery_method"`
	Rewards         []string    `yaml:"rewards,omitempty"`
}
