// Package levelgen places enemies, items, hazards, features, and exits
// into an already carved room layout.
package levelgen

import "dungeonforge/pkg/engine/world"

// EnemyKind names an enemy archetype. The empty kind is the legacy
// position-only spawn form used below the typed-spawn depth threshold.
type EnemyKind string

// KindBoss tags the single boss anchor of a boss room.
const KindBoss EnemyKind = "boss"

// EnemySpawn describes one enemy to create. Kind is empty for legacy
// spawns; boss anchors always carry KindBoss.
type EnemySpawn struct {
	Kind EnemyKind   `yaml:"kind,omitempty"`
	Pos  world.Point `yaml:"pos"`
}

// Typed reports whether the spawn carries an enemy kind.
func (s EnemySpawn) Typed() bool {
	return s.Kind != ""
}

// Formation is a named spatial pattern for a tactical enemy group.
type Formation string

// Formations.
const (
	FormationCluster   Formation = "cluster"
	FormationLine      Formation = "line"
	FormationCircle    Formation = "circle"
	FormationWedge     Formation = "wedge"
	FormationDefensive Formation = "defensive"
	FormationAmbush    Formation = "ambush"
	FormationPatrol    Formation = "patrol"
)

// EnemyGroup is a tactical group: a formation laid out around an anchor.
type EnemyGroup struct {
	Formation Formation    `yaml:"formation"`
	Anchor    world.Point  `yaml:"anchor"`
	Members   []EnemySpawn `yaml:"members"`
}

// ExitSpawn describes one level exit.
type ExitSpawn struct {
	Kind string      `yaml:"kind"`
	Pos  world.Point `yaml:"pos"`
}

// HazardSpawn describes one environmental hazard.
type HazardSpawn struct {
	Kind string      `yaml:"kind"`
	Pos  world.Point `yaml:"pos"`
}

// FeatureSpawn describes one special feature.
type FeatureSpawn struct {
	Kind string      `yaml:"kind"`
	Pos  world.Point `yaml:"pos"`
}
