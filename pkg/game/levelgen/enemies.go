package levelgen

import (
	"math/rand"
	"sort"

	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/config"
)

// Engine places tactical enemy groups room by room, respecting the global
// enemy budget and the minimum spawn distance from the player start.
type Engine struct {
	Cfg    *config.Config
	Depth  int
	Rng    *rand.Rand
	Placer *Placer
}

// PlaceEnemies walks the rooms in placement order (skipping the start
// room), computes each room's quota, and fills it with formation groups.
// Returns the flat spawn list and the groups it was built from.
func (e *Engine) PlaceEnemies(rooms []*world.Room) ([]EnemySpawn, []EnemyGroup) {
	var spawns []EnemySpawn
	var groups []EnemyGroup

	maxEnemies := e.Cfg.Enemies.MaxBase + e.Depth*e.Cfg.Enemies.ScalingPerDepth
	if maxEnemies > e.Cfg.Enemies.Cap {
		maxEnemies = e.Cfg.Enemies.Cap
	}
	density := 1.0 + float64(e.Depth)*e.Cfg.Enemies.DensityPerDepth

	// Boss rooms draw from the budget first so a crowded level never
	// leaves its boss room empty.
	ordered := make([]*world.Room, 0, len(rooms))
	for i, room := range rooms {
		if i > 0 && room.Type == world.RoomBoss {
			ordered = append(ordered, room)
		}
	}
	for i, room := range rooms {
		if i > 0 && room.Type != world.RoomBoss {
			ordered = append(ordered, room)
		}
	}

	for _, room := range ordered {
		if !e.Placer.RoomEligible(room) {
			continue
		}

		base := e.roomEnemyCount(room)
		quota := int(float64(base) * density)
		if remaining := maxEnemies - len(spawns); quota > remaining {
			quota = remaining
		}
		if quota <= 0 {
			continue
		}

		for _, group := range e.buildGroups(room, quota) {
			groups = append(groups, group)
			spawns = append(spawns, group.Members...)
		}
		if len(spawns) >= maxEnemies {
			break
		}
	}

	// A level with eligible rooms never comes up empty.
	if len(spawns) < e.Cfg.Enemies.MinPerLevel {
		if room := e.firstEligibleRoom(rooms); room != nil {
			pos := e.Placer.Resolve(room, room.RandomPoint(e.Rng))
			group := EnemyGroup{
				Formation: FormationPatrol,
				Anchor:    pos,
				Members:   []EnemySpawn{{Kind: e.drawKind(), Pos: pos}},
			}
			groups = append(groups, group)
			spawns = append(spawns, group.Members...)
		}
	}

	return spawns, groups
}

// roomEnemyCount draws the base enemy count for a room. Ranges widen with
// depth; treasure rooms stay lightly guarded.
func (e *Engine) roomEnemyCount(room *world.Room) int {
	d := e.Depth
	switch room.Type {
	case world.RoomChallenge:
		return 3 + e.Rng.Intn(3+d/2)
	case world.RoomArena:
		return 5 + e.Rng.Intn(4+d/2)
	case world.RoomBoss:
		return 3 + e.Rng.Intn(3+d/3)
	case world.RoomTreasure:
		return e.Rng.Intn(3)
	case world.RoomLarge:
		return 2 + e.Rng.Intn(3+d/3)
	default:
		return 1 + e.Rng.Intn(3+d/3)
	}
}

// buildGroups greedily splits a room quota into tactical groups. Boss
// rooms first place the boss anchor at the room center with up to four
// supports on a defensive ring.
func (e *Engine) buildGroups(room *world.Room, quota int) []EnemyGroup {
	var groups []EnemyGroup
	remaining := quota

	if room.Type == world.RoomBoss {
		anchor := room.Center()
		boss := EnemyGroup{
			Formation: FormationDefensive,
			Anchor:    anchor,
			Members:   []EnemySpawn{{Kind: KindBoss, Pos: anchor}},
		}
		support := remaining - 1
		if support > 4 {
			support = 4
		}
		if support > 0 {
			for _, target := range formationOffsets(e.Rng, room, anchor, support, FormationDefensive) {
				boss.Members = append(boss.Members, EnemySpawn{
					Kind: e.drawKind(),
					Pos:  e.Placer.Resolve(room, target),
				})
			}
		}
		groups = append(groups, boss)
		remaining -= len(boss.Members)
	}

	minSize, maxSize := e.groupSizeRange()
	for remaining > 0 {
		size := minSize + e.Rng.Intn(maxSize-minSize+1)
		if size > remaining {
			size = remaining
		}
		if size <= 0 {
			break
		}

		formation := chooseFormation(e.Rng, room.Type, size)
		anchor := room.RandomPoint(e.Rng)

		group := EnemyGroup{Formation: formation, Anchor: anchor}
		for _, target := range formationOffsets(e.Rng, room, anchor, size, formation) {
			group.Members = append(group.Members, EnemySpawn{
				Kind: e.drawKind(),
				Pos:  e.Placer.Resolve(room, target),
			})
		}

		groups = append(groups, group)
		remaining -= size
	}

	return groups
}

// groupSizeRange returns the depth-scaled [min, max] group size.
func (e *Engine) groupSizeRange() (int, int) {
	minSize := e.Cfg.Enemies.MinGroupSize
	if scaled := e.Depth / 3; scaled > minSize {
		minSize = scaled
	}
	maxSize := e.Cfg.Enemies.MaxGroupSize
	if scaled := e.Depth / 2; scaled > maxSize {
		maxSize = scaled
	}
	if maxSize < minSize {
		maxSize = minSize
	}
	return minSize, maxSize
}

// drawKind draws an enemy kind from the weighted table, boosting the
// advanced kinds by depth. Below the typed-spawn threshold it returns the
// empty legacy kind.
func (e *Engine) drawKind() EnemyKind {
	cfg := e.Cfg.Enemies
	if e.Depth < cfg.TypedMinDepth || len(cfg.KindWeights) == 0 {
		return ""
	}

	kinds := make([]string, 0, len(cfg.KindWeights))
	for kind := range cfg.KindWeights {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	boost := 1.0 + float64(e.Depth)*cfg.AdvancedBoostPerDepth
	weight := func(kind string) float64 {
		w := cfg.KindWeights[kind]
		for _, adv := range cfg.AdvancedKinds {
			if kind == adv {
				return w * boost
			}
		}
		return w
	}

	total := 0.0
	for _, kind := range kinds {
		total += weight(kind)
	}
	if total <= 0 {
		return ""
	}

	roll := e.Rng.Float64() * total
	for _, kind := range kinds {
		roll -= weight(kind)
		if roll < 0 {
			return EnemyKind(kind)
		}
	}
	return EnemyKind(kinds[len(kinds)-1])
}

// firstEligibleRoom returns the first non-start room that can host
// distance-checked spawns, or nil.
func (e *Engine) firstEligibleRoom(rooms []*world.Room) *world.Room {
	for i, room := range rooms {
		if i == 0 {
			continue
		}
		if e.Placer.RoomEligible(room) {
			return room
		}
	}
	return nil
}
