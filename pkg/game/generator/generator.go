// Package generator produces complete dungeon levels: carved tile grids
// populated with rooms, corridors, enemies, items, hazards, and exits.
package generator

import (
	"log/slog"
	"math"
	"math/rand"

	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/biome"
	"dungeonforge/pkg/game/config"
	"dungeonforge/pkg/game/levelgen"
)

// Generator builds one level per call to Generate. All randomness flows
// through the injected source, so the same seed, depth, and configuration
// always produce the same level.
type Generator struct {
	cfg   *config.Config
	depth int
	rng   *rand.Rand
	log   *slog.Logger
}

// New creates a generator for the given depth. Depths below 1 are clamped.
func New(cfg *config.Config, depth int, rng *rand.Rand, log *slog.Logger) *Generator {
	if depth < 1 {
		depth = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &Generator{cfg: cfg, depth: depth, rng: rng, log: log}
}

// Depth returns the depth this generator builds for.
func (g *Generator) Depth() int {
	return g.depth
}

// MapDimensions returns the depth-scaled map size. Both axes scale by
// min(scale_factor^((depth-1)/5), max_multiplier) with a fractional
// exponent, so maps grow smoothly rather than in steps.
func (g *Generator) MapDimensions() (int, int) {
	m := g.cfg.Map
	mult := math.Pow(m.ScaleFactor, float64(g.depth-1)/5.0)
	if mult > m.MaxMultiplier {
		mult = m.MaxMultiplier
	}
	w := int(math.Round(float64(m.BaseWidth) * mult))
	h := int(math.Round(float64(m.BaseHeight) * mult))
	return w, h
}

// Generate builds a complete level. The draw order is fixed: biome, rooms,
// boss room, enemies, items, hazards, features, exits.
func (g *Generator) Generate() *Result {
	width, height := g.MapDimensions()
	grid := world.NewGrid(width, height)

	id := biome.Select(g.rng, g.depth, g.cfg.Biomes)
	def := g.cfg.Biomes.Get(id)

	rooms := g.placeRooms(grid)
	g.placeBossRoom(grid, &rooms)

	start := rooms[0].Center()
	placer := levelgen.NewPlacer(grid, g.rng, start, g.cfg.Placement)

	engine := &levelgen.Engine{Cfg: g.cfg, Depth: g.depth, Rng: g.rng, Placer: placer}
	enemies, groups := engine.PlaceEnemies(rooms)

	items := levelgen.PlaceItems(g.rng, g.cfg, g.depth, rooms, start)
	hazards := levelgen.PlaceHazards(g.rng, g.cfg, g.depth, rooms, def, placer)
	features := levelgen.PlaceFeatures(g.rng, g.cfg, g.depth, rooms, def, placer)
	exits := levelgen.PlaceExits(g.rng, g.cfg, rooms, placer)

	g.log.Debug("level generated",
		"depth", g.depth,
		"biome", string(id),
		"size", []int{width, height},
		"rooms", len(rooms),
		"enemies", len(enemies),
		"items", len(items),
		"exits", len(exits),
	)

	return &Result{
		Grid:        grid,
		PlayerStart: start,
		Rooms:       rooms,
		Biome:       id,
		Enemies:     enemies,
		Groups:      groups,
		Items:       items,
		Exits:       exits,
		Hazards:     hazards,
		Features:    features,
	}
}
