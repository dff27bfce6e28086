// Package advanced layers theme, narrative, difficulty-zone, secret-area,
// and detailing passes on top of the base level generator. Every pass is
// additive metadata or cosmetic carving; a pass that fails leaves the
// level exactly as the previous pass produced it.
package advanced

import (
	"log/slog"
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/zyedidia/generic/mapset"

	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/config"
	"dungeonforge/pkg/game/generator"
)

// Stage identifies one pass of the pipeline.
type Stage int

// Pipeline stages, in execution order.
const (
	StageStructure Stage = iota
	StageTheme
	StageNarrative
	StageDifficultyZones
	StageSecrets
	StageEnvironmentalDetail
	StagePolish
)

func (s Stage) String() string {
	switch s {
	case StageStructure:
		return "structure"
	case StageTheme:
		return "theme"
	case StageNarrative:
		return "narrative"
	case StageDifficultyZones:
		return "difficulty_zones"
	case StageSecrets:
		return "secrets"
	case StageEnvironmentalDetail:
		return "environmental_detail"
	case StagePolish:
		return "polish"
	}
	return "unknown"
}

// Pipeline runs the advanced passes for one level.
type Pipeline struct {
	cfg   *config.Config
	depth int
	rng   *rand.Rand
	log   *slog.Logger
	noise *perlin.Perlin
}

// NewPipeline creates a pipeline. The noise field drives wall roughening
// and decoration scatter and is seeded independently of the main source so
// the two never interleave.
func NewPipeline(cfg *config.Config, depth int, rng *rand.Rand, log *slog.Logger, seed int64) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		cfg:   cfg,
		depth: depth,
		rng:   rng,
		log:   log,
		noise: perlin.NewPerlin(2, 2, 3, seed),
	}
}

// Generate builds the base level and, when the advanced layer is enabled
// for this depth, runs the remaining passes over it. The base structure
// pass always succeeds; the layered passes are individually recoverable.
func (p *Pipeline) Generate() *generator.Result {
	result := generator.New(p.cfg, p.depth, p.rng, p.log).Generate()

	if !p.cfg.Advanced.Enabled || p.depth < p.cfg.Advanced.MinDepth {
		return result
	}

	meta := &generator.AdvancedMetadata{}
	result.Advanced = meta

	p.runStage(StageTheme, func() { p.applyTheme(result, meta) })
	p.runStage(StageNarrative, func() { p.applyNarrative(result, meta) })
	p.runStage(StageDifficultyZones, func() { p.assignZones(result, meta) })
	p.runStage(StageSecrets, func() { p.placeSecrets(result, meta) })
	p.runStage(StageEnvironmentalDetail, func() { p.addDetail(result) })
	p.runStage(StagePolish, func() { p.polish(result) })

	return result
}

// runStage executes one pass, converting a panic into a warning so a
// broken pass degrades the level instead of the whole generation.
func (p *Pipeline) runStage(s Stage, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Warn("generation stage failed", "stage", s.String(), "depth", p.depth, "err", r)
		}
	}()
	fn()
}

// occupiedTiles collects every position already claimed by placed content,
// so carving passes never bury a spawn under a pillar.
func occupiedTiles(result *generator.Result) mapset.Set[world.Point] {
	occupied := mapset.New[world.Point]()
	occupied.Put(result.PlayerStart)
	for _, e := range result.Enemies {
		occupied.Put(e.Pos)
	}
	for _, p := range result.Items {
		occupied.Put(p)
	}
	for _, x := range result.Exits {
		occupied.Put(x.Pos)
	}
	for _, h := range result.Hazards {
		occupied.Put(h.Pos)
	}
	for _, f := range result.Features {
		occupied.Put(f.Pos)
	}
	return occupied
}
