package advanced

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/biome"
	"dungeonforge/pkg/game/generator"
)

// ThemeDefinition describes one architectural style.
type ThemeDefinition struct {
	Name          string
	MinDepth      int
	CorridorWidth int
	CeilingScale  float64

	// PillarFrequency is pillars per 100 tiles of room area.
	// WallRoughness in [0, 1] controls how aggressively room edges erode.
	PillarFrequency float64
	WallRoughness   float64

	Features []string

	// DecorFlags are applied per room with DecorChance each.
	DecorFlags  []string
	DecorChance float64
}

// DefaultThemes returns the built-in architectural themes.
func DefaultThemes() []ThemeDefinition {
	return []ThemeDefinition{
		{
			Name: "fortress", CorridorWidth: 3, CeilingScale: 1.2,
			PillarFrequency: 2, WallRoughness: 0,
			Features:    []string{"banner", "weapon_rack", "arrow_slit"},
			DecorFlags:  []string{"battlements"},
			DecorChance: 0.25,
		},
		{
			Name: "ruins", CorridorWidth: 2, CeilingScale: 1.0,
			PillarFrequency: 1, WallRoughness: 0.4,
			Features:    []string{"collapsed_wall", "rubble", "broken_statue"},
			DecorFlags:  []string{"collapsed_ceiling"},
			DecorChance: 0.2,
		},
		{
			Name: "cavern", CorridorWidth: 2, CeilingScale: 1.5,
			PillarFrequency: 0.5, WallRoughness: 0.6,
			Features:    []string{"stalagmite", "crystal_vein"},
			DecorFlags:  []string{"natural_dome"},
			DecorChance: 0.15,
		},
		{
			Name: "temple", CorridorWidth: 3, CeilingScale: 1.4,
			PillarFrequency: 3, WallRoughness: 0.1,
			Features:    []string{"altar", "brazier", "mosaic"},
			DecorFlags:  []string{"vaulted_ceiling", "stained_glass"},
			DecorChance: 0.2,
		},
		{
			Name: "laboratory", MinDepth: 10, CorridorWidth: 2, CeilingScale: 1.0,
			PillarFrequency: 1, WallRoughness: 0,
			Features:    []string{"alchemy_bench", "specimen_tank", "rune_array"},
			DecorFlags:  []string{"reinforced_walls"},
			DecorChance: 0.2,
		},
		{
			Name: "cathedral", MinDepth: 20, CorridorWidth: 4, CeilingScale: 2.0,
			PillarFrequency: 4, WallRoughness: 0,
			Features:    []string{"grand_altar", "organ_pipes"},
			DecorFlags:  []string{"vaulted_ceiling", "stained_glass"},
			DecorChance: 0.35,
		},
	}
}

// biomePreferences maps each biome to the themes that suit it. Selection
// prefers a suiting theme but falls back to any depth-unlocked one.
var biomePreferences = map[biome.ID][]string{
	biome.Dungeon:       {"fortress", "ruins"},
	biome.Forest:        {"ruins", "temple"},
	biome.Cave:          {"cavern", "ruins"},
	biome.Volcanic:      {"fortress", "laboratory"},
	biome.CrystalCavern: {"cavern", "temple"},
	biome.Necropolis:    {"ruins", "temple"},
	biome.FrozenWastes:  {"fortress", "ruins"},
	biome.ShadowRealm:   {"temple", "laboratory"},
}

// chooseTheme picks an architectural theme for the level's biome, honoring
// depth unlocks.
func (p *Pipeline) chooseTheme(id biome.ID) ThemeDefinition {
	all := DefaultThemes()
	unlocked := make(map[string]ThemeDefinition, len(all))
	for _, t := range all {
		if p.depth >= t.MinDepth {
			unlocked[t.Name] = t
		}
	}

	var candidates []ThemeDefinition
	for _, name := range biomePreferences[id] {
		if t, ok := unlocked[name]; ok {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		names := make([]string, 0, len(unlocked))
		for name := range unlocked {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			candidates = append(candidates, unlocked[name])
		}
	}

	return candidates[p.rng.Intn(len(candidates))]
}

// applyTheme annotates every room with the theme's architecture, raises
// pillars in the bigger rooms, and erodes room edges for organic themes.
// The start room keeps plain architecture so the opening view stays clear.
func (p *Pipeline) applyTheme(result *generator.Result, meta *generator.AdvancedMetadata) {
	theme := p.chooseTheme(result.Biome)
	meta.ThemeName = theme.Name

	occupied := occupiedTiles(result)
	for i, room := range result.Rooms {
		room.CorridorWidth = theme.CorridorWidth
		room.CeilingScale = theme.CeilingScale
		if len(theme.Features) > 0 {
			room.ThemeFeatures = []string{theme.Features[p.rng.Intn(len(theme.Features))]}
		}
		for _, flag := range theme.DecorFlags {
			if p.rng.Float64() < theme.DecorChance {
				room.ThemeFeatures = append(room.ThemeFeatures, flag)
			}
		}
		if i == 0 {
			continue
		}
		p.addPillars(result, room, theme, occupied)
	}

	if theme.WallRoughness > 0 {
		p.roughenWalls(result, theme.WallRoughness)
	}
}

// addPillars raises pillar tiles on random interior points of a room,
// count scaled by room area and the theme's pillar frequency.
func (p *Pipeline) addPillars(result *generator.Result, room *world.Room, theme ThemeDefinition, occupied mapset.Set[world.Point]) {
	area := room.W * room.H
	count := int(float64(area) * theme.PillarFrequency / 100.0)
	for i := 0; i < count; i++ {
		pos := room.RandomPoint(p.rng)
		if occupied.Has(pos) || pos == result.PlayerStart {
			continue
		}
		if result.Grid.IsFloor(pos.X, pos.Y) {
			result.Grid.Set(pos.X, pos.Y, world.TilePillar)
			occupied.Put(pos)
		}
	}
}

// roughenWalls erodes wall tiles bordering room floors where the noise
// field runs hot, giving organic themes ragged room edges. Erosion only
// turns wall into floor, so connectivity never degrades.
func (p *Pipeline) roughenWalls(result *generator.Result, roughness float64) {
	grid := result.Grid
	threshold := 1.0 - roughness*0.5

	for _, room := range result.Rooms {
		edge := world.Rect{X: room.X - 1, Y: room.Y - 1, W: room.W + 2, H: room.H + 2}
		for y := edge.Y; y < edge.Y+edge.H; y++ {
			for x := edge.X; x < edge.X+edge.W; x++ {
				if x <= 0 || y <= 0 || x >= grid.Width()-1 || y >= grid.Height()-1 {
					continue
				}
				if grid.At(x, y) != world.TileWall {
					continue
				}
				n := p.noise.Noise2D(float64(x)/10.0, float64(y)/10.0)
				if (n+1)/2 > threshold {
					grid.Set(x, y, world.TileFloor)
				}
			}
		}
	}
}
