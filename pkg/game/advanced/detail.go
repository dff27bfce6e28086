package advanced

import (
	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/generator"
	"dungeonforge/pkg/game/levelgen"
)

// maxDecorPerRoom caps noise-driven decorations so busy rooms stay readable.
const maxDecorPerRoom = 2

// addDetail scatters the biome's decoration over room floors where the
// noise field runs hot, skipping tiles already claimed by content. The
// start room stays undecorated.
func (p *Pipeline) addDetail(result *generator.Result) {
	decoration := p.cfg.Biomes.Get(result.Biome).Decoration
	if decoration == "" {
		return
	}

	occupied := occupiedTiles(result)
	for _, room := range result.Rooms[1:] {
		placed := 0
		for y := room.Y + 1; y < room.Y+room.H-1 && placed < maxDecorPerRoom; y++ {
			for x := room.X + 1; x < room.X+room.W-1 && placed < maxDecorPerRoom; x++ {
				if !result.Grid.IsFloor(x, y) {
					continue
				}
				pos := world.Point{X: x, Y: y}
				if occupied.Has(pos) {
					continue
				}
				if pos.DistanceTo(result.PlayerStart) < p.cfg.Placement.MinStartDistance {
					continue
				}
				n := p.noise.Noise2D(float64(x)/4.0, float64(y)/4.0)
				if (n+1)/2 > 0.8 {
					result.Features = append(result.Features, levelgen.FeatureSpawn{Kind: decoration, Pos: pos})
					occupied.Put(pos)
					placed++
				}
			}
		}
	}
}
