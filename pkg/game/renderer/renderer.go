// Package renderer draws generated levels to the terminal.
package renderer

import (
	"strings"

	"github.com/gookit/color"

	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/biome"
	"dungeonforge/pkg/game/generator"
	"dungeonforge/pkg/game/levelgen"
)

// Level glyphs.
const (
	IconPlayer  = "@"
	IconWall    = "#"
	IconFloor   = "."
	IconPillar  = "O"
	IconExit    = ">"
	IconBoss    = "B"
	IconEnemy   = "e"
	IconItem    = "i"
	IconHazard  = "^"
	IconFeature = "*"
)

// biomeWallColors tints the walls per biome so levels read differently at
// a glance.
var biomeWallColors = map[biome.ID]color.Color{
	biome.Dungeon:       color.Gray,
	biome.Forest:        color.Green,
	biome.Cave:          color.Yellow,
	biome.Volcanic:      color.Red,
	biome.CrystalCavern: color.Cyan,
	biome.Necropolis:    color.White,
	biome.FrozenWastes:  color.LightBlue,
	biome.ShadowRealm:   color.Magenta,
}

// Render draws the level as colored terminal text, content overlaid on the
// tile grid.
func Render(result *generator.Result) string {
	wall := biomeWallColors[result.Biome]
	if wall == 0 {
		wall = color.Gray
	}

	overlays := buildOverlays(result)

	var b strings.Builder
	for y := 0; y < result.Grid.Height(); y++ {
		for x := 0; x < result.Grid.Width(); x++ {
			if s, ok := overlays[world.Point{X: x, Y: y}]; ok {
				b.WriteString(s)
				continue
			}
			switch result.Grid.At(x, y) {
			case world.TileFloor:
				b.WriteString(IconFloor)
			case world.TilePillar:
				b.WriteString(color.White.Render(IconPillar))
			default:
				b.WriteString(wall.Render(IconWall))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// buildOverlays maps each content position to its colored glyph. Earlier
// writes win, so the order sets the display precedence.
func buildOverlays(result *generator.Result) map[world.Point]string {
	overlays := make(map[world.Point]string)
	put := func(p world.Point, s string) {
		if _, ok := overlays[p]; !ok {
			overlays[p] = s
		}
	}

	put(result.PlayerStart, color.Bold.Render(IconPlayer))
	for _, e := range result.Exits {
		put(e.Pos, color.LightGreen.Render(IconExit))
	}
	for _, e := range result.Enemies {
		if e.Kind == levelgen.KindBoss {
			put(e.Pos, color.LightRed.Render(IconBoss))
		} else {
			put(e.Pos, color.Red.Render(IconEnemy))
		}
	}
	for _, p := range result.Items {
		put(p, color.LightYellow.Render(IconItem))
	}
	for _, h := range result.Hazards {
		put(h.Pos, color.LightMagenta.Render(IconHazard))
	}
	for _, f := range result.Features {
		put(f.Pos, color.LightCyan.Render(IconFeature))
	}
	return overlays
}
