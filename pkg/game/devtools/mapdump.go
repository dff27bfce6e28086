// Package devtools provides developer tools for inspecting generated levels.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"

	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/generator"
	"dungeonforge/pkg/game/levelgen"
)

const mapDumpFilename = "map.txt"

// tileSymbol returns the single-character symbol for a position with no
// content overlay.
func tileSymbol(result *generator.Result, x, y int) rune {
	switch result.Grid.At(x, y) {
	case world.TileFloor:
		return '.'
	case world.TilePillar:
		return 'O'
	default:
		return '#'
	}
}

// overlaySymbol returns the content symbol for a position, or 0 when the
// position holds no content. Precedence follows gameplay weight: player
// start, exits, enemies, items, hazards, features.
func overlaySymbol(result *generator.Result, p world.Point) rune {
	if p == result.PlayerStart {
		return '@'
	}
	for _, e := range result.Exits {
		if e.Pos == p {
			return '>'
		}
	}
	for _, e := range result.Enemies {
		if e.Pos == p {
			if e.Kind == levelgen.KindBoss {
				return 'B'
			}
			return 'e'
		}
	}
	for _, it := range result.Items {
		if it == p {
			return 'i'
		}
	}
	for _, h := range result.Hazards {
		if h.Pos == p {
			return '^'
		}
	}
	for _, f := range result.Features {
		if f.Pos == p {
			return '*'
		}
	}
	return 0
}

// writeMapGrid writes the level glyphs to f, content overlaid on tiles.
func writeMapGrid(f *os.File, result *generator.Result) {
	for y := 0; y < result.Grid.Height(); y++ {
		for x := 0; x < result.Grid.Width(); x++ {
			sym := overlaySymbol(result, world.Point{X: x, Y: y})
			if sym == 0 {
				sym = tileSymbol(result, x, y)
			}
			fmt.Fprintf(f, "%c", sym)
		}
		fmt.Fprintln(f)
	}
}

// DumpMap writes a text snapshot of the level into dir: a metadata header
// followed by the glyph grid. Returns the written file's path.
func DumpMap(result *generator.Result, depth int, dir string) (string, error) {
	path := filepath.Join(dir, mapDumpFilename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create map dump: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "depth: %d\n", depth)
	fmt.Fprintf(f, "biome: %s\n", result.Biome)
	fmt.Fprintf(f, "size: %dx%d\n", result.Grid.Width(), result.Grid.Height())
	fmt.Fprintf(f, "rooms: %d  enemies: %d  items: %d  exits: %d\n",
		len(result.Rooms), len(result.Enemies), len(result.Items), len(result.Exits))
	if result.Advanced != nil {
		fmt.Fprintf(f, "theme: %s  zones: %d  secrets: %d\n",
			result.Advanced.ThemeName, len(result.Advanced.Zones), len(result.Advanced.Secrets))
	}
	fmt.Fprintln(f)

	writeMapGrid(f, result)
	return path, nil
}
