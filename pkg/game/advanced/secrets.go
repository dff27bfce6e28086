package advanced

import (
	"sort"

	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/generator"
)

// secretPlacementAttempts bounds the placement search per secret.
const secretPlacementAttempts = 20

// secretRewards lists what each secret kind holds.
var secretRewards = map[string][]string{
	"hidden_room":    {"treasure_cache", "lore_tablet"},
	"secret_passage": {"shortcut"},
	"treasure_vault": {"rare_equipment", "gold_hoard", "enchanted_relic"},
}

// placeSecrets carves hidden areas against the outside of room walls. Each
// configured kind rolls independently; a kind that rolls in picks a random
// base room and side, then searches a bounded number of offsets along that
// side for a spot clear of every room and earlier secret. The carved area
// shares exactly the base room's 1-tile wall border and stays sealed until
// its discovery method reveals it.
func (p *Pipeline) placeSecrets(result *generator.Result, meta *generator.AdvancedMetadata) {
	kinds := make([]string, 0, len(p.cfg.Advanced.SecretChances))
	for kind := range p.cfg.Advanced.SecretChances {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	for _, kind := range kinds {
		if p.rng.Float64() >= p.cfg.Advanced.SecretChances[kind] {
			continue
		}

		w, h := p.secretSize(kind)
		area, ok := p.findSecretSpot(result, meta, w, h)
		if !ok {
			p.log.Debug("no spot for secret", "kind", kind, "depth", p.depth)
			continue
		}

		p.carveSecret(result.Grid, area)

		method := "hidden_switch"
		if len(p.cfg.Advanced.DiscoveryMethods) > 0 {
			method = p.cfg.Advanced.DiscoveryMethods[p.rng.Intn(len(p.cfg.Advanced.DiscoveryMethods))]
		}
		meta.Secrets = append(meta.Secrets, generator.SecretArea{
			Kind:            kind,
			Location:        world.Point{X: area.X, Y: area.Y},
			W:               area.W,
			H:               area.H,
			DiscoveryMethod: method,
			Rewards:         secretRewards[kind],
		})
	}
}

// secretSize draws the dimensions for a secret kind. Passages are long and
// thin with random orientation; rooms and vaults are roughly square.
func (p *Pipeline) secretSize(kind string) (int, int) {
	switch kind {
	case "secret_passage":
		thin := 1 + p.rng.Intn(2)
		long := 5 + p.rng.Intn(6)
		if p.rng.Intn(2) == 0 {
			return long, thin
		}
		return thin, long
	case "treasure_vault":
		return 4 + p.rng.Intn(5), 4 + p.rng.Intn(5)
	default: // hidden_room
		return 3 + p.rng.Intn(4), 3 + p.rng.Intn(4)
	}
}

// findSecretSpot picks a random base room and side, then slides the area
// along that side looking for a placement that is in bounds and clear of
// every room rectangle and every placed secret. One wall tile separates
// the area from the base room's carved floor.
func (p *Pipeline) findSecretSpot(result *generator.Result, meta *generator.AdvancedMetadata, w, h int) (world.Rect, bool) {
	grid := result.Grid

	for attempt := 0; attempt < secretPlacementAttempts; attempt++ {
		base := result.Rooms[p.rng.Intn(len(result.Rooms))]

		var area world.Rect
		switch p.rng.Intn(4) {
		case 0: // north
			area = world.Rect{X: base.X + p.rng.Intn(base.W), Y: base.Y - h - 1, W: w, H: h}
		case 1: // south
			area = world.Rect{X: base.X + p.rng.Intn(base.W), Y: base.Y + base.H + 1, W: w, H: h}
		case 2: // west
			area = world.Rect{X: base.X - w - 1, Y: base.Y + p.rng.Intn(base.H), W: w, H: h}
		default: // east
			area = world.Rect{X: base.X + base.W + 1, Y: base.Y + p.rng.Intn(base.H), W: w, H: h}
		}

		if area.X < 2 || area.Y < 2 ||
			area.X+area.W > grid.Width()-2 || area.Y+area.H > grid.Height()-2 {
			continue
		}

		clear := true
		for _, room := range result.Rooms {
			if area.Intersects(room.Rect, 0) {
				clear = false
				break
			}
		}
		if clear {
			for _, s := range meta.Secrets {
				if area.Intersects(world.Rect{X: s.Location.X, Y: s.Location.Y, W: s.W, H: s.H}, 1) {
					clear = false
					break
				}
			}
		}
		if clear {
			return area, true
		}
	}
	return world.Rect{}, false
}

// carveSecret floors the area and seals it with a wall ring, leaving any
// corridor that already crosses the ring untouched.
func (p *Pipeline) carveSecret(grid *world.Grid, area world.Rect) {
	grid.CarveRect(area)
	for y := area.Y - 1; y <= area.Y+area.H; y++ {
		for x := area.X - 1; x <= area.X+area.W; x++ {
			onRing := x == area.X-1 || x == area.X+area.W || y == area.Y-1 || y == area.Y+area.H
			if onRing && grid.At(x, y) != world.TileFloor {
				grid.Set(x, y, world.TileWall)
			}
		}
	}
}
