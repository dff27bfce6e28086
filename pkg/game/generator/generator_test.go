package generator

import (
	"math/rand"
	"reflect"
	"testing"

	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/config"
	"dungeonforge/pkg/game/levelgen"
)

func generate(depth int, seed int64) *Result {
	rng := rand.New(rand.NewSource(seed))
	return New(config.Default(), depth, rng, nil).Generate()
}

func TestGenerateDeterministic(t *testing.T) {
	for _, depth := range []int{1, 5, 12} {
		a := generate(depth, 1234)
		b := generate(depth, 1234)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("depth %d: same seed produced different levels", depth)
		}
	}
}

func TestMapDimensions(t *testing.T) {
	cfg := config.Default()

	cases := []struct {
		depth int
		w, h  int
	}{
		{1, 60, 45},   // multiplier 1.0
		{6, 75, 56},   // 1.25^1
		{11, 94, 70},  // 1.25^2
		{40, 120, 90}, // capped at 2.0
	}
	for _, c := range cases {
		g := New(cfg, c.depth, rand.New(rand.NewSource(1)), nil)
		w, h := g.MapDimensions()
		if w != c.w || h != c.h {
			t.Errorf("depth %d: expected %dx%d, got %dx%d", c.depth, c.w, c.h, w, h)
		}
	}
}

func TestRoomsNeverOverlap(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		result := generate(4, seed)
		for i, a := range result.Rooms {
			for _, b := range result.Rooms[i+1:] {
				if a.Overlaps(b) {
					t.Fatalf("seed %d: rooms %v and %v overlap", seed, a.Rect, b.Rect)
				}
			}
		}
	}
}

func TestStartRoomIsStandard(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		result := generate(3, seed)
		if result.Rooms[0].Type != world.RoomStandard {
			t.Fatalf("seed %d: start room is %s", seed, result.Rooms[0].Type)
		}
		if result.PlayerStart != result.Rooms[0].Center() {
			t.Fatalf("seed %d: player start not at the first room's center", seed)
		}
	}
}

func TestAllRoomCentersReachable(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		result := generate(6, seed)
		reached := result.Grid.ReachableFloor(result.PlayerStart)
		for i, room := range result.Rooms {
			if !reached[room.Center()] {
				t.Fatalf("seed %d: room %d center %v unreachable", seed, i, room.Center())
			}
		}
	}
}

func TestContentRespectsStartDistance(t *testing.T) {
	cfg := config.Default()
	minDist := cfg.Placement.MinStartDistance

	for seed := int64(0); seed < 5; seed++ {
		result := generate(7, seed)
		for _, e := range result.Enemies {
			if e.Pos.DistanceTo(result.PlayerStart) < minDist {
				t.Fatalf("seed %d: enemy at %v too close to start", seed, e.Pos)
			}
		}
		for _, p := range result.Items {
			if p.DistanceTo(result.PlayerStart) < minDist {
				t.Fatalf("seed %d: item at %v too close to start", seed, p)
			}
		}
		for _, h := range result.Hazards {
			if h.Pos.DistanceTo(result.PlayerStart) < minDist {
				t.Fatalf("seed %d: hazard at %v too close to start", seed, h.Pos)
			}
		}
	}
}

func TestContentSitsOnFloor(t *testing.T) {
	result := generate(8, 77)
	check := func(kind string, p world.Point) {
		if !result.Grid.IsFloor(p.X, p.Y) {
			t.Errorf("%s at %v is not on floor", kind, p)
		}
	}
	for _, e := range result.Enemies {
		check("enemy", e.Pos)
	}
	for _, x := range result.Exits {
		check("exit", x.Pos)
	}
	for _, h := range result.Hazards {
		check("hazard", h.Pos)
	}
	for _, f := range result.Features {
		check("feature", f.Pos)
	}
}

func TestContentStaysInsideRooms(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		result := generate(8, seed)
		inRoom := func(p world.Point) bool {
			for _, room := range result.Rooms {
				if room.Contains(p) {
					return true
				}
			}
			return false
		}
		for _, e := range result.Enemies {
			if !inRoom(e.Pos) {
				t.Fatalf("seed %d: enemy at %v outside every room", seed, e.Pos)
			}
		}
		for _, p := range result.Items {
			if !inRoom(p) {
				t.Fatalf("seed %d: item at %v outside every room", seed, p)
			}
		}
		for _, h := range result.Hazards {
			if !inRoom(h.Pos) {
				t.Fatalf("seed %d: hazard at %v outside every room", seed, h.Pos)
			}
		}
		for _, f := range result.Features {
			if !inRoom(f.Pos) {
				t.Fatalf("seed %d: feature at %v outside every room", seed, f.Pos)
			}
		}
	}
}

func TestEnemyBudget(t *testing.T) {
	cfg := config.Default()
	for _, depth := range []int{1, 5, 10, 30} {
		budget := cfg.Enemies.MaxBase + depth*cfg.Enemies.ScalingPerDepth
		if budget > cfg.Enemies.Cap {
			budget = cfg.Enemies.Cap
		}
		result := generate(depth, 42)
		if len(result.Enemies) > budget {
			t.Errorf("depth %d: %d enemies exceed budget %d", depth, len(result.Enemies), budget)
		}
		if len(result.Enemies) < cfg.Enemies.MinPerLevel {
			t.Errorf("depth %d: level has no enemies", depth)
		}
	}
}

func TestItemBudget(t *testing.T) {
	cfg := config.Default()
	for _, depth := range []int{1, 10, 40} {
		budget := cfg.Items.PerLevelBase + depth/2
		if budget > cfg.Items.PerLevelCap {
			budget = cfg.Items.PerLevelCap
		}
		result := generate(depth, 9)
		if len(result.Items) > budget {
			t.Errorf("depth %d: %d items exceed budget %d", depth, len(result.Items), budget)
		}
	}
}

func TestTypedSpawnThreshold(t *testing.T) {
	shallow := generate(1, 21)
	for _, e := range shallow.Enemies {
		if e.Typed() {
			t.Fatalf("depth 1 spawn carries kind %q", e.Kind)
		}
	}

	deep := generate(3, 21)
	if len(deep.Enemies) == 0 {
		t.Fatal("expected enemies at depth 3")
	}
	for _, e := range deep.Enemies {
		if !e.Typed() {
			t.Fatal("depth 3 spawn missing its kind")
		}
	}
}

func TestBossRoomContract(t *testing.T) {
	found := false
	for seed := int64(0); seed < 20 && !found; seed++ {
		result := generate(5, seed)

		var bossRoom *world.Room
		for _, room := range result.Rooms {
			if room.Type == world.RoomBoss {
				bossRoom = room
				break
			}
		}
		if bossRoom == nil {
			continue
		}
		found = true

		bosses := 0
		for _, e := range result.Enemies {
			if e.Kind == levelgen.KindBoss {
				bosses++
				if e.Pos != bossRoom.Center() {
					t.Errorf("seed %d: boss anchored at %v, not the room center", seed, e.Pos)
				}
			}
		}
		if bosses != 1 {
			t.Errorf("seed %d: expected exactly one boss, got %d", seed, bosses)
		}

		for _, g := range result.Groups {
			if len(g.Members) > 0 && g.Members[0].Kind == levelgen.KindBoss {
				if g.Formation != levelgen.FormationDefensive {
					t.Errorf("seed %d: boss group formation %s", seed, g.Formation)
				}
				if len(g.Members) > 5 {
					t.Errorf("seed %d: boss ring has %d members, max is boss plus four", seed, len(g.Members))
				}
			}
		}
	}
	if !found {
		t.Error("no boss room generated across 20 seeds at depth 5")
	}
}

func TestNoBossRoomOffMilestone(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		result := generate(4, seed)
		for _, room := range result.Rooms {
			if room.Type == world.RoomBoss {
				t.Fatalf("seed %d: boss room at depth 4", seed)
			}
		}
	}
}

func TestEveryLevelHasAnExit(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		result := generate(2, seed)
		if len(result.Exits) == 0 {
			t.Fatalf("seed %d: level has no exit", seed)
		}
		for _, x := range result.Exits {
			if !result.Grid.InBounds(x.Pos.X, x.Pos.Y) {
				t.Fatalf("seed %d: exit out of bounds at %v", seed, x.Pos)
			}
		}
	}
}

func TestSingleRoomLevelGetsCornerExit(t *testing.T) {
	cfg := config.Default()
	cfg.Rooms.MaxRooms = 1
	cfg.Rooms.MaxRoomsCap = 1

	rng := rand.New(rand.NewSource(13))
	result := New(cfg, 1, rng, nil).Generate()
	if len(result.Rooms) != 1 {
		t.Fatalf("expected a single room, got %d", len(result.Rooms))
	}
	if len(result.Exits) != 1 {
		t.Fatalf("expected a single exit, got %d", len(result.Exits))
	}
	room := result.Rooms[0]
	want := world.Point{X: room.X + 1, Y: room.Y + 1}
	if result.Exits[0].Pos != want {
		t.Errorf("expected corner exit at %v, got %v", want, result.Exits[0].Pos)
	}
	if result.Exits[0].Kind != "stairs_down" {
		t.Errorf("single-room exit should be stairs_down, got %s", result.Exits[0].Kind)
	}
}

func TestBiomeComesFromTable(t *testing.T) {
	cfg := config.Default()
	result := generate(6, 3)
	if _, ok := cfg.Biomes[result.Biome]; !ok {
		t.Errorf("level biome %q not in the configured table", result.Biome)
	}
}
