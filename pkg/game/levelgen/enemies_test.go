package levelgen

import (
	"math/rand"
	"testing"

	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/config"
)

func testEngine(t *testing.T, depth int) (*Engine, []*world.Room) {
	t.Helper()
	grid := world.NewGrid(80, 60)
	rooms := []*world.Room{
		world.NewRoom(2, 2, 8, 8, world.RoomStandard),
		world.NewRoom(20, 10, 10, 10, world.RoomStandard),
		world.NewRoom(40, 20, 12, 12, world.RoomArena),
		world.NewRoom(60, 40, 16, 16, world.RoomBoss),
	}
	for _, r := range rooms {
		grid.CarveRect(r.Rect)
	}

	cfg := config.Default()
	rng := rand.New(rand.NewSource(55))
	placer := NewPlacer(grid, rng, rooms[0].Center(), cfg.Placement)
	return &Engine{Cfg: cfg, Depth: depth, Rng: rng, Placer: placer}, rooms
}

func TestPlaceEnemiesSkipsStartRoom(t *testing.T) {
	engine, rooms := testEngine(t, 4)
	spawns, _ := engine.PlaceEnemies(rooms)
	if len(spawns) == 0 {
		t.Fatal("expected spawns")
	}
	for _, s := range spawns {
		if rooms[0].Contains(s.Pos) {
			t.Errorf("spawn at %v inside the start room", s.Pos)
		}
	}
}

func TestBossGroupPlacedBeforeBudgetRunsOut(t *testing.T) {
	engine, rooms := testEngine(t, 2)
	engine.Cfg.Enemies.MaxBase = 2
	engine.Cfg.Enemies.ScalingPerDepth = 0

	spawns, groups := engine.PlaceEnemies(rooms)
	if len(spawns) == 0 {
		t.Fatal("expected spawns")
	}
	if spawns[0].Kind != KindBoss {
		t.Errorf("tight budget should still go to the boss first, got %q", spawns[0].Kind)
	}
	if groups[0].Formation != FormationDefensive {
		t.Errorf("boss group formation %s", groups[0].Formation)
	}
}

func TestGroupSizeRangeScales(t *testing.T) {
	engine, _ := testEngine(t, 1)
	lo, hi := engine.groupSizeRange()
	if lo != 2 || hi != 4 {
		t.Errorf("depth 1 range should be config defaults, got [%d,%d]", lo, hi)
	}

	engine.Depth = 12
	lo, hi = engine.groupSizeRange()
	if lo != 4 || hi != 6 {
		t.Errorf("depth 12 range should scale to [4,6], got [%d,%d]", lo, hi)
	}
}

func TestDrawKindRespectsThreshold(t *testing.T) {
	engine, _ := testEngine(t, 2)
	if kind := engine.drawKind(); kind != "" {
		t.Errorf("below the typed threshold kinds should be empty, got %q", kind)
	}

	engine.Depth = 5
	for i := 0; i < 20; i++ {
		kind := engine.drawKind()
		if kind == "" {
			t.Fatal("typed depth produced an empty kind")
		}
		if _, ok := engine.Cfg.Enemies.KindWeights[string(kind)]; !ok {
			t.Fatalf("kind %q not in the weight table", kind)
		}
	}
}

func TestGroupMembersStayInRoom(t *testing.T) {
	engine, rooms := testEngine(t, 6)
	_, groups := engine.PlaceEnemies(rooms)
	if len(groups) == 0 {
		t.Fatal("expected groups")
	}

	roomOf := func(p world.Point) *world.Room {
		for _, r := range rooms {
			if r.Contains(p) {
				return r
			}
		}
		return nil
	}
	for _, g := range groups {
		for _, m := range g.Members {
			if roomOf(m.Pos) == nil {
				t.Errorf("member at %v outside every room", m.Pos)
			}
		}
	}
}
