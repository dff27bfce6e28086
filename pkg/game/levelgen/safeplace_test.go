package levelgen

import (
	"math/rand"
	"testing"

	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/config"
)

func testPlacer(t *testing.T, start world.Point) (*Placer, *world.Room) {
	t.Helper()
	grid := world.NewGrid(40, 30)
	room := world.NewRoom(20, 10, 10, 8, world.RoomStandard)
	grid.CarveRect(room.Rect)
	rng := rand.New(rand.NewSource(99))
	return NewPlacer(grid, rng, start, config.Default().Placement), room
}

func TestSafeRules(t *testing.T) {
	placer, room := testPlacer(t, world.Point{X: 2, Y: 2})

	if !placer.Safe(room, world.Point{X: 24, Y: 13}) {
		t.Error("interior floor far from start should be safe")
	}
	if placer.Safe(room, world.Point{X: 5, Y: 5}) {
		t.Error("point outside the room should be unsafe")
	}
	if placer.Safe(room, world.Point{X: -1, Y: -1}) {
		t.Error("out-of-bounds point should be unsafe")
	}
}

func TestSafeRejectsNearStart(t *testing.T) {
	start := world.Point{X: 22, Y: 12}
	placer, room := testPlacer(t, start)

	near := world.Point{X: 23, Y: 12}
	if placer.Safe(room, near) {
		t.Error("point within min start distance should be unsafe")
	}
	if !placer.safeLoose(room, near) {
		t.Error("loose check should accept the same point")
	}
}

func TestResolveExactCandidateConsumesNoRandomness(t *testing.T) {
	placer, room := testPlacer(t, world.Point{X: 2, Y: 2})
	want := world.Point{X: 24, Y: 13}

	before := rand.New(rand.NewSource(99)).Int63()
	got := placer.Resolve(room, want)
	if got != want {
		t.Errorf("safe candidate should resolve to itself, got %v", got)
	}
	if placer.Rng.Int63() != before {
		t.Error("resolving an already safe candidate must not advance the source")
	}
}

func TestResolveSweepsOffUnsafeCandidate(t *testing.T) {
	placer, room := testPlacer(t, world.Point{X: 2, Y: 2})

	// Candidate sits outside the room; the sweep must pull it inside.
	got := placer.Resolve(room, world.Point{X: 19, Y: 13})
	if !placer.Safe(room, got) {
		t.Errorf("resolved point %v is not safe", got)
	}
}

func TestTryResolveFailsOnWalledRoom(t *testing.T) {
	grid := world.NewGrid(40, 30)
	room := world.NewRoom(20, 10, 10, 8, world.RoomStandard) // never carved
	rng := rand.New(rand.NewSource(5))
	placer := NewPlacer(grid, rng, world.Point{X: 2, Y: 2}, config.Default().Placement)

	if _, ok := placer.TryResolve(room, room.Center()); ok {
		t.Error("resolution inside solid rock should fail")
	}
}

func TestRoomEligible(t *testing.T) {
	start := world.Point{X: 2, Y: 2}
	placer, room := testPlacer(t, start)
	if !placer.RoomEligible(room) {
		t.Error("carved room far from start should be eligible")
	}

	nearPlacer, nearRoom := testPlacer(t, nearRoomCenter())
	if nearPlacer.RoomEligible(nearRoom) {
		t.Error("room whose center is at the start should be ineligible")
	}
}

func nearRoomCenter() world.Point {
	return world.NewRoom(20, 10, 10, 8, world.RoomStandard).Center()
}
