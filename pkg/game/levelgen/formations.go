package levelgen

import (
	"math"
	"math/rand"

	"dungeonforge/pkg/engine/world"
)

// chooseFormation picks a formation appropriate to the room type and
// group size. Challenge and arena rooms favor tactical shapes; larger
// groups unlock the ring and wedge patterns everywhere.
func chooseFormation(rng *rand.Rand, roomType world.RoomType, groupSize int) Formation {
	var formations []Formation
	switch roomType {
	case world.RoomChallenge, world.RoomArena:
		formations = []Formation{FormationLine, FormationWedge, FormationCircle, FormationAmbush}
	default:
		formations = []Formation{FormationCluster, FormationLine, FormationPatrol}
	}

	if groupSize >= 4 {
		formations = append(formations, FormationCircle, FormationWedge)
	}

	return formations[rng.Intn(len(formations))]
}

// formationOffsets computes the target positions for count members of a
// formation around center. Targets are desired positions only; each one
// still goes through the safe-position search. Ambush and patrol scatter
// uniformly over the room instead of using a fixed shape.
func formationOffsets(rng *rand.Rand, room *world.Room, center world.Point, count int, f Formation) []world.Point {
	targets := make([]world.Point, 0, count)

	switch f {
	case FormationCluster:
		for i := 0; i < count; i++ {
			targets = append(targets, world.Point{
				X: center.X + rng.Intn(7) - 3,
				Y: center.Y + rng.Intn(7) - 3,
			})
		}

	case FormationLine:
		const spacing = 2
		startX := center.X - (count-1)*spacing/2
		for i := 0; i < count; i++ {
			targets = append(targets, world.Point{X: startX + i*spacing, Y: center.Y})
		}

	case FormationCircle:
		targets = append(targets, ringPoints(center, 3, count)...)

	case FormationDefensive:
		targets = append(targets, ringPoints(center, 4, count)...)

	case FormationWedge:
		for i := 0; i < count; i++ {
			if i == 0 {
				// Leader at the tip.
				targets = append(targets, world.Point{X: center.X, Y: center.Y - 1})
				continue
			}
			side := 1
			if i%2 == 0 {
				side = -1
			}
			row := (i + 1) / 2
			targets = append(targets, world.Point{
				X: center.X + side*row*2,
				Y: center.Y + row*2,
			})
		}

	default: // FormationAmbush, FormationPatrol
		for i := 0; i < count; i++ {
			targets = append(targets, room.RandomPoint(rng))
		}
	}

	return targets
}

// ringPoints returns count points evenly spaced on a circle of the given
// radius around center.
func ringPoints(center world.Point, radius float64, count int) []world.Point {
	points := make([]world.Point, 0, count)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		points = append(points, world.Point{
			X: center.X + int(math.Round(radius*math.Cos(angle))),
			Y: center.Y + int(math.Round(radius*math.Sin(angle))),
		})
	}
	return points
}
