package generator

import (
	"sort"

	"dungeonforge/pkg/engine/world"
)

// placeRooms carves the room layout by rejection sampling: each attempt
// draws a typed, sized, positioned room and keeps it only if it clears
// every placed room by at least one wall tile. Each kept room is connected
// to the previous one, with occasional redundant corridors forming loops.
// The first room is always standard and hosts the player start.
func (g *Generator) placeRooms(grid *world.Grid) []*world.Room {
	maxRooms := g.cfg.Rooms.MaxRooms + g.depth*2
	if maxRooms > g.cfg.Rooms.MaxRoomsCap {
		maxRooms = g.cfg.Rooms.MaxRoomsCap
	}

	var rooms []*world.Room
	for attempt := 0; attempt < maxRooms; attempt++ {
		roomType := world.RoomStandard
		if len(rooms) > 0 {
			roomType = g.drawRoomType()
		}

		w, h := g.roomDimensions(grid, roomType)
		if grid.Width()-w-2 < 1 || grid.Height()-h-2 < 1 {
			continue
		}
		x := 1 + g.rng.Intn(grid.Width()-w-2)
		y := 1 + g.rng.Intn(grid.Height()-h-2)
		room := world.NewRoom(x, y, w, h, roomType)

		if overlapsAny(room, rooms) {
			continue
		}

		grid.CarveRect(room.Rect)
		if len(rooms) > 0 {
			CarveCorridor(grid, g.rng, room.Center(), rooms[len(rooms)-1].Center())

			// Redundant loop corridor back to a random earlier room.
			if len(rooms) >= 3 && g.rng.Float64() < g.cfg.Rooms.ExtraCorridorChance {
				target := rooms[g.rng.Intn(len(rooms)-1)]
				CarveCorridor(grid, g.rng, room.Center(), target.Center())
			}
		}
		rooms = append(rooms, room)
	}

	// Every level needs at least the start room.
	if len(rooms) == 0 {
		w, h := g.cfg.Rooms.MinSize, g.cfg.Rooms.MinSize
		room := world.NewRoom(grid.Width()/2-w/2, grid.Height()/2-h/2, w, h, world.RoomStandard)
		grid.CarveRect(room.Rect)
		rooms = append(rooms, room)
	}

	return rooms
}

// drawRoomType draws a room type from the weighted table.
func (g *Generator) drawRoomType() world.RoomType {
	weights := g.cfg.Rooms.TypeWeights
	if len(weights) == 0 {
		return world.RoomStandard
	}

	types := make([]world.RoomType, 0, len(weights))
	for t := range weights {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	total := 0.0
	for _, t := range types {
		total += weights[t]
	}
	if total <= 0 {
		return world.RoomStandard
	}

	roll := g.rng.Float64() * total
	for _, t := range types {
		roll -= weights[t]
		if roll < 0 {
			return t
		}
	}
	return types[len(types)-1]
}

// roomDimensions draws a room size for the type. Corridor rooms stretch to
// a 3:1 aspect, circular rooms square off, and every axis is clamped to a
// quarter of the map so oversized draws still fit.
func (g *Generator) roomDimensions(grid *world.Grid, t world.RoomType) (int, int) {
	min, max := g.cfg.Rooms.MinSize, g.cfg.Rooms.MaxSize
	if mod, ok := g.cfg.Rooms.SizeModifiers[t]; ok {
		max += mod
	}
	if max < min {
		max = min
	}

	w := min + g.rng.Intn(max-min+1)
	h := min + g.rng.Intn(max-min+1)

	switch t {
	case world.RoomCorridor:
		if g.rng.Intn(2) == 0 {
			w, h = w*3, maxInt(3, h/2)
		} else {
			w, h = maxInt(3, w/2), h*3
		}
	case world.RoomCircular:
		s := (w + h) / 2
		w, h = s, s
	}

	w = clampInt(w, 3, grid.Width()/4)
	h = clampInt(h, 3, grid.Height()/4)
	return w, h
}

// placeBossRoom adds an oversized boss room on milestone depths. The room
// is anchored to the last accepted room and tried on each side of it in
// shuffled order; if no side fits, the level simply has no boss room this
// time.
func (g *Generator) placeBossRoom(grid *world.Grid, rooms *[]*world.Room) {
	if g.depth%5 != 0 || len(*rooms) <= 3 {
		return
	}

	size := g.cfg.Rooms.MaxSize + 4
	anchor := (*rooms)[len(*rooms)-1]

	offsets := []world.Point{
		{X: anchor.X + anchor.W + 2, Y: anchor.Y},
		{X: anchor.X - size - 2, Y: anchor.Y},
		{X: anchor.X, Y: anchor.Y + anchor.H + 2},
		{X: anchor.X, Y: anchor.Y - size - 2},
	}
	g.rng.Shuffle(len(offsets), func(i, j int) {
		offsets[i], offsets[j] = offsets[j], offsets[i]
	})

	for _, off := range offsets {
		x := clampInt(off.X, 1, grid.Width()-size-2)
		y := clampInt(off.Y, 1, grid.Height()-size-2)
		room := world.NewRoom(x, y, size, size, world.RoomBoss)
		if overlapsAny(room, *rooms) {
			continue
		}

		grid.CarveRect(room.Rect)
		CarveCorridor(grid, g.rng, room.Center(), anchor.Center())
		*rooms = append(*rooms, room)
		return
	}

	g.log.Debug("boss room skipped, no side fits", "depth", g.depth)
}

func overlapsAny(room *world.Room, rooms []*world.Room) bool {
	for _, other := range rooms {
		if room.Overlaps(other) {
			return true
		}
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
