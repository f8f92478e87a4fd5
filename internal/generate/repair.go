package generate

import (
	"math"

	"rosecrypt/internal/dungeon"
)

// placeMissingHallways reconnects rooms stranded by the main connection
// pass. Reachability is computed from the entrance room (or the first room
// when no entrance exists); each stranded room is linked to the nearest
// reachable one, and the reachable set grows by the repaired room's own
// closure. Returns true once every room is reachable.
func (g *Generator) placeMissingHallways(d *dungeon.Dungeon) bool {
	root := g.rooms[0]
	for _, room := range g.rooms {
		if room.Type == RoomEntrance {
			root = room
			break
		}
	}
	reachable := root.ReachableFrom(g.rooms)

	for _, room := range g.rooms {
		if reachable[room.ID] {
			continue
		}

		var closest *Room
		shortest := math.MaxInt
		cx, cy := room.Center()
		for _, other := range g.rooms {
			if !reachable[other.ID] {
				continue
			}
			ox, oy := other.Center()
			if dist := manhattan(cx, cy, ox, oy); dist < shortest {
				closest = other
				shortest = dist
			}
		}
		if closest == nil {
			continue
		}

		hallway := g.connectAdjacentRooms(d, room, closest)
		if hallway == nil {
			hallway = g.connectRooms(d, room, closest)
		}
		if hallway == nil {
			continue
		}

		g.hallways = append(g.hallways, hallway)
		if g.allRoomsConnected() {
			g.log.Infof("connected all missing sections to the entrance")
			return true
		}
		for id := range room.ReachableFrom(g.rooms) {
			reachable[id] = true
		}
	}

	g.log.Warnf("could not connect all sections to the entrance")
	return false
}
