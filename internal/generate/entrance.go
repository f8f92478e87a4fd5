package generate

import "rosecrypt/internal/dungeon"

// connectRoomToEdge carves a single entrance hallway from a room to the map
// border. The direction comes from an entrance tag when one is set and is
// otherwise random; the stairs tag skips the entrance entirely. Rooms are
// tried in placement order and the first whose edge path validates becomes
// the entrance room. Returns the entrance room's id.
func (g *Generator) connectRoomToEdge(d *dungeon.Dungeon) (int, bool) {
	// The random draw happens before the tag override so the stream stays
	// aligned across tag selections.
	direction := dungeon.Directions[g.rng.Intn(len(dungeon.Directions))]

	switch {
	case g.settings.Tags.Has(EntranceNorth):
		direction = dungeon.Up
	case g.settings.Tags.Has(EntranceSouth):
		direction = dungeon.Down
	case g.settings.Tags.Has(EntranceWest):
		direction = dungeon.Left
	case g.settings.Tags.Has(EntranceEast):
		direction = dungeon.Right
	case g.settings.Tags.Has(Stairs):
		return -1, false
	}

	for _, room := range g.rooms {
		edge := g.randCell(room.EdgeInDirection(direction))

		var candidate Path
		switch direction {
		case dungeon.Up:
			candidate = Path{edge[0], edge[1] - 1, edge[0], 0}
		case dungeon.Down:
			candidate = Path{edge[0], edge[1] + 1, edge[0], d.Height - 1}
		case dungeon.Left:
			candidate = Path{edge[0] - 1, edge[1], 0, edge[1]}
		default:
			candidate = Path{edge[0] + 1, edge[1], d.Width - 1, edge[1]}
		}

		// The path touches the border on purpose, so bounds checking is
		// off and only the room itself is exempt from collision.
		if g.canConnect(d, candidate, 0, []*Room{room}, true) {
			d.CarveLine(candidate.X1, candidate.Y1, candidate.X2, candidate.Y2)
			room.Type = RoomEntrance
			g.hallways = append(g.hallways, &Hallway{Segments: []Path{candidate}})
			g.log.Infof("carved %v entrance from %v", direction, room)
			return room.ID, true
		}
	}

	g.log.Warnf("could not carve an entrance in direction %v", direction)
	return -1, false
}
