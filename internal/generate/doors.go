package generate

import "rosecrypt/internal/dungeon"

// placeDoors derives doors from hallway stubs. The first one or two
// segments of a hallway sit directly outside the rooms they join; a door
// goes on each such endpoint that lies exactly one tile off a room edge.
// Positions are deduplicated, one door per cell.
func (g *Generator) placeDoors(d *dungeon.Dungeon) {
	g.log.Infof("starting to place doors")

	var doors []dungeon.Door
	placed := make(map[[2]int]bool)

	for _, hallway := range g.hallways {
		endpoints := hallway.Segments[:1]
		if len(hallway.Segments) > 1 {
			endpoints = hallway.Segments[:2]
		}

		for _, endpoint := range endpoints {
			x, y := endpoint.X1, endpoint.Y1
			for _, room := range g.rooms {
				if !room.ContainsPoint(x, y, 1) {
					continue
				}
				if placed[[2]int{x, y}] {
					continue
				}

				var facing dungeon.Direction
				switch {
				case x == room.X1-1:
					facing = dungeon.Right
				case x == room.X2:
					facing = dungeon.Left
				case y == room.Y1-1:
					facing = dungeon.Down
				case y == room.Y2:
					facing = dungeon.Up
				default:
					// A corner point, not flush with an edge.
					continue
				}

				doors = append(doors, dungeon.Door{X: x, Y: y, Facing: facing, Material: dungeon.DoorWood})
				placed[[2]int{x, y}] = true
				break
			}
		}
	}

	g.log.Infof("finished placing %d doors", len(doors))
	d.Doors = doors
}
