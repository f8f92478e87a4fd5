package generate

import "rosecrypt/internal/dungeon"

// placeWalls emits a unit wall segment on every floor tile side whose
// neighbor is void or out of bounds. Each tile only claims its own exposed
// sides, so shared edges between floor tiles never produce a wall and no
// deduplication is needed. Tiles are scanned row-major for a stable order.
func (g *Generator) placeWalls(d *dungeon.Dungeon) {
	g.log.Infof("starting to place walls")

	var walls []dungeon.WallSegment
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			if !d.FloorAt(x, y) {
				continue
			}
			if !d.FloorAt(x, y-1) {
				walls = append(walls, dungeon.NewWall(x, y, x+1, y))
			}
			if !d.FloorAt(x, y+1) {
				walls = append(walls, dungeon.NewWall(x, y+1, x+1, y+1))
			}
			if !d.FloorAt(x-1, y) {
				walls = append(walls, dungeon.NewWall(x, y, x, y+1))
			}
			if !d.FloorAt(x+1, y) {
				walls = append(walls, dungeon.NewWall(x+1, y, x+1, y+1))
			}
		}
	}

	g.log.Infof("finished placing %d walls", len(walls))
	d.Walls = walls
}
