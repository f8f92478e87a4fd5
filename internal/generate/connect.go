package generate

import (
	"math"

	"rosecrypt/internal/dungeon"
)

// routeAttempts bounds both the outer retry loop of a routed connection and
// the inner search for an untried edge-cell pair.
const routeAttempts = 100

// placeHallways links rooms into a growing tree: starting from the first
// room, repeatedly connect the nearest unlinked room, falling back to any
// already-linked room when the nearest pair cannot be joined. Returns false
// when at least one room had to be skipped; skipped rooms stay disconnected
// until the repair pass.
func (g *Generator) placeHallways(d *dungeon.Dungeon) bool {
	g.log.Infof("starting to connect rooms")

	connected := map[int]bool{g.rooms[0].ID: true}
	remaining := make(map[int]bool, len(g.rooms)-1)
	for _, room := range g.rooms[1:] {
		remaining[room.ID] = true
	}
	current := g.rooms[0].ID
	failure := false

	for len(remaining) > 0 {
		nearest := -1
		nearestDist := math.MaxInt
		cx, cy := g.rooms[current].Center()

		// Scan in ascending id order so ties break deterministically.
		for _, room := range g.rooms {
			if !remaining[room.ID] {
				continue
			}
			ox, oy := room.Center()
			if dist := manhattan(cx, cy, ox, oy); dist < nearestDist {
				nearest = room.ID
				nearestDist = dist
			}
		}

		hallway := g.connectAdjacentRooms(d, g.rooms[current], g.rooms[nearest])
		if hallway != nil {
			g.log.Debugf("connected adjacent: %v to %v", g.rooms[current], g.rooms[nearest])
		} else {
			hallway = g.connectRooms(d, g.rooms[current], g.rooms[nearest])
			if hallway != nil {
				g.log.Debugf("connected nearest: %v to %v", g.rooms[current], g.rooms[nearest])
			}
		}

		if hallway == nil {
			g.log.Infof("could not connect %v to %v, trying alternatives",
				g.rooms[current], g.rooms[nearest])
			hallway = g.connectToAnyLinked(d, g.rooms[nearest], connected)
		}

		if hallway == nil {
			g.log.Warnf("could not connect %v to any other room", g.rooms[nearest])
			delete(remaining, nearest)
			current = nearest
			failure = true
			continue
		}

		g.hallways = append(g.hallways, hallway)
		connected[nearest] = true
		delete(remaining, nearest)
		current = nearest
	}

	g.log.Infof("finished connecting rooms")
	return !failure
}

// connectToAnyLinked retries the room against every already-linked room in
// order of increasing center distance, ties broken by lower id.
func (g *Generator) connectToAnyLinked(d *dungeon.Dungeon, room *Room, connected map[int]bool) *Hallway {
	cx, cy := room.Center()
	candidates := make([]*Room, 0, len(connected))
	for _, other := range g.rooms {
		if connected[other.ID] {
			candidates = append(candidates, other)
		}
	}
	// Candidates arrive in ascending id order; a stable sort keeps that as
	// the tie-break.
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0; j-- {
			ax, ay := candidates[j-1].Center()
			bx, by := candidates[j].Center()
			if manhattan(cx, cy, ax, ay) <= manhattan(cx, cy, bx, by) {
				break
			}
			candidates[j-1], candidates[j] = candidates[j], candidates[j-1]
		}
	}

	for _, alt := range candidates {
		if hallway := g.connectAdjacentRooms(d, room, alt); hallway != nil {
			g.log.Debugf("connected adjacent alternative: %v to %v", room, alt)
			return hallway
		}
		if hallway := g.connectRooms(d, room, alt); hallway != nil {
			g.log.Debugf("connected alternative: %v to %v", room, alt)
			return hallway
		}
	}
	return nil
}

// connectAdjacentRooms joins two rooms separated by a 1 or 2 tile gap along
// a shared axis with a single short segment at a random coordinate in the
// overlapping range. Returns nil when the rooms are not adjacent.
func (g *Generator) connectAdjacentRooms(d *dungeon.Dungeon, r1, r2 *Room) *Hallway {
	var path *Path

	switch {
	case rangesOverlap(r1.Y1, r1.Y2, r2.Y1, r2.Y2):
		yStart := max(r1.Y1, r2.Y1)
		yEnd := min(r1.Y2, r2.Y2)
		y := g.randRange(yStart, yEnd-1)

		// r1 left of r2
		if r1.X2+1 == r2.X1 {
			path = &Path{r1.X2, y, r1.X2, y}
		} else if r1.X2+2 == r2.X1 {
			path = &Path{r1.X2, y, r1.X2 + 1, y}
		}
		// r1 right of r2
		if r2.X2+1 == r1.X1 {
			path = &Path{r2.X2, y, r2.X2, y}
		} else if r2.X2+2 == r1.X1 {
			path = &Path{r2.X2, y, r2.X2 + 1, y}
		}

	case rangesOverlap(r1.X1, r1.X2, r2.X1, r2.X2):
		xStart := max(r1.X1, r2.X1)
		xEnd := min(r1.X2, r2.X2)
		x := g.randRange(xStart, xEnd-1)

		// r1 above r2
		if r1.Y2+1 == r2.Y1 {
			path = &Path{x, r1.Y2, x, r1.Y2}
		} else if r1.Y2+2 == r2.Y1 {
			path = &Path{x, r1.Y2, x, r1.Y2 + 1}
		}
		// r1 below r2
		if r2.Y2+1 == r1.Y1 {
			path = &Path{x, r2.Y2, x, r2.Y2}
		} else if r2.Y2+2 == r1.Y1 {
			path = &Path{x, r2.Y2, x, r2.Y2 + 1}
		}
	}

	if path == nil {
		return nil
	}

	if path.OneCell() {
		d.CarveTile(path.X1, path.Y1)
	} else {
		d.CarveLine(path.X1, path.Y1, path.X2, path.Y2)
	}
	r1.Connect(r2)
	return &Hallway{Segments: []Path{*path}}
}

// connectRooms routes a hallway between two far-apart rooms. Exit sides are
// chosen by scanning edge tiles: nearest to the other room's center in
// straight mode, furthest in maze mode (where the side opposite the extreme
// is excluded and exits are re-rolled every retry). Random edge-cell pairs
// are then tried until a route validates or the attempt budget runs out.
func (g *Generator) connectRooms(d *dungeon.Dungeon, r1, r2 *Room) *Hallway {
	maze := g.settings.Tags.Has(MazeHalls)
	ncx, ncy := r2.Center()

	var dirR1, dirR2 dungeon.Direction
	var excludeR1, excludeR2 dungeon.Direction

	if maze {
		furthestDist := 0
		var furthestCell [2]int
		var furthestDirR1, furthestDirR2 dungeon.Direction
		for _, dir := range dungeon.Directions {
			for _, cell := range r1.EdgeInDirection(dir) {
				if dist := manhattan(cell[0], cell[1], ncx, ncy); dist > furthestDist {
					furthestDirR1 = dir
					furthestCell = cell
					furthestDist = dist
				}
			}
			for _, cell := range r2.EdgeInDirection(dir) {
				if dist := manhattan(furthestCell[0], furthestCell[1], cell[0], cell[1]); dist > furthestDist {
					furthestDirR2 = dir
					furthestDist = dist
				}
			}
		}
		// Leaving through the side opposite the extreme would only route
		// back toward the other room.
		excludeR1 = furthestDirR1.Opposite()
		excludeR2 = furthestDirR2.Opposite()
	} else {
		closestDist := math.MaxInt
		var nearestCell [2]int
		for _, dir := range dungeon.Directions {
			for _, cell := range r1.EdgeInDirection(dir) {
				if dist := manhattan(cell[0], cell[1], ncx, ncy); dist < closestDist {
					dirR1 = dir
					nearestCell = cell
					closestDist = dist
				}
			}
			for _, cell := range r2.EdgeInDirection(dir) {
				if dist := manhattan(nearestCell[0], nearestCell[1], cell[0], cell[1]); dist < closestDist {
					dirR2 = dir
					closestDist = dist
				}
			}
		}
	}

	tried := make(map[[2][2]int]bool)
	for range routeAttempts {
		if maze {
			dirR1 = g.randDirectionExcluding(excludeR1)
			dirR2 = g.randDirectionExcluding(excludeR2)
		}

		var cellR1, cellR2 [2]int
		found := false
		for range routeAttempts {
			cellR1 = g.randCell(r1.EdgeInDirection(dirR1))
			cellR2 = g.randCell(r2.EdgeInDirection(dirR2))
			key := [2][2]int{cellR1, cellR2}
			if !tried[key] {
				tried[key] = true
				found = true
				break
			}
		}
		if !found {
			g.log.Warnf("ran out of edge cells to try between %v and %v", r1, r2)
			break
		}

		ax, ay := dirR1.Step(cellR1[0], cellR1[1], 1)
		bx, by := dirR2.Step(cellR2[0], cellR2[1], 1)
		if hallway := g.connectTiles(d, ax, ay, bx, by, dirR1, dirR2); hallway != nil {
			r1.Connect(r2)
			return hallway
		}
	}
	return nil
}

// connectTiles joins the two departure points with either one straight
// segment or an L-route of two legs behind a one-cell stub at each end.
// Nothing is carved unless every leg validates.
func (g *Generator) connectTiles(d *dungeon.Dungeon, ax, ay, bx, by int, dirA, dirB dungeon.Direction) *Hallway {
	if ax == bx || ay == by {
		path := Path{ax, ay, bx, by}
		if !g.canConnect(d, path, 1, nil, false) {
			return nil
		}
		d.CarveLine(ax, ay, bx, by)
		g.log.Debugf("connecting rooms, straight line: %v", path)
		return &Hallway{Segments: []Path{path}}
	}

	hallway := &Hallway{Segments: []Path{
		{ax, ay, ax, ay},
		{bx, by, bx, by},
	}}

	ax2, ay2 := dirA.Step(ax, ay, 1)
	bx2, by2 := dirB.Step(bx, by, 1)

	ok := false
	if ax2 == bx2 || ay2 == by2 {
		// The stub ends already align on one axis.
		path := Path{ax2, ay2, bx2, by2}
		if g.canConnect(d, path, 1, nil, false) {
			ok = true
			hallway.Segments = append(hallway.Segments, path)
			g.log.Debugf("connecting rooms, secondary straight line: %v", hallway.Segments)
		}
	} else {
		// L-shape. A first leg running back against dirA can never be
		// valid, so force horizontal-first in that case; otherwise pick
		// the leading axis at random. The second leg stops one tile
		// short, the gap is covered by the first leg's row or column.
		path1 := Path{ax2, ay2, ax2, by2}
		var path2 Path
		vertDir, _ := path1.Direction()
		if g.rng.Intn(2) == 1 || vertDir == dirA.Opposite() {
			path1 = Path{ax2, ay2, bx2, ay2}
			end := ay2 + 1
			if ay2 > by2 {
				end = ay2 - 1
			}
			path2 = Path{bx2, by2, bx2, end}
		} else {
			end := ax2 + 1
			if ax2 > bx2 {
				end = ax2 - 1
			}
			path2 = Path{bx2, by2, end, by2}
		}

		if g.canConnect(d, path1, 1, nil, false) && g.canConnect(d, path2, 1, nil, false) {
			ok = true
			hallway.Segments = append(hallway.Segments, path1, path2)
			g.log.Debugf("connecting rooms, L-shape: %v", hallway.Segments)
		}
	}

	if !ok {
		return nil
	}
	hallway.Carve(d)
	return hallway
}

// canConnect validates a candidate path: it must not overlap any room's
// buffered bounding box (save those in ignore), must not intersect any
// placed hallway segment, and, unless ignoreBounds is set, must keep both
// endpoints one tile inside the map border.
func (g *Generator) canConnect(d *dungeon.Dungeon, path Path, buffer int, ignore []*Room, ignoreBounds bool) bool {
	for _, room := range g.rooms {
		skip := false
		for _, ig := range ignore {
			if ig == room {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		if path.IntersectsRoom(room, buffer) {
			return false
		}
	}

	for _, hall := range g.hallways {
		for _, segment := range hall.Segments {
			if path.IntersectsPath(segment) {
				return false
			}
		}
	}

	if !ignoreBounds {
		if !(1 <= path.X1 && path.X1 < d.Width-1 && 1 <= path.X2 && path.X2 < d.Width-1 &&
			1 <= path.Y1 && path.Y1 < d.Height-1 && 1 <= path.Y2 && path.Y2 < d.Height-1) {
			g.log.Debugf("%v is out of map bounds", path)
			return false
		}
	}

	return true
}

// randDirectionExcluding draws a uniform direction from the three not equal
// to exclude.
func (g *Generator) randDirectionExcluding(exclude dungeon.Direction) dungeon.Direction {
	pool := make([]dungeon.Direction, 0, 3)
	for _, dir := range dungeon.Directions {
		if dir != exclude {
			pool = append(pool, dir)
		}
	}
	return pool[g.rng.Intn(len(pool))]
}
