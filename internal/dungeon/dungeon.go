// Package dungeon holds the tile grid and the derived geometry (walls,
// doors) for one generated dungeon. The grid uses a top-left origin with x
// increasing right and y increasing down; true means walkable floor.
package dungeon

// Dungeon is the aggregate handed to rendering and export once generation
// finishes. It is mutated in place by the generator and treated as read-only
// afterwards.
type Dungeon struct {
	Name          string
	Width, Height int
	Grid          [][]bool
	Walls         []WallSegment
	Doors         []Door
}

// New creates an all-void dungeon of the given dimensions.
func New(width, height int) *Dungeon {
	grid := make([][]bool, height)
	for y := range grid {
		grid[y] = make([]bool, width)
	}
	return &Dungeon{Name: "Dungeon", Width: width, Height: height, Grid: grid}
}

// InBounds reports whether (x, y) is within the grid.
func (d *Dungeon) InBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// FloorAt reports whether (x, y) is a carved floor tile. Out-of-bounds
// positions are void.
func (d *Dungeon) FloorAt(x, y int) bool {
	if !d.InBounds(x, y) {
		return false
	}
	return d.Grid[y][x]
}

// CarveTile marks (x, y) as floor. Out-of-range requests are silently
// ignored; carve callers probe the map edge on purpose.
func (d *Dungeon) CarveTile(x, y int) {
	if d.InBounds(x, y) {
		d.Grid[y][x] = true
	}
}

// CarveRoom marks the half-open rectangle [x1,x2)×[y1,y2) as floor.
func (d *Dungeon) CarveRoom(x1, y1, x2, y2 int) {
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			d.CarveTile(x, y)
		}
	}
}

// CarveLine marks every tile on the straight segment between the two points
// (inclusive) as floor. Panics when the segment is not axis-aligned: a
// diagonal carve request means the routing logic is broken, not that the
// input was bad.
func (d *Dungeon) CarveLine(x1, y1, x2, y2 int) {
	switch {
	case x1 == x2:
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			d.CarveTile(x1, y)
		}
	case y1 == y2:
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		for x := x1; x <= x2; x++ {
			d.CarveTile(x, y1)
		}
	default:
		panic("dungeon: carve line is not axis-aligned")
	}
}

// FloorCount returns the number of carved tiles.
func (d *Dungeon) FloorCount() int {
	n := 0
	for y := range d.Grid {
		for x := range d.Grid[y] {
			if d.Grid[y][x] {
				n++
			}
		}
	}
	return n
}
