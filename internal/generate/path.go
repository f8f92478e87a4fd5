package generate

import (
	"fmt"

	"rosecrypt/internal/dungeon"
)

// Path is one straight axis-aligned segment between two tiles, endpoints
// inclusive. A degenerate path (both endpoints equal) covers a single cell.
// Diagonal paths are never constructed by the routing logic; asking one for
// its line points panics.
type Path struct {
	X1, Y1, X2, Y2 int
}

func (p Path) String() string {
	return fmt.Sprintf("path (%d,%d)-(%d,%d)", p.X1, p.Y1, p.X2, p.Y2)
}

// OneCell reports whether the path covers a single tile.
func (p Path) OneCell() bool {
	return p.X1 == p.X2 && p.Y1 == p.Y2
}

// Direction returns the cardinal direction the path runs in. The second
// return is false for one-cell paths, which have no direction.
func (p Path) Direction() (dungeon.Direction, bool) {
	if p.OneCell() {
		return 0, false
	}
	if p.X1 == p.X2 {
		if p.Y1 > p.Y2 {
			return dungeon.Up, true
		}
		return dungeon.Down, true
	}
	if p.X1 > p.X2 {
		return dungeon.Left, true
	}
	return dungeon.Right, true
}

// LinePoints returns every tile the path covers, in order from low to high
// coordinate. Panics on a diagonal path: that is a routing bug, not input.
func (p Path) LinePoints() [][2]int {
	if p.OneCell() {
		return [][2]int{{p.X1, p.Y1}}
	}
	var out [][2]int
	switch {
	case p.X1 == p.X2:
		y1, y2 := p.Y1, p.Y2
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			out = append(out, [2]int{p.X1, y})
		}
	case p.Y1 == p.Y2:
		x1, x2 := p.X1, p.X2
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		for x := x1; x <= x2; x++ {
			out = append(out, [2]int{x, p.Y1})
		}
	default:
		panic(fmt.Sprintf("generate: path is not axis-aligned: %v", p))
	}
	return out
}

// IntersectsPath reports whether the two segments touch or cross, using the
// standard orientation test with collinear-overlap handling. Sharing a
// single endpoint counts as an intersection.
func (p Path) IntersectsPath(other Path) bool {
	p1 := [2]int{p.X1, p.Y1}
	q1 := [2]int{p.X2, p.Y2}
	p2 := [2]int{other.X1, other.Y1}
	q2 := [2]int{other.X2, other.Y2}

	o1 := orientation(p1, q1, p2)
	o2 := orientation(p1, q1, q2)
	o3 := orientation(p2, q2, p1)
	o4 := orientation(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && onSegment(p1, q2, q1) {
		return true
	}
	if o3 == 0 && onSegment(p2, p1, q2) {
		return true
	}
	if o4 == 0 && onSegment(p2, q1, q2) {
		return true
	}
	return false
}

// orientation classifies the turn p->q->r: 0 collinear, 1 clockwise,
// 2 counterclockwise.
func orientation(p, q, r [2]int) int {
	val := (q[1]-p[1])*(r[0]-q[0]) - (q[0]-p[0])*(r[1]-q[1])
	switch {
	case val == 0:
		return 0
	case val > 0:
		return 1
	default:
		return 2
	}
}

// onSegment reports whether q lies within the bounding box of segment p-r.
// Only meaningful when the three points are collinear.
func onSegment(p, q, r [2]int) bool {
	return min(p[0], r[0]) <= q[0] && q[0] <= max(p[0], r[0]) &&
		min(p[1], r[1]) <= q[1] && q[1] <= max(p[1], r[1])
}

// IntersectsRoom reports whether the path's bounding box overlaps the room
// expanded by buffer tiles.
func (p Path) IntersectsRoom(r *Room, buffer int) bool {
	x1 := r.X1 - buffer
	y1 := r.Y1 - buffer
	x2 := r.X2 + buffer
	y2 := r.Y2 + buffer

	pxMin, pxMax := min(p.X1, p.X2), max(p.X1, p.X2)
	pyMin, pyMax := min(p.Y1, p.Y2), max(p.Y1, p.Y2)

	return !(pxMax < x1 || pxMin >= x2 || pyMax < y1 || pyMin >= y2)
}

// Hallway is an ordered run of connected path segments. Routed hallways
// start with the one-cell stub at each room's edge followed by the
// connecting legs; adjacent-room and entrance hallways are a single segment.
type Hallway struct {
	Segments []Path
}

// OneCellHallway reports whether the hallway is a single one-tile stub.
func (h *Hallway) OneCellHallway() bool {
	return len(h.Segments) == 1 && h.Segments[0].OneCell()
}

// Carve marks every tile of every segment as floor.
func (h *Hallway) Carve(d *dungeon.Dungeon) {
	for _, p := range h.Segments {
		if p.OneCell() {
			d.CarveTile(p.X1, p.Y1)
		} else {
			d.CarveLine(p.X1, p.Y1, p.X2, p.Y2)
		}
	}
}
