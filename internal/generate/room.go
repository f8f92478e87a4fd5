package generate

import (
	"fmt"
	"sort"

	"rosecrypt/internal/dungeon"
)

// RoomType marks the functional role of a room in the layout.
type RoomType uint8

const (
	RoomPlain RoomType = iota
	RoomEntrance
)

// Room is a rectangular region of carved floor. Bounds are half-open:
// x1 <= x < x2, y1 <= y < y2. Connections holds the ids of directly linked
// rooms (pairwise adjacency, not a transitive closure); reachability
// questions go through ReachableFrom.
type Room struct {
	ID          int
	X1, Y1      int
	X2, Y2      int
	Type        RoomType
	Connections map[int]bool
}

// NewRoom creates a room with its own id pre-seeded into the connection set.
func NewRoom(id, x1, y1, x2, y2 int) *Room {
	return &Room{
		ID: id,
		X1: x1, Y1: y1, X2: x2, Y2: y2,
		Connections: map[int]bool{id: true},
	}
}

func (r *Room) String() string {
	return fmt.Sprintf("room %d (%d,%d)-(%d,%d)", r.ID, r.X1, r.Y1, r.X2, r.Y2)
}

// Width and Height are the room's dimensions in tiles.
func (r *Room) Width() int  { return r.X2 - r.X1 }
func (r *Room) Height() int { return r.Y2 - r.Y1 }

// Center returns the room's center tile.
func (r *Room) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether the two rectangles overlap.
func (r *Room) Intersects(other *Room) bool {
	return !(r.X2 <= other.X1 || r.X1 >= other.X2 ||
		r.Y2 <= other.Y1 || r.Y1 >= other.Y2)
}

// IntersectsBuffered reports whether the rectangles overlap after expanding
// this room by buffer tiles on every side. A buffer of 1 keeps neighboring
// rooms from sharing a wall line.
func (r *Room) IntersectsBuffered(other *Room, buffer int) bool {
	expanded := Room{
		X1: r.X1 - buffer, Y1: r.Y1 - buffer,
		X2: r.X2 + buffer, Y2: r.Y2 + buffer,
	}
	return expanded.Intersects(other)
}

// ContainsPoint reports whether (x, y) lies within the room expanded by
// margin tiles on every side.
func (r *Room) ContainsPoint(x, y, margin int) bool {
	return r.X1-margin <= x && x < r.X2+margin &&
		r.Y1-margin <= y && y < r.Y2+margin
}

// Connect records a two-way link between the rooms.
func (r *Room) Connect(other *Room) {
	r.Connections[other.ID] = true
	other.Connections[r.ID] = true
}

// EdgeInDirection returns the room's boundary tiles on the given side, in
// ascending coordinate order.
func (r *Room) EdgeInDirection(d dungeon.Direction) [][2]int {
	var out [][2]int
	switch d {
	case dungeon.Left:
		for y := r.Y1; y < r.Y2; y++ {
			out = append(out, [2]int{r.X1, y})
		}
	case dungeon.Right:
		for y := r.Y1; y < r.Y2; y++ {
			out = append(out, [2]int{r.X2 - 1, y})
		}
	case dungeon.Up:
		for x := r.X1; x < r.X2; x++ {
			out = append(out, [2]int{x, r.Y1})
		}
	case dungeon.Down:
		for x := r.X1; x < r.X2; x++ {
			out = append(out, [2]int{x, r.Y2 - 1})
		}
	}
	return out
}

// ReachableFrom returns the ids of every room reachable from this one over
// the pairwise connection graph, itself included. Neighbor ids are visited
// in ascending order so traversal is deterministic.
func (r *Room) ReachableFrom(all []*Room) map[int]bool {
	byID := make(map[int]*Room, len(all))
	for _, room := range all {
		byID[room.ID] = room
	}

	visited := make(map[int]bool)
	queue := []*Room{r}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current.ID] {
			continue
		}
		visited[current.ID] = true

		ids := make([]int, 0, len(current.Connections))
		for id := range current.Connections {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			if next, ok := byID[id]; ok && !visited[id] {
				queue = append(queue, next)
			}
		}
	}
	return visited
}
