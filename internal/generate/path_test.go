package generate

import (
	"testing"

	"rosecrypt/internal/dungeon"
)

func TestPathIntersection(t *testing.T) {
	cases := []struct {
		name string
		a, b Path
		want bool
	}{
		{"crossing", Path{0, 5, 10, 5}, Path{5, 0, 5, 10}, true},
		{"touching endpoints", Path{0, 0, 5, 0}, Path{5, 0, 5, 5}, true},
		{"collinear overlap", Path{0, 0, 6, 0}, Path{4, 0, 10, 0}, true},
		{"collinear disjoint", Path{0, 0, 3, 0}, Path{5, 0, 9, 0}, false},
		{"parallel", Path{0, 0, 10, 0}, Path{0, 2, 10, 2}, false},
		{"separated", Path{0, 0, 2, 0}, Path{5, 5, 5, 9}, false},
	}
	for _, c := range cases {
		if got := c.a.IntersectsPath(c.b); got != c.want {
			t.Errorf("%s: IntersectsPath = %v, want %v", c.name, got, c.want)
		}
		if got := c.b.IntersectsPath(c.a); got != c.want {
			t.Errorf("%s (swapped): IntersectsPath = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestPathDirection(t *testing.T) {
	cases := []struct {
		p    Path
		want dungeon.Direction
	}{
		{Path{3, 5, 3, 1}, dungeon.Up},
		{Path{3, 1, 3, 5}, dungeon.Down},
		{Path{5, 3, 1, 3}, dungeon.Left},
		{Path{1, 3, 5, 3}, dungeon.Right},
	}
	for _, c := range cases {
		dir, ok := c.p.Direction()
		if !ok || dir != c.want {
			t.Errorf("%v.Direction() = %v,%v, want %v", c.p, dir, ok, c.want)
		}
	}
	if _, ok := (Path{2, 2, 2, 2}).Direction(); ok {
		t.Error("one-cell path has no direction")
	}
}

func TestPathLinePoints(t *testing.T) {
	points := Path{4, 7, 4, 3}.LinePoints()
	if len(points) != 5 {
		t.Fatalf("vertical span should cover 5 tiles, got %d", len(points))
	}
	if points[0] != [2]int{4, 3} || points[4] != [2]int{4, 7} {
		t.Errorf("points should run low to high, got %v", points)
	}

	if got := (Path{2, 2, 2, 2}).LinePoints(); len(got) != 1 {
		t.Errorf("one-cell path should cover one tile, got %v", got)
	}
}

func TestPathLinePointsDiagonalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("diagonal path must panic")
		}
	}()
	_ = Path{0, 0, 3, 4}.LinePoints()
}

func TestPathIntersectsRoom(t *testing.T) {
	room := NewRoom(0, 5, 5, 10, 10)

	if !(Path{0, 7, 20, 7}).IntersectsRoom(room, 0) {
		t.Error("path through the room must intersect")
	}
	if (Path{0, 11, 20, 11}).IntersectsRoom(room, 0) {
		t.Error("path past the exclusive bound must not intersect")
	}
	if !(Path{0, 10, 20, 10}).IntersectsRoom(room, 1) {
		t.Error("buffer of 1 extends the room by one tile")
	}
	if (Path{0, 11, 20, 11}).IntersectsRoom(room, 1) {
		t.Error("buffered bound is still exclusive")
	}
}
