package generate

import (
	"fmt"
	"reflect"
	"testing"
)

func testSettings(seed string, extra ...Tag) Settings {
	tags := TagSet{SmallRooms: true, MediumDensity: true, StraightHalls: true}
	for _, t := range extra {
		tags = Toggle(tags, t)
	}
	return NewSettings(seed, tags, 40, 40)
}

func TestGenerateRoomsKeepBuffer(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g := NewGenerator(testSettings(fmt.Sprintf("seed-%d", seed)), nil)
		g.Generate()

		rooms := g.Rooms()
		for i := 0; i < len(rooms); i++ {
			for j := i + 1; j < len(rooms); j++ {
				if rooms[i].IntersectsBuffered(rooms[j], 1) {
					t.Errorf("seed=%d: %v and %v violate the one-tile buffer", seed, rooms[i], rooms[j])
				}
			}
		}
	}
}

func TestGenerateGridDimensions(t *testing.T) {
	g := NewGenerator(testSettings("dims"), nil)
	d, _ := g.Generate()

	if d.Width != 40 || d.Height != 40 {
		t.Fatalf("dungeon is %dx%d, want 40x40", d.Width, d.Height)
	}
	if len(d.Grid) != 40 || len(d.Grid[0]) != 40 {
		t.Fatalf("grid is %dx%d, want 40x40", len(d.Grid[0]), len(d.Grid))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		s := testSettings(fmt.Sprintf("seed-%d", seed))

		d1, r1 := NewGenerator(s, nil).Generate()
		d2, r2 := NewGenerator(s, nil).Generate()

		if !reflect.DeepEqual(d1.Grid, d2.Grid) {
			t.Errorf("seed=%d: grids differ between runs", seed)
		}
		if !reflect.DeepEqual(d1.Walls, d2.Walls) {
			t.Errorf("seed=%d: walls differ between runs", seed)
		}
		if !reflect.DeepEqual(d1.Doors, d2.Doors) {
			t.Errorf("seed=%d: doors differ between runs", seed)
		}
		if r1 != r2 {
			t.Errorf("seed=%d: reports differ: %+v vs %+v", seed, r1, r2)
		}
	}
}

// TestGenerateFloorConnected flood-fills the carved grid and verifies every
// floor tile is reachable whenever the generator reports full connectivity.
func TestGenerateFloorConnected(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g := NewGenerator(testSettings(fmt.Sprintf("seed-%d", seed)), nil)
		d, report := g.Generate()
		if !report.FullyConnected {
			continue
		}

		startX, startY := -1, -1
		for y := 0; y < d.Height && startY == -1; y++ {
			for x := 0; x < d.Width && startX == -1; x++ {
				if d.FloorAt(x, y) {
					startX, startY = x, y
				}
			}
		}
		if startX == -1 {
			t.Fatalf("seed=%d: no floor tiles found", seed)
		}

		visited := make([][]bool, d.Height)
		for y := range visited {
			visited[y] = make([]bool, d.Width)
		}
		queue := [][2]int{{startX, startY}}
		visited[startY][startX] = true
		reached := 0

		dirs := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			reached++
			for _, dir := range dirs {
				nx, ny := cur[0]+dir[0], cur[1]+dir[1]
				if d.FloorAt(nx, ny) && !visited[ny][nx] {
					visited[ny][nx] = true
					queue = append(queue, [2]int{nx, ny})
				}
			}
		}

		if total := d.FloorCount(); reached != total {
			t.Errorf("seed=%d: flood fill reached %d of %d floor tiles", seed, reached, total)
		}
	}
}

func TestGenerateReportConnectivityMatchesGraph(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g := NewGenerator(testSettings(fmt.Sprintf("seed-%d", seed)), nil)
		_, report := g.Generate()

		rooms := g.Rooms()
		if len(rooms) == 0 {
			t.Fatalf("seed=%d: no rooms placed", seed)
		}
		reachable := rooms[0].ReachableFrom(rooms)
		if report.FullyConnected != (len(reachable) == len(rooms)) {
			t.Errorf("seed=%d: report says connected=%v but BFS reaches %d of %d rooms",
				seed, report.FullyConnected, len(reachable), len(rooms))
		}
	}
}

func TestGenerateWallsFaceVoid(t *testing.T) {
	g := NewGenerator(testSettings("walls"), nil)
	d, _ := g.Generate()

	if len(d.Walls) == 0 {
		t.Fatal("expected wall segments")
	}
	for _, w := range d.Walls {
		x1, y1 := int(w.X1), int(w.Y1)
		if w.Y1 == w.Y2 {
			// Horizontal wall between (x1, y1-1) above and (x1, y1) below.
			above := d.FloorAt(x1, y1-1)
			below := d.FloorAt(x1, y1)
			if above == below {
				t.Fatalf("horizontal wall %+v does not separate floor from void", w)
			}
		} else {
			left := d.FloorAt(x1-1, y1)
			right := d.FloorAt(x1, y1)
			if left == right {
				t.Fatalf("vertical wall %+v does not separate floor from void", w)
			}
		}
	}
}

func TestGenerateDoorsSitOnRoomEdges(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g := NewGenerator(testSettings(fmt.Sprintf("seed-%d", seed)), nil)
		d, _ := g.Generate()

		seen := make(map[[2]int]bool)
		for _, door := range d.Doors {
			pos := [2]int{door.X, door.Y}
			if seen[pos] {
				t.Errorf("seed=%d: duplicate door at %v", seed, pos)
			}
			seen[pos] = true

			onEdge := false
			for _, room := range g.Rooms() {
				if room.ContainsPoint(door.X, door.Y, 1) && !room.ContainsPoint(door.X, door.Y, 0) {
					onEdge = true
					break
				}
			}
			if !onEdge {
				t.Errorf("seed=%d: door at %v is not one tile off a room edge", seed, pos)
			}
		}
	}
}

func TestGenerateScenarioSmallMap(t *testing.T) {
	tags := TagSet{SmallRooms: true, MediumDensity: true, StraightHalls: true}
	g := NewGenerator(NewSettings("abc", tags, 20, 20), nil)
	d, report := g.Generate()

	if report.RoomsPlaced < 3 {
		t.Fatalf("expected at least 3 rooms, placed %d", report.RoomsPlaced)
	}
	if len(g.Hallways()) == 0 {
		t.Error("expected at least one hallway")
	}
	if len(d.Doors) == 0 {
		t.Error("expected at least one door")
	}
}

func TestGenerateEntranceNorth(t *testing.T) {
	carved := 0
	for seed := int64(0); seed < 10; seed++ {
		g := NewGenerator(testSettings(fmt.Sprintf("seed-%d", seed), EntranceNorth), nil)
		_, report := g.Generate()

		if !report.HasEntrance {
			continue
		}
		carved++

		entrances := 0
		for _, room := range g.Rooms() {
			if room.Type == RoomEntrance {
				entrances++
				if room.ID != report.EntranceRoom {
					t.Errorf("seed=%d: entrance room id mismatch", seed)
				}
			}
		}
		if entrances != 1 {
			t.Errorf("seed=%d: %d entrance rooms, want 1", seed, entrances)
		}

		reachedTop := false
		for _, hallway := range g.Hallways() {
			last := hallway.Segments[len(hallway.Segments)-1]
			if last.Y2 == 0 {
				reachedTop = true
			}
		}
		if !reachedTop {
			t.Errorf("seed=%d: no hallway reaches the top border", seed)
		}
	}
	if carved == 0 {
		t.Fatal("no seed produced a north entrance")
	}
}

func TestGenerateStairsSkipsEntrance(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g := NewGenerator(testSettings(fmt.Sprintf("seed-%d", seed), Stairs), nil)
		_, report := g.Generate()

		if report.HasEntrance || report.EntranceRoom != -1 {
			t.Errorf("seed=%d: stairs mode must not carve an entrance", seed)
		}
		for _, room := range g.Rooms() {
			if room.Type == RoomEntrance {
				t.Errorf("seed=%d: no room may be tagged entrance in stairs mode", seed)
			}
		}
	}
}

func TestGenerateMazeSegmentCounts(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g := NewGenerator(testSettings(fmt.Sprintf("seed-%d", seed), MazeHalls), nil)
		g.Generate()

		for _, hallway := range g.Hallways() {
			n := len(hallway.Segments)
			if n != 1 && n != 3 && n != 4 {
				t.Errorf("seed=%d: hallway has %d segments", seed, n)
			}
			for _, segment := range hallway.Segments {
				if segment.X1 != segment.X2 && segment.Y1 != segment.Y2 {
					t.Errorf("seed=%d: diagonal segment %v", seed, segment)
				}
			}
		}
	}
}

func TestGenerateDegenerateMap(t *testing.T) {
	g := NewGenerator(NewSettings("tiny", TagSet{}, 1, 1), nil)
	d, report := g.Generate()

	if report.RoomsPlaced != 0 {
		t.Errorf("1x1 map placed %d rooms, want 0", report.RoomsPlaced)
	}
	if d.Width != 1 || d.Height != 1 {
		t.Errorf("dungeon is %dx%d, want 1x1", d.Width, d.Height)
	}
	if d.FloorCount() != 0 {
		t.Error("degenerate dungeon must stay empty")
	}
}
