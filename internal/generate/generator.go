// Package generate builds dungeon layouts: it places rooms, links them with
// hallways, routes an entrance to the map edge, repairs stranded sections,
// and derives doors and walls from the carved floor plan. All randomness
// flows through one seeded source in strict call order, so a given seed and
// settings pair always produces the same layout.
package generate

import (
	"math/rand"

	"rosecrypt/internal/dungeon"
	"rosecrypt/internal/logging"
)

// Generator runs the full layout pipeline for one dungeon. It is single-use
// and not safe for concurrent use; build a new one per run.
type Generator struct {
	settings Settings
	rng      *rand.Rand
	log      logging.Logger

	rooms    []*Room
	hallways []*Hallway
}

// Report summarizes how well a generation run went. Shortfalls are reported
// here rather than as errors; the dungeon is usable either way.
type Report struct {
	RoomsPlaced    int
	AllLinked      bool // every room linked during the main connection pass
	HasEntrance    bool
	EntranceRoom   int // room id, -1 when no entrance was carved
	FullyConnected bool
}

// NewGenerator creates a generator seeded from the settings. A nil logger
// disables logging.
func NewGenerator(settings Settings, log logging.Logger) *Generator {
	if log == nil {
		log = logging.Nop()
	}
	return &Generator{
		settings: settings,
		rng:      rand.New(rand.NewSource(settings.SeedValue())),
		log:      log,
	}
}

// Rooms returns the placed rooms in id order.
func (g *Generator) Rooms() []*Room { return g.rooms }

// Hallways returns every hallway carved so far.
func (g *Generator) Hallways() []*Hallway { return g.hallways }

// Generate runs the whole pipeline and returns the finished dungeon along
// with a summary of any shortfalls.
func (g *Generator) Generate() (*dungeon.Dungeon, Report) {
	d := dungeon.New(g.settings.Width, g.settings.Height)
	report := Report{EntranceRoom: -1}

	report.RoomsPlaced = g.placeRooms(d)
	if report.RoomsPlaced == 0 {
		g.log.Errorf("could not place any rooms")
		return d, report
	}

	report.AllLinked = g.placeHallways(d)

	if id, ok := g.connectRoomToEdge(d); ok {
		report.HasEntrance = true
		report.EntranceRoom = id
	}

	report.FullyConnected = g.allRoomsConnected()
	if !report.FullyConnected {
		g.log.Infof("not all rooms reach the entrance, repairing")
		report.FullyConnected = g.placeMissingHallways(d)
	}

	g.placeDoors(d)
	g.placeWalls(d)

	return d, report
}

// placeRooms scatters rooms by rejection sampling: random size and position,
// accepted only when the candidate keeps a one-tile gap to every accepted
// room. Returns the number of rooms placed.
func (g *Generator) placeRooms(d *dungeon.Dungeon) int {
	g.log.Infof("starting to place rooms")

	attempts := g.settings.MaxDepth * 10
	for i := 0; i < attempts; i++ {
		w := g.randRange(g.settings.MinRoomSize, g.settings.MaxRoomSize)
		h := g.randRange(g.settings.MinRoomSize, g.settings.MaxRoomSize)

		maxX := d.Width - w - g.settings.Margin
		maxY := d.Height - h - g.settings.Margin
		if maxX < g.settings.Margin || maxY < g.settings.Margin {
			// The map cannot hold a room of this size at all.
			continue
		}
		x := g.randRange(g.settings.Margin, maxX)
		y := g.randRange(g.settings.Margin, maxY)

		candidate := NewRoom(len(g.rooms), x, y, x+w, y+h)
		if g.anyRoomIntersects(candidate) {
			continue
		}

		g.rooms = append(g.rooms, candidate)
		d.CarveRoom(candidate.X1, candidate.Y1, candidate.X2, candidate.Y2)
	}

	g.log.Infof("finished placing %d rooms", len(g.rooms))
	return len(g.rooms)
}

func (g *Generator) anyRoomIntersects(candidate *Room) bool {
	for _, room := range g.rooms {
		if candidate.IntersectsBuffered(room, 1) {
			return true
		}
	}
	return false
}

// allRoomsConnected reports whether every room is reachable from the first
// one over the pairwise connection graph.
func (g *Generator) allRoomsConnected() bool {
	if len(g.rooms) == 0 {
		return true
	}
	reachable := g.rooms[0].ReachableFrom(g.rooms)
	return len(reachable) == len(g.rooms)
}

// randRange returns a uniform value in [lo, hi], endpoints inclusive.
func (g *Generator) randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// randCell picks a uniform element from a non-empty cell list.
func (g *Generator) randCell(cells [][2]int) [2]int {
	return cells[g.rng.Intn(len(cells))]
}

func manhattan(ax, ay, bx, by int) int {
	dx := ax - bx
	if dx < 0 {
		dx = -dx
	}
	dy := ay - by
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// rangesOverlap reports whether the half-open ranges [a1,a2) and [b1,b2)
// share at least one value.
func rangesOverlap(a1, a2, b1, b2 int) bool {
	return max(a1, b1) < min(a2, b2)
}
