package dungeon

// DoorMaterial selects the material a door is drawn and exported with.
type DoorMaterial uint8

const (
	DoorWood DoorMaterial = iota
	DoorStone
	DoorMetal
	DoorGlass
)

func (m DoorMaterial) String() string {
	switch m {
	case DoorWood:
		return "wood"
	case DoorStone:
		return "stone"
	case DoorMetal:
		return "metal"
	default:
		return "glass"
	}
}

// WallSegment is one straight barrier edge in tile space, carrying the door
// and blocking metadata Foundry's wall schema expects. Coordinates are
// float64 because door segments sit on half-tile positions.
type WallSegment struct {
	X1, Y1, X2, Y2 float64
	Door           int // 0 plain wall, 1 door, 2 locked door
	Material       DoorMaterial
	State          int // door state: 0 open, 1 closed
	Move           int
	Sense          int
	Sound          int
	Light          int
}

// NewWall returns a plain unit wall segment between two tile corners with
// the default blocking flags (blocks movement and sight, passes sound and
// light).
func NewWall(x1, y1, x2, y2 int) WallSegment {
	return WallSegment{
		X1: float64(x1), Y1: float64(y1),
		X2: float64(x2), Y2: float64(y2),
		Move:  1,
		Sense: 1,
	}
}

// PixelCoords converts the segment's tile coordinates to pixel space.
func (w WallSegment) PixelCoords(scale int) (x1, y1, x2, y2 int) {
	s := float64(scale)
	return int(w.X1 * s), int(w.Y1 * s), int(w.X2 * s), int(w.Y2 * s)
}

// Door is a doorway occupying one grid cell. Facing is the direction the
// door leads out of the adjoining room.
type Door struct {
	X, Y     int
	Facing   Direction
	Material DoorMaterial
	Open     bool
}

// AsWall converts the door into a half-length wall segment centered in its
// cell and oriented perpendicular to Facing, for rendering and export.
func (d Door) AsWall() WallSegment {
	cx := float64(d.X) + 0.5
	cy := float64(d.Y) + 0.5

	w := WallSegment{Door: 1, Material: d.Material, Move: 1, Sense: 1}
	if !d.Open {
		w.State = 1
	}
	if d.Facing == Up || d.Facing == Down {
		w.X1, w.Y1, w.X2, w.Y2 = cx-0.5, cy, cx+0.5, cy
	} else {
		w.X1, w.Y1, w.X2, w.Y2 = cx, cy-0.5, cx, cy+0.5
	}
	return w
}
