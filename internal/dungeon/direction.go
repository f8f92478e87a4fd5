package dungeon

// Direction is one of the four cardinal directions on the grid.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists the cardinal directions in the one fixed order every scan
// in the generator uses. Reordering it changes random draw order and breaks
// seed reproducibility.
var Directions = [4]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

// Step returns the cell reached by moving steps tiles from (x, y) in d.
func (d Direction) Step(x, y, steps int) (int, int) {
	switch d {
	case Up:
		return x, y - steps
	case Down:
		return x, y + steps
	case Left:
		return x - steps, y
	default:
		return x + steps, y
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}
