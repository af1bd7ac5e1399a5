package forest

// Direction names one of the four grid edges, or the way one looks from a
// cell toward that edge.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every Direction in a fixed order.
var Directions = [...]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Step returns the row and column delta of one move in direction d.
func (d Direction) Step() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// turns lists the rotations that bring edge d to the top.
func (d Direction) turns() []quarterTurn {
	switch d {
	case Left:
		return []quarterTurn{turnRight}
	case Right:
		return []quarterTurn{turnLeft}
	case Down:
		return []quarterTurn{turnLeft, turnLeft}
	default:
		return nil
	}
}

// Move returns the neighbour of c one step in direction d. The result may lie
// outside any grid.
func (c Coord) Move(d Direction) Coord {
	dRow, dCol := d.Step()
	return Coord{Row: c.Row + dRow, Col: c.Col + dCol}
}
