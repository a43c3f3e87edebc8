package maze

// Direction is one of the four axis-aligned moves.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (dx, dy) step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// Directions lists the four movable directions.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Player tracks a position inside a maze.
type Player struct {
	pos Position
}

// NewPlayer creates a player standing on the start cell.
func NewPlayer() *Player {
	return &Player{pos: Start}
}

// Position returns the player's current cell.
func (p *Player) Position() Position {
	return p.pos
}

// Move steps one cell in direction d if the target is inside g and open.
// Bumping into a wall is a normal outcome: it returns false and the
// position stays put.
func (p *Player) Move(d Direction, g *Grid) bool {
	dx, dy := d.Delta()
	return p.MoveBy(dx, dy, g)
}

// MoveBy is Move expressed as a raw delta. Only unit axis steps are accepted.
func (p *Player) MoveBy(dx, dy int, g *Grid) bool {
	if abs(dx)+abs(dy) != 1 {
		return false
	}

	target := p.pos.Add(dx, dy)
	if !g.InBounds(target) || g.At(target) != Open {
		return false
	}

	p.pos = target
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
