// Package maze provides the maze grid, the depth-first maze generator and
// the player that walks through it. It has no dependency on the terminal
// layer so the maze logic stays pure and testable.
package maze

import (
	"errors"
	"fmt"
	"strings"
)

// MinSize is the smallest grid that still holds a start and an exit cell.
const MinSize = 5

// ErrInvalidSize is matched by every InvalidSizeError.
var ErrInvalidSize = errors.New("invalid maze size")

// InvalidSizeError reports a requested size that is even or below MinSize.
type InvalidSizeError struct {
	Size int
}

func (e *InvalidSizeError) Error() string {
	if e.Size < MinSize {
		return fmt.Sprintf("maze: size %d is below minimum %d", e.Size, MinSize)
	}
	return fmt.Sprintf("maze: size %d must be odd", e.Size)
}

// Is lets errors.Is(err, ErrInvalidSize) match.
func (e *InvalidSizeError) Is(target error) bool {
	return target == ErrInvalidSize
}

// ValidateSize returns an *InvalidSizeError if size cannot hold a maze.
func ValidateSize(size int) error {
	if size < MinSize || size%2 == 0 {
		return &InvalidSizeError{Size: size}
	}
	return nil
}

// Cell is the state of a single grid cell.
type Cell uint8

const (
	Wall Cell = iota
	Open
)

// String returns a human-readable name for the cell.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "Wall"
	case Open:
		return "Open"
	default:
		return "Unknown"
	}
}

// Position is a 0-indexed grid coordinate.
type Position struct {
	X, Y int
}

// Add returns the position shifted by the given delta.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String formats the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Start is the fixed start cell of every maze.
var Start = Position{X: 1, Y: 1}

// Grid is a square maze stored as a flat buffer indexed by y*size+x.
// A Grid is immutable once Generate returns it.
type Grid struct {
	size  int
	cells []Cell
}

// newGrid allocates a size×size grid with every cell set to Wall.
func newGrid(size int) *Grid {
	return &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// Size returns the grid edge length.
func (g *Grid) Size() int {
	return g.size
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.size
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.size
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// At returns the cell at p. Out-of-bounds positions read as Wall.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Y*g.size+p.X]
}

// IsOpen reports whether p is inside the grid and open.
func (g *Grid) IsOpen(p Position) bool {
	return g.At(p) == Open
}

// set writes a cell. Only the generator carves, so this stays unexported.
func (g *Grid) set(p Position, c Cell) {
	if !g.InBounds(p) {
		return
	}
	g.cells[p.Y*g.size+p.X] = c
}

// Equal reports whether two grids have identical dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.size != other.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Exit returns the exit cell, always (width-2, height-2).
func (g *Grid) Exit() Position {
	return ExitFor(g.Width(), g.Height())
}

// ExitFor returns the exit cell for a grid of the given dimensions.
func ExitFor(width, height int) Position {
	return Position{X: width - 2, Y: height - 2}
}

// IsExit reports whether p is the exit cell of g.
func IsExit(p Position, g *Grid) bool {
	return p == g.Exit()
}

// String renders the grid as ASCII: '#' for walls, ' ' for open cells,
// 'S' for the start and 'E' for the exit.
func (g *Grid) String() string {
	return g.Render(nil)
}

// Render draws the grid like String, marking every position in path with '.'.
func (g *Grid) Render(path []Position) string {
	onPath := make(map[Position]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	exit := g.Exit()
	var sb strings.Builder
	sb.Grow(g.size*g.size + g.size)
	for y := range g.size {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range g.size {
			p := Position{X: x, Y: y}
			switch {
			case p == Start:
				sb.WriteByte('S')
			case p == exit:
				sb.WriteByte('E')
			case g.At(p) == Wall:
				sb.WriteByte('#')
			case onPath[p]:
				sb.WriteByte('.')
			default:
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}
