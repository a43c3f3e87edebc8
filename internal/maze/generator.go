package maze

// Rand is the randomness the generator needs. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// carveSteps are the lattice steps tried from each cell, in this order.
var carveSteps = [4]Position{
	{X: 0, Y: 2},
	{X: 2, Y: 0},
	{X: 0, Y: -2},
	{X: -2, Y: 0},
}

// Generate builds a perfect maze of the given size using randomized
// iterative depth-first carving from the start cell.
//
// Only odd coordinates are lattice cells; the even coordinates between two
// lattice cells are walls that get knocked down to form passages. Because
// every lattice cell is opened exactly once, through exactly one passage,
// the open cells form a spanning tree.
func Generate(size int, rng Rand) (*Grid, error) {
	if err := ValidateSize(size); err != nil {
		return nil, err
	}

	g := newGrid(size)
	g.set(Start, Open)

	stack := make([]Position, 0, (size/2)*(size/2))
	stack = append(stack, Start)

	var candidates [4]Position
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		n := g.unvisitedNeighbors(current, &candidates)
		if n == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(n)]
		wall := Position{X: (current.X + next.X) / 2, Y: (current.Y + next.Y) / 2}
		g.set(wall, Open)
		g.set(next, Open)
		stack = append(stack, next)
	}

	// Start and exit are opened unconditionally.
	g.set(Start, Open)
	g.set(g.Exit(), Open)

	return g, nil
}

// unvisitedNeighbors fills buf with the lattice neighbors of p that are
// strictly inside the border and still walls. Returns how many were found.
func (g *Grid) unvisitedNeighbors(p Position, buf *[4]Position) int {
	n := 0
	for _, step := range carveSteps {
		next := p.Add(step.X, step.Y)
		if next.X < 1 || next.X >= g.size-1 || next.Y < 1 || next.Y >= g.size-1 {
			continue
		}
		if g.At(next) != Wall {
			continue
		}
		buf[n] = next
		n++
	}
	return n
}
