package maze

// ShortestPath returns the cells from `from` to `to` inclusive along the
// shortest open route, using breadth-first search. Returns nil if either end
// is a wall or no route exists. In a perfect maze this is the only route.
func ShortestPath(g *Grid, from, to Position) []Position {
	if !g.IsOpen(from) || !g.IsOpen(to) {
		return nil
	}

	cameFrom := make(map[Position]Position, g.size)
	cameFrom[from] = from
	queue := []Position{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == to {
			break
		}

		for _, d := range Directions {
			dx, dy := d.Delta()
			next := current.Add(dx, dy)
			if !g.IsOpen(next) {
				continue
			}
			if _, seen := cameFrom[next]; seen {
				continue
			}
			cameFrom[next] = current
			queue = append(queue, next)
		}
	}

	if _, ok := cameFrom[to]; !ok {
		return nil
	}

	// Walk parents back to the root, then reverse.
	var path []Position
	for p := to; ; p = cameFrom[p] {
		path = append(path, p)
		if p == from {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// SolutionLength returns the minimum number of moves from the start cell to
// the exit, or -1 if the exit is unreachable.
func SolutionLength(g *Grid) int {
	path := ShortestPath(g, Start, g.Exit())
	if path == nil {
		return -1
	}
	return len(path) - 1
}

// Reachable returns the set of open cells connected to from by 4-directional
// open steps.
func Reachable(g *Grid, from Position) map[Position]bool {
	seen := make(map[Position]bool)
	if !g.IsOpen(from) {
		return seen
	}

	stack := []Position{from}
	seen[from] = true
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range Directions {
			dx, dy := d.Delta()
			next := current.Add(dx, dy)
			if g.IsOpen(next) && !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return seen
}

// OpenCount returns the number of open cells.
func OpenCount(g *Grid) int {
	n := 0
	for _, c := range g.cells {
		if c == Open {
			n++
		}
	}
	return n
}

// AdjacentOpenPairs counts unordered pairs of horizontally or vertically
// adjacent open cells, i.e. the edges of the open-cell graph.
func AdjacentOpenPairs(g *Grid) int {
	n := 0
	for y := range g.size {
		for x := range g.size {
			p := Position{X: x, Y: y}
			if !g.IsOpen(p) {
				continue
			}
			if g.IsOpen(p.Add(1, 0)) {
				n++
			}
			if g.IsOpen(p.Add(0, 1)) {
				n++
			}
		}
	}
	return n
}
