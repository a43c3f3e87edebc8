package maze

import (
	"math/rand"
	"testing"
)

func TestShortestPathOnFixedMaze(t *testing.T) {
	g := fixedMaze(t)

	path := ShortestPath(g, Start, g.Exit())
	want := []Position{{1, 1}, {1, 2}, {1, 3}, {2, 3}, {3, 3}}
	if len(path) != len(want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %v, want %v", i, path[i], want[i])
		}
	}

	if SolutionLength(g) != 4 {
		t.Errorf("SolutionLength() = %d, want 4", SolutionLength(g))
	}
}

func TestShortestPathEndpoints(t *testing.T) {
	g := fixedMaze(t)

	if p := ShortestPath(g, Start, Start); len(p) != 1 || p[0] != Start {
		t.Errorf("path to self = %v, want [%v]", p, Start)
	}
	if p := ShortestPath(g, Start, Position{0, 0}); p != nil {
		t.Errorf("path into a wall = %v, want nil", p)
	}
	if p := ShortestPath(g, Position{2, 1}, Start); p != nil {
		t.Errorf("path from a wall = %v, want nil", p)
	}
}

func TestShortestPathIsWalkable(t *testing.T) {
	for _, size := range []int{15, 25, 35} {
		g, err := Generate(size, rand.New(rand.NewSource(int64(size))))
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		path := ShortestPath(g, Start, g.Exit())
		if path == nil {
			t.Fatalf("size %d: no path to exit", size)
		}

		// Replaying the path through a Player must succeed step by step.
		p := NewPlayer()
		for _, next := range path[1:] {
			cur := p.Position()
			if !p.MoveBy(next.X-cur.X, next.Y-cur.Y, g) {
				t.Fatalf("size %d: step %v -> %v not walkable", size, cur, next)
			}
		}
		if !IsExit(p.Position(), g) {
			t.Errorf("size %d: path ended at %v, not the exit", size, p.Position())
		}
	}
}
