package maze

import (
	"math/rand"
	"testing"
)

// fixedMaze is the 5x5 maze produced by always taking the first candidate:
//
//	#####
//	#S# #
//	# # #
//	#  E#
//	#####
func fixedMaze(t *testing.T) *Grid {
	t.Helper()
	g, err := Generate(5, fixedRand{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return g
}

func TestNewPlayerStartsAtStart(t *testing.T) {
	p := NewPlayer()
	if p.Position() != Start {
		t.Errorf("Position() = %v, want %v", p.Position(), Start)
	}
}

func TestPlayerMove(t *testing.T) {
	g := fixedMaze(t)

	tests := []struct {
		name  string
		dir   Direction
		moved bool
		want  Position
	}{
		{"into wall right", DirRight, false, Position{1, 1}},
		{"into border up", DirUp, false, Position{1, 1}},
		{"into border left", DirLeft, false, Position{1, 1}},
		{"open passage down", DirDown, true, Position{1, 2}},
		{"down again", DirDown, true, Position{1, 3}},
		{"border below", DirDown, false, Position{1, 3}},
		{"right along corridor", DirRight, true, Position{2, 3}},
		{"right onto exit", DirRight, true, Position{3, 3}},
		{"up the dead end", DirUp, true, Position{3, 2}},
		{"none is rejected", DirNone, false, Position{3, 2}},
	}

	p := NewPlayer()
	for _, tc := range tests {
		moved := p.Move(tc.dir, g)
		if moved != tc.moved {
			t.Errorf("%s: Move(%v) = %v, want %v", tc.name, tc.dir, moved, tc.moved)
		}
		if p.Position() != tc.want {
			t.Errorf("%s: position = %v, want %v", tc.name, p.Position(), tc.want)
		}
	}
}

func TestPlayerMoveByRejectsNonUnitSteps(t *testing.T) {
	g := fixedMaze(t)
	p := NewPlayer()

	for _, d := range [][2]int{{0, 0}, {0, 2}, {1, 1}, {-1, 1}, {2, 0}} {
		if p.MoveBy(d[0], d[1], g) {
			t.Errorf("MoveBy(%d, %d) should be rejected", d[0], d[1])
		}
		if p.Position() != Start {
			t.Errorf("MoveBy(%d, %d) moved the player to %v", d[0], d[1], p.Position())
		}
	}
}

func TestPlayerMoveLegalityOnRandomMazes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, size := range []int{5, 15, 25} {
		g, err := Generate(size, rng)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		p := NewPlayer()
		for i := 0; i < 500; i++ {
			d := Directions[rng.Intn(len(Directions))]
			dx, dy := d.Delta()
			before := p.Position()
			target := before.Add(dx, dy)

			moved := p.Move(d, g)
			if g.IsOpen(target) {
				if !moved || p.Position() != target {
					t.Fatalf("size %d: move %v from %v to open %v failed", size, d, before, target)
				}
			} else if moved || p.Position() != before {
				t.Fatalf("size %d: move %v from %v into wall %v changed position to %v",
					size, d, before, target, p.Position())
			}
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
		{DirNone, 0, 0},
	}

	for _, tc := range tests {
		dx, dy := tc.dir.Delta()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%v.Delta() = (%d, %d), want (%d, %d)", tc.dir, dx, dy, tc.dx, tc.dy)
		}
	}
}
