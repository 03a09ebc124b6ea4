package chomp

import (
	"math/rand"
	"testing"
)

// openBoard is a maze oracle with no walls, for isolating the steering rule.
type openBoard struct{}

func (openBoard) GhostLegal(Tile, Direction, GhostMode, bool) bool { return true }

// closedBoard forbids every move.
type closedBoard struct{}

func (closedBoard) GhostLegal(Tile, Direction, GhostMode, bool) bool { return false }

func TestChooseDirectionHeadsForTarget(t *testing.T) {
	// Target four tiles straight up: up is the unambiguous winner.
	got := chooseDirection(openBoard{}, Tile{X: 10, Y: 10}, DirUp, Tile{X: 10, Y: 6}, ModeChase, false)
	if got != DirUp {
		t.Errorf("chose %v, want up", got)
	}
}

func TestChooseDirectionTieBreakOrder(t *testing.T) {
	// Target on the ghost's own tile: every candidate is distance 1.
	// The fixed evaluation order (up, left, down, right) decides.
	cases := []struct {
		heading Direction
		want    Direction
	}{
		{DirUp, DirUp},       // reverse (down) excluded, up evaluated first
		{DirDown, DirLeft},   // up excluded as reverse, left is next
		{DirLeft, DirUp},     // right excluded, up first
		{DirRight, DirUp},    // left excluded, up first
	}
	for _, tc := range cases {
		got := chooseDirection(openBoard{}, Tile{X: 10, Y: 10}, tc.heading, Tile{X: 10, Y: 10}, ModeChase, false)
		if got != tc.want {
			t.Errorf("heading %v: chose %v, want %v", tc.heading, got, tc.want)
		}
	}
}

func TestChooseDirectionNeverReverses(t *testing.T) {
	// Target directly behind: the reverse is still excluded, so the
	// ghost detours sideways. Left beats right on the distance tie.
	got := chooseDirection(openBoard{}, Tile{X: 10, Y: 10}, DirUp, Tile{X: 10, Y: 14}, ModeChase, false)
	if got == DirDown {
		t.Fatal("ghost reversed heading")
	}
	if got != DirLeft {
		t.Errorf("chose %v, want left", got)
	}
}

func TestChooseDirectionAllBlockedContinuesStraight(t *testing.T) {
	got := chooseDirection(closedBoard{}, Tile{X: 10, Y: 10}, DirRight, Tile{X: 0, Y: 0}, ModeChase, false)
	if got != DirRight {
		t.Errorf("chose %v, want the unchanged heading", got)
	}
}

func TestChooseDirectionRespectsMaze(t *testing.T) {
	// On the real board, a ghost in the top-left corridor heading right
	// at (6,1) with a target below must take the only open turn.
	m := NewMaze()
	got := chooseDirection(m, Tile{X: 6, Y: 1}, DirRight, Tile{X: 6, Y: 26}, ModeChase, false)
	if !m.GhostLegal(Tile{X: 6, Y: 1}, got, ModeChase, false) {
		t.Errorf("chose %v, an illegal move", got)
	}
}

func TestAmbushTargetStraight(t *testing.T) {
	got := ambushTarget(Tile{X: 10, Y: 10}, DirUp, false)
	if (got != Tile{X: 10, Y: 6}) {
		t.Errorf("target = %+v, want (10,6)", got)
	}
}

func TestAmbushTargetClassicBug(t *testing.T) {
	// With the compatibility flag, an upward heading drags the target
	// three tiles across as well as four up.
	got := ambushTarget(Tile{X: 10, Y: 10}, DirUp, true)
	if (got != Tile{X: 13, Y: 6}) {
		t.Errorf("target = %+v, want (13,6)", got)
	}

	// Other headings are unaffected by the flag.
	for _, d := range []Direction{DirLeft, DirDown, DirRight} {
		with := ambushTarget(Tile{X: 10, Y: 10}, d, true)
		without := ambushTarget(Tile{X: 10, Y: 10}, d, false)
		if with != without {
			t.Errorf("heading %v: flag changed target %+v -> %+v", d, without, with)
		}
	}
}

func TestChaseTargetPerGhost(t *testing.T) {
	player := Tile{X: 5, Y: 20}
	for _, id := range []GhostID{GhostRed, GhostCyan, GhostOrange} {
		if got := chaseTarget(id, player, DirLeft, false); got != player {
			t.Errorf("%v chase target = %+v, want the player tile", id, got)
		}
	}
	if got := chaseTarget(GhostPink, player, DirLeft, false); got == player {
		t.Error("ambusher targets the player tile, want the offset tile")
	}
}

func TestFrightenedDirectionNeverReverses(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		got := chooseFrightenedDirection(openBoard{}, rng, Tile{X: 10, Y: 10}, DirUp, false)
		if got == DirDown {
			t.Fatal("frightened ghost reversed heading")
		}
	}
}

func TestFrightenedDirectionIsDeterministic(t *testing.T) {
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		da := chooseFrightenedDirection(openBoard{}, a, Tile{X: 10, Y: 10}, DirRight, false)
		db := chooseFrightenedDirection(openBoard{}, b, Tile{X: 10, Y: 10}, DirRight, false)
		if da != db {
			t.Fatalf("step %d: %v vs %v with identical seeds", i, da, db)
		}
	}
}
