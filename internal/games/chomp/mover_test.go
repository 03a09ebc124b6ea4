package chomp

import "testing"

func neverLegal(Tile, Direction) bool { return false }

func TestMoverPlaceAtAligns(t *testing.T) {
	var m Mover
	m.placeAt(Tile{X: 5, Y: 5}, DirRight)
	if !m.Aligned() {
		t.Fatal("mover not aligned after placement")
	}
	if m.Dir != DirRight || m.PendingDir != DirRight {
		t.Errorf("heading = %v/%v, want right/right", m.Dir, m.PendingDir)
	}
}

func TestMoverCrossesTileBoundary(t *testing.T) {
	var m Mover
	m.placeAt(Tile{X: 5, Y: 5}, DirRight)
	m.speed = 100

	// From center it takes subSteps ticks to reach the next center.
	for i := 0; i < subSteps; i++ {
		m.Step(func(Tile, Direction) bool { return true })
	}
	if m.Pos != (Tile{X: 6, Y: 5}) {
		t.Errorf("position = %+v, want (6,5)", m.Pos)
	}
	if !m.Aligned() {
		t.Error("mover not aligned after a full tile crossing")
	}
}

func TestMoverSpeedAccumulator(t *testing.T) {
	var m Mover
	m.placeAt(Tile{X: 5, Y: 5}, DirRight)
	m.speed = 50

	// Half speed: one sub-step every other tick.
	for i := 0; i < 2*subSteps; i++ {
		m.Step(func(Tile, Direction) bool { return true })
	}
	if m.Pos != (Tile{X: 6, Y: 5}) {
		t.Errorf("position = %+v, want (6,5)", m.Pos)
	}
}

func TestMoverPendingCommitsOnlyAtAlignment(t *testing.T) {
	var m Mover
	m.placeAt(Tile{X: 5, Y: 5}, DirRight)
	m.speed = 100

	// Move off-center, then buffer a turn.
	m.Step(func(Tile, Direction) bool { return true })
	if m.Aligned() {
		t.Fatal("mover still aligned after one sub-step")
	}
	m.PendingDir = DirDown

	// The turn must not commit until the next tile center.
	for i := 0; i < subSteps-1; i++ {
		if m.Dir != DirRight {
			t.Fatalf("heading committed mid-tile after %d steps", i)
		}
		m.Step(func(Tile, Direction) bool { return true })
	}
	if !m.Aligned() {
		t.Fatal("mover should be back at a tile center")
	}
	m.Step(func(Tile, Direction) bool { return true })
	if m.Dir != DirDown {
		t.Errorf("heading = %v, want down after alignment", m.Dir)
	}
}

func TestMoverBlockedStopsAtCenter(t *testing.T) {
	var m Mover
	m.placeAt(Tile{X: 5, Y: 5}, DirRight)
	m.speed = 100

	m.Step(neverLegal)
	if m.Pos != (Tile{X: 5, Y: 5}) || !m.Aligned() {
		t.Errorf("blocked mover moved to %+v sub (%d,%d)", m.Pos, m.SubX, m.SubY)
	}
	if m.acc != 0 {
		t.Errorf("accumulator = %d, want 0 while blocked", m.acc)
	}
}

func TestMoverTunnelWrapLeft(t *testing.T) {
	var m Mover
	m.placeAt(Tile{X: 0, Y: tunnelRow}, DirLeft)
	m.speed = 100

	// Five sub-steps from center carry the mover across the edge.
	for i := 0; i < alignOffset+1; i++ {
		m.Step(func(Tile, Direction) bool { return true })
	}
	if m.Pos.X != MazeWidth-1 {
		t.Errorf("X = %d, want %d after the wrap", m.Pos.X, MazeWidth-1)
	}
	if m.Pos.Y != tunnelRow {
		t.Errorf("Y = %d, want unchanged %d", m.Pos.Y, tunnelRow)
	}
	if m.Dir != DirLeft {
		t.Errorf("heading = %v, want unchanged left", m.Dir)
	}
}

func TestMoverTunnelWrapRight(t *testing.T) {
	var m Mover
	m.placeAt(Tile{X: MazeWidth - 1, Y: tunnelRow}, DirRight)
	m.speed = 100

	for i := 0; i < subSteps; i++ {
		m.Step(func(Tile, Direction) bool { return true })
	}
	if m.Pos.X != 0 || m.Pos.Y != tunnelRow {
		t.Errorf("position = %+v, want (0,%d)", m.Pos, tunnelRow)
	}
}

func TestMoverMultiStepBudgetStopsAtCenter(t *testing.T) {
	// A fast mover must not coast through a tile center: the remaining
	// budget carries to the next tick so steering can run there.
	var m Mover
	m.placeAt(Tile{X: 5, Y: 5}, DirRight)
	m.speed = 300

	m.Step(func(Tile, Direction) bool { return true })
	m.Step(func(Tile, Direction) bool { return true })
	m.Step(func(Tile, Direction) bool { return true })
	// Nine sub-steps of budget, but the center at (6,5) caps the run.
	if m.Pos != (Tile{X: 6, Y: 5}) || !m.Aligned() {
		t.Errorf("position = %+v sub (%d,%d), want centered on (6,5)", m.Pos, m.SubX, m.SubY)
	}
}
