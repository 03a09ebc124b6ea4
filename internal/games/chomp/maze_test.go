package chomp

import "testing"

func TestLayoutDimensions(t *testing.T) {
	if len(defaultLayout) != MazeHeight {
		t.Fatalf("layout has %d rows, want %d", len(defaultLayout), MazeHeight)
	}
	for y, row := range defaultLayout {
		if len(row) != MazeWidth {
			t.Errorf("row %d has %d columns, want %d", y, len(row), MazeWidth)
		}
	}
}

func TestTileAtWrapsHorizontally(t *testing.T) {
	m := NewMaze()
	if got := m.TileAt(-1, tunnelRow); got != m.TileAt(MazeWidth-1, tunnelRow) {
		t.Errorf("TileAt(-1) = %v, want the right-edge tile", got)
	}
	if got := m.TileAt(MazeWidth, tunnelRow); got != m.TileAt(0, tunnelRow) {
		t.Errorf("TileAt(width) = %v, want the left-edge tile", got)
	}
	if got := m.TileAt(5, -1); got != TileWall {
		t.Errorf("TileAt above the board = %v, want wall", got)
	}
	if got := m.TileAt(5, MazeHeight); got != TileWall {
		t.Errorf("TileAt below the board = %v, want wall", got)
	}
}

func TestTunnelRowIsOpenAtBothEdges(t *testing.T) {
	m := NewMaze()
	if m.TileAt(0, tunnelRow) != TileTunnel {
		t.Error("left tunnel mouth is not open")
	}
	if m.TileAt(MazeWidth-1, tunnelRow) != TileTunnel {
		t.Error("right tunnel mouth is not open")
	}
}

func TestEatAt(t *testing.T) {
	m := NewMaze()
	start := m.PelletsRemaining()

	// (1,1) holds a pellet, (1,3) a power pellet.
	points, power := m.EatAt(Tile{X: 1, Y: 1})
	if points != 10 || power {
		t.Errorf("pellet = (%d, %v), want (10, false)", points, power)
	}
	points, power = m.EatAt(Tile{X: 1, Y: 3})
	if points != 50 || !power {
		t.Errorf("power pellet = (%d, %v), want (50, true)", points, power)
	}

	// Eating the same tile again yields nothing.
	points, power = m.EatAt(Tile{X: 1, Y: 1})
	if points != 0 || power {
		t.Errorf("re-eat = (%d, %v), want (0, false)", points, power)
	}

	if got := m.PelletsRemaining(); got != start-2 {
		t.Errorf("pellets remaining = %d, want %d", got, start-2)
	}
}

func TestPelletCountIncludesPowerPellets(t *testing.T) {
	m := NewMaze()

	// Eat every plain pellet, leaving only the power pellets.
	var powers []Tile
	for y := 0; y < MazeHeight; y++ {
		for x := 0; x < MazeWidth; x++ {
			switch m.TileAt(x, y) {
			case TilePellet:
				m.EatAt(Tile{X: x, Y: y})
			case TilePower:
				powers = append(powers, Tile{X: x, Y: y})
			}
		}
	}
	if len(powers) != 4 {
		t.Fatalf("board has %d power pellets, want 4", len(powers))
	}
	if got := m.PelletsRemaining(); got != len(powers) {
		t.Fatalf("pellets remaining = %d with %d power pellets on the board, want %d",
			got, len(powers), len(powers))
	}

	// The count reaches zero only once the power pellets go too.
	for _, p := range powers {
		m.EatAt(p)
	}
	if got := m.PelletsRemaining(); got != 0 {
		t.Errorf("pellets remaining = %d after clearing the board, want 0", got)
	}
}

func TestPlayerCannotEnterPen(t *testing.T) {
	m := NewMaze()
	if m.PlayerLegal(penDoorOut, DirDown) {
		t.Error("player may walk through the pen door")
	}
}

func TestGhostDoorRules(t *testing.T) {
	m := NewMaze()

	if m.GhostLegal(penDoorOut, DirDown, ModeChase, false) {
		t.Error("chasing ghost may re-enter the pen")
	}
	if !m.GhostLegal(penDoorOut, DirDown, ModeEaten, false) {
		t.Error("eaten ghost may not pass the door on its way home")
	}
	if !m.GhostLegal(Tile{X: 13, Y: 13}, DirUp, ModeChase, true) {
		t.Error("released ghost may not leave through the door")
	}
}

func TestGhostNoUpZones(t *testing.T) {
	m := NewMaze()
	from := Tile{X: 12, Y: 24}

	if m.GhostLegal(from, DirUp, ModeChase, false) {
		t.Error("chasing ghost turned up at a restricted junction")
	}
	if !m.GhostLegal(from, DirUp, ModeFrightened, false) {
		t.Error("no-up restriction should not bind frightened ghosts")
	}
}

func TestPenExitPathIsOpen(t *testing.T) {
	// A released ghost must have a door path from the pen center to the
	// corridor tile above it.
	m := NewMaze()
	path := []Tile{
		{X: 13, Y: 14},
		{X: 13, Y: 13},
		{X: 13, Y: 12},
		{X: 13, Y: 11},
	}
	for i := 0; i < len(path)-1; i++ {
		if !m.GhostLegal(path[i], DirUp, ModeScatter, true) {
			t.Errorf("exit path blocked at %+v", path[i])
		}
	}
}
