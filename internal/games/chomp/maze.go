package chomp

// TileKind classifies a maze tile for the movement and AI layers.
type TileKind int

const (
	TileWall TileKind = iota
	TileOpen
	TilePellet
	TilePower
	TileTunnel // open tile on the wraparound row
	TileDoor   // pen door: ghosts only, and only entering/leaving the pen
	TilePen    // pen interior
)

// Board dimensions in tiles.
const (
	MazeWidth  = 28
	MazeHeight = 31
)

// defaultLayout is the board, one string per tile row.
// '#' wall, '.' pellet, 'o' power pellet, '-' pen door, ' ' open floor.
// The pen interior and the tunnel row are classified by position after
// parsing.
var defaultLayout = [MazeHeight]string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o####.#####.##.#####.####o#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.##### ## #####.######",
	"     #.##### ## #####.#     ",
	"     #.##          ##.#     ",
	"     #.## ###--### ##.#     ",
	"######.## #      # ##.######",
	"      .   #      #   .      ",
	"######.## #      # ##.######",
	"     #.## ######## ##.#     ",
	"     #.##          ##.#     ",
	"     #.## ######## ##.#     ",
	"######.## ######## ##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#o..##.......  .......##..o#",
	"###.##.##.########.##.##.###",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

// Fixed board landmarks.
var (
	playerStart  = Tile{X: 13, Y: 23}
	penDoorOut   = Tile{X: 13, Y: 11} // tile just above the pen door
	penRecovery  = Tile{X: 13, Y: 14} // eaten ghosts revive here
	tunnelRow    = 14
	penRect      = struct{ x0, y0, x1, y1 int }{11, 13, 16, 15}
	ghostPenHome = [numGhosts]Tile{
		{X: 13, Y: 11}, // red starts outside, above the door
		{X: 13, Y: 14},
		{X: 11, Y: 14},
		{X: 15, Y: 14},
	}
	scatterCorners = [numGhosts]Tile{
		{X: 25, Y: 0},
		{X: 2, Y: 0},
		{X: 27, Y: 30},
		{X: 0, Y: 30},
	}
)

// noUpTiles are junctions where scatter/chase ghosts may not turn upward.
var noUpTiles = map[Tile]bool{
	{X: 12, Y: 11}: true,
	{X: 15, Y: 11}: true,
	{X: 12, Y: 23}: true,
	{X: 15, Y: 23}: true,
}

// Maze is the tile board plus pellet state. It is the oracle consulted by
// the movement engine and the ghost AI; it never mutates movers.
type Maze struct {
	grid    [MazeHeight][MazeWidth]TileKind
	pellets int
}

// NewMaze parses the default layout into a fresh board with all pellets.
func NewMaze() *Maze {
	m := &Maze{}
	for y, row := range defaultLayout {
		for x, ch := range row {
			var k TileKind
			switch ch {
			case '#':
				k = TileWall
			case '.':
				k = TilePellet
				m.pellets++
			case 'o':
				k = TilePower
				m.pellets++
			case '-':
				k = TileDoor
			default:
				k = TileOpen
			}
			m.grid[y][x] = k
		}
	}

	// Classify the pen interior and the tunnel mouths.
	for y := penRect.y0; y <= penRect.y1; y++ {
		for x := penRect.x0; x <= penRect.x1; x++ {
			if m.grid[y][x] == TileOpen {
				m.grid[y][x] = TilePen
			}
		}
	}
	for x := 0; x < MazeWidth; x++ {
		if m.grid[tunnelRow][x] == TileOpen && (x <= 5 || x >= 22) {
			m.grid[tunnelRow][x] = TileTunnel
		}
	}
	return m
}

// TileAt returns the tile kind at (x, y). The x coordinate wraps across
// the board edges; out-of-range y reads as wall.
func (m *Maze) TileAt(x, y int) TileKind {
	if y < 0 || y >= MazeHeight {
		return TileWall
	}
	for x < 0 {
		x += MazeWidth
	}
	for x >= MazeWidth {
		x -= MazeWidth
	}
	return m.grid[y][x]
}

// PelletsRemaining reports how many pellets (including power pellets)
// are still on the board.
func (m *Maze) PelletsRemaining() int {
	return m.pellets
}

// EatAt consumes a pellet at t, if any. Returns the points awarded and
// whether the pellet was a power pellet.
func (m *Maze) EatAt(t Tile) (points int, power bool) {
	switch m.TileAt(t.X, t.Y) {
	case TilePellet:
		m.grid[t.Y][t.X] = TileOpen
		m.pellets--
		return 10, false
	case TilePower:
		m.grid[t.Y][t.X] = TileOpen
		m.pellets--
		return 50, true
	}
	return 0, false
}

// PlayerLegal reports whether the player may move from t along d.
// The pen and its door are never open to the player.
func (m *Maze) PlayerLegal(t Tile, d Direction) bool {
	n := t.Next(d, MazeWidth)
	switch m.TileAt(n.X, n.Y) {
	case TileWall, TileDoor, TilePen:
		return false
	}
	return true
}

// GhostLegal reports whether a ghost in the given mode may move from t
// along d. Eaten ghosts and ghosts leaving the pen may cross the door;
// scatter/chase ghosts may not turn upward at the marked junctions.
func (m *Maze) GhostLegal(t Tile, d Direction, mode GhostMode, leavingPen bool) bool {
	n := t.Next(d, MazeWidth)
	switch m.TileAt(n.X, n.Y) {
	case TileWall:
		return false
	case TileDoor, TilePen:
		if mode != ModeEaten && !leavingPen {
			return false
		}
	}
	if d == DirUp && noUpTiles[n] && !leavingPen && (mode == ModeScatter || mode == ModeChase) {
		return false
	}
	return true
}
