package chomp

// Tile is a position on the maze grid, in whole-tile coordinates.
type Tile struct {
	X, Y int
}

// Direction is a four-way heading. Declaration order matters: it is the
// evaluation order for ghost steering, which makes distance ties resolve
// as up, then left, then down, then right.
type Direction int

const (
	DirUp Direction = iota
	DirLeft
	DirDown
	DirRight
)

// directions lists all headings in tie-break order.
var directions = [4]Direction{DirUp, DirLeft, DirDown, DirRight}

// Vector returns the unit step for this heading.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirDown:
		return 0, 1
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirLeft:
		return DirRight
	case DirDown:
		return DirUp
	case DirRight:
		return DirLeft
	}
	return d
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Next returns the neighbouring tile one step along d, wrapping
// horizontally across the given maze width (tunnel teleport).
func (t Tile) Next(d Direction, width int) Tile {
	dx, dy := d.Vector()
	n := Tile{X: t.X + dx, Y: t.Y + dy}
	if n.X < 0 {
		n.X = width - 1
	} else if n.X >= width {
		n.X = 0
	}
	return n
}

// distSq returns the squared Euclidean distance between two tiles.
func distSq(a, b Tile) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
