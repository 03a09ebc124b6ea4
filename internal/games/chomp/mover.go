package chomp

// Sub-tile resolution: a mover crosses a tile in subSteps sub-steps and
// is tile-aligned when both offsets sit on alignOffset. New directions
// commit only at alignment.
const (
	subSteps    = 8
	alignOffset = 4
)

// Mover is any entity with a tile position, sub-tile offsets, a heading
// and a buffered next heading. Speed is a percentage where 100 means one
// sub-step per tick; the accumulator carries the remainder across ticks.
type Mover struct {
	Pos        Tile
	SubX, SubY int
	Dir        Direction
	PendingDir Direction

	speed int
	acc   int
}

// placeAt centers the mover on tile t facing d.
func (m *Mover) placeAt(t Tile, d Direction) {
	m.Pos = t
	m.SubX, m.SubY = alignOffset, alignOffset
	m.Dir = d
	m.PendingDir = d
	m.acc = 0
}

// Aligned reports whether the mover sits exactly on a tile center, the
// only moment a buffered direction may commit.
func (m *Mover) Aligned() bool {
	return m.SubX == alignOffset && m.SubY == alignOffset
}

// budget converts the speed accumulator into whole sub-steps for this tick.
func (m *Mover) budget() int {
	m.acc += m.speed
	n := m.acc / 100
	m.acc %= 100
	return n
}

// subStep moves one sub-tile unit along the current heading, advancing
// the tile coordinate on overflow. Horizontal overflow past the board
// edge wraps to the opposite side (tunnel teleport); the vertical
// coordinate and heading are untouched by the wrap.
func (m *Mover) subStep() {
	dx, dy := m.Dir.Vector()
	m.SubX += dx
	m.SubY += dy

	switch {
	case m.SubX >= subSteps:
		m.SubX = 0
		m.Pos.X++
	case m.SubX < 0:
		m.SubX = subSteps - 1
		m.Pos.X--
	}
	switch {
	case m.SubY >= subSteps:
		m.SubY = 0
		m.Pos.Y++
	case m.SubY < 0:
		m.SubY = subSteps - 1
		m.Pos.Y--
	}

	if m.Pos.X < 0 {
		m.Pos.X = MazeWidth - 1
	} else if m.Pos.X >= MazeWidth {
		m.Pos.X = 0
	}
}

// Step integrates one tick of motion. legal answers whether the mover may
// leave the given tile along the given heading; it is the maze oracle
// query bound to the mover's kind and mode.
//
// At each alignment point the buffered direction commits if legal, and the
// mover stops if its heading is blocked. A tick with a multi-step budget
// never coasts past an alignment point: the unused budget is returned to
// the accumulator so steering always gets a chance at every tile center.
func (m *Mover) Step(legal func(from Tile, d Direction) bool) {
	n := m.budget()
	for i := 0; i < n; i++ {
		if m.Aligned() {
			if m.PendingDir != m.Dir && legal(m.Pos, m.PendingDir) {
				m.Dir = m.PendingDir
			}
			if !legal(m.Pos, m.Dir) {
				m.acc = 0
				return
			}
		}
		m.subStep()
		if m.Aligned() && i < n-1 {
			m.acc += (n - 1 - i) * 100
			return
		}
	}
}

// Player is the player-controlled mover plus its life-cycle flags.
type Player struct {
	Mover
	Alive        bool
	PendingDeath bool
}
