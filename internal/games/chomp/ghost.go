package chomp

import "math/rand"

// GhostID names the four antagonists. Pink is the ambusher.
type GhostID int

const (
	GhostRed GhostID = iota
	GhostPink
	GhostCyan
	GhostOrange
	numGhosts
)

func (id GhostID) String() string {
	switch id {
	case GhostRed:
		return "red"
	case GhostPink:
		return "pink"
	case GhostCyan:
		return "cyan"
	case GhostOrange:
		return "orange"
	default:
		return "unknown"
	}
}

// GhostMode is the behavior state machine for one ghost.
type GhostMode int

const (
	ModeScatter GhostMode = iota
	ModeChase
	ModeFrightened
	ModeEaten
)

func (m GhostMode) String() string {
	switch m {
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	case ModeFrightened:
		return "frightened"
	case ModeEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// Ghost is one antagonist: a mover plus mode state, pen bookkeeping and
// its fixed scatter corner.
type Ghost struct {
	Mover
	ID   GhostID
	Mode GhostMode

	// reversePending makes the ghost turn around at its next AI step.
	// Set only on mode flips; ghosts never reverse otherwise.
	reversePending bool

	inPen       bool
	leavingPen  bool
	releaseTick uint64 // earliest tick the ghost may leave the pen

	scatterTarget Tile
}

// mazeOracle is the query surface the steering logic needs from the maze.
// The concrete *Maze satisfies it; tests substitute open boards.
type mazeOracle interface {
	GhostLegal(t Tile, d Direction, mode GhostMode, leavingPen bool) bool
}

// chooseDirection picks the ghost's next heading at a tile center using
// the original greedy rule: consider the four headings in the fixed order
// up, left, down, right; skip the reverse of the current heading; skip
// anything the oracle forbids; take the candidate whose destination tile
// has the smallest squared Euclidean distance to the target. The strict
// less-than keeps ties resolved by evaluation order. If every candidate
// is illegal the ghost keeps its heading; exhaustion is never an error.
func chooseDirection(o mazeOracle, from Tile, heading Direction, target Tile, mode GhostMode, leavingPen bool) Direction {
	best := heading
	bestDist := int(^uint(0) >> 1)

	reverse := heading.Opposite()
	for _, d := range directions {
		if d == reverse {
			continue
		}
		if !o.GhostLegal(from, d, mode, leavingPen) {
			continue
		}
		if dist := distSq(from.Next(d, MazeWidth), target); dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	return best
}

// chooseFrightenedDirection picks a random legal heading, never the
// reverse. Falls back to the tie-break scan, then to continuing straight.
func chooseFrightenedDirection(o mazeOracle, rng *rand.Rand, from Tile, heading Direction, leavingPen bool) Direction {
	reverse := heading.Opposite()

	d := directions[rng.Intn(len(directions))]
	if d != reverse && o.GhostLegal(from, d, ModeFrightened, leavingPen) {
		return d
	}
	for _, d := range directions {
		if d == reverse {
			continue
		}
		if o.GhostLegal(from, d, ModeFrightened, leavingPen) {
			return d
		}
	}
	return heading
}

// ambushTarget returns the ambusher's chase target: the player's tile
// offset four tiles along the player's heading. The original encoded the
// offset vector as packed bytes and doubled it with 16-bit adds; for an
// upward heading the vertical component's sign byte bleeds into the
// horizontal half, dragging the target a further three tiles across.
// classicBug reproduces that artifact exactly; without it the offset is
// the intended vertical-only one.
func ambushTarget(player Tile, heading Direction, classicBug bool) Tile {
	dx, dy := heading.Vector()
	t := Tile{X: player.X + 4*dx, Y: player.Y + 4*dy}
	if classicBug && heading == DirUp {
		t.X += 3
	}
	return t
}

// chaseTarget computes a ghost's chase-mode target tile.
func chaseTarget(id GhostID, player Tile, playerHeading Direction, classicBug bool) Tile {
	if id == GhostPink {
		return ambushTarget(player, playerHeading, classicBug)
	}
	return player
}
