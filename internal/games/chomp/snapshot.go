package chomp

// GhostSnapshot captures one ghost's observable state.
type GhostSnapshot struct {
	X, Y int
	Dir  Direction
	Mode GhostMode
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Stage       string
	Score       int
	Lives       int
	Level       int // 1-indexed for display
	Pellets     int
	FrightTicks int
	PhaseIndex  int
	Substate    int
	PlayerX     int
	PlayerY     int
	PlayerDir   Direction
	Ghosts      [numGhosts]GhostSnapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.tick,
		Stage:       string(g.stage),
		Score:       g.score,
		Lives:       g.lives,
		Level:       g.levelIndex + 1,
		Pellets:     g.maze.PelletsRemaining(),
		FrightTicks: g.frightTicks,
		PhaseIndex:  g.phaseIndex,
		Substate:    g.world.Substate,
		PlayerX:     g.player.Pos.X,
		PlayerY:     g.player.Pos.Y,
		PlayerDir:   g.player.Dir,
	}
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		s.Ghosts[i] = GhostSnapshot{
			X:    gh.Pos.X,
			Y:    gh.Pos.Y,
			Dir:  gh.Dir,
			Mode: gh.Mode,
		}
	}
	return s
}
