package chomp

import (
	"testing"

	"github.com/mazeworks/chomp/internal/core"
)

func emptyInput() core.InputFrame {
	return core.NewInputFrame()
}

// newPlayingGame resets a game and steps it through the ready countdown
// so tests start in the playing stage.
func newPlayingGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 36})

	in := emptyInput()
	for i := 0; i < startingTicks*3 && g.stage != stagePlaying; i++ {
		g.Step(in)
	}
	if g.stage != stagePlaying {
		t.Fatalf("game stuck in stage %q", g.stage)
	}
	return g
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and the same inputs must stay in
	// lockstep, frightened-ghost randomness included.
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 36}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 900; i++ {
		input.Clear()
		switch i {
		case 150:
			input.Set(core.ActionUp)
		case 300:
			input.Set(core.ActionRight)
		case 450:
			input.Set(core.ActionDown)
		case 600:
			input.Set(core.ActionLeft)
		}
		g1.Step(input)
		g2.Step(input)

		if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
			t.Fatalf("tick %d: snapshots diverged\n%+v\n%+v", i, s1, s2)
		}
	}
}

func TestStartingCountdown(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 36})
	if g.stage != stageStarting {
		t.Fatalf("initial stage = %q, want starting", g.stage)
	}

	in := emptyInput()
	for i := 0; i < startingTicks*3 && g.stage == stageStarting; i++ {
		g.Step(in)
	}
	if g.stage != stagePlaying {
		t.Fatalf("stage = %q after countdown, want playing", g.stage)
	}
	if g.world.Substate < 3 {
		t.Errorf("substate = %d, want at least 3 queued advances", g.world.Substate)
	}
}

func TestQueueDrainsBeforeGameplay(t *testing.T) {
	// A command queued on the previous tick must land before this tick's
	// gameplay phases: an energize dispatched at drain time is already
	// ticking down when the same Step's timer phase runs.
	g := newPlayingGame(t, 1)
	g.queue.Enqueue(OpEnergize, 0)
	g.Step(emptyInput())

	if want := g.lvl.FrightTicks - 1; g.frightTicks != want {
		t.Errorf("fright ticks = %d, want %d", g.frightTicks, want)
	}
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if gh.Mode != ModeFrightened {
			t.Errorf("%v mode = %v, want frightened", gh.ID, gh.Mode)
		}
	}
}

func TestPowerPelletDefersEnergizeOneTick(t *testing.T) {
	g := newPlayingGame(t, 1)

	// Plant the player on a power pellet and let it eat.
	g.player.placeAt(Tile{X: 1, Y: 3}, DirLeft)
	g.eatPellet()

	if g.frightTicks != 0 {
		t.Fatal("energize applied immediately, want one-tick deferral through the queue")
	}

	g.Step(emptyInput())
	if g.frightTicks == 0 {
		t.Fatal("energize never applied after the deferred tick")
	}
}

func TestFrightenedContactEatsGhostBeforeMovement(t *testing.T) {
	g := newPlayingGame(t, 1)
	g.frightTicks = 300

	gh := &g.ghosts[GhostRed]
	gh.Mode = ModeFrightened
	gh.placeAt(g.player.Pos, DirLeft)

	score := g.score
	g.Step(emptyInput())

	if gh.Mode != ModeEaten {
		t.Fatalf("ghost mode = %v, want eaten on the contact tick", gh.Mode)
	}
	if g.score != score+200 {
		t.Errorf("score = %d, want %d", g.score, score+200)
	}
	if g.stage != stagePlaying {
		t.Errorf("stage = %q, the player must survive a frightened contact", g.stage)
	}
}

func TestGhostContactKillsPlayer(t *testing.T) {
	g := newPlayingGame(t, 1)

	gh := &g.ghosts[GhostRed]
	gh.Mode = ModeChase
	gh.placeAt(g.player.Pos, DirLeft)

	g.Step(emptyInput())
	if g.stage != stageDying {
		t.Fatalf("stage = %q, want dying after contact", g.stage)
	}

	lives := g.lives
	in := emptyInput()
	for i := 0; i < dyingTicks+1 && g.stage == stageDying; i++ {
		g.Step(in)
	}
	if g.lives != lives-1 {
		t.Errorf("lives = %d, want %d", g.lives, lives-1)
	}
	if g.stage != stageStarting {
		t.Errorf("stage = %q, want a fresh ready countdown", g.stage)
	}
}

func TestGhostChainScoring(t *testing.T) {
	g := newPlayingGame(t, 1)
	g.ghostChain = 0

	score := g.score
	for i := range g.ghosts {
		g.ghosts[i].Mode = ModeFrightened
		g.eatGhost(&g.ghosts[i])
	}
	if want := score + 200 + 400 + 800 + 1600; g.score != want {
		t.Errorf("score = %d, want %d for a full chain", g.score, want)
	}
	for i := range g.ghosts {
		if g.ghosts[i].Mode != ModeEaten {
			t.Errorf("%v mode = %v, want eaten", g.ghosts[i].ID, g.ghosts[i].Mode)
		}
	}
}

func TestExtraLifeAwardedOnce(t *testing.T) {
	g := newPlayingGame(t, 1)
	threshold := g.conf.Gameplay.ExtraLifeScore
	if threshold <= 0 {
		t.Skip("extra life disabled in config")
	}

	lives := g.lives
	g.score = threshold - 5
	g.addScore(10)
	if g.lives != lives+1 {
		t.Fatalf("lives = %d, want %d after crossing the threshold", g.lives, lives+1)
	}

	g.addScore(10000)
	if g.lives != lives+1 {
		t.Errorf("lives = %d, the bonus life must only be awarded once", g.lives)
	}
}

func TestPenRelease(t *testing.T) {
	g := newPlayingGame(t, 1)

	if g.ghosts[GhostRed].inPen {
		t.Error("red starts outside the pen")
	}
	if !g.ghosts[GhostOrange].inPen {
		t.Fatal("orange starts inside the pen")
	}

	// Before the release tick the gate stays shut.
	g.levelTick = g.releaseTick(GhostOrange) - 1
	g.releaseGhosts()
	if g.ghosts[GhostOrange].leavingPen {
		t.Fatal("orange released early")
	}

	g.levelTick = g.releaseTick(GhostOrange)
	g.releaseGhosts()
	gh := &g.ghosts[GhostOrange]
	if !gh.leavingPen {
		t.Fatal("orange not released at its release tick")
	}

	// Walk it out: steering plus movement until it clears the door.
	for i := 0; i < 600 && gh.inPen; i++ {
		g.aiStep(gh)
		gh.Step(func(from Tile, d Direction) bool {
			return g.maze.GhostLegal(from, d, gh.Mode, gh.leavingPen)
		})
	}
	if gh.inPen {
		t.Error("orange never left the pen")
	}
	if gh.leavingPen {
		t.Error("exit flag still set after leaving")
	}
}

func TestScheduleFlipReversesGhosts(t *testing.T) {
	g := newPlayingGame(t, 1)

	gh := &g.ghosts[GhostRed]
	gh.Mode = ModeScatter
	dirBefore := gh.Dir

	g.phaseTicks = 1
	g.tickTimers()

	if g.scheduledMode() != ModeChase {
		t.Fatalf("scheduled mode = %v, want chase after the flip", g.scheduledMode())
	}
	if gh.Mode != ModeChase {
		t.Errorf("ghost mode = %v, want chase", gh.Mode)
	}
	if !gh.reversePending {
		t.Fatal("schedule flip did not mark the reversal")
	}

	g.aiStep(gh)
	if gh.Dir != dirBefore.Opposite() {
		t.Errorf("heading = %v, want reversed %v", gh.Dir, dirBefore.Opposite())
	}
}

func TestFrightFreezesSchedule(t *testing.T) {
	g := newPlayingGame(t, 1)
	phase := g.phaseTicks
	g.frightTicks = 10

	g.tickTimers()
	if g.phaseTicks != phase {
		t.Error("scatter/chase schedule advanced during fright")
	}
	if g.frightTicks != 9 {
		t.Errorf("fright ticks = %d, want 9", g.frightTicks)
	}
}

func TestFrightExpiryRestoresScheduledMode(t *testing.T) {
	g := newPlayingGame(t, 1)
	g.frightTicks = 1
	for i := range g.ghosts {
		g.ghosts[i].Mode = ModeFrightened
	}

	g.tickTimers()
	want := g.scheduledMode()
	for i := range g.ghosts {
		if g.ghosts[i].Mode != want {
			t.Errorf("%v mode = %v, want %v", g.ghosts[i].ID, g.ghosts[i].Mode, want)
		}
	}
}

func TestLevelClearAdvancesLevel(t *testing.T) {
	g := newPlayingGame(t, 1)

	// Clear the board by hand and step once.
	for y := 0; y < MazeHeight; y++ {
		for x := 0; x < MazeWidth; x++ {
			g.maze.EatAt(Tile{X: x, Y: y})
		}
	}
	g.Step(emptyInput())
	if g.stage != stageLevelClear {
		t.Fatalf("stage = %q, want level_clear on an empty board", g.stage)
	}

	in := emptyInput()
	for i := 0; i < levelClearTicks+1 && g.stage == stageLevelClear; i++ {
		g.Step(in)
	}
	if g.levelIndex != 1 {
		t.Errorf("level index = %d, want 1", g.levelIndex)
	}
	if g.maze.PelletsRemaining() == 0 {
		t.Error("new level starts with a full board")
	}
}

func TestGameOverAfterLastLife(t *testing.T) {
	g := newPlayingGame(t, 1)
	g.lives = 1

	gh := &g.ghosts[GhostRed]
	gh.Mode = ModeChase
	gh.placeAt(g.player.Pos, DirLeft)

	in := emptyInput()
	g.Step(in)
	for i := 0; i < dyingTicks+1 && g.stage == stageDying; i++ {
		g.Step(in)
	}

	if !g.gameOver {
		t.Fatal("game over flag not set after the last life")
	}
	if g.stage != stageGameOver {
		t.Errorf("stage = %q, want game_over", g.stage)
	}
	if !g.State().GameOver {
		t.Error("State() does not report game over")
	}
}

func TestAttractDemoRunsThroughQueue(t *testing.T) {
	g := newPlayingGame(t, 1)
	g.enterAttract()

	in := emptyInput()
	start := g.Snapshot()
	for i := 0; i < 120; i++ {
		g.Step(in)
		if g.stage != stageAttract {
			t.Fatalf("left attract at tick %d", i)
		}
	}

	moved := false
	snap := g.Snapshot()
	for i := range snap.Ghosts {
		if snap.Ghosts[i] != start.Ghosts[i] {
			moved = true
		}
	}
	if !moved {
		t.Error("demo ghosts never moved")
	}
}

func TestAttractStartsOnInput(t *testing.T) {
	g := newPlayingGame(t, 1)
	g.enterAttract()

	in := emptyInput()
	in.Set(core.ActionConfirm)
	g.Step(in)

	if g.stage != stageStarting {
		t.Errorf("stage = %q, want starting after confirm", g.stage)
	}
	if g.score != 0 {
		t.Errorf("score = %d, want a fresh game", g.score)
	}
}

func TestRegistryRegistration(t *testing.T) {
	g := New()
	if g.ID() != "chomp" {
		t.Errorf("ID = %q, want chomp", g.ID())
	}
	if g.Title() == "" {
		t.Error("empty title")
	}
}
