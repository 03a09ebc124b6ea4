// Package chomp implements the maze-chase arcade game: a player clearing
// a pellet maze while four ghosts pursue on a fixed-rate tick simulation.
package chomp

import (
	"math/rand"

	"github.com/mazeworks/chomp/internal/config"
	"github.com/mazeworks/chomp/internal/core"
	"github.com/mazeworks/chomp/internal/registry"
)

// stage is the top-level game state machine.
type stage string

const (
	stageAttract    stage = "attract"
	stageStarting   stage = "starting"
	stagePlaying    stage = "playing"
	stageDying      stage = "dying"
	stageLevelClear stage = "level_clear"
	stageGameOver   stage = "game_over"
)

// Stage transition timings, in ticks at 60 Hz.
const (
	startingTicks   = 120 // "READY!" hold before play
	dyingTicks      = 90  // death animation hold
	levelClearTicks = 120 // board flash before the next level
	gameOverTicks   = 360 // game-over hold before attract resumes
)

// World bundles the flat counters mutated by queued commands. Everything
// the dispatch table touches lives here so command effects stay
// observable and testable in one place.
type World struct {
	// Substate sequences multi-tick scripted stages (the "READY!"
	// countdown); queued advance/reset commands own it.
	Substate int

	// Cues counts sound-cue requests per cue id for an external mixer.
	Cues [numCues]uint64

	// Counters tallies invocations of opcodes owned by excluded
	// subsystems, indexed by opcode.
	Counters [numOpcodes]uint64
}

// Game implements the maze-chase game behind the registry.Game interface.
type Game struct {
	conf config.ChompConfig
	lvl  config.ChompLevel
	rng  *rand.Rand

	maze     *Maze
	queue    *CommandQueue
	dispatch [numOpcodes]handler
	world    World

	player Player
	ghosts [numGhosts]Ghost

	tick       uint64
	levelTick  uint64 // playing ticks since the current life started
	stage      stage
	stageTicks int

	// Scatter/chase schedule. phaseIndex walks the level's phase table;
	// even entries are scatter, odd entries chase. The schedule freezes
	// while frightTicks runs down.
	phaseIndex  int
	phaseTicks  int
	frightTicks int
	ghostChain  int // ghosts eaten on the current power pellet

	score      int
	lives      int
	levelIndex int
	extraLife  bool // bonus life already awarded

	classicBug bool
	gameOver   bool
	paused     bool

	screenW, screenH int
	seed             int64
}

// Package-level variables for config/difficulty (like the other games).
var (
	configPath         string
	difficultyPreset   string
	classicBugOverride *bool
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetClassicBug overrides the configured classic-bug compatibility flag.
func SetClassicBug(enabled bool) {
	classicBugOverride = &enabled
}

// New creates a new Chomp game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("chomp", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "chomp" }

// Title returns the display name.
func (g *Game) Title() string { return "Chomp" }

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	conf, err := config.LoadChomp(configPath)
	if err != nil {
		conf = config.DefaultChompConfig()
	}
	g.conf = conf
	if difficultyPreset != "" {
		config.ApplyChompPreset(&g.conf, config.DifficultyPreset(difficultyPreset))
	}

	g.seed = cfg.Seed
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.queue = NewCommandQueue()
	g.dispatch = newDispatchTable()
	g.world = World{}

	g.tick = 0
	g.score = 0
	g.lives = g.conf.Gameplay.Lives
	g.levelIndex = 0
	g.extraLife = false
	g.classicBug = g.conf.ClassicBugCompatible
	if classicBugOverride != nil {
		g.classicBug = *classicBugOverride
	}
	g.gameOver = false
	g.paused = false

	g.loadLevel()
	g.enterStage(stageStarting)
	g.queue.Enqueue(OpResetSubstate, 0)
}

// loadLevel rebuilds the board and entity state for the current level.
func (g *Game) loadLevel() {
	g.lvl = g.conf.LevelAt(g.levelIndex)
	g.maze = NewMaze()
	g.resetRound()
}

// resetRound re-places every mover and restarts the level timers without
// touching eaten pellets. Called on level load and after a death.
func (g *Game) resetRound() {
	g.levelTick = 0
	g.phaseIndex = 0
	g.phaseTicks = g.phaseDuration(0)
	g.frightTicks = 0
	g.ghostChain = 0

	g.player = Player{Alive: true}
	g.player.placeAt(playerStart, DirLeft)
	g.player.speed = g.lvl.Speeds.Player

	for i := range g.ghosts {
		gh := &g.ghosts[i]
		*gh = Ghost{
			ID:            GhostID(i),
			Mode:          ModeScatter,
			inPen:         GhostID(i) != GhostRed,
			scatterTarget: scatterCorners[i],
		}
		gh.placeAt(ghostPenHome[i], DirLeft)
		gh.speed = g.lvl.Speeds.Ghost
	}
}

// phaseDuration looks up one entry of the scatter/chase table. A zero or
// missing entry means the phase holds for the remainder of the level.
func (g *Game) phaseDuration(index int) int {
	if index >= len(g.lvl.PhaseTicks) {
		return 0
	}
	return g.lvl.PhaseTicks[index]
}

// scheduledMode is the mode the current phase prescribes for ghosts that
// are neither frightened nor eaten.
func (g *Game) scheduledMode() GhostMode {
	if g.phaseIndex%2 == 0 {
		return ModeScatter
	}
	return ModeChase
}

func (g *Game) enterStage(s stage) {
	g.stage = s
	g.stageTicks = 0
}

// Step advances the game by one tick: drain the command queue completely,
// then run the current stage. Gameplay (input, AI, movement, collision)
// only happens in the playing stage; the drain always happens first so
// deferred commands land before any logic reads the state they mutate.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && (g.gameOver || g.stage == stageAttract) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && g.stage == stagePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.queue.Drain(func(cmd Command) {
		g.dispatch[cmd.Op](g, cmd.Param)
	})

	switch g.stage {
	case stageAttract:
		g.attractTick(input)
	case stageStarting:
		g.startingTick()
	case stagePlaying:
		g.playTick(input)
	case stageDying:
		g.dyingTick()
	case stageLevelClear:
		g.levelClearTick()
	case stageGameOver:
		g.stageTicks++
		if g.stageTicks >= gameOverTicks {
			g.enterAttract()
		}
	}

	return core.StepResult{State: g.State()}
}

// startFromAttract begins a fresh game on any input during the demo.
func (g *Game) startFromAttract() {
	g.Reset(core.RuntimeConfig{
		Seed:    g.rng.Int63(),
		ScreenW: g.screenW,
		ScreenH: g.screenH,
	})
}

// enterAttract starts the self-running demo: ghosts scatter around an
// untouched board, steered entirely through queued commands.
func (g *Game) enterAttract() {
	g.maze = NewMaze()
	g.resetRound()
	// Demo ghosts roam the open board, not the pen.
	demoStarts := [numGhosts]Tile{
		{X: 6, Y: 5},
		{X: 21, Y: 5},
		{X: 6, Y: 26},
		{X: 21, Y: 26},
	}
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		gh.inPen = false
		gh.leavingPen = false
		gh.placeAt(demoStarts[i], DirLeft)
		gh.speed = g.lvl.Speeds.Ghost
	}
	g.enterStage(stageAttract)
}

// attractOps drives one ghost steering pass per ghost through the queue.
var attractOps = [numGhosts]Opcode{
	OpRedEvalScatter,
	OpPinkEvalScatter,
	OpCyanEvalScatter,
	OpOrangeEvalScatter,
}

func (g *Game) attractTick(input core.InputFrame) {
	for _, da := range directionActions {
		if input.Has(da.action) {
			g.startFromAttract()
			return
		}
	}
	if input.Has(core.ActionConfirm) {
		g.startFromAttract()
		return
	}

	// Queue the steering commands now; they dispatch on the next tick's
	// drain, one tick before the movement they steer.
	for _, op := range attractOps {
		g.queue.Enqueue(op, 0)
	}
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		gh.Step(func(from Tile, d Direction) bool {
			return g.maze.GhostLegal(from, d, gh.Mode, gh.leavingPen)
		})
	}
}

func (g *Game) startingTick() {
	g.stageTicks++
	// Three queued sub-state advances pace the countdown.
	if g.stageTicks%(startingTicks/3) == 0 {
		g.queue.Enqueue(OpAdvanceSubstate, 0)
	}
	if g.world.Substate >= 3 || g.stageTicks >= startingTicks*2 {
		g.enterStage(stagePlaying)
	}
}

func (g *Game) dyingTick() {
	g.stageTicks++
	if g.stageTicks < dyingTicks {
		return
	}
	g.lives--
	if g.lives <= 0 {
		g.gameOver = true
		g.enterStage(stageGameOver)
		return
	}
	g.resetRound()
	g.enterStage(stageStarting)
	g.queue.Enqueue(OpResetSubstate, 0)
}

func (g *Game) levelClearTick() {
	g.stageTicks++
	if g.stageTicks < levelClearTicks {
		return
	}
	g.levelIndex++
	g.loadLevel()
	g.enterStage(stageStarting)
	g.queue.Enqueue(OpResetSubstate, 0)
}

// directionActions pairs headings with their input actions, in a fixed
// order so simultaneous presses resolve deterministically.
var directionActions = [4]struct {
	dir    Direction
	action core.Action
}{
	{DirUp, core.ActionUp},
	{DirLeft, core.ActionLeft},
	{DirDown, core.ActionDown},
	{DirRight, core.ActionRight},
}

// playTick is one gameplay tick. Phase order is load-bearing: input, then
// timers, then ghost AI (twice), then movement, then collision. Later
// phases read state the earlier ones mutate within the same tick.
func (g *Game) playTick(input core.InputFrame) {
	g.levelTick++

	// Input: buffer the desired heading; it commits at tile alignment.
	for _, da := range directionActions {
		if input.Has(da.action) {
			g.player.PendingDir = da.dir
		}
	}

	g.tickTimers()
	g.releaseGhosts()

	// The AI step runs twice per tick on purpose: the first pass lets a
	// mode transition land, the second lets the new mode's steering
	// commit within the same tick window.
	g.aiPhase()
	g.aiPhase()

	g.movePhase()
	g.collisionPhase()

	if g.player.PendingDeath {
		g.player.Alive = false
		g.player.PendingDeath = false
		g.queue.Enqueue(OpSoundCue, CueDeath)
		g.enterStage(stageDying)
		return
	}

	if g.maze.PelletsRemaining() == 0 {
		g.queue.Enqueue(OpSoundCue, CueLevelClear)
		g.enterStage(stageLevelClear)
	}
}

// tickTimers advances the fright timer or, when no fright is active, the
// scatter/chase schedule. The schedule freezes during fright.
func (g *Game) tickTimers() {
	if g.frightTicks > 0 {
		g.frightTicks--
		if g.frightTicks == 0 {
			g.endFright()
		}
		return
	}

	if g.phaseTicks <= 0 {
		return // final phase holds for the rest of the level
	}
	g.phaseTicks--
	if g.phaseTicks == 0 {
		g.phaseIndex++
		g.phaseTicks = g.phaseDuration(g.phaseIndex)
		g.flipScheduledModes()
	}
}

// flipScheduledModes moves scatter/chase ghosts to the new phase mode.
// A schedule flip is the one event that makes ghosts reverse.
func (g *Game) flipScheduledModes() {
	mode := g.scheduledMode()
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if gh.Mode != ModeScatter && gh.Mode != ModeChase {
			continue
		}
		gh.Mode = mode
		if !gh.inPen {
			gh.reversePending = true
		}
	}
}

// releaseGhosts opens the pen for ghosts whose release tick has passed.
func (g *Game) releaseGhosts() {
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if !gh.inPen || gh.leavingPen {
			continue
		}
		if g.levelTick >= g.releaseTick(gh.ID) {
			gh.leavingPen = true
		}
	}
}

func (g *Game) releaseTick(id GhostID) uint64 {
	if int(id) >= len(g.lvl.ReleaseTicks) {
		return 0
	}
	return uint64(g.lvl.ReleaseTicks[id])
}

// aiPhase runs one AI step for every ghost: frightened-contact hand-off
// first (a frightened ghost touching the player is eaten before any
// movement this tick), then mode bookkeeping and steering.
func (g *Game) aiPhase() {
	for i := range g.ghosts {
		gh := &g.ghosts[i]

		if gh.Mode == ModeFrightened && gh.Pos == g.player.Pos {
			g.eatGhost(gh)
		}

		g.aiStep(gh)
	}
}

// aiStep updates one ghost's mode housekeeping and, at tile alignment,
// buffers its next heading.
func (g *Game) aiStep(gh *Ghost) {
	// Pen exit: an eaten ghost that reached the recovery tile revives
	// and walks back out through the door.
	if gh.Mode == ModeEaten && gh.Pos == penRecovery && gh.Aligned() {
		gh.Mode = g.scheduledMode()
		gh.inPen = true
		gh.leavingPen = true
		g.applyGhostSpeed(gh)
	}
	if gh.leavingPen && gh.Pos == penDoorOut && gh.Aligned() {
		gh.inPen = false
		gh.leavingPen = false
		gh.Dir = DirLeft
		gh.PendingDir = DirLeft
	}

	if gh.reversePending {
		gh.Dir = gh.Dir.Opposite()
		gh.PendingDir = gh.Dir
		gh.reversePending = false
	}

	if !gh.Aligned() {
		return
	}

	if gh.Mode == ModeFrightened && !gh.leavingPen {
		gh.PendingDir = chooseFrightenedDirection(g.maze, g.rng, gh.Pos, gh.Dir, gh.leavingPen)
		return
	}
	gh.PendingDir = chooseDirection(g.maze, gh.Pos, gh.Dir, g.ghostTarget(gh), gh.Mode, gh.leavingPen)
}

// ghostTarget computes the tile a ghost is steering toward.
func (g *Game) ghostTarget(gh *Ghost) Tile {
	if gh.leavingPen {
		return penDoorOut
	}
	switch gh.Mode {
	case ModeEaten:
		return penRecovery
	case ModeChase:
		return chaseTarget(gh.ID, g.player.Pos, g.player.Dir, g.classicBug)
	default:
		return gh.scatterTarget
	}
}

// movePhase integrates one tick of motion for every mover and handles
// pellet consumption at the player's tile.
func (g *Game) movePhase() {
	g.player.speed = g.lvl.Speeds.Player
	if g.frightTicks > 0 {
		g.player.speed = g.lvl.Speeds.FrightPlayer
	}
	g.player.Step(g.maze.PlayerLegal)

	if g.player.Aligned() {
		g.eatPellet()
	}

	for i := range g.ghosts {
		gh := &g.ghosts[i]
		g.applyGhostSpeed(gh)
		gh.Step(func(from Tile, d Direction) bool {
			return g.maze.GhostLegal(from, d, gh.Mode, gh.leavingPen)
		})
	}
}

func (g *Game) applyGhostSpeed(gh *Ghost) {
	switch gh.Mode {
	case ModeFrightened:
		gh.speed = g.lvl.Speeds.FrightGhost
	case ModeEaten:
		gh.speed = g.lvl.Speeds.EatenGhost
	default:
		gh.speed = g.lvl.Speeds.Ghost
	}
}

// eatPellet consumes whatever sits on the player's tile. Power pellets
// do not frighten ghosts directly: the energize command goes through the
// queue and lands on the next tick's drain, matching the original's
// one-tick deferral.
func (g *Game) eatPellet() {
	points, power := g.maze.EatAt(g.player.Pos)
	if points == 0 {
		return
	}
	g.addScore(points)
	if power {
		g.queue.Enqueue(OpEnergize, 0)
		g.queue.Enqueue(OpSoundCue, CuePower)
		return
	}
	g.queue.Enqueue(OpSoundCue, CueMunch)
}

// energize is the OpEnergize handler: frighten every ghost that is not
// returning to the pen and reverse the ones on the board.
func (g *Game) energize() {
	g.ghostChain = 0
	if g.lvl.FrightTicks <= 0 {
		return // later levels: power pellets only score
	}
	g.frightTicks = g.lvl.FrightTicks
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if gh.Mode == ModeEaten {
			continue
		}
		gh.Mode = ModeFrightened
		if !gh.inPen {
			gh.reversePending = true
		}
	}
}

// endFright returns frightened ghosts to the scheduled phase. No
// reversal on the way out.
func (g *Game) endFright() {
	mode := g.scheduledMode()
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if gh.Mode == ModeFrightened {
			gh.Mode = mode
		}
	}
}

// evalGhost is the handler behind the per-ghost steering opcodes: re-run
// the steering choice for one ghost, optionally forcing its scatter
// corner as the target. The attract demo drives ghosts with these.
func (g *Game) evalGhost(id GhostID, scatter bool) {
	gh := &g.ghosts[id]
	if !gh.Aligned() || gh.Mode == ModeFrightened || gh.leavingPen {
		return
	}
	target := g.ghostTarget(gh)
	if scatter {
		target = gh.scatterTarget
	}
	gh.PendingDir = chooseDirection(g.maze, gh.Pos, gh.Dir, target, gh.Mode, gh.leavingPen)
}

// collisionPhase hands off player/ghost contact after movement. A
// frightened ghost is eaten; any other contact kills the player.
func (g *Game) collisionPhase() {
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if gh.Pos != g.player.Pos {
			continue
		}
		switch gh.Mode {
		case ModeFrightened:
			g.eatGhost(gh)
		case ModeEaten:
			// Already a pair of eyes heading home; no contact.
		default:
			g.player.PendingDeath = true
		}
	}
}

// eatGhost scores a frightened ghost and sends it home. The bonus
// doubles per ghost on one power pellet: 200, 400, 800, 1600.
func (g *Game) eatGhost(gh *Ghost) {
	chain := g.ghostChain
	if chain > 3 {
		chain = 3
	}
	g.addScore(200 << chain)
	g.ghostChain++

	gh.Mode = ModeEaten
	g.applyGhostSpeed(gh)
	g.queue.Enqueue(OpSoundCue, CueGhostEaten)
}

// addScore adds points and awards the one-time extra life when the
// configured threshold is crossed.
func (g *Game) addScore(points int) {
	before := g.score
	g.score += points
	bonus := g.conf.Gameplay.ExtraLifeScore
	if bonus > 0 && !g.extraLife && before < bonus && g.score >= bonus {
		g.extraLife = true
		g.lives++
		g.queue.Enqueue(OpSoundCue, CueExtraLife)
	}
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.levelIndex + 1,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
