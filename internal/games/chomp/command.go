package chomp

// Opcode identifies a deferred command. The full range 0-31 is bound in
// the dispatch table, so dispatch is total and unknown opcodes cannot
// occur.
type Opcode byte

const (
	OpNop             Opcode = 0x00
	OpAdvanceSubstate Opcode = 0x01 // bump the round sub-state counter
	OpResetSubstate   Opcode = 0x02
	OpEnergize        Opcode = 0x03 // power pellet consumed: frighten ghosts

	// Per-ghost steering evaluation, one pair per ghost. Obstacle
	// evaluation re-steers the ghost toward its current mode target;
	// scatter evaluation forces the corner target. These are the entry
	// points the demo script drives through the queue.
	OpRedEvalObstacle    Opcode = 0x08
	OpRedEvalScatter     Opcode = 0x09
	OpPinkEvalObstacle   Opcode = 0x0A
	OpPinkEvalScatter    Opcode = 0x0B
	OpCyanEvalObstacle   Opcode = 0x0C
	OpCyanEvalScatter    Opcode = 0x0D
	OpOrangeEvalObstacle Opcode = 0x0E
	OpOrangeEvalScatter  Opcode = 0x0F

	OpSoundCue         Opcode = 0x10 // param selects the cue
	OpIncrementCounter Opcode = 0x11 // param selects the counter

	numOpcodes = 32
)

// Sound cue parameters for OpSoundCue. The synthesizer itself is not
// part of this core; cues are recorded per-tick for an external mixer.
const (
	CueMunch byte = iota
	CuePower
	CueGhostEaten
	CueDeath
	CueExtraLife
	CueLevelClear
	numCues
)

// QueueCapacity is the fixed number of command slots.
const QueueCapacity = 32

// emptySlot marks a consumed slot. It sits outside the opcode range, so
// a real command can never be mistaken for it.
const emptySlot = 0xFF

// Command is a two-byte deferred action: opcode plus one parameter byte.
type Command struct {
	Op    Opcode
	Param byte
}

// Encode packs the command into its two-byte wire form.
func (c Command) Encode() [2]byte {
	return [2]byte{byte(c.Op), c.Param}
}

// DecodeCommand unpacks a two-byte slot back into a command.
func DecodeCommand(b [2]byte) Command {
	return Command{Op: Opcode(b[0]), Param: b[1]}
}

// CommandQueue is a fixed ring of command slots with independent read and
// write cursors. Enqueue never checks the read cursor: if producers outrun
// the drain, old unread entries are silently overwritten. That matches the
// original hardware behavior and keeps enqueue timing constant; adding
// backpressure would change observable ordering.
type CommandQueue struct {
	slots [QueueCapacity][2]byte
	w, r  int
}

// NewCommandQueue returns an empty queue with every slot consumed.
func NewCommandQueue() *CommandQueue {
	q := &CommandQueue{}
	for i := range q.slots {
		q.slots[i][0] = emptySlot
	}
	return q
}

// Enqueue appends a command at the write cursor, wrapping at capacity.
func (q *CommandQueue) Enqueue(op Opcode, param byte) {
	q.slots[q.w] = Command{Op: op, Param: param}.Encode()
	q.w = (q.w + 1) % QueueCapacity
}

// Drain pops commands in FIFO order until the read cursor reaches a
// consumed slot, dispatching each through fn. A slot is marked consumed
// before its handler runs, so handlers may enqueue follow-up commands;
// those run in the same pass if they land ahead of the read cursor and
// on the next drain otherwise. The consumed-slot sentinel bounds the
// loop: a full pass over the ring always terminates.
func (q *CommandQueue) Drain(fn func(Command)) {
	for q.slots[q.r][0] != emptySlot {
		cmd := DecodeCommand(q.slots[q.r])
		q.slots[q.r][0] = emptySlot
		q.r = (q.r + 1) % QueueCapacity
		fn(cmd)
	}
}

// handler is one entry of the opcode dispatch table.
type handler func(g *Game, param byte)

// newDispatchTable binds every opcode to a handler. Opcodes owned by
// subsystems outside this core (sound mixer, counters used by the score
// display) are bound to observable counter stubs so the table stays
// total over the whole opcode range.
func newDispatchTable() [numOpcodes]handler {
	var t [numOpcodes]handler

	t[OpNop] = func(*Game, byte) {}
	t[OpAdvanceSubstate] = func(g *Game, _ byte) { g.world.Substate++ }
	t[OpResetSubstate] = func(g *Game, _ byte) { g.world.Substate = 0 }
	t[OpEnergize] = func(g *Game, _ byte) { g.energize() }

	eval := func(id GhostID, scatter bool) handler {
		return func(g *Game, _ byte) { g.evalGhost(id, scatter) }
	}
	t[OpRedEvalObstacle] = eval(GhostRed, false)
	t[OpRedEvalScatter] = eval(GhostRed, true)
	t[OpPinkEvalObstacle] = eval(GhostPink, false)
	t[OpPinkEvalScatter] = eval(GhostPink, true)
	t[OpCyanEvalObstacle] = eval(GhostCyan, false)
	t[OpCyanEvalScatter] = eval(GhostCyan, true)
	t[OpOrangeEvalObstacle] = eval(GhostOrange, false)
	t[OpOrangeEvalScatter] = eval(GhostOrange, true)

	t[OpSoundCue] = func(g *Game, param byte) {
		if param < numCues {
			g.world.Cues[param]++
		}
	}

	// Everything else, OpIncrementCounter included, belongs to excluded
	// subsystems: count invocations and nothing more.
	for i := range t {
		if t[i] == nil {
			op := Opcode(i)
			t[i] = func(g *Game, _ byte) { g.world.Counters[op]++ }
		}
	}
	return t
}
