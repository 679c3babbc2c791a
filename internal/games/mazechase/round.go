package mazechase

import (
	"fmt"

	"github.com/vovakirdan/tui-mazechase/internal/config"
	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/maze"
)

// RoundState is the phase of a round.
type RoundState string

const (
	StatePlaying         RoundState = "playing"
	StateLevelTransition RoundState = "level_transition"
	StateGameOver        RoundState = "game_over"
)

// Command is the steering input for one tick.
type Command int

const (
	KeepCourse Command = iota
	SteerUp
	SteerDown
	SteerLeft
	SteerRight
)

// Direction returns the direction a command steers to, or false for KeepCourse.
func (c Command) Direction() (maze.Direction, bool) {
	switch c {
	case SteerUp:
		return maze.Up, true
	case SteerDown:
		return maze.Down, true
	case SteerLeft:
		return maze.Left, true
	case SteerRight:
		return maze.Right, true
	default:
		return maze.None, false
	}
}

// EventKind names something that happened during a tick.
type EventKind string

const (
	EventPelletEaten EventKind = "pellet_eaten"
	EventLevelUp     EventKind = "level_up"
	EventCaught      EventKind = "caught"
)

// Event is reported by Tick. Level and Score are the values after the event.
type Event struct {
	Kind  EventKind
	Pos   maze.Position
	Level int
	Score int
}

// TickResult is the outcome of one Tick.
type TickResult struct {
	Events   []Event
	Snapshot Snapshot
}

// Round owns the maze, the agent, the pursuers and the collectibles, and
// advances them one tick at a time.
type Round struct {
	cfg      config.MazeChaseConfig
	rng      maze.Rand
	grid     *maze.Grid
	agent    Agent
	pursuers []*Pursuer
	pellets  *PelletSet
	coin     maze.Position
	level    int
	tick     uint64
	state    RoundState
}

// NewRound validates cfg and generates the first maze at startLevel
// (values below 1 mean cfg.StartLevel).
func NewRound(cfg config.MazeChaseConfig, startLevel int, rng maze.Rand) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new round: %w", err)
	}
	if startLevel < 1 {
		startLevel = cfg.StartLevel
	}

	r := &Round{
		cfg:   cfg,
		rng:   rng,
		level: startLevel,
		state: StatePlaying,
	}

	grid, err := r.generate(startLevel)
	if err != nil {
		return nil, fmt.Errorf("new round: %w", err)
	}
	r.grid = grid

	dir, _ := maze.ParseDirection(cfg.Agent.InitialDirection)
	r.agent = Agent{Pos: r.spawnPoint(), Dir: dir}

	for _, corner := range cfg.Pursuers.Spawns {
		col, row, _ := corner.Resolve(cfg.Grid.Cols, cfg.Grid.Rows)
		home := maze.Position{Col: col, Row: row}
		pos, _ := grid.NearestPassable(home)
		r.pursuers = append(r.pursuers, NewPursuer(home, pos, cfg.Pursuers.MoveEvery))
	}

	r.pellets = NewPelletSet(grid)
	r.coin = r.placeCoin()

	return r, nil
}

func (r *Round) generate(level int) (*maze.Grid, error) {
	return maze.Generate(r.cfg.Grid.Cols, r.cfg.Grid.Rows, level, r.rng,
		maze.WithDensity(r.cfg.Difficulty.PerColumn))
}

// spawnPoint is the grid center, or the nearest open cell when the center is a wall.
func (r *Round) spawnPoint() maze.Position {
	p, _ := r.grid.NearestPassable(r.grid.Center())
	return p
}

// placeCoin picks a random open cell other than the agent spawn.
func (r *Round) placeCoin() maze.Position {
	spawn := r.spawnPoint()

	cells := r.grid.PassableCells()
	candidates := cells[:0]
	for _, p := range cells {
		if p != spawn {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return spawn
	}
	return candidates[r.rng.Intn(len(candidates))]
}

// Tick advances the round by one step:
// steer, move the agent, eat, move pursuers, check capture, check the coin.
// After game over Tick changes nothing.
func (r *Round) Tick(cmd Command) TickResult {
	if r.state == StateGameOver {
		return TickResult{Snapshot: r.Snapshot()}
	}

	r.tick++
	var events []Event

	if dir, ok := cmd.Direction(); ok {
		r.agent.Dir = dir
	}

	if r.agent.AttemptMove(r.grid) && r.agent.EatPellet(r.pellets) {
		events = append(events, r.event(EventPelletEaten))
	}

	for _, p := range r.pursuers {
		p.Step(r.grid, r.agent.Pos)
	}

	if r.caught() {
		r.state = StateGameOver
		events = append(events, r.event(EventCaught))
		return TickResult{Events: events, Snapshot: r.Snapshot()}
	}

	if r.agent.Pos == r.coin && r.advanceLevel() {
		events = append(events, r.event(EventLevelUp))
	}

	return TickResult{Events: events, Snapshot: r.Snapshot()}
}

func (r *Round) event(kind EventKind) Event {
	return Event{Kind: kind, Pos: r.agent.Pos, Level: r.level, Score: r.agent.Score}
}

func (r *Round) caught() bool {
	for _, p := range r.pursuers {
		if p.Pos == r.agent.Pos {
			return true
		}
	}
	return false
}

// advanceLevel regenerates the maze one level up. The score carries over;
// pursuers stay where they are unless configured to respawn.
func (r *Round) advanceLevel() bool {
	r.state = StateLevelTransition
	defer func() { r.state = StatePlaying }()

	grid, err := r.generate(r.level + 1)
	if err != nil {
		// Dimensions were validated in NewRound.
		return false
	}

	r.level++
	r.grid = grid
	r.agent.Pos = r.spawnPoint()
	r.pellets = NewPelletSet(grid)
	r.coin = r.placeCoin()

	if r.cfg.Pursuers.ResetOnLevelUp {
		for _, p := range r.pursuers {
			p.Respawn(grid)
		}
	}
	return true
}

// State returns the current phase.
func (r *Round) State() RoundState {
	return r.state
}

// Level returns the current level.
func (r *Round) Level() int {
	return r.level
}

// Score returns the pellets eaten so far.
func (r *Round) Score() int {
	return r.agent.Score
}

// Ticks returns how many ticks have been played.
func (r *Round) Ticks() uint64 {
	return r.tick
}
