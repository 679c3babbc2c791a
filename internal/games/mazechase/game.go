package mazechase

import (
	"math/rand"

	"github.com/vovakirdan/tui-mazechase/internal/config"
	"github.com/vovakirdan/tui-mazechase/internal/core"
	"github.com/vovakirdan/tui-mazechase/internal/registry"
)

// Variant selects a rule set.
type Variant string

const (
	// VariantClassic keeps pursuers where they are when the level changes.
	VariantClassic Variant = "mazechase"
	// VariantCornerReset sends pursuers back to their spawn corners on level-up.
	VariantCornerReset Variant = "mazechase_reset"
)

// hudHeight is the HUD line plus the separator.
const hudHeight = 2

// Game adapts a Round to the registry.Game interface.
type Game struct {
	variant Variant
	cfg     config.MazeChaseConfig
	rng     *rand.Rand
	round   *Round
	err     error // Set when the round could not be built
	events  []Event

	runtime core.RuntimeConfig // Last Reset, kept current by Resize

	paused   bool
	tooSmall bool
}

// New creates a game of the given variant. The variant overrides
// cfg.Pursuers.ResetOnLevelUp.
func New(cfg config.MazeChaseConfig, variant Variant) *Game {
	g := &Game{variant: variant}
	g.Configure(cfg)
	return g
}

func init() {
	registry.Register(string(VariantClassic), func() registry.Game {
		return New(config.DefaultMazeChaseConfig(), VariantClassic)
	})
	registry.Register(string(VariantCornerReset), func() registry.Game {
		return New(config.DefaultMazeChaseConfig(), VariantCornerReset)
	})
}

// Configure replaces the game configuration. It takes effect on the next Reset.
func (g *Game) Configure(cfg config.MazeChaseConfig) {
	if g.variant == VariantCornerReset {
		cfg.Pursuers.ResetOnLevelUp = true
	} else {
		cfg.Pursuers.ResetOnLevelUp = false
	}
	g.cfg = cfg
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantCornerReset {
		return "Maze Chase (Corner Reset)"
	}
	return "Maze Chase"
}

// Reset starts a new round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.paused = false
	g.events = nil
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	start := cfg.StartLevel
	if start < 1 {
		start = g.cfg.StartLevel
	}
	g.round, g.err = NewRound(g.cfg, start, g.rng)
}

// Resize records the screen size without touching the round.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	mazeW, mazeH := g.mazeSize()
	g.tooSmall = w < mazeW || h < mazeH+hudHeight
}

func (g *Game) mazeSize() (int, int) {
	return g.cfg.Grid.Cols * g.cfg.Grid.CellWidth, g.cfg.Grid.Rows
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.events = nil
	if g.round == nil {
		return core.StepResult{State: g.State()}
	}

	// Restart keeps the start level and screen, with a fresh seed
	if input.Has(core.ActionRestart) && g.round.State() == StateGameOver {
		next := g.runtime
		next.Seed = g.rng.Int63()
		g.Reset(next)
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.round.State() == StateGameOver {
		return core.StepResult{State: g.State()}
	}

	res := g.round.Tick(commandFor(input))
	g.events = res.Events

	var out []core.Event
	for _, ev := range res.Events {
		// Pellets are too frequent to report to the shell.
		if ev.Kind == EventPelletEaten {
			continue
		}
		out = append(out, core.Event{Kind: string(ev.Kind), Level: ev.Level, Score: ev.Score})
	}

	return core.StepResult{State: g.State(), Events: out}
}

// commandFor maps the first held direction to a steering command.
func commandFor(input core.InputFrame) Command {
	switch {
	case input.Has(core.ActionUp):
		return SteerUp
	case input.Has(core.ActionDown):
		return SteerDown
	case input.Has(core.ActionLeft):
		return SteerLeft
	case input.Has(core.ActionRight):
		return SteerRight
	default:
		return KeepCourse
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:    g.round.Score(),
		Level:    g.round.Level(),
		GameOver: g.round.State() == StateGameOver,
		Paused:   g.paused,
	}
}

// Snapshot returns the round snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.round == nil {
		return Snapshot{}
	}
	return g.round.Snapshot()
}

// LastEvents returns every event of the most recent tick, pellets included.
func (g *Game) LastEvents() []Event {
	return g.events
}

// Ticks returns how many ticks the current round has played.
func (g *Game) Ticks() uint64 {
	if g.round == nil {
		return 0
	}
	return g.round.Ticks()
}

// Err reports why the round could not be built, if it could not.
func (g *Game) Err() error {
	return g.err
}
