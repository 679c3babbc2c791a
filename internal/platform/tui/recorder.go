package tui

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-mazechase/internal/core"
	"github.com/vovakirdan/tui-mazechase/internal/registry"
	"github.com/vovakirdan/tui-mazechase/internal/storage"
)

// resizer is implemented by games that can adapt to a new screen size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// tickCounter is implemented by games that report how long a round lasted.
type tickCounter interface {
	Ticks() uint64
}

// runRecorder logs game events and stores each finished run exactly once.
type runRecorder struct {
	store  *storage.Store
	logger *log.Logger
	saved  bool
}

// observe handles the result of one tick.
func (r *runRecorder) observe(game registry.Game, seed int64, result core.StepResult) {
	for _, ev := range result.Events {
		r.logger.Info(ev.Kind, "game", game.ID(), "level", ev.Level, "score", ev.Score)
	}

	if !result.State.GameOver || r.saved {
		return
	}
	r.saved = true

	var ticks uint64
	if tc, ok := game.(tickCounter); ok {
		ticks = tc.Ticks()
	}

	r.logger.Info("run finished",
		"game", game.ID(),
		"score", result.State.Score,
		"level", result.State.Level,
		"ticks", ticks,
	)

	if r.store == nil {
		return
	}

	id, err := r.store.SaveRun(storage.Run{
		GameID: game.ID(),
		Score:  result.State.Score,
		Level:  result.State.Level,
		Seed:   seed,
		Ticks:  ticks,
	})
	if err != nil {
		r.logger.Warn("could not save run", "error", err)
		return
	}
	r.logger.Debug("run saved", "run", id)
}

// reset prepares the recorder for a new round.
func (r *runRecorder) reset() {
	r.saved = false
}

// newSessionID returns a fresh identifier for log correlation.
func newSessionID() string {
	return uuid.NewString()
}

// resizeGame adapts the game to a new screen size. Games that cannot
// resize in place are restarted unless their round is already over.
func resizeGame(game registry.Game, cfg core.RuntimeConfig, over bool) {
	if rz, ok := game.(resizer); ok {
		rz.Resize(cfg.ScreenW, cfg.ScreenH)
		return
	}
	if !over {
		game.Reset(cfg)
	}
}
