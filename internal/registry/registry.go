// Package registry maps variant ids to game factories. Each maze chase
// variant registers itself from an init function, so the shells and the CLI
// can list and build variants by id without importing the game package
// directly.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-mazechase/internal/core"
)

// ErrUnknownVariant is returned by Create for ids nobody registered.
var ErrUnknownVariant = errors.New("registry: unknown variant")

// Game is what a shell drives: a tick-stepped simulation that draws into a
// screen buffer. Implementations do no I/O and never import Bubble Tea.
type Game interface {
	// ID is the variant id, e.g. "mazechase" or "mazechase_reset".
	// Runs are stored under it.
	ID() string

	// Title is the display name, e.g. "Maze Chase (Corner Reset)".
	Title() string

	// Reset builds a new round from the screen size, seed and start level.
	// Called before the first tick and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the actions held during it
	// (a steering direction, pause, restart).
	Step(in core.InputFrame) core.StepResult

	// Render draws the HUD and the maze into a cleared screen.
	Render(dst *core.Screen)

	// State reports score, level, pause and game over.
	State() core.GameState
}

// VariantInfo describes a registered variant.
type VariantInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game for one variant.
type Factory func() Game

type variant struct {
	title   string
	factory Factory
}

var (
	mu       sync.RWMutex
	variants = make(map[string]variant)
)

// Register adds a variant. It panics when the id is taken, since two init
// functions claiming one id is a build mistake.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}
	variants[id] = variant{title: f().Title(), factory: f}
}

// List returns every registered variant sorted by id.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]VariantInfo, 0, len(variants))
	for id, v := range variants {
		out = append(out, VariantInfo{ID: id, Title: v.title})
	}
	slices.SortFunc(out, func(a, b VariantInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Lookup returns the id and title of a variant without building it.
func Lookup(id string) (VariantInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return VariantInfo{}, false
	}
	return VariantInfo{ID: id, Title: v.title}, true
}

// Create builds a new game for the variant.
func Create(id string) (Game, error) {
	mu.RLock()
	v, ok := variants[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, id)
	}
	return v.factory(), nil
}

// Exists reports whether the variant is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
