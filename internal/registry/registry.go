// Package registry maps game-mode IDs to World factories. Modes register
// themselves in init(), so the CLI and the TUI can list and start them
// without importing the simulation's constructors directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/brick3d/internal/core"
)

// Game is what the platform drives: a fixed-step simulation that can be
// reset, stepped with abstract input and drawn into a cell buffer.
type Game interface {
	// ID returns the mode identifier used on the command line and in the
	// score database (e.g. "brick3d", "brick3d_endless").
	ID() string

	// Title returns a display name.
	Title() string

	// Reset starts a new run. The RuntimeConfig carries the tick rate and
	// the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state. Rendering never mutates the run.
	Render(dst *core.Screen)

	// State returns the coarse status of the run.
	State() core.GameState
}

// ModeInfo describes a registered mode.
type ModeInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh, not yet reset, game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a mode. It panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered modes sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]ModeInfo, 0, len(factories))
	for id := range factories {
		out = append(out, ModeInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
