// Package doodle implements a Doodle Jump-style endless platformer.
// The player bounces upward across randomly placed tiles; the world scrolls
// down while the player rises, and the run ends when the player falls off
// the bottom of the screen.
package doodle

import (
	"math/rand"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/registry"
	"github.com/vovakirdan/tui-doodle/internal/world"
)

// GameID is the registry and score-store identifier.
const GameID = "doodle"

// DeathText is shown when the player falls.
const DeathText = "You died.\nPress `R` to restart."

// Game implements the Doodle Jump game logic.
type Game struct {
	cfg     config.DoodleConfig
	runtime core.RuntimeConfig
	world   *world.World
	rng     *rand.Rand
	input   *core.InputTracker

	score       float64 // Accrued score; only restart lowers it
	nextTileGap float64 // Distance the spawn line must clear before the next tile

	restartPending bool
	paused         bool
	debug          bool // Draw bounding boxes
	tickCount      int
	events         []core.Event
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path used by registry-created games.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a game with the default configuration.
func New() *Game {
	return NewWithConfig(config.DefaultDoodleConfig())
}

// NewWithConfig creates a game with the given configuration.
func NewWithConfig(cfg config.DoodleConfig) *Game {
	return &Game{
		cfg:   cfg,
		input: core.NewInputTracker(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Doodle Jump"
}

// Reset boots the game: a fresh world with its score label, a freshly seeded
// RNG and the initial tile gap, followed by a restart.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.world = world.New()
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.input.Reset()
	g.events = nil
	g.tickCount = 0
	g.debug = false

	// The boot-time draw excludes the upper bound, unlike every later draw.
	g.nextTileGap = g.uniformHalfOpen(g.cfg.Spawn.GapMin, g.cfg.Spawn.GapMax)

	g.world.SpawnScoreLabel(
		core.Vec2{X: g.cfg.Scoring.LabelX, Y: g.cfg.Scoring.LabelY},
		"Score: 0",
		core.ColorBlack,
	)

	g.restart()
	g.events = nil
}

// RequestRestart queues a restart for the start of the next Step.
func (g *Game) RequestRestart() {
	g.restartPending = true
}

// Step advances the game by one frame of dt seconds.
// in holds the actions held during this frame.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	g.events = nil
	if dt < 0 {
		dt = 0
	}

	g.input.Update(in)
	if g.input.JustPressed(core.ActionRestart) {
		g.RequestRestart()
	}
	if g.input.JustPressed(core.ActionDebug) {
		g.debug = !g.debug
	}

	// Restart is fully applied before any per-frame routine runs.
	if g.restartPending {
		g.restartPending = false
		g.restart()
	}

	if g.input.JustPressed(core.ActionPause) {
		if _, alive := g.world.Player(); alive {
			g.paused = !g.paused
		}
	}
	if g.paused {
		return core.StepResult{State: g.State(), Events: g.events}
	}

	g.tickCount++
	g.updatePlayer(dt)
	g.updateTiles(dt)
	g.updateScore()

	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	_, alive := g.world.Player()
	return core.GameState{
		Score:    core.RoundScore(g.score),
		GameOver: !alive,
		Paused:   g.paused,
	}
}

// World exposes the entity registry to hosts that draw it themselves.
func (g *Game) World() *world.World {
	return g.world
}

// Config returns the game configuration.
func (g *Game) Config() config.DoodleConfig {
	return g.cfg
}

// Score returns the unrounded score.
func (g *Game) Score() float64 {
	return g.score
}

// Debug reports whether bounding boxes should be drawn.
func (g *Game) Debug() bool {
	return g.debug
}

func (g *Game) emit(kind core.EventKind, pos core.Vec2) {
	g.events = append(g.events, core.Event{Kind: kind, Pos: pos, Score: g.score})
}

// uniformHalfOpen returns a value drawn uniformly from [lo, hi).
func (g *Game) uniformHalfOpen(lo, hi float64) float64 {
	return lo + (hi-lo)*g.rng.Float64()
}

// closedSteps is the resolution of uniformClosed; both ends are reachable.
const closedSteps = 1 << 53

// uniformClosed returns a value drawn uniformly from [lo, hi].
func (g *Game) uniformClosed(lo, hi float64) float64 {
	return lo + (hi-lo)*(float64(g.rng.Int63n(closedSteps+1))/closedSteps)
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		cfg, err := config.Load(configPath)
		if err != nil {
			cfg = config.DefaultDoodleConfig()
		}
		return NewWithConfig(cfg)
	})
}
