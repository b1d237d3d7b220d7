// Package session tracks a player's runs on behalf of a host: it turns the
// events of each frame into sounds, log lines and saved runs.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/storage"
)

// SoundPlayer plays effects for game events.
type SoundPlayer interface {
	PlayBounce()
	PlayDeath()
}

type silentPlayer struct{}

func (silentPlayer) PlayBounce() {}
func (silentPlayer) PlayDeath()  {}

// Config holds the optional collaborators of a Recorder.
type Config struct {
	Store  *storage.Store // Runs are saved on death when set
	Logger *log.Logger    // Discards output when nil
	Sound  SoundPlayer    // Silent when nil
	Player string         // Recorded with saved runs
}

// Recorder follows one game from boot to exit.
type Recorder struct {
	gameID string
	seed   int64
	cfg    Config

	runStart time.Time
	bounces  int
	saved    bool // Whether the current run has been recorded
}

// NewRecorder creates a recorder for a game booted with seed at now.
func NewRecorder(gameID string, seed int64, cfg Config, now time.Time) *Recorder {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Sound == nil {
		cfg.Sound = silentPlayer{}
	}
	cfg.Logger.Info("game started", "game", gameID, "seed", seed)

	return &Recorder{
		gameID:   gameID,
		seed:     seed,
		cfg:      cfg,
		runStart: now,
	}
}

// Handle reacts to the events of one frame.
func (r *Recorder) Handle(events []core.Event, now time.Time) {
	logger := r.cfg.Logger
	for _, e := range events {
		switch e.Kind {
		case core.EventRestart:
			r.runStart = now
			r.bounces = 0
			r.saved = false
			logger.Info("run restarted")

		case core.EventBounce:
			r.bounces++
			r.cfg.Sound.PlayBounce()
			logger.Debug("bounce", "x", e.Pos.X, "y", e.Pos.Y, "score", e.Score)

		case core.EventTileSpawned:
			logger.Debug("tile spawned", "x", e.Pos.X)

		case core.EventDeath:
			r.cfg.Sound.PlayDeath()
			score := core.RoundScore(e.Score)
			logger.Info("player died", "score", score, "bounces", r.bounces)
			r.save(score, now)
		}
	}
}

// Bounces returns the number of bounces in the current run.
func (r *Recorder) Bounces() int {
	return r.bounces
}

// save records the finished run once. Zero scores are not kept.
func (r *Recorder) save(score int, now time.Time) {
	if r.saved || score <= 0 {
		return
	}
	r.saved = true
	if r.cfg.Store == nil {
		return
	}

	run := storage.Run{
		GameID:   r.gameID,
		Score:    score,
		Bounces:  r.bounces,
		Duration: now.Sub(r.runStart),
		Seed:     r.seed,
		Player:   r.cfg.Player,
	}
	if _, err := r.cfg.Store.SaveRun(run); err != nil {
		r.cfg.Logger.Warn("could not save run", "error", err)
	}
}
