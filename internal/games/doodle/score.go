package doodle

import (
	"fmt"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// updateScore accrues score while the player rises. The increment is per
// frame, not per second, so the rate depends on the host frame rate.
func (g *Game) updateScore() {
	if !g.ascending() {
		return
	}
	p, _ := g.world.Player()
	g.score += p.VelY / g.cfg.Scoring.VelocityDivisor

	label, ok := g.world.ScoreLabel()
	if !ok {
		panic("doodle: score label missing; Reset was not called")
	}
	label.Text = FormatScore(g.score)
}

// FormatScore renders a score the way the label shows it.
func FormatScore(score float64) string {
	return fmt.Sprintf("Score: %d", core.RoundScore(score))
}
