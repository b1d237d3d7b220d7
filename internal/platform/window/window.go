// Package window hosts the game in a desktop window with Ebitengine.
// The logical resolution equals the world size, one pixel per world unit.
package window

import (
	"errors"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
	"github.com/vovakirdan/tui-doodle/internal/platform/session"
	"github.com/vovakirdan/tui-doodle/internal/world"
)

// deathFade is how long the death text takes to fade in.
const deathFade = 0.6

var (
	colorBackground = color.RGBA{R: 0xf4, G: 0xef, B: 0xe1, A: 0xff}
	colorGrid       = color.RGBA{R: 0xe6, G: 0xdf, B: 0xcc, A: 0xff}
	colorTile       = color.RGBA{R: 0x5c, G: 0xb8, B: 0x3a, A: 0xff}
	colorTileEdge   = color.RGBA{R: 0x3d, G: 0x85, B: 0x24, A: 0xff}
	colorPlayer     = color.RGBA{R: 0xd9, G: 0xc4, B: 0x2e, A: 0xff}
	colorEye        = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	colorDebug      = color.RGBA{R: 0xe0, G: 0x30, B: 0xe0, A: 0xff}
)

// palette maps core colors to window colors.
var palette = map[core.Color]color.Color{
	core.ColorDefault: color.Black,
	core.ColorBlack:   color.Black,
	core.ColorRed:     color.RGBA{R: 0xd0, G: 0x20, B: 0x20, A: 0xff},
	core.ColorGreen:   colorTile,
	core.ColorYellow:  colorPlayer,
	core.ColorWhite:   color.White,
	core.ColorGray:    color.Gray{Y: 0x80},
}

// keys maps each action to the keys that hold it.
var keys = map[core.Action][]ebiten.Key{
	core.ActionLeft:    {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRight:   {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionPause:   {ebiten.KeyP, ebiten.KeyEscape},
	core.ActionDebug:   {ebiten.KeyF1, ebiten.KeyBackquote},
}

// Options configures the window host.
type Options struct {
	Scale    int // Window pixels per world unit
	Recorder session.Config
}

// Host implements ebiten.Game around a doodle game.
type Host struct {
	game     *doodle.Game
	recorder *session.Recorder
	width    int
	height   int
	face     text.Face

	fade      *gween.Tween
	fadeAlpha float32
}

// NewHost boots game with cfg and wraps it for Ebitengine.
func NewHost(game *doodle.Game, cfg core.RuntimeConfig, rec session.Config) *Host {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	wc := game.Config().World
	return &Host{
		game:     game,
		recorder: session.NewRecorder(game.ID(), cfg.Seed, rec, time.Now()),
		width:    int(wc.HalfWidth * 2),
		height:   int(wc.HalfHeight * 2),
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update advances the game by one tick.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	frame := core.NewInputFrame()
	for action, ks := range keys {
		for _, k := range ks {
			if ebiten.IsKeyPressed(k) {
				frame.Set(action)
			}
		}
	}

	dt := 1.0 / float64(ebiten.TPS())
	res := h.game.Step(dt, frame)
	h.recorder.Handle(res.Events, time.Now())

	if core.HasEvent(res.Events, core.EventRestart) {
		h.fade = nil
		h.fadeAlpha = 0
	}
	if core.HasEvent(res.Events, core.EventDeath) {
		h.fade = gween.New(0, 1, deathFade, ease.OutQuad)
	}
	if h.fade != nil {
		var done bool
		h.fadeAlpha, done = h.fade.Update(float32(dt))
		if done {
			h.fade = nil
		}
	}
	return nil
}

// Draw renders the world.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	for y := 0; y < h.height; y += 32 {
		vector.DrawFilledRect(screen, 0, float32(y), float32(h.width), 1, colorGrid, false)
	}

	w := h.game.World()
	debug := h.game.Debug()

	for _, t := range w.Tiles() {
		x, y, tw, th := h.rect(t.Bounds, t.Pos)
		vector.DrawFilledRect(screen, x, y, tw, th, colorTile, false)
		vector.StrokeRect(screen, x, y, tw, th, 2, colorTileEdge, false)
		if debug {
			vector.StrokeRect(screen, x, y, tw, th, 1, colorDebug, false)
		}
	}

	if p, ok := w.Player(); ok {
		h.drawPlayer(screen, p, debug)
	}

	if label, ok := w.ScoreLabel(); ok {
		h.drawLabel(screen, label, 1)
	}
	if marker, ok := w.DeathMarker(); ok {
		h.drawLabel(screen, marker, h.fadeAlpha)
	} else if h.game.State().Paused {
		h.drawLabel(screen, &world.Label{Text: "PAUSED\nPress P to resume", Color: core.ColorBlack}, 1)
	}
}

func (h *Host) drawPlayer(screen *ebiten.Image, p *world.Player, debug bool) {
	x, y, pw, ph := h.rect(p.Bounds, p.Pos)
	vector.DrawFilledRect(screen, x, y, pw, ph, colorPlayer, false)

	// Eye and snout on the facing side.
	eyeX := x + pw*0.25
	snoutX := x - 6
	if p.FacingRight {
		eyeX = x + pw*0.75 - 4
		snoutX = x + pw
	}
	vector.DrawFilledRect(screen, eyeX, y+ph*0.2, 4, 4, colorEye, false)
	vector.DrawFilledRect(screen, snoutX, y+ph*0.3, 6, 6, colorPlayer, false)

	if debug {
		vector.StrokeRect(screen, x, y, pw, ph, 1, colorDebug, false)
	}
}

// drawLabel draws a label with its text centered on the label position.
func (h *Host) drawLabel(screen *ebiten.Image, l *world.Label, alpha float32) {
	sx, sy := h.toScreen(l.Pos)
	clr, ok := palette[l.Color]
	if !ok {
		clr = color.Black
	}

	for i, line := range strings.Split(l.Text, "\n") {
		lw, lh := text.Measure(line, h.face, 0)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(sx)-lw/2, float64(sy)-lh/2+float64(i)*16)
		op.ColorScale.ScaleWithColor(clr)
		op.ColorScale.ScaleAlpha(alpha)
		text.Draw(screen, line, h.face, op)
	}
}

// toScreen converts a world point to logical pixels.
func (h *Host) toScreen(p core.Vec2) (float32, float32) {
	return float32(p.X) + float32(h.width)/2, float32(h.height)/2 - float32(p.Y)
}

// rect returns the top-left corner and size of a box in logical pixels.
func (h *Host) rect(b core.Box, pos core.Vec2) (x, y, w, hgt float32) {
	lo, hi := b.Bounds(pos)
	x, y = h.toScreen(core.Vec2{X: lo.X, Y: hi.Y})
	return x, y, float32(b.Width()), float32(b.Height())
}

// Layout fixes the logical screen to the world size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.width, h.height
}

// Run opens the window and blocks until it is closed.
func Run(game *doodle.Game, cfg core.RuntimeConfig, opts Options) error {
	host := NewHost(game, cfg, opts.Recorder)

	scale := max(opts.Scale, 1)
	ebiten.SetWindowSize(host.width*scale, host.height*scale)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	err := ebiten.RunGame(host)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
