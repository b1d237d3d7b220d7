// Package audio plays short procedural sound effects for game events.
// Audio is optional: every method is a no-op until Initialize succeeds.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)

	bounceDuration = 120 * time.Millisecond
	deathDuration  = 450 * time.Millisecond
)

// SoundManager mixes effects into a single speaker stream.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager. volume scales every effect and is
// clamped to [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
	}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close silences all effects.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayBounce plays a short rising chirp.
func (sm *SoundManager) PlayBounce() {
	sm.play(bounceDuration, NewSweepGenerator(sampleRate, 420, 880, bounceDuration, sm.volume))
}

// PlayDeath plays a falling buzz.
func (sm *SoundManager) PlayDeath() {
	sm.play(deathDuration, NewSweepGenerator(sampleRate, 330, 70, deathDuration, sm.volume*0.8))
}

func (sm *SoundManager) play(d time.Duration, s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.volume == 0 {
		return
	}
	speaker.Lock()
	sm.mixer.Add(beep.Take(sampleRate.N(d), s))
	speaker.Unlock()
}

// SweepGenerator produces a square-ish tone whose pitch slides linearly
// from one frequency to another, with a fast attack and exponential decay.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	gain     float64
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep lasting d.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration, gain float64) *SweepGenerator {
	return &SweepGenerator{
		sr:     sr,
		from:   from,
		to:     to,
		length: max(sr.N(d), 1),
		gain:   gain,
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*progress

		g.phase += 2 * math.Pi * freq / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		// Fundamental plus a third harmonic for some bite.
		sample := 0.7*math.Sin(g.phase) + 0.3*math.Sin(3*g.phase)

		attack := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1)
		envelope := attack * math.Exp(-3*progress)
		sample *= envelope * g.gain * 0.25

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
