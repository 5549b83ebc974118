// internal/audio/cues.go
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"go-party-arcade/internal/component"
	"go-party-arcade/internal/event"
)

// Cue is a short sound tied to a game event.
type Cue int

const (
	CueShot Cue = iota
	CueHit
	CueBreach
	CueCatch
	CueHeal
	CueCountdown
	CueWaveClear
	CueGameOver
	CueVictory
)

type note struct {
	freq     float64 // 0 is a rest
	duration time.Duration
}

var cueNotes = map[Cue][]note{
	CueShot:      {{1320, 30 * time.Millisecond}},
	CueHit:       {{660, 40 * time.Millisecond}, {990, 40 * time.Millisecond}},
	CueBreach:    {{110, 180 * time.Millisecond}},
	CueCatch:     {{880, 60 * time.Millisecond}},
	CueHeal:      {{523, 80 * time.Millisecond}, {659, 80 * time.Millisecond}, {784, 120 * time.Millisecond}},
	CueCountdown: {{440, 120 * time.Millisecond}},
	CueWaveClear: {{784, 100 * time.Millisecond}, {0, 40 * time.Millisecond}, {784, 160 * time.Millisecond}},
	CueGameOver:  {{330, 200 * time.Millisecond}, {262, 200 * time.Millisecond}, {196, 400 * time.Millisecond}},
	CueVictory:   {{523, 120 * time.Millisecond}, {659, 120 * time.Millisecond}, {784, 120 * time.Millisecond}, {1047, 400 * time.Millisecond}},
}

var cueVolume = map[Cue]float64{
	CueShot:   0.15,
	CueCatch:  0.3,
	CueBreach: 0.6,
}

// Length returns how long a cue plays.
func Length(c Cue) time.Duration {
	var total time.Duration
	for _, n := range cueNotes[c] {
		total += n.duration
	}
	return total
}

// Synth builds the streamer for a cue at the given sample rate.
func Synth(c Cue, rate beep.SampleRate) (beep.Streamer, error) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", c)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := rate.N(n.duration)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("cue %d: %w", c, err)
		}
		parts = append(parts, beep.Take(samples, tone))
	}

	vol, ok := cueVolume[c]
	if !ok {
		vol = 0.4
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: math.Log2(vol)}, nil
}

// CueFor maps a game event to the cue it should play.
func CueFor(e event.Event) (Cue, bool) {
	switch e.Type {
	case event.ShotFired:
		return CueShot, true
	case event.TargetDestroyed:
		return CueHit, true
	case event.TargetBreached:
		return CueBreach, true
	case event.BodyCaught:
		return CueCatch, true
	case event.Healed:
		return CueHeal, true
	case event.MissionComplete:
		return CueVictory, true
	case event.PhaseChanged:
		change, ok := e.Data.(event.PhaseChange)
		if !ok {
			return 0, false
		}
		switch change.To {
		case component.PhaseCountdown:
			return CueCountdown, true
		case component.PhaseWaveComplete:
			return CueWaveClear, true
		case component.PhaseGameOver:
			return CueGameOver, true
		}
	}
	return 0, false
}
