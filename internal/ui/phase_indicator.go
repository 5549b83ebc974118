// internal/ui/phase_indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-party-arcade/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var phaseColors = map[component.Phase]color.RGBA{
	component.PhasePreGame:       {128, 128, 128, 255},
	component.PhaseCountdown:     {255, 215, 0, 255},
	component.PhasePlaying:       {50, 205, 50, 255},
	component.PhaseWaveComplete:  {50, 100, 255, 255},
	component.PhaseLevelComplete: {180, 50, 230, 255},
	component.PhaseGameOver:      {220, 60, 60, 255},
	component.PhaseVictory:       {255, 255, 255, 255},
}

// PhaseColor returns the indicator color of a phase.
func PhaseColor(p component.Phase) color.RGBA {
	if c, ok := phaseColors[p]; ok {
		return c
	}
	return color.RGBA{0, 0, 0, 255}
}

// PhaseIndicator is a colored dot that pulses when the phase changes.
type PhaseIndicator struct {
	X, Y       float32
	Radius     float32
	phase      component.Phase
	LastChange time.Time
}

// NewPhaseIndicator creates an indicator centered on x, y.
func NewPhaseIndicator(x, y, radius float32) *PhaseIndicator {
	return &PhaseIndicator{X: x, Y: y, Radius: radius, phase: -1}
}

// pulseScale decays from 1.3 to 1 after a change.
func pulseScale(elapsed time.Duration) float32 {
	return float32(1.0 + 0.3*math.Exp(-elapsed.Seconds()*8))
}

// Draw renders the dot, restarting the pulse when p differs from the last call.
func (i *PhaseIndicator) Draw(screen *ebiten.Image, p component.Phase, now time.Time) {
	if p != i.phase {
		i.phase = p
		i.LastChange = now
	}
	r := i.Radius * pulseScale(now.Sub(i.LastChange))
	vector.DrawFilledCircle(screen, i.X, i.Y, r, PhaseColor(p), true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}
