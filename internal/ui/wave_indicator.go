// internal/ui/wave_indicator.go
package ui

import (
	"image/color"

	"go-party-arcade/internal/config"
	"go-party-arcade/internal/ui/caption"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// WaveIndicator shows the level and wave in roman numerals, e.g. "II · III".
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	FinalColor       color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

// NewWaveIndicator creates a wave indicator centered on x.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.HealthHighColor,
		FinalColor:       config.HealthColor,
		OutlineColor:     config.TextLightColor,
		OutlineThickness: 2,
	}
}

// Draw renders the label. The last wave of a level is drawn in FinalColor.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, level, wave int) {
	label := caption.WaveLabel(level, wave)
	if label == "" {
		return
	}
	fill := i.Color
	if wave >= config.WavesPerLevel {
		fill = i.FinalColor
	}
	DrawOutlined(screen, label, face, i.X, i.Y, i.OutlineThickness, fill, i.OutlineColor)
}
