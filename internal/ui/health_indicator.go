// internal/ui/health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-party-arcade/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthRows          = 3
	HealthCols          = 10
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
)

var emptyCellColor = color.RGBA{0, 0, 0, 255}

// HealthIndicator draws the shared health pool as a grid of circles.
type HealthIndicator struct {
	X, Y float32
}

// NewHealthIndicator creates a health grid with its top-left corner at x, y.
func NewHealthIndicator(x, y float32) *HealthIndicator {
	return &HealthIndicator{X: x, Y: y}
}

// HealthCellColor returns the color of cell j. At or below half health every
// filled cell is red; above it, the surplus over half is drawn blue.
func HealthCellColor(j, health, maxHealth int) color.RGBA {
	if j >= health {
		return emptyCellColor
	}
	half := maxHealth / 2
	if health > half && j < health-half {
		return config.HealthHighColor
	}
	return config.HealthColor
}

// Draw renders the grid with a "health/max" caption above it.
func (i *HealthIndicator) Draw(screen *ebiten.Image, face font.Face, health, maxHealth int) {
	const step = HealthCircleRadius*2 + HealthCircleSpacing
	for j := 0; j < maxHealth; j++ {
		row, col := j/HealthCols, j%HealthCols
		cx := i.X + float32(col)*step + HealthCircleRadius
		cy := i.Y + float32(row)*step + HealthCircleRadius

		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, HealthCellColor(j, health, maxHealth), true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, config.TextLightColor, true)
	}

	caption := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	DrawCentered(screen, caption, face, int(i.X+HealthCols*step/2), int(i.Y)-22, config.TextLightColor)
}

// Height returns the caption plus grid height.
func (i *HealthIndicator) Height() float32 {
	return 22 + HealthRows*(HealthCircleRadius*2+HealthCircleSpacing)
}
