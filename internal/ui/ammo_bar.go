// internal/ui/ammo_bar.go
package ui

import (
	"image/color"
	"strconv"

	"go-party-arcade/internal/component"
	"go-party-arcade/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	ammoBarWidth  = 118
	ammoBarHeight = 12
	borderWidth   = 1
)

var (
	ammoEmptyColor = color.RGBA{90, 90, 90, 220}
	borderColor    = color.White
)

// AmmoBar shows one shooter's name and remaining ammunition, centered under
// the shooter.
type AmmoBar struct {
	Y float32
}

// NewAmmoBar creates an ammo bar drawn at height y.
func NewAmmoBar(y float32) *AmmoBar {
	return &AmmoBar{Y: y}
}

// FillRatio is ammo/maxAmmo clamped to [0, 1].
func FillRatio(ammo, maxAmmo int) float64 {
	if maxAmmo <= 0 || ammo <= 0 {
		return 0
	}
	r := float64(ammo) / float64(maxAmmo)
	if r > 1 {
		return 1
	}
	return r
}

// Draw renders the bar for shooter s labeled with name.
func (b *AmmoBar) Draw(screen *ebiten.Image, face font.Face, name string, s component.Shooter) {
	x := float32(s.Position.X) - ammoBarWidth/2
	vector.StrokeRect(screen, x, b.Y, ammoBarWidth, ammoBarHeight, borderWidth, borderColor, true)

	fill := config.AmmoBarColor
	if !s.Alive {
		fill = ammoEmptyColor
	}
	w := float32(float64(ammoBarWidth-borderWidth*2) * FillRatio(s.Ammo, s.MaxAmmo))
	if w > 0 {
		vector.DrawFilledRect(screen, x+borderWidth, b.Y+borderWidth, w, ammoBarHeight-borderWidth*2, fill, true)
	}

	label := name + " " + strconv.Itoa(s.Ammo)
	if !s.Alive {
		label = name + " down"
	}
	DrawCentered(screen, label, face, int(s.Position.X), int(b.Y)+ammoBarHeight+6, config.TextLightColor)
}
