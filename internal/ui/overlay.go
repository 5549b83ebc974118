// internal/ui/overlay.go
package ui

import (
	"go-party-arcade/internal/config"
	"go-party-arcade/internal/ui/caption"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawOverlay dims the screen and draws o centered.
func DrawOverlay(screen *ebiten.Image, fonts *Fonts, o caption.Overlay) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	cx := config.ScreenWidth / 2
	y := config.ScreenHeight / 4
	if o.Title != "" {
		DrawCentered(screen, o.Title, fonts.Title, cx, y, config.TextLightColor)
		y += 90
	}
	if o.Big != "" {
		DrawCentered(screen, o.Big, fonts.Huge, cx, y, config.AmmoBarColor)
		y += 200
	}
	for _, line := range o.Lines {
		DrawCentered(screen, line, fonts.Regular, cx, y, config.TextLightColor)
		y += 36
	}
}
