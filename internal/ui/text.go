// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCentered draws s horizontally centered on cx with its top edge at y.
func DrawCentered(dst *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(dst, s, face, cx-b.Dx()/2, y-b.Min.Y, clr)
}

// DrawOutlined draws centered text with a square outline of the given width.
func DrawOutlined(dst *ebiten.Image, s string, face font.Face, cx, y, width int, fill, outline color.Color) {
	for oy := -width; oy <= width; oy++ {
		for ox := -width; ox <= width; ox++ {
			if ox == 0 && oy == 0 {
				continue
			}
			DrawCentered(dst, s, face, cx+ox, y+oy, outline)
		}
	}
	DrawCentered(dst, s, face, cx, y, fill)
}
