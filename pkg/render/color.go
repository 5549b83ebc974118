// pkg/render/color.go
package render

import (
	"image/color"

	"go-party-arcade/internal/config"
	"go-party-arcade/internal/defs"
)

// FieldColors holds the colors used to paint the playing field.
type FieldColors struct {
	BackgroundColor color.RGBA
	TopBarColor     color.RGBA
	BottomBarColor  color.RGBA
	BreachLineColor color.RGBA
	ProjectileColor color.RGBA
	BucketColor     color.RGBA
	BucketRimColor  color.RGBA
	ShooterColor    color.RGBA
	DeadColor       color.RGBA
	DamageFlash     color.RGBA
	HealFlash       color.RGBA
	StrokeWidth     float32
}

// DefaultFieldColors returns the palette from config.
func DefaultFieldColors() FieldColors {
	return FieldColors{
		BackgroundColor: config.BackgroundColor,
		TopBarColor:     config.TopBarColor,
		BottomBarColor:  config.BottomBarColor,
		BreachLineColor: config.BreachLineColor,
		ProjectileColor: config.ProjectileColor,
		BucketColor:     config.BucketColor,
		BucketRimColor:  config.BucketRimColor,
		ShooterColor:    config.ShooterColor,
		DeadColor:       config.DeadShooterColor,
		DamageFlash:     config.DamageFlashColor,
		HealFlash:       config.HealFlashColor,
		StrokeWidth:     2,
	}
}

// CategoryColor returns the fill of a target category. Unknown categories are
// drawn white.
func CategoryColor(c defs.Category) color.RGBA {
	if clr, ok := config.CategoryColors[string(c)]; ok {
		return clr
	}
	return color.RGBA{255, 255, 255, 255}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha scaled by f, clamped to [0, 1].
func WithAlpha(c color.RGBA, f float64) color.RGBA {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	// ebiten expects premultiplied alpha
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
