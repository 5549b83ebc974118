// pkg/render/field.go
package render

import (
	"go-party-arcade/internal/app"
	"go-party-arcade/internal/component"
	"go-party-arcade/internal/config"
	"go-party-arcade/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	shooterWidth  = 48
	shooterHeight = 36
	flashStrength = 0.35
)

// FieldRenderer paints the shooting gallery from a published snapshot. The
// field is drawn to an offscreen image first so screen shake can move it as
// one piece.
type FieldRenderer struct {
	colors       FieldColors
	screenWidth  int
	screenHeight int
	field        *ebiten.Image
	rng          *utils.PRNGService
}

// NewFieldRenderer allocates the offscreen field image.
func NewFieldRenderer(colors FieldColors, screenWidth, screenHeight int) *FieldRenderer {
	return &FieldRenderer{
		colors:       colors,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		field:        ebiten.NewImage(screenWidth, screenHeight),
		rng:          utils.NewPRNGService(1),
	}
}

// Draw renders the field, the actors and the full-screen flashes.
func (r *FieldRenderer) Draw(screen *ebiten.Image, st app.State) {
	r.field.Fill(r.colors.BackgroundColor)

	r.drawBars(r.field)
	for i := range st.Targets {
		r.drawTarget(r.field, &st.Targets[i])
	}
	for i := range st.Bodies {
		b := &st.Bodies[i]
		vector.DrawFilledRect(r.field, float32(b.Position.X), float32(b.Position.Y),
			config.TargetSize, config.TargetSize, DarkenColor(CategoryColor(b.Category)), false)
	}
	for i := range st.Projectiles {
		p := &st.Projectiles[i]
		vector.DrawFilledRect(r.field, float32(p.Position.X), float32(p.Position.Y),
			config.ProjectileSize, config.ProjectileSize, r.colors.ProjectileColor, false)
	}
	for i := range st.Catchers {
		r.drawBucket(r.field, st.Catchers[i])
	}
	for i := range st.Shooters {
		r.drawShooter(r.field, st.Shooters[i])
	}

	dx, dy := ShakeOffset(st.Feedback.ScreenShake, r.rng.Float64)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(dx, dy)
	screen.DrawImage(r.field, op)

	w, h := float32(r.screenWidth), float32(r.screenHeight)
	if a := st.Feedback.DamageFlash * flashStrength; a > 0 {
		vector.DrawFilledRect(screen, 0, 0, w, h, WithAlpha(r.colors.DamageFlash, a), false)
	}
	if a := st.Feedback.HealFlash * flashStrength; a > 0 {
		vector.DrawFilledRect(screen, 0, 0, w, h, WithAlpha(r.colors.HealFlash, a), false)
	}
}

func (r *FieldRenderer) drawBars(dst *ebiten.Image) {
	w := float32(r.screenWidth)
	vector.DrawFilledRect(dst, 0, 0, w, config.TopBarHeight, r.colors.TopBarColor, false)
	vector.DrawFilledRect(dst, 0, config.BottomBarTop, w, float32(r.screenHeight)-config.BottomBarTop, r.colors.BottomBarColor, false)
	vector.StrokeLine(dst, 0, config.BreachLineY, w, config.BreachLineY, r.colors.StrokeWidth, r.colors.BreachLineColor, true)
}

func (r *FieldRenderer) drawTarget(dst *ebiten.Image, t *component.Target) {
	x, y := float32(t.Position.X), float32(t.Position.Y)
	fill := CategoryColor(t.Category)
	vector.DrawFilledRect(dst, x, y, config.TargetSize, config.TargetSize, fill, false)
	vector.StrokeRect(dst, x, y, config.TargetSize, config.TargetSize, r.colors.StrokeWidth, DarkenColor(fill), false)
}

func (r *FieldRenderer) drawBucket(dst *ebiten.Image, c component.Catcher) {
	x := float32(c.Position.X - config.BucketWidth/2)
	y := float32(c.Position.Y)
	vector.DrawFilledRect(dst, x, y, config.BucketWidth, config.BucketHeight, r.colors.BucketColor, false)
	vector.StrokeLine(dst, x, y, x+config.BucketWidth, y, r.colors.StrokeWidth*2, r.colors.BucketRimColor, false)
}

func (r *FieldRenderer) drawShooter(dst *ebiten.Image, s component.Shooter) {
	fill := r.colors.ShooterColor
	if !s.Alive {
		fill = r.colors.DeadColor
	}
	x := float32(s.Position.X - shooterWidth/2)
	y := float32(s.Position.Y)
	vector.DrawFilledRect(dst, x, y, shooterWidth, shooterHeight, fill, false)
	// barrel
	vector.DrawFilledRect(dst, float32(s.Position.X)-3, y-12, 6, 12, fill, false)
}

// ShakeOffset maps a shake level in [0, 1] to a random pixel offset. next
// returns values in [0, 1).
func ShakeOffset(level float64, next func() float64) (float64, float64) {
	if level <= 0 {
		return 0, 0
	}
	amp := level * config.ShakeIntensity
	return (next()*2 - 1) * amp, (next()*2 - 1) * amp
}
