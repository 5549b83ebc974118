// internal/ui/hud.go
package ui

import (
	"fmt"
	"time"

	"go-party-arcade/internal/app"
	"go-party-arcade/internal/component"
	"go-party-arcade/internal/config"
	"go-party-arcade/internal/ui/caption"

	"github.com/hajimehoshi/ebiten/v2"
)

// HUD draws everything layered over the field: the top bar widgets, the ammo
// bars, popups and the phase overlay.
type HUD struct {
	fonts  *Fonts
	health *HealthIndicator
	wave   *WaveIndicator
	ammo   *AmmoBar
	phase  *PhaseIndicator
	Popups *Popups
}

// NewHUD lays the widgets out for the configured screen size.
func NewHUD(fonts *Fonts) *HUD {
	return &HUD{
		fonts:  fonts,
		health: NewHealthIndicator(40, 28),
		wave:   NewWaveIndicator(config.ScreenWidth/2, 16),
		ammo:   NewAmmoBar(config.ShooterY + 60),
		phase:  NewPhaseIndicator(config.ScreenWidth-40, config.TopBarHeight/2, 12),
		Popups: NewPopups(),
	}
}

// Update ages the popups.
func (h *HUD) Update(dt time.Duration) {
	h.Popups.Update(dt)
}

// Draw renders the HUD for st.
func (h *HUD) Draw(screen *ebiten.Image, st app.State, now time.Time) {
	h.health.Draw(screen, h.fonts.Small, st.Health, st.MaxHealth)
	h.wave.Draw(screen, h.fonts.Title, st.Level, st.Wave)
	h.phase.Draw(screen, st.Phase, now)

	if st.Phase == component.PhasePlaying {
		timer := fmt.Sprintf("%02d  left %d", int(st.WaveTimer.Seconds()+0.999), st.PendingSpawns+len(st.Targets))
		DrawCentered(screen, timer, h.fonts.Regular, config.ScreenWidth-220, 26, config.TextLightColor)
	}
	heal := fmt.Sprintf("heal %d/%d", st.HealProgress, config.BodiesPerHeal)
	DrawCentered(screen, heal, h.fonts.Small, 460, 30, config.HealFlashColor)

	for i, s := range st.Shooters {
		h.ammo.Draw(screen, h.fonts.Small, config.ShooterNames[i], s)
	}
	for i, c := range st.Catchers {
		label := fmt.Sprintf("%s %d", config.CatcherNames[i], c.BodiesCaught)
		DrawCentered(screen, label, h.fonts.Small, int(c.Position.X), int(c.Position.Y)-24, config.TextLightColor)
	}

	h.Popups.Draw(screen, h.fonts.Regular)

	if o, ok := caption.For(st); ok {
		DrawOverlay(screen, h.fonts, o)
	}
}
