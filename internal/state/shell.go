// internal/state/shell.go
package state

import (
	"go-party-arcade/internal/app"
	"go-party-arcade/internal/scene"
	"go-party-arcade/internal/ui"
	"go-party-arcade/pkg/render"
)

// Shell holds what every screen shares.
type Shell struct {
	Fonts    *ui.Fonts
	Clock    *app.PausableClock
	Keyboard *KeyboardBridge
	Renderer *render.FieldRenderer
	HUD      *ui.HUD

	// NewDirector builds the scene sequence for a fresh run.
	NewDirector func() *scene.Director
	// StartAt, when set, skips the story up to the named scene.
	StartAt string
}
