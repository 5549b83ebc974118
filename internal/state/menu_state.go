// internal/state/menu_state.go
package state

import (
	"log"

	"go-party-arcade/internal/config"
	"go-party-arcade/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState is the title screen.
type MenuState struct {
	sm    *StateMachine
	shell *Shell
}

func NewMenuState(sm *StateMachine, shell *Shell) *MenuState {
	return &MenuState{sm: sm, shell: shell}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return
	}
	director := m.shell.NewDirector()
	if m.shell.StartAt != "" {
		if err := director.Jump(m.shell.StartAt); err != nil {
			log.Printf("Ignoring start scene: %v", err)
		}
	}
	m.sm.SetState(NewSceneState(m.sm, m.shell, director))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := config.ScreenWidth / 2
	ui.DrawCentered(screen, "PARTY ARCADE", m.shell.Fonts.Huge, cx, config.ScreenHeight/4, config.AmmoBarColor)
	ui.DrawCentered(screen, "Press SPACE", m.shell.Fonts.Title, cx, config.ScreenHeight*2/3, config.TextLightColor)
}

func (m *MenuState) Exit() {}
