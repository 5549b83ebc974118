// internal/state/pause_state.go
package state

import (
	"go-party-arcade/internal/config"
	"go-party-arcade/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the engine clock and draws the previous screen dimmed.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	shell         *Shell
}

func NewPauseState(sm *StateMachine, prevState State, shell *Shell) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		shell:         shell,
	}
}

func (s *PauseState) Enter() {
	s.shell.Clock.Pause()
	s.shell.Keyboard.ReleaseAll()
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	ui.DrawCentered(screen, "PAUSED", s.shell.Fonts.Title, config.ScreenWidth/2, config.ScreenHeight/2-24, config.TextLightColor)
}

func (s *PauseState) Exit() {
	s.shell.Clock.Resume()
}
