// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State is one screen of the ebiten shell.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine switches between screens.
type StateMachine struct {
	current State
}

// NewStateMachine creates a machine with no current state.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state and enters newState.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state, or nil.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update updates the current state.
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw draws the current state.
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
