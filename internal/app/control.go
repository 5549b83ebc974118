// internal/app/control.go
package app

import "go-party-arcade/internal/component"

// Control is a shell request that moves the session between phases.
type Control int

const (
	ControlNone Control = iota
	ControlStart
	ControlContinue
	ControlRetry
)

func (c Control) String() string {
	switch c {
	case ControlStart:
		return "start"
	case ControlContinue:
		return "continue"
	case ControlRetry:
		return "retry"
	}
	return "none"
}

// ControlFor maps the shell's two buttons to a control for the given phase.
// confirm starts and continues; retry only works after a game over.
func ControlFor(p component.Phase, confirm, retry bool) Control {
	switch {
	case p == component.PhasePreGame && confirm:
		return ControlStart
	case p == component.PhaseLevelComplete && confirm:
		return ControlContinue
	case p == component.PhaseGameOver && retry:
		return ControlRetry
	}
	return ControlNone
}

// Apply runs the control. Controls are no-ops outside their phase.
func (g *Game) Apply(c Control) {
	switch c {
	case ControlStart:
		g.StartGame()
	case ControlContinue:
		g.ContinueToNextLevel()
	case ControlRetry:
		g.Retry()
	}
}
