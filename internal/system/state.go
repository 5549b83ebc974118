// internal/system/state.go
package system

import (
	"time"

	"go-party-arcade/internal/component"
	"go-party-arcade/internal/event"
)

// PhaseSystem holds the session phase and the deadline of timed phases.
type PhaseSystem struct {
	eventDispatcher *event.Dispatcher

	phase    component.Phase
	deadline time.Time
}

func NewPhaseSystem(eventDispatcher *event.Dispatcher) *PhaseSystem {
	return &PhaseSystem{
		eventDispatcher: eventDispatcher,
		phase:           component.PhasePreGame,
	}
}

func (s *PhaseSystem) Current() component.Phase {
	return s.phase
}

// Switch moves to a new phase, clears any deadline and announces the change.
func (s *PhaseSystem) Switch(to component.Phase, level, wave int) {
	from := s.phase
	s.phase = to
	s.deadline = time.Time{}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.PhaseChanged,
		Data: event.PhaseChange{From: from, To: to, Level: level, Wave: wave},
	})
}

// Arm sets the time at which the current timed phase ends.
func (s *PhaseSystem) Arm(at time.Time) {
	s.deadline = at
}

// Due reports whether an armed deadline has passed. It disarms on success
// so the caller acts on a deadline once.
func (s *PhaseSystem) Due(now time.Time) bool {
	if s.deadline.IsZero() || now.Before(s.deadline) {
		return false
	}
	s.deadline = time.Time{}
	return true
}

// Remaining returns the time left until the deadline, or zero if none is armed.
func (s *PhaseSystem) Remaining(now time.Time) time.Duration {
	if s.deadline.IsZero() {
		return 0
	}
	if d := s.deadline.Sub(now); d > 0 {
		return d
	}
	return 0
}
