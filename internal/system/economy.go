// internal/system/economy.go
package system

import (
	"go-party-arcade/internal/config"
	"go-party-arcade/internal/entity"
	"go-party-arcade/internal/event"
)

// HealthSystem owns the shared health pool and the heal-by-catching loop.
type HealthSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewHealthSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *HealthSystem {
	return &HealthSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Damage lowers health, never below zero, and triggers the shake and damage flash.
func (s *HealthSystem) Damage(amount int) {
	s.ecs.Health -= amount
	if s.ecs.Health < 0 {
		s.ecs.Health = 0
	}
	s.ecs.Feedback.ScreenShake = 1
	s.ecs.Feedback.DamageFlash = 1
}

// ApplyHeals converts banked catches into health. Surplus beyond the cap is
// lost but the progress is still spent.
func (s *HealthSystem) ApplyHeals() {
	for s.ecs.HealProgress >= config.BodiesPerHeal {
		s.ecs.HealProgress -= config.BodiesPerHeal
		before := s.ecs.Health
		s.ecs.Health += config.HPPerHeal
		if s.ecs.Health > s.ecs.MaxHealth {
			s.ecs.Health = s.ecs.MaxHealth
		}
		s.ecs.Feedback.HealFlash = 1
		s.eventDispatcher.Dispatch(event.Event{Type: event.Healed, Data: event.Heal{Amount: s.ecs.Health - before, Health: s.ecs.Health}})
	}
}

// CheckDefeat kills every shooter once health is gone and reports whether it was.
func (s *HealthSystem) CheckDefeat() bool {
	if s.ecs.Health > 0 {
		return false
	}
	s.ecs.KillShooters()
	return true
}
