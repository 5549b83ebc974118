// internal/system/breach.go
package system

import (
	"time"

	"go-party-arcade/internal/entity"
	"go-party-arcade/internal/event"
)

// TargetSystem moves targets down and applies breaches.
type TargetSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	health          *HealthSystem
}

func NewTargetSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, health *HealthSystem) *TargetSystem {
	return &TargetSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		health:          health,
	}
}

func (s *TargetSystem) Update(dt time.Duration) {
	sec := dt.Seconds()
	for _, t := range s.ecs.Targets {
		t.Position.Y += t.Speed * sec
		if !TargetBreached(t) {
			continue
		}
		t.Alive = false
		s.health.Damage(1)
		s.eventDispatcher.Dispatch(event.Event{Type: event.TargetBreached, Data: event.Breach{Target: t.ID, Health: s.ecs.Health}})
	}
	removeDeadTargets(s.ecs)
}

// removeDeadTargets drops every target that is no longer alive.
func removeDeadTargets(ecs *entity.ECS) {
	kept := ecs.Targets[:0]
	for _, t := range ecs.Targets {
		if t.Alive {
			kept = append(kept, t)
		}
	}
	clearTail(ecs.Targets, len(kept))
	ecs.Targets = kept
}
