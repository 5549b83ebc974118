// internal/system/catch.go
package system

import (
	"math"
	"time"

	"go-party-arcade/internal/component"
	"go-party-arcade/internal/config"
	"go-party-arcade/internal/entity"
	"go-party-arcade/internal/event"
)

// BodySystem drops falling bodies and credits the catchers.
type BodySystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewBodySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *BodySystem {
	return &BodySystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Update accelerates every body, checks both buckets in catcher order and
// despawns bodies that fell off the screen. A body is caught at most once.
func (s *BodySystem) Update(dt time.Duration) {
	sec := dt.Seconds()
	kept := s.ecs.Bodies[:0]
	for _, b := range s.ecs.Bodies {
		b.VY = math.Min(b.VY+config.FallGravity*sec, config.FallMaxSpeed)
		b.Position.Y += b.VY * sec

		if catcher, ok := s.catchingBucket(b); ok {
			s.credit(catcher, b)
			continue
		}
		if b.Position.Y > config.FallDespawnY {
			continue
		}
		kept = append(kept, b)
	}
	clearTail(s.ecs.Bodies, len(kept))
	s.ecs.Bodies = kept
}

func (s *BodySystem) catchingBucket(b *component.FallingBody) (component.CatcherID, bool) {
	for i, c := range s.ecs.Catchers {
		if BucketCatchesBody(c.Position.X, c.Position.Y, b) {
			return component.CatcherID(i), true
		}
	}
	return 0, false
}

func (s *BodySystem) credit(id component.CatcherID, b *component.FallingBody) {
	s.ecs.Catchers[id].BodiesCaught++
	s.ecs.Stats.CatcherBodies[id]++
	s.ecs.Stats.TotalBodiesCaught++
	s.ecs.HealProgress++
	s.eventDispatcher.Dispatch(event.Event{Type: event.BodyCaught, Data: event.Catch{Body: b.ID, Catcher: id}})
}
