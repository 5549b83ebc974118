// internal/system/combat.go
package system

import (
	"time"

	"go-party-arcade/internal/component"
	"go-party-arcade/internal/config"
	"go-party-arcade/internal/entity"
	"go-party-arcade/internal/event"
	"go-party-arcade/internal/input"
)

// CombatSystem handles shooting and projectile hits.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	lastFire        [component.ShooterCount]time.Time
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// ResetCooldowns lets every shooter fire immediately.
func (s *CombatSystem) ResetCooldowns() {
	s.lastFire = [component.ShooterCount]time.Time{}
}

// Fire spawns a projectile for every shooter that wants to shoot, is able to,
// and is off cooldown.
func (s *CombatSystem) Fire(now time.Time, intent input.Intent) {
	for i := range s.ecs.Shooters {
		shooter := &s.ecs.Shooters[i]
		if !intent.Shooters[i].Fire || !shooter.CanFire() {
			continue
		}
		if last := s.lastFire[i]; !last.IsZero() && now.Sub(last) < config.FireCooldown {
			continue
		}
		s.lastFire[i] = now

		id := component.ShooterID(i)
		s.ecs.Projectiles = append(s.ecs.Projectiles, &component.Projectile{
			ID:       s.ecs.NewEntity(),
			Position: component.Position{X: shooter.Position.X - config.ProjectileSize/2, Y: config.ProjectileSpawnY},
			Owner:    id,
		})
		shooter.Ammo--
		s.ecs.Stats.Shooters[id].ShotsFired++
		s.eventDispatcher.Dispatch(event.Event{Type: event.ShotFired, Data: event.Shot{Shooter: id, AmmoLeft: shooter.Ammo}})
	}
}

// ResolveHits matches projectiles against targets. Every projectile and every
// target takes part in at most one hit per call. A hit target becomes a
// falling body at its last position.
func (s *CombatSystem) ResolveHits() {
	if len(s.ecs.Projectiles) == 0 || len(s.ecs.Targets) == 0 {
		return
	}
	spentProjectiles := make(map[*component.Projectile]bool)
	for _, p := range s.ecs.Projectiles {
		for _, t := range s.ecs.Targets {
			if !ProjectileHitsTarget(p, t) {
				continue
			}
			t.Alive = false
			spentProjectiles[p] = true

			stats := &s.ecs.Stats.Shooters[p.Owner]
			stats.ShotsHit++
			stats.Kills++

			s.ecs.Bodies = append(s.ecs.Bodies, &component.FallingBody{
				ID:       s.ecs.NewEntity(),
				Position: t.Position,
				Category: t.Category,
			})
			s.eventDispatcher.Dispatch(event.Event{Type: event.TargetDestroyed, Data: event.Kill{Target: t.ID, Shooter: p.Owner, Position: t.Position}})
			break
		}
	}
	removeProjectiles(s.ecs, spentProjectiles)
	removeDeadTargets(s.ecs)
}
