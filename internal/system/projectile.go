// internal/system/projectile.go
package system

import (
	"time"

	"go-party-arcade/internal/component"
	"go-party-arcade/internal/config"
	"go-party-arcade/internal/entity"
)

// ProjectileSystem moves shots upward and drops the ones that left the field.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(dt time.Duration) {
	step := config.ProjectileSpeed * dt.Seconds()
	kept := s.ecs.Projectiles[:0]
	for _, p := range s.ecs.Projectiles {
		p.Position.Y -= step
		if p.Position.Y > -config.ProjectileSize {
			kept = append(kept, p)
		}
	}
	clearTail(s.ecs.Projectiles, len(kept))
	s.ecs.Projectiles = kept
}

// clearTail nils the slots past n so filtered-out entities can be collected.
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}

// removeProjectiles drops every projectile in gone.
func removeProjectiles(ecs *entity.ECS, gone map[*component.Projectile]bool) {
	if len(gone) == 0 {
		return
	}
	kept := ecs.Projectiles[:0]
	for _, p := range ecs.Projectiles {
		if !gone[p] {
			kept = append(kept, p)
		}
	}
	clearTail(ecs.Projectiles, len(kept))
	ecs.Projectiles = kept
}
