// internal/entity/ecs.go
package entity

import (
	"go-party-arcade/internal/component"
	"go-party-arcade/internal/config"
	"go-party-arcade/internal/types"
)

// ECS owns every entity of one engine instance. Identifiers come from NextID,
// so two engines never share an id space.
type ECS struct {
	NextID types.EntityID

	Shooters [component.ShooterCount]component.Shooter
	Catchers [component.CatcherCount]component.Catcher

	Targets     []*component.Target
	Projectiles []*component.Projectile
	Bodies      []*component.FallingBody

	Health       int
	MaxHealth    int
	HealProgress int // bodies caught since the last heal

	Stats    component.Stats
	Feedback component.Feedback
}

func NewECS() *ECS {
	ecs := &ECS{
		NextID:    1,
		Health:    config.MaxHealth,
		MaxHealth: config.MaxHealth,
	}
	ecs.ResetCatchers()
	return ecs
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// ResetShooters recreates the shooters in their lanes with full ammo.
func (ecs *ECS) ResetShooters(ammo int) {
	lanes := [component.ShooterCount]float64{config.LaneLeftX, config.LaneCenterX, config.LaneRightX}
	for i, x := range lanes {
		ecs.Shooters[i] = component.Shooter{
			Alive:    true,
			Ammo:     ammo,
			MaxAmmo:  ammo,
			Position: component.Position{X: x, Y: config.ShooterY},
		}
	}
}

// ResetCatchers puts both catchers back at their start positions.
func (ecs *ECS) ResetCatchers() {
	ecs.Catchers[component.CatcherOne] = component.Catcher{
		Position: component.Position{X: config.CatcherOneStartX, Y: config.CatcherY},
	}
	ecs.Catchers[component.CatcherTwo] = component.Catcher{
		Position: component.Position{X: config.CatcherTwoStartX, Y: config.CatcherY},
	}
}

// ClearTransient drops all targets, projectiles and falling bodies.
func (ecs *ECS) ClearTransient() {
	ecs.Targets = nil
	ecs.Projectiles = nil
	ecs.Bodies = nil
}

// AllShootersDead reports whether no shooter is alive.
func (ecs *ECS) AllShootersDead() bool {
	for _, s := range ecs.Shooters {
		if s.Alive {
			return false
		}
	}
	return true
}

// KillShooters marks every shooter not alive.
func (ecs *ECS) KillShooters() {
	for i := range ecs.Shooters {
		ecs.Shooters[i].Alive = false
	}
}
