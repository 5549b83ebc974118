// internal/system/movement.go
package system

import (
	"time"

	"go-party-arcade/internal/config"
	"go-party-arcade/internal/entity"
	"go-party-arcade/internal/input"
	"go-party-arcade/internal/utils"
)

// MovementSystem moves the player-controlled actors along their tracks.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(dt time.Duration, intent input.Intent) {
	sec := dt.Seconds()
	for i := range s.ecs.Catchers {
		pos := &s.ecs.Catchers[i].Position
		pos.X = utils.Clamp(pos.X+float64(intent.Catchers[i].Move)*config.CatcherSpeed*sec, config.CatcherMinX, config.CatcherMaxX)
	}
	// Dead shooters stay where they fell.
	for i := range s.ecs.Shooters {
		shooter := &s.ecs.Shooters[i]
		if !shooter.Alive {
			continue
		}
		shooter.Position.X = utils.Clamp(shooter.Position.X+float64(intent.Shooters[i].Move)*config.ShooterSpeed*sec, config.ShooterMinX, config.ShooterMaxX)
	}
}
