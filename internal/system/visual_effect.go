// internal/system/visual_effect.go
package system

import (
	"time"

	"go-party-arcade/internal/config"
	"go-party-arcade/internal/entity"
	"go-party-arcade/internal/utils"
)

// VisualEffectSystem fades the screen shake and the flashes.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

func (s *VisualEffectSystem) Update(dt time.Duration) {
	fb := &s.ecs.Feedback
	fb.ScreenShake = utils.Decay(fb.ScreenShake, dt, config.ShakeDuration)
	fb.DamageFlash = utils.Decay(fb.DamageFlash, dt, config.DamageFlashDuration)
	fb.HealFlash = utils.Decay(fb.HealFlash, dt, config.HealFlashDuration)
}
