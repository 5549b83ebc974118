// internal/app/snapshot.go
package app

import (
	"time"

	"go-party-arcade/internal/component"
	"go-party-arcade/internal/config"
	"go-party-arcade/internal/entity"
)

// State is a read-only copy of the engine taken at the end of an update.
// It shares no memory with the engine.
type State struct {
	Phase component.Phase
	Level int
	Wave  int

	WaveTimer      time.Duration // time left on the wave clock
	PhaseRemaining time.Duration // time left in countdown or the inter-wave pause
	PendingSpawns  int

	Health       int
	MaxHealth    int
	HealProgress int

	Shooters [component.ShooterCount]component.Shooter
	Catchers [component.CatcherCount]component.Catcher

	Targets     []component.Target
	Projectiles []component.Projectile
	Bodies      []component.FallingBody

	Stats    component.Stats
	Feedback component.Feedback

	Frame uint64
}

// HealthFraction returns health as a fraction of the maximum.
func (s State) HealthFraction() float64 {
	if s.MaxHealth == 0 {
		return 0
	}
	return float64(s.Health) / float64(s.MaxHealth)
}

// CountdownSeconds returns the whole seconds left in a countdown, rounded up.
func (s State) CountdownSeconds() int {
	if s.PhaseRemaining <= 0 {
		return 0
	}
	return int((s.PhaseRemaining + time.Second - 1) / time.Second)
}

// IsFinalWave reports whether the current wave is the last of its level.
func (s State) IsFinalWave() bool {
	return s.Wave >= config.WavesPerLevel
}

func takeState(ecs *entity.ECS) *State {
	st := &State{
		Health:       ecs.Health,
		MaxHealth:    ecs.MaxHealth,
		HealProgress: ecs.HealProgress,
		Shooters:     ecs.Shooters,
		Catchers:     ecs.Catchers,
		Stats:        ecs.Stats,
		Feedback:     ecs.Feedback,
		Targets:      make([]component.Target, len(ecs.Targets)),
		Projectiles:  make([]component.Projectile, len(ecs.Projectiles)),
		Bodies:       make([]component.FallingBody, len(ecs.Bodies)),
	}
	for i, t := range ecs.Targets {
		st.Targets[i] = *t
	}
	for i, p := range ecs.Projectiles {
		st.Projectiles[i] = *p
	}
	for i, b := range ecs.Bodies {
		st.Bodies[i] = *b
	}
	return st
}
