// internal/system/wave.go
package system

import (
	"math"
	"time"

	"go-party-arcade/internal/component"
	"go-party-arcade/internal/config"
	"go-party-arcade/internal/defs"
	"go-party-arcade/internal/entity"
	"go-party-arcade/internal/event"
)

// WaveSystem plays a precomputed spawn list against the wave clock.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher

	spawns    []defs.SpawnEvent
	next      int
	startedAt time.Time
	duration  time.Duration
	baseSpeed float64
	timer     time.Duration // counts down, floored at zero
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// StartWave loads the spawn list for a wave and starts its clock at now.
func (s *WaveSystem) StartWave(level defs.LevelDefinition, wave int, rng defs.Rand, now time.Time) {
	spawns := defs.Pattern(level.Level, wave, rng)
	if len(spawns) > level.TargetsPerWave {
		spawns = spawns[:level.TargetsPerWave]
	}
	s.spawns = spawns
	s.next = 0
	s.startedAt = now
	s.duration = level.WaveDuration()
	s.baseSpeed = level.BaseSpeed
	s.timer = s.duration

	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveStart{Level: level.Level, Wave: wave, Spawns: len(spawns)}})
}

// Tick counts the wave timer down.
func (s *WaveSystem) Tick(dt time.Duration) {
	s.timer -= dt
	if s.timer < 0 {
		s.timer = 0
	}
}

// Timer returns the time left on the wave clock.
func (s *WaveSystem) Timer() time.Duration {
	return s.timer
}

// Elapsed returns wall time since the wave started.
func (s *WaveSystem) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.startedAt)
}

// SpeedMultiplier ramps linearly from 1 at wave start to WaveSpeedRampEnd at the wave's end.
func (s *WaveSystem) SpeedMultiplier(now time.Time) float64 {
	if s.duration <= 0 {
		return 1
	}
	progress := float64(s.Elapsed(now)) / float64(s.duration)
	return math.Min(1+progress*(config.WaveSpeedRampEnd-1), config.WaveSpeedRampEnd)
}

// Exhausted reports whether every spawn of the wave has happened.
func (s *WaveSystem) Exhausted() bool {
	return s.next >= len(s.spawns)
}

// Remaining returns the number of spawns still pending.
func (s *WaveSystem) Remaining() int {
	return len(s.spawns) - s.next
}

// Spawn creates a target for every pending entry whose delay has passed.
func (s *WaveSystem) Spawn(now time.Time) {
	elapsed := s.Elapsed(now)
	speed := s.baseSpeed * s.SpeedMultiplier(now)
	for s.next < len(s.spawns) {
		ev := s.spawns[s.next]
		if elapsed < ev.Delay {
			break
		}
		t := &component.Target{
			ID:       s.ecs.NewEntity(),
			Position: component.Position{X: ev.X - config.TargetSize/2, Y: -config.TargetSize},
			Category: ev.Category,
			Speed:    speed,
			Alive:    true,
		}
		s.ecs.Targets = append(s.ecs.Targets, t)
		s.next++
		s.eventDispatcher.Dispatch(event.Event{Type: event.TargetSpawned, Data: event.Spawn{Target: t.ID, Category: t.Category, X: ev.X, Speed: speed}})
	}
}
