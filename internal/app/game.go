// internal/app/game.go
package app

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"go-party-arcade/internal/component"
	"go-party-arcade/internal/config"
	"go-party-arcade/internal/defs"
	"go-party-arcade/internal/entity"
	"go-party-arcade/internal/event"
	"go-party-arcade/internal/input"
	"go-party-arcade/internal/system"
	"go-party-arcade/internal/utils"
)

// IntentSource supplies the per-frame input snapshot.
type IntentSource interface {
	Intent() input.Intent
}

// Option configures a Game.
type Option func(*Game)

// WithRetryHook registers a callback run whenever Retry restarts a level.
func WithRetryHook(fn func()) Option {
	return func(g *Game) { g.onRetry = fn }
}

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithSeed makes the randomized waves reproducible. Seed 0 picks a time seed.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.Rng = utils.NewPRNGService(seed) }
}

// WithLevels replaces the built-in level table. The table must pass defs.Validate.
func WithLevels(levels map[int]defs.LevelDefinition) Option {
	return func(g *Game) { g.levels = levels }
}

// WithDispatcher lets the caller own the event bus, so listeners can be
// attached before the first event fires.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(g *Game) { g.EventDispatcher = d }
}

// Game runs one shooting-gallery session: three shooters, two catchers and
// three levels of three waves each.
//
// All methods are safe to call from several goroutines. Event listeners run on
// the goroutine that called Update or a control and must not call back into
// the Game's controls.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	TargetSystem       *system.TargetSystem
	BodySystem         *system.BodySystem
	HealthSystem       *system.HealthSystem
	WaveSystem         *system.WaveSystem
	VisualEffectSystem *system.VisualEffectSystem
	PhaseSystem        *system.PhaseSystem

	mu         sync.Mutex
	intents    IntentSource
	onComplete func()
	onRetry    func()
	clock      Clock
	levels     map[int]defs.LevelDefinition

	level      int
	wave       int
	lastUpdate time.Time
	frame      uint64
	completed  bool

	snapshot atomic.Pointer[State]
}

// NewGame builds a session in the pre-game phase. onComplete runs once when
// the final level is cleared and the players continue past it.
func NewGame(intents IntentSource, onComplete func(), opts ...Option) *Game {
	g := &Game{
		intents:    intents,
		onComplete: onComplete,
		clock:      SystemClock{},
		levels:     defs.DefaultLevels,
		level:      1,
		wave:       1,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.EventDispatcher == nil {
		g.EventDispatcher = event.NewDispatcher()
	}
	if g.Rng != nil {
		log.Printf("Wave seed %d", g.Rng.Seed())
	}

	ecs := entity.NewECS()
	g.ECS = ecs
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.CombatSystem = system.NewCombatSystem(ecs, g.EventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.HealthSystem = system.NewHealthSystem(ecs, g.EventDispatcher)
	g.TargetSystem = system.NewTargetSystem(ecs, g.EventDispatcher, g.HealthSystem)
	g.BodySystem = system.NewBodySystem(ecs, g.EventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, g.EventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.PhaseSystem = system.NewPhaseSystem(g.EventDispatcher)

	ecs.ResetShooters(g.levelDef().AmmoPerShooter)
	g.publish()
	return g
}

// Start begins the session. It makes Game usable as a scene minigame.
func (g *Game) Start() {
	g.StartGame()
}

// StartGame moves from pre-game into the first countdown.
func (g *Game) StartGame() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.PhaseSystem.Current() != component.PhasePreGame {
		return
	}
	g.level = 1
	g.beginLevel(g.clock.Now())
	g.publish()
}

// ContinueToNextLevel leaves level-complete. After the last level it ends
// the session in victory.
func (g *Game) ContinueToNextLevel() {
	g.mu.Lock()
	if g.PhaseSystem.Current() != component.PhaseLevelComplete {
		g.mu.Unlock()
		return
	}
	var complete func()
	if g.level >= config.LevelCount {
		g.PhaseSystem.Switch(component.PhaseVictory, g.level, g.wave)
		if !g.completed {
			g.completed = true
			complete = g.onComplete
			g.EventDispatcher.Dispatch(event.Event{Type: event.MissionComplete, Data: g.ECS.Stats})
		}
	} else {
		g.level++
		g.beginLevel(g.clock.Now())
	}
	g.publish()
	g.mu.Unlock()

	if complete != nil {
		complete()
	}
}

// Retry restarts the current level from wave 1 with a fresh health pool.
func (g *Game) Retry() {
	g.mu.Lock()
	if g.PhaseSystem.Current() != component.PhaseGameOver {
		g.mu.Unlock()
		return
	}
	hook := g.onRetry

	ecs := g.ECS
	ecs.Health = ecs.MaxHealth
	ecs.HealProgress = 0
	ecs.Stats = component.Stats{}
	ecs.Feedback = component.Feedback{}
	ecs.ResetCatchers()
	g.beginLevel(g.clock.Now())
	g.publish()
	g.mu.Unlock()

	log.Printf("Retrying level %d", g.Level())
	if hook != nil {
		hook()
	}
}

// Update advances the session to the current clock time.
func (g *Game) Update() {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	var dt time.Duration
	if !g.lastUpdate.IsZero() {
		dt = now.Sub(g.lastUpdate)
	}
	g.lastUpdate = now
	if dt < 0 {
		dt = 0
	}
	if maxDt := time.Duration(config.MaxDeltaTime * float64(time.Second)); dt > maxDt {
		dt = maxDt
	}
	g.frame++

	switch g.PhaseSystem.Current() {
	case component.PhaseCountdown:
		if g.PhaseSystem.Due(now) {
			g.startWave(now)
		}
	case component.PhasePlaying:
		g.tick(dt, now)
	case component.PhaseWaveComplete:
		g.VisualEffectSystem.Update(dt)
		if g.PhaseSystem.Due(now) {
			if g.wave < config.WavesPerLevel {
				g.wave++
				g.startWave(now)
			} else {
				g.PhaseSystem.Switch(component.PhaseLevelComplete, g.level, g.wave)
			}
		}
	default:
		g.VisualEffectSystem.Update(dt)
	}
	g.publish()
}

// Completed reports whether the session reached victory.
func (g *Game) Completed() bool {
	return g.Snapshot().Phase == component.PhaseVictory
}

// Snapshot returns the state published by the last update or control.
func (g *Game) Snapshot() State {
	return *g.snapshot.Load()
}

// Phase returns the current phase.
func (g *Game) Phase() component.Phase {
	return g.Snapshot().Phase
}

// Level returns the current level, starting at 1.
func (g *Game) Level() int {
	return g.Snapshot().Level
}

// Wave returns the current wave within the level, starting at 1.
func (g *Game) Wave() int {
	return g.Snapshot().Wave
}

func (g *Game) tick(dt time.Duration, now time.Time) {
	var intent input.Intent
	if g.intents != nil {
		intent = g.intents.Intent()
	}

	g.WaveSystem.Tick(dt)
	g.VisualEffectSystem.Update(dt)
	g.MovementSystem.Update(dt, intent)
	g.CombatSystem.Fire(now, intent)
	g.WaveSystem.Spawn(now)
	g.ProjectileSystem.Update(dt)
	g.TargetSystem.Update(dt)
	g.HealthSystem.CheckDefeat()
	g.CombatSystem.ResolveHits()
	g.BodySystem.Update(dt)
	g.HealthSystem.ApplyHeals()

	switch {
	case g.HealthSystem.CheckDefeat():
		log.Printf("Game over on level %d wave %d", g.level, g.wave)
		g.PhaseSystem.Switch(component.PhaseGameOver, g.level, g.wave)
	case g.waveCleared():
		g.PhaseSystem.Switch(component.PhaseWaveComplete, g.level, g.wave)
		g.PhaseSystem.Arm(now.Add(config.InterWavePause))
	}
}

// waveCleared reports whether nothing is left on the field and the wave has
// either spawned everything or run out of time.
func (g *Game) waveCleared() bool {
	if len(g.ECS.Targets) > 0 || len(g.ECS.Bodies) > 0 {
		return false
	}
	return g.WaveSystem.Exhausted() || g.WaveSystem.Timer() <= 0
}

// beginLevel enters the countdown for wave 1 of the current level with fresh
// shooters and an empty field.
func (g *Game) beginLevel(now time.Time) {
	g.wave = 1
	g.ECS.ClearTransient()
	g.ECS.ResetShooters(g.levelDef().AmmoPerShooter)
	g.CombatSystem.ResetCooldowns()
	g.PhaseSystem.Switch(component.PhaseCountdown, g.level, g.wave)
	g.PhaseSystem.Arm(now.Add(config.CountdownDuration))
}

func (g *Game) startWave(now time.Time) {
	g.ECS.ClearTransient()
	g.WaveSystem.StartWave(g.levelDef(), g.wave, g.rand(), now)
	g.PhaseSystem.Switch(component.PhasePlaying, g.level, g.wave)
}

func (g *Game) levelDef() defs.LevelDefinition {
	return g.levels[g.level]
}

// rand avoids handing a typed nil to the pattern generator.
func (g *Game) rand() defs.Rand {
	if g.Rng == nil {
		return nil
	}
	return g.Rng
}

func (g *Game) publish() {
	st := takeState(g.ECS)
	st.Phase = g.PhaseSystem.Current()
	st.Level = g.level
	st.Wave = g.wave
	st.WaveTimer = g.WaveSystem.Timer()
	st.PendingSpawns = g.WaveSystem.Remaining()
	st.PhaseRemaining = g.PhaseSystem.Remaining(g.clock.Now())
	st.Frame = g.frame
	g.snapshot.Store(st)
}
