package app

import (
	"testing"
	"time"

	"go-party-arcade/internal/component"
	"go-party-arcade/internal/config"
	"go-party-arcade/internal/defs"
	"go-party-arcade/internal/input"
	"go-party-arcade/internal/types"
)

const frame = 16 * time.Millisecond

type fixedIntent struct {
	intent input.Intent
}

func (f *fixedIntent) Intent() input.Intent { return f.intent }

func newTestGame(t *testing.T, opts ...Option) (*Game, *ManualClock) {
	t.Helper()
	clock := NewManualClock(time.Unix(1_700_000_000, 0))
	opts = append([]Option{WithClock(clock), WithSeed(7)}, opts...)
	return NewGame(nil, nil, opts...), clock
}

func step(g *Game, clock *ManualClock, d time.Duration) {
	clock.Advance(d)
	g.Update()
}

// runUntil steps the game until cond holds, failing after limit frames.
func runUntil(t *testing.T, g *Game, clock *ManualClock, d time.Duration, limit int, cond func(State) bool, each func()) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if cond(g.Snapshot()) {
			return
		}
		if each != nil {
			each()
		}
		step(g, clock, d)
	}
	st := g.Snapshot()
	t.Fatalf("condition not reached after %d frames: phase=%v level=%d wave=%d health=%d targets=%d bodies=%d",
		limit, st.Phase, st.Level, st.Wave, st.Health, len(st.Targets), len(st.Bodies))
}

// sniper puts a projectile on every target that has come far enough into view
// for the shot to survive the next update.
type sniper struct {
	g     *Game
	aimed map[types.EntityID]bool
}

func newSniper(g *Game) *sniper {
	return &sniper{g: g, aimed: make(map[types.EntityID]bool)}
}

func (s *sniper) aim() {
	ecs := s.g.ECS
	for _, tg := range ecs.Targets {
		if s.aimed[tg.ID] || tg.Position.Y < 20 {
			continue
		}
		s.aimed[tg.ID] = true
		ecs.Projectiles = append(ecs.Projectiles, &component.Projectile{
			ID:       ecs.NewEntity(),
			Position: component.Position{X: tg.Position.X + 17, Y: tg.Position.Y + 17},
			Owner:    component.ShooterCenter,
		})
	}
}

func isPhase(p component.Phase) func(State) bool {
	return func(s State) bool { return s.Phase == p }
}

func TestNewGameStartsInPreGame(t *testing.T) {
	g, clock := newTestGame(t)
	st := g.Snapshot()
	if st.Phase != component.PhasePreGame || st.Level != 1 || st.Wave != 1 {
		t.Fatalf("initial state = %v L%d W%d", st.Phase, st.Level, st.Wave)
	}
	if st.Health != config.MaxHealth {
		t.Fatalf("health = %d, want %d", st.Health, config.MaxHealth)
	}
	step(g, clock, 10*time.Second)
	if g.Phase() != component.PhasePreGame {
		t.Fatalf("pre-game advanced on its own to %v", g.Phase())
	}
}

func TestControlsAreNoOpsOutsideTheirPhase(t *testing.T) {
	g, _ := newTestGame(t)
	g.ContinueToNextLevel()
	g.Retry()
	if g.Phase() != component.PhasePreGame {
		t.Fatalf("phase = %v, want pre-game", g.Phase())
	}
	g.StartGame()
	g.StartGame()
	g.Retry()
	if g.Phase() != component.PhaseCountdown {
		t.Fatalf("phase = %v, want countdown", g.Phase())
	}
}

func TestCountdownLeadsToPlaying(t *testing.T) {
	g, clock := newTestGame(t)
	g.StartGame()
	if got := g.Snapshot().CountdownSeconds(); got != 3 {
		t.Fatalf("countdown shows %d, want 3", got)
	}

	step(g, clock, 2900*time.Millisecond)
	if g.Phase() != component.PhaseCountdown {
		t.Fatalf("phase after 2.9s = %v, want countdown", g.Phase())
	}
	step(g, clock, 100*time.Millisecond)
	st := g.Snapshot()
	if st.Phase != component.PhasePlaying || st.Wave != 1 {
		t.Fatalf("phase after 3s = %v wave %d, want playing wave 1", st.Phase, st.Wave)
	}
	if st.WaveTimer != 45*time.Second {
		t.Fatalf("wave timer = %v, want 45s", st.WaveTimer)
	}
}

func TestClearingFirstWaveAdvancesToSecond(t *testing.T) {
	g, clock := newTestGame(t)
	g.StartGame()
	runUntil(t, g, clock, frame, 400, isPhase(component.PhasePlaying), nil)

	snipe := newSniper(g)
	runUntil(t, g, clock, frame, 2000, isPhase(component.PhaseWaveComplete), snipe.aim)

	st := g.Snapshot()
	if st.Health != config.MaxHealth {
		t.Fatalf("health = %d, want unchanged %d", st.Health, config.MaxHealth)
	}
	if got := st.Stats.Shooters[component.ShooterCenter].Kills; got != 15 {
		t.Fatalf("kills = %d, want 15", got)
	}
	if st.PendingSpawns != 0 || len(st.Targets) != 0 || len(st.Bodies) != 0 {
		t.Fatalf("wave complete with field not clear: pending=%d targets=%d bodies=%d",
			st.PendingSpawns, len(st.Targets), len(st.Bodies))
	}

	runUntil(t, g, clock, frame, 400, isPhase(component.PhasePlaying), nil)
	if st := g.Snapshot(); st.Wave != 2 || st.Level != 1 {
		t.Fatalf("after pause: level %d wave %d, want level 1 wave 2", st.Level, st.Wave)
	}
}

func TestThirtyBreachesEndTheGame(t *testing.T) {
	g, clock := newTestGame(t)
	g.StartGame()

	checkBounds := func() {
		st := g.Snapshot()
		if st.Health < 0 || st.Health > st.MaxHealth {
			t.Fatalf("health %d out of bounds", st.Health)
		}
		for i, s := range st.Shooters {
			if s.Ammo < 0 || s.Ammo > s.MaxAmmo {
				t.Fatalf("shooter %d ammo %d out of [0,%d]", i, s.Ammo, s.MaxAmmo)
			}
		}
		alive := false
		for _, s := range st.Shooters {
			alive = alive || s.Alive
		}
		if (st.Health == 0) == alive {
			t.Fatalf("health %d but shooters alive=%v", st.Health, alive)
		}
	}
	runUntil(t, g, clock, 100*time.Millisecond, 3000, isPhase(component.PhaseGameOver), checkBounds)
	checkBounds()

	st := g.Snapshot()
	if st.Health != 0 {
		t.Fatalf("health = %d, want 0", st.Health)
	}
	if st.Level != 1 || st.Wave != 2 {
		t.Fatalf("game over on level %d wave %d, want level 1 wave 2", st.Level, st.Wave)
	}

	step(g, clock, 5*time.Second)
	if g.Phase() != component.PhaseGameOver {
		t.Fatalf("game-over left on its own to %v", g.Phase())
	}
}

func TestRetryResetsTheLevel(t *testing.T) {
	retries := 0
	g, clock := newTestGame(t, WithRetryHook(func() { retries++ }))
	g.StartGame()
	runUntil(t, g, clock, 100*time.Millisecond, 3000, isPhase(component.PhaseGameOver), nil)

	g.Retry()
	st := g.Snapshot()
	if st.Phase != component.PhaseCountdown || st.Level != 1 || st.Wave != 1 {
		t.Fatalf("after retry: %v level %d wave %d", st.Phase, st.Level, st.Wave)
	}
	if st.Health != config.MaxHealth || st.HealProgress != 0 {
		t.Fatalf("health %d progress %d, want %d and 0", st.Health, st.HealProgress, config.MaxHealth)
	}
	for i, s := range st.Shooters {
		if !s.Alive || s.Ammo != s.MaxAmmo {
			t.Fatalf("shooter %d not reset: %+v", i, s)
		}
	}
	if len(st.Targets) != 0 || len(st.Projectiles) != 0 || len(st.Bodies) != 0 {
		t.Fatal("field not cleared on retry")
	}
	if retries != 1 {
		t.Fatalf("retry hook ran %d times, want 1", retries)
	}
}

func TestNoAmmoFiresNothing(t *testing.T) {
	levels := map[int]defs.LevelDefinition{}
	for k, v := range defs.DefaultLevels {
		v.AmmoPerShooter = 0
		levels[k] = v
	}
	src := &fixedIntent{}
	for i := range src.intent.Shooters {
		src.intent.Shooters[i].Fire = true
	}
	clock := NewManualClock(time.Unix(0, 0))
	g := NewGame(src, nil, WithClock(clock), WithLevels(levels))
	g.StartGame()
	runUntil(t, g, clock, frame, 400, isPhase(component.PhasePlaying), nil)

	for i := 0; i < 100; i++ {
		step(g, clock, frame)
		if st := g.Snapshot(); len(st.Projectiles) != 0 {
			t.Fatalf("frame %d: %d projectiles with no ammo", i, len(st.Projectiles))
		}
	}
	for _, s := range g.Snapshot().Stats.Shooters {
		if s.ShotsFired != 0 {
			t.Fatalf("shots fired = %d, want 0", s.ShotsFired)
		}
	}
}

func TestHeldFireSpendsAmmoAtCooldown(t *testing.T) {
	src := &fixedIntent{}
	src.intent.Shooters[component.ShooterLeft].Fire = true
	clock := NewManualClock(time.Unix(0, 0))
	g := NewGame(src, nil, WithClock(clock))
	g.StartGame()
	runUntil(t, g, clock, frame, 400, isPhase(component.PhasePlaying), nil)

	for i := 0; i < 60; i++ { // ~1s
		step(g, clock, frame)
	}
	st := g.Snapshot()
	fired := st.Stats.Shooters[component.ShooterLeft].ShotsFired
	if fired < 6 || fired > 7 {
		t.Fatalf("shots in ~1s = %d, want 6 or 7", fired)
	}
	if got := st.Shooters[component.ShooterLeft].Ammo; got != st.Shooters[component.ShooterLeft].MaxAmmo-fired {
		t.Fatalf("ammo = %d after %d shots", got, fired)
	}
	if st.Stats.Shooters[component.ShooterCenter].ShotsFired != 0 {
		t.Fatal("idle shooter fired")
	}
}

func TestWaveClearedPreconditions(t *testing.T) {
	g, clock := newTestGame(t)
	g.StartGame()
	runUntil(t, g, clock, frame, 400, isPhase(component.PhasePlaying), nil)

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ECS.Targets = nil
	if g.waveCleared() {
		t.Fatal("cleared with spawns pending and time left")
	}

	g.WaveSystem.Tick(time.Hour)
	if !g.waveCleared() {
		t.Fatal("not cleared with empty field and timer at zero")
	}

	g.ECS.Bodies = append(g.ECS.Bodies, &component.FallingBody{ID: g.ECS.NewEntity()})
	if g.waveCleared() {
		t.Fatal("cleared while a body is still falling")
	}
}

func TestVictoryCallsCompletionOnce(t *testing.T) {
	levels := map[int]defs.LevelDefinition{}
	for k, v := range defs.DefaultLevels {
		v.TargetsPerWave = 1
		levels[k] = v
	}
	completions := 0
	clock := NewManualClock(time.Unix(0, 0))
	g := NewGame(nil, func() { completions++ }, WithClock(clock), WithLevels(levels), WithSeed(3))
	snipe := newSniper(g)

	g.Start()
	for level := 1; level <= config.LevelCount; level++ {
		runUntil(t, g, clock, frame, 20000, isPhase(component.PhaseLevelComplete), snipe.aim)
		if got := g.Level(); got != level {
			t.Fatalf("level-complete on level %d, want %d", got, level)
		}
		if g.Completed() {
			t.Fatal("completed before victory")
		}
		g.ContinueToNextLevel()
	}

	if g.Phase() != component.PhaseVictory || !g.Completed() {
		t.Fatalf("phase = %v, want victory", g.Phase())
	}
	g.ContinueToNextLevel()
	step(g, clock, time.Second)
	if completions != 1 {
		t.Fatalf("completion callback ran %d times, want 1", completions)
	}
	if got := g.Snapshot().Stats.Shooters[component.ShooterCenter].Kills; got != 9 {
		t.Fatalf("kills over the run = %d, want 9", got)
	}
}

func TestHealthCarriesAcrossLevels(t *testing.T) {
	levels := map[int]defs.LevelDefinition{}
	for k, v := range defs.DefaultLevels {
		v.TargetsPerWave = 1
		levels[k] = v
	}
	clock := NewManualClock(time.Unix(0, 0))
	g := NewGame(nil, nil, WithClock(clock), WithLevels(levels))
	g.StartGame()
	// Let the first level's targets breach.
	runUntil(t, g, clock, 100*time.Millisecond, 3000, isPhase(component.PhaseLevelComplete), nil)
	if got := g.Snapshot().Health; got != config.MaxHealth-3 {
		t.Fatalf("health after level 1 = %d, want %d", got, config.MaxHealth-3)
	}

	g.ContinueToNextLevel()
	st := g.Snapshot()
	if st.Phase != component.PhaseCountdown || st.Level != 2 || st.Wave != 1 {
		t.Fatalf("after continue: %v level %d wave %d", st.Phase, st.Level, st.Wave)
	}
	if st.Health != config.MaxHealth-3 {
		t.Fatalf("health reset on continue to %d", st.Health)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g, clock := newTestGame(t)
	g.StartGame()
	runUntil(t, g, clock, frame, 400, isPhase(component.PhasePlaying), nil)
	runUntil(t, g, clock, frame, 100, func(s State) bool { return len(s.Targets) > 0 }, nil)

	st := g.Snapshot()
	st.Targets[0].Position.Y = 5000
	st.Shooters[0].Ammo = -1
	if g.ECS.Targets[0].Position.Y == 5000 || g.ECS.Shooters[0].Ammo == -1 {
		t.Fatal("snapshot shares memory with the engine")
	}
}

func TestLongFrameIsClamped(t *testing.T) {
	g, clock := newTestGame(t)
	g.StartGame()
	runUntil(t, g, clock, frame, 400, isPhase(component.PhasePlaying), nil)
	runUntil(t, g, clock, frame, 100, func(s State) bool { return len(s.Targets) > 0 }, nil)

	before := g.Snapshot().Targets[0]
	step(g, clock, 2*time.Second)
	var after component.Target
	for _, tg := range g.Snapshot().Targets {
		if tg.ID == before.ID {
			after = tg
		}
	}
	if moved := after.Position.Y - before.Position.Y; moved > before.Speed*config.MaxDeltaTime+1e-9 {
		t.Fatalf("target moved %v in one frame, want at most %v", moved, before.Speed*config.MaxDeltaTime)
	}
}
