package input

import (
	"sync"
	"time"
)

// Aggregator turns key press and release events into a live Intent.
// Events may arrive on a different goroutine than the one reading Intent.
type Aggregator struct {
	mu       sync.Mutex
	bindings Bindings
	bound    map[Key]bool
	pressed  map[Key]time.Time // key -> last press or repeat
	intent   Intent
}

// NewAggregator creates an aggregator for the given bindings.
func NewAggregator(bindings Bindings) *Aggregator {
	a := &Aggregator{
		bindings: bindings,
		bound:    make(map[Key]bool),
		pressed:  make(map[Key]time.Time),
	}
	for _, k := range bindings.Keys() {
		a.bound[k] = true
	}
	return a
}

// KeyDown records a press. Repeats of a held key change nothing.
func (a *Aggregator) KeyDown(key Key) {
	a.Press(key, time.Time{})
}

// Press records a press or auto-repeat at the given time. Hosts that never
// deliver key releases pair it with ReleaseStale.
func (a *Aggregator) Press(key Key, at time.Time) {
	key = Normalize(string(key))
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.bound[key] {
		return
	}
	_, held := a.pressed[key]
	a.pressed[key] = at
	if !held {
		a.recompute()
	}
}

// KeyUp records a release.
func (a *Aggregator) KeyUp(key Key) {
	key = Normalize(string(key))
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, held := a.pressed[key]; !held {
		return
	}
	delete(a.pressed, key)
	a.recompute()
}

// ReleaseStale releases timed presses that have not repeated within hold.
// Presses recorded through KeyDown carry no time and are left alone.
func (a *Aggregator) ReleaseStale(now time.Time, hold time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()
	changed := false
	for key, at := range a.pressed {
		if !at.IsZero() && now.Sub(at) > hold {
			delete(a.pressed, key)
			changed = true
		}
	}
	if changed {
		a.recompute()
	}
}

// FocusLost releases everything so no key stays stuck while the window is away.
func (a *Aggregator) FocusLost() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.pressed) == 0 {
		return
	}
	a.pressed = make(map[Key]time.Time)
	a.recompute()
}

// Intent returns a copy of the current snapshot.
func (a *Aggregator) Intent() Intent {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.intent
}

// recompute must be called with mu held.
func (a *Aggregator) recompute() {
	held := func(k Key) bool {
		_, ok := a.pressed[k]
		return ok
	}
	b := a.bindings
	for i := range a.intent.Shooters {
		a.intent.Shooters[i] = ShooterIntent{
			Move: deriveMove(held(b.ShooterLeft[i]), held(b.ShooterRight[i])),
			Fire: held(b.ShooterFire[i]),
		}
	}
	for i := range a.intent.Catchers {
		a.intent.Catchers[i] = CatcherIntent{
			Move: deriveMove(held(b.CatcherLeft[i]), held(b.CatcherRight[i])),
		}
	}
}
