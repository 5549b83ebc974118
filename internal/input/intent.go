package input

import "go-party-arcade/internal/component"

// ShooterIntent is what one shooter's player is asking for this frame.
type ShooterIntent struct {
	Move int // -1, 0 or 1
	Fire bool
}

// CatcherIntent is what one catcher's player is asking for this frame.
type CatcherIntent struct {
	Move int // -1, 0 or 1
}

// Intent is the full per-frame input snapshot read by the engine.
type Intent struct {
	Shooters [component.ShooterCount]ShooterIntent
	Catchers [component.CatcherCount]CatcherIntent
}

// Bindings maps keys to actors. Each actor has a left/right pair and shooters
// also have a fire key.
type Bindings struct {
	ShooterLeft  [component.ShooterCount]Key
	ShooterRight [component.ShooterCount]Key
	ShooterFire  [component.ShooterCount]Key
	CatcherLeft  [component.CatcherCount]Key
	CatcherRight [component.CatcherCount]Key
}

// DefaultBindings keeps the party layout: fire on R/H/J, catchers on arrows and A/D.
func DefaultBindings() Bindings {
	return Bindings{
		ShooterLeft:  [component.ShooterCount]Key{KeyQ, KeyV, KeyK},
		ShooterRight: [component.ShooterCount]Key{KeyW, KeyB, KeyL},
		ShooterFire:  [component.ShooterCount]Key{KeyR, KeyH, KeyJ},
		CatcherLeft:  [component.CatcherCount]Key{KeyArrowLeft, KeyA},
		CatcherRight: [component.CatcherCount]Key{KeyArrowRight, KeyD},
	}
}

// Keys lists every bound key.
func (b Bindings) Keys() []Key {
	var keys []Key
	keys = append(keys, b.ShooterLeft[:]...)
	keys = append(keys, b.ShooterRight[:]...)
	keys = append(keys, b.ShooterFire[:]...)
	keys = append(keys, b.CatcherLeft[:]...)
	keys = append(keys, b.CatcherRight[:]...)
	return keys
}

func deriveMove(left, right bool) int {
	switch {
	case left && !right:
		return -1
	case right && !left:
		return 1
	default:
		return 0
	}
}
