// internal/state/keyboard.go
package state

import (
	"go-party-arcade/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyboardBridge feeds ebiten key transitions into an input.Aggregator.
type KeyboardBridge struct {
	agg      *input.Aggregator
	focused  bool
	pressed  []ebiten.Key
	released []ebiten.Key
}

// NewKeyboardBridge creates a bridge writing into agg.
func NewKeyboardBridge(agg *input.Aggregator) *KeyboardBridge {
	return &KeyboardBridge{agg: agg, focused: true}
}

// KeyFor maps an ebiten key to the aggregator's key names.
func KeyFor(k ebiten.Key) input.Key {
	return input.Normalize(k.String())
}

// Poll forwards this frame's presses and releases. Losing window focus
// releases everything.
func (b *KeyboardBridge) Poll() {
	if !ebiten.IsFocused() {
		if b.focused {
			b.agg.FocusLost()
		}
		b.focused = false
		return
	}
	b.focused = true

	b.pressed = inpututil.AppendJustPressedKeys(b.pressed[:0])
	for _, k := range b.pressed {
		b.agg.KeyDown(KeyFor(k))
	}
	b.released = inpututil.AppendJustReleasedKeys(b.released[:0])
	for _, k := range b.released {
		b.agg.KeyUp(KeyFor(k))
	}
}

// ReleaseAll drops every held key, e.g. when gameplay is paused.
func (b *KeyboardBridge) ReleaseAll() {
	b.agg.FocusLost()
}
