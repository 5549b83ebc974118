package main

import (
	"github.com/gdamore/tcell/v2"

	"go-party-arcade/internal/input"
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionConfirm
	actionRetry
)

// keyFor maps a terminal key to the aggregator's key names. Terminals send
// letters with their case and modifiers folded in, so only the rune counts.
func keyFor(k tcell.Key, r rune) input.Key {
	switch k {
	case tcell.KeyLeft:
		return input.KeyArrowLeft
	case tcell.KeyRight:
		return input.KeyArrowRight
	case tcell.KeyRune:
		return input.Letter(r)
	}
	return ""
}

func actionFor(k tcell.Key, r rune) action {
	switch {
	case k == tcell.KeyEscape, k == tcell.KeyCtrlC:
		return actionQuit
	case k == tcell.KeyEnter:
		return actionRetry
	case k == tcell.KeyRune && r == ' ':
		return actionConfirm
	}
	return actionNone
}
