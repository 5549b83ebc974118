package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"go-party-arcade/internal/app"
	"go-party-arcade/internal/component"
	"go-party-arcade/internal/config"
	"go-party-arcade/internal/defs"
	"go-party-arcade/internal/input"
)

func TestKeyFor(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want input.Key
	}{
		{tcell.KeyLeft, 0, input.KeyArrowLeft},
		{tcell.KeyRight, 0, input.KeyArrowRight},
		{tcell.KeyRune, 'r', input.KeyR},
		{tcell.KeyRune, 'R', input.KeyR},
		{tcell.KeyRune, '1', ""},
		{tcell.KeyUp, 0, ""},
	}
	for _, tt := range tests {
		if got := keyFor(tt.key, tt.r); got != tt.want {
			t.Fatalf("keyFor(%v, %q): got %q, want %q", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want action
	}{
		{tcell.KeyEscape, 0, actionQuit},
		{tcell.KeyCtrlC, 0, actionQuit},
		{tcell.KeyEnter, 0, actionRetry},
		{tcell.KeyRune, ' ', actionConfirm},
		{tcell.KeyRune, 'h', actionNone},
	}
	for _, tt := range tests {
		if got := actionFor(tt.key, tt.r); got != tt.want {
			t.Fatalf("actionFor(%v, %q): got %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestCellMapping(t *testing.T) {
	tests := []struct {
		v, extent float64
		n, want   int
	}{
		{0, 100, 10, 0},
		{55, 100, 10, 5},
		{100, 100, 10, 9},
		{-5, 100, 10, 0},
		{50, 100, 0, 0},
	}
	for _, tt := range tests {
		if got := cell(tt.v, tt.extent, tt.n); got != tt.want {
			t.Fatalf("cell(%v, %v, %d): got %d, want %d", tt.v, tt.extent, tt.n, got, tt.want)
		}
	}
}

func TestDrawPlacesActors(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(96, 55)

	st := app.State{
		Phase:     component.PhasePlaying,
		Level:     1,
		Wave:      1,
		Health:    30,
		MaxHealth: 30,
		Targets: []component.Target{{
			Position: component.Position{X: 960 - config.TargetSize/2, Y: 200},
			Category: defs.CategoryRed,
			Alive:    true,
		}},
	}
	st.Shooters[0] = component.Shooter{Alive: true, Ammo: 12, MaxAmmo: 40, Position: component.Position{X: 400, Y: config.ShooterY}}
	draw(screen, st)

	w, h := screen.Size()
	tx, ty := field(960, 200+config.TargetSize/2, w, h)
	if r, _, _, _ := screen.GetContent(tx, ty); r != '■' {
		t.Fatalf("got %q at target cell, want %q", r, '■')
	}
	sx, sy := field(400, config.ShooterY, w, h)
	if r, _, _, _ := screen.GetContent(sx, sy); r != '▲' {
		t.Fatalf("got %q at shooter cell, want %q", r, '▲')
	}
	if r, _, _, _ := screen.GetContent(1, 0); r != 'H' {
		t.Fatalf("got %q at the start of the status bar, want %q", r, 'H')
	}
}
