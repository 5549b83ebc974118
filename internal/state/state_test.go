package state

import (
	"testing"

	"go-party-arcade/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	log *[]string
	id  string
}

func (r recordingState) Enter()             { *r.log = append(*r.log, "enter "+r.id) }
func (r recordingState) Update(float64)     { *r.log = append(*r.log, "update "+r.id) }
func (r recordingState) Draw(*ebiten.Image) {}
func (r recordingState) Exit()              { *r.log = append(*r.log, "exit "+r.id) }

func TestStateMachineSwitches(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(0.016)

	sm.SetState(recordingState{&log, "a"})
	sm.Update(0.016)
	sm.SetState(recordingState{&log, "b"})
	sm.SetState(nil)
	sm.Update(0.016)

	want := []string{"enter a", "update a", "exit a", "enter b", "exit b"}
	if len(log) != len(want) {
		t.Fatalf("got %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("got %v, want %v", log, want)
		}
	}
	if sm.Current() != nil {
		t.Fatalf("got %v, want no current state", sm.Current())
	}
}

func TestTypewriter(t *testing.T) {
	var tw Typewriter
	tw.Reset(90)
	if tw.Visible() != 0 || tw.Done() {
		t.Fatalf("got %d visible, want a hidden line", tw.Visible())
	}
	tw.Update(1)
	if got, want := tw.Visible(), int(charsPerSecond); got != want {
		t.Fatalf("got %d visible, want %d", got, want)
	}
	tw.Finish()
	if !tw.Done() || tw.Visible() != 90 {
		t.Fatalf("got %d visible, want the full line", tw.Visible())
	}
	tw.Update(10)
	if got := tw.Visible(); got != 90 {
		t.Fatalf("got %d visible, want it capped at 90", got)
	}
}

func TestKeyFor(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want input.Key
	}{
		{ebiten.KeyA, input.KeyA},
		{ebiten.KeyR, input.KeyR},
		{ebiten.KeyArrowLeft, input.KeyArrowLeft},
		{ebiten.KeyArrowRight, input.KeyArrowRight},
	}
	for _, tt := range tests {
		if got := KeyFor(tt.key); got != tt.want {
			t.Fatalf("KeyFor(%v): got %q, want %q", tt.key, got, tt.want)
		}
	}
}
