package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"go-party-arcade/internal/component"
	"go-party-arcade/internal/event"
)

func TestSynthLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	for c := range cueNotes {
		s, err := Synth(c, rate)
		if err != nil {
			t.Fatalf("Synth(%d): %v", c, err)
		}
		total := 0
		buf := make([][2]float64, 512)
		for {
			n, ok := s.Stream(buf)
			for i := 0; i < n; i++ {
				if buf[i][0] < -1 || buf[i][0] > 1 {
					t.Fatalf("cue %d: sample %v out of range", c, buf[i][0])
				}
			}
			total += n
			if !ok {
				break
			}
		}
		want := 0
		for _, n := range cueNotes[c] {
			want += rate.N(n.duration)
		}
		if total != want {
			t.Errorf("cue %d streamed %d samples, want %d", c, total, want)
		}
	}
}

func TestSynthUnknownCue(t *testing.T) {
	if _, err := Synth(Cue(99), beep.SampleRate(8000)); err == nil {
		t.Fatal("expected an error for an unknown cue")
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		name string
		e    event.Event
		want Cue
		ok   bool
	}{
		{"shot", event.Event{Type: event.ShotFired}, CueShot, true},
		{"breach", event.Event{Type: event.TargetBreached}, CueBreach, true},
		{"countdown", event.Event{Type: event.PhaseChanged, Data: event.PhaseChange{To: component.PhaseCountdown}}, CueCountdown, true},
		{"game over", event.Event{Type: event.PhaseChanged, Data: event.PhaseChange{To: component.PhaseGameOver}}, CueGameOver, true},
		{"silent phase", event.Event{Type: event.PhaseChanged, Data: event.PhaseChange{To: component.PhasePlaying}}, 0, false},
		{"spawn", event.Event{Type: event.TargetSpawned}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CueFor(tt.e)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Fatalf("CueFor = %d, %v, want %d, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer()
	p.OnEvent(event.Event{Type: event.ShotFired})
	if len(p.cache) != 0 {
		t.Fatal("uninitialized player synthesized a cue")
	}
	if Length(CueVictory) != 760*time.Millisecond {
		t.Fatalf("victory length = %v", Length(CueVictory))
	}
}
