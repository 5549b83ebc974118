package input

import (
	"sync"
	"testing"
	"time"

	"go-party-arcade/internal/component"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want Key
	}{
		{"r", KeyR},
		{"R", KeyR},
		{"KeyR", KeyR},
		{"keyr", KeyR},
		{"arrowleft", KeyArrowLeft},
		{"ArrowRight", KeyArrowRight},
		{"Enter", "Enter"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMovementFromPairedKeys(t *testing.T) {
	a := NewAggregator(DefaultBindings())

	a.KeyDown(KeyArrowLeft)
	if got := a.Intent().Catchers[component.CatcherOne].Move; got != -1 {
		t.Fatalf("left only: move = %d, want -1", got)
	}
	a.KeyDown(KeyArrowRight)
	if got := a.Intent().Catchers[component.CatcherOne].Move; got != 0 {
		t.Fatalf("both held: move = %d, want 0", got)
	}
	a.KeyUp(KeyArrowLeft)
	if got := a.Intent().Catchers[component.CatcherOne].Move; got != 1 {
		t.Fatalf("right only: move = %d, want 1", got)
	}

	a.KeyDown("d")
	if got := a.Intent().Catchers[component.CatcherTwo].Move; got != 1 {
		t.Fatalf("lower-case alias: move = %d, want 1", got)
	}
	a.KeyDown(KeyK)
	if got := a.Intent().Shooters[component.ShooterRight].Move; got != -1 {
		t.Fatalf("right shooter move = %d, want -1", got)
	}
}

func TestFireFlagsAndRepeat(t *testing.T) {
	a := NewAggregator(DefaultBindings())
	a.KeyDown(KeyH)
	a.KeyDown(KeyH)
	in := a.Intent()
	if !in.Shooters[component.ShooterCenter].Fire {
		t.Fatal("center shooter should be firing")
	}
	if in.Shooters[component.ShooterLeft].Fire || in.Shooters[component.ShooterRight].Fire {
		t.Fatal("other shooters should not be firing")
	}
	a.KeyUp(KeyH)
	if a.Intent().Shooters[component.ShooterCenter].Fire {
		t.Fatal("a single release should clear a repeated key")
	}
}

func TestFocusLostClearsEverything(t *testing.T) {
	a := NewAggregator(DefaultBindings())
	a.KeyDown(KeyR)
	a.KeyDown(KeyArrowLeft)
	a.KeyDown(KeyQ)
	a.FocusLost()
	if got := a.Intent(); got != (Intent{}) {
		t.Fatalf("intent after focus loss = %+v, want zero", got)
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	a := NewAggregator(DefaultBindings())
	a.KeyDown("Space")
	a.KeyUp("Escape")
	if got := a.Intent(); got != (Intent{}) {
		t.Fatalf("intent = %+v, want zero", got)
	}
}

func TestReleaseStale(t *testing.T) {
	a := NewAggregator(DefaultBindings())
	start := time.Unix(1000, 0)
	hold := 200 * time.Millisecond

	a.Press(KeyJ, start)
	a.Press(KeyJ, start.Add(150*time.Millisecond))
	a.ReleaseStale(start.Add(300*time.Millisecond), hold)
	if !a.Intent().Shooters[component.ShooterRight].Fire {
		t.Fatal("repeated key released too early")
	}
	a.ReleaseStale(start.Add(400*time.Millisecond), hold)
	if a.Intent().Shooters[component.ShooterRight].Fire {
		t.Fatal("key without repeats should have been released")
	}

	a.KeyDown(KeyR)
	a.ReleaseStale(start.Add(time.Hour), hold)
	if !a.Intent().Shooters[component.ShooterLeft].Fire {
		t.Fatal("untimed press must wait for KeyUp")
	}
}

func TestConcurrentProducerConsumer(t *testing.T) {
	a := NewAggregator(DefaultBindings())
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			a.KeyDown(KeyA)
			a.KeyUp(KeyA)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			if m := a.Intent().Catchers[component.CatcherTwo].Move; m != 0 && m != -1 {
				t.Errorf("move = %d, want 0 or -1", m)
				return
			}
		}
	}()
	wg.Wait()
}
