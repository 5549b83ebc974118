// internal/ui/popup.go
package ui

import (
	"image/color"
	"strconv"
	"sync"
	"time"

	"go-party-arcade/internal/config"
	"go-party-arcade/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	popupLifetime = 900 * time.Millisecond
	popupRise     = 60.0 // pixels over the lifetime
	poofLifetime  = 250 * time.Millisecond
	poofRadius    = 34.0
)

type popupKind int

const (
	popupText popupKind = iota
	popupPoof
)

// Popup is a short-lived piece of feedback drawn over the field.
type Popup struct {
	kind  popupKind
	Text  string
	X, Y  float64
	Color color.RGBA
	age   time.Duration
	life  time.Duration
}

// Progress returns how far the popup is through its life, in [0, 1].
func (p Popup) Progress() float64 {
	if p.life <= 0 {
		return 1
	}
	f := float64(p.age) / float64(p.life)
	if f > 1 {
		return 1
	}
	return f
}

// Popups collects heal text and hit poofs from engine events.
type Popups struct {
	mu    sync.Mutex
	items []Popup
}

// NewPopups creates an empty popup layer.
func NewPopups() *Popups {
	return &Popups{}
}

// Attach subscribes to the events that spawn popups.
func (p *Popups) Attach(d *event.Dispatcher) {
	d.Subscribe(event.Healed, p)
	d.Subscribe(event.TargetDestroyed, p)
}

// OnEvent implements event.Listener.
func (p *Popups) OnEvent(e event.Event) {
	switch d := e.Data.(type) {
	case event.Heal:
		if d.Amount <= 0 {
			return
		}
		p.add(Popup{
			kind:  popupText,
			Text:  "+" + strconv.Itoa(d.Amount) + " HP",
			X:     config.ScreenWidth / 2,
			Y:     config.BottomBarTop - 80,
			Color: config.HealFlashColor,
			life:  popupLifetime,
		})
	case event.Kill:
		p.add(Popup{
			kind:  popupPoof,
			X:     d.Position.X + config.TargetSize/2,
			Y:     d.Position.Y + config.TargetSize/2,
			Color: config.TextLightColor,
			life:  poofLifetime,
		})
	}
}

func (p *Popups) add(item Popup) {
	p.mu.Lock()
	p.items = append(p.items, item)
	p.mu.Unlock()
}

// Update ages every popup and drops the expired ones.
func (p *Popups) Update(dt time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	kept := p.items[:0]
	for _, it := range p.items {
		it.age += dt
		if it.age < it.life {
			kept = append(kept, it)
		}
	}
	p.items = kept
}

// Len returns the number of live popups.
func (p *Popups) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

// Clear drops every popup.
func (p *Popups) Clear() {
	p.mu.Lock()
	p.items = nil
	p.mu.Unlock()
}

// Draw renders text popups rising and fading, and poofs as expanding rings.
func (p *Popups) Draw(screen *ebiten.Image, face font.Face) {
	p.mu.Lock()
	items := append([]Popup(nil), p.items...)
	p.mu.Unlock()

	for _, it := range items {
		f := it.Progress()
		fade := fadeColor(it.Color, 1-f)
		switch it.kind {
		case popupText:
			DrawCentered(screen, it.Text, face, int(it.X), int(it.Y-popupRise*f), fade)
		case popupPoof:
			vector.StrokeCircle(screen, float32(it.X), float32(it.Y), float32(poofRadius*(0.5+f/2)), 3, fade, true)
		}
	}
}

func fadeColor(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
