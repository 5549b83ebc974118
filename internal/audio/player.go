// internal/audio/player.go
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-party-arcade/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cues into the speaker. A Player that failed to open the
// speaker, or was muted, stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	cache       map[Cue]*beep.Buffer
}

func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
		cache: make(map[Cue]*beep.Buffer),
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetMuted silences or unsilences new cues.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Play starts a cue on top of whatever is playing.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || p.muted {
		return
	}

	buf, ok := p.cache[c]
	if !ok {
		s, err := Synth(c, sampleRate)
		if err != nil {
			log.Printf("audio: %v", err)
			return
		}
		buf = beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
		buf.Append(s)
		p.cache[c] = buf
	}

	speaker.Lock()
	p.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// OnEvent implements event.Listener.
func (p *Player) OnEvent(e event.Event) {
	if c, ok := CueFor(e); ok {
		p.Play(c)
	}
}

// Close stops all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
