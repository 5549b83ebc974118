// internal/session/publisher.go
package session

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"go-party-arcade/internal/event"
)

// Publisher is the game side of a session. It joins once and then forwards
// every phase change of the local game to the session.
type Publisher struct {
	conn      *websocket.Conn
	codec     Codec
	sessionID string
	logger    *log.Logger

	out  chan []byte
	done chan struct{}
	once sync.Once

	mu       sync.Mutex
	received []Envelope
}

// Dial connects to a session server, e.g. ws://localhost:3001/ws, and joins
// sessionID as playerName.
func Dial(ctx context.Context, rawURL, sessionID, playerName string, codec Codec) (*Publisher, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse session url: %w", err)
	}
	q := u.Query()
	q.Set("enc", codec.Name())
	u.RawQuery = q.Encode()

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", u.Redacted(), err)
	}

	p := &Publisher{
		conn:      conn,
		codec:     codec,
		sessionID: sessionID,
		logger:    log.Default(),
		out:       make(chan []byte, sendQueue),
		done:      make(chan struct{}),
	}
	go p.writeLoop()
	go p.readLoop()

	if err := p.send(MsgJoinSession, JoinSession{SessionID: sessionID, PlayerName: playerName}); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

// OnEvent implements event.Listener.
func (p *Publisher) OnEvent(e event.Event) {
	if e.Type != event.PhaseChanged {
		return
	}
	change, ok := e.Data.(event.PhaseChange)
	if !ok {
		return
	}
	if err := p.PublishPhase(change.To.String()); err != nil {
		p.logger.Printf("session: %v", err)
	}
}

// PublishPhase tells the session the game entered phase.
func (p *Publisher) PublishPhase(phase string) error {
	return p.send(MsgUpdateGamePhase, UpdateGamePhase{SessionID: p.sessionID, Phase: phase})
}

// Received returns the messages the server sent so far.
func (p *Publisher) Received() []Envelope {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Envelope(nil), p.received...)
}

// Close ends the connection. It is safe to call more than once.
func (p *Publisher) Close() error {
	p.once.Do(func() { close(p.done) })
	return nil
}

func (p *Publisher) send(msgType string, payload any) error {
	data, err := p.codec.Encode(msgType, payload)
	if err != nil {
		return err
	}
	select {
	case <-p.done:
		return fmt.Errorf("send %s: publisher closed", msgType)
	case p.out <- data:
		return nil
	default:
		return fmt.Errorf("send %s: queue full", msgType)
	}
}

func (p *Publisher) writeLoop() {
	defer p.conn.Close()
	for {
		select {
		case <-p.done:
			_ = p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = p.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case data := <-p.out:
			_ = p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(p.codec.FrameType(), data); err != nil {
				p.logger.Printf("session write failed: %v", err)
				p.Close()
				return
			}
		}
	}
}

func (p *Publisher) readLoop() {
	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			p.Close()
			return
		}
		env, err := p.codec.Decode(data)
		if err != nil {
			continue
		}
		if env.Type == MsgGameError {
			var ge GameError
			if p.codec.DecodePayload(env, &ge) == nil {
				p.logger.Printf("session error: %s", ge.Message)
			}
		}
		p.mu.Lock()
		p.received = append(p.received, env)
		p.mu.Unlock()
	}
}
