// internal/session/client.go
package session

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 25 * time.Second
	maxMessageSize = 1 << 16
	sendQueue      = 32
)

// client is one websocket connection on the server side.
type client struct {
	conn   *websocket.Conn
	codec  Codec
	send   chan []byte
	logger *log.Logger

	mu       sync.Mutex
	sessions map[string][]string // session id -> player ids joined over this connection
	closed   bool
}

func newClient(conn *websocket.Conn, codec Codec, logger *log.Logger) *client {
	return &client{
		conn:     conn,
		codec:    codec,
		send:     make(chan []byte, sendQueue),
		logger:   logger,
		sessions: make(map[string][]string),
	}
}

func (c *client) join(sessionID, playerID string) {
	c.mu.Lock()
	c.sessions[sessionID] = append(c.sessions[sessionID], playerID)
	c.mu.Unlock()
}

func (c *client) memberships() map[string][]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string][]string, len(c.sessions))
	for k, v := range c.sessions {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// deliver encodes a message with the client's codec and queues it. A client
// whose queue is full misses the message.
func (c *client) deliver(msgType string, payload any) {
	data, err := c.codec.Encode(msgType, payload)
	if err != nil {
		c.logger.Printf("failed to encode %s: %v", msgType, err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- data:
	default:
		c.logger.Printf("dropping %s for slow client %s", msgType, c.conn.RemoteAddr())
	}
}

func (c *client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// writePump owns all writes to the connection.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(c.codec.FrameType(), data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
