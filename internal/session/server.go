// internal/session/server.go
package session

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// ServerConfig configures a Server.
type ServerConfig struct {
	// AllowedOrigin is the browser origin accepted on upgrade. Empty or "*" accepts any.
	AllowedOrigin string
	Logger        *log.Logger
}

// Server exposes a Hub over websockets.
type Server struct {
	hub      *Hub
	logger   *log.Logger
	upgrader websocket.Upgrader
}

func NewServer(hub *Hub, cfg ServerConfig) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	origin := cfg.AllowedOrigin

	return &Server{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if origin == "" || origin == "*" {
					return true
				}
				got := r.Header.Get("Origin")
				return got == "" || strings.EqualFold(got, origin)
			},
		},
	}
}

// Handler routes /ws to the websocket endpoint and /healthz to a liveness probe.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.ServeWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "ok sessions=%d\n", s.hub.SessionCount())
	})
	return mux
}

// ServeWS upgrades the request and serves the connection until it closes.
// Clients pick their codec with ?enc=json (default) or ?enc=msgpack.
func (s *Server) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("upgrade failed: %v", err)
		return
	}

	c := newClient(conn, CodecFor(r.URL.Query().Get("enc")), s.logger)
	go c.writePump()
	s.logger.Printf("Client connected: %s (%s)", conn.RemoteAddr(), c.codec.Name())

	defer func() {
		s.hub.Disconnect(c)
		c.close()
		s.logger.Printf("Client disconnected: %s", conn.RemoteAddr())
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		s.handle(c, data)
	}
}

func (s *Server) handle(c *client, data []byte) {
	env, err := c.codec.Decode(data)
	if err != nil {
		s.logger.Printf("discarding malformed message from %s: %v", c.conn.RemoteAddr(), err)
		c.deliver(MsgGameError, GameError{Message: "malformed message"})
		return
	}

	switch env.Type {
	case MsgJoinSession:
		var msg JoinSession
		if err := c.codec.DecodePayload(env, &msg); err != nil || msg.SessionID == "" {
			c.deliver(MsgGameError, GameError{Message: "join-session needs a sessionId"})
			return
		}
		joined, targets := s.hub.Join(c, msg.SessionID, msg.PlayerName)
		s.logger.Printf("Player %s (%s) joined session %s", joined.PlayerID, joined.PlayerName, msg.SessionID)
		for _, t := range targets {
			t.deliver(MsgPlayerJoined, joined)
		}

	case MsgUpdateGamePhase:
		var msg UpdateGamePhase
		if err := c.codec.DecodePayload(env, &msg); err != nil {
			c.deliver(MsgGameError, GameError{Message: "malformed update-game-phase"})
			return
		}
		targets, ok := s.hub.UpdatePhase(msg.SessionID, msg.Phase)
		if !ok {
			c.deliver(MsgGameError, GameError{Message: fmt.Sprintf("unknown session %q", msg.SessionID)})
			return
		}
		for _, t := range targets {
			t.deliver(MsgPhaseChanged, PhaseChanged{Phase: msg.Phase})
		}

	default:
		c.deliver(MsgGameError, GameError{Message: fmt.Sprintf("unknown message type %q", env.Type)})
	}
}
