// internal/session/hub.go
package session

import (
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Player is one participant of a session.
type Player struct {
	ID        string
	Name      string
	Connected bool

	client *client
}

// Session groups the players watching one presentation.
type Session struct {
	ID        string
	Phase     string
	CreatedAt time.Time
	players   map[string]*Player
}

// SessionInfo is a copy of a session for callers outside the hub.
type SessionInfo struct {
	ID        string
	Phase     string
	CreatedAt time.Time
	Players   []Player
}

// Hub tracks sessions and which clients listen to each.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Join adds a player for c to the session, creating the session on first
// use. It returns the announcement and the clients to send it to.
func (h *Hub) Join(c *client, sessionID, name string) (PlayerJoined, []*client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sessions[sessionID]
	if !ok {
		s = &Session{
			ID:        sessionID,
			Phase:     InitialPhase,
			CreatedAt: h.now(),
			players:   make(map[string]*Player),
		}
		h.sessions[sessionID] = s
	}

	p := &Player{
		ID:        "player-" + ulid.Make().String(),
		Name:      name,
		Connected: true,
		client:    c,
	}
	s.players[p.ID] = p
	c.join(sessionID, p.ID)

	return PlayerJoined{PlayerID: p.ID, PlayerName: name, TotalPlayers: len(s.players)}, s.listeners()
}

// UpdatePhase records a session's phase. ok is false for an unknown session.
func (h *Hub) UpdatePhase(sessionID, phase string) (targets []*client, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sessions[sessionID]
	if !ok {
		return nil, false
	}
	s.Phase = phase
	return s.listeners(), true
}

// Disconnect marks every player that c joined as disconnected. Players stay
// in their sessions.
func (h *Hub) Disconnect(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sessionID, playerIDs := range c.memberships() {
		s, ok := h.sessions[sessionID]
		if !ok {
			continue
		}
		for _, id := range playerIDs {
			if p, ok := s.players[id]; ok {
				p.Connected = false
				p.client = nil
			}
		}
	}
}

// Session returns a copy of the named session.
func (h *Hub) Session(id string) (SessionInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sessions[id]
	if !ok {
		return SessionInfo{}, false
	}
	info := SessionInfo{ID: s.ID, Phase: s.Phase, CreatedAt: s.CreatedAt}
	for _, p := range s.players {
		info.Players = append(info.Players, Player{ID: p.ID, Name: p.Name, Connected: p.Connected})
	}
	sort.Slice(info.Players, func(i, j int) bool { return info.Players[i].ID < info.Players[j].ID })
	return info, true
}

// SessionCount returns the number of sessions ever joined.
func (h *Hub) SessionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// listeners returns each connected client of the session once.
func (s *Session) listeners() []*client {
	seen := make(map[*client]bool)
	var out []*client
	for _, p := range s.players {
		if p.client == nil || seen[p.client] {
			continue
		}
		seen[p.client] = true
		out = append(out, p.client)
	}
	return out
}
