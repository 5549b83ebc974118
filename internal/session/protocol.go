// internal/session/protocol.go
package session

// Message types. Clients send the first two, the server sends the rest.
const (
	MsgJoinSession     = "join-session"
	MsgUpdateGamePhase = "update-game-phase"
	MsgPlayerJoined    = "player-joined"
	MsgPhaseChanged    = "phase-changed"
	MsgGameError       = "game-error"
)

// InitialPhase is the phase of a session nobody has updated yet.
const InitialPhase = "menu"

type JoinSession struct {
	SessionID  string `json:"sessionId" msgpack:"sessionId"`
	PlayerName string `json:"playerName" msgpack:"playerName"`
}

type UpdateGamePhase struct {
	SessionID string `json:"sessionId" msgpack:"sessionId"`
	Phase     string `json:"phase" msgpack:"phase"`
}

type PlayerJoined struct {
	PlayerID     string `json:"playerId" msgpack:"playerId"`
	PlayerName   string `json:"playerName" msgpack:"playerName"`
	TotalPlayers int    `json:"totalPlayers" msgpack:"totalPlayers"`
}

type PhaseChanged struct {
	Phase string `json:"phase" msgpack:"phase"`
}

type GameError struct {
	Message string `json:"message" msgpack:"message"`
}
