package server

// Remote call types accepted from clients.
const (
	CallMovePlayer       = "movePlayer"
	CallTakeDamage       = "takeDamage"
	CallHeal             = "heal"
	CallUpdateAI         = "updateAI"
	CallRequestGameState = "requestGameState"
)

// Event types pushed to clients.
const (
	EventPlayerCreated    = "playerCreated"
	EventGameStateUpdated = "gameStateUpdated"
	EventError            = "error"
)

// StateMessage is the full-state broadcast payload. Every mutation pushes
// one of these to every open connection.
type StateMessage struct {
	Type        string   `json:"type"`
	Players     []Player `json:"players"`
	AIPositionX float64  `json:"aiPositionX"`
	AIPositionY float64  `json:"aiPositionY"`
	ServerTime  int64    `json:"serverTime"`
}

// PlayerCreatedMessage tells a freshly connected client its assigned id.
type PlayerCreatedMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// ErrorMessage reports a rejected call to the caller that issued it. It is
// never broadcast.
type ErrorMessage struct {
	Type   string `json:"type"`
	Call   string `json:"call"`
	Reason string `json:"reason"`
}
