package ws

import (
	"encoding/json"
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	server "seek-and-strike/server"
)

// clientMessage is the envelope for every remote call a client can issue.
type clientMessage struct {
	Type   string  `json:"type"`
	DX     float64 `json:"dx"`
	DY     float64 `json:"dy"`
	Amount int     `json:"amount"`
}

// Handler upgrades connections, assigns each one its identity, and runs the
// read loop that dispatches remote calls into the hub.
type Handler struct {
	hub      *server.Hub
	logger   *zap.SugaredLogger
	upgrader websocket.Upgrader
}

// NewHandler constructs a websocket handler for the given hub.
func NewHandler(hub *server.Hub, logger *zap.SugaredLogger) *Handler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Handler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *nethttp.Request) bool {
				return true
			},
		},
	}
}

// Handle serves one connection for its whole lifetime.
func (h *Handler) Handle(w nethttp.ResponseWriter, r *nethttp.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warnw("websocket upgrade failed", "error", err)
		return
	}

	playerID := uuid.NewString()

	sub, snapshot, err := h.hub.Connect(playerID, wsConn{conn: conn})
	if err != nil {
		h.logger.Errorw("failed to register connection", "playerID", playerID, "error", err)
		conn.Close()
		return
	}

	// The new connection learns its id before the first snapshot arrives.
	if !h.sendJSON(sub, playerID, server.PlayerCreatedMessage{Type: server.EventPlayerCreated, ID: playerID}) {
		return
	}
	h.hub.BroadcastSnapshot(snapshot)

	h.readLoop(conn, sub, playerID)
}

// readLoop dispatches remote calls until the connection drops. The
// transport detecting closure is the only disconnect path; there is no
// heartbeat polling.
func (h *Handler) readLoop(conn *websocket.Conn, sub *server.Subscriber, playerID string) {
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			h.disconnect(playerID)
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.logger.Debugw("discarding malformed message", "playerID", playerID, "error", err)
			continue
		}

		switch msg.Type {
		case server.CallMovePlayer:
			if snapshot, ok := h.hub.Move(playerID, msg.DX, msg.DY); ok {
				h.hub.BroadcastSnapshot(snapshot)
			}
		case server.CallTakeDamage:
			snapshot, ok, err := h.hub.Damage(playerID, msg.Amount)
			if err != nil {
				if !h.sendError(sub, playerID, msg.Type, err) {
					return
				}
				continue
			}
			if ok {
				h.hub.BroadcastSnapshot(snapshot)
			}
		case server.CallHeal:
			snapshot, ok, err := h.hub.Heal(playerID, msg.Amount)
			if err != nil {
				if !h.sendError(sub, playerID, msg.Type, err) {
					return
				}
				continue
			}
			if ok {
				h.hub.BroadcastSnapshot(snapshot)
			}
		case server.CallUpdateAI:
			h.hub.BroadcastSnapshot(h.hub.AdvanceAI())
		case server.CallRequestGameState:
			h.hub.BroadcastSnapshot(h.hub.CurrentSnapshot())
		default:
			h.logger.Debugw("unknown call type", "playerID", playerID, "type", msg.Type)
		}
	}
}

// sendError reports a rejected call to the offending caller only. The
// return value is false when the write itself failed and the session is
// gone.
func (h *Handler) sendError(sub *server.Subscriber, playerID, call string, cause error) bool {
	return h.sendJSON(sub, playerID, server.ErrorMessage{
		Type:   server.EventError,
		Call:   call,
		Reason: cause.Error(),
	})
}

func (h *Handler) sendJSON(sub *server.Subscriber, playerID string, payload any) bool {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Errorw("failed to marshal payload", "playerID", playerID, "error", err)
		return true
	}
	if err := sub.Send(data); err != nil {
		h.disconnect(playerID)
		return false
	}
	return true
}

func (h *Handler) disconnect(playerID string) {
	if snapshot, ok := h.hub.Disconnect(playerID); ok {
		h.hub.BroadcastSnapshot(snapshot)
	}
}
