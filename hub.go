// Package server implements the realtime state-broadcast hub: one process
// owns every player entity plus the shared AI actor, mutates them through
// remote calls, and pushes the full snapshot to every open connection after
// each mutation.
package server

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"seek-and-strike/server/internal/ai"
	"seek-and-strike/server/internal/geom"
	"seek-and-strike/server/internal/physics"
)

// HubConfig carries the hub tunables.
type HubConfig struct {
	// AISpeed is the magnitude of the seek/flee velocity in world units
	// per second.
	AISpeed float64
	// AIStep is the time slice, in seconds, integrated per updateAI call.
	AIStep float64
	// WriteWait bounds every outbound websocket write.
	WriteWait time.Duration
}

// DefaultHubConfig returns the tunables used in production.
func DefaultHubConfig() HubConfig {
	return HubConfig{
		AISpeed:   1.0,
		AIStep:    0.1,
		WriteWait: 10 * time.Second,
	}
}

// SessionConn is the write side of a client connection. The websocket
// transport satisfies it; tests substitute recording fakes.
type SessionConn interface {
	Write(data []byte) error
	SetWriteDeadline(deadline time.Time) error
	Close() error
}

// Subscriber serializes writes to one connection. The hub lock is never
// held while a Subscriber writes.
type Subscriber struct {
	conn      SessionConn
	writeWait time.Duration
	mu        sync.Mutex
}

// Send writes one message with the configured deadline.
func (s *Subscriber) Send(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(s.writeWait))
	return s.conn.Write(data)
}

// Snapshot is a consistent copy of all entity state at one instant.
type Snapshot struct {
	Players    []Player
	AIPosition geom.Vec2
}

// Hub owns the connection registry, every player entity, and the shared AI
// actor. One mutex covers read-mutate-snapshot; sends happen outside it.
type Hub struct {
	mu          sync.Mutex
	players     map[string]*playerState
	subscribers map[string]*Subscriber
	ai          *aiActor

	cfg       HubConfig
	logger    *zap.SugaredLogger
	telemetry *telemetryCounters
}

// NewHub creates a hub with the default config.
func NewHub(logger *zap.SugaredLogger) *Hub {
	return NewHubWithConfig(DefaultHubConfig(), logger)
}

// NewHubWithConfig creates a hub with explicit tunables.
func NewHubWithConfig(cfg HubConfig, logger *zap.SugaredLogger) *Hub {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if cfg.AISpeed <= 0 {
		cfg.AISpeed = DefaultHubConfig().AISpeed
	}
	if cfg.AIStep <= 0 {
		cfg.AIStep = DefaultHubConfig().AIStep
	}
	if cfg.WriteWait <= 0 {
		cfg.WriteWait = DefaultHubConfig().WriteWait
	}
	return &Hub{
		players:     make(map[string]*playerState),
		subscribers: make(map[string]*Subscriber),
		ai:          newAIActor(),
		cfg:         cfg,
		logger:      logger,
		telemetry:   newTelemetryCounters(),
	}
}

// snapshotLocked builds a consistent snapshot. Callers must hold h.mu.
// Players are sorted by id so payloads are stable across broadcasts.
func (h *Hub) snapshotLocked() Snapshot {
	players := make([]Player, 0, len(h.players))
	for _, state := range h.players {
		players = append(players, state.snapshot())
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return Snapshot{Players: players, AIPosition: h.ai.pos}
}

// playerName derives the display name from a short prefix of the
// connection id.
func playerName(playerID string) string {
	const prefixLen = 8
	if len(playerID) <= prefixLen {
		return playerID
	}
	return playerID[:prefixLen]
}

// Connect registers a new connection: it creates the player entity keyed by
// the connection id, attaches the subscriber, and returns the post-join
// snapshot for the caller to broadcast.
func (h *Hub) Connect(playerID string, conn SessionConn) (*Subscriber, Snapshot, error) {
	state, err := newPlayerState(playerID, playerName(playerID), DefaultMaxHealth)
	if err != nil {
		return nil, Snapshot{}, err
	}

	sub := &Subscriber{conn: conn, writeWait: h.cfg.WriteWait}

	h.mu.Lock()
	if existing, ok := h.subscribers[playerID]; ok {
		existing.conn.Close()
	}
	h.players[playerID] = state
	h.subscribers[playerID] = sub
	snapshot := h.snapshotLocked()
	h.mu.Unlock()

	h.telemetry.IncConnects()
	h.logger.Infow("player connected", "playerID", playerID)
	return sub, snapshot, nil
}

// Disconnect removes the player and its subscriber. The returned bool
// reports whether a player was actually removed; only then should the
// caller broadcast the updated snapshot.
func (h *Hub) Disconnect(playerID string) (Snapshot, bool) {
	h.mu.Lock()
	sub, subOK := h.subscribers[playerID]
	if subOK {
		delete(h.subscribers, playerID)
	}
	_, playerOK := h.players[playerID]
	if playerOK {
		delete(h.players, playerID)
	}
	var snapshot Snapshot
	if playerOK {
		snapshot = h.snapshotLocked()
	}
	h.mu.Unlock()

	if subOK {
		sub.conn.Close()
	}
	if !playerOK {
		return Snapshot{}, false
	}

	h.telemetry.IncDisconnects()
	h.logger.Infow("player disconnected", "playerID", playerID)
	return snapshot, true
}

// Move offsets the caller's position. Unknown ids are a silent no-op and
// produce no broadcast.
func (h *Hub) Move(playerID string, dx, dy float64) (Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	state, ok := h.players[playerID]
	if !ok {
		return Snapshot{}, false
	}
	state.move(dx, dy)
	return h.snapshotLocked(), true
}

// Damage reduces the caller's health, clamped at zero. A negative amount is
// rejected before any state changes and suppresses the broadcast.
func (h *Hub) Damage(playerID string, amount int) (Snapshot, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	state, ok := h.players[playerID]
	if !ok {
		return Snapshot{}, false, nil
	}
	if err := state.takeDamage(amount); err != nil {
		h.telemetry.IncCallsRejected()
		return Snapshot{}, false, err
	}
	return h.snapshotLocked(), true, nil
}

// Heal restores the caller's health, clamped at the maximum. Negative
// amounts are rejected the same way as Damage.
func (h *Hub) Heal(playerID string, amount int) (Snapshot, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	state, ok := h.players[playerID]
	if !ok {
		return Snapshot{}, false, nil
	}
	if err := state.heal(amount); err != nil {
		h.telemetry.IncCallsRejected()
		return Snapshot{}, false, err
	}
	return h.snapshotLocked(), true, nil
}

// AdvanceAI evaluates the decision policy against the reference player and
// integrates one seek or flee step. The reference is the player nearest to
// the actor, ties broken by lowest id; attack and patrol decisions leave
// the actor in place. With no players connected the state is unchanged, but
// the returned snapshot is still meant to be broadcast.
func (h *Hub) AdvanceAI() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ref := h.nearestPlayerLocked(); ref != nil {
		dist := h.ai.pos.Distance(ref.pos)
		decision := ai.MakeDecision(h.ai.health, h.ai.maxHealth, dist)

		var velocity geom.Vec2
		switch decision {
		case ai.DecisionSeek:
			velocity = ai.SeekTarget(h.ai.pos, ref.pos, h.cfg.AISpeed)
		case ai.DecisionFlee:
			velocity = ai.FleeFrom(h.ai.pos, ref.pos, h.cfg.AISpeed)
		}
		h.ai.pos = physics.UpdatePosition(h.ai.pos, velocity, h.cfg.AIStep)
	}

	return h.snapshotLocked()
}

func (h *Hub) nearestPlayerLocked() *playerState {
	var nearest *playerState
	var nearestDist float64
	for _, state := range h.players {
		dist := h.ai.pos.Distance(state.pos)
		switch {
		case nearest == nil:
			nearest = state
			nearestDist = dist
		case dist < nearestDist:
			nearest = state
			nearestDist = dist
		case dist == nearestDist && state.id < nearest.id:
			nearest = state
		}
	}
	return nearest
}

// CurrentSnapshot returns the state as it exists right now, without
// mutating anything. requestGameState resyncs through it.
func (h *Hub) CurrentSnapshot() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshotLocked()
}

// BroadcastSnapshot pushes a gameStateUpdated payload to every subscriber.
// Each send is independent and best-effort: a failed write disconnects only
// that subscriber and triggers a follow-up broadcast so the remaining peers
// learn it left.
func (h *Hub) BroadcastSnapshot(snapshot Snapshot) {
	msg := StateMessage{
		Type:        EventGameStateUpdated,
		Players:     snapshot.Players,
		AIPositionX: snapshot.AIPosition.X,
		AIPositionY: snapshot.AIPosition.Y,
		ServerTime:  time.Now().UnixMilli(),
	}
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Errorw("failed to marshal state message", "error", err)
		return
	}

	h.mu.Lock()
	subs := make(map[string]*Subscriber, len(h.subscribers))
	for id, sub := range h.subscribers {
		subs[id] = sub
	}
	h.mu.Unlock()

	for id, sub := range subs {
		if err := sub.Send(data); err != nil {
			h.logger.Warnw("failed to send update, dropping subscriber", "playerID", id, "error", err)
			h.telemetry.IncSendFailures()
			if followUp, ok := h.Disconnect(id); ok {
				go h.BroadcastSnapshot(followUp)
			}
			continue
		}
		h.telemetry.RecordBroadcastSend(len(data))
	}
	h.telemetry.IncBroadcasts()
}

// TelemetrySnapshot exposes the counters for the diagnostics endpoint.
func (h *Hub) TelemetrySnapshot() TelemetrySnapshot {
	return h.telemetry.Snapshot()
}
