package server

import (
	"errors"

	"seek-and-strike/server/internal/geom"
)

// DefaultMaxHealth is the health pool assigned to players created without
// an explicit maximum.
const DefaultMaxHealth = 100

var (
	// ErrEmptyName rejects player creation without a name.
	ErrEmptyName = errors.New("player name must not be empty")
	// ErrNegativeAmount rejects damage and heal calls with negative amounts.
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// Player is the wire-visible slice of a player entity, serialized into
// every gameStateUpdated broadcast.
type Player struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Health    int     `json:"health"`
	MaxHealth int     `json:"maxHealth"`
	X         float64 `json:"positionX"`
	Y         float64 `json:"positionY"`
	Alive     bool    `json:"isAlive"`
}

// playerState is the authoritative per-connection entity owned by the hub.
// All access goes through the hub lock.
type playerState struct {
	id        string
	name      string
	pos       geom.Vec2
	health    int
	maxHealth int
}

func newPlayerState(id, name string, maxHealth int) (*playerState, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if maxHealth <= 0 {
		maxHealth = DefaultMaxHealth
	}
	return &playerState{
		id:        id,
		name:      name,
		health:    maxHealth,
		maxHealth: maxHealth,
	}, nil
}

// move offsets the position by the given delta. The world is unbounded, so
// there is no clamping.
func (s *playerState) move(dx, dy float64) {
	s.pos = s.pos.Add(geom.Vec2{X: dx, Y: dy})
}

// takeDamage reduces health, clamped at zero.
func (s *playerState) takeDamage(amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	s.health -= amount
	if s.health < 0 {
		s.health = 0
	}
	return nil
}

// heal restores health, clamped at the maximum.
func (s *playerState) heal(amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	s.health += amount
	if s.health > s.maxHealth {
		s.health = s.maxHealth
	}
	return nil
}

func (s *playerState) alive() bool {
	return s.health > 0
}

func (s *playerState) snapshot() Player {
	return Player{
		ID:        s.id,
		Name:      s.name,
		Health:    s.health,
		MaxHealth: s.maxHealth,
		X:         s.pos.X,
		Y:         s.pos.Y,
		Alive:     s.alive(),
	}
}
