package server

import "seek-and-strike/server/internal/geom"

// aiActor is the single shared non-player entity. It is owned by the hub
// and mutated only under the hub lock. Health exists so the decision policy
// has well-defined inputs; nothing in the call surface damages the actor,
// so at full health the policy reduces to attack-or-seek.
type aiActor struct {
	pos       geom.Vec2
	health    int
	maxHealth int
}

func newAIActor() *aiActor {
	return &aiActor{
		health:    DefaultMaxHealth,
		maxHealth: DefaultMaxHealth,
	}
}
