// Package ai implements the decision policy and steering helpers for the
// shared AI actor.
package ai

import "seek-and-strike/server/internal/geom"

// Decision is the discrete behavior the policy selects for one evaluation.
type Decision int

const (
	DecisionSeek Decision = iota
	DecisionAttack
	DecisionFlee
	// DecisionPatrol is declared for the patrol behavior but is never
	// produced by MakeDecision; no trigger condition exists yet.
	DecisionPatrol
)

func (d Decision) String() string {
	switch d {
	case DecisionSeek:
		return "seek"
	case DecisionAttack:
		return "attack"
	case DecisionFlee:
		return "flee"
	case DecisionPatrol:
		return "patrol"
	default:
		return "unknown"
	}
}

const (
	fleeHealthFraction   = 0.3
	attackRange          = 5.0
	attackHealthFraction = 0.5
)

// MakeDecision maps current health and target distance to a behavior.
// All boundary comparisons are strict: exactly 30% health is not a flee,
// exactly 5.0 distance is not an attack, exactly 50% health is not an
// attack. Anything that is neither flee nor attack falls through to seek.
func MakeDecision(currentHealth, maxHealth int, distanceToTarget float64) Decision {
	fraction := float64(currentHealth) / float64(maxHealth)
	if fraction < fleeHealthFraction {
		return DecisionFlee
	}
	if distanceToTarget < attackRange && fraction > attackHealthFraction {
		return DecisionAttack
	}
	return DecisionSeek
}

// SeekTarget returns a velocity of the given speed pointing from current
// toward target.
func SeekTarget(current, target geom.Vec2, speed float64) geom.Vec2 {
	return target.Sub(current).Normalize().Scale(speed)
}

// FleeFrom returns a velocity of the given speed pointing from threat away
// through current.
func FleeFrom(current, threat geom.Vec2, speed float64) geom.Vec2 {
	return current.Sub(threat).Normalize().Scale(speed)
}
