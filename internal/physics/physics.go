// Package physics holds the stateless movement helpers shared by the hub
// and the AI steering code. Every function is pure.
package physics

import "seek-and-strike/server/internal/geom"

// restThreshold is the speed below which a damped velocity snaps to zero.
// Without the snap, friction leaves entities jittering at tiny speeds
// forever instead of coming to rest.
const restThreshold = 0.01

// UpdatePosition integrates a position forward by velocity over dt seconds.
func UpdatePosition(pos, velocity geom.Vec2, dt float64) geom.Vec2 {
	return pos.Add(velocity.Scale(dt))
}

// ApplyFriction dampens velocity by the given coefficient over dt seconds.
// The result snaps to the zero vector once its length falls below the rest
// threshold.
func ApplyFriction(velocity geom.Vec2, coefficient, dt float64) geom.Vec2 {
	damped := velocity.Sub(velocity.Scale(coefficient * dt))
	if damped.Length() < restThreshold {
		return geom.Vec2{}
	}
	return damped
}

// CheckCollision reports whether two circles overlap. Touching circles do
// not collide; the comparison is strict.
func CheckCollision(posA geom.Vec2, radiusA float64, posB geom.Vec2, radiusB float64) bool {
	return posA.Distance(posB) < radiusA+radiusB
}
