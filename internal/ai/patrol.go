package ai

import (
	"math"
	"math/rand"

	"seek-and-strike/server/internal/geom"
)

// DefaultPatrolSeed keeps patrol sampling reproducible across runs, which
// the behavior tests rely on.
const DefaultPatrolSeed = 42

// PatrolPlanner draws patrol points around a center using its own seeded
// generator. Two planners built with the same seed produce identical point
// sequences for identical call sequences.
type PatrolPlanner struct {
	rng *rand.Rand
}

// NewPatrolPlanner returns a planner seeded with the given value.
func NewPatrolPlanner(seed int64) *PatrolPlanner {
	return &PatrolPlanner{rng: rand.New(rand.NewSource(seed))}
}

// NextPoint samples a point uniformly by angle and distance inside the
// circle of the given radius around center.
func (p *PatrolPlanner) NextPoint(center geom.Vec2, radius float64) geom.Vec2 {
	angle := p.rng.Float64() * 2 * math.Pi
	dist := p.rng.Float64() * radius
	offset := geom.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(dist)
	return center.Add(offset)
}
