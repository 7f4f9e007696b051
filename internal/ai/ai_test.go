package ai

import (
	"math"
	"testing"

	"seek-and-strike/server/internal/geom"
)

func TestMakeDecision(t *testing.T) {
	cases := []struct {
		name     string
		health   int
		max      int
		distance float64
		want     Decision
	}{
		{name: "low health flees", health: 20, max: 100, distance: 10.0, want: DecisionFlee},
		{name: "healthy and close attacks", health: 80, max: 100, distance: 3.0, want: DecisionAttack},
		{name: "healthy but far seeks", health: 60, max: 100, distance: 10.0, want: DecisionSeek},
		{name: "exactly 30 percent is not a flee", health: 30, max: 100, distance: 10.0, want: DecisionSeek},
		{name: "just under 30 percent flees", health: 29, max: 100, distance: 10.0, want: DecisionFlee},
		{name: "exactly attack range is not an attack", health: 80, max: 100, distance: 5.0, want: DecisionSeek},
		{name: "exactly 50 percent is not an attack", health: 50, max: 100, distance: 3.0, want: DecisionSeek},
		{name: "full health point blank attacks", health: 100, max: 100, distance: 0, want: DecisionAttack},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MakeDecision(tc.health, tc.max, tc.distance)
			if got != tc.want {
				t.Fatalf("MakeDecision(%d, %d, %v) = %v, want %v", tc.health, tc.max, tc.distance, got, tc.want)
			}
		})
	}
}

func TestDecisionString(t *testing.T) {
	cases := map[Decision]string{
		DecisionSeek:   "seek",
		DecisionAttack: "attack",
		DecisionFlee:   "flee",
		DecisionPatrol: "patrol",
		Decision(99):   "unknown",
	}
	for decision, want := range cases {
		if got := decision.String(); got != want {
			t.Fatalf("Decision(%d).String() = %q, want %q", decision, got, want)
		}
	}
}

func TestSeekTarget(t *testing.T) {
	velocity := SeekTarget(geom.Vec2{}, geom.Vec2{X: 10, Y: 0}, 2)
	if math.Abs(velocity.X-2) > 1e-9 || math.Abs(velocity.Y) > 1e-9 {
		t.Fatalf("SeekTarget = %+v, want (2,0)", velocity)
	}
}

func TestSeekTargetAtTarget(t *testing.T) {
	velocity := SeekTarget(geom.Vec2{X: 3, Y: 3}, geom.Vec2{X: 3, Y: 3}, 2)
	if velocity != (geom.Vec2{}) {
		t.Fatalf("seeking own position should stand still, got %+v", velocity)
	}
}

func TestFleeFrom(t *testing.T) {
	velocity := FleeFrom(geom.Vec2{}, geom.Vec2{X: 10, Y: 0}, 2)
	if math.Abs(velocity.X+2) > 1e-9 || math.Abs(velocity.Y) > 1e-9 {
		t.Fatalf("FleeFrom = %+v, want (-2,0)", velocity)
	}
}

func TestPatrolPlannerDeterminism(t *testing.T) {
	a := NewPatrolPlanner(DefaultPatrolSeed)
	b := NewPatrolPlanner(DefaultPatrolSeed)
	center := geom.Vec2{X: 5, Y: -3}

	for i := 0; i < 32; i++ {
		pa := a.NextPoint(center, 20)
		pb := b.NextPoint(center, 20)
		if pa != pb {
			t.Fatalf("sequence diverged at step %d: %+v vs %+v", i, pa, pb)
		}
	}
}

func TestPatrolPlannerSeedsDiffer(t *testing.T) {
	a := NewPatrolPlanner(1)
	b := NewPatrolPlanner(2)
	center := geom.Vec2{}

	same := true
	for i := 0; i < 8; i++ {
		if a.NextPoint(center, 20) != b.NextPoint(center, 20) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical sequences")
	}
}

func TestPatrolPointsStayInsideRadius(t *testing.T) {
	planner := NewPatrolPlanner(DefaultPatrolSeed)
	center := geom.Vec2{X: -7, Y: 12}
	const radius = 15.0

	for i := 0; i < 256; i++ {
		point := planner.NextPoint(center, radius)
		if dist := center.Distance(point); dist > radius {
			t.Fatalf("point %d at distance %v exceeds radius %v", i, dist, radius)
		}
	}
}
