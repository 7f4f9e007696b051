package physics

import (
	"math"
	"testing"

	"seek-and-strike/server/internal/geom"
)

func TestUpdatePosition(t *testing.T) {
	cases := []struct {
		name     string
		pos      geom.Vec2
		velocity geom.Vec2
		dt       float64
		want     geom.Vec2
	}{
		{name: "forward", pos: geom.Vec2{X: 1, Y: 2}, velocity: geom.Vec2{X: 10, Y: -4}, dt: 0.5, want: geom.Vec2{X: 6, Y: 0}},
		{name: "zero dt", pos: geom.Vec2{X: 1, Y: 2}, velocity: geom.Vec2{X: 10, Y: -4}, dt: 0, want: geom.Vec2{X: 1, Y: 2}},
		{name: "zero velocity", pos: geom.Vec2{X: 1, Y: 2}, velocity: geom.Vec2{}, dt: 3, want: geom.Vec2{X: 1, Y: 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := UpdatePosition(tc.pos, tc.velocity, tc.dt)
			if got != tc.want {
				t.Fatalf("UpdatePosition = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestApplyFrictionDampens(t *testing.T) {
	velocity := geom.Vec2{X: 10, Y: 0}
	damped := ApplyFriction(velocity, 0.5, 0.1)
	want := geom.Vec2{X: 9.5, Y: 0}
	if math.Abs(damped.X-want.X) > 1e-9 || damped.Y != 0 {
		t.Fatalf("ApplyFriction = %+v, want %+v", damped, want)
	}
}

func TestApplyFrictionSnapsToRest(t *testing.T) {
	velocity := geom.Vec2{X: 0.009, Y: 0}
	damped := ApplyFriction(velocity, 0.5, 0.1)
	if damped != (geom.Vec2{}) {
		t.Fatalf("expected rest snap, got %+v", damped)
	}
}

func TestApplyFrictionKeepsFastVelocity(t *testing.T) {
	velocity := geom.Vec2{X: 0.02, Y: 0}
	damped := ApplyFriction(velocity, 0, 1)
	if damped != velocity {
		t.Fatalf("undamped velocity changed: %+v", damped)
	}
}

func TestCheckCollisionStrict(t *testing.T) {
	cases := []struct {
		name             string
		posA             geom.Vec2
		radiusA          float64
		posB             geom.Vec2
		radiusB          float64
		want             bool
	}{
		{name: "overlapping", posA: geom.Vec2{}, radiusA: 3, posB: geom.Vec2{X: 5}, radiusB: 3, want: true},
		{name: "apart", posA: geom.Vec2{}, radiusA: 2, posB: geom.Vec2{X: 10}, radiusB: 2, want: false},
		{name: "touching edges do not collide", posA: geom.Vec2{}, radiusA: 3, posB: geom.Vec2{X: 6}, radiusB: 3, want: false},
		{name: "same center", posA: geom.Vec2{X: 1, Y: 1}, radiusA: 1, posB: geom.Vec2{X: 1, Y: 1}, radiusB: 1, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CheckCollision(tc.posA, tc.radiusA, tc.posB, tc.radiusB)
			if got != tc.want {
				t.Fatalf("CheckCollision = %v, want %v", got, tc.want)
			}
		})
	}
}
