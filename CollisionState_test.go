package collide2d_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/geomstep/collide2d"
	"github.com/stretchr/testify/assert"
)

func TestStateInvertExact(t *testing.T) {
	state := collide2d.MakeState(collide2d.MakeVec2(1, 0), collide2d.Pi/2)
	inverted := state.Invert()

	assert.InDelta(t, -collide2d.Pi/2, inverted.RelativeRotation, 1e-15)
	assert.InDelta(t, 0.0, inverted.RelativePosition.X, 1e-15)
	assert.InDelta(t, 1.0, inverted.RelativePosition.Y, 1e-15)
}

func TestStateInvertIsInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		state := collide2d.MakeState(
			collide2d.MakeVec2(rng.Float64()*20-10, rng.Float64()*20-10),
			rng.Float64()*8*collide2d.Pi-4*collide2d.Pi,
		)

		back := state.Invert().Invert()

		assert.InDelta(t, state.RelativePosition.X, back.RelativePosition.X, 1e-12)
		assert.InDelta(t, state.RelativePosition.Y, back.RelativePosition.Y, 1e-12)
		assert.InDelta(t, state.RelativeRotation, back.RelativeRotation, 1e-12)
	}
}

func TestStateRotationStaysUnwrapped(t *testing.T) {
	state := collide2d.MakeState(collide2d.Vec2_zero, 5*collide2d.Pi)

	// The scalar is never wrapped; only its inverse is negated.
	assert.Equal(t, -5*collide2d.Pi, state.Invert().RelativeRotation)
}

func TestStateTransformPoint(t *testing.T) {
	state := collide2d.MakeState(collide2d.MakeVec2(3, 1), collide2d.Pi/2)

	p := state.TransformPoint(collide2d.MakeVec2(1, 0))
	assert.InDelta(t, 3.0, p.X, 1e-15)
	assert.InDelta(t, 2.0, p.Y, 1e-15)

	back := state.InverseTransformPoint(p)
	assert.InDelta(t, 1.0, back.X, 1e-14)
	assert.InDelta(t, 0.0, back.Y, 1e-14)
}

func TestStateTransformAgainstInverse(t *testing.T) {
	state := collide2d.MakeState(collide2d.MakeVec2(-2.5, 4), 1.1)
	inverted := state.Invert()
	p := collide2d.MakeVec2(0.7, -1.9)

	// Transforming through the inverse pose must match the inverse transform.
	viaInverse := inverted.TransformPoint(p)
	direct := state.InverseTransformPoint(p)

	assert.InDelta(t, direct.X, viaInverse.X, 1e-13)
	assert.InDelta(t, direct.Y, viaInverse.Y, 1e-13)
}

func TestCollisionDataInvert(t *testing.T) {
	state := collide2d.MakeState(collide2d.MakeVec2(10, 10), collide2d.Pi/2)
	data := collide2d.MakeCollisionData(1.25, collide2d.MakeVec2(1, 0))

	inverted := data.Invert(state)

	// The separation scalar is frame invariant.
	assert.Equal(t, data.Separation, inverted.Separation)
	assert.InDelta(t, 0.0, inverted.Direction.X, 1e-15)
	assert.InDelta(t, 1.0, inverted.Direction.Y, 1e-15)

	// Inverting through the opposite frame restores the direction.
	restored := inverted.Invert(state.Invert())
	assert.InDelta(t, data.Direction.X, restored.Direction.X, 1e-14)
	assert.InDelta(t, data.Direction.Y, restored.Direction.Y, 1e-14)
}

func TestCollisionDataInvertKeepsUnitLength(t *testing.T) {
	rng := rand.New(rand.NewSource(21))

	for i := 0; i < 50; i++ {
		angle := rng.Float64() * 2 * collide2d.Pi
		direction := collide2d.MakeVec2(math.Cos(angle), math.Sin(angle))
		state := collide2d.MakeState(
			collide2d.MakeVec2(rng.Float64()*6-3, rng.Float64()*6-3),
			rng.Float64()*2*collide2d.Pi,
		)

		inverted := collide2d.MakeCollisionData(0.5, direction).Invert(state)
		assert.InDelta(t, 1.0, inverted.Direction.Length(), 1e-12)
	}
}
