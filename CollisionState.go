package collide2d

/// A state is the relative pose between two shapes: the position and rotation
/// of shape B's local frame expressed in shape A's local frame, A being
/// implicitly fixed at the origin with zero rotation.
///
/// The rotation is kept as a raw scalar in radians (counter-clockwise from +x)
/// and is never wrapped to a canonical range; every trigonometric use goes
/// through sin/cos so wrapping is unnecessary.
type State struct {
	RelativePosition Vec2
	RelativeRotation float64
}

func MakeState(position Vec2, rotationrad float64) State {
	return State{
		RelativePosition: position,
		RelativeRotation: rotationrad,
	}
}

func NewState(position Vec2, rotationrad float64) *State {
	res := MakeState(position, rotationrad)
	return &res
}

/// Get the rotation with cached sine and cosine.
func (state State) GetRot() Rot {
	return MakeRotFromAngle(state.RelativeRotation)
}

/// Invert returns the pose of A relative to B given the pose of B relative
/// to A:
///
///	rot' = -rot
///	pos' = Rot(-rot) * (-pos)
///
/// Invert is an involution up to floating point rounding.
func (state State) Invert() State {
	q := state.GetRot()
	return MakeState(
		RotVec2MulT(q, state.RelativePosition.OperatorNegate()),
		-state.RelativeRotation,
	)
}

/// TransformPoint maps a point expressed in B's frame into A's frame.
func (state State) TransformPoint(p Vec2) Vec2 {
	return Vec2Add(RotVec2Mul(state.GetRot(), p), state.RelativePosition)
}

/// InverseTransformPoint maps a point expressed in A's frame into B's frame.
func (state State) InverseTransformPoint(p Vec2) Vec2 {
	return RotVec2MulT(state.GetRot(), Vec2Sub(p, state.RelativePosition))
}
