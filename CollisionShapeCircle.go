package collide2d

import (
	"math"
)

/// A circle shape, centered on its local origin. A zero radius models a point.
type CircleShape struct {
	Shape
	/// Radius
	M_radius float64
}

/// Make a circle. A negative radius is a programming error and asserts.
func MakeCircleShape(radius float64) CircleShape {
	Assert(radius >= 0.0)
	return CircleShape{
		Shape: Shape{
			M_type: ShapeType.E_circle,
		},
		M_radius: radius,
	}
}

func NewCircleShape(radius float64) *CircleShape {
	res := MakeCircleShape(radius)
	return &res
}

///////////////////////////////////////////////////////////////////////////////

func (shape CircleShape) TestPoint(state State, p Vec2) bool {
	d := Vec2Sub(p, state.RelativePosition)
	return Vec2Dot(d, d) <= shape.M_radius*shape.M_radius
}

// Collision Detection in Interactive 3D Environments by Gino van den Bergen
// From Section 3.1.2
// x = s + a * r
// norm(x) = radius
func (shape CircleShape) RayCast(output *RayCastOutput, input RayCastInput, state State) bool {

	position := state.RelativePosition
	s := Vec2Sub(input.P1, position)
	b := Vec2Dot(s, s) - shape.M_radius*shape.M_radius

	// Solve quadratic equation.
	r := Vec2Sub(input.P2, input.P1)
	c := Vec2Dot(s, r)
	rr := Vec2Dot(r, r)
	sigma := c*c - rr*b

	// Check for negative discriminant and short segment.
	if sigma < 0.0 || rr < Epsilon {
		return false
	}

	// Find the point of intersection of the line with the circle.
	a := -(c + math.Sqrt(sigma))

	// Is the intersection point on the segment?
	if 0.0 <= a && a <= input.MaxFraction*rr {
		a /= rr
		output.Fraction = a
		output.Normal = Vec2Add(s, Vec2MulScalar(a, r))
		output.Normal.Normalize()
		return true
	}

	return false
}

func (shape CircleShape) ComputeAABB(aabb *AABB, state State) {
	p := state.RelativePosition
	aabb.LowerBound.Set(p.X-shape.M_radius, p.Y-shape.M_radius)
	aabb.UpperBound.Set(p.X+shape.M_radius, p.Y+shape.M_radius)
}
