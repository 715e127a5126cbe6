package collide2d

import (
	"math"
)

/// A rectangle shape, axis aligned in its own local frame and centered on its
/// local origin; any rotation is carried entirely by the State of a query.
/// A zero half extent degenerates to a segment (or a point when both are zero).
type RectShape struct {
	Shape
	/// Half extents along the local x and y axes.
	M_halfExtents Vec2
}

/// Make a rectangle from half extents. Negative extents are a programming
/// error and assert.
func MakeRectShape(hx, hy float64) RectShape {
	Assert(hx >= 0.0 && hy >= 0.0)
	return RectShape{
		Shape: Shape{
			M_type: ShapeType.E_rect,
		},
		M_halfExtents: MakeVec2(hx, hy),
	}
}

func NewRectShape(hx, hy float64) *RectShape {
	res := MakeRectShape(hx, hy)
	return &res
}

/// The local corners, in winding order: bottom-left, top-left, top-right,
/// bottom-right.
func (shape RectShape) Corners() [4]Vec2 {
	hx := shape.M_halfExtents.X
	hy := shape.M_halfExtents.Y
	return [4]Vec2{
		MakeVec2(-hx, -hy),
		MakeVec2(-hx, hy),
		MakeVec2(hx, hy),
		MakeVec2(hx, -hy),
	}
}

/// Vertices returns the corners posed by state, in the Corners winding order.
func (shape RectShape) Vertices(state State) [4]Vec2 {
	rotation := state.GetRot().ToMat22()
	vertices := shape.Corners()
	for i := range vertices {
		vertices[i] = Vec2Add(Vec2Mat22Mul(rotation, vertices[i]), state.RelativePosition)
	}
	return vertices
}

/// ProjectPointOntoEdges projects a point (in the rect's own frame) onto each
/// of the 4 edge segments, clamped to the segment ends. One projection per
/// edge, in order: left, top, right, bottom.
func (shape RectShape) ProjectPointOntoEdges(p Vec2) [4]Vec2 {
	corners := shape.Corners()
	bl, tl, tr, br := corners[0], corners[1], corners[2], corners[3]
	return [4]Vec2{
		ProjectPointOntoSegment(p, bl, tl),
		ProjectPointOntoSegment(p, tl, tr),
		ProjectPointOntoSegment(p, tr, br),
		ProjectPointOntoSegment(p, br, bl),
	}
}

///////////////////////////////////////////////////////////////////////////////

func (shape RectShape) TestPoint(state State, p Vec2) bool {
	pLocal := state.InverseTransformPoint(p)
	return math.Abs(pLocal.X) <= shape.M_halfExtents.X && math.Abs(pLocal.Y) <= shape.M_halfExtents.Y
}

/// Outward edge normals, matching the Corners winding (edge i runs from
/// corner i to corner i+1): left, top, right, bottom.
var rectNormals = [4]Vec2{
	{X: -1.0, Y: 0.0},
	{X: 0.0, Y: 1.0},
	{X: 1.0, Y: 0.0},
	{X: 0.0, Y: -1.0},
}

func (shape RectShape) RayCast(output *RayCastOutput, input RayCastInput, state State) bool {

	q := state.GetRot()

	// Put the ray into the rect's frame of reference.
	p1 := RotVec2MulT(q, Vec2Sub(input.P1, state.RelativePosition))
	p2 := RotVec2MulT(q, Vec2Sub(input.P2, state.RelativePosition))
	d := Vec2Sub(p2, p1)

	corners := shape.Corners()

	lower := 0.0
	upper := input.MaxFraction

	index := -1

	for i := 0; i < 4; i++ {
		// p = p1 + a * d
		// dot(normal, p - v) = 0
		// dot(normal, p1 - v) + a * dot(normal, d) = 0
		numerator := Vec2Dot(rectNormals[i], Vec2Sub(corners[i], p1))
		denominator := Vec2Dot(rectNormals[i], d)

		if denominator == 0.0 {
			if numerator < 0.0 {
				return false
			}
		} else {
			// Note: we want this predicate without division:
			// lower < numerator / denominator, where denominator < 0
			// Since denominator < 0, we have to flip the inequality:
			// lower < numerator / denominator <==> denominator * lower > numerator.
			if denominator < 0.0 && numerator < lower*denominator {
				// Increase lower.
				// The segment enters this half-space.
				lower = numerator / denominator
				index = i
			} else if denominator > 0.0 && numerator < upper*denominator {
				// Decrease upper.
				// The segment exits this half-space.
				upper = numerator / denominator
			}
		}

		if upper < lower {
			return false
		}
	}

	Assert(0.0 <= lower && lower <= input.MaxFraction)

	if index >= 0 {
		output.Fraction = lower
		output.Normal = RotVec2Mul(q, rectNormals[index])
		return true
	}

	return false
}

func (shape RectShape) ComputeAABB(aabb *AABB, state State) {

	vertices := shape.Vertices(state)

	lower := vertices[0]
	upper := lower

	for i := 1; i < 4; i++ {
		lower = Vec2Min(lower, vertices[i])
		upper = Vec2Max(upper, vertices[i])
	}

	aabb.LowerBound = lower
	aabb.UpperBound = upper
}
