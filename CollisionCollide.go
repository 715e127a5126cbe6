package collide2d

import (
	"math"
)

/// CheckCollision computes the signed separation and the unit direction
/// between two convex shapes posed by state (the pose of shapeB in shapeA's
/// frame). The result is expressed in shapeA's frame.
///
/// Dispatch is over the unordered pair of shape variants: each pair has a
/// direct algorithm for exactly one ordering, and the reverse ordering is
/// derived through the frame-change law
///
///	CheckCollision(A, B, state) = CheckCollision(B, A, state.Invert()).Invert(state.Invert())
///
/// which holds exactly up to floating point rounding.
func CheckCollision(shapeA, shapeB ShapeInterface, state State) CollisionData {
	switch a := shapeA.(type) {
	case *CircleShape:
		switch b := shapeB.(type) {
		case *CircleShape:
			return CollideCircles(a, b, state)
		case *RectShape:
			inverted := state.Invert()
			return CollideRectAndCircle(b, a, inverted).Invert(inverted)
		}
	case *RectShape:
		switch b := shapeB.(type) {
		case *CircleShape:
			return CollideRectAndCircle(a, b, state)
		case *RectShape:
			return CollideRects(a, b, state)
		}
	}

	Assert(false)
	return CollisionData{}
}

/// Collide two circles.
///
/// Coincident centers leave the direction undefined (0/0); callers in the
/// interacting-shapes regime are expected to avoid exact coincidence.
func CollideCircles(circleA, circleB *CircleShape, state State) CollisionData {
	distance := state.RelativePosition.Length()
	return MakeCollisionData(
		distance-circleA.M_radius-circleB.M_radius,
		Vec2MulScalar(1.0/distance, state.RelativePosition),
	)
}

/// Collide a rect (A) and a circle (B). Two regimes, selected by whether the
/// circle center lies within the rect's half extents on both axes.
func CollideRectAndCircle(rectA *RectShape, circleB *CircleShape, state State) CollisionData {

	// Circle center in the rect's frame.
	center := state.RelativePosition
	h := rectA.M_halfExtents

	if math.Abs(center.X) <= h.X && math.Abs(center.Y) <= h.Y {
		// Center inside: the smaller per-axis gap to the nearer face sets
		// both the penetration magnitude and the push-out axis. The radius
		// is deliberately not added here. Equal gaps resolve to the x axis.
		gapX := h.X - math.Abs(center.X)
		gapY := h.Y - math.Abs(center.Y)

		if gapX <= gapY {
			return MakeCollisionData(-gapX, MakeVec2(axisSide(center.X), 0.0))
		}
		return MakeCollisionData(-gapY, MakeVec2(0.0, axisSide(center.Y)))
	}

	// Center outside: nearest of the 4 clamped edge projections wins, with
	// ordering (left, top, right, bottom) as the tie precedence.
	projections := rectA.ProjectPointOntoEdges(center)

	best := 0
	bestDistance := MaxFloat
	for i := range projections {
		distance := Vec2Distance(center, projections[i]) - circleB.M_radius
		if distance < bestDistance {
			bestDistance = distance
			best = i
		}
	}

	// Unit vector from the closest boundary point toward the circle center,
	// reconstructed by dividing by distance + radius instead of renormalizing
	// so it stays consistent when the circle overlaps the rect boundary.
	direction := Vec2MulScalar(
		1.0/(bestDistance+circleB.M_radius),
		Vec2Sub(center, projections[best]),
	)
	return MakeCollisionData(bestDistance, direction)
}

/// Collide two rects with the separating axis test restricted to each rect's
/// own two principal axes. The per-rect scan runs twice, once from each
/// shape's frame, and the two results are merged with the same rule the scan
/// uses internally: a separating result always beats an overlapping one, and
/// otherwise the smaller magnitude wins. For overlapping shapes that is a
/// minimum-displacement heuristic, exact for this convex shape set.
func CollideRects(rectA, rectB *RectShape, state State) CollisionData {
	inverted := state.Invert()

	aData := rectSATScan(rectA, rectB, state)
	bData := rectSATScan(rectB, rectA, inverted).Invert(inverted)

	return tighterCollision(aData, bData)
}

/// A single-axis vertex scan outcome. Separating distinguishes a true
/// separation from a zero-depth touching overlap, which the separation sign
/// alone cannot.
type satAxisResult struct {
	separation float64
	direction  Vec2
	separating bool
}

/// rectSATScan projects moving's vertices onto fixed's two principal axes and
/// keeps the more informative axis: the separating one if exactly one
/// separates, otherwise the one with the smaller separation magnitude.
/// The result direction points from fixed toward moving, in fixed's frame.
func rectSATScan(fixed, moving *RectShape, state State) CollisionData {
	vertices := moving.Vertices(state)

	x := satAxisScan(vertices, 0, fixed.M_halfExtents.X, state.RelativePosition.X)
	y := satAxisScan(vertices, 1, fixed.M_halfExtents.Y, state.RelativePosition.Y)

	if x.separating != y.separating {
		if x.separating {
			return MakeCollisionData(x.separation, x.direction)
		}
		return MakeCollisionData(y.separation, y.direction)
	}

	if math.Abs(x.separation) <= math.Abs(y.separation) {
		return MakeCollisionData(x.separation, x.direction)
	}
	return MakeCollisionData(y.separation, y.direction)
}

/// satAxisScan classifies the 4 vertex coordinates t on one axis against the
/// slab [-h, h]. Any vertex inside the slab makes the axis non-separating;
/// the deepest inside vertex then sets the penetration, with its side picked
/// by which face it is nearer to (t == 0 falls back to the side of positionT,
/// the relative position on that axis). With no inside vertex the axis
/// separates and the smallest outside gap is the separation.
func satAxisScan(vertices [4]Vec2, axis int, h float64, positionT float64) satAxisResult {

	anyInside := false
	insideDepth := -MaxFloat
	insideSide := 0.0
	outsideGap := MaxFloat
	outsideSide := 0.0

	for i := range vertices {
		t := vertices[i].X
		if axis == 1 {
			t = vertices[i].Y
		}

		switch {
		case t < -h:
			gap := -h - t
			if gap < outsideGap {
				outsideGap = gap
				outsideSide = -1.0
			}
		case t > h:
			gap := t - h
			if gap < outsideGap {
				outsideGap = gap
				outsideSide = 1.0
			}
		default:
			anyInside = true
			depth := h - math.Abs(t)
			if depth > insideDepth {
				insideDepth = depth
				if t != 0.0 {
					insideSide = axisSide(t)
				} else {
					insideSide = axisSide(positionT)
				}
			}
		}
	}

	if anyInside {
		return satAxisResult{
			separation: -insideDepth,
			direction:  axisVector(axis, insideSide),
			separating: false,
		}
	}

	return satAxisResult{
		separation: outsideGap,
		direction:  axisVector(axis, outsideSide),
		separating: true,
	}
}

/// tighterCollision merges the two per-rect scan results: a separating
/// (non-negative) result is authoritative over an overlapping one; two
/// separations keep the tighter (smaller) gap; two overlaps keep the smaller
/// penetration.
func tighterCollision(a, b CollisionData) CollisionData {
	if (a.Separation >= 0.0) != (b.Separation >= 0.0) {
		if a.Separation >= 0.0 {
			return a
		}
		return b
	}

	if math.Abs(a.Separation) <= math.Abs(b.Separation) {
		return a
	}
	return b
}

func axisSide(t float64) float64 {
	if t >= 0.0 {
		return 1.0
	}
	return -1.0
}

func axisVector(axis int, side float64) Vec2 {
	if axis == 0 {
		return MakeVec2(side, 0.0)
	}
	return MakeVec2(0.0, side)
}
