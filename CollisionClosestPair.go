package collide2d

import (
	"math"
)

/// ClosestPair computes the nearest boundary point on each of two disjoint
/// convex shapes posed by state. Both points are returned in shapeA's frame,
/// the point on shapeA first.
///
/// Precondition: the shapes do not intersect
/// (CheckCollision(...).Separation >= 0). The result is unspecified for
/// overlapping shapes.
///
/// The dispatch mirrors CheckCollision: one direct algorithm per unordered
/// pair, the reverse ordering derived by swapping the operands under the
/// inverted state and mapping both points back through it:
///
///	onB, onA := ClosestPair(B, A, state.Invert())
///	return state.TransformPoint(onA), state.TransformPoint(onB)
func ClosestPair(shapeA, shapeB ShapeInterface, state State) (Vec2, Vec2) {
	switch a := shapeA.(type) {
	case *CircleShape:
		switch b := shapeB.(type) {
		case *CircleShape:
			return ClosestPairCircles(a, b, state)
		case *RectShape:
			onB, onA := ClosestPairRectAndCircle(b, a, state.Invert())
			return state.TransformPoint(onA), state.TransformPoint(onB)
		}
	case *RectShape:
		switch b := shapeB.(type) {
		case *CircleShape:
			return ClosestPairRectAndCircle(a, b, state)
		case *RectShape:
			return ClosestPairRects(a, b, state)
		}
	}

	Assert(false)
	return Vec2{}, Vec2{}
}

/// The closest points of two disjoint circles lie on the center-to-center
/// line, each at its circle's radius. Coincident centers leave the result
/// undefined.
func ClosestPairCircles(circleA, circleB *CircleShape, state State) (Vec2, Vec2) {
	axis := Vec2MulScalar(1.0/state.RelativePosition.Length(), state.RelativePosition)

	onA := Vec2MulScalar(circleA.M_radius, axis)
	onB := Vec2Sub(state.RelativePosition, Vec2MulScalar(circleB.M_radius, axis))
	return onA, onB
}

/// The closest point on the rect (A) is the nearest of the 4 clamped edge
/// projections of the circle center; the point on the circle (B) lies on the
/// ray from there through the center, advanced to the circle boundary.
func ClosestPairRectAndCircle(rectA *RectShape, circleB *CircleShape, state State) (Vec2, Vec2) {

	center := state.RelativePosition
	projections := rectA.ProjectPointOntoEdges(center)

	best := 0
	bestDistance := MaxFloat
	for i := range projections {
		distance := Vec2Distance(center, projections[i])
		if distance < bestDistance {
			bestDistance = distance
			best = i
		}
	}

	onA := projections[best]
	toCenter := Vec2MulScalar(1.0/bestDistance, Vec2Sub(center, onA))
	onB := Vec2Add(onA, Vec2MulScalar(bestDistance-circleB.M_radius, toCenter))
	return onA, onB
}

/// ClosestPairRects combines two strategies: an interval-arithmetic fast path
/// when the rects are mutually axis aligned, and an exhaustive clamped
/// projection scan of every (edge, vertex) combination otherwise. Both rects
/// have exactly 4 vertices, so the scan is a fixed 32 candidates.
func ClosestPairRects(rectA, rectB *RectShape, state State) (Vec2, Vec2) {

	if isRightAngleMultiple(state.RelativeRotation) {
		return closestPairAlignedRects(rectA, rectB, state)
	}

	verticesA := rectA.Corners()
	verticesB := rectB.Vertices(state)

	bestDistanceSquared := MaxFloat
	var onA, onB Vec2

	// Every edge of A against every vertex of B.
	for i := 0; i < 4; i++ {
		e1 := verticesA[i]
		e2 := verticesA[(i+1)%4]
		for j := 0; j < 4; j++ {
			p := ProjectPointOntoSegment(verticesB[j], e1, e2)
			distanceSquared := Vec2DistanceSquared(p, verticesB[j])
			if distanceSquared < bestDistanceSquared {
				bestDistanceSquared = distanceSquared
				onA = p
				onB = verticesB[j]
			}
		}
	}

	// Every edge of B against every vertex of A.
	for i := 0; i < 4; i++ {
		e1 := verticesB[i]
		e2 := verticesB[(i+1)%4]
		for j := 0; j < 4; j++ {
			p := ProjectPointOntoSegment(verticesA[j], e1, e2)
			distanceSquared := Vec2DistanceSquared(p, verticesA[j])
			if distanceSquared < bestDistanceSquared {
				bestDistanceSquared = distanceSquared
				onA = verticesA[j]
				onB = p
			}
		}
	}

	return onA, onB
}

func isRightAngleMultiple(rotation float64) bool {
	halfPi := 0.5 * Pi
	k := math.Round(rotation / halfPi)
	return math.Abs(rotation-k*halfPi) <= RightAngleSlop
}

/// closestPairAlignedRects handles mutually axis-aligned rects with interval
/// arithmetic: the axis with the larger overlapping-or-nearest span carries
/// the contact edge, the points sit at the span midpoint on that axis and on
/// each rect's facing boundary on the other. The midpoint is clamped into
/// both rects' face ranges so diagonally separated poses land on the corners.
func closestPairAlignedRects(rectA, rectB *RectShape, state State) (Vec2, Vec2) {

	q := state.GetRot()
	p := state.RelativePosition
	ha := rectA.M_halfExtents
	hb := rectB.M_halfExtents

	// B's half extents in A's frame; |cos| and |sin| are 0 or 1 here up to
	// the right-angle tolerance.
	ehx := math.Abs(q.C)*hb.X + math.Abs(q.S)*hb.Y
	ehy := math.Abs(q.S)*hb.X + math.Abs(q.C)*hb.Y

	loX := math.Max(-ha.X, p.X-ehx)
	hiX := math.Min(ha.X, p.X+ehx)
	loY := math.Max(-ha.Y, p.Y-ehy)
	hiY := math.Min(ha.Y, p.Y+ehy)

	if hiX-loX >= hiY-loY {
		// Contact edge runs along x; the gap is on y.
		midX := 0.5 * (loX + hiX)
		sideY := axisSide(p.Y)
		onA := MakeVec2(FloatClamp(midX, -ha.X, ha.X), sideY*ha.Y)
		onB := MakeVec2(FloatClamp(midX, p.X-ehx, p.X+ehx), p.Y-sideY*ehy)
		return onA, onB
	}

	// Contact edge runs along y; the gap is on x.
	midY := 0.5 * (loY + hiY)
	sideX := axisSide(p.X)
	onA := MakeVec2(sideX*ha.X, FloatClamp(midY, -ha.Y, ha.Y))
	onB := MakeVec2(p.X-sideX*ehx, FloatClamp(midY, p.Y-ehy, p.Y+ehy))
	return onA, onB
}
