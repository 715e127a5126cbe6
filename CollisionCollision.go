package collide2d

///////////////////////////////////////////////////////////////////////////////
/// Collision result
///////////////////////////////////////////////////////////////////////////////

/// The result of a narrow-phase collision query between two convex shapes.
///
/// Separation >= 0 means the shapes are disjoint and Separation is the
/// shortest boundary-to-boundary distance, with Direction the unit vector
/// pointing from A toward B along the minimum-distance line.
///
/// Separation < 0 means the shapes overlap and |Separation| is the minimum
/// displacement needed to separate them, with Direction the axis along which
/// B should be displaced.
///
/// Direction is expressed in the same frame as the state passed to the query
/// that produced this result.
type CollisionData struct {
	Separation float64
	Direction  Vec2
}

func MakeCollisionData(separation float64, direction Vec2) CollisionData {
	return CollisionData{
		Separation: separation,
		Direction:  direction,
	}
}

/// Invert re-expresses a collision result computed in state's frame in the
/// opposite frame. The separation is a frame-invariant scalar; the direction
/// follows the frame-change law of State.Invert:
///
///	dir' = Rot(-rot) * (-dir)
func (data CollisionData) Invert(state State) CollisionData {
	q := state.GetRot()
	return MakeCollisionData(
		data.Separation,
		RotVec2MulT(q, data.Direction.OperatorNegate()),
	)
}

///////////////////////////////////////////////////////////////////////////////
/// Ray casts
///////////////////////////////////////////////////////////////////////////////

/// Ray-cast input data. The ray extends from p1 to p1 + maxFraction * (p2 - p1).
type RayCastInput struct {
	P1, P2      Vec2
	MaxFraction float64
}

/// Ray-cast output data. The ray hits at p1 + fraction * (p2 - p1), where p1
/// and p2 come from RayCastInput.
type RayCastOutput struct {
	Normal   Vec2
	Fraction float64
}

///////////////////////////////////////////////////////////////////////////////
/// Axis aligned bounding box
///////////////////////////////////////////////////////////////////////////////

type AABB struct {
	LowerBound, UpperBound Vec2
}

func MakeAABB() AABB {
	return AABB{}
}

func NewAABB() *AABB {
	res := MakeAABB()
	return &res
}

/// Get the center of the AABB.
func (bb AABB) GetCenter() Vec2 {
	return Vec2MulScalar(0.5, Vec2Add(bb.LowerBound, bb.UpperBound))
}

/// Get the extents of the AABB (half-widths).
func (bb AABB) GetExtents() Vec2 {
	return Vec2MulScalar(0.5, Vec2Sub(bb.UpperBound, bb.LowerBound))
}

/// Get the perimeter length.
func (bb AABB) GetPerimeter() float64 {
	wx := bb.UpperBound.X - bb.LowerBound.X
	wy := bb.UpperBound.Y - bb.LowerBound.Y
	return 2.0 * (wx + wy)
}

/// Combine an AABB into this one.
func (bb *AABB) CombineInPlace(aabb AABB) {
	bb.LowerBound = Vec2Min(bb.LowerBound, aabb.LowerBound)
	bb.UpperBound = Vec2Max(bb.UpperBound, aabb.UpperBound)
}

/// Combine two AABBs into this one.
func (bb *AABB) CombineTwoInPlace(aabb1, aabb2 AABB) {
	bb.LowerBound = Vec2Min(aabb1.LowerBound, aabb2.LowerBound)
	bb.UpperBound = Vec2Max(aabb1.UpperBound, aabb2.UpperBound)
}

/// Does this AABB contain the provided AABB?
func (bb AABB) Contains(aabb AABB) bool {
	result := true
	result = result && bb.LowerBound.X <= aabb.LowerBound.X
	result = result && bb.LowerBound.Y <= aabb.LowerBound.Y
	result = result && aabb.UpperBound.X <= bb.UpperBound.X
	result = result && aabb.UpperBound.Y <= bb.UpperBound.Y
	return result
}

/// Verify that the bounds are sorted.
func (bb AABB) IsValid() bool {
	d := Vec2Sub(bb.UpperBound, bb.LowerBound)
	valid := d.X >= 0.0 && d.Y >= 0.0
	return valid && bb.LowerBound.IsValid() && bb.UpperBound.IsValid()
}

func TestOverlapAABBs(a, b AABB) bool {
	d1 := Vec2Sub(b.LowerBound, a.UpperBound)
	d2 := Vec2Sub(a.LowerBound, b.UpperBound)

	if d1.X > 0.0 || d1.Y > 0.0 {
		return false
	}

	if d2.X > 0.0 || d2.Y > 0.0 {
		return false
	}

	return true
}
