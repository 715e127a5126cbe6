package collide2d

/// The closed set of shape variants. Collision and closest-pair dispatch is
/// pair-wise over this set; there is no open-ended shape registration.
var ShapeType = struct {
	E_circle    uint8
	E_rect      uint8
	E_typeCount uint8
}{
	E_circle:    0,
	E_rect:      1,
	E_typeCount: 2,
}

/// A shape is an immutable convex primitive defined in its own local frame.
/// Shapes carry no pose: the relative pose between two shapes is provided
/// per query as a State.
type ShapeInterface interface {
	/// Get the type of this shape. You can use this to down cast to the concrete shape.
	/// @return the shape type.
	GetType() uint8

	/// Test a point for containment in this shape. This only works for convex shapes.
	/// @param state the shape pose.
	/// @param p a point in the frame state is expressed in.
	TestPoint(state State, p Vec2) bool

	/// Given a pose, compute the associated axis aligned bounding box.
	/// @param aabb returns the axis aligned box.
	/// @param state the pose of the shape.
	ComputeAABB(aabb *AABB, state State)

	/// Cast a ray against this shape.
	/// @param output the ray-cast results.
	/// @param input the ray-cast input parameters.
	/// @param state the pose of the shape.
	RayCast(output *RayCastOutput, input RayCastInput, state State) bool
}

type Shape struct {
	M_type uint8
}

func (shape Shape) GetType() uint8 {
	return shape.M_type
}
