package collide2d

import "math"

func Assert(a bool) {
	if !a {
		panic("Assert")
	}
}

const MaxFloat = math.MaxFloat64
const Epsilon = math.SmallestNonzeroFloat64
const Pi = math.Pi

/// Global tuning constants. The kernel is unit-agnostic; these are
/// dimensionless tolerances.

/// Angular tolerance under which a relative rotation is treated as an exact
/// multiple of pi/2, enabling the mutually-axis-aligned closest-pair path.
/// The tolerance is absolute, so rotations are assumed to stay within a few
/// turns of zero; a hugely unwrapped angle carries more representation error
/// than the slop and falls through to the general scan, which handles any
/// pose and merely costs more.
const RightAngleSlop = 1e-9
