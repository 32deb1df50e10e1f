package geometry

import "github.com/pkg/errors"

// ErrInvalidRequest is returned by the dispatcher when a continuous
// collision request names a solver/motion/geometry combination the
// validity matrix does not permit.
var ErrInvalidRequest = errors.New("invalid continuous collision request")

// ErrUnsupportedShapePair is returned when a narrow-phase dispatch
// table has no entry for the requested pair of geometry kinds.
var ErrUnsupportedShapePair = errors.New("unsupported shape pair")

// newBadGeometryDimensionsError reports that a geometry was
// constructed with a dimension that is not strictly positive.
func newBadGeometryDimensionsError(g Geometry) error {
	return errors.Errorf("illegal geometry dimensions for type %T", g)
}

// newCollisionTypeUnsupportedError reports that a's CollidesWith or
// DistanceFrom implementation has no case for b's concrete type.
func newCollisionTypeUnsupportedError(a, b Geometry) error {
	return errors.Errorf("collisions between %T and %T are not supported", a, b)
}
