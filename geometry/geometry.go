// Package geometry provides the collision geometry facade used by the
// continuous-collision dispatcher for shape pairs other than box/box:
// a Geometry interface plus the sphere, point, and triangle-mesh
// primitives that implement it, and a small AABB-tree bounding-volume
// hierarchy used to accelerate mesh/mesh queries.
package geometry

import (
	"github.com/golang/geo/r3"

	"go.viam.com/collide/spatial"
)

// Geometry is any body the narrow-phase and continuous-collision
// components can query: its own placement, a copy relocated by an
// additional pose, and pairwise overlap/distance tests against any
// other Geometry. Concrete implementations follow spatialmath/box.go's
// sign convention: CollidesWith returns (true, -1, nil) on overlap and
// (false, distance, nil) otherwise.
type Geometry interface {
	// Pose returns the geometry's placement in world coordinates.
	Pose() spatial.Pose
	// Transform returns a copy of the geometry, premultiplied by toPremultiply.
	Transform(toPremultiply spatial.Pose) Geometry
	// CollidesWith reports whether g overlaps other or lies within
	// collisionBuffer of it.
	CollidesWith(other Geometry, collisionBuffer float64) (bool, float64, error)
	// DistanceFrom returns the separation distance to other, or a
	// negative number if they overlap.
	DistanceFrom(other Geometry) (float64, error)
	// Kind identifies the geometry's concrete type for dispatch-table lookups.
	Kind() Kind
}

// Kind enumerates the geometry leaves this package implements, used to
// key the continuous-collision dispatcher's narrow-phase lookup table.
type Kind int

const (
	KindBox Kind = iota
	KindSphere
	KindPoint
	KindMesh
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindSphere:
		return "sphere"
	case KindPoint:
		return "point"
	case KindMesh:
		return "mesh"
	default:
		return "unknown"
	}
}

// closestPointOnSegment returns the point on segment [a,b] closest to p,
// used by Triangle.ClosestPointToPoint for its edge tests.
func closestPointOnSegment(a, b, p r3.Vector) r3.Vector {
	ab := b.Sub(a)
	l2 := ab.Norm2()
	if l2 < spatial.Epsilon {
		return a
	}
	t := p.Sub(a).Dot(ab) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(ab.Mul(t))
}
