// Package contact defines the value types the narrow-phase solver
// returns: a single contact point and an ordered manifold of them.
package contact

import (
	"github.com/golang/geo/r3"

	"go.viam.com/collide/spatial"
)

// Point is a single narrow-phase contact: a unit normal pointing out of
// body 1 into body 2, a world-space position on the incident body's
// surface, and a non-negative penetration depth measured along normal.
type Point struct {
	Normal   r3.Vector
	Position r3.Vector
	Depth    float64
}

// AlmostEqual compares two contact points component-wise under tol.
func (p Point) AlmostEqual(other Point, tol float64) bool {
	return vecAlmostEqual(p.Normal, other.Normal, tol) &&
		vecAlmostEqual(p.Position, other.Position, tol) &&
		spatial.AlmostEqual(p.Depth, other.Depth, tol)
}

func vecAlmostEqual(a, b r3.Vector, tol float64) bool {
	return spatial.AlmostEqual(a.X, b.X, tol) &&
		spatial.AlmostEqual(a.Y, b.Y, tol) &&
		spatial.AlmostEqual(a.Z, b.Z, tol)
}

// Manifold is an ordered sequence of contact points. When culling
// occurred to bound the manifold's size, index 0 holds the deepest
// contact; otherwise entries are in clip-output insertion order.
type Manifold []Point

// DeepestFirst reports whether m's first entry has depth >= every
// other entry's depth, the invariant asserted whenever culling ran.
func (m Manifold) DeepestFirst() bool {
	if len(m) == 0 {
		return true
	}
	for _, p := range m[1:] {
		if p.Depth > m[0].Depth {
			return false
		}
	}
	return true
}
