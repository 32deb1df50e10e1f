package geometry

import (
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/collide/logging"
	"go.viam.com/collide/narrowphase"
	"go.viam.com/collide/options"
	"go.viam.com/collide/spatial"
)

// Box is an axis-aligned-in-its-own-frame rectangular prism, placed in
// world coordinates by a pose and sized by a half-extent per axis.
type Box struct {
	pose     spatial.Pose
	halfSize r3.Vector
	opts     options.Options
	logger   logging.Logger
}

// NewBox constructs a box from a pose and full side lengths, using
// default solver options and a no-op logger. Side lengths must be
// strictly positive.
func NewBox(pose spatial.Pose, sides r3.Vector) (*Box, error) {
	return NewBoxWithOptions(pose, sides, options.DefaultOptions(), logging.NewNopLogger())
}

// NewBoxWithOptions constructs a box the way NewBox does, but with
// caller-supplied solver options (contact count, tolerances) and a
// logger the box/box solver reports degenerate-numerics warnings to.
func NewBoxWithOptions(pose spatial.Pose, sides r3.Vector, opts options.Options, logger logging.Logger) (*Box, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	b := &Box{pose: pose, halfSize: sides.Mul(0.5), opts: opts, logger: logger}
	if sides.X <= 0 || sides.Y <= 0 || sides.Z <= 0 {
		return nil, newBadGeometryDimensionsError(b)
	}
	return b, nil
}

// Pose returns the box's placement.
func (b *Box) Pose() spatial.Pose { return b.pose }

// Sides returns the box's full side lengths.
func (b *Box) Sides() r3.Vector { return b.halfSize.Mul(2) }

// Kind identifies b as a KindBox for dispatch-table lookups.
func (b *Box) Kind() Kind { return KindBox }

// Transform returns a copy of b placed at toPremultiply composed with b's pose.
func (b *Box) Transform(toPremultiply spatial.Pose) Geometry {
	return &Box{pose: spatial.Compose(toPremultiply, b.pose), halfSize: b.halfSize, opts: b.opts, logger: b.logger}
}

// ManifoldWith runs the full box/box separating-axis test between b and
// other under b's configured options, returning the underlying
// narrow-phase result including the SAT axis code and any contacts.
func (b *Box) ManifoldWith(other *Box) narrowphase.Result {
	return narrowphase.BoxBox(b.Sides(), b.pose, other.Sides(), other.pose, b.opts, b.logger)
}

// quickCollisionCheck runs the same solver as ManifoldWith but capped
// to a single contact, the cheapest configuration that still answers
// "do these overlap".
func (b *Box) quickCollisionCheck(other *Box) narrowphase.Result {
	quick := b.opts
	quick.MaxContacts = 1
	return narrowphase.BoxBox(b.Sides(), b.pose, other.Sides(), other.pose, quick, b.logger)
}

// CollidesWith follows the teacher's sign convention: colliding pairs
// return (true, -1, nil); separated pairs return (false, distance, nil)
// using the pair's SAT max-separation as a cheap distance estimate.
func (b *Box) CollidesWith(g Geometry, collisionBuffer float64) (bool, float64, error) {
	switch other := g.(type) {
	case *Box:
		res := b.quickCollisionCheck(other)
		if res.Code != 0 {
			return true, -1, nil
		}
		sep := satMaxSeparation(b, other)
		if sep <= collisionBuffer {
			return true, -1, nil
		}
		return false, sep, nil
	case *Sphere:
		col, dist := sphereVsBoxCollision(other, b, collisionBuffer)
		if col {
			return true, -1, nil
		}
		return false, dist, nil
	case *Point:
		col, dist := pointVsBoxCollision(other.position, b, collisionBuffer)
		if col {
			return true, -1, nil
		}
		return false, dist, nil
	default:
		return true, collisionBuffer, newCollisionTypeUnsupportedError(b, g)
	}
}

// DistanceFrom returns b's separation distance from g, negative when overlapping.
func (b *Box) DistanceFrom(g Geometry) (float64, error) {
	switch other := g.(type) {
	case *Box:
		res := b.quickCollisionCheck(other)
		if res.Code != 0 {
			return -res.Depth, nil
		}
		return satMaxSeparation(b, other), nil
	case *Sphere:
		return sphereVsBoxDistance(other, b), nil
	case *Point:
		return pointVsBoxDistance(other.position, b), nil
	default:
		return math.Inf(-1), newCollisionTypeUnsupportedError(b, g)
	}
}

// satMaxSeparation approximates the true separation distance between
// two disjoint boxes by the largest per-axis SAT gap. It equals the
// true distance only when the boxes are separated along a single one of
// the tested axes; otherwise (for example, boxes offset diagonally) it
// is a lower bound.
func satMaxSeparation(a, b *Box) float64 {
	p := b.pose.Translation().Sub(a.pose.Translation())
	best := math.Inf(-1)
	ra, rb := a.pose.Linear(), b.pose.Linear()
	for i := 0; i < 3; i++ {
		axis := ra.Col(i)
		s := math.Abs(p.Dot(axis)) - (halfExtentProjection(a, axis) + halfExtentProjection(b, axis))
		if s > best {
			best = s
		}
	}
	for i := 0; i < 3; i++ {
		axis := rb.Col(i)
		s := math.Abs(p.Dot(axis)) - (halfExtentProjection(a, axis) + halfExtentProjection(b, axis))
		if s > best {
			best = s
		}
	}
	return best
}

func halfExtentProjection(b *Box, axis r3.Vector) float64 {
	rm := b.pose.Linear()
	return math.Abs(rm.Col(0).Dot(axis))*b.halfSize.X +
		math.Abs(rm.Col(1).Dot(axis))*b.halfSize.Y +
		math.Abs(rm.Col(2).Dot(axis))*b.halfSize.Z
}

// closestPoint returns the point on b nearest pt, clamping pt's
// body-frame offset to the box's half-extents on each axis.
func (b *Box) closestPoint(pt r3.Vector) r3.Vector {
	local := pt.Sub(b.pose.Translation())
	rm := b.pose.Linear()
	result := b.pose.Translation()
	extents := [3]float64{b.halfSize.X, b.halfSize.Y, b.halfSize.Z}
	for i := 0; i < 3; i++ {
		axis := rm.Col(i)
		d := local.Dot(axis)
		if d > extents[i] {
			d = extents[i]
		} else if d < -extents[i] {
			d = -extents[i]
		}
		result = result.Add(axis.Mul(d))
	}
	return result
}
