package geometry

import (
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/collide/spatial"
)

// Point is a zero-volume geometry located at position.
type Point struct {
	position r3.Vector
}

// NewPoint constructs a point geometry at position.
func NewPoint(position r3.Vector) *Point {
	return &Point{position: position}
}

func (p *Point) Pose() spatial.Pose { return spatial.NewPoseFromPoint(p.position) }
func (p *Point) Kind() Kind         { return KindPoint }

func (p *Point) Transform(toPremultiply spatial.Pose) Geometry {
	return &Point{position: toPremultiply.Apply(p.position)}
}

func (p *Point) CollidesWith(g Geometry, collisionBuffer float64) (bool, float64, error) {
	switch other := g.(type) {
	case *Point:
		d := p.position.Sub(other.position).Norm()
		if d <= collisionBuffer {
			return true, -1, nil
		}
		return false, d, nil
	case *Sphere:
		return other.CollidesWith(p, collisionBuffer)
	case *Box:
		col, dist := pointVsBoxCollision(p.position, other, collisionBuffer)
		if col {
			return true, -1, nil
		}
		return false, dist, nil
	default:
		return true, collisionBuffer, newCollisionTypeUnsupportedError(p, g)
	}
}

func (p *Point) DistanceFrom(g Geometry) (float64, error) {
	switch other := g.(type) {
	case *Point:
		return p.position.Sub(other.position).Norm(), nil
	case *Sphere:
		return other.DistanceFrom(p)
	case *Box:
		return pointVsBoxDistance(p.position, other), nil
	default:
		return math.Inf(-1), newCollisionTypeUnsupportedError(p, g)
	}
}

func pointVsBoxCollision(pt r3.Vector, b *Box, buffer float64) (bool, float64) {
	d := pointVsBoxDistance(pt, b)
	return d <= buffer, d
}

func pointVsBoxDistance(pt r3.Vector, b *Box) float64 {
	closest := b.closestPoint(pt)
	dist := closest.Sub(pt).Norm()
	if pointInBox(pt, b) {
		return -dist
	}
	return dist
}

func pointInBox(pt r3.Vector, b *Box) bool {
	local := pt.Sub(b.pose.Translation())
	rm := b.pose.Linear()
	extents := [3]float64{b.halfSize.X, b.halfSize.Y, b.halfSize.Z}
	for i := 0; i < 3; i++ {
		if math.Abs(local.Dot(rm.Col(i))) > extents[i] {
			return false
		}
	}
	return true
}
