package geometry

import (
	"math"

	"go.viam.com/collide/spatial"
)

// Sphere is a ball of the given radius centered at its pose's translation.
type Sphere struct {
	pose   spatial.Pose
	radius float64
}

// NewSphere constructs a sphere; radius must be strictly positive.
func NewSphere(pose spatial.Pose, radius float64) (*Sphere, error) {
	s := &Sphere{pose: pose, radius: radius}
	if radius <= 0 {
		return nil, newBadGeometryDimensionsError(s)
	}
	return s, nil
}

func (s *Sphere) Pose() spatial.Pose { return s.pose }
func (s *Sphere) Kind() Kind         { return KindSphere }

func (s *Sphere) Transform(toPremultiply spatial.Pose) Geometry {
	return &Sphere{pose: spatial.Compose(toPremultiply, s.pose), radius: s.radius}
}

func (s *Sphere) CollidesWith(g Geometry, collisionBuffer float64) (bool, float64, error) {
	switch other := g.(type) {
	case *Sphere:
		col, dist := sphereVsSphereCollision(s, other, collisionBuffer)
		if col {
			return true, -1, nil
		}
		return false, dist, nil
	case *Box:
		col, dist := sphereVsBoxCollision(s, other, collisionBuffer)
		if col {
			return true, -1, nil
		}
		return false, dist, nil
	case *Point:
		d := s.pose.Translation().Sub(other.position).Norm() - s.radius
		if d <= collisionBuffer {
			return true, -1, nil
		}
		return false, d, nil
	default:
		return true, collisionBuffer, newCollisionTypeUnsupportedError(s, g)
	}
}

func (s *Sphere) DistanceFrom(g Geometry) (float64, error) {
	switch other := g.(type) {
	case *Sphere:
		return s.pose.Translation().Sub(other.pose.Translation()).Norm() - s.radius - other.radius, nil
	case *Box:
		return sphereVsBoxDistance(s, other), nil
	case *Point:
		return s.pose.Translation().Sub(other.position).Norm() - s.radius, nil
	default:
		return math.Inf(-1), newCollisionTypeUnsupportedError(s, g)
	}
}

func sphereVsSphereCollision(a, b *Sphere, buffer float64) (bool, float64) {
	d := a.pose.Translation().Sub(b.pose.Translation()).Norm() - a.radius - b.radius
	return d <= buffer, d
}

// sphereVsBoxCollision reports whether s overlaps box (within buffer)
// by clamping s's center into box's local frame, the standard
// closest-point-on-OBB test.
func sphereVsBoxCollision(s *Sphere, b *Box, buffer float64) (bool, float64) {
	d := sphereVsBoxDistance(s, b)
	return d <= buffer, d
}

func sphereVsBoxDistance(s *Sphere, b *Box) float64 {
	closest := b.closestPoint(s.pose.Translation())
	return closest.Sub(s.pose.Translation()).Norm() - s.radius
}
