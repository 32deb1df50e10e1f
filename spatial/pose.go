package spatial

import "github.com/golang/geo/r3"

// Pose is a rigid transform: an orthonormal rotation plus a
// translation, applied rotation-then-translation to points expressed
// in the pose's local frame.
type Pose struct {
	orientation *RotationMatrix
	point       r3.Vector
}

// NewPose builds a pose from a rotation and a translation.
func NewPose(orientation *RotationMatrix, point r3.Vector) Pose {
	if orientation == nil {
		orientation = IdentityRotation()
	}
	return Pose{orientation: orientation, point: point}
}

// NewPoseFromPoint builds a pose with identity orientation at point.
func NewPoseFromPoint(point r3.Vector) Pose {
	return Pose{orientation: IdentityRotation(), point: point}
}

// NewZeroPose returns the pose at the origin with no rotation.
func NewZeroPose() Pose {
	return Pose{orientation: IdentityRotation()}
}

// Linear returns the pose's rotation.
func (p Pose) Linear() *RotationMatrix { return p.orientation }

// Translation returns the pose's translation.
func (p Pose) Translation() r3.Vector { return p.point }

// Point is an alias for Translation, matching the teacher's Pose.Point() idiom.
func (p Pose) Point() r3.Vector { return p.point }

// Apply transforms a point from the pose's local frame into the frame
// the pose is expressed in.
func (p Pose) Apply(pt r3.Vector) r3.Vector {
	return p.orientation.Apply(pt).Add(p.point)
}

// Compose returns the pose that first applies b, then a: points in b's
// local frame end up expressed in a's parent frame.
func Compose(a, b Pose) Pose {
	return Pose{
		orientation: a.orientation.MulRotation(b.orientation),
		point:       a.Apply(b.point),
	}
}

// Invert returns the pose whose composition with p yields the identity.
func (p Pose) Invert() Pose {
	invRot := p.orientation.Transpose()
	return Pose{orientation: invRot, point: invRot.Apply(p.point).Mul(-1)}
}

// PoseAlmostEqual compares position (to tol) and each entry of the
// orientation matrix (to 4*tol) of two poses.
func PoseAlmostEqual(a, b Pose, tol float64) bool {
	if !AlmostEqual(a.point.X, b.point.X, tol) ||
		!AlmostEqual(a.point.Y, b.point.Y, tol) ||
		!AlmostEqual(a.point.Z, b.point.Z, tol) {
		return false
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if !AlmostEqual(a.orientation.At(r, c), b.orientation.At(r, c), tol*4) {
				return false
			}
		}
	}
	return true
}
