package spatial

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is a unit quaternion orientation, backed by gonum's
// quat.Number so this module can reuse gonum's arithmetic rather than
// reimplementing it.
type Quaternion quat.Number

// IdentityQuaternion is the orientation representing no rotation.
func IdentityQuaternion() Quaternion {
	return Quaternion{Real: 1}
}

// Normalize returns q scaled to unit length.
func (q Quaternion) Normalize() Quaternion {
	n := quat.Abs(quat.Number(q))
	if n < Epsilon {
		return IdentityQuaternion()
	}
	return Quaternion(quat.Scale(1/n, quat.Number(q)))
}

// RotationMatrix converts q into an orthonormal RotationMatrix.
func (q Quaternion) RotationMatrix() *RotationMatrix {
	q = q.Normalize()
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return NewRotationMatrix([9]float64{
		1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y),
		2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x),
		2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y),
	})
}

// QuaternionFromRotationMatrix converts an orthonormal RotationMatrix
// into the equivalent unit quaternion, via the standard trace-based
// construction (Shepperd's method, branching on the largest diagonal
// entry to avoid cancellation).
func QuaternionFromRotationMatrix(rm *RotationMatrix) Quaternion {
	trace := rm.At(0, 0) + rm.At(1, 1) + rm.At(2, 2)
	switch {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		return Quaternion{
			Real: 0.25 * s,
			Imag: (rm.At(2, 1) - rm.At(1, 2)) / s,
			Jmag: (rm.At(0, 2) - rm.At(2, 0)) / s,
			Kmag: (rm.At(1, 0) - rm.At(0, 1)) / s,
		}
	case rm.At(0, 0) > rm.At(1, 1) && rm.At(0, 0) > rm.At(2, 2):
		s := math.Sqrt(1+rm.At(0, 0)-rm.At(1, 1)-rm.At(2, 2)) * 2
		return Quaternion{
			Real: (rm.At(2, 1) - rm.At(1, 2)) / s,
			Imag: 0.25 * s,
			Jmag: (rm.At(0, 1) + rm.At(1, 0)) / s,
			Kmag: (rm.At(0, 2) + rm.At(2, 0)) / s,
		}
	case rm.At(1, 1) > rm.At(2, 2):
		s := math.Sqrt(1+rm.At(1, 1)-rm.At(0, 0)-rm.At(2, 2)) * 2
		return Quaternion{
			Real: (rm.At(0, 2) - rm.At(2, 0)) / s,
			Imag: (rm.At(0, 1) + rm.At(1, 0)) / s,
			Jmag: 0.25 * s,
			Kmag: (rm.At(1, 2) + rm.At(2, 1)) / s,
		}
	default:
		s := math.Sqrt(1+rm.At(2, 2)-rm.At(0, 0)-rm.At(1, 1)) * 2
		return Quaternion{
			Real: (rm.At(1, 0) - rm.At(0, 1)) / s,
			Imag: (rm.At(0, 2) + rm.At(2, 0)) / s,
			Jmag: (rm.At(1, 2) + rm.At(2, 1)) / s,
			Kmag: 0.25 * s,
		}
	}
}

// QuaternionFromAxisAngle builds a unit quaternion representing a
// rotation of angle radians about axis (which need not be normalized).
func QuaternionFromAxisAngle(axis r3.Vector, angle float64) Quaternion {
	n := axis.Norm()
	if n < Epsilon {
		return IdentityQuaternion()
	}
	half := angle / 2
	s := math.Sin(half) / n
	return Quaternion{Real: math.Cos(half), Imag: axis.X * s, Jmag: axis.Y * s, Kmag: axis.Z * s}
}

// Slerp spherically interpolates between a and b at fraction t in
// [0,1], taking the shorter arc.
func Slerp(a, b Quaternion, t float64) Quaternion {
	a, b = a.Normalize(), b.Normalize()
	dot := a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
	if dot < 0 {
		b = Quaternion{Real: -b.Real, Imag: -b.Imag, Jmag: -b.Jmag, Kmag: -b.Kmag}
		dot = -dot
	}
	if dot > 0.9995 {
		// Nearly coincident: linear interpolation avoids a 0/0 division below.
		out := Quaternion{
			Real: a.Real + t*(b.Real-a.Real),
			Imag: a.Imag + t*(b.Imag-a.Imag),
			Jmag: a.Jmag + t*(b.Jmag-a.Jmag),
			Kmag: a.Kmag + t*(b.Kmag-a.Kmag),
		}
		return out.Normalize()
	}
	theta0 := math.Acos(dot)
	theta := theta0 * t
	sinTheta0 := math.Sin(theta0)
	s0 := math.Cos(theta) - dot*math.Sin(theta)/sinTheta0
	s1 := math.Sin(theta) / sinTheta0
	return Quaternion{
		Real: s0*a.Real + s1*b.Real,
		Imag: s0*a.Imag + s1*b.Imag,
		Jmag: s0*a.Jmag + s1*b.Jmag,
		Kmag: s0*a.Kmag + s1*b.Kmag,
	}
}

// QuaternionAlmostEqual compares two quaternions up to sign (q and -q
// represent the same orientation) within tol.
func QuaternionAlmostEqual(a, b Quaternion, tol float64) bool {
	same := AlmostEqual(a.Real, b.Real, tol) && AlmostEqual(a.Imag, b.Imag, tol) &&
		AlmostEqual(a.Jmag, b.Jmag, tol) && AlmostEqual(a.Kmag, b.Kmag, tol)
	if same {
		return true
	}
	return AlmostEqual(a.Real, -b.Real, tol) && AlmostEqual(a.Imag, -b.Imag, tol) &&
		AlmostEqual(a.Jmag, -b.Jmag, tol) && AlmostEqual(a.Kmag, -b.Kmag, tol)
}
