package spatial

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestQuaternionRotationMatrixRoundTrip(t *testing.T) {
	cases := []Quaternion{
		IdentityQuaternion(),
		QuaternionFromAxisAngle(r3.Vector{X: 1}, math.Pi/2),
		QuaternionFromAxisAngle(r3.Vector{Y: 1}, math.Pi/3),
		QuaternionFromAxisAngle(r3.Vector{X: 1, Y: 1, Z: 1}, 1.2345),
	}
	for _, q := range cases {
		rm := q.RotationMatrix()
		back := QuaternionFromRotationMatrix(rm)
		test.That(t, QuaternionAlmostEqual(q, back, 1e-9), test.ShouldBeTrue)
	}
}

func TestQuaternionFromRotationMatrixIdentity(t *testing.T) {
	q := QuaternionFromRotationMatrix(IdentityRotation())
	test.That(t, QuaternionAlmostEqual(q, IdentityQuaternion(), 1e-12), test.ShouldBeTrue)
}

func TestSlerpEndpoints(t *testing.T) {
	a := QuaternionFromAxisAngle(r3.Vector{Z: 1}, 0)
	b := QuaternionFromAxisAngle(r3.Vector{Z: 1}, math.Pi/2)
	test.That(t, QuaternionAlmostEqual(Slerp(a, b, 0), a, 1e-9), test.ShouldBeTrue)
	test.That(t, QuaternionAlmostEqual(Slerp(a, b, 1), b, 1e-9), test.ShouldBeTrue)
}
