package motion

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/collide/spatial"
)

func TestTranslationIntegrate(t *testing.T) {
	begin := spatial.NewPoseFromPoint(r3.Vector{X: -2})
	end := spatial.NewPoseFromPoint(r3.Vector{X: 2})
	m := NewTranslation(begin, end)
	m.Integrate(0.5)
	test.That(t, m.CurrentTransform().Translation().X, test.ShouldEqual, 0.0)
	test.That(t, m.Velocity(), test.ShouldResemble, r3.Vector{X: 4})
}

func TestLinearInterpolatesOrientation(t *testing.T) {
	begin := spatial.NewZeroPose()
	end := spatial.NewPose(spatial.QuaternionFromAxisAngle(r3.Vector{Z: 1}, math.Pi/2).RotationMatrix(), r3.Vector{})
	beginQ := spatial.IdentityQuaternion()
	endQ := spatial.QuaternionFromAxisAngle(r3.Vector{Z: 1}, math.Pi/2)
	m := NewLinear(begin, end, beginQ, endQ)
	m.Integrate(0)
	test.That(t, spatial.PoseAlmostEqual(m.CurrentTransform(), begin, 1e-9), test.ShouldBeTrue)
	m.Integrate(1)
	test.That(t, spatial.PoseAlmostEqual(m.CurrentTransform(), end, 1e-9), test.ShouldBeTrue)
}

func TestScrewRotatesAboutAxis(t *testing.T) {
	begin := spatial.NewPoseFromPoint(r3.Vector{X: 1})
	m := NewScrew(begin, r3.Vector{Z: 1}, r3.Vector{}, math.Pi, 0)
	m.Integrate(1)
	pos := m.CurrentTransform().Translation()
	test.That(t, spatial.AlmostEqual(pos.X, -1, 1e-9), test.ShouldBeTrue)
	test.That(t, spatial.AlmostEqual(pos.Y, 0, 1e-9), test.ShouldBeTrue)
}

func TestSplineHitsEndpoints(t *testing.T) {
	begin := spatial.NewPoseFromPoint(r3.Vector{X: -1})
	end := spatial.NewPoseFromPoint(r3.Vector{X: 1})
	beginQ, endQ := spatial.IdentityQuaternion(), spatial.IdentityQuaternion()
	m := NewSpline(begin, end, beginQ, endQ)
	m.Integrate(0)
	test.That(t, spatial.AlmostEqual(m.CurrentTransform().Translation().X, -1, 1e-9), test.ShouldBeTrue)
	m.Integrate(1)
	test.That(t, spatial.AlmostEqual(m.CurrentTransform().Translation().X, 1, 1e-9), test.ShouldBeTrue)
}
