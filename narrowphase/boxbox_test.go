package narrowphase

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/collide/logging"
	"go.viam.com/collide/options"
	"go.viam.com/collide/spatial"
)

func unitBoxSides() r3.Vector { return r3.Vector{X: 1, Y: 1, Z: 1} }

func testOpts(maxc int) options.Options {
	opts := options.DefaultOptions()
	opts.MaxContacts = maxc
	return opts
}

var testLogger = logging.NewNopLogger()

func poseAt(x, y, z float64) spatial.Pose {
	return spatial.NewPoseFromPoint(r3.Vector{X: x, Y: y, Z: z})
}

func rotateZ(angle float64) *spatial.RotationMatrix {
	c, s := math.Cos(angle), math.Sin(angle)
	return spatial.NewRotationMatrix([9]float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

func TestBoxBoxFaceContact(t *testing.T) {
	pose1 := poseAt(0, 0, 0)
	pose2 := poseAt(0.9, 0, 0)
	res := BoxBox(unitBoxSides(), pose1, unitBoxSides(), pose2, testOpts(4), testLogger)
	test.That(t, res.Code, test.ShouldNotEqual, 0)
	test.That(t, res.Normal.X, test.ShouldBeGreaterThan, 0.99)
	test.That(t, spatial.AlmostEqual(res.Depth, 0.1, 1e-9), test.ShouldBeTrue)
	test.That(t, len(res.Contacts), test.ShouldEqual, 4)
	for _, c := range res.Contacts {
		test.That(t, spatial.AlmostEqual(c.Depth, 0.1, 1e-9), test.ShouldBeTrue)
		// Contacts lie on the incident face: box 2's -X face at x = 0.9 - 0.5.
		test.That(t, spatial.AlmostEqual(c.Position.X, 0.4, 1e-9), test.ShouldBeTrue)
	}
}

func TestBoxBoxSeparated(t *testing.T) {
	pose1 := poseAt(0, 0, 0)
	pose2 := poseAt(1.1, 0, 0)
	res := BoxBox(unitBoxSides(), pose1, unitBoxSides(), pose2, testOpts(4), testLogger)
	test.That(t, res.Code, test.ShouldEqual, 0)
	test.That(t, len(res.Contacts), test.ShouldEqual, 0)
}

func TestBoxBoxEdgeEdge(t *testing.T) {
	pose1 := poseAt(0, 0, 0)
	// Box 2 is tilted 45 degrees about X, then turned -45 degrees about Z
	// and placed on the diagonal, so that one of its edges crosses box 1's
	// vertical edge at x = y = 0.5.
	tilt := spatial.QuaternionFromAxisAngle(r3.Vector{X: 1}, math.Pi/4).RotationMatrix()
	pose2 := spatial.NewPose(rotateZ(-math.Pi/4).MulRotation(tilt), r3.Vector{X: 1.3 / math.Sqrt2, Y: 1.3 / math.Sqrt2})
	res := BoxBox(unitBoxSides(), pose1, unitBoxSides(), pose2, testOpts(4), testLogger)
	test.That(t, res.Code, test.ShouldBeGreaterThanOrEqualTo, 7)
	test.That(t, res.Code, test.ShouldBeLessThanOrEqualTo, 15)
	test.That(t, len(res.Contacts), test.ShouldEqual, 1)
	test.That(t, math.Abs(res.Normal.Z), test.ShouldBeLessThan, 1e-9)
}

func TestBoxBoxContainment(t *testing.T) {
	pose1 := poseAt(0, 0, 0)
	pose2 := poseAt(0.2, 0.1, 0)
	res := BoxBox(r3.Vector{X: 3, Y: 3, Z: 3}, pose1, unitBoxSides(), pose2, testOpts(4), testLogger)
	test.That(t, res.Code, test.ShouldNotEqual, 0)
	// The shortest escape axis is X: the offset is largest there (0.2 vs
	// 0.1 on Y, 0 on Z), so X's SAT gap r1+r2-|offset| is the smallest.
	test.That(t, math.Abs(res.Normal.X), test.ShouldBeGreaterThan, 0.99)
	test.That(t, res.Depth, test.ShouldBeGreaterThan, 1.5)
	test.That(t, res.Depth, test.ShouldBeLessThan, 2.0)
}

func TestBoxBoxSymmetry(t *testing.T) {
	pose1 := poseAt(0, 0, 0)
	pose2 := spatial.NewPose(rotateZ(math.Pi/6), r3.Vector{X: 0.8, Y: 0.3})
	fwd := BoxBox(unitBoxSides(), pose1, unitBoxSides(), pose2, testOpts(4), testLogger)
	rev := BoxBox(unitBoxSides(), pose2, unitBoxSides(), pose1, testOpts(4), testLogger)
	test.That(t, spatial.AlmostEqual(fwd.Depth, rev.Depth, 1e-9), test.ShouldBeTrue)
	test.That(t, spatial.AlmostEqual(fwd.Normal.X, -rev.Normal.X, 1e-9), test.ShouldBeTrue)
	test.That(t, spatial.AlmostEqual(fwd.Normal.Y, -rev.Normal.Y, 1e-9), test.ShouldBeTrue)
	test.That(t, spatial.AlmostEqual(fwd.Normal.Z, -rev.Normal.Z, 1e-9), test.ShouldBeTrue)
}

func TestBoxBoxTranslationInvariance(t *testing.T) {
	pose1 := poseAt(0, 0, 0)
	pose2 := poseAt(0.9, 0, 0)
	base := BoxBox(unitBoxSides(), pose1, unitBoxSides(), pose2, testOpts(4), testLogger)

	shift := r3.Vector{X: 5, Y: -3, Z: 2}
	shifted := BoxBox(unitBoxSides(), poseAt(shift.X, shift.Y, shift.Z),
		unitBoxSides(), poseAt(0.9+shift.X, shift.Y, shift.Z), testOpts(4), testLogger)

	test.That(t, spatial.AlmostEqual(base.Depth, shifted.Depth, 1e-9), test.ShouldBeTrue)
	test.That(t, spatial.AlmostEqual(base.Normal.X, shifted.Normal.X, 1e-9), test.ShouldBeTrue)
	for i := range base.Contacts {
		diff := shifted.Contacts[i].Position.Sub(base.Contacts[i].Position)
		test.That(t, spatial.AlmostEqual(diff.X, shift.X, 16*spatial.Epsilon), test.ShouldBeTrue)
		test.That(t, spatial.AlmostEqual(diff.Y, shift.Y, 16*spatial.Epsilon), test.ShouldBeTrue)
		test.That(t, spatial.AlmostEqual(diff.Z, shift.Z, 16*spatial.Epsilon), test.ShouldBeTrue)
	}
}

func TestBoxBoxContactInvariants(t *testing.T) {
	res := BoxBox(unitBoxSides(), poseAt(0, 0, 0), unitBoxSides(), poseAt(0.9, 0, 0), testOpts(4), testLogger)
	for _, c := range res.Contacts {
		test.That(t, c.Depth, test.ShouldBeGreaterThanOrEqualTo, 0.0)
		test.That(t, spatial.AlmostEqual(c.Normal.Norm(), 1, 4*spatial.Epsilon), test.ShouldBeTrue)
	}
	test.That(t, res.Contacts.DeepestFirst(), test.ShouldBeTrue)
}
