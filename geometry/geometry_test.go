package geometry

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/collide/logging"
	"go.viam.com/collide/options"
	"go.viam.com/collide/spatial"
)

func TestBoxCollidesWithBox(t *testing.T) {
	a, err := NewBox(spatial.NewPoseFromPoint(r3.Vector{}), r3.Vector{X: 1, Y: 1, Z: 1})
	test.That(t, err, test.ShouldBeNil)
	b, err := NewBox(spatial.NewPoseFromPoint(r3.Vector{X: 0.9}), r3.Vector{X: 1, Y: 1, Z: 1})
	test.That(t, err, test.ShouldBeNil)

	col, dist, err := a.CollidesWith(b, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, col, test.ShouldBeTrue)
	test.That(t, dist, test.ShouldEqual, -1.0)

	c, err := NewBox(spatial.NewPoseFromPoint(r3.Vector{X: 1.1}), r3.Vector{X: 1, Y: 1, Z: 1})
	test.That(t, err, test.ShouldBeNil)
	col, dist, err = a.CollidesWith(c, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, col, test.ShouldBeFalse)
	test.That(t, dist, test.ShouldBeGreaterThan, 0)
}

func TestNewBoxRejectsNonPositiveSides(t *testing.T) {
	_, err := NewBox(spatial.NewZeroPose(), r3.Vector{X: 0, Y: 1, Z: 1})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSphereVsSphere(t *testing.T) {
	a, err := NewSphere(spatial.NewPoseFromPoint(r3.Vector{}), 1)
	test.That(t, err, test.ShouldBeNil)
	b, err := NewSphere(spatial.NewPoseFromPoint(r3.Vector{X: 1.5}), 1)
	test.That(t, err, test.ShouldBeNil)
	col, _, err := a.CollidesWith(b, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, col, test.ShouldBeTrue)

	c, err := NewSphere(spatial.NewPoseFromPoint(r3.Vector{X: 3}), 1)
	test.That(t, err, test.ShouldBeNil)
	col, dist, err := a.CollidesWith(c, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, col, test.ShouldBeFalse)
	test.That(t, spatial.AlmostEqual(dist, 1, 1e-9), test.ShouldBeTrue)
}

func TestSphereVsBox(t *testing.T) {
	b, err := NewBox(spatial.NewZeroPose(), r3.Vector{X: 2, Y: 2, Z: 2})
	test.That(t, err, test.ShouldBeNil)
	s, err := NewSphere(spatial.NewPoseFromPoint(r3.Vector{X: 1.5}), 1)
	test.That(t, err, test.ShouldBeNil)
	col, _, err := s.CollidesWith(b, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, col, test.ShouldBeTrue)
}

func TestPointVsBox(t *testing.T) {
	b, err := NewBox(spatial.NewZeroPose(), r3.Vector{X: 2, Y: 2, Z: 2})
	test.That(t, err, test.ShouldBeNil)
	inside := NewPoint(r3.Vector{X: 0.2})
	col, dist, err := inside.CollidesWith(b, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, col, test.ShouldBeTrue)
	test.That(t, dist, test.ShouldBeLessThanOrEqualTo, 0)

	outside := NewPoint(r3.Vector{X: 5})
	col, dist, err = outside.CollidesWith(b, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, col, test.ShouldBeFalse)
	test.That(t, dist, test.ShouldBeGreaterThan, 0)
}

func TestBoxTransform(t *testing.T) {
	b, err := NewBox(spatial.NewZeroPose(), r3.Vector{X: 1, Y: 1, Z: 1})
	test.That(t, err, test.ShouldBeNil)
	moved := b.Transform(spatial.NewPoseFromPoint(r3.Vector{X: 5}))
	test.That(t, moved.Pose().Translation().X, test.ShouldEqual, 5.0)
}

func TestNewBoxWithOptionsHonorsMaxContacts(t *testing.T) {
	opts := options.DefaultOptions()
	opts.MaxContacts = 1
	a, err := NewBoxWithOptions(spatial.NewZeroPose(), r3.Vector{X: 1, Y: 1, Z: 1}, opts, logging.NewNopLogger())
	test.That(t, err, test.ShouldBeNil)
	b, err := NewBoxWithOptions(spatial.NewPoseFromPoint(r3.Vector{X: 0.9}), r3.Vector{X: 1, Y: 1, Z: 1}, opts, logging.NewNopLogger())
	test.That(t, err, test.ShouldBeNil)

	res := a.ManifoldWith(b)
	test.That(t, res.Code, test.ShouldNotEqual, 0)
	test.That(t, len(res.Contacts), test.ShouldEqual, 1)

	full, err := NewBox(spatial.NewZeroPose(), r3.Vector{X: 1, Y: 1, Z: 1})
	test.That(t, err, test.ShouldBeNil)
	fullOther, err := NewBox(spatial.NewPoseFromPoint(r3.Vector{X: 0.9}), r3.Vector{X: 1, Y: 1, Z: 1})
	test.That(t, err, test.ShouldBeNil)
	fullRes := full.ManifoldWith(fullOther)
	test.That(t, len(fullRes.Contacts), test.ShouldEqual, 4)
}

func TestBoxTransformPropagatesOptionsAndLogger(t *testing.T) {
	opts := options.DefaultOptions()
	opts.MaxContacts = 1
	b, err := NewBoxWithOptions(spatial.NewZeroPose(), r3.Vector{X: 1, Y: 1, Z: 1}, opts, logging.NewNopLogger())
	test.That(t, err, test.ShouldBeNil)
	moved := b.Transform(spatial.NewPoseFromPoint(r3.Vector{X: 5})).(*Box)
	other, err := NewBoxWithOptions(spatial.NewPoseFromPoint(r3.Vector{X: 5.9}), r3.Vector{X: 1, Y: 1, Z: 1}, opts, logging.NewNopLogger())
	test.That(t, err, test.ShouldBeNil)
	res := moved.ManifoldWith(other)
	test.That(t, len(res.Contacts), test.ShouldEqual, 1)
}

func TestMeshCollidesWithMesh(t *testing.T) {
	tri := func(dx float64) *Triangle {
		return NewTriangle(
			r3.Vector{X: dx, Y: 0, Z: 0},
			r3.Vector{X: dx + 1, Y: 0, Z: 0},
			r3.Vector{X: dx, Y: 1, Z: 0},
		)
	}
	m1 := NewMesh(spatial.NewZeroPose(), []*Triangle{tri(0)})
	m2 := NewMesh(spatial.NewZeroPose(), []*Triangle{tri(0.5)})
	col, _, err := m1.CollidesWith(m2, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, col, test.ShouldBeTrue)

	m3 := NewMesh(spatial.NewZeroPose(), []*Triangle{tri(10)})
	col, dist, err := m1.CollidesWith(m3, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, col, test.ShouldBeFalse)
	test.That(t, dist, test.ShouldBeGreaterThan, 0)
}

func TestMeshTranslateDoesNotMutateSource(t *testing.T) {
	tri := NewTriangle(r3.Vector{}, r3.Vector{X: 1}, r3.Vector{Y: 1})
	m := NewMesh(spatial.NewZeroPose(), []*Triangle{tri})
	before := m.WorldTriangles()[0].Points()[0]
	_ = m.Translate(r3.Vector{X: 100})
	after := m.WorldTriangles()[0].Points()[0]
	test.That(t, before, test.ShouldResemble, after)
}
