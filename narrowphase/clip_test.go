package narrowphase

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestIntersectRectQuadFullyInside(t *testing.T) {
	h := [2]float64{1, 1}
	quad := [4]Vec2{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}}
	ret, n := IntersectRectQuad(h, quad)
	test.That(t, n, test.ShouldEqual, 4)
	for i := 0; i < n; i++ {
		test.That(t, math.Abs(ret[i][0]), test.ShouldBeLessThanOrEqualTo, h[0]+1e-9)
		test.That(t, math.Abs(ret[i][1]), test.ShouldBeLessThanOrEqualTo, h[1]+1e-9)
	}
}

func TestIntersectRectQuadClipsOverhang(t *testing.T) {
	h := [2]float64{1, 1}
	quad := [4]Vec2{{-2, -0.5}, {2, -0.5}, {2, 0.5}, {-2, 0.5}}
	ret, n := IntersectRectQuad(h, quad)
	test.That(t, n, test.ShouldBeGreaterThanOrEqualTo, 4)
	for i := 0; i < n; i++ {
		test.That(t, ret[i][0], test.ShouldBeGreaterThanOrEqualTo, -1-1e-9)
		test.That(t, ret[i][0], test.ShouldBeLessThanOrEqualTo, 1+1e-9)
	}
}

func TestIntersectRectQuadNoOverlap(t *testing.T) {
	h := [2]float64{1, 1}
	quad := [4]Vec2{{5, 5}, {6, 5}, {6, 6}, {5, 6}}
	_, n := IntersectRectQuad(h, quad)
	test.That(t, n, test.ShouldEqual, 0)
}
