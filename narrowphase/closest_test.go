package narrowphase

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestLineClosestApproachPerpendicular(t *testing.T) {
	pa := r3.Vector{}
	ua := r3.Vector{X: 1}
	pb := r3.Vector{X: 1, Y: 1}
	ub := r3.Vector{Y: 1}
	alpha, beta := LineClosestApproach(pa, ua, pb, ub)
	closestA := pa.Add(ua.Mul(alpha))
	closestB := pb.Add(ub.Mul(beta))
	test.That(t, closestA.X, test.ShouldEqual, 1.0)
	test.That(t, closestB.Y, test.ShouldEqual, 0.0)
}

func TestLineClosestApproachParallel(t *testing.T) {
	pa := r3.Vector{}
	ua := r3.Vector{X: 1}
	pb := r3.Vector{Y: 1}
	ub := r3.Vector{X: 1}
	alpha, _ := LineClosestApproach(pa, ua, pb, ub)
	test.That(t, alpha, test.ShouldEqual, 0.0)
}
