package narrowphase

import "github.com/golang/geo/r3"

// LineClosestApproach finds the parameters alpha, beta such that
// pa+alpha*ua and pb+beta*ub are the closest points between the two
// infinite lines. When the lines are (nearly) parallel the 2x2 system
// is singular and both parameters are pinned to 0.
func LineClosestApproach(pa, ua, pb, ub r3.Vector) (alpha, beta float64) {
	p := pb.Sub(pa)
	uaub := ua.Dot(ub)
	q1 := ua.Dot(p)
	q2 := -ub.Dot(p)
	d := 1 - uaub*uaub
	if d <= 0.0001 {
		return 0, 0
	}
	invD := 1 / d
	alpha = (q1 + uaub*q2) * invD
	beta = (uaub*q1 + q2) * invD
	return alpha, beta
}
