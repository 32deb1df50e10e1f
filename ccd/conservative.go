package ccd

import (
	"go.viam.com/collide/geometry"
	"go.viam.com/collide/motion"
)

// conservativeAdvancement advances t by the ratio of the current
// separation distance to an upper bound on the relative motion's rate
// of closure, guaranteeing it never steps past the first contact.
// Terminates when the distance drops below toc_err or the iteration
// cap is reached.
func conservativeAdvancement(g1, g2 geometry.Geometry, m1, m2 motion.Model, req Request) (Result, error) {
	t := 0.0
	for iter := 0; iter < req.NumMaxIterations; iter++ {
		m1.Integrate(t)
		m2.Integrate(t)
		p1 := placeAt(g1, m1.CurrentTransform())
		p2 := placeAt(g2, m2.CurrentTransform())

		dist, err := distanceOracle(p1, p2, req.GJKSolver)
		if err != nil {
			return Result{}, err
		}
		if dist <= req.TOCErr {
			return finishCollision(m1, m2, t), nil
		}
		if t >= 1 {
			break
		}

		bound := closureRateBound(m1, t) + closureRateBound(m2, t)
		if bound <= 0 {
			break
		}
		t += dist / bound
		if t > 1 {
			t = 1
		}
	}
	return Result{IsCollide: false, TimeOfContact: 1}, nil
}

// closureRateBound estimates an upper bound on m's linear speed over
// the remaining [t,1] interval: exact for Translation (a constant
// velocity, via the Velocitier interface); for Linear/Screw/Spline it
// is the chord length from t to 1 divided by the remaining time, a
// conservative stand-in since those models don't expose a closed-form
// velocity.
func closureRateBound(m motion.Model, t float64) float64 {
	if v, ok := m.(motion.Velocitier); ok {
		return v.Velocity().Norm()
	}
	if t >= 1 {
		return 0
	}
	here := m.CurrentTransform().Translation()
	m.Integrate(1)
	end := m.CurrentTransform().Translation()
	m.Integrate(t)
	return end.Sub(here).Norm() / (1 - t)
}
