package ccd

import (
	"math"

	"go.viam.com/collide/geometry"
	"go.viam.com/collide/motion"
)

// naiveSample iterates N = min(num_max_iterations, ceil(1/toc_err))
// uniformly spaced samples over [0,1], integrating both motions and
// running the narrow-phase test at each; the first overlapping sample
// is the time of contact. Grounded on continuous_collision.h's
// continuousCollideNaive.
func naiveSample(g1, g2 geometry.Geometry, m1, m2 motion.Model, req Request) (Result, error) {
	collide, err := lookupCollide(g1, g2)
	if err != nil {
		return Result{}, err
	}

	n := req.NumMaxIterations
	if byErr := int(math.Ceil(1 / req.TOCErr)); byErr < n {
		n = byErr
	}
	if n < 1 {
		n = 1
	}

	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		m1.Integrate(t)
		m2.Integrate(t)
		g1Moved := placeAt(g1, m1.CurrentTransform())
		g2Moved := placeAt(g2, m2.CurrentTransform())
		overlap, err := collide(g1Moved, g2Moved, 0)
		if err != nil {
			return Result{}, err
		}
		if overlap {
			return finishCollision(m1, m2, t), nil
		}
	}
	return Result{IsCollide: false, TimeOfContact: 1}, nil
}
