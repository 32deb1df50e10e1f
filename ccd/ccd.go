package ccd

import (
	"go.viam.com/collide/geometry"
	"go.viam.com/collide/logging"
)

// Dispatch runs a continuous-collision query between ep1 and ep2 under
// req: it validates the solver/motion/geometry combination against the
// external-interfaces validity matrix, builds the requested motion
// model for each endpoint, runs the selected TOC algorithm, and — on
// collision — integrates both motions to the winning time before
// returning.
func Dispatch(ep1, ep2 Endpoint, req Request) (Result, error) {
	if err := checkValidity(req, ep1.Geometry.Kind(), ep2.Geometry.Kind()); err != nil {
		return invalidResult(), err
	}
	if req.NumMaxIterations <= 0 || req.TOCErr <= 0 {
		return invalidResult(), geometry.ErrInvalidRequest
	}
	logger := req.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	m1 := buildMotion(req.MotionType, ep1)
	m2 := buildMotion(req.MotionType, ep2)

	switch req.SolverType {
	case Naive:
		return naiveSample(ep1.Geometry, ep2.Geometry, m1, m2, req)
	case ConservativeAdvancement:
		return conservativeAdvancement(ep1.Geometry, ep2.Geometry, m1, m2, req)
	case RayShooting:
		// No literal ray/BV-node intersection routine survives in this
		// module's corpus (see DESIGN.md); RayShooting resolves to the
		// same distance-driven advancement as ConservativeAdvancement,
		// which is exact for the Translation-only case the validity
		// matrix restricts it to.
		logger.Warnw("ray_shooting solver has no dedicated routine, falling back to conservative advancement",
			"motion_type", req.MotionType.String())
		return conservativeAdvancement(ep1.Geometry, ep2.Geometry, m1, m2, req)
	case PolynomialSolver:
		return polynomialRoots(ep1.Geometry, ep2.Geometry, m1, m2, req)
	default:
		return invalidResult(), geometry.ErrInvalidRequest
	}
}
