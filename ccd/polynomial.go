package ccd

import (
	"math"

	"go.viam.com/collide/geometry"
	"go.viam.com/collide/motion"
)

// polynomialRoots is valid only for mesh/mesh pairs under pure
// translation. It displaces each mesh by its motion's constant
// velocity scaled by t, rebuilding a BVH over the displaced copy (via
// Mesh.Translate), and tests overlap with Mesh.CollidesWith (a BVH
// candidate filter followed by an exact triangle/triangle SAT test).
// Instead of a literal closed-form polynomial solve — a deliberate
// simplification recorded in DESIGN.md — it steps through evenly
// spaced samples of [0,1] to the first overlapping one, then bisects
// between that sample and the previous one to toc_err tolerance.
// Overlap is not monotone in t, so a contact that begins and ends
// between two samples is not found.
func polynomialRoots(g1, g2 geometry.Geometry, m1, m2 motion.Model, req Request) (Result, error) {
	mesh1, ok1 := g1.(*geometry.Mesh)
	mesh2, ok2 := g2.(*geometry.Mesh)
	v1, okv1 := m1.(motion.Velocitier)
	v2, okv2 := m2.(motion.Velocitier)
	if !ok1 || !ok2 || !okv1 || !okv2 {
		return invalidResult(), geometry.ErrInvalidRequest
	}

	overlapAt := func(t float64) (bool, error) {
		tm1 := mesh1.Translate(v1.Velocity().Mul(t))
		tm2 := mesh2.Translate(v2.Velocity().Mul(t))
		col, _, err := tm1.CollidesWith(tm2, 0)
		return col, err
	}

	n := req.NumMaxIterations
	if byErr := int(math.Ceil(1 / req.TOCErr)); byErr < n {
		n = byErr
	}
	if n < 2 {
		n = 2
	}

	lo, hi := 0.0, 0.0
	found := false
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		col, err := overlapAt(t)
		if err != nil {
			return Result{}, err
		}
		if col {
			hi = t
			found = true
			break
		}
		lo = t
	}
	if !found {
		return Result{IsCollide: false, TimeOfContact: 1}, nil
	}
	if lo == 0 && hi == 0 {
		return finishCollision(m1, m2, 0), nil
	}

	for hi-lo > req.TOCErr {
		mid := 0.5 * (lo + hi)
		col, err := overlapAt(mid)
		if err != nil {
			return Result{}, err
		}
		if col {
			hi = mid
		} else {
			lo = mid
		}
	}
	return finishCollision(m1, m2, hi), nil
}
