package ccd

import "go.viam.com/collide/geometry"

// collideFunc is a narrow-phase overlap test keyed by a pair of
// geometry kinds: it reports whether g1 and g2 overlap or lie within
// buffer of each other.
type collideFunc func(g1, g2 geometry.Geometry, buffer float64) (bool, error)

// narrowPhaseTable is the (node_type_1, node_type_2) lookup table the
// naive-sampling solver dispatches through. Conservative advancement
// does not use it: it queries distanceOracle directly. It is populated exactly once by init and never mutated
// afterward, matching the "process-wide cache of function pointers"
// reentrancy rule: concurrent Dispatch calls only ever read it.
var narrowPhaseTable map[[2]geometry.Kind]collideFunc

func init() {
	narrowPhaseTable = make(map[[2]geometry.Kind]collideFunc)
	symmetric := func(k1, k2 geometry.Kind, fn collideFunc) {
		narrowPhaseTable[[2]geometry.Kind{k1, k2}] = fn
		if k1 != k2 {
			narrowPhaseTable[[2]geometry.Kind{k2, k1}] = func(g1, g2 geometry.Geometry, buffer float64) (bool, error) {
				return fn(g2, g1, buffer)
			}
		}
	}
	direct := func(g1, g2 geometry.Geometry, buffer float64) (bool, error) {
		col, _, err := g1.CollidesWith(g2, buffer)
		return col, err
	}
	symmetric(geometry.KindBox, geometry.KindBox, direct)
	symmetric(geometry.KindBox, geometry.KindSphere, direct)
	symmetric(geometry.KindBox, geometry.KindPoint, direct)
	symmetric(geometry.KindSphere, geometry.KindSphere, direct)
	symmetric(geometry.KindSphere, geometry.KindPoint, direct)
	symmetric(geometry.KindPoint, geometry.KindPoint, direct)
	symmetric(geometry.KindMesh, geometry.KindMesh, direct)
}

// lookupCollide returns the narrow-phase test for the pair (g1.Kind(),
// g2.Kind()), or ErrUnsupportedShapePair if no combination was registered.
func lookupCollide(g1, g2 geometry.Geometry) (collideFunc, error) {
	fn, ok := narrowPhaseTable[[2]geometry.Kind{g1.Kind(), g2.Kind()}]
	if !ok {
		return nil, geometry.ErrUnsupportedShapePair
	}
	return fn, nil
}
