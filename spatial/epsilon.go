// Package spatial provides the rigid-body math kernel shared by every
// collision and proximity component: vectors, rotation matrices, and
// rigid transforms, plus the small set of tolerance helpers used to
// compare them.
package spatial

import "math"

// Real is the scalar type every geometric entity in this module is
// parametric in. The corpus this module is grounded on (FCL) templates
// on the scalar; here we monomorphize on float64 rather than carry a
// type parameter through every function signature, see DESIGN.md.
type Real = float64

// Epsilon is the machine epsilon for Real, used as the default absolute
// tolerance for geometric comparisons.
var Epsilon = math.Nextafter(1, 2) - 1

// FudgeFactor biases the SAT edge/edge axis score so that near-ties
// prefer face-normal axes, which report more stable contacts.
const FudgeFactor = 1.05

// AlmostEqual reports whether a and b differ by no more than tol.
func AlmostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
