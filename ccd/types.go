// Package ccd implements the continuous-collision dispatcher: it
// selects a motion interpolation and a time-of-contact algorithm, runs
// the narrow-phase test at candidate configurations, and returns a
// single time of contact with well-defined semantics.
package ccd

import (
	"github.com/golang/geo/r3"

	"go.viam.com/collide/geometry"
	"go.viam.com/collide/logging"
	"go.viam.com/collide/spatial"
)

// MotionType selects the C7 motion variant applied to both objects.
type MotionType int

const (
	Translation MotionType = iota
	Linear
	Screw
	Spline
)

func (m MotionType) String() string {
	switch m {
	case Translation:
		return "translation"
	case Linear:
		return "linear"
	case Screw:
		return "screw"
	case Spline:
		return "spline"
	default:
		return "unknown"
	}
}

// SolverType selects the time-of-contact algorithm.
type SolverType int

const (
	Naive SolverType = iota
	ConservativeAdvancement
	RayShooting
	PolynomialSolver
)

func (s SolverType) String() string {
	switch s {
	case Naive:
		return "naive"
	case ConservativeAdvancement:
		return "conservative_advancement"
	case RayShooting:
		return "ray_shooting"
	case PolynomialSolver:
		return "polynomial_solver"
	default:
		return "unknown"
	}
}

// GJKSolverType selects the distance oracle ConservativeAdvancement
// uses. LibCCD is accepted for request compatibility but resolves to
// the same in-module GJK oracle as Indep — there is no external libccd
// binding in this module (see DESIGN.md).
type GJKSolverType int

const (
	LibCCD GJKSolverType = iota
	Indep
)

// Endpoint bundles a geometry's begin/end pose pair and, for Screw
// motion, the axis, center, total angle and pitch describing the
// requested screw. Orientation quaternions for Linear/Spline are
// derived from Begin/End's RotationMatrix by the motion factory.
type Endpoint struct {
	Geometry               geometry.Geometry
	Begin, End             spatial.Pose
	ScrewAxis, ScrewCenter r3.Vector
	ScrewAngle, ScrewPitch float64
}

// Request configures a single continuous-collision query. Logger is
// optional; a nil Logger resolves to a no-op one inside Dispatch.
type Request struct {
	MotionType       MotionType
	SolverType       SolverType
	GJKSolver        GJKSolverType
	NumMaxIterations int
	TOCErr           float64
	Logger           logging.Logger
}

// Result is the outcome of a Dispatch call. When IsCollide is false,
// TimeOfContact is 1 and ContactTf1/ContactTf2 are unspecified.
type Result struct {
	IsCollide     bool
	TimeOfContact float64
	ContactTf1    spatial.Pose
	ContactTf2    spatial.Pose
}

// invalidResult is returned, alongside ErrInvalidRequest, whenever the
// request's solver/motion/geometry combination is not in the validity
// matrix: TOC is -1 and the transforms are left at their zero value.
func invalidResult() Result {
	return Result{IsCollide: false, TimeOfContact: -1}
}

// checkValidity enforces the solver_type/motion_type/geometry-kind
// table from the external-interfaces section: RayShooting requires
// Translation motion; PolynomialSolver requires Translation motion and
// a mesh/mesh geometry pair. Naive and ConservativeAdvancement accept
// any motion and any geometry pair the narrow-phase dispatch table
// covers.
func checkValidity(req Request, k1, k2 geometry.Kind) error {
	switch req.SolverType {
	case RayShooting:
		if req.MotionType != Translation {
			return geometry.ErrInvalidRequest
		}
	case PolynomialSolver:
		if req.MotionType != Translation {
			return geometry.ErrInvalidRequest
		}
		if k1 != geometry.KindMesh || k2 != geometry.KindMesh {
			return geometry.ErrInvalidRequest
		}
	case Naive, ConservativeAdvancement:
		// any motion, any geometry pair covered by the dispatch table
	default:
		return geometry.ErrInvalidRequest
	}
	return nil
}
