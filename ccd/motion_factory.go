package ccd

import (
	"go.viam.com/collide/motion"
	"go.viam.com/collide/spatial"
)

// buildMotion constructs the motion.Model named by mt for the given
// endpoint, extracting the orientation quaternions Linear/Spline need
// from the begin/end poses' RotationMatrix.
func buildMotion(mt MotionType, ep Endpoint) motion.Model {
	switch mt {
	case Translation:
		return motion.NewTranslation(ep.Begin, ep.End)
	case Linear:
		beginQ := spatial.QuaternionFromRotationMatrix(ep.Begin.Linear())
		endQ := spatial.QuaternionFromRotationMatrix(ep.End.Linear())
		return motion.NewLinear(ep.Begin, ep.End, beginQ, endQ)
	case Screw:
		return motion.NewScrew(ep.Begin, ep.ScrewAxis, ep.ScrewCenter, ep.ScrewAngle, ep.ScrewPitch)
	case Spline:
		beginQ := spatial.QuaternionFromRotationMatrix(ep.Begin.Linear())
		endQ := spatial.QuaternionFromRotationMatrix(ep.End.Linear())
		return motion.NewSpline(ep.Begin, ep.End, beginQ, endQ)
	default:
		return motion.NewTranslation(ep.Begin, ep.End)
	}
}
