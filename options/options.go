// Package options carries the tunable knobs of the box/box narrow
// phase (maximum contact count, edge-axis tolerance, and the SAT
// tie-break bias), plus continuous-collision iteration and tolerance
// fields that the ccd package does not read: ccd.Request carries its
// own NumMaxIterations and TOCErr.
package options

import (
	"github.com/mitchellh/mapstructure"

	"go.viam.com/collide/spatial"
)

// Options bundles the solver tunables that would otherwise be scattered
// magic numbers through the core.
type Options struct {
	// MaxContacts caps the size of a box/box contact manifold, clamped to [1,8].
	MaxContacts int `json:"max_contacts"`
	// Epsilon is the absolute tolerance for the degenerate edge-axis
	// check. The face-contact back-projection determinant is not checked
	// against it or against zero. Defaults to machine epsilon.
	Epsilon float64 `json:"epsilon"`
	// FudgeFactor biases edge-edge SAT scores toward face-normal axes.
	FudgeFactor float64 `json:"fudge_factor"`
	// NumMaxIterations is a continuous-collision iteration cap; it is
	// decoded and clamped here, but ccd.Dispatch reads
	// ccd.Request.NumMaxIterations instead.
	NumMaxIterations int `json:"num_max_iterations"`
	// TOCErr is a time-of-contact convergence tolerance; it is decoded
	// and clamped here, but ccd.Dispatch reads ccd.Request.TOCErr instead.
	TOCErr float64 `json:"toc_err"`
}

// DefaultOptions returns the solver's out-of-the-box tunables.
func DefaultOptions() Options {
	return Options{
		MaxContacts:      4,
		Epsilon:          spatial.Epsilon,
		FudgeFactor:      spatial.FudgeFactor,
		NumMaxIterations: 100,
		TOCErr:           1e-6,
	}
}

// OptionsFromMap decodes attrs into Options over the defaults, so a
// caller-supplied map need only set the fields it wants to override.
func OptionsFromMap(attrs map[string]interface{}) (Options, error) {
	opts := DefaultOptions()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: &opts})
	if err != nil {
		return Options{}, err
	}
	if err := decoder.Decode(attrs); err != nil {
		return Options{}, err
	}
	return opts.clamped(), nil
}

// clamped enforces the invariants callers must not violate silently:
// maxc in [1,8] and non-negative tolerances.
func (o Options) clamped() Options {
	if o.MaxContacts < 1 {
		o.MaxContacts = 1
	}
	if o.MaxContacts > 8 {
		o.MaxContacts = 8
	}
	if o.Epsilon <= 0 {
		o.Epsilon = spatial.Epsilon
	}
	if o.FudgeFactor <= 0 {
		o.FudgeFactor = spatial.FudgeFactor
	}
	if o.NumMaxIterations <= 0 {
		o.NumMaxIterations = 100
	}
	if o.TOCErr <= 0 {
		o.TOCErr = 1e-6
	}
	return o
}
