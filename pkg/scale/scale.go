// Package scale implements the typographic scale engine.
//
// Font sizes follow a geometric progression from a base size and a
// fixed ratio; the paired line-height follows a fixed linear relation
// with a negative slope so larger text gets tighter leading.
package scale

import (
	"github.com/mvieira/quire/pkg/errors"
)

// Default scale constants, matching a 1rem base on a major-second ratio.
const (
	DefaultBaseSize  = 1.0
	DefaultUnit      = "rem"
	DefaultRatio     = 1.125
	DefaultSlope     = -0.15
	DefaultIntercept = 1.65
	DefaultMinStep   = -2
	DefaultMaxStep   = 4
)

// Leading holds the linear relation mapping a font size (in base
// units) to its line-height: lineHeight = Slope*size + Intercept.
type Leading struct {
	Slope     float64
	Intercept float64
}

// Scale is a geometric type scale. The zero value is not usable;
// construct one with New.
type Scale struct {
	BaseSize float64
	Unit     string
	Ratio    float64
	MinStep  int
	MaxStep  int
	Leading  Leading
}

// Step is the computed size pair for one position on the scale.
type Step struct {
	Index      int
	FontSize   float64
	LineHeight float64
}

// New validates the scale constants and returns a Scale.
// Violations are authoring errors and fail fast with SCALE_INVALID.
func New(baseSize float64, unit string, ratio float64, minStep, maxStep int, leading Leading) (*Scale, error) {
	if baseSize <= 0 {
		return nil, errors.Newf(errors.ErrScaleInvalid, "base size must be > 0, got %v", baseSize)
	}
	if ratio <= 1 {
		return nil, errors.Newf(errors.ErrScaleInvalid, "scale ratio must be > 1, got %v", ratio)
	}
	if minStep > maxStep {
		return nil, errors.Newf(errors.ErrScaleInvalid, "min step %d exceeds max step %d", minStep, maxStep)
	}
	if leading.Slope >= 0 {
		return nil, errors.Newf(errors.ErrScaleInvalid, "leading slope must be negative, got %v", leading.Slope)
	}
	if unit == "" {
		unit = DefaultUnit
	}
	return &Scale{
		BaseSize: baseSize,
		Unit:     unit,
		Ratio:    ratio,
		MinStep:  minStep,
		MaxStep:  maxStep,
		Leading:  leading,
	}, nil
}

// Default returns the scale used when a project defines no overrides.
func Default() *Scale {
	s, err := New(DefaultBaseSize, DefaultUnit, DefaultRatio, DefaultMinStep, DefaultMaxStep,
		Leading{Slope: DefaultSlope, Intercept: DefaultIntercept})
	if err != nil {
		// Defaults are compile-time constants; this cannot happen.
		panic(err)
	}
	return s
}

// Compute returns the font size and line-height for a step index.
// Total over all integers; pure, so repeated calls with the same
// index yield bit-identical results.
func (s *Scale) Compute(step int) Step {
	size := s.BaseSize * pow(s.Ratio, step)
	return Step{
		Index:      step,
		FontSize:   size,
		LineHeight: s.Leading.Slope*(size/s.BaseSize) + s.Leading.Intercept,
	}
}

// Steps enumerates the configured step range in ascending order.
func (s *Scale) Steps() []Step {
	steps := make([]Step, 0, s.MaxStep-s.MinStep+1)
	for i := s.MinStep; i <= s.MaxStep; i++ {
		steps = append(steps, s.Compute(i))
	}
	return steps
}

// pow is integer exponentiation by repeated multiplication for
// positive exponents and repeated division for negative ones.
func pow(ratio float64, n int) float64 {
	v := 1.0
	if n >= 0 {
		for i := 0; i < n; i++ {
			v *= ratio
		}
		return v
	}
	for i := 0; i > n; i-- {
		v /= ratio
	}
	return v
}
