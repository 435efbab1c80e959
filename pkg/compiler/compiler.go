// Package compiler resolves a token definition into the computed
// artifacts the emitters consume: the type scale, the closed token
// tables, theme pair, transition list, and resolved text styles.
//
// Every authoring mistake surfaces here as a structured error, before
// anything is written. Compile fails fast; Validate collects every
// error so `quire check` can report them all at once.
package compiler

import (
	"sort"

	"github.com/mvieira/quire/pkg/config"
	"github.com/mvieira/quire/pkg/errors"
	"github.com/mvieira/quire/pkg/logging"
	"github.com/mvieira/quire/pkg/scale"
	"github.com/mvieira/quire/pkg/theme"
	"github.com/mvieira/quire/pkg/tokens"
	"github.com/mvieira/quire/pkg/transition"
)

// ResolvedStyle is a text style with its labels resolved through the
// closed tables.
type ResolvedStyle struct {
	Role        string
	Step        scale.Step
	WeightLabel string
	Weight      int
	FamilyLabel string
	FamilyStack string
}

// Compilation is the full computed token set.
type Compilation struct {
	Scale              *scale.Scale
	Steps              []scale.Step
	Weights            *tokens.WeightTable
	Families           *tokens.FamilyTable
	Layers             *tokens.LayerTable
	Themes             *theme.Pair
	TransitionDuration string
	TransitionList     string
	Styles             []ResolvedStyle
	Unit               string
}

// Compile resolves the configuration, failing on the first error.
func Compile(cfg *config.Config) (*Compilation, error) {
	comp, errs := compile(cfg)
	if len(errs) > 0 {
		return nil, errs[0]
	}
	return comp, nil
}

// Validate resolves the configuration and returns every error found.
// A nil slice means the definition is sound.
func Validate(cfg *config.Config) []error {
	_, errs := compile(cfg)
	return errs
}

func compile(cfg *config.Config) (*Compilation, []error) {
	logger := logging.GetLogger("compiler")
	var errs []error

	comp := &Compilation{Unit: cfg.Typography.Unit}

	s, err := scale.New(
		cfg.Typography.BaseSize,
		cfg.Typography.Unit,
		cfg.Typography.Ratio,
		cfg.Typography.MinStep,
		cfg.Typography.MaxStep,
		scale.Leading{
			Slope:     cfg.Typography.Leading.Slope,
			Intercept: cfg.Typography.Leading.Intercept,
		},
	)
	if err != nil {
		errs = append(errs, err)
	} else {
		comp.Scale = s
		comp.Steps = s.Steps()
		comp.Unit = s.Unit
	}

	weights, err := tokens.NewWeightTable(cfg.Weights)
	if err != nil {
		errs = append(errs, err)
	} else {
		comp.Weights = weights
	}

	families, err := tokens.NewFamilyTable(cfg.Families)
	if err != nil {
		errs = append(errs, err)
	} else {
		comp.Families = families
	}

	layers, err := tokens.NewLayerTable(cfg.Layers)
	if err != nil {
		errs = append(errs, err)
	} else {
		comp.Layers = layers
	}

	pair, err := theme.NewPair(cfg.Themes.Light, cfg.Themes.Dark)
	if err != nil {
		errs = append(errs, err)
	} else {
		comp.Themes = pair
	}

	builder := transition.NewBuilder("var(--transition-duration)", cfg.Transitions.Easing)
	list, err := builder.Build(cfg.Transitions.Properties)
	if err != nil {
		errs = append(errs, errors.Wrap(err, errors.ErrConfigValid, "invalid transitions section"))
	} else {
		comp.TransitionDuration = cfg.Transitions.Duration
		comp.TransitionList = list
	}
	if cfg.Transitions.Duration == "" {
		errs = append(errs, errors.New(errors.ErrConfigValid, "transition duration must not be empty"))
	}

	// Text styles need the scale and both tables; resolve only what
	// earlier stages gave us, and collect every bad label.
	if comp.Scale != nil && comp.Weights != nil && comp.Families != nil {
		styles, styleErrs := resolveStyles(cfg.Styles, comp.Scale, comp.Weights, comp.Families)
		comp.Styles = styles
		errs = append(errs, styleErrs...)
	}

	if len(errs) == 0 {
		logger.Debug().
			Int("steps", len(comp.Steps)).
			Int("styles", len(comp.Styles)).
			Msg("Token definition compiled")
	} else {
		logger.Debug().Int("errors", len(errs)).Msg("Token definition has errors")
	}

	return comp, errs
}

// resolveStyles looks every role's labels up in the closed tables.
func resolveStyles(styles map[string]config.TextStyle, s *scale.Scale,
	weights *tokens.WeightTable, families *tokens.FamilyTable) ([]ResolvedStyle, []error) {

	var errs []error
	roles := make([]string, 0, len(styles))
	for role := range styles {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	resolved := make([]ResolvedStyle, 0, len(roles))
	for _, role := range roles {
		def := styles[role]

		weight, err := weights.Lookup(def.Weight)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, errors.ErrConfigValid, "style %q", role))
			continue
		}
		stack, err := families.Lookup(def.Family)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, errors.ErrConfigValid, "style %q", role))
			continue
		}

		resolved = append(resolved, ResolvedStyle{
			Role:        role,
			Step:        s.Compute(def.Step),
			WeightLabel: def.Weight,
			Weight:      weight,
			FamilyLabel: def.Family,
			FamilyStack: stack,
		})
	}
	return resolved, errs
}
