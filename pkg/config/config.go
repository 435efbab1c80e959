// Package config loads the project design-token definition.
//
// Configuration is layered: embedded system defaults first, then the
// project's quire.toml (or .quire.toml). Later layers override earlier
// ones key by key, so a project file only has to state what differs
// from the defaults.
package config

import (
	"github.com/mvieira/quire/pkg/errors"
)

// Config is the fully merged token definition.
type Config struct {
	Typography  Typography           `koanf:"typography" toml:"typography"`
	Weights     map[string]int       `koanf:"weights" toml:"weights"`
	Families    map[string]string    `koanf:"families" toml:"families"`
	Layers      map[string]int       `koanf:"layers" toml:"layers"`
	Transitions Transitions          `koanf:"transitions" toml:"transitions"`
	Themes      Themes               `koanf:"themes" toml:"themes"`
	Styles      map[string]TextStyle `koanf:"styles" toml:"styles"`
	Output      Output               `koanf:"output" toml:"output"`
}

// Typography holds the scale constants.
type Typography struct {
	BaseSize float64 `koanf:"base-size" toml:"base-size"`
	Unit     string  `koanf:"unit" toml:"unit"`
	Ratio    float64 `koanf:"ratio" toml:"ratio"`
	MinStep  int     `koanf:"min-step" toml:"min-step"`
	MaxStep  int     `koanf:"max-step" toml:"max-step"`
	Leading  Leading `koanf:"leading" toml:"leading"`
}

// Leading holds the line-height relation constants.
type Leading struct {
	Slope     float64 `koanf:"slope" toml:"slope"`
	Intercept float64 `koanf:"intercept" toml:"intercept"`
}

// Transitions holds the transition-list inputs.
type Transitions struct {
	Duration   string   `koanf:"duration" toml:"duration"`
	Easing     string   `koanf:"easing" toml:"easing"`
	Properties []string `koanf:"properties" toml:"properties"`
}

// Themes holds the light/dark variable tables.
type Themes struct {
	Light map[string]string `koanf:"light" toml:"light"`
	Dark  map[string]string `koanf:"dark" toml:"dark"`
}

// TextStyle maps a semantic role to a scale step and token labels.
// Weight and family are labels resolved through the closed tables.
type TextStyle struct {
	Step   int    `koanf:"step" toml:"step"`
	Weight string `koanf:"weight" toml:"weight"`
	Family string `koanf:"family" toml:"family"`
}

// Output controls where and how the stylesheet is written.
type Output struct {
	Path   string `koanf:"path" toml:"path"`
	Format string `koanf:"format" toml:"format"`
}

// Stylesheet formats accepted by Output.Format.
const (
	FormatCSS  = "css"
	FormatSCSS = "scss"
)

// ValidateShape checks the structural fields that do not need the
// token tables: output format and presence of required sections.
// Semantic validation (labels, ratio, theme parity) belongs to the
// compiler.
func (c *Config) ValidateShape() error {
	switch c.Output.Format {
	case FormatCSS, FormatSCSS:
	default:
		return errors.Newf(errors.ErrConfigValid,
			"output format must be %q or %q, got %q", FormatCSS, FormatSCSS, c.Output.Format)
	}
	if c.Output.Path == "" {
		return errors.New(errors.ErrConfigValid, "output path must not be empty")
	}
	return nil
}
