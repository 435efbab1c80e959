// Package inspect implements the inspect command: compile the token
// definition and expose the computed values for display.
package inspect

import (
	"encoding/json"

	"github.com/mvieira/quire/pkg/compiler"
	"github.com/mvieira/quire/pkg/config"
	"github.com/mvieira/quire/pkg/errors"
	"github.com/mvieira/quire/pkg/logging"
)

// Options holds options for the inspect command
type Options struct {
	ProjectRoot string
}

// Result carries the compiled token set
type Result struct {
	Compilation *compiler.Compilation
}

// view is the JSON shape of a compiled token set
type view struct {
	Unit    string            `json:"unit"`
	Steps   []stepView        `json:"steps"`
	Weights map[string]int    `json:"weights"`
	Layers  map[string]int    `json:"layers"`
	Styles  []styleView       `json:"styles"`
	Themes  map[string]string `json:"lightTheme"`
}

type stepView struct {
	Step       int     `json:"step"`
	FontSize   float64 `json:"fontSize"`
	LineHeight float64 `json:"lineHeight"`
}

type styleView struct {
	Role   string `json:"role"`
	Step   int    `json:"step"`
	Weight int    `json:"weight"`
	Family string `json:"family"`
}

// Inspect compiles the project token definition
func Inspect(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.inspect")

	cfg, err := config.Load(opts.ProjectRoot)
	if err != nil {
		return nil, err
	}

	comp, err := compiler.Compile(cfg)
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("steps", len(comp.Steps)).Msg("Inspect compiled token set")
	return &Result{Compilation: comp}, nil
}

// JSON renders the compiled token set as machine-readable JSON
func (r *Result) JSON() (string, error) {
	c := r.Compilation

	v := view{
		Unit:    c.Unit,
		Weights: make(map[string]int),
		Layers:  make(map[string]int),
		Themes:  make(map[string]string),
	}
	for _, step := range c.Steps {
		v.Steps = append(v.Steps, stepView{
			Step:       step.Index,
			FontSize:   step.FontSize,
			LineHeight: step.LineHeight,
		})
	}
	for _, w := range c.Weights.All() {
		v.Weights[w.Label] = w.Value
	}
	for _, layer := range c.Layers.All() {
		v.Layers[layer.Label] = layer.Value
	}
	for _, s := range c.Styles {
		v.Styles = append(v.Styles, styleView{
			Role:   s.Role,
			Step:   s.Step.Index,
			Weight: s.Weight,
			Family: s.FamilyLabel,
		})
	}
	for _, tv := range c.Themes.Light.Variables() {
		v.Themes[tv.Name] = tv.Value
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal inspect output")
	}
	return string(out), nil
}
