// Package check implements the check command: validate the project
// token definition and report every issue found.
package check

import (
	"github.com/mvieira/quire/pkg/compiler"
	"github.com/mvieira/quire/pkg/config"
	"github.com/mvieira/quire/pkg/logging"
)

// Options holds options for the check command
type Options struct {
	ProjectRoot string
}

// Result lists every issue found in the token definition
type Result struct {
	Issues []error
}

// OK reports whether the definition is sound
func (r *Result) OK() bool {
	return len(r.Issues) == 0
}

// Check validates the project token definition. Load and parse
// failures are themselves reported as issues rather than aborting,
// so authors always get a report.
func Check(opts Options) *Result {
	logger := logging.GetLogger("commands.check")

	cfg, err := config.Load(opts.ProjectRoot)
	if err != nil {
		logger.Debug().Err(err).Msg("Config failed to load")
		return &Result{Issues: []error{err}}
	}

	issues := compiler.Validate(cfg)
	logger.Debug().Int("issues", len(issues)).Msg("Validation complete")
	return &Result{Issues: issues}
}
