// Package genconfig implements the gen-config command.
package genconfig

import (
	"os"
	"path/filepath"

	"github.com/mvieira/quire/pkg/config"
	"github.com/mvieira/quire/pkg/errors"
	"github.com/mvieira/quire/pkg/logging"
	"github.com/mvieira/quire/pkg/paths"
)

// Options holds options for the gen-config command
type Options struct {
	ProjectRoot string
	Write       bool
	Resolved    bool // dump the merged effective config instead of the template
}

// Result reports what gen-config produced
type Result struct {
	ConfigContent string
	FileWritten   string
}

// GenConfig outputs or writes the configuration template. With
// Resolved set it dumps the fully merged effective configuration.
func GenConfig(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.genconfig")

	var content string
	if opts.Resolved {
		cfg, err := config.Load(opts.ProjectRoot)
		if err != nil {
			return nil, err
		}
		resolved, err := config.MarshalResolved(cfg)
		if err != nil {
			return nil, err
		}
		content = resolved
	} else {
		content = config.GetTemplateContent()
	}

	result := &Result{ConfigContent: content}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	p, err := paths.New(opts.ProjectRoot)
	if err != nil {
		return nil, err
	}
	targetPath := filepath.Join(p.ProjectRoot(), paths.ConfigFileName)

	// Never clobber an existing definition
	if _, err := os.Stat(targetPath); err == nil {
		return nil, errors.Newf(errors.ErrInvalidInput, "config file already exists: %s", targetPath)
	}

	if err := os.WriteFile(targetPath, []byte(content), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config to %s", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FileWritten = targetPath
	return result, nil
}
