// Package build implements the build command: compile the token
// definition and write the stylesheet (and optionally the specimen).
package build

import (
	"path/filepath"

	"github.com/mvieira/quire/pkg/compiler"
	"github.com/mvieira/quire/pkg/config"
	"github.com/mvieira/quire/pkg/logging"
	"github.com/mvieira/quire/pkg/paths"
	"github.com/mvieira/quire/pkg/specimen"
	"github.com/mvieira/quire/pkg/stylesheet"
	"github.com/mvieira/quire/pkg/writer"
)

// Options holds options for the build command
type Options struct {
	ProjectRoot  string
	OutputPath   string // overrides the configured output path
	Format       string // overrides the configured format
	WithSpecimen bool
	DryRun       bool
}

// Result reports what a build produced
type Result struct {
	StylesheetPath string
	SpecimenPath   string
	Format         stylesheet.Format
	Bytes          int
	DryRun         bool
}

// Build compiles the project's token definition and writes the outputs
func Build(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.build")

	cfg, err := config.Load(opts.ProjectRoot)
	if err != nil {
		return nil, err
	}

	comp, err := compiler.Compile(cfg)
	if err != nil {
		return nil, err
	}

	formatName := cfg.Output.Format
	if opts.Format != "" {
		formatName = opts.Format
	}
	format, err := stylesheet.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	outputPath := cfg.Output.Path
	if opts.OutputPath != "" {
		outputPath = opts.OutputPath
	}

	p, err := paths.New(opts.ProjectRoot)
	if err != nil {
		return nil, err
	}
	target := p.OutputPath(outputPath)

	content := stylesheet.Render(comp, format)

	ops := []writer.Operation{}
	if dir := filepath.Dir(target); dir != p.ProjectRoot() {
		ops = append(ops, writer.CreateDir(dir, "create output directory"))
	}
	ops = append(ops, writer.WriteFile(target, []byte(content), "write stylesheet"))

	result := &Result{
		StylesheetPath: target,
		Format:         format,
		Bytes:          len(content),
		DryRun:         opts.DryRun,
	}

	if opts.WithSpecimen {
		svg, err := specimen.SVG(comp)
		if err != nil {
			return nil, err
		}
		specimenTarget := p.OutputPath(paths.DefaultSpecimenName)
		ops = append(ops, writer.WriteFile(specimenTarget, svg, "write specimen"))
		result.SpecimenPath = specimenTarget
	}

	w := writer.New(opts.DryRun)
	if err := w.Execute(ops); err != nil {
		return nil, err
	}

	logger.Info().
		Str("stylesheet", target).
		Str("format", format.String()).
		Bool("dryRun", opts.DryRun).
		Msg("Build complete")

	return result, nil
}
