// Package specimen implements the specimen command: write an SVG
// specimen sheet, or render a markdown specimen for the terminal.
package specimen

import (
	"github.com/charmbracelet/glamour"
	"github.com/mvieira/quire/pkg/compiler"
	"github.com/mvieira/quire/pkg/config"
	"github.com/mvieira/quire/pkg/logging"
	"github.com/mvieira/quire/pkg/paths"
	specimenpkg "github.com/mvieira/quire/pkg/specimen"
	"github.com/mvieira/quire/pkg/writer"
)

// Options holds options for the specimen command
type Options struct {
	ProjectRoot string
	OutputPath  string // SVG target; empty uses the default name
	Preview     bool   // render markdown for the terminal instead of writing SVG
	PreviewWide int    // word-wrap width for preview (0 = glamour default)
	DryRun      bool
}

// Result reports what the command produced
type Result struct {
	SpecimenPath string
	Preview      string
	DryRun       bool
}

// Generate produces the specimen output
func Generate(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.specimen")

	cfg, err := config.Load(opts.ProjectRoot)
	if err != nil {
		return nil, err
	}
	comp, err := compiler.Compile(cfg)
	if err != nil {
		return nil, err
	}

	if opts.Preview {
		rendered := renderMarkdown(specimenpkg.Markdown(comp), opts.PreviewWide)
		return &Result{Preview: rendered, DryRun: opts.DryRun}, nil
	}

	svg, err := specimenpkg.SVG(comp)
	if err != nil {
		return nil, err
	}

	p, err := paths.New(opts.ProjectRoot)
	if err != nil {
		return nil, err
	}
	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = paths.DefaultSpecimenName
	}
	target := p.OutputPath(outputPath)

	w := writer.New(opts.DryRun)
	if err := w.Execute([]writer.Operation{
		writer.WriteFile(target, svg, "write specimen"),
	}); err != nil {
		return nil, err
	}

	logger.Info().Str("path", target).Bool("dryRun", opts.DryRun).Msg("Specimen written")
	return &Result{SpecimenPath: target, DryRun: opts.DryRun}, nil
}

// renderMarkdown converts markdown to terminal output, falling back to
// the plain text on renderer errors.
func renderMarkdown(content string, width int) string {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
