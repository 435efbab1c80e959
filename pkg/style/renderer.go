// Package style renders computed token sets for the terminal.
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mvieira/quire/pkg/compiler"
	"github.com/mvieira/quire/pkg/stylesheet"
	"github.com/pterm/pterm"
)

// TerminalRenderer renders inspect output with rich terminal styling
type TerminalRenderer struct {
	width int
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{
		width: 80, // Default width, can be updated
	}
}

// SetWidth updates the terminal width for rendering
func (r *TerminalRenderer) SetWidth(width int) {
	r.width = width
}

// RenderScale renders the computed type scale as a table
func (r *TerminalRenderer) RenderScale(c *compiler.Compilation) (string, error) {
	data := pterm.TableData{{"Step", "Font size", "Line height"}}
	for _, step := range c.Steps {
		data = append(data, []string{
			strconv.Itoa(step.Index),
			stylesheet.FormatLength(step.FontSize, c.Unit),
			stylesheet.FormatRatio(step.LineHeight),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}
	title := TitleStyle.Sprint("Type scale") + "\n"
	return title + table, nil
}

// RenderTokens renders the weight, family, and layer tables
func (r *TerminalRenderer) RenderTokens(c *compiler.Compilation) (string, error) {
	var result strings.Builder

	data := pterm.TableData{{"Weight", "Value"}}
	for _, w := range c.Weights.All() {
		data = append(data, []string{w.Label, strconv.Itoa(w.Value)})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}
	result.WriteString(TitleStyle.Sprint("Weights") + "\n" + table + "\n\n")

	data = pterm.TableData{{"Family", "Stack"}}
	for _, fam := range c.Families.All() {
		data = append(data, []string{fam.Label, fam.Stack})
	}
	table, err = pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}
	result.WriteString(TitleStyle.Sprint("Families") + "\n" + table + "\n\n")

	data = pterm.TableData{{"Layer", "Z-index"}}
	for _, layer := range c.Layers.All() {
		data = append(data, []string{layer.Label, strconv.Itoa(layer.Value)})
	}
	table, err = pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}
	result.WriteString(TitleStyle.Sprint("Layers") + "\n" + table)

	return result.String(), nil
}

// RenderStyles renders the resolved text styles
func (r *TerminalRenderer) RenderStyles(c *compiler.Compilation) (string, error) {
	data := pterm.TableData{{"Role", "Step", "Font size", "Weight", "Family"}}
	for _, s := range c.Styles {
		data = append(data, []string{
			s.Role,
			strconv.Itoa(s.Step.Index),
			stylesheet.FormatLength(s.Step.FontSize, c.Unit),
			fmt.Sprintf("%s (%d)", s.WeightLabel, s.Weight),
			s.FamilyLabel,
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}
	return TitleStyle.Sprint("Text styles") + "\n" + table, nil
}

// RenderIssues renders validation failures, one line per issue
func (r *TerminalRenderer) RenderIssues(errs []error) string {
	if len(errs) == 0 {
		return SuccessStyle.Sprint("Token definition is sound")
	}
	var result strings.Builder
	result.WriteString(ErrorStyle.Sprintf("%d issue(s) found", len(errs)) + "\n")
	for _, err := range errs {
		result.WriteString(fmt.Sprintf("  %s %v\n", ErrorStyle.Sprint("✗"), err))
	}
	return strings.TrimRight(result.String(), "\n")
}
