// Package stylesheet renders a compiled token set to CSS custom
// properties or an SCSS partial.
//
// Output is deterministic: the same compilation always renders to the
// same bytes. Ordering comes from the compilation itself (steps
// ascending, tables pre-sorted, styles by role).
package stylesheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mvieira/quire/pkg/compiler"
	"github.com/mvieira/quire/pkg/errors"
	"github.com/mvieira/quire/pkg/scale"
)

// Format selects the output flavor.
type Format int

const (
	// FormatCSS emits plain CSS custom properties
	FormatCSS Format = iota
	// FormatSCSS emits an SCSS partial with variables ahead of the
	// custom properties
	FormatSCSS
)

// String returns the canonical name of the format
func (f Format) String() string {
	if f == FormatSCSS {
		return "scss"
	}
	return "css"
}

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "css", "":
		return FormatCSS, nil
	case "scss":
		return FormatSCSS, nil
	default:
		return FormatCSS, errors.Newf(errors.ErrInvalidInput, "unknown stylesheet format: %s", s)
	}
}

const header = "/* Generated by quire. Do not edit by hand. */"

// Render produces the stylesheet text for a compilation.
func Render(c *compiler.Compilation, f Format) string {
	var b strings.Builder

	b.WriteString(header + "\n\n")

	if f == FormatSCSS {
		writeSCSSVariables(&b, c)
	}

	writeRootBlock(&b, c)
	writeDarkBlock(&b, c)
	writeStepRules(&b, c)
	writeRhythmRule(&b)
	writeStyleRules(&b, c)

	return b.String()
}

// writeSCSSVariables emits the SCSS variable preamble.
func writeSCSSVariables(b *strings.Builder, c *compiler.Compilation) {
	fmt.Fprintf(b, "$base-size: %s%s;\n", formatNumber(c.Scale.BaseSize), c.Unit)
	fmt.Fprintf(b, "$scale-ratio: %s;\n", formatNumber(c.Scale.Ratio))
	for _, step := range c.Steps {
		fmt.Fprintf(b, "$font-size-%s: %s%s;\n", stepID(step.Index), formatNumber(step.FontSize), c.Unit)
		fmt.Fprintf(b, "$line-height-%s: %s;\n", stepID(step.Index), formatNumber(step.LineHeight))
	}
	for _, w := range c.Weights.All() {
		fmt.Fprintf(b, "$font-weight-%s: %d;\n", w.Label, w.Value)
	}
	for _, fam := range c.Families.All() {
		fmt.Fprintf(b, "$font-family-%s: %s;\n", fam.Label, fam.Stack)
	}
	for _, layer := range c.Layers.All() {
		fmt.Fprintf(b, "$z-%s: %d;\n", layer.Label, layer.Value)
	}
	b.WriteString("\n")
}

// writeRootBlock emits the :root custom properties, light theme last
// so the dark override block reads as a diff against it.
func writeRootBlock(b *strings.Builder, c *compiler.Compilation) {
	b.WriteString(":root {\n")

	for _, step := range c.Steps {
		fmt.Fprintf(b, "  --font-size-%s: %s%s;\n", stepID(step.Index), formatNumber(step.FontSize), c.Unit)
	}
	for _, step := range c.Steps {
		fmt.Fprintf(b, "  --line-height-%s: %s;\n", stepID(step.Index), formatNumber(step.LineHeight))
	}
	for _, w := range c.Weights.All() {
		fmt.Fprintf(b, "  --font-weight-%s: %d;\n", w.Label, w.Value)
	}
	for _, fam := range c.Families.All() {
		fmt.Fprintf(b, "  --font-family-%s: %s;\n", fam.Label, fam.Stack)
	}
	for _, layer := range c.Layers.All() {
		fmt.Fprintf(b, "  --z-%s: %d;\n", layer.Label, layer.Value)
	}

	fmt.Fprintf(b, "  --transition-duration: %s;\n", c.TransitionDuration)
	fmt.Fprintf(b, "  --transition-base: %s;\n", c.TransitionList)

	for _, v := range c.Themes.Light.Variables() {
		fmt.Fprintf(b, "  --%s: %s;\n", v.Name, v.Value)
	}

	b.WriteString("}\n\n")
}

// writeDarkBlock emits the dark theme override.
func writeDarkBlock(b *strings.Builder, c *compiler.Compilation) {
	b.WriteString(`[data-theme="dark"] {` + "\n")
	for _, v := range c.Themes.Dark.Variables() {
		fmt.Fprintf(b, "  --%s: %s;\n", v.Name, v.Value)
	}
	b.WriteString("}\n\n")
}

// writeStepRules emits one utility rule per step. Each rule also
// republishes the computed line-height as --line-height so sibling
// rhythm rules can reference the same value without recomputation.
func writeStepRules(b *strings.Builder, c *compiler.Compilation) {
	for _, step := range c.Steps {
		id := stepID(step.Index)
		fmt.Fprintf(b, ".text-%s {\n", id)
		fmt.Fprintf(b, "  font-size: var(--font-size-%s);\n", id)
		fmt.Fprintf(b, "  line-height: var(--line-height-%s);\n", id)
		fmt.Fprintf(b, "  --line-height: var(--line-height-%s);\n", id)
		b.WriteString("}\n\n")
	}
}

// writeRhythmRule emits the vertical-rhythm consumer of the published
// --line-height variable.
func writeRhythmRule(b *strings.Builder) {
	b.WriteString(".flow > * + * {\n")
	b.WriteString("  margin-block-start: calc(var(--line-height, 1.5) * 0.5em);\n")
	b.WriteString("}\n\n")
}

// writeStyleRules emits one rule per semantic text style. Sizes are
// literal because a style step may sit outside the emitted range.
func writeStyleRules(b *strings.Builder, c *compiler.Compilation) {
	for _, style := range c.Styles {
		fmt.Fprintf(b, ".style-%s {\n", style.Role)
		fmt.Fprintf(b, "  font-family: var(--font-family-%s);\n", style.FamilyLabel)
		fmt.Fprintf(b, "  font-weight: var(--font-weight-%s);\n", style.WeightLabel)
		fmt.Fprintf(b, "  font-size: %s%s;\n", formatNumber(style.Step.FontSize), c.Unit)
		fmt.Fprintf(b, "  line-height: %s;\n", formatNumber(style.Step.LineHeight))
		fmt.Fprintf(b, "  --line-height: %s;\n", formatNumber(style.Step.LineHeight))
		b.WriteString("}\n\n")
	}
}

// stepID spells a step index for identifiers; negative steps become
// minus<N> because a bare "-2" suffix does not survive inside a
// custom property name scheme.
func stepID(index int) string {
	if index < 0 {
		return "minus" + strconv.Itoa(-index)
	}
	return strconv.Itoa(index)
}

// StepID is the exported identifier spelling, shared with the
// specimen emitter.
func StepID(step scale.Step) string {
	return stepID(step.Index)
}

// formatNumber renders a value rounded to five decimal places with
// trailing zeros trimmed, keeping output stable across platforms.
func formatNumber(v float64) string {
	rounded := math.Round(v*1e5) / 1e5
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// FormatLength renders a size with its unit, for emitters that need
// the same rounding behavior.
func FormatLength(v float64, unit string) string {
	return formatNumber(v) + unit
}

// FormatRatio renders a unitless ratio with the same rounding.
func FormatRatio(v float64) string {
	return formatNumber(v)
}
