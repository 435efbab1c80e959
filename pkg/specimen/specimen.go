// Package specimen renders the compiled type scale as something you
// can look at: an SVG specimen sheet, or a markdown document for
// terminal preview.
package specimen

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/mvieira/quire/pkg/compiler"
	"github.com/mvieira/quire/pkg/errors"
	"github.com/mvieira/quire/pkg/stylesheet"
)

const (
	svgWidth   = 860
	svgPadding = 40
	sampleText = "The quick brown fox jumps over the lazy dog"
)

// pxPerUnit maps a CSS unit to pixels for SVG sizing.
func pxPerUnit(unit string) float64 {
	switch unit {
	case "rem", "em":
		return 16
	default:
		return 1
	}
}

// SVG renders the specimen sheet: one sample line per scale step,
// largest first, themed with the light variable table.
func SVG(c *compiler.Compilation) ([]byte, error) {
	if len(c.Steps) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "specimen requires at least one scale step")
	}

	background := themeValue(c, "background", "#ffffff")
	foreground := themeValue(c, "text", "#111111")
	fontStack := firstFamily(c)
	px := pxPerUnit(c.Unit)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	svg.CreateAttr("width", fmt.Sprintf("%d", svgWidth))

	rect := svg.CreateElement("rect")
	rect.CreateAttr("x", "0")
	rect.CreateAttr("y", "0")
	rect.CreateAttr("width", "100%")
	rect.CreateAttr("height", "100%")
	rect.CreateAttr("fill", background)

	// Largest step first reads as a classic specimen sheet
	y := float64(svgPadding)
	for i := len(c.Steps) - 1; i >= 0; i-- {
		step := c.Steps[i]
		sizePx := step.FontSize * px
		y += step.LineHeight * sizePx

		text := svg.CreateElement("text")
		text.CreateAttr("x", fmt.Sprintf("%d", svgPadding))
		text.CreateAttr("y", fmt.Sprintf("%.2f", y))
		text.CreateAttr("font-family", fontStack)
		text.CreateAttr("font-size", fmt.Sprintf("%.2f", sizePx))
		text.CreateAttr("fill", foreground)
		text.SetText(fmt.Sprintf("%s  (%s / %s)",
			sampleText,
			stylesheet.FormatLength(step.FontSize, c.Unit),
			stylesheet.FormatRatio(step.LineHeight)))
	}

	svg.CreateAttr("height", fmt.Sprintf("%.0f", y+svgPadding))
	svg.CreateAttr("viewBox", fmt.Sprintf("0 0 %d %.0f", svgWidth, y+svgPadding))

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to serialize specimen SVG")
	}
	return out, nil
}

// Markdown renders the specimen as a document for terminal preview.
func Markdown(c *compiler.Compilation) string {
	var b strings.Builder

	b.WriteString("# Type specimen\n\n")
	fmt.Fprintf(&b, "Base size %s on a %s ratio, steps %d through %d.\n\n",
		stylesheet.FormatLength(c.Scale.BaseSize, c.Unit),
		stylesheet.FormatRatio(c.Scale.Ratio),
		c.Scale.MinStep, c.Scale.MaxStep)

	b.WriteString("| Step | Font size | Line height |\n")
	b.WriteString("|-----:|----------:|------------:|\n")
	for _, step := range c.Steps {
		fmt.Fprintf(&b, "| %d | %s | %s |\n",
			step.Index,
			stylesheet.FormatLength(step.FontSize, c.Unit),
			stylesheet.FormatRatio(step.LineHeight))
	}

	b.WriteString("\n## Weights\n\n")
	for _, w := range c.Weights.All() {
		fmt.Fprintf(&b, "- **%s**: %d\n", w.Label, w.Value)
	}

	b.WriteString("\n## Layers\n\n")
	for _, layer := range c.Layers.All() {
		fmt.Fprintf(&b, "- **%s**: %d\n", layer.Label, layer.Value)
	}

	b.WriteString("\n## Text styles\n\n")
	for _, style := range c.Styles {
		fmt.Fprintf(&b, "- **%s**: step %d, %s %s\n",
			style.Role, style.Step.Index, style.WeightLabel, style.FamilyLabel)
	}

	return b.String()
}

// themeValue looks a variable up in the light theme, with a fallback
// for custom themes that do not define it.
func themeValue(c *compiler.Compilation, name, fallback string) string {
	if c.Themes == nil || c.Themes.Light == nil {
		return fallback
	}
	value, err := c.Themes.Light.Lookup(name)
	if err != nil {
		return fallback
	}
	return value
}

// firstFamily picks the sans stack when present, otherwise the first
// registered family.
func firstFamily(c *compiler.Compilation) string {
	if stack, err := c.Families.Lookup("sans"); err == nil {
		return stack
	}
	all := c.Families.All()
	if len(all) == 0 {
		return "sans-serif"
	}
	return all[0].Stack
}
