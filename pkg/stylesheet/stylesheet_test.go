package stylesheet

import (
	"strings"
	"testing"

	"github.com/mvieira/quire/pkg/compiler"
	"github.com/mvieira/quire/pkg/config"
	"github.com/mvieira/quire/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileDefaults(t *testing.T) *compiler.Compilation {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	comp, err := compiler.Compile(cfg)
	require.NoError(t, err)
	return comp
}

func TestRender_CSSContainsScaleVariables(t *testing.T) {
	out := Render(compileDefaults(t), FormatCSS)

	assert.True(t, strings.HasPrefix(out, "/* Generated by quire."))
	assert.Contains(t, out, ":root {")
	assert.Contains(t, out, "--font-size-0: 1rem;")
	assert.Contains(t, out, "--font-size-2: 1.26563rem;") // 1.125^2 rounded
	assert.Contains(t, out, "--font-size-minus2: 0.79012rem;")
	assert.Contains(t, out, "--line-height-0: 1.5;")
}

func TestRender_CSSContainsTokenTables(t *testing.T) {
	out := Render(compileDefaults(t), FormatCSS)

	assert.Contains(t, out, "--font-weight-bold: 700;")
	assert.Contains(t, out, "--font-weight-light: 300;")
	assert.Contains(t, out, "--font-family-mono:")
	assert.Contains(t, out, "--z-modal: 400;")
	assert.Contains(t, out, "--transition-duration: 150ms;")
	assert.Contains(t, out,
		"--transition-base: color var(--transition-duration) ease-in-out, background-color var(--transition-duration) ease-in-out")
}

func TestRender_ThemeBlocks(t *testing.T) {
	out := Render(compileDefaults(t), FormatCSS)

	assert.Contains(t, out, "--background: #ffffff;")
	assert.Contains(t, out, `[data-theme="dark"] {`)
	assert.Contains(t, out, "--background: #100f0f;")

	// Dark block must come after :root and override the same names
	rootIdx := strings.Index(out, ":root {")
	darkIdx := strings.Index(out, `[data-theme="dark"] {`)
	assert.Greater(t, darkIdx, rootIdx)
}

func TestRender_StepRulesPublishLineHeight(t *testing.T) {
	out := Render(compileDefaults(t), FormatCSS)

	assert.Contains(t, out, ".text-minus1 {")
	assert.Contains(t, out, ".text-4 {")
	assert.Contains(t, out, "--line-height: var(--line-height-4);")
	assert.Contains(t, out, ".flow > * + * {")
	assert.Contains(t, out, "calc(var(--line-height, 1.5) * 0.5em)")
}

func TestRender_StyleRules(t *testing.T) {
	out := Render(compileDefaults(t), FormatCSS)

	assert.Contains(t, out, ".style-heading {")
	assert.Contains(t, out, "font-weight: var(--font-weight-bold);")
	assert.Contains(t, out, "font-family: var(--font-family-serif);") // body style
	assert.Contains(t, out, "font-size: 1.42383rem;")                 // 1.125^3 rounded
}

func TestRender_SCSSHasVariablePreamble(t *testing.T) {
	out := Render(compileDefaults(t), FormatSCSS)

	assert.Contains(t, out, "$base-size: 1rem;")
	assert.Contains(t, out, "$scale-ratio: 1.125;")
	assert.Contains(t, out, "$font-size-minus2: 0.79012rem;")
	assert.Contains(t, out, "$font-weight-bold: 700;")
	assert.Contains(t, out, "$z-toast: 500;")
	// SCSS still carries the custom property blocks
	assert.Contains(t, out, ":root {")
}

func TestRender_CSSHasNoSCSSVariables(t *testing.T) {
	out := Render(compileDefaults(t), FormatCSS)
	assert.NotContains(t, out, "$base-size")
}

func TestRender_Deterministic(t *testing.T) {
	comp := compileDefaults(t)
	first := Render(comp, FormatCSS)
	second := Render(comp, FormatCSS)
	assert.Equal(t, first, second)

	// A fresh compilation of the same config renders identically too
	assert.Equal(t, first, Render(compileDefaults(t), FormatCSS))
}

func TestRender_NoTrailingCommaInTransitionList(t *testing.T) {
	out := Render(compileDefaults(t), FormatCSS)
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "--transition-base:") {
			assert.False(t, strings.HasSuffix(strings.TrimSuffix(line, ";"), ","))
		}
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("scss")
	require.NoError(t, err)
	assert.Equal(t, FormatSCSS, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSS, f)

	_, err = ParseFormat("less")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInvalidInput))
}

func TestStepIDSpelling(t *testing.T) {
	out := Render(compileDefaults(t), FormatCSS)
	assert.NotContains(t, out, "--font-size--") // no bare negative suffix
}

func TestFormatLength(t *testing.T) {
	assert.Equal(t, "1.26563rem", FormatLength(1.265625, "rem"))
	assert.Equal(t, "1.5", FormatRatio(1.5))
}
