package compiler

import (
	"testing"

	"github.com/mvieira/quire/pkg/config"
	"github.com/mvieira/quire/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return cfg
}

func TestCompile_Defaults(t *testing.T) {
	comp, err := Compile(defaultConfig(t))
	require.NoError(t, err)

	assert.Len(t, comp.Steps, 7) // steps -2..4
	assert.Equal(t, "rem", comp.Unit)
	assert.NotNil(t, comp.Weights)
	assert.NotNil(t, comp.Families)
	assert.NotNil(t, comp.Layers)
	assert.NotNil(t, comp.Themes)
	assert.Contains(t, comp.TransitionList, "color var(--transition-duration) ease-in-out")
	assert.Equal(t, "150ms", comp.TransitionDuration)

	require.NotEmpty(t, comp.Styles)
	// Roles come out sorted
	for i := 1; i < len(comp.Styles); i++ {
		assert.Less(t, comp.Styles[i-1].Role, comp.Styles[i].Role)
	}
}

func TestCompile_ResolvesStyleLabels(t *testing.T) {
	comp, err := Compile(defaultConfig(t))
	require.NoError(t, err)

	var heading *ResolvedStyle
	for i := range comp.Styles {
		if comp.Styles[i].Role == "heading" {
			heading = &comp.Styles[i]
		}
	}
	require.NotNil(t, heading)
	assert.Equal(t, 700, heading.Weight)
	assert.Equal(t, "bold", heading.WeightLabel)
	assert.Contains(t, heading.FamilyStack, "sans-serif")
	assert.Equal(t, 3, heading.Step.Index)
	assert.InDelta(t, 1.423828125, heading.Step.FontSize, 1e-9) // 1.125^3
}

func TestCompile_UnknownWeightLabel(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Styles["heading"] = config.TextStyle{Step: 3, Weight: "ultra", Family: "sans"}

	_, err := Compile(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfigValid))
	assert.Contains(t, err.Error(), `"ultra"`)
}

func TestCompile_UnknownFamilyLabel(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Styles["body"] = config.TextStyle{Step: 0, Weight: "regular", Family: "comic"}

	_, err := Compile(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"comic"`)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Typography.Ratio = 0.9 // scale error
	cfg.Themes.Dark = map[string]string{"background": "#000"}
	cfg.Styles["caption"] = config.TextStyle{Step: -1, Weight: "ultra", Family: "sans"}

	errs := Validate(cfg)
	// scale + theme parity errors; the style error is skipped because
	// the scale failed, so at least two must be reported
	require.GreaterOrEqual(t, len(errs), 2)

	var sawScale, sawTheme bool
	for _, err := range errs {
		if errors.IsCode(err, errors.ErrScaleInvalid) {
			sawScale = true
		}
		if errors.IsCode(err, errors.ErrConfigValid) {
			sawTheme = true
		}
	}
	assert.True(t, sawScale)
	assert.True(t, sawTheme)
}

func TestValidate_CleanConfig(t *testing.T) {
	assert.Empty(t, Validate(defaultConfig(t)))
}

func TestCompile_EmptyTransitionProperties(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Transitions.Properties = nil

	_, err := Compile(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfigValid))
}

func TestCompile_StyleStepOutsideEmittedRange(t *testing.T) {
	// The scale is total over all integers; a style may use a step
	// beyond the emitted range.
	cfg := defaultConfig(t)
	cfg.Styles["display"] = config.TextStyle{Step: 8, Weight: "black", Family: "sans"}

	comp, err := Compile(cfg)
	require.NoError(t, err)

	var display *ResolvedStyle
	for i := range comp.Styles {
		if comp.Styles[i].Role == "display" {
			display = &comp.Styles[i]
		}
	}
	require.NotNil(t, display)
	assert.Greater(t, display.Step.FontSize, comp.Steps[len(comp.Steps)-1].FontSize)
}
