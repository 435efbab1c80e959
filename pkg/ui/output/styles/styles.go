// Package styles defines the visual styling for quire's terminal output.
//
// All styles use semantic names and adaptive colors that automatically
// adjust to light and dark terminal themes. This centralized approach
// ensures consistent theming across all command outputs.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// StyleRegistry maps semantic names to lipgloss styles
var StyleRegistry map[string]lipgloss.Style

// Adaptive colors loaded from YAML
var colors map[string]lipgloss.AdaptiveColor

//go:embed styles.yaml
var embeddedStyles []byte

func init() {
	if err := LoadStylesFromData(embeddedStyles); err != nil {
		// Never fail startup over presentation; fall back to plain styles
		initDefaultStyles()
	}
}

// LoadStylesFromData parses a styles configuration and rebuilds the registry
func LoadStylesFromData(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse styles config: %w", err)
	}

	colors = make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	StyleRegistry = make(map[string]lipgloss.Style, len(config.Styles))
	for name, def := range config.Styles {
		StyleRegistry[name] = buildStyle(def)
	}
	return nil
}

// buildStyle converts a StyleDef into a lipgloss style
func buildStyle(def StyleDef) lipgloss.Style {
	style := lipgloss.NewStyle()
	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Foreground != "" {
		style = style.Foreground(resolveColor(def.Foreground))
	}
	if def.Background != "" {
		style = style.Background(resolveColor(def.Background))
	}
	return style
}

// resolveColor maps a named color to its adaptive definition, falling
// back to interpreting the value as a literal color
func resolveColor(name string) lipgloss.TerminalColor {
	if color, ok := colors[name]; ok {
		return color
	}
	return lipgloss.Color(name)
}

// GetStyle returns the style registered under a semantic name.
// Unknown names get an unstyled default so output degrades gracefully.
func GetStyle(name string) lipgloss.Style {
	if style, ok := StyleRegistry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// initDefaultStyles builds a minimal unthemed registry
func initDefaultStyles() {
	StyleRegistry = map[string]lipgloss.Style{
		"Error":   lipgloss.NewStyle().Bold(true),
		"Warning": lipgloss.NewStyle(),
		"Success": lipgloss.NewStyle(),
		"Header":  lipgloss.NewStyle().Bold(true),
		"Muted":   lipgloss.NewStyle(),
		"Key":     lipgloss.NewStyle().Bold(true),
		"Value":   lipgloss.NewStyle(),
	}
}
