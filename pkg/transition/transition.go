// Package transition builds CSS transition shorthand lists.
package transition

import (
	"strings"

	"github.com/mvieira/quire/pkg/errors"
)

// Defaults used when a project defines no overrides.
const (
	DefaultDuration = "var(--transition-duration)"
	DefaultEasing   = "ease-in-out"
)

// Builder assembles a transition list where every property shares the
// same duration and easing curve.
type Builder struct {
	Duration string
	Easing   string
}

// NewBuilder returns a Builder, substituting defaults for empty fields.
func NewBuilder(duration, easing string) Builder {
	if duration == "" {
		duration = DefaultDuration
	}
	if easing == "" {
		easing = DefaultEasing
	}
	return Builder{Duration: duration, Easing: easing}
}

// Build produces the comma-joined transition list for the given
// ordered property names. No trailing separator is emitted.
func (b Builder) Build(properties []string) (string, error) {
	if len(properties) == 0 {
		return "", errors.New(errors.ErrInvalidInput, "transition list requires at least one property")
	}

	entries := make([]string, 0, len(properties))
	for _, prop := range properties {
		if strings.TrimSpace(prop) == "" {
			return "", errors.New(errors.ErrInvalidInput, "transition property must not be empty")
		}
		entries = append(entries, prop+" "+b.Duration+" "+b.Easing)
	}
	return strings.Join(entries, ", "), nil
}
