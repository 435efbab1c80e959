// Package tokens defines the closed lookup tables for named design
// tokens: font weights, font families, and z-index layers.
//
// Tables are closed: every label is registered at construction time,
// and a lookup with an unregistered label is an authoring error that
// fails the build with UNKNOWN_TOKEN. There is no silent default.
package tokens

import (
	"sort"

	"github.com/agnivade/levenshtein"
	"github.com/mvieira/quire/pkg/errors"
)

// maxSuggestionDistance bounds how far a typo can be from a known
// label before we stop suggesting it.
const maxSuggestionDistance = 3

// Weight is one named font-weight entry.
type Weight struct {
	Label string
	Value int
}

// Family is one named font-family entry.
type Family struct {
	Label string
	Stack string
}

// Layer is one named z-index entry.
type Layer struct {
	Label string
	Value int
}

// WeightTable maps weight labels to numeric CSS weights.
type WeightTable struct {
	weights map[string]int
}

// NewWeightTable validates and builds a closed weight table.
func NewWeightTable(weights map[string]int) (*WeightTable, error) {
	if len(weights) == 0 {
		return nil, errors.New(errors.ErrTokenInvalid, "weight table must not be empty")
	}
	for label, value := range weights {
		if label == "" {
			return nil, errors.New(errors.ErrTokenInvalid, "weight label must not be empty")
		}
		if value < 1 || value > 1000 {
			return nil, errors.Newf(errors.ErrTokenInvalid,
				"weight %q must be in [1, 1000], got %d", label, value)
		}
	}
	return &WeightTable{weights: weights}, nil
}

// Lookup returns the numeric weight for a label
func (t *WeightTable) Lookup(label string) (int, error) {
	value, ok := t.weights[label]
	if !ok {
		return 0, unknownToken("weights", label, labelsOf(t.weights))
	}
	return value, nil
}

// All returns the entries sorted by numeric value, then label
func (t *WeightTable) All() []Weight {
	entries := make([]Weight, 0, len(t.weights))
	for label, value := range t.weights {
		entries = append(entries, Weight{Label: label, Value: value})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value < entries[j].Value
		}
		return entries[i].Label < entries[j].Label
	})
	return entries
}

// FamilyTable maps family labels to font-stack strings.
type FamilyTable struct {
	families map[string]string
}

// NewFamilyTable validates and builds a closed family table.
func NewFamilyTable(families map[string]string) (*FamilyTable, error) {
	if len(families) == 0 {
		return nil, errors.New(errors.ErrTokenInvalid, "family table must not be empty")
	}
	for label, stack := range families {
		if label == "" {
			return nil, errors.New(errors.ErrTokenInvalid, "family label must not be empty")
		}
		if stack == "" {
			return nil, errors.Newf(errors.ErrTokenInvalid, "family %q has an empty font stack", label)
		}
	}
	return &FamilyTable{families: families}, nil
}

// Lookup returns the font stack for a label
func (t *FamilyTable) Lookup(label string) (string, error) {
	stack, ok := t.families[label]
	if !ok {
		return "", unknownToken("families", label, labelsOfStr(t.families))
	}
	return stack, nil
}

// All returns the entries sorted by label
func (t *FamilyTable) All() []Family {
	entries := make([]Family, 0, len(t.families))
	for label, stack := range t.families {
		entries = append(entries, Family{Label: label, Stack: stack})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Label < entries[j].Label })
	return entries
}

// LayerTable maps layer labels to z-index stacking values.
type LayerTable struct {
	layers map[string]int
}

// NewLayerTable validates and builds a closed layer table.
func NewLayerTable(layers map[string]int) (*LayerTable, error) {
	if len(layers) == 0 {
		return nil, errors.New(errors.ErrTokenInvalid, "layer table must not be empty")
	}
	seen := make(map[int]string, len(layers))
	for label, value := range layers {
		if label == "" {
			return nil, errors.New(errors.ErrTokenInvalid, "layer label must not be empty")
		}
		if other, dup := seen[value]; dup {
			return nil, errors.Newf(errors.ErrTokenInvalid,
				"layers %q and %q share z-index %d", other, label, value)
		}
		seen[value] = label
	}
	return &LayerTable{layers: layers}, nil
}

// Lookup returns the z-index for a label
func (t *LayerTable) Lookup(label string) (int, error) {
	value, ok := t.layers[label]
	if !ok {
		return 0, unknownToken("layers", label, labelsOf(t.layers))
	}
	return value, nil
}

// All returns the entries sorted by stacking order
func (t *LayerTable) All() []Layer {
	entries := make([]Layer, 0, len(t.layers))
	for label, value := range t.layers {
		entries = append(entries, Layer{Label: label, Value: value})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Value < entries[j].Value })
	return entries
}

// unknownToken builds the fail-fast lookup error, suggesting the
// closest registered label when one is plausibly a typo.
func unknownToken(table, label string, known []string) error {
	err := errors.Newf(errors.ErrUnknownToken, "unknown %s label %q", table, label).
		WithDetail("table", table).
		WithDetail("label", label)

	if suggestion := nearest(label, known); suggestion != "" {
		err.Message += ` (did you mean "` + suggestion + `"?)`
		err = err.WithDetail("suggestion", suggestion)
	}
	return err
}

// nearest returns the known label closest to the input by edit
// distance, or "" when nothing is close enough to suggest.
func nearest(label string, known []string) string {
	sort.Strings(known)
	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, candidate := range known {
		if d := levenshtein.ComputeDistance(label, candidate); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}

func labelsOf(m map[string]int) []string {
	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	return labels
}

func labelsOfStr(m map[string]string) []string {
	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	return labels
}
