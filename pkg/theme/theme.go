// Package theme models the light/dark variable tables.
//
// A theme is an ordered set of named values (colors, surfaces). The
// light and dark themes of a pair must define exactly the same keys so
// that switching display modes can never dereference a missing
// variable; a mismatch is an authoring error caught at build time.
package theme

import (
	"sort"
	"strings"

	"github.com/mvieira/quire/pkg/errors"
)

// Theme names of the standard pair.
const (
	Light = "light"
	Dark  = "dark"
)

// Variable is one named theme value.
type Variable struct {
	Name  string
	Value string
}

// Theme is a named, ordered variable table.
type Theme struct {
	Name      string
	variables []Variable
}

// New builds a theme with variables in sorted name order, so emission
// is deterministic regardless of map iteration.
func New(name string, vars map[string]string) (*Theme, error) {
	if len(vars) == 0 {
		return nil, errors.Newf(errors.ErrConfigValid, "theme %q defines no variables", name)
	}
	variables := make([]Variable, 0, len(vars))
	for varName, value := range vars {
		if varName == "" {
			return nil, errors.Newf(errors.ErrConfigValid, "theme %q has a variable with an empty name", name)
		}
		if strings.TrimSpace(value) == "" {
			return nil, errors.Newf(errors.ErrConfigValid, "theme %q variable %q has an empty value", name, varName)
		}
		variables = append(variables, Variable{Name: varName, Value: value})
	}
	sort.Slice(variables, func(i, j int) bool { return variables[i].Name < variables[j].Name })
	return &Theme{Name: name, variables: variables}, nil
}

// Variables returns the ordered variable list
func (t *Theme) Variables() []Variable {
	return t.variables
}

// Lookup returns the value of a named variable
func (t *Theme) Lookup(name string) (string, error) {
	for _, v := range t.variables {
		if v.Name == name {
			return v.Value, nil
		}
	}
	return "", errors.Newf(errors.ErrUnknownToken, "theme %q has no variable %q", t.Name, name).
		WithDetail("theme", t.Name).
		WithDetail("variable", name)
}

// Pair couples the light theme with its dark counterpart.
type Pair struct {
	Light *Theme
	Dark  *Theme
}

// NewPair validates that both themes define the same key set.
func NewPair(light, dark map[string]string) (*Pair, error) {
	lightTheme, err := New(Light, light)
	if err != nil {
		return nil, err
	}
	darkTheme, err := New(Dark, dark)
	if err != nil {
		return nil, err
	}

	if missing := missingKeys(light, dark); len(missing) > 0 {
		return nil, errors.Newf(errors.ErrConfigValid,
			"dark theme is missing variables defined by light: %s", strings.Join(missing, ", "))
	}
	if extra := missingKeys(dark, light); len(extra) > 0 {
		return nil, errors.Newf(errors.ErrConfigValid,
			"dark theme defines variables unknown to light: %s", strings.Join(extra, ", "))
	}

	return &Pair{Light: lightTheme, Dark: darkTheme}, nil
}

// missingKeys returns the keys of want absent from have, sorted.
func missingKeys(want, have map[string]string) []string {
	var missing []string
	for key := range want {
		if _, ok := have[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
