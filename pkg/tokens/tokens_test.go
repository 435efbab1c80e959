package tokens

import (
	"testing"

	"github.com/mvieira/quire/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultWeights() map[string]int {
	return map[string]int{
		"thin":     100,
		"light":    300,
		"regular":  400,
		"medium":   500,
		"semibold": 600,
		"bold":     700,
		"black":    900,
	}
}

func TestWeightTable_Lookup(t *testing.T) {
	table, err := NewWeightTable(defaultWeights())
	require.NoError(t, err)

	bold, err := table.Lookup("bold")
	require.NoError(t, err)
	assert.Equal(t, 700, bold)

	light, err := table.Lookup("light")
	require.NoError(t, err)
	assert.Equal(t, 300, light)
}

func TestWeightTable_UnknownLabel(t *testing.T) {
	table, err := NewWeightTable(defaultWeights())
	require.NoError(t, err)

	_, err = table.Lookup("ultra")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrUnknownToken))
	assert.Contains(t, err.Error(), `"ultra"`)
	assert.Contains(t, err.Error(), "weights")
}

func TestWeightTable_SuggestsNearestLabel(t *testing.T) {
	table, err := NewWeightTable(defaultWeights())
	require.NoError(t, err)

	_, err = table.Lookup("bodl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "bold"`)
}

func TestWeightTable_Validation(t *testing.T) {
	_, err := NewWeightTable(nil)
	assert.True(t, errors.IsCode(err, errors.ErrTokenInvalid))

	_, err = NewWeightTable(map[string]int{"bold": 7000})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTokenInvalid))

	_, err = NewWeightTable(map[string]int{"": 400})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTokenInvalid))
}

func TestWeightTable_AllSorted(t *testing.T) {
	table, err := NewWeightTable(defaultWeights())
	require.NoError(t, err)

	all := table.All()
	require.Len(t, all, 7)
	assert.Equal(t, Weight{Label: "thin", Value: 100}, all[0])
	assert.Equal(t, Weight{Label: "black", Value: 900}, all[len(all)-1])
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].Value, all[i].Value)
	}
}

func TestFamilyTable_Lookup(t *testing.T) {
	table, err := NewFamilyTable(map[string]string{
		"sans": "Helvetica, Arial, sans-serif",
		"mono": "Menlo, Consolas, monospace",
	})
	require.NoError(t, err)

	stack, err := table.Lookup("mono")
	require.NoError(t, err)
	assert.Equal(t, "Menlo, Consolas, monospace", stack)

	_, err = table.Lookup("serif")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrUnknownToken))
}

func TestFamilyTable_EmptyStack(t *testing.T) {
	_, err := NewFamilyTable(map[string]string{"sans": ""})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTokenInvalid))
}

func TestLayerTable_Lookup(t *testing.T) {
	table, err := NewLayerTable(map[string]int{
		"dropdown": 100,
		"sticky":   200,
		"overlay":  300,
		"modal":    400,
		"toast":    500,
	})
	require.NoError(t, err)

	z, err := table.Lookup("modal")
	require.NoError(t, err)
	assert.Equal(t, 400, z)

	all := table.All()
	require.Len(t, all, 5)
	assert.Equal(t, "dropdown", all[0].Label)
	assert.Equal(t, "toast", all[4].Label)
}

func TestLayerTable_DuplicateValues(t *testing.T) {
	_, err := NewLayerTable(map[string]int{"modal": 400, "overlay": 400})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTokenInvalid))
	assert.Contains(t, err.Error(), "share z-index 400")
}

func TestUnknownToken_NoSuggestionWhenFarAway(t *testing.T) {
	table, err := NewWeightTable(defaultWeights())
	require.NoError(t, err)

	_, err = table.Lookup("xxxxxxxxxx")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}
