package inspect

import (
	"encoding/json"
	"testing"

	"github.com/mvieira/quire/pkg/errors"
	"github.com/mvieira/quire/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect_Defaults(t *testing.T) {
	root := testutil.TempProject(t, "")

	result, err := Inspect(Options{ProjectRoot: root})
	require.NoError(t, err)
	assert.Len(t, result.Compilation.Steps, 7)
}

func TestInspect_InvalidConfig(t *testing.T) {
	root := testutil.TempProject(t, "[typography]\nratio = 1.0\n")

	_, err := Inspect(Options{ProjectRoot: root})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrScaleInvalid))
}

func TestJSON_Shape(t *testing.T) {
	root := testutil.TempProject(t, "")

	result, err := Inspect(Options{ProjectRoot: root})
	require.NoError(t, err)

	out, err := result.JSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "rem", decoded["unit"])
	steps, ok := decoded["steps"].([]interface{})
	require.True(t, ok)
	assert.Len(t, steps, 7)

	weights, ok := decoded["weights"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(700), weights["bold"])
}
