package genconfig

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/mvieira/quire/pkg/errors"
	"github.com/mvieira/quire/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenConfig_OutputToStdout(t *testing.T) {
	root := testutil.TempProject(t, "")

	result, err := GenConfig(Options{ProjectRoot: root})
	require.NoError(t, err)

	assert.NotEmpty(t, result.ConfigContent)
	assert.Contains(t, result.ConfigContent, "[typography]")
	assert.Contains(t, result.ConfigContent, "[weights]")
	assert.Empty(t, result.FileWritten)

	// Template values are all commented out
	for _, line := range strings.Split(result.ConfigContent, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "uncommented line: %s", line)
	}
}

func TestGenConfig_Write(t *testing.T) {
	root := testutil.TempProject(t, "")

	result, err := GenConfig(Options{ProjectRoot: root, Write: true})
	require.NoError(t, err)

	expected := filepath.Join(root, "quire.toml")
	assert.Equal(t, expected, result.FileWritten)
	assert.True(t, testutil.FileExists(expected))
}

func TestGenConfig_RefusesToClobber(t *testing.T) {
	root := testutil.TempProject(t, "[typography]\nratio = 1.2\n")

	_, err := GenConfig(Options{ProjectRoot: root, Write: true})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "already exists")
}

func TestGenConfig_Resolved(t *testing.T) {
	root := testutil.TempProject(t, "[typography]\nratio = 1.25\n")

	result, err := GenConfig(Options{ProjectRoot: root, Resolved: true})
	require.NoError(t, err)

	assert.Contains(t, result.ConfigContent, "ratio = 1.25")
	assert.Contains(t, result.ConfigContent, "[weights]")
	// Resolved output is real TOML, not a commented template
	assert.Contains(t, result.ConfigContent, "bold = 700")
}

func TestGenConfig_ResolvedWithBadConfig(t *testing.T) {
	root := testutil.TempProject(t, "[output]\nformat = \"less\"\n")

	_, err := GenConfig(Options{ProjectRoot: root, Resolved: true})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfigValid))
}
