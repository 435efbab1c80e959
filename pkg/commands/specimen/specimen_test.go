package specimen

import (
	"path/filepath"
	"testing"

	"github.com/mvieira/quire/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_WritesSVG(t *testing.T) {
	root := testutil.TempProject(t, "")

	result, err := Generate(Options{ProjectRoot: root})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "specimen.svg"), result.SpecimenPath)
	content := testutil.ReadFile(t, result.SpecimenPath)
	assert.Contains(t, content, "<svg")
}

func TestGenerate_CustomOutputPath(t *testing.T) {
	root := testutil.TempProject(t, "")

	result, err := Generate(Options{ProjectRoot: root, OutputPath: "type.svg"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "type.svg"), result.SpecimenPath)
}

func TestGenerate_DryRun(t *testing.T) {
	root := testutil.TempProject(t, "")

	result, err := Generate(Options{ProjectRoot: root, DryRun: true})
	require.NoError(t, err)
	assert.False(t, testutil.FileExists(result.SpecimenPath))
}

func TestGenerate_Preview(t *testing.T) {
	root := testutil.TempProject(t, "")

	result, err := Generate(Options{ProjectRoot: root, Preview: true, PreviewWide: 80})
	require.NoError(t, err)

	assert.Empty(t, result.SpecimenPath)
	assert.Contains(t, result.Preview, "Type specimen")
	assert.Contains(t, result.Preview, "bold")
}

func TestGenerate_InvalidConfig(t *testing.T) {
	root := testutil.TempProject(t, "[typography]\nratio = 0.5\n")

	_, err := Generate(Options{ProjectRoot: root})
	require.Error(t, err)
}
