package style

import (
	"fmt"
	"testing"

	"github.com/mvieira/quire/pkg/compiler"
	"github.com/mvieira/quire/pkg/config"
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

func TestRenderScale(t *testing.T) {
	r := NewTerminalRenderer()
	out, err := r.RenderScale(compileDefaults(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Type scale")
	assert.Contains(t, out, "1rem")
	assert.Contains(t, out, "1.26563rem")
	assert.Contains(t, out, "-2")
}

func TestRenderTokens(t *testing.T) {
	r := NewTerminalRenderer()
	out, err := r.RenderTokens(compileDefaults(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Weights")
	assert.Contains(t, out, "bold")
	assert.Contains(t, out, "700")
	assert.Contains(t, out, "Families")
	assert.Contains(t, out, "monospace")
	assert.Contains(t, out, "Layers")
	assert.Contains(t, out, "toast")
}

func TestRenderStyles(t *testing.T) {
	r := NewTerminalRenderer()
	out, err := r.RenderStyles(compileDefaults(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Text styles")
	assert.Contains(t, out, "heading")
	assert.Contains(t, out, "bold (700)")
}

func TestRenderIssues(t *testing.T) {
	r := NewTerminalRenderer()

	assert.Contains(t, r.RenderIssues(nil), "sound")

	out := r.RenderIssues([]error{
		fmt.Errorf("unknown weight label"),
		fmt.Errorf("ratio must be > 1"),
	})
	assert.Contains(t, out, "2 issue(s) found")
	assert.Contains(t, out, "unknown weight label")
	assert.Contains(t, out, "ratio must be > 1")
}
