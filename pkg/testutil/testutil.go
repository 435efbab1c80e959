// Package testutil holds small helpers shared by command tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TempProject creates a temp directory containing the given quire.toml
// content and returns its path. An empty content creates no config
// file, so the project runs on pure defaults.
func TempProject(t *testing.T, configContent string) string {
	t.Helper()
	dir := t.TempDir()
	if configContent != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "quire.toml"), []byte(configContent), 0644))
	}
	return dir
}

// ReadFile reads a file and fails the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

// FileExists reports whether a path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
