// Package paths provides centralized path handling for quire.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/mvieira/quire/pkg/errors"
)

// Environment variable names
const (
	// EnvProjectRoot is the primary environment variable for the project location
	EnvProjectRoot = "QUIRE_ROOT"

	// EnvDataDir overrides the XDG data directory for quire
	EnvDataDir = "QUIRE_DATA_DIR"

	// EnvCacheDir overrides the XDG cache directory for quire
	EnvCacheDir = "QUIRE_CACHE_DIR"
)

// Default directories and files
const (
	// QuireDirName is the directory name for quire-specific files
	QuireDirName = "quire"

	// ConfigFileName is the primary name of the project token definition
	ConfigFileName = "quire.toml"

	// AltConfigFileName is the hidden variant of the token definition
	AltConfigFileName = ".quire.toml"

	// LogFileName is the name of the log file
	LogFileName = "quire.log"

	// DefaultStylesheetName is the default output file for css format
	DefaultStylesheetName = "_tokens.css"

	// DefaultSpecimenName is the default output file for the SVG specimen
	DefaultSpecimenName = "specimen.svg"
)

// Paths provides centralized path management for quire
type Paths struct {
	projectRoot  string
	usedFallback bool
}

// New creates a Paths instance rooted at the given directory.
// An empty root falls back to QUIRE_ROOT, then to the current directory.
func New(root string) (*Paths, error) {
	usedFallback := false
	if root == "" {
		root = os.Getenv(EnvProjectRoot)
	}
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrNotFound, "cannot determine project root")
		}
		root = cwd
		usedFallback = true
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid project root: %s", root)
	}

	return &Paths{projectRoot: abs, usedFallback: usedFallback}, nil
}

// ProjectRoot returns the absolute project root directory
func (p *Paths) ProjectRoot() string {
	return p.projectRoot
}

// UsedFallback reports whether the root came from the cwd fallback
// rather than an explicit flag or QUIRE_ROOT
func (p *Paths) UsedFallback() bool {
	return p.usedFallback
}

// ConfigPath returns the path of the project token definition.
// It prefers quire.toml, then .quire.toml; when neither exists it
// returns the primary name so callers get a sensible create target.
func (p *Paths) ConfigPath() string {
	for _, name := range []string{ConfigFileName, AltConfigFileName} {
		candidate := filepath.Join(p.projectRoot, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return filepath.Join(p.projectRoot, ConfigFileName)
}

// HasConfig reports whether a project token definition exists
func (p *Paths) HasConfig() bool {
	for _, name := range []string{ConfigFileName, AltConfigFileName} {
		if _, err := os.Stat(filepath.Join(p.projectRoot, name)); err == nil {
			return true
		}
	}
	return false
}

// OutputPath resolves an output path against the project root.
// Absolute paths pass through unchanged.
func (p *Paths) OutputPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.projectRoot, path)
}

// DataDir returns the quire data directory
func DataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.DataHome, QuireDirName)
}

// CacheDir returns the quire cache directory
func CacheDir() string {
	if dir := os.Getenv(EnvCacheDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.CacheHome, QuireDirName)
}

// StateDir returns the quire state directory
func StateDir() string {
	return filepath.Join(xdg.StateHome, QuireDirName)
}

// LogFilePath returns the path of the log file under the state directory
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}
