package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/mvieira/quire/pkg/errors"
	"github.com/mvieira/quire/pkg/logging"
	"github.com/mvieira/quire/pkg/paths"
)

// envPrefix namespaces the environment override layer. A variable
// QUIRE_OUTPUT_FORMAT maps to the key output.format.
const envPrefix = "QUIRE_"

// Load merges the embedded defaults, the project token definition
// found under projectRoot (quire.toml or .quire.toml), and QUIRE_*
// environment overrides, in that order. A project with no config file
// and no overrides gets the pure defaults.
func Load(projectRoot string) (*Config, error) {
	logger := logging.GetLogger("config")

	p, err := paths.New(projectRoot)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")

	// 1. System defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	// 2. Project file, when present
	configPath := p.ConfigPath()
	if _, statErr := os.Stat(configPath); statErr == nil {
		logger.Debug().Str("path", configPath).Msg("Loading project config")
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to parse project config %s", configPath)
		}
	} else {
		logger.Debug().Str("root", p.ProjectRoot()).Msg("No project config found, using defaults")
	}

	// 3. Environment overrides
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	if err := cfg.ValidateShape(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the embedded defaults decoded into a Config.
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode embedded defaults")
	}
	return &cfg, nil
}
