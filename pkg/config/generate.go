package config

import (
	"github.com/mvieira/quire/pkg/errors"
	gotoml "github.com/pelletier/go-toml/v2"
)

// MarshalResolved renders the fully merged configuration back to TOML,
// used by `gen-config --resolved` so authors can see the effective
// token set after layering.
func MarshalResolved(cfg *Config) (string, error) {
	out, err := gotoml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal resolved config")
	}
	return string(out), nil
}
