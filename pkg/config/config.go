// Package config loads the optional per-project generator defaults.
package config

import (
	"path/filepath"

	"github.com/arthur-debert/langgen/pkg/errors"
	"github.com/arthur-debert/langgen/pkg/logging"
	"github.com/arthur-debert/langgen/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
)

// FileName is the optional project-level configuration file, read from
// the host project root. It only supplies defaults for CLI flags; the
// generation plans themselves are never derived from it.
const FileName = ".langgen.toml"

// Config represents the generator defaults from .langgen.toml
type Config struct {
	// Registration is the default registration strategy
	// ("centralized" or "standalone")
	Registration string `toml:"registration"`
	// Parser is the default parser strategy
	// ("handwritten" or "grammar")
	Parser string `toml:"parser"`
	// Protect makes runs fail on existing generated artifacts instead
	// of overwriting them
	Protect bool `toml:"protect"`
}

// Default returns the configuration used when no project file exists.
// The defaults mirror the original generator: overwrite on re-run,
// hand-written parser, centralized registration.
func Default() Config {
	return Config{
		Registration: "centralized",
		Parser:       "handwritten",
		Protect:      false,
	}
}

// Load reads FileName from the project root. A missing file is not an
// error; it yields the defaults. A malformed file is an ErrConfigParse.
func Load(fsys types.FS, root string) (Config, error) {
	log := logging.GetLogger("config")
	cfg := Default()

	path := filepath.Join(root, FileName)
	data, err := fsys.ReadFile(path)
	if err != nil {
		log.Debug().Str("path", path).Msg("No project config, using defaults")
		return cfg, nil
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}

	log.Debug().
		Str("registration", cfg.Registration).
		Str("parser", cfg.Parser).
		Bool("protect", cfg.Protect).
		Msg("Loaded project config")
	return cfg, nil
}
