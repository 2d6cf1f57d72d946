// Package config loads the CLI's optional TOML configuration file, in the
// BurntSushi/toml unmarshal-into-struct style of
// dekarrin-tunaq/server/config.go. Nothing in the translator core reads
// this package; it exists only to give the command-line front end a place
// to set defaults for flags a user doesn't want to repeat on every
// invocation.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/exesaLigno/BuchiSolver/errs"
)

// Config holds the CLI defaults that can be overridden by flags.
type Config struct {
	ReverseMask bool   `toml:"reverse_mask"`
	MaxStates   int    `toml:"max_states"`
	OutputDir   string `toml:"output_dir"`
	Verbose     bool   `toml:"verbose"`
}

// Default returns the built-in configuration used when no file is given.
func Default() Config {
	return Config{OutputDir: "."}
}

// Load reads and unmarshals the TOML file at path on top of Default(). A
// missing path is not an error the way a malformed one is: the CLI treats
// "no config file" as "use defaults", mirroring how most of its flags are
// already optional.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, &errs.IOError{Op: "read config", Path: path, Err: err}
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, &errs.IOError{Op: "parse config", Path: path, Err: err}
	}
	return cfg, nil
}
