// Package config loads the optional parcentre.toml config file.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/pulsarkit/parcentre/internal/messages"
)

// Config holds user defaults for the transform. Zero values mean "not set";
// command-line flags always win over config values.
type Config struct {
	// Output overrides the default output file name.
	Output string `toml:"output"`
	// DiffLines overrides the default diff line cap.
	DiffLines int `toml:"diff-lines"`
	// Ignore lists parameter names appended to the built-in ignore list.
	Ignore []string `toml:"ignore"`
}

// Load reads and validates a parcentre.toml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return Parse(data, path)
}

// Parse parses and validates config TOML data from a source identifier.
// data is the TOML content; source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf(messages.ConfigUnrecognizedKeysFmt, source, err)
	}
	if cfg.DiffLines < 0 {
		return nil, fmt.Errorf(messages.ConfigDiffLinesInvalidFmt, source, cfg.DiffLines)
	}
	return &cfg, nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
// This catches keys that toml.Unmarshal silently ignores.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}
