// Package config loads optional slp settings from a TOML file.
package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// Sentinel errors for settings validation
var (
	ErrInvalidLogLevel = goerr.New("invalid log level")
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Settings holds defaults that apply when the matching flag is not given.
// Nil or empty fields mean "not set".
type Settings struct {
	ScenariosFile string `toml:"scenarios_file"`
	Top           *int   `toml:"top"`
	Color         *bool  `toml:"color"`
	JSON          *bool  `toml:"json"`
	LogLevel      string `toml:"log_level"`
}

// Validate checks if the Settings are valid
func (s *Settings) Validate() error {
	if s.LogLevel != "" && !isValidLogLevel(s.LogLevel) {
		return goerr.Wrap(ErrInvalidLogLevel, "unsupported log_level",
			goerr.V("log_level", s.LogLevel),
			goerr.V("allowed", strings.Join(validLogLevels, ", ")),
		)
	}
	return nil
}

// Load reads settings from a TOML file. Unknown keys are rejected.
func Load(path string) (*Settings, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read settings file", goerr.V("path", path))
	}

	var settings Settings
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&settings); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML settings", goerr.V("path", path))
	}

	if err := settings.Validate(); err != nil {
		return nil, goerr.Wrap(err, "settings validation failed", goerr.V("path", path))
	}

	return &settings, nil
}

func isValidLogLevel(level string) bool {
	level = strings.ToLower(level)
	for _, l := range validLogLevels {
		if l == level {
			return true
		}
	}
	return false
}
