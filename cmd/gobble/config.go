package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/gobble/format"
)

const defaultConfigFile = ".gobble.toml"

// Config holds the defaults that flags override.
type Config struct {
	Format      string `toml:"format" yaml:"format"`
	ErrorFormat string `toml:"error_format" yaml:"error_format"`
	Color       string `toml:"color" yaml:"color"`
	Verbosity   int    `toml:"verbosity" yaml:"verbosity"`
}

func defaultConfig() Config {
	return Config{
		Format:      "json",
		ErrorFormat: "text",
		Color:       "auto",
	}
}

// loadConfig reads path over the defaults. A missing file is only an
// error when the user named it.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &cfg)
	default:
		_, err = toml.Decode(string(content), &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

var (
	colorModes   = []string{"auto", "always", "never"}
	errorFormats = []string{"text", "json"}
)

func (c Config) Validate() error {
	if !slices.Contains(format.Names, c.Format) {
		return fmt.Errorf("invalid format %q (want one of %v)", c.Format, format.Names)
	}
	if !slices.Contains(errorFormats, c.ErrorFormat) {
		return fmt.Errorf("invalid error format %q (want one of %v)", c.ErrorFormat, errorFormats)
	}
	if !slices.Contains(colorModes, c.Color) {
		return fmt.Errorf("invalid color mode %q (want one of %v)", c.Color, colorModes)
	}
	return nil
}
