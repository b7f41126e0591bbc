// Package config reads the optional application settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the settings file looked up when no --config is given
const DefaultPath = "~/.gointubate/config.toml"

// Config holds the application settings. Every field is optional in the
// file; absent fields keep the values from Default.
type Config struct {
	Render  Render  `toml:"render"`
	Store   Store   `toml:"store"`
	Presets Presets `toml:"presets"`
	Log     Log     `toml:"log"`
}

// Render controls image output
type Render struct {
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	Factor      float64 `toml:"factor"`
	XOffset     float64 `toml:"x_offset"`
	YOffset     float64 `toml:"y_offset"`
	Supersample int     `toml:"supersample"`
}

// Store selects where configurations are saved
type Store struct {
	Dir  string `toml:"dir"`
	Name string `toml:"name"`
}

// Presets points at an optional YAML file of extra presets
type Presets struct {
	File string `toml:"file"`
}

// Log sets the default verbosity
type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Render: Render{
			Width:       1600,
			Height:      1200,
			Factor:      5,
			XOffset:     -100,
			YOffset:     -100,
			Supersample: 2,
		},
		Store: Store{
			Dir:  "~/.gointubate",
			Name: "intubationConfig",
		},
		Log: Log{Level: "warn"},
	}
}

// Load reads the settings file at path over the defaults. An empty path
// means DefaultPath. A missing file is not an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to resolve config path %s: %w", path, err)
	}

	data, err := os.ReadFile(expanded)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", expanded, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", expanded, err)
	}
	if cfg.Presets.File != "" && !filepath.IsAbs(cfg.Presets.File) && !isHomeRelative(cfg.Presets.File) {
		cfg.Presets.File = filepath.Join(filepath.Dir(expanded), cfg.Presets.File)
	}
	return cfg, nil
}

// Parse decodes a TOML document over the defaults
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no renderer can work with
func (c Config) Validate() error {
	switch {
	case c.Render.Width <= 0 || c.Render.Height <= 0:
		return fmt.Errorf("render size must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	case c.Render.Factor <= 0:
		return fmt.Errorf("render factor must be positive, got %g", c.Render.Factor)
	case c.Render.Supersample < 1:
		return fmt.Errorf("render supersample must be at least 1, got %d", c.Render.Supersample)
	}
	return nil
}

// Encode renders the settings as TOML, used to print the effective config
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

func isHomeRelative(path string) bool {
	return len(path) > 0 && path[0] == '~'
}
