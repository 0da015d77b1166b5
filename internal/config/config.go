// Package config loads gutterpad's YAML configuration.
//
// A config file only needs to name the values it changes; everything else
// keeps the defaults from Default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user config directory.
const FileName = "config.yaml"

var (
	ErrUnknownWrapMode = errors.New("unknown wrap mode")
	ErrInvalidTabWidth = errors.New("tab width must be between 1 and 16")
	ErrInvalidMargin   = errors.New("gutter margin must be at least 1")
	ErrInvalidColor    = errors.New("invalid color")
)

// Wrap mode names accepted in config files and on the command line.
const (
	WrapNone     = "none"
	WrapWord     = "word"
	WrapGrapheme = "grapheme"
)

type Config struct {
	Editor Editor `yaml:"editor"`
	Theme  Theme  `yaml:"theme"`
	Log    Log    `yaml:"log"`
}

type Editor struct {
	TabWidth     int    `yaml:"tab-width"`
	Wrap         string `yaml:"wrap"`
	Overwrite    bool   `yaml:"overwrite"`
	ReadOnly     bool   `yaml:"read-only"`
	LineNumbers  bool   `yaml:"line-numbers"`
	GutterMargin int    `yaml:"gutter-margin"`
	Highlight    bool   `yaml:"highlight"`
}

type Log struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: Editor{
			TabWidth:     4,
			Wrap:         WrapNone,
			LineNumbers:  true,
			GutterMargin: 1,
			Highlight:    true,
		},
		Theme: DefaultTheme(),
		Log:   Log{Level: "info"},
	}
}

// Parse decodes YAML data on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	cfg.Editor.Wrap = strings.ToLower(strings.TrimSpace(cfg.Editor.Wrap))
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Load reads the config at path. An empty path means DefaultPath, and a
// missing file at the default location is not an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/gutterpad/config.yaml or the platform
// equivalent, or "" when no config directory is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gutterpad", FileName)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return fmt.Errorf("%w: got %d", ErrInvalidTabWidth, c.Editor.TabWidth)
	}
	if err := ValidateWrap(c.Editor.Wrap); err != nil {
		return err
	}
	if c.Editor.GutterMargin < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidMargin, c.Editor.GutterMargin)
	}
	return c.Theme.Validate()
}

// ValidateWrap checks a wrap mode name.
func ValidateWrap(name string) error {
	switch name {
	case WrapNone, WrapWord, WrapGrapheme:
		return nil
	default:
		return fmt.Errorf("%w: %q (want %s, %s or %s)", ErrUnknownWrapMode, name, WrapNone, WrapWord, WrapGrapheme)
	}
}
