// Package config loads editor settings from a TOML file and the environment.
//
// Settings are resolved in order: built-in defaults, then the config file,
// then OX_* environment variables. A missing config file is not an error.
//
//	[editor]
//	tab_width = 4
//	history_limit = 1000
//	resize_poll = "16ms"
//
//	[theme]
//	status_bg = "#9ccfd8"
//
//	[log]
//	level = "info"
//	file = "/tmp/ox.log"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/shelltips/ox/internal/logging"
	"github.com/shelltips/ox/internal/renderer"
	"github.com/shelltips/ox/internal/renderer/core"
)

// Config holds all editor settings.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	Theme  ThemeConfig  `toml:"theme"`
	Log    LogConfig    `toml:"log"`

	// Path is the file the configuration was read from, if any.
	Path string `toml:"-"`
}

// EditorConfig holds editing behaviour settings.
type EditorConfig struct {
	TabWidth     int      `toml:"tab_width"`
	HistoryLimit int      `toml:"history_limit"`
	ResizePoll   Duration `toml:"resize_poll"`
}

// ThemeConfig holds colours as "#rrggbb" strings. An empty string or
// "default" selects the terminal default.
type ThemeConfig struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	LineNumber string `toml:"line_number"`
	StatusFG   string `toml:"status_fg"`
	StatusBG   string `toml:"status_bg"`
	Error      string `toml:"error"`
	Warning    string `toml:"warning"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Duration is a time.Duration written as a string such as "16ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabWidth:     4,
			HistoryLimit: 1000,
			ResizePoll:   Duration{16 * time.Millisecond},
		},
		Theme: ThemeConfig{
			Background: "default",
			Foreground: "default",
			LineNumber: "#808080",
			StatusFG:   "#000000",
			StatusBG:   "#9ccfd8",
			Error:      "#ff0000",
			Warning:    "#ffff00",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/ox/config.toml, falling back to the
// platform user config directory.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			return ""
		}
	}
	return filepath.Join(dir, "ox", "config.toml")
}

// Load reads the configuration file at path on top of the defaults, applies
// environment overrides and validates the result. An empty path selects
// DefaultPath.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read is Load without the final validation, for callers that apply
// further overrides first. The caller must call Validate.
func Read(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := cfg.decode(path, data); err != nil {
				return nil, err
			}
			cfg.Path = path
		case errors.Is(err, os.ErrNotExist):
			// Defaults only.
		default:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML data on top of the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.decode("<data>", data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(source string, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		perr := &ParseError{File: source, Detail: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			perr.Detail = strings.TrimSpace(serr.String())
		}
		return perr
	}
	return nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return &ValidationError{Setting: "editor.tab_width", Reason: "must be between 1 and 16", Value: c.Editor.TabWidth}
	}
	if c.Editor.HistoryLimit < 1 {
		return &ValidationError{Setting: "editor.history_limit", Reason: "must be at least 1", Value: c.Editor.HistoryLimit}
	}
	if c.Editor.ResizePoll.Duration < time.Millisecond || c.Editor.ResizePoll.Duration > time.Second {
		return &ValidationError{Setting: "editor.resize_poll", Reason: "must be between 1ms and 1s", Value: c.Editor.ResizePoll.Duration}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return &ValidationError{Setting: "log.level", Reason: err.Error(), Value: c.Log.Level}
	}
	for name, value := range c.Theme.fields() {
		if _, err := core.ColorFromHex(value); err != nil {
			return &ValidationError{Setting: "theme." + name, Reason: err.Error(), Value: value}
		}
	}
	return nil
}

func (t ThemeConfig) fields() map[string]string {
	return map[string]string{
		"background":  t.Background,
		"foreground":  t.Foreground,
		"line_number": t.LineNumber,
		"status_fg":   t.StatusFG,
		"status_bg":   t.StatusBG,
		"error":       t.Error,
		"warning":     t.Warning,
	}
}

// RendererTheme converts the theme section to renderer colours. Invalid
// values fall back to the built-in theme.
func (c *Config) RendererTheme() renderer.Theme {
	def := renderer.DefaultTheme()
	color := func(s string, fallback core.Color) core.Color {
		v, err := core.ColorFromHex(s)
		if err != nil {
			return fallback
		}
		return v
	}
	return renderer.Theme{
		Background: color(c.Theme.Background, def.Background),
		Foreground: color(c.Theme.Foreground, def.Foreground),
		LineNumber: color(c.Theme.LineNumber, def.LineNumber),
		StatusFG:   color(c.Theme.StatusFG, def.StatusFG),
		StatusBG:   color(c.Theme.StatusBG, def.StatusBG),
		Error:      color(c.Theme.Error, def.Error),
		Warning:    color(c.Theme.Warning, def.Warning),
	}
}
