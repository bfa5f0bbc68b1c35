package config

import (
	"strconv"
)

// Environment variables that override file settings.
const (
	EnvTabWidth = "OX_TAB_WIDTH"
	EnvLogLevel = "OX_LOG_LEVEL"
	EnvLogFile  = "OX_LOG_FILE"
)

// LookupFunc looks up an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides settings from environment variables.
// Empty string values are treated as valid values, not as unset.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvTabWidth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ValidationError{Setting: "editor.tab_width", Reason: EnvTabWidth + " is not an integer", Value: v}
		}
		c.Editor.TabWidth = n
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.Log.File = v
	}
	return nil
}
