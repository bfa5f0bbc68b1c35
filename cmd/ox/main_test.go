package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelltips/ox/internal/config"
	"github.com/shelltips/ox/internal/config/watcher"
	"github.com/shelltips/ox/internal/logging"
	"github.com/shelltips/ox/internal/renderer/backend"
	"github.com/shelltips/ox/internal/version"
)

func TestVersionFlag(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, version.Long()+"\n", out.String())
}

func TestTooManyArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"a.txt", "b.txt"})

	assert.Error(t, cmd.Execute())
}

func TestFlagsAreRegistered(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "log-level", "log-file"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "c", cmd.Flags().Lookup("config").Shorthand)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, "[log]\nlevel = \"warn\"\nfile = \"/tmp/from-file.log\"\n")

	cfg, err := loadConfig(options{configPath: path})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, path, cfg.Path)

	cfg, err = loadConfig(options{configPath: path, logLevel: "debug", logFile: "/tmp/flag.log"})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/flag.log", cfg.Log.File)
}

func TestLoadConfigRejectsBadLevel(t *testing.T) {
	path := writeConfig(t, "")
	_, err := loadConfig(options{configPath: path, logLevel: "loud"})
	assert.ErrorIs(t, err, config.ErrValidationFailed)
}

func TestLoadConfigFlagReplacesBadFileLevel(t *testing.T) {
	path := writeConfig(t, "[log]\nlevel = \"loud\"\n")

	_, err := loadConfig(options{configPath: path})
	assert.ErrorIs(t, err, config.ErrValidationFailed)

	cfg, err := loadConfig(options{configPath: path, logLevel: "error"})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestReloadHandlerKeepsFlagOverrides(t *testing.T) {
	path := writeConfig(t, "[log]\nlevel = \"warn\"\nfile = \"/tmp/from-file.log\"\n")
	b := backend.NewNullBackend(10, 10)
	opts := options{configPath: path, logLevel: "debug", logFile: "/tmp/flag.log"}

	reloadHandler(opts, b, logging.Null())(watcher.Event{Path: path, Op: watcher.OpWrite})
	ev, ok := b.PollEvent(time.Second)
	require.True(t, ok)
	cfg, ok := ev.Data.(*config.Config)
	require.True(t, ok, "%v", ev.Data)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/flag.log", cfg.Log.File)
}

func TestReloadHandlerPostsConfig(t *testing.T) {
	path := writeConfig(t, "[editor]\ntab_width = 8\n")
	b := backend.NewNullBackend(10, 10)

	reloadHandler(options{configPath: path}, b, logging.Null())(watcher.Event{Path: path, Op: watcher.OpWrite})
	ev, ok := b.PollEvent(time.Second)
	require.True(t, ok)
	assert.Equal(t, backend.EventInterrupt, ev.Type)
	cfg, ok := ev.Data.(*config.Config)
	require.True(t, ok)
	assert.Equal(t, 8, cfg.Editor.TabWidth)
}

func TestReloadHandlerPostsError(t *testing.T) {
	path := writeConfig(t, "[editor]\ntab_width = 99\n")
	b := backend.NewNullBackend(10, 10)

	reloadHandler(options{configPath: path}, b, logging.Null())(watcher.Event{Path: path, Op: watcher.OpWrite})
	ev, ok := b.PollEvent(time.Second)
	require.True(t, ok)
	err, ok := ev.Data.(error)
	require.True(t, ok)
	assert.ErrorIs(t, err, config.ErrValidationFailed)
}

func TestReloadHandlerIgnoresRemove(t *testing.T) {
	path := writeConfig(t, "")
	b := backend.NewNullBackend(10, 10)

	reloadHandler(options{configPath: path}, b, logging.Null())(watcher.Event{Path: path, Op: watcher.OpRemove})
	assert.Equal(t, 0, b.Pending())
}

func TestStartReloadWatchesFile(t *testing.T) {
	path := writeConfig(t, "[editor]\ntab_width = 4\n")
	b := backend.NewNullBackend(10, 10)
	w := watcher.New(watcher.WithDebounce(10 * time.Millisecond))
	require.NoError(t, startReload(w, options{configPath: path}, b, logging.Null()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("[editor]\ntab_width = 2\n"), 0o644))

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		ev, ok := b.PollEvent(100 * time.Millisecond)
		if !ok {
			continue
		}
		cfg, isCfg := ev.Data.(*config.Config)
		if isCfg && cfg.Editor.TabWidth == 2 {
			return
		}
	}
	t.Fatalf("no reload event for %s", path)
}
