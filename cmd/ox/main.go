// Package main is the entry point for the ox editor.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shelltips/ox/internal/config"
	"github.com/shelltips/ox/internal/config/watcher"
	"github.com/shelltips/ox/internal/editor"
	"github.com/shelltips/ox/internal/logging"
	"github.com/shelltips/ox/internal/renderer/backend"
	"github.com/shelltips/ox/internal/version"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// options holds the command line flags.
type options struct {
	configPath string
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "ox [flags] [path]",
		Short:        "A small terminal text editor",
		Long:         "ox edits a single file in the terminal. Run it with no path to start on an empty document.",
		Version:      version.Version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), opts, cfg, args)
		},
	}
	cmd.SetVersionTemplate(version.Long() + "\n")

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "",
		"config file (default: $XDG_CONFIG_HOME/ox/config.toml)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "",
		"log level: debug, info, warn or error (overrides the config file)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "",
		"write logs to this file (overrides the config file)")

	return cmd
}

// loadConfig reads the config file, applies the command line overrides and
// validates the result. A bad setting in the file is accepted when a flag
// replaces it.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Read(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, opts options, cfg *config.Config, args []string) error {
	logger, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()
	logging.Set(logger)
	logger.Info("starting ox %s", version.Version)

	term, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := term.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer term.Shutdown()

	ed := editor.New(term, editor.WithConfig(cfg), editor.WithLogger(logger))
	if len(args) == 1 {
		// A failed open is reported on the command line.
		_ = ed.Open(args[0])
	}

	if cfg.Path != "" {
		w := watcher.New(watcher.WithErrorHandler(func(err error) {
			logger.Warn("config watcher: %v", err)
		}))
		opts.configPath = cfg.Path
		if err := startReload(w, opts, term, logger); err != nil {
			logger.Warn("config live reload disabled: %v", err)
		} else {
			defer w.Stop()
		}
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = ed.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}
	return err
}
