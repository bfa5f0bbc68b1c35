package main

import (
	"github.com/shelltips/ox/internal/config/watcher"
	"github.com/shelltips/ox/internal/logging"
	"github.com/shelltips/ox/internal/renderer/backend"
)

// startReload watches the config file at opts.configPath and posts each
// successfully reloaded configuration, or the error that prevented it, to b
// as an interrupt event. The command line overrides in opts are applied to
// every reload. The editor applies the result on its own goroutine.
func startReload(w *watcher.Watcher, opts options, b backend.Backend, logger *logging.Logger) error {
	if err := w.Watch(opts.configPath); err != nil {
		return err
	}
	w.OnChange(reloadHandler(opts, b, logger))
	return w.Start()
}

func reloadHandler(opts options, b backend.Backend, logger *logging.Logger) watcher.Handler {
	return func(ev watcher.Event) {
		if ev.Op == watcher.OpRemove {
			logger.Debug("config file %s removed, keeping current settings", ev.Path)
			return
		}
		cfg, err := loadConfig(opts)
		if err != nil {
			b.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: err})
			return
		}
		logger.Debug("config file %s changed (%s)", ev.Path, ev.Op)
		b.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: cfg})
	}
}
