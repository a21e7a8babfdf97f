package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hookmap/hookmap/internal/hook"
	hlog "github.com/hookmap/hookmap/internal/log"
	"github.com/hookmap/hookmap/internal/registry"
	"github.com/hookmap/hookmap/internal/util"
)

// Run installs the keyboard hook and remaps until interrupted.
type Run struct {
	Watch       bool `help:"Reload the rules file when it changes on disk" env:"HOOKMAP_WATCH"`
	HideConsole bool `help:"Hide the console window after startup (windows only)"`
}

// Run is called by Kong when the run command is executed.
func (r *Run) Run(cli *CLI, logger *slog.Logger, trace hlog.TraceLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rules := registry.New()
	path := cli.RulesPath()
	if err := rules.LoadFile(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("rules file not found", "path", path)
		} else {
			return fmt.Errorf("load rules: %w", err)
		}
	}

	if !util.IsElevated() {
		logger.Warn("not running as administrator; remapping may not reach elevated applications")
	}

	h := hook.New(rules, logger, trace)
	if err := h.Start(); err != nil {
		if errors.Is(err, hook.ErrNoRules) {
			return fmt.Errorf("%w; add one first, e.g.: hookmap add capslock escape", err)
		}
		return err
	}
	defer h.Stop()

	mappings, blocked := rules.Counts()
	logger.Info("remapping active", "mappings", mappings, "blocked", blocked, "rules", path)

	if r.HideConsole {
		util.HideConsoleWindow()
	}

	if r.Watch {
		watcher, err := watchRules(ctx, path, rules, logger)
		if err != nil {
			logger.Warn("rules file watching unavailable", "error", err)
		} else {
			defer watcher.Close()
		}
	}

	<-ctx.Done()
	logger.Info("shutting down")
	return nil
}

// watchRules reloads the registry whenever the rules file is rewritten.
// The watch is on the directory because most editors replace the file
// rather than write it in place.
func watchRules(ctx context.Context, path string, rules *registry.Registry, logger *slog.Logger) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		var pending *time.Timer
		reload := func() {
			if err := rules.LoadFile(path); err != nil {
				logger.Warn("rules reload failed, keeping previous rules", "error", err)
				return
			}
			mappings, blocked := rules.Counts()
			logger.Info("rules reloaded", "mappings", mappings, "blocked", blocked)
		}
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Name != path || !ev.Op.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				// Coalesce the burst of events a single save produces.
				if pending != nil {
					pending.Stop()
				}
				pending = time.AfterFunc(200*time.Millisecond, reload)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("rules watcher error", "error", err)
			}
		}
	}()
	return watcher, nil
}
