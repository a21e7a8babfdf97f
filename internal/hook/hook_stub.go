//go:build !windows

package hook

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/hookmap/hookmap/internal/keys"
	hlog "github.com/hookmap/hookmap/internal/log"
	"github.com/hookmap/hookmap/internal/registry"
)

// Hook is the non-windows stand-in. The resolver and registry are fully
// portable; installing a system keyboard hook is not, so Start always
// fails here.
type Hook struct {
	resolver *Resolver
	logger   *slog.Logger
}

func New(rules *registry.Registry, logger *slog.Logger, trace hlog.TraceLogger) *Hook {
	return &Hook{
		resolver: NewResolver(rules, nopEmitter{}, logger, trace),
		logger:   logger,
	}
}

func (h *Hook) Start() error {
	if err := startGuard(h.resolver.rules); err != nil {
		return err
	}
	return fmt.Errorf("%w: keyboard hooks are only supported on windows (running on %s)", ErrInstall, runtime.GOOS)
}

func (h *Hook) Stop() {}

func (h *Hook) Running() bool { return false }

func (h *Hook) LastEvent() time.Time { return time.Time{} }

type nopEmitter struct{}

func (nopEmitter) Emit(_ keys.Combo, _ bool) error { return nil }
