package cmd

import (
	"errors"
	"log/slog"
	"os"

	"github.com/hookmap/hookmap/internal/hook"
	hlog "github.com/hookmap/hookmap/internal/log"
	"github.com/hookmap/hookmap/internal/menu"
	"github.com/hookmap/hookmap/internal/registry"
	"github.com/hookmap/hookmap/internal/util"
)

// Menu runs the interactive terminal menu.
type Menu struct{}

func (m *Menu) Run(cli *CLI, logger *slog.Logger, trace hlog.TraceLogger) error {
	rules := registry.New()
	path := cli.RulesPath()
	if err := rules.LoadFile(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	h := hook.New(rules, logger, trace)
	defer h.Stop()

	return menu.Run(menu.Config{
		Rules:    rules,
		Path:     path,
		Start:    h.Start,
		Stop:     h.Stop,
		Running:  h.Running,
		Elevated: util.IsElevated(),
	})
}
