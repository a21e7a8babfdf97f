// Package cmd defines the hookmap CLI commands.
package cmd

import (
	"errors"
	"os"

	"github.com/hookmap/hookmap/internal/configpaths"
	"github.com/hookmap/hookmap/internal/registry"
)

// CLI is the root command tree. Values come from flags, environment
// variables and layered config files (JSON/YAML/TOML), in that priority.
type CLI struct {
	Log struct {
		Level     string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"HOOKMAP_LOG_LEVEL"`
		File      string `help:"Write logs to this file instead of the console" env:"HOOKMAP_LOG_FILE"`
		TraceFile string `help:"Write a per-key-event trace to this file" env:"HOOKMAP_TRACE_FILE"`
	} `embed:"" prefix:"log."`

	Config string `help:"Path to a CLI config file" env:"HOOKMAP_CONFIG"`
	Rules  string `help:"Path to the rules file (default: hookmap.rules.json beside the executable)" env:"HOOKMAP_RULES"`

	Run  Run  `cmd:"" help:"Install the keyboard hook and remap until interrupted"`
	Menu Menu `cmd:"" help:"Interactive menu for editing rules and controlling the remapper"`

	Add         AddMapping    `cmd:"" name:"add" help:"Add or replace a key mapping"`
	Remove      RemoveMapping `cmd:"" name:"remove" aliases:"rm" help:"Remove a key mapping"`
	Toggle      ToggleMapping `cmd:"" name:"toggle" help:"Enable or disable a key mapping"`
	Block       BlockKey      `cmd:"" name:"block" help:"Block a key or combination entirely"`
	Unblock     UnblockKey    `cmd:"" name:"unblock" help:"Remove a block rule"`
	ToggleBlock ToggleBlock   `cmd:"" name:"toggle-block" help:"Enable or disable a block rule"`
	List        ListRules     `cmd:"" name:"list" aliases:"ls" help:"List mappings and blocked keys"`

	Keys      KeyNames      `cmd:"" name:"keys" help:"List the available key names"`
	ConfigCmd ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}

// RulesPath resolves the rules file location for every command.
func (c *CLI) RulesPath() string {
	if c.Rules != "" {
		return c.Rules
	}
	return configpaths.DefaultRulesPath()
}

// loadRules reads the rules file into a fresh registry. A missing file is
// not an error; commands start from an empty rule set and create the file
// on save.
func loadRules(cli *CLI) (*registry.Registry, string, error) {
	rules := registry.New()
	path := cli.RulesPath()
	if err := rules.LoadFile(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, "", err
	}
	return rules, path, nil
}
