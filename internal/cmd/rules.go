package cmd

import (
	"fmt"

	"github.com/hookmap/hookmap/internal/registry"
)

// AddMapping adds or replaces a key mapping in the rules file.
type AddMapping struct {
	Source      string `arg:"" help:"Source key or combination, e.g. 'capslock' or 'ctrl+a'"`
	Target      string `arg:"" help:"Target key or combination, e.g. 'escape' or 'ctrl+c'"`
	Description string `help:"Optional description" short:"d"`
}

func (a *AddMapping) Run(cli *CLI) error {
	return mutateRules(cli, func(rules *registry.Registry) error {
		if err := rules.AddMapping(a.Source, a.Target, a.Description); err != nil {
			return err
		}
		fmt.Printf("mapped %s -> %s\n", a.Source, a.Target)
		return nil
	})
}

// RemoveMapping deletes a key mapping from the rules file.
type RemoveMapping struct {
	Source string `arg:"" help:"Source key or combination of the mapping to remove"`
}

func (r *RemoveMapping) Run(cli *CLI) error {
	return mutateRules(cli, func(rules *registry.Registry) error {
		if err := rules.RemoveMapping(r.Source); err != nil {
			return err
		}
		fmt.Printf("removed mapping for %s\n", r.Source)
		return nil
	})
}

// ToggleMapping enables or disables a key mapping.
type ToggleMapping struct {
	Source string `arg:"" help:"Source key or combination of the mapping to toggle"`
}

func (t *ToggleMapping) Run(cli *CLI) error {
	return mutateRules(cli, func(rules *registry.Registry) error {
		if err := rules.ToggleMapping(t.Source); err != nil {
			return err
		}
		fmt.Printf("toggled mapping for %s\n", t.Source)
		return nil
	})
}

// BlockKey blocks a key or combination entirely.
type BlockKey struct {
	Key         string `arg:"" help:"Key or combination to block, e.g. 'f1' or 'ctrl+/'"`
	Description string `help:"Optional description" short:"d"`
}

func (b *BlockKey) Run(cli *CLI) error {
	return mutateRules(cli, func(rules *registry.Registry) error {
		if err := rules.Block(b.Key, b.Description); err != nil {
			return err
		}
		fmt.Printf("blocked %s\n", b.Key)
		return nil
	})
}

// UnblockKey removes a block rule.
type UnblockKey struct {
	Key string `arg:"" help:"Key or combination to unblock"`
}

func (u *UnblockKey) Run(cli *CLI) error {
	return mutateRules(cli, func(rules *registry.Registry) error {
		if err := rules.Unblock(u.Key); err != nil {
			return err
		}
		fmt.Printf("unblocked %s\n", u.Key)
		return nil
	})
}

// ToggleBlock enables or disables a block rule.
type ToggleBlock struct {
	Key string `arg:"" help:"Key or combination of the block rule to toggle"`
}

func (t *ToggleBlock) Run(cli *CLI) error {
	return mutateRules(cli, func(rules *registry.Registry) error {
		if err := rules.ToggleBlock(t.Key); err != nil {
			return err
		}
		fmt.Printf("toggled block for %s\n", t.Key)
		return nil
	})
}

// ListRules prints all mappings and blocked keys.
type ListRules struct{}

func (l *ListRules) Run(cli *CLI) error {
	rules, path, err := loadRules(cli)
	if err != nil {
		return err
	}

	fmt.Printf("rules file: %s\n\n", path)

	mappings := rules.Mappings()
	fmt.Printf("Mappings (%d):\n", len(mappings))
	for _, m := range mappings {
		fmt.Printf("  %s %s -> %s", enabledMark(m.Enabled), m.Source, m.Target)
		if m.Description != "" {
			fmt.Printf("  (%s)", m.Description)
		}
		fmt.Println()
	}

	blocked := rules.Blocked()
	fmt.Printf("\nBlocked keys (%d):\n", len(blocked))
	for _, b := range blocked {
		fmt.Printf("  %s %s", enabledMark(b.Enabled), b.Key)
		if b.Description != "" {
			fmt.Printf("  (%s)", b.Description)
		}
		fmt.Println()
	}
	return nil
}

func enabledMark(enabled bool) string {
	if enabled {
		return "[x]"
	}
	return "[ ]"
}

// mutateRules loads the rules file, applies fn and saves the result back.
func mutateRules(cli *CLI, fn func(*registry.Registry) error) error {
	rules, path, err := loadRules(cli)
	if err != nil {
		return err
	}
	if err := fn(rules); err != nil {
		return err
	}
	return rules.SaveFile(path)
}
