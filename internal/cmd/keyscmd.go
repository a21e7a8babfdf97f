package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hookmap/hookmap/internal/keys"
)

// KeyNames prints every key name usable in mappings, grouped by category.
type KeyNames struct {
	Category string `help:"Only print a single category, e.g. 'modifiers'" short:"c"`
}

func (k *KeyNames) Run() error {
	return k.run(os.Stdout)
}

func (k *KeyNames) run(w io.Writer) error {
	filter := strings.ToLower(strings.TrimSpace(k.Category))
	matched := false
	for _, cat := range keys.Categories() {
		if filter != "" && strings.ToLower(cat.Label) != filter {
			continue
		}
		matched = true
		fmt.Fprintf(w, "%s:\n", cat.Label)
		for _, name := range cat.Names {
			fmt.Fprintf(w, "  %s\n", name)
		}
		fmt.Fprintln(w)
	}
	if filter != "" && !matched {
		return fmt.Errorf("unknown key category %q", k.Category)
	}
	return nil
}
