package hook

import "github.com/hookmap/hookmap/internal/registry"

// startGuard refuses to start over an empty rule set, before any OS
// resources are touched. Shared by every platform's Start.
func startGuard(rules *registry.Registry) error {
	if rules.Empty() {
		return ErrNoRules
	}
	return nil
}
