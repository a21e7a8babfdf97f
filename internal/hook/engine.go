// Package hook implements the low-level keyboard interception engine: the
// event resolver, the synthetic input emitter and the hook lifecycle.
//
// The resolver is portable and carries all rewrite semantics; the OS hook,
// the dispatch loop and SendInput live behind the windows build tag.
package hook

import (
	"log/slog"

	"github.com/hookmap/hookmap/internal/keys"
	hlog "github.com/hookmap/hookmap/internal/log"
	"github.com/hookmap/hookmap/internal/registry"
)

// Emitter sends synthetic key events for a whole combination to the OS
// input stream. When release is true the events are key-ups in reverse
// order, otherwise key-downs in order. Synthesized events carry the
// injection sentinel so the hook can recognize its own output.
type Emitter interface {
	Emit(combo keys.Combo, release bool) error
}

// Action is the verdict the resolver returns for one raw key event.
type Action int

const (
	// ActionPass lets the event continue to the next hook / application.
	ActionPass Action = iota
	// ActionSuppress swallows the event; any synthetic output has already
	// been emitted by the time the resolver returns.
	ActionSuppress
)

// Resolver decides, for every raw key event, whether to pass, suppress or
// rewrite it. Its state is owned by the single OS dispatch thread and is
// deliberately unsynchronized; only the registry lookups take a lock.
type Resolver struct {
	rules   *registry.Registry
	emitter Emitter
	logger  *slog.Logger
	trace   hlog.TraceLogger

	// activeModifiers tracks modifier keys currently held down.
	activeModifiers map[keys.VK]struct{}
	// suppressed tracks non-injected keys whose key-down was swallowed, so
	// the matching key-up can be swallowed too.
	suppressed map[keys.VK]struct{}
}

// NewResolver returns a Resolver over the given rules. trace may be a
// no-op logger.
func NewResolver(rules *registry.Registry, emitter Emitter, logger *slog.Logger, trace hlog.TraceLogger) *Resolver {
	if trace == nil {
		trace = hlog.NewTrace(nil)
	}
	return &Resolver{
		rules:           rules,
		emitter:         emitter,
		logger:          logger,
		trace:           trace,
		activeModifiers: make(map[keys.VK]struct{}),
		suppressed:      make(map[keys.VK]struct{}),
	}
}

// Handle resolves one raw key event. injected marks events that carry the
// emitter's sentinel; they always pass so synthesized output never feeds
// back into the rules.
func (r *Resolver) Handle(vk keys.VK, down, injected bool) Action {
	if injected {
		r.trace.Trace(down, uint16(vk), "pass (injected)")
		return ActionPass
	}

	// Modifier state is updated even for events that end up suppressed, so
	// combo detection for the next key stays accurate.
	if keys.IsModifier(vk) {
		if down {
			r.activeModifiers[vk] = struct{}{}
		} else {
			delete(r.activeModifiers, vk)
		}
	}

	combo, single := r.resolveCombos(vk)

	if r.rules.IsBlocked(combo, single) {
		if down {
			r.suppressed[vk] = struct{}{}
			r.trace.Trace(down, uint16(vk), "suppress (blocked)")
			return ActionSuppress
		}
		if _, ok := r.suppressed[vk]; ok {
			delete(r.suppressed, vk)
			r.trace.Trace(down, uint16(vk), "suppress (blocked)")
			return ActionSuppress
		}
		// Key-up without a recorded key-down, e.g. the hook was installed
		// while the key was already held. Fall through to the mapping check.
	}

	if m, ok := r.rules.LookupMapping(combo, single); ok {
		if down {
			r.suppressed[vk] = struct{}{}
			r.emit(m.Target, false)
			r.trace.Trace(down, uint16(vk), "rewrite -> "+m.Target.String())
			return ActionSuppress
		}
		if _, was := r.suppressed[vk]; was {
			delete(r.suppressed, vk)
			r.emit(m.Target, true)
			r.trace.Trace(down, uint16(vk), "rewrite -> "+m.Target.String())
			return ActionSuppress
		}
	}

	r.trace.Trace(down, uint16(vk), "pass")
	return ActionPass
}

// resolveCombos builds the canonical chord of held modifiers plus this key,
// and the bare single-key combo. Lookups always try the chord first.
func (r *Resolver) resolveCombos(vk keys.VK) (combo, single keys.Combo) {
	codes := make([]keys.VK, 0, len(r.activeModifiers)+1)
	for m := range r.activeModifiers {
		codes = append(codes, m)
	}
	codes = append(codes, vk)

	combo, err := keys.NewCombo(codes...)
	if err != nil {
		// More held modifiers than a combo can carry; resolve the key alone.
		combo = keys.Combo{}
	}
	single, _ = keys.NewCombo(vk)
	if combo.IsZero() {
		combo = single
	}
	return combo, single
}

// emit sends the target combination, never while holding the registry lock.
// Emitter failures degrade to a logged warning; the original key has
// already been claimed at this point.
func (r *Resolver) emit(target keys.Combo, release bool) {
	if err := r.emitter.Emit(target, release); err != nil {
		r.logger.Warn("failed to emit synthetic input", "target", target.String(), "release", release, "error", err)
	}
}

// Reset clears the live modifier and suppressed-key state. Called when the
// hook is uninstalled.
func (r *Resolver) Reset() {
	clear(r.activeModifiers)
	clear(r.suppressed)
}
