// Package registry stores the key mappings and block rules the hook engine
// consults, behind a single lock shared by the control surface (CRUD,
// persistence) and the hook callback (lookups on every key event).
package registry

import (
	"errors"
	"sort"
	"sync"

	"github.com/hookmap/hookmap/internal/keys"
)

// ErrNotFound is returned by remove/toggle operations when no entry exists
// for the given combination.
var ErrNotFound = errors.New("no entry for key combination")

// Mapping rewrites a source combination into a target combination.
type Mapping struct {
	Source      keys.Combo
	Target      keys.Combo
	Enabled     bool
	Description string
}

// BlockRule suppresses a combination entirely.
type BlockRule struct {
	Key         keys.Combo
	Enabled     bool
	Description string
}

// Registry holds at most one Mapping and one BlockRule per canonical source
// combination. All methods are safe for concurrent use; lookups on the hook
// dispatch thread take the read lock only for the duration of the map
// accesses.
type Registry struct {
	mu       sync.RWMutex
	mappings map[keys.Combo]Mapping
	blocked  map[keys.Combo]BlockRule
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		mappings: make(map[keys.Combo]Mapping),
		blocked:  make(map[keys.Combo]BlockRule),
	}
}

// AddMapping parses both sides and stores the mapping keyed by the
// canonical source, overwriting any previous entry for it. Overwriting
// resets Enabled to true. Parse failures leave the registry unchanged.
func (r *Registry) AddMapping(source, target, description string) error {
	src, err := keys.Parse(source)
	if err != nil {
		return err
	}
	dst, err := keys.Parse(target)
	if err != nil {
		return err
	}
	if description == "" {
		description = src.String() + " -> " + dst.String()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mappings[src] = Mapping{Source: src, Target: dst, Enabled: true, Description: description}
	return nil
}

// RemoveMapping deletes the mapping for the given source text.
func (r *Registry) RemoveMapping(source string) error {
	src, err := keys.Parse(source)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.mappings[src]; !ok {
		return ErrNotFound
	}
	delete(r.mappings, src)
	return nil
}

// ToggleMapping flips the enabled flag of the mapping for the given source.
func (r *Registry) ToggleMapping(source string) error {
	src, err := keys.Parse(source)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.mappings[src]
	if !ok {
		return ErrNotFound
	}
	m.Enabled = !m.Enabled
	r.mappings[src] = m
	return nil
}

// Block suppresses the given combination entirely, overwriting any previous
// rule for it.
func (r *Registry) Block(key, description string) error {
	k, err := keys.Parse(key)
	if err != nil {
		return err
	}
	if description == "" {
		description = "Block " + k.String()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blocked[k] = BlockRule{Key: k, Enabled: true, Description: description}
	return nil
}

// Unblock removes the block rule for the given combination.
func (r *Registry) Unblock(key string) error {
	k, err := keys.Parse(key)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blocked[k]; !ok {
		return ErrNotFound
	}
	delete(r.blocked, k)
	return nil
}

// ToggleBlock flips the enabled flag of the block rule for the given
// combination.
func (r *Registry) ToggleBlock(key string) error {
	k, err := keys.Parse(key)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blocked[k]
	if !ok {
		return ErrNotFound
	}
	b.Enabled = !b.Enabled
	r.blocked[k] = b
	return nil
}

// MappingInfo is the textual snapshot form of a Mapping.
type MappingInfo struct {
	Source      string `json:"source" yaml:"source" toml:"source"`
	Target      string `json:"target" yaml:"target" toml:"target"`
	Enabled     bool   `json:"enabled" yaml:"enabled" toml:"enabled"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// BlockInfo is the textual snapshot form of a BlockRule.
type BlockInfo struct {
	Key         string `json:"key" yaml:"key" toml:"key"`
	Enabled     bool   `json:"enabled" yaml:"enabled" toml:"enabled"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// Mappings returns a snapshot of all mappings, ordered by source text.
func (r *Registry) Mappings() []MappingInfo {
	r.mu.RLock()
	out := make([]MappingInfo, 0, len(r.mappings))
	for _, m := range r.mappings {
		out = append(out, MappingInfo{
			Source:      m.Source.String(),
			Target:      m.Target.String(),
			Enabled:     m.Enabled,
			Description: m.Description,
		})
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Source < out[j].Source })
	return out
}

// Blocked returns a snapshot of all block rules, ordered by key text.
func (r *Registry) Blocked() []BlockInfo {
	r.mu.RLock()
	out := make([]BlockInfo, 0, len(r.blocked))
	for _, b := range r.blocked {
		out = append(out, BlockInfo{
			Key:         b.Key.String(),
			Enabled:     b.Enabled,
			Description: b.Description,
		})
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Counts returns the number of mappings and block rules.
func (r *Registry) Counts() (mappings, blocked int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.mappings), len(r.blocked)
}

// Empty reports whether the registry holds no rules at all.
func (r *Registry) Empty() bool {
	m, b := r.Counts()
	return m == 0 && b == 0
}

// LookupMapping resolves an enabled mapping for combo, falling back to
// single. Called from the hook callback on every key event.
func (r *Registry) LookupMapping(combo, single keys.Combo) (Mapping, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if m, ok := r.mappings[combo]; ok && m.Enabled {
		return m, true
	}
	if m, ok := r.mappings[single]; ok && m.Enabled {
		return m, true
	}
	return Mapping{}, false
}

// IsBlocked reports whether an enabled block rule matches combo, falling
// back to single.
func (r *Registry) IsBlocked(combo, single keys.Combo) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if b, ok := r.blocked[combo]; ok && b.Enabled {
		return true
	}
	if b, ok := r.blocked[single]; ok && b.Enabled {
		return true
	}
	return false
}

// replaceFrom atomically swaps this registry's contents with src's. Used by
// LoadFile so a reload is all-or-nothing from the hook's point of view.
func (r *Registry) replaceFrom(src *Registry) {
	src.mu.RLock()
	mappings := make(map[keys.Combo]Mapping, len(src.mappings))
	for k, v := range src.mappings {
		mappings[k] = v
	}
	blocked := make(map[keys.Combo]BlockRule, len(src.blocked))
	for k, v := range src.blocked {
		blocked[k] = v
	}
	src.mu.RUnlock()

	r.mu.Lock()
	r.mappings = mappings
	r.blocked = blocked
	r.mu.Unlock()
}
