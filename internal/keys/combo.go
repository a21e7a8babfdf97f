package keys

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MaxComboKeys caps how many distinct keys a single combination can hold.
// The fixed capacity keeps Combo comparable by value, which makes it usable
// directly as a map key.
const MaxComboKeys = 8

// Parse / construction errors.
var (
	ErrEmptyCombo  = errors.New("key combination is empty")
	ErrTooManyKeys = fmt.Errorf("key combination exceeds %d keys", MaxComboKeys)
)

// UnknownKeyError reports a key name that does not resolve to a virtual-key
// code.
type UnknownKeyError struct {
	Name string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key name %q", e.Name)
}

// Combo is an ordered, immutable combination of distinct virtual-key codes.
//
// The canonical form places modifier codes first, sorted by numeric value,
// followed by the non-modifier codes in the order they were given. Two
// combos are equal (==) iff their canonical sequences are equal.
type Combo struct {
	n     uint8
	codes [MaxComboKeys]VK
}

// NewCombo builds the canonical combo over the given codes. Duplicates are
// dropped, preserving first occurrence.
func NewCombo(codes ...VK) (Combo, error) {
	var mods, rest []VK
	seen := make(map[VK]struct{}, len(codes))
	for _, vk := range codes {
		if _, dup := seen[vk]; dup {
			continue
		}
		seen[vk] = struct{}{}
		if IsModifier(vk) {
			mods = append(mods, vk)
		} else {
			rest = append(rest, vk)
		}
	}
	if len(mods)+len(rest) == 0 {
		return Combo{}, ErrEmptyCombo
	}
	if len(mods)+len(rest) > MaxComboKeys {
		return Combo{}, ErrTooManyKeys
	}
	sort.Slice(mods, func(i, j int) bool { return mods[i] < mods[j] })

	var c Combo
	for _, vk := range mods {
		c.codes[c.n] = vk
		c.n++
	}
	for _, vk := range rest {
		c.codes[c.n] = vk
		c.n++
	}
	return c, nil
}

// Parse resolves a textual combination like "ctrl+shift+a" into its
// canonical Combo. Token matching is case-insensitive and surrounding
// whitespace is ignored; empty tokens (as in "ctrl++a") are skipped.
func Parse(text string) (Combo, error) {
	var codes []VK
	for _, tok := range strings.Split(text, "+") {
		tok = strings.TrimSpace(strings.ToLower(tok))
		if tok == "" {
			continue
		}
		vk, ok := nameToVK[tok]
		if !ok {
			return Combo{}, &UnknownKeyError{Name: tok}
		}
		codes = append(codes, vk)
	}
	if len(codes) == 0 {
		return Combo{}, ErrEmptyCombo
	}
	return NewCombo(codes...)
}

// Len returns the number of keys in the combo.
func (c Combo) Len() int { return int(c.n) }

// IsZero reports whether c is the zero (invalid, empty) combo.
func (c Combo) IsZero() bool { return c.n == 0 }

// Keys returns the canonical code sequence as a fresh slice.
func (c Combo) Keys() []VK {
	out := make([]VK, c.n)
	copy(out, c.codes[:c.n])
	return out
}

// String renders the combo as uppercased names joined by "+", falling back
// to a hexadecimal literal for codes without a name. Inverse of Parse for
// combos built from named codes.
func (c Combo) String() string {
	parts := make([]string, 0, c.n)
	for _, vk := range c.codes[:c.n] {
		if name, ok := Name(vk); ok {
			parts = append(parts, strings.ToUpper(name))
		} else {
			parts = append(parts, fmt.Sprintf("0x%02X", uint16(vk)))
		}
	}
	return strings.Join(parts, "+")
}
