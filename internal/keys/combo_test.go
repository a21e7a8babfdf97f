package keys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hookmap/hookmap/internal/keys"
)

func TestParseCanonicalOrder(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{name: "modifier after key", a: "a+ctrl", b: "ctrl+a"},
		{name: "modifiers sorted by code", a: "alt+shift+ctrl+x", b: "shift+ctrl+alt+x"},
		{name: "case insensitive", a: "CTRL+Shift+A", b: "ctrl+shift+a"},
		{name: "whitespace tolerated", a: " ctrl + a ", b: "ctrl+a"},
		{name: "empty tokens skipped", a: "ctrl++a", b: "ctrl+a"},
		{name: "duplicates dropped", a: "ctrl+ctrl+a", b: "ctrl+a"},
		{name: "alias resolves", a: "esc", b: "escape"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ca, err := keys.Parse(tt.a)
			require.NoError(t, err)
			cb, err := keys.Parse(tt.b)
			require.NoError(t, err)
			assert.Equal(t, cb, ca)
		})
	}
}

func TestParseKeepsNonModifierOrder(t *testing.T) {
	c, err := keys.Parse("ctrl+b+a")
	require.NoError(t, err)
	assert.Equal(t, []keys.VK{keys.VKControl, 0x42, 0x41}, c.Keys())
}

func TestParseErrors(t *testing.T) {
	t.Run("unknown key name", func(t *testing.T) {
		_, err := keys.Parse("ctrl+bogus")
		var uerr *keys.UnknownKeyError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, "bogus", uerr.Name)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := keys.Parse("")
		assert.ErrorIs(t, err, keys.ErrEmptyCombo)
	})

	t.Run("only separators", func(t *testing.T) {
		_, err := keys.Parse("++ +")
		assert.ErrorIs(t, err, keys.ErrEmptyCombo)
	})

	t.Run("too many keys", func(t *testing.T) {
		_, err := keys.Parse("a+b+c+d+e+f+g+h+i")
		assert.ErrorIs(t, err, keys.ErrTooManyKeys)
	})
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"ctrl+a",
		"a+ctrl",
		"win+shift+f23",
		"capslock",
		"numplus",
		"ctrl+alt+delete",
		"lshift+rshift+space",
		"slash",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			c, err := keys.Parse(in)
			require.NoError(t, err)
			rt, err := keys.Parse(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, rt)
		})
	}
}

func TestStringHexFallback(t *testing.T) {
	c, err := keys.NewCombo(keys.VK(0xE9))
	require.NoError(t, err)
	assert.Equal(t, "0xE9", c.String())
}

func TestNewComboEmpty(t *testing.T) {
	_, err := keys.NewCombo()
	assert.ErrorIs(t, err, keys.ErrEmptyCombo)
}

func TestIsModifier(t *testing.T) {
	assert.True(t, keys.IsModifier(keys.VKControl))
	assert.True(t, keys.IsModifier(keys.VKRWin))
	assert.False(t, keys.IsModifier(keys.VKEscape))
	assert.False(t, keys.IsModifier(0x41))
}

func TestIsExtended(t *testing.T) {
	assert.True(t, keys.IsExtended(keys.VKDelete))
	assert.True(t, keys.IsExtended(keys.VKRMenu))
	assert.False(t, keys.IsExtended(keys.VKLMenu))
	assert.False(t, keys.IsExtended(0x41))
}

func TestCategoriesCoverCoreNames(t *testing.T) {
	var labels []string
	for _, cat := range keys.Categories() {
		labels = append(labels, cat.Label)
		assert.NotEmpty(t, cat.Names, "category %s", cat.Label)
		for _, n := range cat.Names {
			_, err := keys.Parse(n)
			assert.NoError(t, err, "name %s should parse", n)
		}
	}
	assert.Contains(t, labels, "Letters")
	assert.Contains(t, labels, "Function keys")
	assert.Contains(t, labels, "Modifiers")
}
