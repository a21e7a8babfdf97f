package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyNamesPrintsAllCategories(t *testing.T) {
	var buf bytes.Buffer
	k := &KeyNames{}
	require.NoError(t, k.run(&buf))

	out := buf.String()
	for _, label := range []string{"Letters", "Digits", "Function keys", "Modifiers", "Navigation", "Editing", "Numpad", "Punctuation"} {
		assert.Contains(t, out, label+":")
	}
	assert.Contains(t, out, "  capslock\n")
}

func TestKeyNamesFiltersByCategory(t *testing.T) {
	var buf bytes.Buffer
	k := &KeyNames{Category: "modifiers"}
	require.NoError(t, k.run(&buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Modifiers:"))
	assert.Contains(t, out, "  ctrl\n")
	assert.NotContains(t, out, "Letters:")
}

func TestKeyNamesUnknownCategory(t *testing.T) {
	var buf bytes.Buffer
	k := &KeyNames{Category: "bogus"}
	err := k.run(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}
