package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hookmap/hookmap/internal/keys"
	"github.com/hookmap/hookmap/internal/registry"
)

func mustParse(t *testing.T, s string) keys.Combo {
	t.Helper()
	c, err := keys.Parse(s)
	require.NoError(t, err)
	return c
}

func TestAddMapping(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.AddMapping("capslock", "escape", ""))

	ms := r.Mappings()
	require.Len(t, ms, 1)
	assert.Equal(t, "CAPSLOCK", ms[0].Source)
	assert.Equal(t, "ESCAPE", ms[0].Target)
	assert.True(t, ms[0].Enabled)
	assert.Equal(t, "CAPSLOCK -> ESCAPE", ms[0].Description)
}

func TestAddMappingCanonicalizesSource(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.AddMapping("a+ctrl", "escape", ""))

	// Same canonical source, different spelling: overwrite, not a second entry.
	require.NoError(t, r.AddMapping("ctrl+a", "tab", ""))
	ms := r.Mappings()
	require.Len(t, ms, 1)
	assert.Equal(t, "TAB", ms[0].Target)
}

func TestOverwriteResetsEnabled(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.AddMapping("f1", "f2", ""))
	require.NoError(t, r.ToggleMapping("f1"))
	assert.False(t, r.Mappings()[0].Enabled)

	require.NoError(t, r.AddMapping("f1", "f3", ""))
	assert.True(t, r.Mappings()[0].Enabled)
}

func TestParseFailureDoesNotMutate(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.AddMapping("capslock", "escape", ""))

	var uerr *keys.UnknownKeyError
	assert.ErrorAs(t, r.AddMapping("bogus", "a", ""), &uerr)
	assert.ErrorAs(t, r.AddMapping("a", "bogus", ""), &uerr)
	assert.ErrorIs(t, r.RemoveMapping(""), keys.ErrEmptyCombo)
	assert.ErrorAs(t, r.Block("nope", ""), &uerr)

	m, b := r.Counts()
	assert.Equal(t, 1, m)
	assert.Equal(t, 0, b)
}

func TestRemoveMapping(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.AddMapping("f1", "f2", ""))

	assert.NoError(t, r.RemoveMapping("f1"))
	assert.ErrorIs(t, r.RemoveMapping("f1"), registry.ErrNotFound)
	assert.True(t, r.Empty())
}

func TestToggleMappingNotFound(t *testing.T) {
	r := registry.New()
	assert.ErrorIs(t, r.ToggleMapping("f1"), registry.ErrNotFound)
}

func TestBlockRules(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Block("slash", "no chat in game"))
	bs := r.Blocked()
	require.Len(t, bs, 1)
	assert.Equal(t, "SLASH", bs[0].Key)
	assert.True(t, bs[0].Enabled)
	assert.Equal(t, "no chat in game", bs[0].Description)

	require.NoError(t, r.ToggleBlock("slash"))
	assert.False(t, r.Blocked()[0].Enabled)

	require.NoError(t, r.Unblock("slash"))
	assert.ErrorIs(t, r.Unblock("slash"), registry.ErrNotFound)
	assert.ErrorIs(t, r.ToggleBlock("slash"), registry.ErrNotFound)
}

func TestBlockDefaultDescription(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Block("ctrl+w", ""))
	assert.Equal(t, "Block CTRL+W", r.Blocked()[0].Description)
}

func TestMappingAndBlockShareCombo(t *testing.T) {
	// A combo may carry both a mapping and a block rule; the namespaces are
	// independent.
	r := registry.New()
	require.NoError(t, r.AddMapping("f1", "f2", ""))
	require.NoError(t, r.Block("f1", ""))

	m, b := r.Counts()
	assert.Equal(t, 1, m)
	assert.Equal(t, 1, b)

	combo := mustParse(t, "f1")
	_, found := r.LookupMapping(combo, combo)
	assert.True(t, found)
	assert.True(t, r.IsBlocked(combo, combo))
}

func TestLookupMappingComboBeatsSingle(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.AddMapping("a", "b", ""))
	require.NoError(t, r.AddMapping("ctrl+a", "c", ""))

	combo := mustParse(t, "ctrl+a")
	single := mustParse(t, "a")

	m, ok := r.LookupMapping(combo, single)
	require.True(t, ok)
	assert.Equal(t, mustParse(t, "c"), m.Target)

	// Disable the chord rule: fallback to the bare-key rule.
	require.NoError(t, r.ToggleMapping("ctrl+a"))
	m, ok = r.LookupMapping(combo, single)
	require.True(t, ok)
	assert.Equal(t, mustParse(t, "b"), m.Target)
}

func TestLookupIgnoresDisabled(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.AddMapping("a", "b", ""))
	require.NoError(t, r.ToggleMapping("a"))
	require.NoError(t, r.Block("x", ""))
	require.NoError(t, r.ToggleBlock("x"))

	single := mustParse(t, "a")
	_, ok := r.LookupMapping(single, single)
	assert.False(t, ok)

	x := mustParse(t, "x")
	assert.False(t, r.IsBlocked(x, x))
}

func TestSnapshotsAreStable(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.AddMapping("f3", "a", ""))
	require.NoError(t, r.AddMapping("f1", "b", ""))
	require.NoError(t, r.AddMapping("f2", "c", ""))

	first := r.Mappings()
	second := r.Mappings()
	assert.Equal(t, first, second)
}
