package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hookmap/hookmap/internal/registry"
)

func seedRules(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	require.NoError(t, r.AddMapping("capslock", "escape", "caps as escape"))
	require.NoError(t, r.Block("win+shift+f23", "phantom macro key"))
	require.NoError(t, r.ToggleBlock("win+shift+f23"))
	return r
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, ext := range []string{".json", ".yaml", ".toml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rules"+ext)
			src := seedRules(t)
			require.NoError(t, src.SaveFile(path))

			dst := registry.New()
			require.NoError(t, dst.LoadFile(path))

			assert.Equal(t, src.Mappings(), dst.Mappings())
			assert.Equal(t, src.Blocked(), dst.Blocked())

			bs := dst.Blocked()
			require.Len(t, bs, 1)
			assert.Equal(t, "SHIFT+WIN+F23", bs[0].Key)
			assert.False(t, bs[0].Enabled)
		})
	}
}

func TestLoadReplacesExistingRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	require.NoError(t, seedRules(t).SaveFile(path))

	r := registry.New()
	require.NoError(t, r.AddMapping("f5", "f6", "stale"))
	require.NoError(t, r.LoadFile(path))

	ms := r.Mappings()
	require.Len(t, ms, 1)
	assert.Equal(t, "CAPSLOCK", ms[0].Source)
}

func TestLoadMalformedLeavesRegistryUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"mappings": [`), 0o644))

	r := seedRules(t)
	err := r.LoadFile(path)
	assert.ErrorIs(t, err, registry.ErrMalformed)

	m, b := r.Counts()
	assert.Equal(t, 1, m)
	assert.Equal(t, 1, b)
}

func TestLoadMissingFile(t *testing.T) {
	r := seedRules(t)
	err := r.LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)

	// Unreadable file also leaves the rules alone.
	m, b := r.Counts()
	assert.Equal(t, 1, m)
	assert.Equal(t, 1, b)
}

func TestLoadSkipsInvalidEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	doc := `{
  "mappings": [
    {"source": "capslock", "target": "escape", "enabled": true, "description": ""},
    {"source": "notakey", "target": "escape", "enabled": true, "description": ""}
  ],
  "blocked_keys": [
    {"key": "alsobad", "enabled": true, "description": ""}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	r := registry.New()
	require.NoError(t, r.LoadFile(path))
	m, b := r.Counts()
	assert.Equal(t, 1, m)
	assert.Equal(t, 0, b)
}

func TestSaveDefaultsToJSONForUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.conf")
	require.NoError(t, seedRules(t).SaveFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"blocked_keys"`)
}
