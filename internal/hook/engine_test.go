package hook

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hookmap/hookmap/internal/keys"
	"github.com/hookmap/hookmap/internal/registry"
)

// recordingEmitter captures every Emit call.
type recordingEmitter struct {
	emits []emitCall
	err   error
}

type emitCall struct {
	target  string
	release bool
}

func (e *recordingEmitter) Emit(combo keys.Combo, release bool) error {
	e.emits = append(e.emits, emitCall{target: combo.String(), release: release})
	return e.err
}

func newTestResolver(t *testing.T, setup func(r *registry.Registry)) (*Resolver, *recordingEmitter) {
	t.Helper()
	rules := registry.New()
	if setup != nil {
		setup(rules)
	}
	em := &recordingEmitter{}
	return NewResolver(rules, em, slog.Default(), nil), em
}

func vk(t *testing.T, name string) keys.VK {
	t.Helper()
	c, err := keys.Parse(name)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	return c.Keys()[0]
}

func TestMappedKeySymmetry(t *testing.T) {
	r, em := newTestResolver(t, func(reg *registry.Registry) {
		require.NoError(t, reg.AddMapping("capslock", "escape", ""))
	})
	caps := vk(t, "capslock")

	assert.Equal(t, ActionSuppress, r.Handle(caps, true, false))
	assert.Equal(t, ActionSuppress, r.Handle(caps, false, false))

	require.Len(t, em.emits, 2)
	assert.Equal(t, emitCall{target: "ESCAPE", release: false}, em.emits[0])
	assert.Equal(t, emitCall{target: "ESCAPE", release: true}, em.emits[1])
}

func TestKeyUpWithoutKeyDownPassesThrough(t *testing.T) {
	// Hook installed mid-press: the key-up was never recorded as suppressed
	// and must reach the application unmodified.
	r, em := newTestResolver(t, func(reg *registry.Registry) {
		require.NoError(t, reg.AddMapping("capslock", "escape", ""))
	})

	assert.Equal(t, ActionPass, r.Handle(vk(t, "capslock"), false, false))
	assert.Empty(t, em.emits)
}

func TestBlockedKeySuppressedBothWays(t *testing.T) {
	r, em := newTestResolver(t, func(reg *registry.Registry) {
		require.NoError(t, reg.Block("slash", ""))
	})
	slash := vk(t, "slash")

	assert.Equal(t, ActionSuppress, r.Handle(slash, true, false))
	assert.Equal(t, ActionSuppress, r.Handle(slash, false, false))
	assert.Empty(t, em.emits)
}

func TestBlockBeatsMapping(t *testing.T) {
	r, em := newTestResolver(t, func(reg *registry.Registry) {
		require.NoError(t, reg.AddMapping("f1", "f2", ""))
		require.NoError(t, reg.Block("f1", ""))
	})
	f1 := vk(t, "f1")

	assert.Equal(t, ActionSuppress, r.Handle(f1, true, false))
	assert.Equal(t, ActionSuppress, r.Handle(f1, false, false))
	assert.Empty(t, em.emits, "blocked key must not produce synthetic output")
}

func TestComboBeatsSingleKey(t *testing.T) {
	r, em := newTestResolver(t, func(reg *registry.Registry) {
		require.NoError(t, reg.AddMapping("a", "b", ""))
		require.NoError(t, reg.AddMapping("ctrl+a", "c", ""))
	})

	assert.Equal(t, ActionPass, r.Handle(vk(t, "ctrl"), true, false))
	assert.Equal(t, ActionSuppress, r.Handle(vk(t, "a"), true, false))

	require.Len(t, em.emits, 1)
	assert.Equal(t, "C", em.emits[0].target)
}

func TestDisabledComboFallsBackToSingle(t *testing.T) {
	// A disabled chord rule must not shadow an enabled bare-key rule.
	r, em := newTestResolver(t, func(reg *registry.Registry) {
		require.NoError(t, reg.Block("ctrl+a", ""))
		require.NoError(t, reg.ToggleBlock("ctrl+a"))
		require.NoError(t, reg.AddMapping("a", "b", ""))
	})

	assert.Equal(t, ActionPass, r.Handle(vk(t, "ctrl"), true, false))
	assert.Equal(t, ActionSuppress, r.Handle(vk(t, "a"), true, false))

	require.Len(t, em.emits, 1)
	assert.Equal(t, emitCall{target: "B", release: false}, em.emits[0])
}

func TestModifierTrackingSurvivesSuppression(t *testing.T) {
	// Even when the modifier itself is blocked, it must still count toward
	// combo detection for the next key.
	r, em := newTestResolver(t, func(reg *registry.Registry) {
		require.NoError(t, reg.Block("ctrl", ""))
		require.NoError(t, reg.AddMapping("ctrl+a", "b", ""))
	})

	assert.Equal(t, ActionSuppress, r.Handle(vk(t, "ctrl"), true, false))
	assert.Equal(t, ActionSuppress, r.Handle(vk(t, "a"), true, false))

	require.Len(t, em.emits, 1)
	assert.Equal(t, "B", em.emits[0].target)
}

func TestModifierReleaseEndsCombo(t *testing.T) {
	r, em := newTestResolver(t, func(reg *registry.Registry) {
		require.NoError(t, reg.AddMapping("ctrl+a", "b", ""))
	})
	ctrl, a := vk(t, "ctrl"), vk(t, "a")

	assert.Equal(t, ActionPass, r.Handle(ctrl, true, false))
	assert.Equal(t, ActionPass, r.Handle(ctrl, false, false))
	assert.Equal(t, ActionPass, r.Handle(a, true, false))
	assert.Empty(t, em.emits)
}

func TestSelfInjectionImmunity(t *testing.T) {
	// An event carrying the sentinel is never matched against the rules,
	// even when its code coincides with a configured source.
	r, em := newTestResolver(t, func(reg *registry.Registry) {
		require.NoError(t, reg.AddMapping("a", "a", ""))
	})
	a := vk(t, "a")

	assert.Equal(t, ActionPass, r.Handle(a, true, true))
	assert.Equal(t, ActionPass, r.Handle(a, false, true))
	assert.Empty(t, em.emits)
}

func TestInjectedModifierNotTracked(t *testing.T) {
	r, em := newTestResolver(t, func(reg *registry.Registry) {
		require.NoError(t, reg.AddMapping("ctrl+a", "b", ""))
	})

	// Synthesized ctrl-down must not contribute to combo detection.
	assert.Equal(t, ActionPass, r.Handle(vk(t, "ctrl"), true, true))
	assert.Equal(t, ActionPass, r.Handle(vk(t, "a"), true, false))
	assert.Empty(t, em.emits)
}

func TestEmitterErrorStillSuppresses(t *testing.T) {
	r, em := newTestResolver(t, func(reg *registry.Registry) {
		require.NoError(t, reg.AddMapping("a", "b", ""))
	})
	em.err = errors.New("injection failed")

	// The source key was already claimed; availability over strictness.
	assert.Equal(t, ActionSuppress, r.Handle(vk(t, "a"), true, false))
}

func TestResetClearsLiveState(t *testing.T) {
	r, em := newTestResolver(t, func(reg *registry.Registry) {
		require.NoError(t, reg.AddMapping("ctrl+a", "b", ""))
	})

	assert.Equal(t, ActionPass, r.Handle(vk(t, "ctrl"), true, false))
	r.Reset()

	// Ctrl is no longer considered held after a reset.
	assert.Equal(t, ActionPass, r.Handle(vk(t, "a"), true, false))
	assert.Empty(t, em.emits)
}

func TestComboEmitterOrdering(t *testing.T) {
	var sent []struct {
		vk keys.VK
		up bool
	}
	em := comboEmitter{send: func(vk keys.VK, up bool) error {
		sent = append(sent, struct {
			vk keys.VK
			up bool
		}{vk, up})
		return nil
	}}

	target, err := keys.Parse("ctrl+shift+z")
	require.NoError(t, err)

	require.NoError(t, em.Emit(target, false))
	require.NoError(t, em.Emit(target, true))
	require.Len(t, sent, 6)

	// Presses in canonical order, releases in reverse.
	down := sent[:3]
	up := sent[3:]
	for i := range down {
		assert.False(t, down[i].up)
		assert.True(t, up[i].up)
		assert.Equal(t, down[i].vk, up[len(up)-1-i].vk)
	}
	assert.Equal(t, keys.VKShift, down[0].vk)
	assert.Equal(t, keys.VKControl, down[1].vk)
	assert.Equal(t, keys.VK(0x5A), down[2].vk)
}

func TestComboEmitterStopsOnError(t *testing.T) {
	calls := 0
	em := comboEmitter{send: func(keys.VK, bool) error {
		calls++
		return errors.New("boom")
	}}

	target, err := keys.Parse("ctrl+z")
	require.NoError(t, err)
	assert.Error(t, em.Emit(target, false))
	assert.Equal(t, 1, calls)
}

func TestStartRefusedWithoutRules(t *testing.T) {
	h := New(registry.New(), slog.Default(), nil)
	require.ErrorIs(t, h.Start(), ErrNoRules)
}

func TestStartGuardPassesWithRules(t *testing.T) {
	rules := registry.New()
	require.NoError(t, rules.Block("f1", ""))
	require.NoError(t, startGuard(rules))
}
