package types_test

import (
	"testing"

	"github.com/cottand/streamtype/ilerr"
	"github.com/cottand/streamtype/pos"
	"github.com/cottand/streamtype/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHooksFailUntilInstalled(t *testing.T) {
	types.ResetHooks()
	hooks := types.CurrentHooks()

	_, err := hooks.LibsDir()
	assert.True(t, ilerr.Is(err, ilerr.HookNotInstalled))
	_, err = hooks.FormatType(pos.Range{}, "mp3")
	assert.True(t, ilerr.Is(err, ilerr.HookNotInstalled))
	_, err = hooks.MakeEncoder(pos.Range{}, "mp3", nil)
	assert.True(t, ilerr.Is(err, ilerr.HookNotInstalled))
	err = hooks.CollectAfter(func() error { return nil })
	assert.True(t, ilerr.Is(err, ilerr.HookNotInstalled))

	assert.Panics(t, func() { hooks.IsFormat(types.MakeUnit()) })
	assert.Panics(t, func() { hooks.Logger("fresh") })
	assert.Panics(t, func() { _ = types.MakeUnit().String() })
}

func TestInstallHooksKeepsUnsetEntries(t *testing.T) {
	types.ResetHooks()
	t.Cleanup(types.ResetHooks)

	types.InstallHooks(types.Hooks{
		Print:   func(*types.Type) string { return "printed" },
		LibsDir: func() (string, error) { return "/usr/share/streamtype", nil },
	})

	assert.Equal(t, "printed", types.MakeUnit().String())
	dir, err := types.CurrentHooks().LibsDir()
	require.NoError(t, err)
	assert.Equal(t, "/usr/share/streamtype", dir)

	_, err = types.CurrentHooks().FormatType(pos.Range{}, "wav")
	assert.True(t, ilerr.Is(err, ilerr.HookNotInstalled))

	types.InstallHooks(types.Hooks{CollectAfter: func(f func() error) error { return f() }})
	assert.Equal(t, "printed", types.MakeUnit().String())
	assert.NoError(t, types.CurrentHooks().CollectAfter(func() error { return nil }))
}
