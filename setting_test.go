package varde_test

import (
	"testing"

	"github.com/0xalexb/varde"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetting_StaticDefault(t *testing.T) {
	t.Parallel()

	schema := varde.NewSchema(varde.Setting("TIMEOUT", varde.Default(30)))
	obj := varde.NewObject("MYAPP", map[string]any{}, schema)

	value, err := obj.Get("TIMEOUT")
	require.NoError(t, err)
	assert.Equal(t, 30, value)
}

func TestSetting_ExplicitNilDefault(t *testing.T) {
	t.Parallel()

	// Default(nil) is a real default, distinct from "no default": access
	// must not fail.
	schema := varde.NewSchema(varde.Setting("HOOK", varde.Default(nil)))
	obj := varde.NewObject("MYAPP", map[string]any{}, schema)

	value, err := obj.Get("HOOK")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestSetting_RawValueBeatsDefault(t *testing.T) {
	t.Parallel()

	schema := varde.NewSchema(varde.Setting("TIMEOUT", varde.Default(30)))
	obj := varde.NewObject("MYAPP", map[string]any{"TIMEOUT": 5}, schema)

	value, err := obj.Get("TIMEOUT")
	require.NoError(t, err)
	assert.Equal(t, 5, value)
}

func TestSetting_ComputedDefaultOwnerAware(t *testing.T) {
	t.Parallel()

	schema := varde.NewSchema(
		varde.Setting("HOST"),
		varde.Setting("URL", varde.Computed(func(owner *varde.Object) any {
			return "https://" + owner.MustGet("HOST").(string)
		})),
	)
	obj := varde.NewObject("MYAPP", map[string]any{"HOST": "example.org"}, schema)

	value, err := obj.Get("URL")
	require.NoError(t, err)
	assert.Equal(t, "https://example.org", value)
}

func TestSetting_ComputedDefaultOwnerAgnostic(t *testing.T) {
	t.Parallel()

	calls := 0
	schema := varde.NewSchema(varde.Setting("ID", varde.Computed(func() any {
		calls++

		return calls
	})),
	)
	obj := varde.NewObject("MYAPP", map[string]any{}, schema)

	first, err := obj.Get("ID")
	require.NoError(t, err)

	second, err := obj.Get("ID")
	require.NoError(t, err)

	// No caching: the computation runs on every access.
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestSetting_ComputedRejectsOtherShapes(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		varde.Setting("X", varde.Computed(func(s string) any { return s }))
	})
	assert.Panics(t, func() {
		varde.Setting("X", varde.Computed("not a function"))
	})
}
