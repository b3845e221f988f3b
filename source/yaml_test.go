package source_test

import (
	"testing"

	"github.com/0xalexb/varde/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settingsDoc = `
services:
  api:
    TOKEN: abc123
    TIMEOUT: 30
  worker:
    QUEUE: jobs
top: level
`

func TestYAML_WholeDocument(t *testing.T) {
	t.Parallel()

	values, err := source.YAML([]byte("TOKEN: abc123\nTIMEOUT: 30\n")).Load()
	require.NoError(t, err)
	assert.Equal(t, "abc123", values["TOKEN"])
	assert.NotNil(t, values["TIMEOUT"])
}

func TestYAML_Section(t *testing.T) {
	t.Parallel()

	values, err := source.YAML([]byte(settingsDoc), source.Section("services:api")).Load()
	require.NoError(t, err)
	assert.Equal(t, "abc123", values["TOKEN"])

	_, hasQueue := values["QUEUE"]
	assert.False(t, hasQueue)
}

func TestYAML_SectionNotFound(t *testing.T) {
	t.Parallel()

	_, err := source.YAML([]byte(settingsDoc), source.Section("services:missing")).Load()
	require.Error(t, err)
	require.ErrorIs(t, err, source.ErrSectionNotFound)
	assert.Contains(t, err.Error(), "services:missing")
}

func TestYAML_EmptyData(t *testing.T) {
	t.Parallel()

	_, err := source.YAML(nil).Load()
	require.ErrorIs(t, err, source.ErrEmptyDocument)
}

func TestYAML_InvalidDocument(t *testing.T) {
	t.Parallel()

	_, err := source.YAML([]byte("a: [unclosed")).Load()
	require.Error(t, err)
}

func TestYAML_NestedValuesAreStringKeyedMaps(t *testing.T) {
	t.Parallel()

	values, err := source.YAML([]byte(settingsDoc)).Load()
	require.NoError(t, err)

	services, ok := values["services"].(map[string]any)
	require.True(t, ok, "nested mappings must decode as map[string]any")

	api, ok := services["api"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "abc123", api["TOKEN"])
}
