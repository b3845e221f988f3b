package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/varde/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestYAMLFile_Load(t *testing.T) {
	t.Parallel()

	path := writeSettingsFile(t, "TOKEN: abc123\n")

	values, err := source.YAMLFile(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "abc123", values["TOKEN"])
}

func TestYAMLFile_Section(t *testing.T) {
	t.Parallel()

	path := writeSettingsFile(t, "myapp:\n  TOKEN: abc123\n")

	values, err := source.YAMLFile(path, source.Section("myapp")).Load()
	require.NoError(t, err)
	assert.Equal(t, "abc123", values["TOKEN"])
}

func TestYAMLFile_ReadsOnEveryLoad(t *testing.T) {
	t.Parallel()

	path := writeSettingsFile(t, "TOKEN: first\n")
	src := source.YAMLFile(path)

	values, err := src.Load()
	require.NoError(t, err)
	assert.Equal(t, "first", values["TOKEN"])

	require.NoError(t, os.WriteFile(path, []byte("TOKEN: second\n"), 0o600))

	values, err = src.Load()
	require.NoError(t, err)
	assert.Equal(t, "second", values["TOKEN"])
}

func TestYAMLFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := source.YAMLFile(filepath.Join(t.TempDir(), "absent.yaml")).Load()
	require.Error(t, err)
}

func TestYAMLFile_Directory(t *testing.T) {
	t.Parallel()

	_, err := source.YAMLFile(t.TempDir()).Load()
	require.Error(t, err)
	require.ErrorIs(t, err, source.ErrPathIsDirectory)
}
