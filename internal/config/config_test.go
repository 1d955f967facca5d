package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	content := `filter:
  message:
    - "deprecated API usage in legacy module"
  message_re:
    - "^vendored:"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, found, err := Load(path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"deprecated API usage in legacy module"}, cfg.Filter.Message)
	assert.Equal(t, []string{"^vendored:"}, cfg.Filter.MessageRE)
}

func TestLoadMissingDefaultPathIsFine(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, found, err := Load(DefaultPath)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, cfg.Filter.Message)
	assert.Empty(t, cfg.Filter.MessageRE)
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadParseFailureIncludesCause(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("filter: [unclosed"), 0644))

	_, _, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't parse config file")
}
