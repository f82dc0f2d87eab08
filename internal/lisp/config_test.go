package lisp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "golisprc.yaml")
	contents := "prompt: \"lisp> \"\nmaxStackDepth: 5000\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "lisp> ", cfg.Prompt)
	assert.Equal(t, 5000, cfg.MaxStackDepth)
	assert.Equal(t, DefaultConfig().ContinuationPrompt, cfg.ContinuationPrompt)
}
