package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLayered(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)

	userFile := filepath.Join(home, "ezslider", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(userFile), 0755))
	require.NoError(t, os.WriteFile(userFile, []byte("loop = true\nitems = 2\ntarget = \"#user\"\n"), 0644))

	local := filepath.Join(t.TempDir(), ".ezslider.toml")
	require.NoError(t, os.WriteFile(local, []byte("items = 3\n"), 0644))

	opts, err := LoadLayered(NewConfigService(), local, Options{Target: "#flag"})
	require.NoError(t, err)

	assert.Equal(t, "#flag", opts.Target)
	assert.Equal(t, 3, *opts.Items)
	assert.True(t, *opts.Loop)
	assert.Nil(t, opts.Rewind)
}

func TestLoadLayeredSkipsMissingFiles(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)

	opts, err := LoadLayered(NewConfigService(), filepath.Join(home, "absent.toml"), Options{Items: Int(4)})
	require.NoError(t, err)
	assert.Equal(t, 4, *opts.Items)
	assert.Empty(t, opts.Target)
}

func TestLoadLayeredRejectsBrokenLocalFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)

	local := filepath.Join(home, ".ezslider.toml")
	require.NoError(t, os.WriteFile(local, []byte("items = \"many\"\n"), 0644))

	_, err := LoadLayered(NewConfigService(), local, Options{})
	assert.Error(t, err)
}
