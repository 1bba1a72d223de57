package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pagedots/pkg/config"
)

//nolint:paralleltest // We need to set environment variables, so run tests sequentially.
func TestGetPath(t *testing.T) {
	tcs := map[string]struct {
		setupEnv func(t *testing.T)
		want     string
	}{
		"XDG_CONFIG_HOME is set and not empty": {
			setupEnv: func(t *testing.T) {
				t.Helper()
				t.Setenv("XDG_CONFIG_HOME", "/custom/config")
			},
			want: "/custom/config/pagedots/config.yaml",
		},
		"XDG_CONFIG_HOME is empty and HOME is set": {
			setupEnv: func(t *testing.T) {
				t.Helper()
				t.Setenv("XDG_CONFIG_HOME", "")
				t.Setenv("HOME", "/test/home")
			},
			want: "/test/home/.config/pagedots/config.yaml",
		},
		"XDG_CONFIG_HOME is empty and HOME is empty": {
			setupEnv: func(t *testing.T) {
				t.Helper()
				t.Setenv("XDG_CONFIG_HOME", "")
				t.Setenv("HOME", "")
			},
			want: filepath.Join(os.TempDir(), "pagedots", "config.yaml"), //nolint:usetesting // Needs to equal host.
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			tc.setupEnv(t)

			assert.Equal(t, tc.want, config.GetPath("config.yaml"))
		})
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	ok, err := config.WriteFile(path, []byte("first"), false)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = config.WriteFile(path, []byte("second"), false)
	require.NoError(t, err)
	assert.False(t, ok)

	data, err := config.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	ok, err = config.WriteFile(path, []byte("third"), true)
	require.NoError(t, err)
	assert.True(t, ok)

	data, err = config.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "third", string(data))

	backups, err := filepath.Glob(filepath.Join(dir, "nested", "config.yaml.*.old"))
	require.NoError(t, err)
	require.Len(t, backups, 1)

	data, err = os.ReadFile(backups[0])
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	_, err = config.WriteFile(dir, []byte("x"), true)
	require.ErrorIs(t, err, config.ErrIsDir)
}
