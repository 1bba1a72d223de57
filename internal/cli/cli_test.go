package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/fang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pagedots/internal/cli"
	"github.com/macropower/pagedots/pkg/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := cli.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(t.Context())

	return out.String(), err
}

func TestReplay(t *testing.T) {
	t.Parallel()

	path := filepath.Join("testdata", "back.yaml")

	tcs := map[string]struct {
		check func(t *testing.T, out string)
		args  []string
	}{
		"table": {
			args: []string{"replay", path},
			check: func(t *testing.T, out string) {
				t.Helper()

				assert.Contains(t, out, "STEP")
				assert.Contains(t, out, "settled 1")
				assert.Contains(t, out, "dragging 1→0 50%")
			},
		},
		"json": {
			args: []string{"replay", path, "--format", "json"},
			check: func(t *testing.T, out string) {
				t.Helper()

				var frames []map[string]any
				require.NoError(t, json.Unmarshal([]byte(out), &frames))
				require.Len(t, frames, 5)
				assert.Equal(t, "settled 0", frames[4]["motion"])
			},
		},
		"frames": {
			args: []string{"replay", path, "-o", "frames", "--row-height", "40"},
			check: func(t *testing.T, out string) {
				t.Helper()

				assert.Contains(t, out, "●")
				assert.Contains(t, out, "scrub index=0 fraction=0.5")
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, tc.args...)
			require.NoError(t, err)
			tc.check(t, out)
		})
	}
}

func TestReplay_Height(t *testing.T) {
	t.Parallel()

	path := filepath.Join("testdata", "back.yaml")

	base, err := execute(t, "replay", path, "--format", "yaml")
	require.NoError(t, err)

	tall, err := execute(t, "replay", path, "--format", "yaml", "--height", "800")
	require.NoError(t, err)

	assert.NotEqual(t, base, tall)
}

func TestReplay_Errors(t *testing.T) {
	t.Parallel()

	tcs := map[string][]string{
		"missing script":  {"replay", filepath.Join("testdata", "missing.yaml")},
		"unknown format":  {"replay", filepath.Join("testdata", "back.yaml"), "--format", "xml"},
		"negative height": {"replay", filepath.Join("testdata", "back.yaml"), "--height", "-1"},
		"no args":         {"replay"},
	}

	for name, args := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, args...)
			require.Error(t, err)
		})
	}
}

func TestSchema(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{"config", "script"} {
		t.Run(kind, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, "schema", kind)
			require.NoError(t, err)

			var schema map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &schema))
			assert.Contains(t, schema, "properties")
		})
	}

	_, err := execute(t, "schema", "other")
	require.Error(t, err)
}

func TestRun_ShowConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "--config", path, "--show-config", "--pages", "7")
	require.NoError(t, err)

	assert.Contains(t, out, "apiVersion: pagedots.macropower.dev/v1beta1")
	assert.Contains(t, out, "pages: 7")
	assert.FileExists(t, path)
}

func TestRun_WriteConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "--config", path, "--write-config")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	out, err = execute(t, "--config", path, "--write-config")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")
}

func TestRun_WriteConfigForce(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	_, err := execute(t, "--config", path, "--write-config")
	require.NoError(t, err)

	out, err := execute(t, "--config", path, "--write-config", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")

	require.NoError(t, os.WriteFile(path, []byte("apiVersion: v1\n"), 0o600))

	out, err = execute(t, "--config", path, "--write-config", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(config.DefaultYAML()), string(got))

	backups, err := filepath.Glob(filepath.Join(dir, "config.*.old"))
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}

func TestRun_InvalidArgs(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		config string
		args   []string
	}{
		"negative pages": {
			args: []string{"--pages", "-2"},
		},
		"wrong api version": {
			config: "apiVersion: v1\nkind: Configuration\n",
		},
		"unknown field": {
			config: "apiVersion: pagedots.macropower.dev/v1beta1\nkind: Configuration\nfoo: bar\n",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "config.yaml")
			if tc.config != "" {
				require.NoError(t, os.WriteFile(path, []byte(tc.config), 0o600))
			}

			args := append([]string{"--config", path, "--show-config"}, tc.args...)

			_, err := execute(t, args...)
			require.Error(t, err)
		})
	}
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err      error
		wantHint bool
	}{
		"usage":     {err: errUsage("unknown flag: --nope"), wantHint: true},
		"not a tty": {err: cli.ErrNotTerminal, wantHint: true},
		"other":     {err: errUsage("boom")},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			cli.ErrorHandler(&buf, fang.Styles{}, tc.err)

			out := buf.String()
			assert.Contains(t, out, tc.err.Error())
			assert.Equal(t, tc.wantHint, strings.Contains(out, "Try"))
		})
	}
}

type errUsage string

func (e errUsage) Error() string { return string(e) }
