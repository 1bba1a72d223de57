package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pagedots/internal/cli"
)

func TestBindEnvVars(t *testing.T) {
	tcs := map[string]struct {
		envVars       map[string]string
		wantLogLevel  string
		wantLogFormat string
		wantPages     int
		args          []string
	}{
		"environment variables are bound when no args provided": {
			envVars: map[string]string{
				"PAGEDOTS_LOG_LEVEL":  "debug",
				"PAGEDOTS_LOG_FORMAT": "json",
				"PAGEDOTS_PAGES":      "30",
			},
			args:          []string{},
			wantLogLevel:  "debug",
			wantLogFormat: "json",
			wantPages:     30,
		},
		"command line args take precedence over environment variables": {
			envVars: map[string]string{
				"PAGEDOTS_LOG_LEVEL":  "debug",
				"PAGEDOTS_LOG_FORMAT": "json",
				"PAGEDOTS_PAGES":      "30",
			},
			args:          []string{"--log-level", "error", "--log-format", "text", "--pages", "4"},
			wantLogLevel:  "error",
			wantLogFormat: "text",
			wantPages:     4,
		},
		"partial environment variable override": {
			envVars: map[string]string{
				"PAGEDOTS_LOG_LEVEL": "warn",
			},
			args:          []string{"--log-format", "json"},
			wantLogLevel:  "warn",
			wantLogFormat: "json",
		},
		"invalid value keeps the default": {
			envVars: map[string]string{
				"PAGEDOTS_PAGES": "many",
			},
			wantLogLevel:  "info",
			wantLogFormat: "text",
		},
		"no environment variables uses defaults": {
			envVars:       map[string]string{},
			args:          []string{},
			wantLogLevel:  "info",
			wantLogFormat: "text",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			for key, val := range tc.envVars {
				t.Setenv(key, val)
			}

			cmd := cli.NewRootCmd()
			cmd.SetArgs(tc.args)

			err := cmd.ParseFlags(tc.args)
			require.NoError(t, err)

			logLevel, err := cmd.Flags().GetString("log-level")
			require.NoError(t, err)
			assert.Equal(t, tc.wantLogLevel, logLevel)

			logFormat, err := cmd.Flags().GetString("log-format")
			require.NoError(t, err)
			assert.Equal(t, tc.wantLogFormat, logFormat)

			pages, err := cmd.Flags().GetInt("pages")
			require.NoError(t, err)
			assert.Equal(t, tc.wantPages, pages)
		})
	}
}

func TestEnvironmentVariableUsageUpdate(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCmd()

	logLevelFlag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, logLevelFlag)
	assert.Contains(t, logLevelFlag.Usage, "$PAGEDOTS_LOG_LEVEL")

	configFlag := cmd.Flags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Contains(t, configFlag.Usage, "$PAGEDOTS_CONFIG")
}
