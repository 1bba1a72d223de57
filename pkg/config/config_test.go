package config_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pagedots/pkg/config"
	"github.com/macropower/pagedots/pkg/indicator"
	"github.com/macropower/pagedots/pkg/ui"
)

func TestNew(t *testing.T) {
	t.Parallel()

	cfg := config.New()

	assert.Equal(t, config.APIVersion, cfg.APIVersion)
	assert.Equal(t, config.Kind, cfg.Kind)
	require.NotNil(t, cfg.Indicator)
	require.NotNil(t, cfg.UI)
	assert.Equal(t, indicator.DefaultConfig(), *cfg.Indicator)
	assert.Equal(t, ui.DefaultPages, cfg.UI.Pages)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		modify func(c *config.Config)
		want   error
	}{
		"defaults": {
			modify: func(*config.Config) {},
		},
		"invalid indicator": {
			modify: func(c *config.Config) {
				c.Indicator.AlphaMin = 0.9
				c.Indicator.AlphaMax = 0.1
			},
			want: indicator.ErrInvalidConfig,
		},
		"invalid ui": {
			modify: func(c *config.Config) {
				c.UI.Pages = -1
			},
			want: ui.ErrInvalidConfig,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := config.New()
			tc.modify(cfg)

			err := cfg.Validate()
			if tc.want != nil {
				require.ErrorIs(t, err, tc.want)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestConfig_MarshalYAML(t *testing.T) {
	t.Parallel()

	cfg := config.New()
	cfg.Indicator.VisibleCount = 7
	cfg.UI.Theme = "monokai"

	b, err := cfg.MarshalYAML()
	require.NoError(t, err)

	assert.Contains(t, string(b), "apiVersion: "+config.APIVersion)
	assert.Contains(t, string(b), "visibleCount: 7")

	got, err := config.NewLoaderFromBytes(b).Load()
	require.NoError(t, err)

	assert.Equal(t, 7, got.Indicator.VisibleCount)
	assert.Equal(t, "monokai", got.UI.Theme)
	assert.Equal(t, cfg.UI.KeyBinds.GetKeyBinds(), got.UI.KeyBinds.GetKeyBinds())
}

func TestSchema(t *testing.T) {
	t.Parallel()

	b, err := config.Schema()
	require.NoError(t, err)

	var schema struct {
		ID         string                     `json:"$id"`
		Properties map[string]json.RawMessage `json:"properties"`
	}

	require.NoError(t, json.Unmarshal(b, &schema))

	assert.Equal(t, config.SchemaURL, schema.ID)
	assert.Contains(t, schema.Properties, "apiVersion")
	assert.Contains(t, schema.Properties, "kind")
	assert.Contains(t, schema.Properties, "indicator")
	assert.Contains(t, schema.Properties, "ui")
	assert.Contains(t, string(schema.Properties["apiVersion"]), config.APIVersion)
}
