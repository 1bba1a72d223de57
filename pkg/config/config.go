package config

import (
	"fmt"

	"github.com/invopop/jsonschema"

	_ "embed"

	"github.com/macropower/pagedots/pkg/indicator"
	"github.com/macropower/pagedots/pkg/ui"
	"github.com/macropower/pagedots/pkg/yaml"
)

const (
	// APIVersion is the current API version of the configuration file.
	APIVersion = "pagedots.macropower.dev/v1beta1"
	// Kind is the kind of the configuration file.
	Kind = "Configuration"
	// SchemaURL identifies the JSON schema of [Config].
	SchemaURL = "/configuration.v1beta1.json"
	// DefaultFileName is the name of the configuration file.
	DefaultFileName = "config.yaml"
)

var (
	//go:embed config.yaml
	defaultConfigYAML []byte

	// ValidAPIVersions contains all valid API versions.
	ValidAPIVersions = []string{APIVersion}

	// ValidKinds contains all valid kinds.
	ValidKinds = []string{Kind}

	// DefaultValidator validates configuration files against [Schema].
	DefaultValidator = mustNewValidator()
)

// TypeMeta contains the API version and kind of a configuration file.
type TypeMeta struct {
	// APIVersion specifies the API version for this configuration.
	APIVersion string `json:"apiVersion" jsonschema:"title=API Version"`
	// Kind defines the type of configuration.
	Kind string `json:"kind" jsonschema:"title=Kind"`
}

// Config represents the global pagedots configuration.
//
//nolint:recvcheck // Must satisfy the jsonschema interface.
type Config struct {
	Indicator *indicator.Config `json:"indicator,omitempty" jsonschema:"title=Indicator"`
	UI        *ui.Config        `json:"ui,omitempty"        jsonschema:"title=UI"`
	TypeMeta  `json:",inline"`
}

// New creates a new [Config] with default values.
func New() *Config {
	c := &Config{
		TypeMeta: TypeMeta{
			APIVersion: APIVersion,
			Kind:       Kind,
		},
	}
	c.EnsureDefaults()

	return c
}

// EnsureDefaults initializes nil fields to their default values.
func (c *Config) EnsureDefaults() {
	if c.Indicator == nil {
		c.Indicator = &indicator.Config{}
	}

	c.Indicator.EnsureDefaults()

	if c.UI == nil {
		c.UI = ui.NewConfig()
	} else {
		c.UI.EnsureDefaults()
	}
}

// Validate checks the values of the configuration. It does not check the
// schema, see [Loader.Validate] for that.
func (c *Config) Validate() error {
	if c.Indicator != nil {
		err := c.Indicator.Validate()
		if err != nil {
			return fmt.Errorf("validate indicator config: %w", err)
		}
	}

	if c.UI != nil {
		err := c.UI.Validate()
		if err != nil {
			return fmt.Errorf("validate ui config: %w", err)
		}
	}

	return nil
}

func (c Config) JSONSchemaExtend(jss *jsonschema.Schema) {
	extendSchemaWithEnums(jss, ValidAPIVersions, ValidKinds)
}

// MarshalYAML serializes the config to YAML.
func (c Config) MarshalYAML() ([]byte, error) {
	type alias Config

	b, err := yaml.Marshal(alias(c))
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	return b, nil
}

// WriteDefault writes the embedded default config.yaml to path. An existing
// file is only replaced when force is set. It reports whether the file was
// written.
func WriteDefault(path string, force bool) (bool, error) {
	ok, err := WriteFile(path, defaultConfigYAML, force)
	if err != nil {
		return false, fmt.Errorf("write default config: %w", err)
	}

	return ok, nil
}

// DefaultYAML returns the contents of the default configuration file.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultConfigYAML...)
}

// DefaultPath returns the default location of the configuration file.
func DefaultPath() string {
	return GetPath(DefaultFileName)
}

// Schema returns the JSON schema of [Config].
func Schema() ([]byte, error) {
	return yaml.NewSchemaGenerator(&Config{}, SchemaURL).Generate()
}

func mustNewValidator() *yaml.Validator {
	v, err := yaml.NewSchemaGenerator(&Config{}, SchemaURL).Validator()
	if err != nil {
		panic(fmt.Sprintf("config schema: %v", err))
	}

	return v
}

func extendSchemaWithEnums(jss *jsonschema.Schema, apiVersions, kinds []string) {
	apiVersion, ok := jss.Properties.Get("apiVersion")
	if !ok {
		panic("apiVersion property not found in schema")
	}

	for _, version := range apiVersions {
		apiVersion.OneOf = append(apiVersion.OneOf, &jsonschema.Schema{
			Type:  "string",
			Const: version,
			Title: "API Version",
		})
	}

	_, _ = jss.Properties.Set("apiVersion", apiVersion)

	kind, ok := jss.Properties.Get("kind")
	if !ok {
		panic("kind property not found in schema")
	}

	for _, kindValue := range kinds {
		kind.OneOf = append(kind.OneOf, &jsonschema.Schema{
			Type:  "string",
			Const: kindValue,
			Title: "Kind",
		})
	}

	_, _ = jss.Properties.Set("kind", kind)
}
