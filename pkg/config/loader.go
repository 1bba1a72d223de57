package config

import (
	"fmt"

	"github.com/macropower/pagedots/pkg/yaml"
)

// Validator validates decoded configuration data against a schema.
type Validator interface {
	Validate(data any) error
}

// LoaderOpt configures a [Loader].
type LoaderOpt func(*Loader)

// WithValidator replaces [DefaultValidator].
func WithValidator(v Validator) LoaderOpt {
	return func(l *Loader) {
		l.validator = v
	}
}

// WithColor enables ANSI colors in YAML error excerpts.
func WithColor(colored bool) LoaderOpt {
	return func(l *Loader) {
		l.colored = colored
	}
}

// Loader validates and decodes configuration data. Errors point into the
// source data.
type Loader struct {
	validator Validator
	data      []byte
	colored   bool
}

// NewLoaderFromBytes creates a [Loader] for data.
func NewLoaderFromBytes(data []byte, opts ...LoaderOpt) *Loader {
	l := &Loader{
		data:      data,
		validator: DefaultValidator,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// NewLoaderFromFile creates a [Loader] for the file at path.
func NewLoaderFromFile(path string, opts ...LoaderOpt) (*Loader, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	return NewLoaderFromBytes(data, opts...), nil
}

// Validate validates the data against the schema.
func (l *Loader) Validate() error {
	var anyConfig any

	err := yaml.Unmarshal(l.data, &anyConfig, false)
	if err != nil {
		return l.wrap(err)
	}

	if l.validator != nil {
		err = l.validator.Validate(anyConfig)
		if err != nil {
			return l.wrap(err)
		}
	}

	return nil
}

// Load validates the data and returns the decoded [Config], with defaults
// applied to everything the data leaves out.
func (l *Loader) Load() (*Config, error) {
	err := l.Validate()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}

	err = yaml.Unmarshal(l.data, cfg, true)
	if err != nil {
		return nil, l.wrap(err)
	}

	cfg.EnsureDefaults()

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (l *Loader) wrap(err error) error {
	return yaml.Wrap(err, yaml.WithSource(l.data), yaml.WithColor(l.colored))
}

// Load reads, validates and decodes the file at path.
func Load(path string, opts ...LoaderOpt) (*Config, error) {
	l, err := NewLoaderFromFile(path, opts...)
	if err != nil {
		return nil, err
	}

	return l.Load()
}
