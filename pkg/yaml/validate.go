package yaml

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Validator validates decoded YAML against a JSON schema.
// Uses [github.com/santhosh-tekuri/jsonschema/v6].
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles schemaData, registered under url.
func NewValidator(url string, schemaData []byte) (*Validator, error) {
	var schema any

	err := json.Unmarshal(schemaData, &schema)
	if err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()

	err = compiler.AddResource(url, schema)
	if err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	jss, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &Validator{schema: jss}, nil
}

func MustNewValidator(url string, schemaData []byte) *Validator {
	v, err := NewValidator(url, schemaData)
	if err != nil {
		panic(err)
	}

	return v
}

// Validate validates data, as decoded into an untyped value. Failures are
// returned as [*Error] with the path of the most specific failing value.
func (v *Validator) Validate(data any) error {
	err := v.schema.Validate(data)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf("schema validation: %w", err)
	}

	return NewError(validationErr, WithPath(pathFromLocation(deepestLocation(validationErr))))
}

func deepestLocation(err *jsonschema.ValidationError) []string {
	deepest := err.InstanceLocation

	for _, cause := range err.Causes {
		if loc := deepestLocation(cause); len(loc) > len(deepest) {
			deepest = loc
		}
	}

	return deepest
}

func pathFromLocation(location []string) *yaml.Path {
	p := NewPathBuilder().Root()

	for _, part := range location {
		if i, err := strconv.ParseUint(part, 10, 0); err == nil {
			p = p.Index(uint(i))
		} else {
			p = p.Child(part)
		}
	}

	return p.Build()
}
