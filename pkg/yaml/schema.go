package yaml

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaGenerator reflects a JSON schema from a Go value.
// Uses [github.com/invopop/jsonschema].
type SchemaGenerator struct {
	r  *jsonschema.Reflector
	v  any
	id string
}

// NewSchemaGenerator creates a [SchemaGenerator] for v, published under id.
// Fields are only required when tagged with jsonschema:"required".
func NewSchemaGenerator(v any, id string) *SchemaGenerator {
	return &SchemaGenerator{
		v:  v,
		id: id,
		r: &jsonschema.Reflector{
			RequiredFromJSONSchemaTags: true,
			DoNotReference:             true,
		},
	}
}

// Generate returns the indented JSON schema.
func (g *SchemaGenerator) Generate() ([]byte, error) {
	s := g.r.Reflect(g.v)
	s.ID = jsonschema.ID(g.id)

	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return append(b, '\n'), nil
}

// Validator compiles the generated schema into a [Validator].
func (g *SchemaGenerator) Validator() (*Validator, error) {
	b, err := g.Generate()
	if err != nil {
		return nil, err
	}

	return NewValidator(g.id, b)
}
