// Package yaml wraps [github.com/goccy/go-yaml] with the options used across
// pagedots, and adds JSON schema generation and validation with errors that
// point into the YAML source.
package yaml

import (
	"bytes"
	"errors"
	"io"

	"github.com/goccy/go-yaml"
)

type Decoder struct {
	d *yaml.Decoder
}

// NewDecoder creates a [Decoder]. Unknown fields are rejected when strict is
// set.
func NewDecoder(r io.Reader, strict bool) *Decoder {
	opts := []yaml.DecodeOption{yaml.AllowDuplicateMapKey()}
	if strict {
		opts = append(opts, yaml.DisallowUnknownField())
	}

	return &Decoder{d: yaml.NewDecoder(r, opts...)}
}

// Decode decodes the next document into v. Syntax and type errors are returned
// as [*Error] with the offending token.
func (d *Decoder) Decode(v any) error {
	err := d.d.Decode(v)
	if err == nil {
		return nil
	}

	var yamlErr yaml.Error
	if errors.As(err, &yamlErr) {
		return NewError(errors.New(yamlErr.GetMessage()), WithToken(yamlErr.GetToken()))
	}

	//nolint:wrapcheck // Return the original error if it's not a [yaml.Error].
	return err
}

// Unmarshal decodes a single document from data. Errors carry data as their
// source.
func Unmarshal(data []byte, v any, strict bool) error {
	err := NewDecoder(bytes.NewReader(data), strict).Decode(v)

	var yamlErr *Error
	if errors.As(err, &yamlErr) {
		yamlErr.Source = data
	}

	return err
}
