package yaml

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/printer"
	"github.com/goccy/go-yaml/token"
)

func NewPathBuilder() *yaml.PathBuilder {
	return &yaml.PathBuilder{}
}

// Error is an error located in a YAML document, either by [token.Token] or by
// [yaml.Path]. With a Source, the message includes the surrounding lines.
type Error struct {
	Err     error
	Path    *yaml.Path
	Token   *token.Token
	Source  []byte
	Colored bool
}

type ErrorOpt func(e *Error)

func NewError(err error, opts ...ErrorOpt) *Error {
	e := &Error{Err: err}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

func WithPath(path *yaml.Path) ErrorOpt {
	return func(e *Error) {
		e.Path = path
	}
}

func WithToken(tk *token.Token) ErrorOpt {
	return func(e *Error) {
		e.Token = tk
	}
}

func WithSource(source []byte) ErrorOpt {
	return func(e *Error) {
		e.Source = source
	}
}

func WithColor(colored bool) ErrorOpt {
	return func(e *Error) {
		e.Colored = colored
	}
}

// Wrap applies opts if err is an [*Error], and returns err.
func Wrap(err error, opts ...ErrorOpt) error {
	var yamlErr *Error
	if errors.As(err, &yamlErr) {
		for _, opt := range opts {
			opt(yamlErr)
		}
	}

	return err
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if e.Err == nil {
		return ""
	}

	tk := e.Token
	if tk == nil && e.Path != nil && e.Source != nil {
		tk = tokenAtPath(e.Source, e.Path)
	}

	if tk == nil {
		if e.Path != nil {
			return fmt.Sprintf("error at %s: %v", e.Path.String(), e.Err)
		}

		return e.Err.Error()
	}

	msg := fmt.Sprintf("[%d:%d] %v", tk.Position.Line, tk.Position.Column, e.Err)
	if e.Source == nil {
		return msg
	}

	var pp printer.Printer

	return msg + "\n" + pp.PrintErrorToken(tk, e.Colored)
}

// tokenAtPath returns the token of the key at path, or of the value when path
// has no key (the root or a sequence item). It returns nil when source cannot
// be parsed or path does not exist.
func tokenAtPath(source []byte, path *yaml.Path) *token.Token {
	file, err := parser.ParseBytes(source, 0)
	if err != nil {
		return nil
	}

	node, err := path.FilterFile(file)
	if err != nil || node == nil {
		return nil
	}

	if tk := keyToken(file, path); tk != nil {
		return tk
	}

	return node.GetToken()
}

func keyToken(file *ast.File, path *yaml.Path) *token.Token {
	s := path.String()

	dot := strings.LastIndex(s, ".")
	if dot == -1 || dot < strings.LastIndex(s, "[") {
		return nil
	}

	parent, err := yaml.PathString(s[:dot])
	if err != nil {
		return nil
	}

	node, err := parent.FilterFile(file)
	if err != nil {
		return nil
	}

	mapping, ok := node.(*ast.MappingNode)
	if !ok {
		return nil
	}

	for _, v := range mapping.Values {
		if v.Key.String() == s[dot+1:] {
			return v.Key.GetToken()
		}
	}

	return nil
}
