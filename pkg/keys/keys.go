// Package keys defines configurable key bindings and renders them as help
// columns.
package keys

import (
	"errors"
	"fmt"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// Ellipsis marks truncated descriptions.
const Ellipsis = "…"

// ErrDuplicateKey is returned by [ValidateBinds].
var ErrDuplicateKey = errors.New("duplicate key binding")

// Key is a single key, as reported by bubbletea's KeyMsg.String.
type Key struct {
	// Code is the key code identifier.
	Code string `json:"code" jsonschema:"title=Code"`
	// Alias is an alternative display name for the key.
	Alias string `json:"alias,omitempty" jsonschema:"title=Alias"`
	// Hidden determines if the key should be hidden from the help view.
	Hidden bool `json:"hidden,omitempty" jsonschema:"title=Hidden"`
}

type KeyOpt func(k *Key)

func New(code string, opts ...KeyOpt) Key {
	k := Key{Code: code}
	for _, opt := range opts {
		opt(&k)
	}

	return k
}

func WithAlias(alias string) KeyOpt {
	return func(k *Key) {
		k.Alias = alias
	}
}

func Hidden() KeyOpt {
	return func(k *Key) {
		k.Hidden = true
	}
}

func (k Key) String() string {
	if k.Alias != "" {
		return k.Alias
	}

	return k.Code
}

// KeyBind is an action and the keys that trigger it.
type KeyBind struct {
	// Description provides a description of what the key binding does.
	Description string `json:"description" jsonschema:"title=Description"`
	// Keys contains the list of keys that trigger this binding.
	Keys []Key `json:"keys" jsonschema:"title=Keys"`
}

func NewBind(description string, keys ...Key) KeyBind {
	return KeyBind{Description: description, Keys: keys}
}

// String joins the visible keys with "/".
func (kb *KeyBind) String() string {
	var visible []string

	for _, k := range kb.Keys {
		if !k.Hidden {
			visible = append(visible, k.String())
		}
	}

	return strings.Join(visible, "/")
}

// StringRow renders the binding padded to keyWidth and descWidth. It returns
// an empty string when all keys are hidden.
func (kb *KeyBind) StringRow(keyWidth, descWidth int) string {
	keys := kb.String()
	if keys == "" {
		return ""
	}

	desc := truncateWithEllipsis(kb.Description, descWidth-2)

	return keys + pad(keys, keyWidth) + "  " + desc + pad(desc, descWidth-2)
}

// Match reports whether key triggers the binding.
func (kb *KeyBind) Match(key string) bool {
	for _, k := range kb.Keys {
		if k.Code == key {
			return true
		}
	}

	return false
}

// AddKey appends key unless a key with the same code is already bound.
func (kb *KeyBind) AddKey(key Key) {
	if kb == nil || kb.Match(key.Code) {
		return
	}

	kb.Keys = append(kb.Keys, key)
}

// SetDefaultBind sets *kb to def when it is nil, and fills its empty fields
// from def otherwise.
func SetDefaultBind(kb **KeyBind, def KeyBind) {
	if *kb == nil {
		*kb = &def

		return
	}

	if len((*kb).Keys) == 0 {
		(*kb).Keys = def.Keys
	}
	if (*kb).Description == "" {
		(*kb).Description = def.Description
	}
}

// ValidateBinds returns an error for every key code bound more than once
// across all groups.
func ValidateBinds(groups ...[]KeyBind) error {
	var (
		errs []error
		seen = map[string]string{}
	)

	for _, g := range groups {
		for _, kb := range g {
			for _, k := range kb.Keys {
				if prev, ok := seen[k.Code]; ok {
					errs = append(errs, fmt.Errorf("%w: %q used by %q and %q",
						ErrDuplicateKey, k.Code, prev, kb.Description))
				}

				seen[k.Code] = kb.Description
			}
		}
	}

	return errors.Join(errs...)
}

// KeyBindRenderer lays out groups of bindings side by side.
type KeyBindRenderer struct {
	columns [][]KeyBind
}

// AddColumn adds a column. Empty columns are ignored.
func (r *KeyBindRenderer) AddColumn(kbs ...KeyBind) {
	if len(kbs) > 0 {
		r.columns = append(r.columns, kbs)
	}
}

// Render renders all columns into width cells.
func (r *KeyBindRenderer) Render(width int) string {
	n := len(r.columns)
	if n == 0 {
		return ""
	}

	colWidth := max(6, width/n-2)
	remainder := strings.Repeat(" ", max(0, width%n))

	cols := make([][]string, n)
	rows := 0

	for i, c := range r.columns {
		cols[i] = column(colWidth, c...)
		rows = max(rows, len(cols[i]))
	}

	lines := make([]string, 0, rows)

	for row := range rows {
		var sb strings.Builder

		for _, c := range cols {
			cell := strings.Repeat(" ", colWidth)
			if row < len(c) {
				cell = c[row]
			}

			sb.WriteString(" " + cell + " ")
		}

		sb.WriteString(remainder)
		lines = append(lines, sb.String())
	}

	return strings.Join(lines, "\n")
}

func column(width int, kbs ...KeyBind) []string {
	keyWidth := 0
	for _, kb := range kbs {
		keyWidth = max(keyWidth, ansi.PrintableRuneWidth(kb.String()))
	}

	rows := []string{}

	for _, kb := range kbs {
		if row := kb.StringRow(keyWidth, width-keyWidth); row != "" {
			rows = append(rows, row)
		}
	}

	return rows
}

func pad(s string, width int) string {
	return strings.Repeat(" ", max(0, width-ansi.PrintableRuneWidth(s)))
}

func truncateWithEllipsis(s string, width int) string {
	switch {
	case s == "":
		return ""
	case width <= 0:
		return Ellipsis
	case ansi.PrintableRuneWidth(s) <= width:
		return s
	}

	//nolint:gosec // G115: width is positive.
	return truncate.StringWithTail(s, uint(width), Ellipsis)
}
