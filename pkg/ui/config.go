package ui

import (
	"errors"
	"fmt"

	"github.com/macropower/pagedots/pkg/keys"
	"github.com/macropower/pagedots/pkg/ui/theme"
)

// Defaults used by [Config.EnsureDefaults].
const (
	DefaultTheme     = "auto"
	DefaultPages     = 12
	DefaultRowHeight = 20
)

// ErrInvalidConfig is returned by [Config.Validate].
var ErrInvalidConfig = errors.New("invalid ui config")

// Config contains TUI-specific configuration.
type Config struct {
	// KeyBinds contains the key bindings of the TUI.
	KeyBinds *KeyBinds `json:"keyBinds,omitempty" jsonschema:"title=Key Binds"`
	// EnableMouse enables mouse wheel scrolling.
	EnableMouse *bool `json:"enableMouse,omitempty" jsonschema:"title=Enable Mouse"`
	// Theme is a chroma style name, or one of "auto", "dark" and "light".
	Theme string `json:"theme,omitempty" jsonschema:"title=Theme"`
	// Pages is the number of demo pages shown in the list.
	Pages int `json:"pages,omitempty" jsonschema:"title=Pages,minimum=0"`
	// PageHeight is the height of a page in rows. Zero matches the height of
	// the list, so that exactly one page is visible at a time.
	PageHeight int `json:"pageHeight,omitempty" jsonschema:"title=Page Height,minimum=0"`
	// RowHeight is the number of indicator length units per terminal row.
	RowHeight float64 `json:"rowHeight,omitempty" jsonschema:"title=Row Height,minimum=0"`
}

// NewConfig returns a [Config] with default values.
func NewConfig() *Config {
	c := &Config{}
	c.EnsureDefaults()

	return c
}

// EnsureDefaults initializes nil and zero fields to their default values.
func (c *Config) EnsureDefaults() {
	if c.KeyBinds == nil {
		c.KeyBinds = &KeyBinds{}
	}

	c.KeyBinds.EnsureDefaults()

	if c.EnableMouse == nil {
		enable := true
		c.EnableMouse = &enable
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.Pages == 0 {
		c.Pages = DefaultPages
	}
	if c.RowHeight == 0 {
		c.RowHeight = DefaultRowHeight
	}
}

// Validate checks value ranges and key binding conflicts.
func (c *Config) Validate() error {
	if c.Pages < 0 {
		return fmt.Errorf("%w: pages must not be negative, got %d", ErrInvalidConfig, c.Pages)
	}
	if c.PageHeight < 0 {
		return fmt.Errorf("%w: pageHeight must not be negative, got %d", ErrInvalidConfig, c.PageHeight)
	}
	if c.RowHeight < 0 {
		return fmt.Errorf("%w: rowHeight must not be negative, got %g", ErrInvalidConfig, c.RowHeight)
	}

	err := theme.Validate(c.Theme)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.KeyBinds != nil {
		err := c.KeyBinds.Validate()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	return nil
}

// KeyBinds are the key bindings of the TUI.
type KeyBinds struct {
	Quit *keys.KeyBind `json:"quit,omitempty" jsonschema:"title=Quit"`
	Help *keys.KeyBind `json:"help,omitempty" jsonschema:"title=Help"`
	Copy *keys.KeyBind `json:"copy,omitempty" jsonschema:"title=Copy"`

	// Navigation.
	Up       *keys.KeyBind `json:"up,omitempty"       jsonschema:"title=Up"`
	Down     *keys.KeyBind `json:"down,omitempty"     jsonschema:"title=Down"`
	PageUp   *keys.KeyBind `json:"pageUp,omitempty"   jsonschema:"title=Page Up"`
	PageDown *keys.KeyBind `json:"pageDown,omitempty" jsonschema:"title=Page Down"`
	Prev     *keys.KeyBind `json:"prev,omitempty"     jsonschema:"title=Previous Page"`
	Next     *keys.KeyBind `json:"next,omitempty"     jsonschema:"title=Next Page"`
	Home     *keys.KeyBind `json:"home,omitempty"     jsonschema:"title=Home"`
	End      *keys.KeyBind `json:"end,omitempty"      jsonschema:"title=End"`
}

func (kb *KeyBinds) EnsureDefaults() {
	keys.SetDefaultBind(&kb.Quit, keys.NewBind("quit", keys.New("q")))
	// Always ensure that ctrl+c is bound to quit.
	kb.Quit.AddKey(keys.New("ctrl+c", keys.WithAlias("⌃c"), keys.Hidden()))

	keys.SetDefaultBind(&kb.Help,
		keys.NewBind("toggle help",
			keys.New("?"),
		))
	keys.SetDefaultBind(&kb.Copy,
		keys.NewBind("copy dots",
			keys.New("c"),
		))

	keys.SetDefaultBind(&kb.Up,
		keys.NewBind("scroll up",
			keys.New("up", keys.WithAlias("↑")),
			keys.New("k"),
		))
	keys.SetDefaultBind(&kb.Down,
		keys.NewBind("scroll down",
			keys.New("down", keys.WithAlias("↓")),
			keys.New("j"),
		))
	keys.SetDefaultBind(&kb.PageUp,
		keys.NewBind("½ page up",
			keys.New("pgup"),
			keys.New("u"),
		))
	keys.SetDefaultBind(&kb.PageDown,
		keys.NewBind("½ page down",
			keys.New("pgdown"),
			keys.New("d"),
		))
	keys.SetDefaultBind(&kb.Prev,
		keys.NewBind("previous page",
			keys.New("shift+tab", keys.WithAlias("⇧+tab")),
			keys.New("p"),
		))
	keys.SetDefaultBind(&kb.Next,
		keys.NewBind("next page",
			keys.New("tab"),
			keys.New("n"),
		))
	keys.SetDefaultBind(&kb.Home,
		keys.NewBind("go to top",
			keys.New("home"),
			keys.New("g"),
		))
	keys.SetDefaultBind(&kb.End,
		keys.NewBind("go to bottom",
			keys.New("end"),
			keys.New("G"),
		))
}

func (kb *KeyBinds) Validate() error {
	return keys.ValidateBinds(kb.GetKeyBinds())
}

// GetKeyBinds returns all bindings. It must only be called after
// [KeyBinds.EnsureDefaults].
func (kb *KeyBinds) GetKeyBinds() []keys.KeyBind {
	return []keys.KeyBind{
		*kb.Quit,
		*kb.Help,
		*kb.Copy,
		*kb.Up,
		*kb.Down,
		*kb.PageUp,
		*kb.PageDown,
		*kb.Prev,
		*kb.Next,
		*kb.Home,
		*kb.End,
	}
}
