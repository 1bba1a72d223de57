// Package statusbar renders the status bar and the help view of the TUI.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/macropower/pagedots/pkg/keys"
	"github.com/macropower/pagedots/pkg/ui/theme"
	"github.com/macropower/pagedots/pkg/version"
)

const helpText = " ? Help "

// Style selects the colors of a status message.
type Style int

const (
	StyleNormal Style = iota
	StyleSuccess
	StyleError
)

// Renderer renders a single line status bar.
type Renderer struct {
	theme   *theme.Theme
	message string
	width   int
	style   Style
}

// Opt configures a [Renderer].
type Opt func(r *Renderer)

// WithMessage replaces the note with message, in the given style.
func WithMessage(message string, style Style) Opt {
	return func(r *Renderer) {
		if message == "" {
			return
		}

		r.message = message
		r.style = style
	}
}

// New returns a [Renderer] for a bar of width cells.
func New(t *theme.Theme, width int, opts ...Opt) *Renderer {
	r := &Renderer{theme: t, width: max(0, width), style: StyleNormal}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render renders the logo, note, page position and help hint, padded to the
// renderer's width. The note is truncated to fit.
func (r *Renderer) Render(note string, page, pages int) string {
	logo := r.theme.LogoStyle.Render(fmt.Sprintf(" pagedots %s ", version.GetVersion()))
	pos := r.posStyle().Render(" " + Position(page, pages) + " ")
	help := r.theme.StatusBarHelpStyle.Render(helpText)

	if r.message != "" {
		note = r.message
	}

	note = strings.TrimSpace(strings.ReplaceAll(note, "\n", " "))

	available := max(0, r.width-
		ansi.PrintableRuneWidth(logo)-
		ansi.PrintableRuneWidth(pos)-
		ansi.PrintableRuneWidth(help))

	//nolint:gosec // G115: available is not negative.
	note = truncate.StringWithTail(" "+note+" ", uint(available), keys.Ellipsis)
	fill := strings.Repeat(" ", max(0, available-ansi.PrintableRuneWidth(note)))

	return logo + r.noteStyle().Render(note+fill) + pos + help
}

// Position describes a page position, e.g. "3rd of 12".
func Position(page, pages int) string {
	if pages <= 0 {
		return "no pages"
	}

	return humanize.Ordinal(page+1) + " of " + humanize.Comma(int64(pages))
}

func (r *Renderer) noteStyle() lipgloss.Style {
	switch r.style {
	case StyleError:
		return r.theme.ErrorTitleStyle
	case StyleSuccess:
		return r.theme.StatusBarMessageStyle
	}

	return r.theme.StatusBarStyle
}

func (r *Renderer) posStyle() lipgloss.Style {
	switch r.style {
	case StyleError:
		return r.theme.ErrorTitleStyle
	case StyleSuccess:
		return r.theme.StatusBarMessagePosStyle
	}

	return r.theme.StatusBarPosStyle
}
