package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/macropower/pagedots/pkg/ui/theme"
)

// KeyBindRenderer lays out key bindings in width cells.
type KeyBindRenderer interface {
	Render(width int) string
}

// HelpRenderer renders the key bindings below the status bar.
type HelpRenderer struct {
	theme    *theme.Theme
	keyBinds KeyBindRenderer
}

func NewHelpRenderer(t *theme.Theme, keyBinds KeyBindRenderer) *HelpRenderer {
	return &HelpRenderer{theme: t, keyBinds: keyBinds}
}

// Render renders the help view, width cells wide.
func (r *HelpRenderer) Render(width int) string {
	content := lipgloss.NewStyle().
		Padding(1, 0).
		Render(r.keyBinds.Render(width))

	return r.theme.HelpStyle.Render(content)
}

// Height returns the number of lines of the help view.
func (r *HelpRenderer) Height(width int) int {
	return strings.Count(r.Render(width), "\n") + 1
}
