package theme

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// HuhTheme returns a [huh.Theme] matching t, for prompts shown outside the
// TUI.
func HuhTheme(t *Theme) *huh.Theme {
	var (
		h        = huh.ThemeBase()
		accent   = t.SelectedStyle.GetForeground()
		subtle   = t.SubtleStyle.GetForeground()
		errColor = t.ErrorTextStyle.GetForeground()
	)

	h.Focused.Base = h.Focused.Base.BorderForeground(accent)
	h.Focused.Card = h.Focused.Base
	h.Focused.Title = h.Focused.Title.Foreground(accent).Bold(true)
	h.Focused.Description = h.Focused.Description.Foreground(t.SelectedSubtleStyle.GetForeground())
	h.Focused.ErrorIndicator = h.Focused.ErrorIndicator.Foreground(errColor)
	h.Focused.ErrorMessage = h.Focused.ErrorMessage.Foreground(errColor)
	h.Focused.FocusedButton = h.Focused.FocusedButton.
		Foreground(t.LogoStyle.GetForeground()).
		Background(t.LogoStyle.GetBackground())
	h.Focused.BlurredButton = h.Focused.BlurredButton.
		Foreground(t.LogoStyle.GetForeground()).
		Background(subtle)
	h.Focused.Next = h.Focused.FocusedButton

	h.Blurred = h.Focused
	h.Blurred.Base = h.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	h.Blurred.Card = h.Blurred.Base

	h.Group.Title = h.Focused.Title
	h.Group.Description = h.Focused.Description

	return h
}
