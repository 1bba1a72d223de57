package cli

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/exp/charmtone"

	"github.com/macropower/pagedots/pkg/config"
	"github.com/macropower/pagedots/pkg/ui/theme"
)

// ColorSchemeFunc uses the theme of the configuration file, falling back to
// the default theme when the file cannot be loaded.
func ColorSchemeFunc(c lipgloss.LightDarkFunc) fang.ColorScheme {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return ThemeColorScheme(theme.Default, c)
	}

	return ThemeColorScheme(theme.New(cfg.UI.Theme), c)
}

func ThemeColorScheme(t *theme.Theme, c lipgloss.LightDarkFunc) fang.ColorScheme {
	return fang.ColorScheme{
		Base:           t.GenericTextStyle.GetForeground(),
		Title:          t.LogoStyle.GetBackground(),
		Codeblock:      c(charmtone.Salt, lipgloss.Color("#2F2E36")),
		Program:        t.SelectedStyle.GetForeground(),
		Command:        t.SelectedStyle.GetForeground(),
		DimmedArgument: t.SubtleStyle.GetForeground(),
		Comment:        t.SubtleStyle.GetForeground(),
		Flag:           t.SelectedStyle.GetForeground(),
		Argument:       t.PageTitleStyle.GetForeground(),
		Description:    t.GenericTextStyle.GetForeground(),
		FlagDefault:    t.SelectedSubtleStyle.GetForeground(),
		QuotedString:   lipgloss.Color(t.DotColor),
		ErrorHeader: [2]color.Color{
			t.ErrorTitleStyle.GetForeground(),
			t.ErrorTitleStyle.GetBackground(),
		},
	}
}
