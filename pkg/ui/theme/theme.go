// Package theme derives the lipgloss styles of the TUI from a chroma style, so
// that any chroma style name can be used as a theme.
package theme

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sahilm/fuzzy"
	"golang.org/x/term"
)

var (
	ErrInvalidName    = errors.New("invalid theme name")
	ErrRegisterStyles = errors.New("register styles")

	Default = New("github")
)

type Theme struct {
	// Dot colors as hex strings, blended by alpha when painting dots.
	DotColor        string
	DotIdleColor    string
	BackgroundColor string

	ChromaStyle *chroma.Style

	ErrorTextStyle           lipgloss.Style
	ErrorTitleStyle          lipgloss.Style
	GenericOverlayStyle      lipgloss.Style
	GenericTextStyle         lipgloss.Style
	HelpStyle                lipgloss.Style
	IndicatorStyle           lipgloss.Style
	LogoStyle                lipgloss.Style
	PageStyle                lipgloss.Style
	PageTitleStyle           lipgloss.Style
	SelectedStyle            lipgloss.Style
	SelectedSubtleStyle      lipgloss.Style
	StatusBarHelpStyle       lipgloss.Style
	StatusBarMessagePosStyle lipgloss.Style
	StatusBarMessageStyle    lipgloss.Style
	StatusBarPosStyle        lipgloss.Style
	StatusBarStyle           lipgloss.Style
	SubtleStyle              lipgloss.Style
}

// New creates a [Theme] from the chroma style called name. The names "dark",
// "light" and "auto" select a GitHub style, "auto" based on the terminal
// background. Unknown names fall back to chroma's fallback style.
func New(name string) *Theme {
	cs := newChromaStyle(name)

	var (
		fg     = cs.fg(chroma.Background)
		bg     = cs.bg(chroma.Background)
		accent = cs.fg(chroma.NameTag)
		subtle = cs.fg(chroma.Comment)
	)

	genericStyle := lipgloss.NewStyle().Foreground(fg)
	selectedStyle := lipgloss.NewStyle().Foreground(accent)

	helpStyle := lipgloss.NewStyle().
		Foreground(cs.fgWithFactor(chroma.Background, 0.2)).
		Background(cs.bgWithFactor(chroma.Background, 0.2))

	overlayStyle := genericStyle.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(subtle)

	logoStyle := lipgloss.NewStyle().
		Foreground(bg).
		Background(accent).
		Bold(true)

	pageStyle := genericStyle.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(cs.fgWithFactor(chroma.Comment, 0.3))

	statusBarStyle := lipgloss.NewStyle().
		Foreground(fg).
		Background(cs.bgWithFactor(chroma.Background, 0.1))

	statusBarPosStyle := lipgloss.NewStyle().
		Foreground(fg).
		Background(cs.bgWithFactor(chroma.Background, 0.15))

	statusBarMessageStyle := lipgloss.NewStyle().
		Foreground(bg).
		Background(cs.fgWithFactor(chroma.NameTag, 0.15))

	statusBarMessagePosStyle := lipgloss.NewStyle().
		Foreground(bg).
		Background(cs.fgWithFactor(chroma.NameTag, 0.1))

	return &Theme{
		DotColor:        string(accent),
		DotIdleColor:    string(subtle),
		BackgroundColor: string(bg),

		ChromaStyle: cs.style,

		ErrorTextStyle:           lipgloss.NewStyle().Foreground(cs.fg(chroma.GenericDeleted)),
		ErrorTitleStyle:          genericStyle.Background(cs.fg(chroma.GenericDeleted)),
		GenericOverlayStyle:      overlayStyle,
		GenericTextStyle:         genericStyle,
		HelpStyle:                helpStyle,
		IndicatorStyle:           lipgloss.NewStyle().Padding(0, 1),
		LogoStyle:                logoStyle,
		PageStyle:                pageStyle,
		PageTitleStyle:           selectedStyle.Bold(true),
		SelectedStyle:            selectedStyle,
		SelectedSubtleStyle:      lipgloss.NewStyle().Foreground(cs.fgWithFactor(chroma.NameTag, 0.3)),
		StatusBarHelpStyle:       helpStyle,
		StatusBarMessagePosStyle: statusBarMessagePosStyle,
		StatusBarMessageStyle:    statusBarMessageStyle,
		StatusBarPosStyle:        statusBarPosStyle,
		StatusBarStyle:           statusBarStyle,
		SubtleStyle:              lipgloss.NewStyle().Foreground(subtle),
	}
}

// Register registers a chroma style, which can then be passed to [New].
func Register(name string, entries chroma.StyleEntries) error {
	if name == "" {
		return ErrInvalidName
	}

	s, err := chroma.NewStyle(name, entries)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterStyles, err)
	}

	styles.Register(s)

	return nil
}

// Validate returns an error if name is neither a chroma style nor one of
// "auto", "dark" and "light". The error suggests the closest style name.
func Validate(name string) error {
	switch name {
	case "", "auto", "dark", "light":
		return nil
	}

	names := styles.Names()
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return nil
		}
	}

	if s := suggest(strings.ToLower(name), names); s != "" {
		return fmt.Errorf("%w: %q, did you mean %q?", ErrInvalidName, name, s)
	}

	return fmt.Errorf("%w: %q", ErrInvalidName, name)
}

// maxSuggestDistance is the largest edit distance of a suggested name.
const maxSuggestDistance = 3

// suggest returns the best fuzzy match for name, or the closest name by edit
// distance when there is none.
func suggest(name string, names []string) string {
	matches := fuzzy.Find(name, names)
	if len(matches) > 0 {
		return matches[0].Str
	}

	best, bestDist := "", maxSuggestDistance+1
	for _, n := range names {
		d := levenshtein.ComputeDistance(name, strings.ToLower(n))
		if d < bestDist {
			best, bestDist = n, d
		}
	}

	return best
}

type chromaStyle struct {
	style *chroma.Style
}

func newChromaStyle(name string) chromaStyle {
	s := styles.Get(StyleName(name))
	if s == nil {
		s = styles.Fallback
	}

	return chromaStyle{style: s}
}

func (cs chromaStyle) fg(t chroma.TokenType) lipgloss.Color {
	return lipgloss.Color(cs.style.Get(t).Colour.String()) //nolint:misspell // Chroma naming.
}

func (cs chromaStyle) bg(t chroma.TokenType) lipgloss.Color {
	return lipgloss.Color(cs.style.Get(t).Background.String())
}

func (cs chromaStyle) fgWithFactor(t chroma.TokenType, factor float64) lipgloss.Color {
	c := cs.style.Get(t).Colour.BrightenOrDarken(factor) //nolint:misspell // Chroma naming.

	return lipgloss.Color(c.String())
}

func (cs chromaStyle) bgWithFactor(t chroma.TokenType, factor float64) lipgloss.Color {
	c := cs.style.Get(t).Background.BrightenOrDarken(factor)

	return lipgloss.Color(c.String())
}

// StyleName resolves a theme name to the name of a chroma style.
func StyleName(name string) string {
	switch name {
	case "dark":
		return "github-dark"
	case "light":
		return "github"
	case "auto", "":
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return ""
		}
		if termenv.HasDarkBackground() {
			return "github-dark"
		}

		return "github"
	}

	return name
}
