package uitest

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTimeout bounds every wait of this package.
const DefaultTimeout = 3 * time.Second

// SetupColorProfile forces TrueColor output, so that styles are rendered the
// same regardless of the terminal running the tests.
func SetupColorProfile() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

// NewTestModel runs m in a virtual terminal of the given size.
func NewTestModel(tb testing.TB, m tea.Model, size Size) *teatest.TestModel {
	tb.Helper()

	return teatest.NewTestModel(tb, m, teatest.WithInitialTermSize(size.Width, size.Height))
}

// WaitForText waits until the plain text of the output contains text, and
// returns the output read so far.
func WaitForText(tb testing.TB, r io.Reader, text string) string {
	tb.Helper()

	var captured []byte

	teatest.WaitFor(tb, r, func(b []byte) bool {
		if !bytes.Contains([]byte(ansi.Strip(string(b))), []byte(text)) {
			return false
		}

		captured = bytes.Clone(b)

		return true
	}, teatest.WithDuration(DefaultTimeout), teatest.WithCheckInterval(10*time.Millisecond))

	return string(captured)
}

// Quit sends a quit key and waits for the program to finish.
func Quit(tb testing.TB, tm *teatest.TestModel) {
	tb.Helper()

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(tb, teatest.WithFinalTimeout(DefaultTimeout))
}

// Key returns the key message of a printable key such as "n" or "G".
func Key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
