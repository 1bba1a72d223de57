package uitest_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pagedots/pkg/uitest"
)

func TestSegments(t *testing.T) {
	t.Parallel()

	uitest.SetupColorProfile()

	out := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0080")).Bold(true).Render("●") + " plain"

	segs := uitest.Segments(out)
	require.Len(t, segs, 2)

	assert.Equal(t, uitest.Segment{Text: "●", Foreground: "FF0080", Bold: true}, segs[0])
	assert.Equal(t, uitest.Segment{Text: " plain"}, segs[1])

	fg, ok := uitest.Foreground(out, "●")
	require.True(t, ok)
	assert.Equal(t, "FF0080", fg)

	_, ok = uitest.Foreground(out, "missing")
	assert.False(t, ok)
}
