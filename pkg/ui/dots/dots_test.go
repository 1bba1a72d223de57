package dots_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pagedots/pkg/indicator"
	"github.com/macropower/pagedots/pkg/ui/dots"
	"github.com/macropower/pagedots/pkg/ui/theme"
)

const rows = 24

func newTracker(t *testing.T, r *dots.Renderer, total int) *indicator.Tracker {
	t.Helper()

	tr := indicator.NewTracker(indicator.DefaultConfig())
	tr.Measure(r.Bounds(rows))
	tr.SetDotCount(total)

	return tr
}

func TestRenderer_Bounds(t *testing.T) {
	t.Parallel()

	r := dots.New(dots.WithRowHeight(10), dots.WithWidth(3))

	assert.Equal(t, indicator.Bounds{Width: 30, Height: 240}, r.Bounds(24))
	assert.Equal(t, 2, r.Row(29.9))
	assert.Equal(t, 3, r.Row(30))
	assert.Equal(t, -1, r.Row(-0.1))

	r = dots.New(dots.WithRowHeight(-1), dots.WithWidth(0))
	assert.InDelta(t, dots.DefaultRowHeight, r.RowHeight(), 1e-9)
	assert.Equal(t, 1, r.Width())
}

func TestRenderer_Lines(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		setup func(tr *indicator.Tracker)
		want  map[int]string
		total int
	}{
		"centered": {
			total: 3,
			want: map[int]string{
				8:  dots.GlyphLarge,
				12: dots.GlyphLargeDim,
				15: dots.GlyphLargeDim,
			},
		},
		"windowed start": {
			total: 10,
			want: map[int]string{
				4:  dots.GlyphLarge,
				8:  dots.GlyphLargeDim,
				12: dots.GlyphLargeDim,
				15: dots.GlyphLargeDim,
				19: dots.GlyphSmallDim,
			},
		},
		"windowed middle": {
			total: 10,
			setup: func(tr *indicator.Tracker) {
				tr.SetSelectedIndex(5, 10)
			},
			want: map[int]string{
				4:  dots.GlyphSmallDim,
				8:  dots.GlyphLargeDim,
				12: dots.GlyphLarge,
				15: dots.GlyphLargeDim,
				19: dots.GlyphSmallDim,
			},
		},
		"empty": {
			total: 0,
			want:  map[int]string{},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := dots.New()
			tr := newTracker(t, r, tc.total)
			if tc.setup != nil {
				tc.setup(tr)
			}

			lines := r.Lines(tr.Dots(), tr.Layout(), rows)
			require.Len(t, lines, rows)

			for i, line := range lines {
				want, ok := tc.want[i]
				if !ok {
					want = " "
				}

				assert.Equal(t, want, line, "row %d", i)
			}
		})
	}
}

func TestRenderer_Overlap(t *testing.T) {
	t.Parallel()

	l := indicator.DefaultConfig().Measure(indicator.Bounds{Height: 100})
	ds := []indicator.Dot{
		{Y: 41, Radius: 20, Alpha: 0.2, Page: 0},
		{Y: 45, Radius: 20, Alpha: 1, Page: 1},
		{Y: 48, Radius: 20, Alpha: 0.5, Page: 2},
		{Y: 500, Radius: 20, Alpha: 1, Page: 3},
	}

	r := dots.New(dots.WithWidth(3))
	lines := r.Lines(ds, l, 5)

	assert.Equal(t, []string{"   ", "   ", " ● ", "   ", "   "}, lines)
	assert.Equal(t, strings.Join(lines, "\n"), r.Render(ds, l, 5))
}

func TestGlyph(t *testing.T) {
	t.Parallel()

	l := indicator.DefaultConfig().Measure(indicator.Bounds{Height: 400})

	tcs := map[string]struct {
		want string
		dot  indicator.Dot
	}{
		"large lit":   {dot: indicator.Dot{Radius: 20, Alpha: 1}, want: dots.GlyphLarge},
		"large dim":   {dot: indicator.Dot{Radius: 15, Alpha: 0.2}, want: dots.GlyphLargeDim},
		"small lit":   {dot: indicator.Dot{Radius: 14.9, Alpha: 0.7}, want: dots.GlyphSmall},
		"small dim":   {dot: indicator.Dot{Radius: 10, Alpha: 0.59}, want: dots.GlyphSmallDim},
		"alpha above": {dot: indicator.Dot{Radius: 20, Alpha: 2}, want: dots.GlyphLarge},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, dots.Glyph(tc.dot, l))
		})
	}
}

func TestIntensity(t *testing.T) {
	t.Parallel()

	l := indicator.DefaultConfig().Measure(indicator.Bounds{Height: 400})

	assert.InDelta(t, 0.0, dots.Intensity(indicator.Dot{Alpha: 0.2}, l), 1e-9)
	assert.InDelta(t, 0.5, dots.Intensity(indicator.Dot{Alpha: 0.6}, l), 1e-9)
	assert.InDelta(t, 1.0, dots.Intensity(indicator.Dot{Alpha: 1}, l), 1e-9)
	assert.InDelta(t, 0.0, dots.Intensity(indicator.Dot{Alpha: 0}, l), 1e-9)

	l.AlphaMin = 1
	assert.InDelta(t, 1.0, dots.Intensity(indicator.Dot{Alpha: 0}, l), 1e-9)
}

func TestRenderer_Theme(t *testing.T) {
	t.Parallel()

	r := dots.New(dots.WithTheme(theme.New("github")))
	tr := newTracker(t, r, 3)

	lines := r.Lines(tr.Dots(), tr.Layout(), rows)

	assert.Contains(t, lines[8], dots.GlyphLarge)
	// Colors carry the alpha, so dim dots keep the large glyph.
	assert.Contains(t, lines[12], dots.GlyphLarge)
	assert.NotContains(t, lines[12], dots.GlyphLargeDim)
}
