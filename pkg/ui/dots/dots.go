// Package dots paints indicator dots into a single terminal column.
//
// Dot positions are continuous, in indicator units. Every terminal row covers
// [Renderer.RowHeight] units, and a dot is drawn in the row that contains its
// center. The dot radius selects the glyph. The dot alpha selects the glyph in
// plain output, and the color otherwise.
package dots

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/macropower/pagedots/pkg/indicator"
	"github.com/macropower/pagedots/pkg/ui/theme"
)

// Glyphs used for dots. Large dots have at least the mean of the regular and
// minimum radius, lit dots at least the mean of the minimum and maximum alpha.
const (
	GlyphLarge    = "●"
	GlyphSmall    = "•"
	GlyphLargeDim = "○"
	GlyphSmallDim = "·"
)

// DefaultRowHeight is the number of indicator units per terminal row.
const DefaultRowHeight = 20

// Opt configures a [Renderer].
type Opt func(r *Renderer)

// WithRowHeight sets the number of indicator units per terminal row.
func WithRowHeight(h float64) Opt {
	return func(r *Renderer) {
		if h > 0 {
			r.rowHeight = h
		}
	}
}

// WithTheme colors dots by blending from the theme's idle color to its dot
// color.
func WithTheme(t *theme.Theme) Opt {
	return func(r *Renderer) {
		r.theme = t
	}
}

// WithWidth sets the width of the column in cells. The glyph is centered.
func WithWidth(w int) Opt {
	return func(r *Renderer) {
		r.width = max(1, w)
	}
}

// Renderer paints dots. A Renderer without a theme produces plain text.
type Renderer struct {
	theme     *theme.Theme
	rowHeight float64
	width     int
}

// New returns a plain [Renderer] of width 1.
func New(opts ...Opt) *Renderer {
	r := &Renderer{
		rowHeight: DefaultRowHeight,
		width:     1,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RowHeight returns the number of indicator units per terminal row.
func (r *Renderer) RowHeight() float64 {
	return r.rowHeight
}

// Width returns the width of the column in cells.
func (r *Renderer) Width() int {
	return r.width
}

// Bounds returns the indicator bounds of a column that is rows tall.
func (r *Renderer) Bounds(rows int) indicator.Bounds {
	return indicator.Bounds{
		Width:  float64(r.width) * r.rowHeight,
		Height: float64(rows) * r.rowHeight,
	}
}

// Row returns the terminal row that contains y.
func (r *Renderer) Row(y float64) int {
	return int(math.Floor(y / r.rowHeight))
}

// Lines paints dots into rows lines of [Renderer.Width] cells each. When two
// dots fall into the same row, the more opaque one wins.
func (r *Renderer) Lines(dots []indicator.Dot, l indicator.Layout, rows int) []string {
	cells := make([]*indicator.Dot, rows)

	for i := range dots {
		row := r.Row(dots[i].Y)
		if row < 0 || row >= rows {
			continue
		}
		if cells[row] != nil && cells[row].Alpha >= dots[i].Alpha {
			continue
		}

		cells[row] = &dots[i]
	}

	empty := strings.Repeat(" ", r.width)
	left := strings.Repeat(" ", (r.width-1)/2)
	right := strings.Repeat(" ", r.width-1-(r.width-1)/2)

	lines := make([]string, rows)
	for i, d := range cells {
		if d == nil {
			lines[i] = empty

			continue
		}

		lines[i] = left + r.paint(*d, l) + right
	}

	return lines
}

// Render is [Renderer.Lines] joined by newlines.
func (r *Renderer) Render(dots []indicator.Dot, l indicator.Layout, rows int) string {
	return strings.Join(r.Lines(dots, l, rows), "\n")
}

func (r *Renderer) paint(d indicator.Dot, l indicator.Layout) string {
	large := d.Radius >= (l.DotRadius+l.DotRadiusMin)/2

	if r.theme == nil {
		return Glyph(d, l)
	}

	glyph := GlyphSmall
	if large {
		glyph = GlyphLarge
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(r.color(d, l))).
		Render(glyph)
}

// color blends from the idle color to the dot color by the dot's alpha,
// relative to the layout's alpha range.
func (r *Renderer) color(d indicator.Dot, l indicator.Layout) string {
	dot, err := colorful.Hex(r.theme.DotColor)
	if err != nil {
		return r.theme.DotColor
	}

	idle, err := colorful.Hex(r.theme.DotIdleColor)
	if err != nil {
		return r.theme.DotColor
	}

	return idle.BlendLab(dot, Intensity(d, l)).Clamped().Hex()
}

// Intensity maps the alpha of d into [0, 1], where 0 is the layout's AlphaMin
// and 1 is its AlphaMax.
func Intensity(d indicator.Dot, l indicator.Layout) float64 {
	span := l.AlphaMax - l.AlphaMin
	if span <= 0 {
		return 1
	}

	return math.Min(1, math.Max(0, (d.Alpha-l.AlphaMin)/span))
}

// Glyph returns the plain text glyph for d.
func Glyph(d indicator.Dot, l indicator.Layout) string {
	large := d.Radius >= (l.DotRadius+l.DotRadiusMin)/2
	lit := Intensity(d, l) >= 0.5

	switch {
	case large && lit:
		return GlyphLarge
	case large:
		return GlyphLargeDim
	case lit:
		return GlyphSmall
	}

	return GlyphSmallDim
}
