// Package pages provides a scrollable list of pages for the TUI, and reports
// its scroll position as indicator samples.
package pages

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/muesli/reflow/wordwrap"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/pagedots/pkg/indicator"
	"github.com/macropower/pagedots/pkg/ui/statusbar"
	"github.com/macropower/pagedots/pkg/ui/theme"
)

// WheelDelta is the number of rows scrolled per mouse wheel step.
const WheelDelta = 3

const filler = "Scroll with the keyboard or the mouse wheel. The dots on the right " +
	"follow the topmost visible page, and highlight the next page while it " +
	"scrolls into view."

// Config configures a [Model].
type Config struct {
	Theme *theme.Theme
	Pages int
	// PageHeight is the height of a page in rows. Zero matches the height
	// of the list.
	PageHeight int
}

// Model is a vertical list of equally tall pages. It implements
// [indicator.ScrollSource]: every change of the scroll offset is reported
// with the index of the topmost visible page and the part of that page that
// is scrolled out of view.
type Model struct {
	theme      *theme.Theme
	listeners  []func(fraction float64, index int)
	viewport   viewport.Model
	pages      int
	pageHeight int
	reported   int
}

// New returns an empty list. Call [Model.SetSize] before rendering.
func New(cfg Config) *Model {
	t := cfg.Theme
	if t == nil {
		t = theme.Default
	}

	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false

	return &Model{
		theme:      t,
		viewport:   vp,
		pages:      max(0, cfg.Pages),
		pageHeight: max(0, cfg.PageHeight),
		reported:   -1,
	}
}

// Orientation returns [indicator.Vertical].
func (m *Model) Orientation() indicator.Orientation {
	return indicator.Vertical
}

// OnScroll registers fn to receive scroll samples.
func (m *Model) OnScroll(fn func(fraction float64, index int)) {
	m.listeners = append(m.listeners, fn)
}

// SetSize resizes the list and keeps the topmost page in view.
func (m *Model) SetSize(width, height int) {
	page := m.Page()

	m.viewport.Width = max(0, width)
	m.viewport.Height = max(0, height)
	m.render()
	m.viewport.SetYOffset(page * m.PageHeight())
	m.notify()
}

// SetPages replaces the pages and scrolls to the top.
func (m *Model) SetPages(pages, pageHeight int) {
	m.pages = max(0, pages)
	m.pageHeight = max(0, pageHeight)
	m.render()
	m.viewport.GotoTop()
	m.notify()
}

// Pages returns the number of pages.
func (m *Model) Pages() int {
	return m.pages
}

// PageHeight returns the height of a page in rows.
func (m *Model) PageHeight() int {
	if m.pageHeight > 0 {
		return m.pageHeight
	}

	return max(1, m.viewport.Height)
}

// Offset returns the number of rows scrolled out of view.
func (m *Model) Offset() int {
	return m.viewport.YOffset
}

// Page returns the index of the topmost visible page.
func (m *Model) Page() int {
	return m.viewport.YOffset / m.PageHeight()
}

// Sample returns the current scroll position as an indicator sample.
func (m *Model) Sample() (float64, int) {
	ph := m.PageHeight()
	off := m.viewport.YOffset

	return float64(off%ph) / float64(ph), off / ph
}

// AtBottom reports whether the list cannot scroll further down.
func (m *Model) AtBottom() bool {
	return m.viewport.AtBottom()
}

// ScrollDown scrolls down by n rows.
func (m *Model) ScrollDown(n int) {
	m.viewport.ScrollDown(n)
	m.notify()
}

// ScrollUp scrolls up by n rows.
func (m *Model) ScrollUp(n int) {
	m.viewport.ScrollUp(n)
	m.notify()
}

// HalfPageDown scrolls down by half the list height.
func (m *Model) HalfPageDown() {
	m.viewport.HalfPageDown()
	m.notify()
}

// HalfPageUp scrolls up by half the list height.
func (m *Model) HalfPageUp() {
	m.viewport.HalfPageUp()
	m.notify()
}

// GotoPage scrolls page to the top of the list. The offset is clamped to the
// bottom of the list.
func (m *Model) GotoPage(page int) {
	page = max(0, min(page, m.pages-1))
	m.viewport.SetYOffset(page * m.PageHeight())
	m.notify()
}

// GotoTop scrolls to the first page.
func (m *Model) GotoTop() {
	m.viewport.GotoTop()
	m.notify()
}

// GotoBottom scrolls to the bottom of the list.
func (m *Model) GotoBottom() {
	m.viewport.GotoBottom()
	m.notify()
}

// Update handles mouse wheel events.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || mouse.Action != tea.MouseActionPress {
		return nil
	}

	switch mouse.Button {
	case tea.MouseButtonWheelUp:
		m.ScrollUp(WheelDelta)
	case tea.MouseButtonWheelDown:
		m.ScrollDown(WheelDelta)
	}

	return nil
}

// View renders the visible rows.
func (m *Model) View() string {
	return m.viewport.View()
}

// notify reports the scroll position to all listeners, once per offset.
func (m *Model) notify() {
	if m.viewport.YOffset == m.reported {
		return
	}

	m.reported = m.viewport.YOffset

	fraction, index := m.Sample()
	for _, fn := range m.listeners {
		fn(fraction, index)
	}
}

func (m *Model) render() {
	m.reported = -1

	var (
		ph    = m.PageHeight()
		width = m.viewport.Width
		lines = make([]string, 0, m.pages*ph)
	)

	body := strings.Split(wordwrap.String(filler, max(10, width-2)), "\n")

	for i := range m.pages {
		page := make([]string, ph)

		page[0] = m.theme.PageTitleStyle.Render(fmt.Sprintf(" Page %d ", i+1)) +
			m.theme.SubtleStyle.Render(statusbar.Position(i, m.pages))

		for row := 1; row < ph-1; row++ {
			if row-2 >= 0 && row-2 < len(body) {
				page[row] = " " + m.theme.GenericTextStyle.Render(body[row-2])
			}
		}

		if ph > 1 {
			page[ph-1] = m.theme.SubtleStyle.Render(strings.Repeat("─", max(0, width)))
		}

		lines = append(lines, page...)
	}

	m.viewport.SetContent(strings.Join(lines, "\n"))
}
