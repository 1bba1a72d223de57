// Package ui provides the TUI of pagedots: a list of pages with a dot
// indicator on its right edge.
package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/pagedots/pkg/indicator"
	"github.com/macropower/pagedots/pkg/keys"
	"github.com/macropower/pagedots/pkg/ui/dots"
	"github.com/macropower/pagedots/pkg/ui/pages"
	"github.com/macropower/pagedots/pkg/ui/statusbar"
	"github.com/macropower/pagedots/pkg/ui/theme"
	"github.com/macropower/pagedots/pkg/yaml"
)

// StatusMessageTimeout is how long status messages are shown.
const StatusMessageTimeout = 3 * time.Second

// ColumnWidth is the width of the indicator column in cells, including its
// padding.
const ColumnWidth = 3

type (
	// ConfigMsg replaces the configuration of a running program. Err is set
	// when the configuration could not be reloaded.
	ConfigMsg struct {
		Indicator *indicator.Config
		UI        *Config
		Err       error
	}

	redrawMsg               struct{}
	statusMessageTimeoutMsg struct{}
)

// NewProgram returns a new Tea program.
func NewProgram(ic indicator.Config, cfg *Config, opts ...tea.ProgramOption) *tea.Program {
	slog.Debug("starting pagedots ui")

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if cfg.EnableMouse != nil && *cfg.EnableMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	return tea.NewProgram(NewModel(ic, cfg), opts...)
}

// Model is the top-level model of the TUI.
type Model struct {
	cfg          *Config
	theme        *theme.Theme
	tracker      *indicator.Tracker
	signal       *indicator.Signal
	pages        *pages.Model
	dots         *dots.Renderer
	help         *statusbar.HelpRenderer
	statusTimer  *time.Timer
	column       string
	message      string
	messageStyle statusbar.Style
	width        int
	height       int
	showHelp     bool
}

// NewModel creates the model of the TUI. The configs must have their
// defaults applied.
func NewModel(ic indicator.Config, cfg *Config) *Model {
	m := &Model{
		cfg:    cfg,
		signal: indicator.NewSignal(),
	}

	m.tracker = indicator.NewTracker(ic,
		indicator.WithRedraw(m.signal.Notify),
		indicator.WithDiagnostics(func(d indicator.Diagnostic) {
			slog.Debug("indicator diagnostic", slog.String("diagnostic", d.String()))
		}),
	)

	m.applyTheme()

	m.pages = pages.New(pages.Config{
		Theme:      m.theme,
		Pages:      cfg.Pages,
		PageHeight: cfg.PageHeight,
	})

	if !m.tracker.Attach(m.pages) {
		slog.Error("attach indicator to page list")
	}

	m.tracker.SetDotCount(cfg.Pages)

	return m
}

func (m *Model) Init() tea.Cmd {
	return m.waitForRedraw()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, quit := m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}

		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		m.pages.Update(msg)
		m.settleLastPage()

	// Window size is received when starting up and on every resize.
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case redrawMsg:
		m.column = m.renderColumn()

		cmds = append(cmds, m.waitForRedraw())

	case ConfigMsg:
		cmds = append(cmds, m.handleConfig(msg))

	case statusMessageTimeoutMsg:
		m.message = ""
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	bodyHeight := m.bodyHeight()

	list := lipgloss.NewStyle().
		Width(max(0, m.width-ColumnWidth)).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(m.pages.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, m.column)

	sb := statusbar.New(m.theme, m.width, statusbar.WithMessage(m.message, m.messageStyle))

	parts := []string{body, sb.Render(m.tracker.State().Motion().String(), m.pages.Page(), m.pages.Pages())}
	if m.showHelp {
		parts = append(parts, m.help.Render(m.width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Tracker returns the indicator tracker of the model.
func (m *Model) Tracker() *indicator.Tracker {
	return m.tracker
}

// Pages returns the page list of the model.
func (m *Model) Pages() *pages.Model {
	return m.pages
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	var (
		key = msg.String()
		kb  = m.cfg.KeyBinds
		p   = m.pages
	)

	switch {
	case kb.Quit.Match(key):
		return nil, true

	case kb.Help.Match(key):
		m.showHelp = !m.showHelp
		m.resize()

	case kb.Copy.Match(key):
		return m.copyDots(), false

	case kb.Up.Match(key):
		p.ScrollUp(1)
	case kb.Down.Match(key):
		p.ScrollDown(1)
	case kb.PageUp.Match(key):
		p.HalfPageUp()
	case kb.PageDown.Match(key):
		p.HalfPageDown()
	case kb.Prev.Match(key):
		p.GotoPage(p.Page() - 1)
	case kb.Next.Match(key):
		p.GotoPage(p.Page() + 1)
	case kb.Home.Match(key):
		p.GotoTop()
	case kb.End.Match(key):
		p.GotoBottom()

	default:
		return nil, false
	}

	m.settleLastPage()

	return nil, false
}

// settleLastPage selects the last page once the list rests on it. Samples for
// the last page are never settled by the tracker, so the list reports it the
// way a host reports a programmatic scroll.
func (m *Model) settleLastPage() {
	last := m.pages.Pages() - 1
	if last < 0 || !m.pages.AtBottom() || m.pages.Page() != last {
		return
	}

	if st := m.tracker.State(); st.Selected == last && st.Next == last {
		return
	}

	m.tracker.SetSelectedIndex(last, m.pages.Pages())
}

func (m *Model) handleConfig(msg ConfigMsg) tea.Cmd {
	if msg.Err != nil {
		return m.sendStatusMessage("config: "+msg.Err.Error(), statusbar.StyleError)
	}

	if msg.UI != nil {
		msg.UI.EnsureDefaults()

		pagesChanged := msg.UI.Pages != m.cfg.Pages || msg.UI.PageHeight != m.cfg.PageHeight

		m.cfg = msg.UI
		m.applyTheme()

		if pagesChanged {
			m.pages.SetPages(m.cfg.Pages, m.cfg.PageHeight)
			m.tracker.SetDotCount(m.cfg.Pages)
		}
	}

	if msg.Indicator != nil {
		m.tracker.SetConfig(*msg.Indicator)
	}

	m.resize()

	return m.sendStatusMessage("config reloaded", statusbar.StyleSuccess)
}

func (m *Model) applyTheme() {
	m.theme = theme.New(m.cfg.Theme)
	m.dots = dots.New(
		dots.WithTheme(m.theme),
		dots.WithRowHeight(m.cfg.RowHeight),
		dots.WithWidth(ColumnWidth-2),
	)

	kb := m.cfg.KeyBinds
	kbr := &keys.KeyBindRenderer{}
	kbr.AddColumn(
		*kb.Up,
		*kb.Down,
		*kb.PageUp,
		*kb.PageDown,
	)
	kbr.AddColumn(
		*kb.Prev,
		*kb.Next,
		*kb.Home,
		*kb.End,
	)
	kbr.AddColumn(
		*kb.Copy,
		*kb.Help,
		*kb.Quit,
	)

	m.help = statusbar.NewHelpRenderer(m.theme, kbr)

	m.signal.Notify()
}

// resize lays out the page list and measures the indicator against the
// height left over by the status bar and help view.
func (m *Model) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	bodyHeight := m.bodyHeight()

	m.pages.SetSize(max(0, m.width-ColumnWidth), bodyHeight)
	m.tracker.Measure(m.dots.Bounds(bodyHeight))
	m.settleLastPage()
	m.column = m.renderColumn()
}

func (m *Model) bodyHeight() int {
	h := m.height - 1
	if m.showHelp {
		h -= m.help.Height(m.width)
	}

	return max(0, h)
}

func (m *Model) renderColumn() string {
	rows := m.bodyHeight()
	if rows == 0 {
		return ""
	}

	return m.theme.IndicatorStyle.
		Render(m.dots.Render(m.tracker.Dots(), m.tracker.Layout(), rows))
}

func (m *Model) waitForRedraw() tea.Cmd {
	return func() tea.Msg {
		<-m.signal.C()

		return redrawMsg{}
	}
}

func (m *Model) copyDots() tea.Cmd {
	b, err := yaml.Marshal(m.tracker.Dots())
	if err != nil {
		return m.sendStatusMessage(fmt.Sprintf("copy dots: %v", err), statusbar.StyleError)
	}

	// Copy using OSC 52.
	termenv.Copy(string(b))
	// Copy using native system clipboard.
	_ = clipboard.WriteAll(string(b)) //nolint:errcheck // Can be ignored.

	n := strings.Count(string(b), "- x:")

	return m.sendStatusMessage(fmt.Sprintf("copied %d dots", n), statusbar.StyleSuccess)
}

func (m *Model) sendStatusMessage(msg string, style statusbar.Style) tea.Cmd {
	m.message = msg
	m.messageStyle = style

	if m.statusTimer != nil {
		m.statusTimer.Stop()
	}

	m.statusTimer = time.NewTimer(StatusMessageTimeout)
	t := m.statusTimer

	return func() tea.Msg {
		<-t.C

		return statusMessageTimeoutMsg{}
	}
}
