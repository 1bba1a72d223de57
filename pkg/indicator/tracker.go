package indicator

import (
	"log/slog"
	"math"
)

// Tracker maintains the indicator [State] from scroll samples.
type Tracker struct {
	log         *slog.Logger
	redraw      func()
	diagnostics func(Diagnostic)
	layout      Layout
	state       State
	// Page index that maps to dot 0, see [Tracker.SetDotCountAndStartPosition].
	origin int
}

// TrackerOpt configures a [Tracker].
type TrackerOpt func(*Tracker)

// WithLogger sets the logger used for diagnostics and warnings.
func WithLogger(l *slog.Logger) TrackerOpt {
	return func(t *Tracker) {
		t.log = l
	}
}

// WithRedraw sets the function called whenever the state changes in a way
// that needs a repaint. Use [Signal.Notify] to coalesce requests.
func WithRedraw(fn func()) TrackerOpt {
	return func(t *Tracker) {
		t.redraw = fn
	}
}

// WithDiagnostics sets a function that receives a [Diagnostic] for every
// input that was clamped or ignored.
func WithDiagnostics(fn func(Diagnostic)) TrackerOpt {
	return func(t *Tracker) {
		t.diagnostics = fn
	}
}

// NewTracker creates a new [Tracker] with no pages. Zero fields of cfg are
// set to their defaults.
func NewTracker(cfg Config, opts ...TrackerOpt) *Tracker {
	cfg.EnsureDefaults()

	t := &Tracker{
		log:    slog.Default(),
		layout: Layout{Config: cfg},
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// State returns a copy of the current state.
func (t *Tracker) State() State {
	return t.state
}

// Layout returns the current layout.
func (t *Tracker) Layout() Layout {
	return t.layout
}

// Dots returns the circles to paint for the current state.
func (t *Tracker) Dots() []Dot {
	return Generate(t.state, t.layout)
}

// Measure runs a measurement pass against b.
func (t *Tracker) Measure(b Bounds) {
	t.layout = t.layout.Config.Measure(b)
	t.state.WindowOffset = t.windowOffset()
	t.requestRedraw()
}

// SetConfig replaces the config, keeping the current bounds.
func (t *Tracker) SetConfig(cfg Config) {
	cfg.EnsureDefaults()

	t.layout = cfg.Measure(t.layout.Bounds)
	t.state.WindowStart = clamp(t.state.WindowStart, 0, t.state.MaxWindowStart(cfg.VisibleCount))
	t.state.WindowOffset = t.windowOffset()
	t.requestRedraw()
}

// SetDotCount sets the number of pages and resets the selection.
func (t *Tracker) SetDotCount(count int) {
	t.Reset(count, 0)
}

// SetDotCountAndStartPosition sets the number of pages and the page index
// that corresponds to the first dot. Later samples are interpreted relative
// to firstIndex.
func (t *Tracker) SetDotCountAndStartPosition(firstIndex, count int) {
	t.Reset(count, firstIndex)
}

// Reset sets the number of pages and the page origin, and moves the
// selection to the start of the window.
func (t *Tracker) Reset(total, origin int) {
	if total < 0 {
		t.diagnose(DiagNegativeCount, total, 0, "negative dot count")

		total = 0
	}

	t.origin = origin
	t.state.Total = total
	t.state.WindowStart = 0
	t.state.Selected = 0
	t.state.Next = 0
	t.state.Fraction = 0
	t.state.WindowOffset = 0
	t.state.FirstFraction = 0

	t.requestRedraw()
}

// SetSelectedIndex selects index and centers the window on it. An index
// outside [0, total) is kept as is.
func (t *Tracker) SetSelectedIndex(index, total int) {
	if total < 0 {
		t.diagnose(DiagNegativeCount, total, 0, "negative dot count")

		total = 0
	}
	if index < 0 || index >= total {
		t.diagnose(DiagSelectionOutOfRange, index, 0, "selected index out of range")
	}

	t.state.Total = total
	t.state.Selected = index
	t.state.Next = index
	t.state.Fraction = 0
	t.state.WindowOffset = 0
	t.state.FirstFraction = 0

	if t.state.Windowed(t.layout.VisibleCount) {
		t.state.WindowStart = t.centeredWindow(index)
	} else {
		t.state.WindowStart = 0
	}

	t.requestRedraw()
}

// ReportScroll consumes a scroll sample: index is the topmost visible page
// and fraction is the part of that page scrolled out of view, in [0, 1).
//
// Samples for pages outside of the tracked range are ignored, and fractions
// outside of [0, 1) are clamped.
func (t *Tracker) ReportScroll(fraction float64, index int) {
	f, ok := t.sanitizeFraction(fraction, index)
	if !ok {
		return
	}

	if index >= t.origin+t.state.Total-1 {
		t.diagnose(DiagStaleSample, index, fraction, "scroll sample beyond last page")

		return
	}

	index -= t.origin
	if index < 0 {
		t.diagnose(DiagBeforeOrigin, index+t.origin, fraction, "scroll sample before first page")

		return
	}

	switch {
	case f == 0:
		t.settle(index)

	case t.state.FirstFraction == 0:
		t.state.FirstFraction = f

		tol := t.layout.JitterTolerance
		if f < tol || f > 1-tol {
			// Start of a gesture, too close to the page to tell its direction.
			t.requestRedraw()

			return
		}

		t.drag(f, index)

	default:
		t.drag(f, index)
	}

	t.state.WindowOffset = t.windowOffset()

	t.requestRedraw()
}

func (t *Tracker) settle(index int) {
	var (
		s    = &t.state
		n    = s.Total
		v    = t.layout.VisibleCount
		half = v / 2
		ws   = s.WindowStart
	)

	// Moving forward keeps more of the upcoming pages in view; moving backward
	// pins the window to the end one page earlier.
	switch {
	case index > s.Selected:
		switch {
		case index <= half:
			ws = 0
		case index == n-1 && n < v:
			ws = 0
		case index >= n-half:
			ws = n - v
		default:
			ws = index - half
		}

	case index < s.Selected:
		switch {
		case index <= half:
			ws = 0
		case index >= n-half-1:
			ws = n - v
		default:
			ws = index - half
		}
	}

	s.WindowStart = clamp(ws, 0, s.MaxWindowStart(v))
	s.Selected = index
	s.Next = index
	s.Fraction = 0
	s.FirstFraction = 0
}

func (t *Tracker) drag(f float64, index int) {
	s := &t.state

	switch {
	case index == s.Selected:
		s.Next = index + 1

	case index+1 == s.Selected:
		s.Next = index

	case index > s.Selected:
		t.diagnose(DiagJump, index, f, "scroll sample skipped pages forward")

		s.Next = index
		s.Selected = index + 1
		s.WindowStart = t.centeredWindow(s.Selected)

	default:
		t.diagnose(DiagJump, index, f, "scroll sample skipped pages backward")

		if index == 0 {
			s.Selected = 0
			s.Next = 1
		} else {
			s.Selected = index - 1
			s.Next = index
		}
		s.WindowStart = t.centeredWindow(s.Selected)
	}

	s.Fraction = f
}

// windowOffset returns the translation of the window for the current state.
func (t *Tracker) windowOffset() float64 {
	v := t.layout.VisibleCount

	_, ok := t.state.Motion().(Dragging)
	if !ok || !t.state.Windowed(v) || t.state.pinned(v) {
		return 0
	}

	return -t.state.Fraction * t.layout.Step()
}

func (t *Tracker) centeredWindow(index int) int {
	v := t.layout.VisibleCount

	return clamp(index-v/2, 0, t.state.MaxWindowStart(v))
}

func (t *Tracker) sanitizeFraction(f float64, index int) (float64, bool) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		t.diagnose(DiagFractionInvalid, index, f, "scroll fraction is not a number")

		return 0, false

	case f < 0:
		t.diagnose(DiagFractionClamped, index, f, "scroll fraction below zero")

		return 0, true

	case f >= 1:
		t.diagnose(DiagFractionClamped, index, f, "scroll fraction not below one")

		return math.Nextafter(1, 0), true
	}

	return f, true
}

func (t *Tracker) requestRedraw() {
	if t.redraw != nil {
		t.redraw()
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
