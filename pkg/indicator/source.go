package indicator

import "log/slog"

// Orientation is the scroll axis of a host list.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}

	return "unknown"
}

// ScrollSource is a scrollable list that reports scroll samples.
//
// For every change of its scroll offset, a source calls the registered
// function with the index of the topmost visible item and the fraction of that
// item that is scrolled out of view.
type ScrollSource interface {
	Orientation() Orientation
	OnScroll(fn func(fraction float64, index int))
}

// Attach subscribes the [Tracker] to the samples of src. Only vertical sources
// are supported; anything else is reported once as a warning and the tracker
// keeps its current state.
func (t *Tracker) Attach(src ScrollSource) bool {
	if src == nil {
		t.log.Warn("unsupported host layout", slog.String("reason", "no scroll source"))
		t.diagnose(DiagUnsupportedHost, 0, 0, "no scroll source")

		return false
	}

	if o := src.Orientation(); o != Vertical {
		t.log.Warn("unsupported host layout", slog.String("orientation", o.String()))
		t.diagnose(DiagUnsupportedHost, 0, 0, "orientation "+o.String())

		return false
	}

	src.OnScroll(t.ReportScroll)

	return true
}
