package indicator

import "fmt"

// State is a snapshot of the indicator. It is owned by a [Tracker]; callers
// only ever receive copies.
type State struct {
	// Total is the number of pages.
	Total int `json:"total"                   yaml:"total"`
	// WindowStart is the first page shown when Total exceeds the visible count.
	WindowStart int `json:"windowStart"             yaml:"windowStart"`
	// Selected is the page the indicator is settled on, or is moving away from.
	Selected int `json:"selected"                yaml:"selected"`
	// Next is the page the indicator is moving toward. It equals Selected when
	// the indicator is settled.
	Next int `json:"next"                    yaml:"next"`
	// Fraction is the scrolled-out fraction of the top page, in [0, 1).
	Fraction float64 `json:"fraction"                yaml:"fraction"`
	// WindowOffset is the translation applied to the whole window while it
	// slides, -Fraction steps in both directions. Negative values move the
	// window up.
	WindowOffset float64 `json:"windowOffset"            yaml:"windowOffset"`
	// FirstFraction is the first non-zero fraction reported since the
	// indicator last settled.
	FirstFraction float64 `json:"firstFraction,omitempty" yaml:"firstFraction,omitempty"`
}

// Motion is either [Settled] or [Dragging].
type Motion interface {
	fmt.Stringer
	motion()
}

// Settled means the list is resting exactly on a page.
type Settled struct {
	Index int
}

// Dragging means the list is between two neighbouring pages.
type Dragging struct {
	From int
	To   int
	// Progress is the distance travelled from From toward To, in (0, 1].
	Progress float64
}

func (Settled) motion()  {}
func (Dragging) motion() {}

func (s Settled) String() string {
	return fmt.Sprintf("settled %d", s.Index)
}

func (d Dragging) String() string {
	return fmt.Sprintf("dragging %d→%d %.0f%%", d.From, d.To, d.Progress*100)
}

// Forward reports whether the drag moves toward higher page indexes.
func (d Dragging) Forward() bool {
	return d.To > d.From
}

// Motion returns the tagged form of the state.
//
//nolint:ireturn // Sum type.
func (s State) Motion() Motion {
	if s.Selected == s.Next {
		return Settled{Index: s.Selected}
	}

	progress := s.Fraction
	if s.Next < s.Selected {
		progress = 1 - s.Fraction
	}

	return Dragging{From: s.Selected, To: s.Next, Progress: progress}
}

// Windowed reports whether there are more pages than visible dots.
func (s State) Windowed(visibleCount int) bool {
	return s.Total > visibleCount
}

// MaxWindowStart is the largest valid WindowStart for the state's Total.
func (s State) MaxWindowStart(visibleCount int) int {
	return max(0, s.Total-visibleCount)
}

// pinned reports whether a drag happens close enough to either end of the
// page range that the window does not slide.
func (s State) pinned(visibleCount int) bool {
	half := visibleCount / 2

	switch {
	case s.Next > s.Selected:
		return s.Selected < half || s.Next >= s.Total-half
	case s.Next < s.Selected:
		return s.Next < half || s.Selected >= s.Total-half
	}

	return true
}
