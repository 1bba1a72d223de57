// Package indicator implements a vertical page indicator: a column of dots,
// one per page, where the dot of the visible page is highlighted.
//
// A [Tracker] consumes scroll samples reported by a scrollable list (the
// fraction of the top item that is scrolled out of view, and the index of that
// item) and maintains the indicator [State]. [Generate] turns a State and a
// measured [Layout] into the circles to paint.
//
// When there are more pages than [Config.VisibleCount], only a window of dots
// is shown. The dots at the edges of the window shrink to suggest that there
// are more pages beyond them, and the whole window slides while the user drags
// between pages:
//
//	tr := indicator.NewTracker(indicator.DefaultConfig())
//	tr.Measure(indicator.Bounds{Width: 40, Height: 480})
//	tr.SetSelectedIndex(4, 10)
//
//	tr.ReportScroll(0.5, 4) // Halfway between page 4 and page 5.
//
//	for _, dot := range tr.Dots() {
//		paint(dot.X, dot.Y, dot.Radius, dot.Alpha)
//	}
//
// A Tracker is not safe for concurrent use. Scroll samples must be delivered
// from a single goroutine, which is also where [Tracker.Dots] should be read.
package indicator
