// Package uitest provides helpers for testing the pagedots TUI.
//
// Run a model in a virtual terminal with [NewTestModel] and wait for its
// output with [WaitForText]:
//
//	tm := uitest.NewTestModel(t, model, uitest.Compact)
//	out := uitest.WaitForText(t, tm.Output(), "2nd of 12")
//
// Styled output can be inspected with [Segments] and [Foreground], e.g. to
// check the color a dot glyph was painted with.
package uitest
