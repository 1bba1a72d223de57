package indicator

import (
	"fmt"
	"log/slog"
)

// DiagnosticKind classifies a [Diagnostic].
type DiagnosticKind string

const (
	DiagStaleSample         DiagnosticKind = "stale-sample"
	DiagBeforeOrigin        DiagnosticKind = "before-origin"
	DiagFractionClamped     DiagnosticKind = "fraction-clamped"
	DiagFractionInvalid     DiagnosticKind = "fraction-invalid"
	DiagNegativeCount       DiagnosticKind = "negative-count"
	DiagSelectionOutOfRange DiagnosticKind = "selection-out-of-range"
	DiagJump                DiagnosticKind = "jump"
	DiagUnsupportedHost     DiagnosticKind = "unsupported-host"
)

// Diagnostic describes an input the [Tracker] clamped or ignored. Diagnostics
// never change how the input is handled.
type Diagnostic struct {
	Kind     DiagnosticKind
	Message  string
	Index    int
	Fraction float64
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s (index=%d, fraction=%g)", d.Kind, d.Message, d.Index, d.Fraction)
}

func (t *Tracker) diagnose(kind DiagnosticKind, index int, fraction float64, msg string) {
	d := Diagnostic{Kind: kind, Message: msg, Index: index, Fraction: fraction}

	t.log.Debug(msg,
		slog.String("kind", string(kind)),
		slog.Int("index", index),
		slog.Float64("fraction", fraction),
	)

	if t.diagnostics != nil {
		t.diagnostics(d)
	}
}
