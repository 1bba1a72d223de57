package script

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/macropower/pagedots/pkg/indicator"
	"github.com/macropower/pagedots/pkg/log"
)

// Frame is the indicator after one operation.
type Frame struct {
	Step        int              `json:"step"`
	Name        string           `json:"name,omitempty"`
	Action      Action           `json:"action"`
	Input       string           `json:"input"`
	Motion      string           `json:"motion"`
	Redraw      bool             `json:"redraw"`
	Diagnostics []string         `json:"diagnostics,omitempty"`
	State       indicator.State  `json:"state"`
	Dots        []indicator.Dot  `json:"dots"`
	Layout      indicator.Layout `json:"-"`
}

// PlayerOpt configures a [Player].
type PlayerOpt func(p *Player)

// WithTracerProvider sets the provider of the player's tracer. The global
// provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) PlayerOpt {
	return func(p *Player) {
		p.tracer = tp.Tracer("script-player")
	}
}

// WithIndicatorConfig overrides the indicator configuration of every script.
func WithIndicatorConfig(cfg indicator.Config) PlayerOpt {
	return func(p *Player) {
		p.cfg = &cfg
	}
}

// Player runs scripts against a fresh [indicator.Tracker].
type Player struct {
	tracer trace.Tracer
	cfg    *indicator.Config
}

// NewPlayer returns a [Player] that traces with the global tracer provider.
func NewPlayer(opts ...PlayerOpt) *Player {
	p := &Player{
		tracer: otel.Tracer("script-player"),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Play runs s and returns its frames. Every step is traced as a span.
func (p *Player) Play(ctx context.Context, s *Script) ([]Frame, error) {
	ctx, span := p.tracer.Start(ctx, "play", trace.WithAttributes(
		attribute.Int("steps", len(s.Steps)),
	))
	defer span.End()

	err := s.Validate()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid script")

		return nil, err
	}

	cfg := s.IndicatorConfig()
	if p.cfg != nil {
		cfg = *p.cfg
		cfg.EnsureDefaults()
	}

	r := &recorder{}
	tr := indicator.NewTracker(cfg,
		indicator.WithLogger(log.WithContext(ctx)),
		indicator.WithRedraw(r.redraw),
		indicator.WithDiagnostics(r.diagnose),
	)
	tr.Measure(s.Bounds)
	r.reset()

	frames := make([]Frame, 0, len(s.Steps))

	for i, step := range s.Steps {
		err := ctx.Err()
		if err != nil {
			return frames, fmt.Errorf("play step %d: %w", i, err)
		}

		frames = append(frames, p.playStep(ctx, tr, r, i, step)...)
	}

	return frames, nil
}

func (p *Player) playStep(ctx context.Context, tr *indicator.Tracker, r *recorder, i int, step Step) []Frame {
	//nolint:errcheck // Validated by [Script.Validate].
	action, _ := step.Action()

	ctx, span := p.tracer.Start(ctx, "step", trace.WithAttributes(
		attribute.Int("index", i),
		attribute.String("action", string(action)),
	))
	defer span.End()

	logger := log.WithContext(ctx)

	var frames []Frame

	emit := func(input string) {
		f := r.frame(tr)
		f.Step = i
		f.Name = step.Name
		f.Action = action
		f.Input = input

		logger.DebugContext(ctx, "frame",
			slog.Int("step", i),
			slog.String("action", string(action)),
			slog.String("input", input),
			slog.String("motion", f.Motion),
		)

		frames = append(frames, f)
	}

	switch action {
	case ActionSetDotCount:
		tr.SetDotCount(*step.SetDotCount)
		emit(strconv.Itoa(*step.SetDotCount))

	case ActionSetDotCountAndStartPosition:
		a := step.SetDotCountAndStartPosition
		tr.SetDotCountAndStartPosition(a.First, a.Count)
		emit(fmt.Sprintf("first=%d count=%d", a.First, a.Count))

	case ActionSetSelectedIndex:
		a := step.SetSelectedIndex
		tr.SetSelectedIndex(a.Index, a.Total)
		emit(fmt.Sprintf("index=%d total=%d", a.Index, a.Total))

	case ActionScroll:
		tr.ReportScroll(step.Scroll.Fraction, step.Scroll.Index)
		emit(sampleString(*step.Scroll))

	case ActionScrub:
		for _, sample := range step.Scrub.Positions() {
			tr.ReportScroll(sample.Fraction, sample.Index)
			emit(sampleString(sample))
		}

	case ActionMeasure:
		tr.Measure(*step.Measure)
		emit(fmt.Sprintf("height=%g", step.Measure.Height))
	}

	span.SetAttributes(attribute.Int("frames", len(frames)))

	return frames
}

// recorder collects the callbacks of a tracker between two frames.
type recorder struct {
	diags   []indicator.Diagnostic
	redraws int
}

func (r *recorder) redraw() {
	r.redraws++
}

func (r *recorder) diagnose(d indicator.Diagnostic) {
	r.diags = append(r.diags, d)
}

func (r *recorder) frame(tr *indicator.Tracker) Frame {
	st := tr.State()

	f := Frame{
		State:  st,
		Layout: tr.Layout(),
		Dots:   tr.Dots(),
		Motion: MotionString(st.Motion()),
		Redraw: r.redraws > 0,
	}

	for _, d := range r.diags {
		f.Diagnostics = append(f.Diagnostics, d.String())
	}

	r.reset()

	return f
}

func (r *recorder) reset() {
	r.diags = nil
	r.redraws = 0
}

// MotionString describes m in a few words, e.g. "settled 4" or
// "dragging 4→5 25%".
func MotionString(m indicator.Motion) string {
	if m == nil {
		return "unknown"
	}

	return m.String()
}

func sampleString(s Sample) string {
	return fmt.Sprintf("index=%d fraction=%s", s.Index, strconv.FormatFloat(s.Fraction, 'g', 4, 64))
}
