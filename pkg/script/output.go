package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	xstrings "github.com/charmbracelet/x/exp/strings"

	"github.com/macropower/pagedots/pkg/ui/dots"
	"github.com/macropower/pagedots/pkg/yaml"
)

// Format is an output format for frames.
type Format string

const (
	FormatYAML   Format = "yaml"
	FormatJSON   Format = "json"
	FormatTable  Format = "table"
	FormatFrames Format = "frames"
)

var (
	ErrUnknownFormat = errors.New("unknown format")

	AllFormats = []string{
		string(FormatYAML),
		string(FormatJSON),
		string(FormatTable),
		string(FormatFrames),
	}
)

// DefaultFramesPerStrip is the number of dot columns printed side by side in
// [FormatFrames].
const DefaultFramesPerStrip = 16

// ParseFormat parses a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range AllFormats {
		if string(f) == valid {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q, supported formats are %s",
		ErrUnknownFormat, s, xstrings.EnglishJoin(AllFormats, true))
}

// WriterOpt configures a [Writer].
type WriterOpt func(w *Writer)

// WithRenderer sets the dot renderer used by [FormatFrames].
func WithRenderer(r *dots.Renderer) WriterOpt {
	return func(w *Writer) {
		w.renderer = r
	}
}

// WithFramesPerStrip sets the number of dot columns printed side by side.
func WithFramesPerStrip(n int) WriterOpt {
	return func(w *Writer) {
		w.perStrip = max(1, n)
	}
}

// Writer prints frames in a [Format].
type Writer struct {
	w        io.Writer
	renderer *dots.Renderer
	format   Format
	perStrip int
}

// NewWriter returns a [Writer] that prints to w.
func NewWriter(w io.Writer, format Format, opts ...WriterOpt) *Writer {
	fw := &Writer{
		w:        w,
		format:   format,
		renderer: dots.New(dots.WithWidth(3)),
		perStrip: DefaultFramesPerStrip,
	}
	for _, opt := range opts {
		opt(fw)
	}

	return fw
}

// Write prints frames.
func (fw *Writer) Write(frames []Frame) error {
	var (
		out string
		err error
	)

	switch fw.format {
	case FormatYAML:
		var b []byte

		b, err = yaml.Marshal(frames)
		out = string(b)

	case FormatJSON:
		var b []byte

		b, err = json.MarshalIndent(frames, "", "  ")
		out = string(b) + "\n"

	case FormatTable:
		out = fw.table(frames)

	case FormatFrames:
		out = fw.strips(frames)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, fw.format)
	}

	if err != nil {
		return fmt.Errorf("encode %s: %w", fw.format, err)
	}

	_, err = io.WriteString(fw.w, out)
	if err != nil {
		return fmt.Errorf("write frames: %w", err)
	}

	return nil
}

func (fw *Writer) table(frames []Frame) string {
	rows := make([][]string, 0, len(frames))
	for _, f := range frames {
		rows = append(rows, []string{
			strconv.Itoa(f.Step),
			string(f.Action),
			f.Input,
			f.Motion,
			strconv.Itoa(f.State.Total),
			strconv.Itoa(f.State.WindowStart),
			strconv.Itoa(f.State.Selected),
			strconv.Itoa(f.State.Next),
			strconv.FormatFloat(f.State.Fraction, 'f', 3, 64),
			strconv.FormatFloat(f.State.WindowOffset, 'f', 1, 64),
			strconv.Itoa(len(f.Dots)),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("STEP", "ACTION", "INPUT", "MOTION", "TOTAL", "WINDOW", "SELECTED", "NEXT", "FRACTION", "OFFSET", "DOTS").
		Rows(rows...)

	return t.String() + "\n"
}

// strips prints the dot column of every frame, side by side, followed by a
// legend.
func (fw *Writer) strips(frames []Frame) string {
	var sb strings.Builder

	for start := 0; start < len(frames); start += fw.perStrip {
		end := min(start+fw.perStrip, len(frames))
		chunk := frames[start:end]

		blocks := make([]string, 0, len(chunk))
		for i, f := range chunk {
			rows := int(f.Layout.Height / fw.renderer.RowHeight())
			header := fmt.Sprintf("%*d", fw.renderer.Width(), (start+i)%1000)

			blocks = append(blocks, header+"\n"+fw.renderer.Render(f.Dots, f.Layout, rows))
		}

		if start > 0 {
			sb.WriteString("\n")
		}

		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
		sb.WriteString("\n\n")

		for i, f := range chunk {
			fmt.Fprintf(&sb, "%*d  %-28s %s\n",
				fw.renderer.Width(), start+i, string(f.Action)+" "+f.Input, f.Motion)
		}
	}

	return sb.String()
}
