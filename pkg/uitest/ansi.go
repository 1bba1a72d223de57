package uitest

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Segment is a run of printable text and the foreground color it was
// rendered with, as an upper case hex string without "#". Foreground is empty
// for the default color.
type Segment struct {
	Text       string
	Foreground string
	Bold       bool
}

// Segments splits styled output into runs of text with the same style. Only
// SGR sequences are interpreted; all other sequences are dropped.
func Segments(s string) []Segment {
	var (
		segs  []Segment
		cur   Segment
		text  strings.Builder
		state byte
		input = []byte(s)
	)

	p := ansi.GetParser()
	defer ansi.PutParser(p)

	flush := func() {
		if text.Len() == 0 {
			return
		}

		cur.Text = text.String()
		segs = append(segs, cur)
		text.Reset()
	}

	for len(input) > 0 {
		seq, width, n, next := ansi.DecodeSequence(input, state, p)

		switch {
		case ansi.HasCsiPrefix(seq) && seq[len(seq)-1] == 'm':
			flush()

			cur = applySGR(p.Params(), cur)

		case width > 0:
			text.Write(seq)
		}

		input = input[n:]
		state = next
	}

	flush()

	return segs
}

// Foreground returns the foreground of the first segment containing text.
func Foreground(s, text string) (string, bool) {
	for _, seg := range Segments(s) {
		if strings.Contains(seg.Text, text) {
			return seg.Foreground, true
		}
	}

	return "", false
}

func applySGR(params ansi.Params, style Segment) Segment {
	if len(params) == 0 {
		return Segment{}
	}

	for i := 0; i < len(params); i++ {
		switch params[i].Param(0) {
		case 0:
			style = Segment{}
		case 1:
			style.Bold = true
		case 22:
			style.Bold = false
		case 39:
			style.Foreground = ""
		case 38:
			// Only 24-bit colors are produced with a TrueColor profile.
			if i+4 < len(params) && params[i+1].Param(0) == 2 {
				style.Foreground = fmt.Sprintf("%02X%02X%02X",
					params[i+2].Param(0), params[i+3].Param(0), params[i+4].Param(0))
				i += 4
			}
		case 48:
			if i+1 < len(params) && params[i+1].Param(0) == 2 {
				i += 4
			}
		}
	}

	return style
}
