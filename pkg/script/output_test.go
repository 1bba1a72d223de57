package script_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pagedots/pkg/script"
	"github.com/macropower/pagedots/pkg/ui/dots"
)

func playDrag(t *testing.T) []script.Frame {
	t.Helper()

	s, err := script.Load(filepath.Join("testdata", "drag.yaml"))
	require.NoError(t, err)

	frames, err := script.NewPlayer().Play(t.Context(), s)
	require.NoError(t, err)

	return frames
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want    script.Format
		input   string
		wantErr bool
	}{
		"yaml":    {input: "yaml", want: script.FormatYAML},
		"upper":   {input: " JSON ", want: script.FormatJSON},
		"table":   {input: "table", want: script.FormatTable},
		"frames":  {input: "frames", want: script.FormatFrames},
		"unknown": {input: "xml", wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := script.ParseFormat(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, script.ErrUnknownFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	frames := playDrag(t)

	tcs := map[string]struct {
		check  func(t *testing.T, out string)
		format script.Format
	}{
		"yaml": {
			format: script.FormatYAML,
			check: func(t *testing.T, out string) {
				t.Helper()

				assert.Contains(t, out, "dragging 4→5 50%")
				assert.Contains(t, out, "windowStart: 3")
				assert.NotContains(t, out, "layout")
			},
		},
		"json": {
			format: script.FormatJSON,
			check: func(t *testing.T, out string) {
				t.Helper()

				var got []map[string]any
				require.NoError(t, json.Unmarshal([]byte(out), &got))
				require.Len(t, got, len(frames))
				assert.Equal(t, "setDotCount", got[0]["action"])
			},
		},
		"table": {
			format: script.FormatTable,
			check: func(t *testing.T, out string) {
				t.Helper()

				assert.Contains(t, out, "SELECTED")
				assert.Contains(t, out, "settled 5")
				// Header, separator, borders and one row per frame.
				assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), len(frames)+4)
			},
		},
		"frames": {
			format: script.FormatFrames,
			check: func(t *testing.T, out string) {
				t.Helper()

				assert.Contains(t, out, dots.GlyphLarge)
				assert.Contains(t, out, "scrub index=4 fraction=0.5")
				assert.Contains(t, out, "dragging 4→5 50%")
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			err := script.NewWriter(&buf, tc.format).Write(frames)
			require.NoError(t, err)
			tc.check(t, buf.String())
		})
	}
}

func TestWriter_Strips(t *testing.T) {
	t.Parallel()

	frames := playDrag(t)

	var buf bytes.Buffer

	w := script.NewWriter(&buf, script.FormatFrames, script.WithFramesPerStrip(4))
	require.NoError(t, w.Write(frames))

	// 24 rows plus a header per strip, two strips.
	headers := 0
	for line := range strings.SplitSeq(buf.String(), "\n") {
		if strings.HasPrefix(line, "  0") || strings.HasPrefix(line, "  4") {
			headers++
		}
	}

	// Each strip starts with a header row, and the legend repeats the frame
	// numbers.
	assert.Equal(t, 4, headers)

	err := script.NewWriter(&buf, script.Format("xml")).Write(frames)
	require.ErrorIs(t, err, script.ErrUnknownFormat)
}
