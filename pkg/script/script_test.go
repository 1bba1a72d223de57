package script_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pagedots/pkg/indicator"
	"github.com/macropower/pagedots/pkg/script"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		check  func(t *testing.T, s *script.Script)
		errIs  error
		input  string
		errMsg string
	}{
		"valid": {
			input: `bounds: {width: 40, height: 480}
indicator:
  visibleCount: 3
steps:
  - setDotCount: 4
  - scroll: {index: 1, fraction: 0.5}
  - measure: {width: 40, height: 200, paddingTop: 10}
`,
			check: func(t *testing.T, s *script.Script) {
				t.Helper()

				require.Len(t, s.Steps, 3)
				assert.Equal(t, 4, *s.Steps[0].SetDotCount)
				assert.Equal(t, script.Sample{Index: 1, Fraction: 0.5}, *s.Steps[1].Scroll)
				assert.Equal(t, indicator.Bounds{Width: 40, Height: 200, PaddingTop: 10}, *s.Steps[2].Measure)

				cfg := s.IndicatorConfig()
				assert.Equal(t, 3, cfg.VisibleCount)
				assert.InDelta(t, indicator.DefaultDotRadius, cfg.DotRadius, 1e-9)
			},
		},
		"missing bounds": {
			input:  "steps:\n  - setDotCount: 1\n",
			errMsg: "validate script",
		},
		"unknown operation": {
			input:  "bounds: {height: 100}\nsteps:\n  - jump: 3\n",
			errMsg: "validate script",
		},
		"no operation": {
			input: "bounds: {height: 100}\nsteps:\n  - name: empty\n",
			errIs: script.ErrInvalidScript,
		},
		"two operations": {
			input: "bounds: {height: 100}\nsteps:\n  - setDotCount: 3\n    scroll: {index: 0}\n",
			errIs: script.ErrInvalidScript,
		},
		"one scrub sample": {
			input:  "bounds: {height: 100}\nsteps:\n  - scrub: {from: 0, to: 1, samples: 1}\n",
			errMsg: "validate script",
		},
		"zero height": {
			input: "bounds: {height: 0}\nsteps: []\n",
			errIs: script.ErrInvalidScript,
		},
		"invalid indicator": {
			input: "bounds: {height: 100}\nindicator: {dotRadius: 5, dotRadiusMin: 6}\nsteps: []\n",
			errIs: indicator.ErrInvalidConfig,
		},
		"syntax error": {
			input:  "bounds: {height: 100\n",
			errMsg: "parse script",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s, err := script.Parse([]byte(tc.input))

			switch {
			case tc.errIs != nil:
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, s)

			case tc.errMsg != "":
				require.ErrorContains(t, err, tc.errMsg)
				assert.Nil(t, s)

			default:
				require.NoError(t, err)
				tc.check(t, s)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	s, err := script.Load(filepath.Join("testdata", "drag.yaml"))
	require.NoError(t, err)
	require.Len(t, s.Steps, 4)
	assert.Equal(t, "drag", s.Steps[2].Name)

	_, err = script.Load(filepath.Join("testdata", "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestScrub_Positions(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want  []script.Sample
		scrub script.Scrub
	}{
		"forward": {
			scrub: script.Scrub{From: 4, To: 5, Samples: 5},
			want: []script.Sample{
				{Index: 4, Fraction: 0},
				{Index: 4, Fraction: 0.25},
				{Index: 4, Fraction: 0.5},
				{Index: 4, Fraction: 0.75},
				{Index: 5, Fraction: 0},
			},
		},
		"backward": {
			scrub: script.Scrub{From: 5, To: 4, Samples: 3},
			want: []script.Sample{
				{Index: 5, Fraction: 0},
				{Index: 4, Fraction: 0.5},
				{Index: 4, Fraction: 0},
			},
		},
		"too few samples": {
			scrub: script.Scrub{From: 0, To: 1, Samples: 1},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.scrub.Positions())
		})
	}
}

func TestSampleAt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, script.Sample{Index: 2, Fraction: 0.5}, script.SampleAt(2.5))
	assert.Equal(t, script.Sample{Index: -1, Fraction: 0.5}, script.SampleAt(-0.5))
	assert.Equal(t, script.Sample{Index: 3, Fraction: 0}, script.SampleAt(3))
}

func TestSchema(t *testing.T) {
	t.Parallel()

	b, err := script.Schema()
	require.NoError(t, err)
	assert.Contains(t, string(b), `"setDotCountAndStartPosition"`)
	assert.Contains(t, string(b), script.SchemaURL)
}
