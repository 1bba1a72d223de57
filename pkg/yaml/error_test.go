package yaml_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pagedots/pkg/yaml"
)

const errorSource = `a: b
indicator:
  visibleCount: 5
  dotRadius: 20
ui:
  pages: 10
`

func TestError_Error(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err      *yaml.Error
		want     string
		contains []string
	}{
		"nil error": {
			err:  &yaml.Error{},
			want: "",
		},
		"without location": {
			err:  yaml.NewError(errors.New("value is required")),
			want: "value is required",
		},
		"with path": {
			err: yaml.NewError(errors.New("value is required"),
				yaml.WithPath(yaml.NewPathBuilder().Root().Child("field").Child("subfield").Build()),
			),
			want: "error at $.field.subfield: value is required",
		},
		"with path and source": {
			err: yaml.NewError(errors.New("too large"),
				yaml.WithPath(yaml.NewPathBuilder().Root().Child("indicator").Child("dotRadius").Build()),
				yaml.WithSource([]byte(errorSource)),
			),
			contains: []string{"[4:3] too large", "dotRadius: 20"},
		},
		"with missing path and source": {
			err: yaml.NewError(errors.New("missing"),
				yaml.WithPath(yaml.NewPathBuilder().Root().Child("nope").Build()),
				yaml.WithSource([]byte(errorSource)),
			),
			want: "error at $.nope: missing",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := tc.err.Error()
			if tc.contains == nil {
				assert.Equal(t, tc.want, got)

				return
			}

			for _, s := range tc.contains {
				assert.Contains(t, got, s)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain")
	require.Same(t, plain, yaml.Wrap(plain, yaml.WithSource([]byte("a: b"))))

	inner := yaml.NewError(errors.New("inner"))
	wrapped := yaml.Wrap(inner, yaml.WithColor(true), yaml.WithSource([]byte("a: b")))

	var yamlErr *yaml.Error
	require.ErrorAs(t, wrapped, &yamlErr)
	assert.True(t, yamlErr.Colored)
	assert.Equal(t, []byte("a: b"), yamlErr.Source)
	assert.Nil(t, yaml.Wrap(nil))
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	type target struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	tcs := map[string]struct {
		input   string
		want    target
		strict  bool
		wantErr string
	}{
		"valid": {
			input: "name: dots\ncount: 3\n",
			want:  target{Name: "dots", Count: 3},
		},
		"unknown field allowed": {
			input: "name: dots\nextra: true\n",
			want:  target{Name: "dots"},
		},
		"unknown field strict": {
			input:   "name: dots\nextra: true\n",
			strict:  true,
			wantErr: "extra",
		},
		"type mismatch": {
			input:   "count: many\n",
			wantErr: "[1:8]",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var got target

			err := yaml.Unmarshal([]byte(tc.input), &got, tc.strict)
			if tc.wantErr != "" {
				var yamlErr *yaml.Error
				require.ErrorAs(t, err, &yamlErr)
				assert.Equal(t, []byte(tc.input), yamlErr.Source)
				assert.Contains(t, err.Error(), tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	got, err := yaml.Marshal(map[string]any{
		"steps": []map[string]int{{"scroll": 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, "steps:\n  - scroll: 1\n", string(got))
}
