package log_test

import (
	"bytes"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pagedots/pkg/log"
)

func TestBuffer(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		writes      []string
		want        []string
		size        int
		wantDropped int
	}{
		"empty": {
			size: 3,
			want: []string{},
		},
		"partial": {
			size:   3,
			writes: []string{"a", "b"},
			want:   []string{"a", "b"},
		},
		"full": {
			size:   3,
			writes: []string{"a", "b", "c"},
			want:   []string{"a", "b", "c"},
		},
		"wrapped": {
			size:        3,
			writes:      []string{"a", "b", "c", "d", "e"},
			want:        []string{"c", "d", "e"},
			wantDropped: 2,
		},
		"empty writes ignored": {
			size:   3,
			writes: []string{"a", "", "b"},
			want:   []string{"a", "b"},
		},
		"default size": {
			size:   0,
			writes: []string{"a"},
			want:   []string{"a"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			b := log.NewBuffer(tc.size)
			for _, w := range tc.writes {
				n, err := b.Write([]byte(w))
				require.NoError(t, err)
				assert.Equal(t, len(w), n)
			}

			got := []string{}
			for _, e := range b.Entries() {
				got = append(got, string(e))
			}

			assert.Equal(t, tc.want, got)
			assert.Equal(t, len(tc.want), b.Len())
			assert.Equal(t, tc.wantDropped, b.Dropped())
		})
	}
}

func TestBuffer_WriteTo(t *testing.T) {
	t.Parallel()

	b := log.NewBuffer(2)
	for _, s := range []string{"one\n", "two\n", "three\n"} {
		_, err := b.Write([]byte(s))
		require.NoError(t, err)
	}

	out := &bytes.Buffer{}
	n, err := b.WriteTo(out)
	require.NoError(t, err)

	assert.Equal(t, "two\nthree\n", out.String())
	assert.Equal(t, int64(out.Len()), n)

	b.Reset()
	assert.Zero(t, b.Len())
	assert.Zero(t, b.Dropped())
}

func TestBuffer_EntriesAreCopies(t *testing.T) {
	t.Parallel()

	b := log.NewBuffer(2)

	p := []byte("abc")
	_, err := b.Write(p)
	require.NoError(t, err)

	p[0] = 'x'
	b.Entries()[0][1] = 'x'

	assert.Equal(t, "abc", string(b.Entries()[0]))
}

func TestBuffer_Concurrent(t *testing.T) {
	t.Parallel()

	b := log.NewBuffer(10)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := b.Write([]byte(strconv.Itoa(i)))
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	assert.Equal(t, 10, b.Len())
	assert.Equal(t, 40, b.Dropped())
}
