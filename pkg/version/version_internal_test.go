package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRevision(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		info *debug.BuildInfo
		want string
	}{
		"no build info": {
			want: "unknown",
		},
		"no vcs": {
			info: &debug.BuildInfo{},
			want: "unknown",
		},
		"clean": {
			info: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.modified", Value: "false"},
			}},
			want: "0123456",
		},
		"dirty short": {
			info: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.modified", Value: "true"},
			}},
			want: "abc-dirty",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := revision(func() (*debug.BuildInfo, bool) {
				return tc.info, tc.info != nil
			})

			assert.Equal(t, tc.want, got)
		})
	}
}
