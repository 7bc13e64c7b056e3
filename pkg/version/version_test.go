package version

import (
	"strings"
	"testing"
)

func withBuildInfo(t *testing.T, v, commit string) {
	t.Helper()
	origVersion, origCommit := Version, Commit
	Version, Commit = v, commit
	t.Cleanup(func() { Version, Commit = origVersion, origCommit })
}

func TestSummary(t *testing.T) {
	tests := []struct {
		version string
		commit  string
		want    string
	}{
		{"1.2.0", "none", "1.2.0"},
		{"1.2.0", "", "1.2.0"},
		{"1.2.0", "abcdef0123456", "1.2.0 (abcdef0)"},
		{"", "abc", "dev (abc)"},
	}
	for _, tt := range tests {
		withBuildInfo(t, tt.version, tt.commit)
		if got := Summary(); got != tt.want {
			t.Errorf("Summary() with %q/%q = %q, want %q", tt.version, tt.commit, got, tt.want)
		}
	}
}

func TestInfo(t *testing.T) {
	withBuildInfo(t, "0.3.1", "none")
	info := Info("visionoptics")
	for _, want := range []string{"visionoptics version 0.3.1", "go: ", "platform: " + Platform()} {
		if !strings.Contains(info, want) {
			t.Errorf("Expected %q in:\n%s", want, info)
		}
	}
}
