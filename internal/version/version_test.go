package version

import (
	"strings"
	"testing"
)

func withBuild(t *testing.T, version, buildTime, commit string) {
	t.Helper()
	oldVersion, oldTime, oldCommit := Version, BuildTime, GitCommit
	Version, BuildTime, GitCommit = version, buildTime, commit
	t.Cleanup(func() {
		Version, BuildTime, GitCommit = oldVersion, oldTime, oldCommit
	})
}

func TestGetVersionString(t *testing.T) {
	tests := []struct {
		buildTime string
		expected  string
	}{
		{"unknown", "v1.2.0"},
		{"not-a-time", "v1.2.0"},
		{"2026-05-01T10:20:30Z", "v1.2.0 (built 2026-05-01 10:20:30 UTC)"},
	}

	for _, tt := range tests {
		withBuild(t, "v1.2.0", tt.buildTime, "unknown")
		if got := GetVersionString(); got != tt.expected {
			t.Errorf("GetVersionString() with BuildTime=%s = %q; want %q", tt.buildTime, got, tt.expected)
		}
	}
}

func TestInfo(t *testing.T) {
	tests := []struct {
		buildTime string
		commit    string
		contains  string
	}{
		{"unknown", "unknown", "v1.2.0 (development build"},
		{"2026-05-01T10:20:30Z", "0123456789abcdef", "commit 01234567)"},
		{"2026-05-01T10:20:30Z", "abc", "commit abc)"},
		{"yesterday", "abc", "v1.2.0 (built yesterday)"},
	}

	for _, tt := range tests {
		withBuild(t, "v1.2.0", tt.buildTime, tt.commit)
		if got := Info(); !strings.Contains(got, tt.contains) {
			t.Errorf("Info() = %q; want it to contain %q", got, tt.contains)
		}
	}
}

func TestGetBuildInfo(t *testing.T) {
	withBuild(t, "v1.2.0", "unknown", "abc")
	info := GetBuildInfo()
	if info.Version != "v1.2.0" || info.GitCommit != "abc" {
		t.Errorf("GetBuildInfo() = %+v", info)
	}
	if info.GoVersion == "" || !strings.Contains(info.Platform, "/") {
		t.Errorf("runtime fields not populated: %+v", info)
	}
}
