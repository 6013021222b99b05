package version

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()
	if info.Version == "" {
		t.Error("version should never be empty")
	}
	if info.Version != "dev" {
		t.Errorf("version = %q, want dev in tests", info.Version)
	}
}

func TestString(t *testing.T) {
	info := &Info{Version: "1.2.0", GitCommit: "abc1234"}
	got := info.String()
	if got != "1.2.0-abc1234" {
		t.Errorf("String() = %q, want 1.2.0-abc1234", got)
	}

	info.IsDirty = true
	if got := info.String(); got != "1.2.0-abc1234-dirty" {
		t.Errorf("String() = %q, want dirty suffix", got)
	}

	info.BuildTime = "2026-01-01T00:00:00Z"
	if got := info.String(); !strings.Contains(got, "built 2026-01-01") {
		t.Errorf("String() = %q, want build time", got)
	}
}
