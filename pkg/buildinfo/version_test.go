package buildinfo

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	i := Get()
	if i.Version == "" || i.Commit == "" || i.Date == "" {
		t.Errorf("Get() = %+v, want no empty fields", i)
	}
	if i.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", i.GoVersion, runtime.Version())
	}
}

func TestLdflagsWin(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v9.9.9", "abc123", "2026-01-01T00:00:00Z"

	i := Get()
	if i.Version != "v9.9.9" || i.Commit != "abc123" || i.Date != "2026-01-01T00:00:00Z" {
		t.Errorf("Get() = %+v, want ldflags values", i)
	}
	if !strings.Contains(Template(), "version v9.9.9") {
		t.Errorf("Template() = %q, want version v9.9.9", Template())
	}
	if !strings.HasPrefix(String(), "version: v9.9.9\ncommit: abc123\n") {
		t.Errorf("String() = %q", String())
	}
}
