package buildinfo

import (
	"strings"
	"testing"
)

func TestGetKeepsLdflags(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02T03:04:05Z"

	i := Get()
	if i.Version != "v1.2.3" || i.Commit != "abc123" || i.Date != "2026-01-02T03:04:05Z" {
		t.Errorf("Get() = %+v", i)
	}
	if s := String(); !strings.Contains(s, "version: v1.2.3") || !strings.Contains(s, "commit: abc123") {
		t.Errorf("String() = %q", s)
	}
	if tpl := Template(); !strings.HasPrefix(tpl, "{{.Name}} version v1.2.3") {
		t.Errorf("Template() = %q", tpl)
	}
}
