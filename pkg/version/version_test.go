package version

import (
	"strings"
	"testing"
)

func TestGetFullVersion(t *testing.T) {
	full := GetFullVersion()
	for _, part := range []string{GetVersion(), GetCommit(), GetDate()} {
		if !strings.Contains(full, part) {
			t.Errorf("GetFullVersion() = %q, missing %q", full, part)
		}
	}
}
