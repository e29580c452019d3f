package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if strings.Contains(Version, "\x1b[") {
		t.Error("Version must be plain text")
	}
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion, origGitCommit, origBuildDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origGitCommit, origBuildDate }()

	// как при сборке с -ldflags
	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	if Version != "1.2.3" || GitCommit != "abc123def456" || BuildDate != "2024-01-15T10:30:00Z" {
		t.Errorf("override failed: %q %q %q", Version, GitCommit, BuildDate)
	}
}

func TestColored(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	tests := []struct {
		version string
		suffix  string
	}{
		{"0.1.0-dev", "-dev"},
		{"1.2.3", ""},
		{"1.2.3-rc.1+build.123", "-rc.1+build.123"},
	}
	for _, tt := range tests {
		Version = tt.version
		if got := Colored(false); got != tt.version {
			t.Errorf("Colored(false) = %q, want %q", got, tt.version)
		}
		got := Colored(true)
		if !strings.Contains(got, "\x1b[") {
			t.Errorf("Colored(true) for %q has no color: %q", tt.version, got)
		}
		if !strings.HasSuffix(got, tt.suffix) {
			t.Errorf("Colored(true) = %q, suffix %q lost", got, tt.suffix)
		}
	}

	Version = "nightly"
	if Colored(true) != "nightly" {
		t.Error("non-semver versions stay plain")
	}
}

// BenchmarkVersionAccess benchmarks accessing version variables
func BenchmarkVersionAccess(b *testing.B) {
	b.Run("Colored", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Colored(true)
		}
	})
}
