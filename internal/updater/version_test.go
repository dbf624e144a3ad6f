package updater

import (
	"errors"
	"testing"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		latest   string
		expected int
		wantErr  bool
	}{
		{"older patch", "1.0.0", "1.0.1", -1, false},
		{"older minor", "1.0.0", "1.1.0", -1, false},
		{"older major", "1.0.0", "2.0.0", -1, false},
		{"numeric not lexical", "1.9.0", "1.10.0", -1, false},
		{"equal", "1.2.3", "1.2.3", 0, false},
		{"newer", "1.1.0", "1.0.0", 1, false},
		{"v prefix current", "v1.0.0", "1.0.1", -1, false},
		{"v prefix latest", "1.0.0", "v1.0.1", -1, false},
		{"v prefix both", "v1.0.0", "v1.0.1", -1, false},
		{"prerelease less than release", "1.0.0-beta", "1.0.0", -1, false},
		{"prerelease comparison", "1.0.0-alpha", "1.0.0-beta", -1, false},
		{"numeric prerelease fields", "1.0.0-rc.2", "1.0.0-rc.10", -1, false},
		{"numeric below alphanumeric", "1.0.0-alpha.1", "1.0.0-alpha.beta", -1, false},
		{"build metadata ignored", "1.0.0+build.1", "1.0.0+build.2", 0, false},
		{"invalid current", "notaversion", "1.0.0", 0, true},
		{"invalid latest", "1.0.0", "notaversion", 0, true},
		{"dev version", "dev", "1.0.0", 0, true},
		{"partial version", "1.2", "1.3.0", 0, true},
		{"empty", "", "1.0.0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CompareVersions(tt.current, tt.latest)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				if !errors.Is(err, ErrMalformedVersion) {
					t.Errorf("expected ErrMalformedVersion, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.current, tt.latest, result, tt.expected)
			}
		})
	}
}

func TestIsNewer(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		latest   string
		expected bool
	}{
		{"greater major", "1.9.9", "2.0.0", true},
		{"greater minor", "1.2.9", "1.3.0", true},
		{"greater patch", "1.2.3", "1.2.4", true},
		{"on latest", "1.1.0", "1.1.0", false},
		{"ahead of latest", "1.2.0", "1.1.0", false},
		{"release candidate of same version", "1.0.0", "1.0.0-rc.1", false},
		{"longer prerelease", "1.0.0-alpha", "1.0.0-alpha.1", true},
		{"release after prerelease", "1.0.0-rc.1", "1.0.0", true},
		{"build metadata only", "1.0.0", "1.0.0+sha.abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := IsNewer(tt.current, tt.latest)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.current, tt.latest, result, tt.expected)
			}
		})
	}
}

func TestIsNewer_EqualVersions(t *testing.T) {
	for _, v := range []string{"0.0.1", "1.2.3", "1.0.0-alpha", "2.0.0-rc.1+build.5", "v3.4.5"} {
		newer, err := IsNewer(v, v)
		if err != nil {
			t.Fatalf("IsNewer(%q, %q): %v", v, v, err)
		}
		if newer {
			t.Errorf("IsNewer(%q, %q) = true, want false", v, v)
		}
	}
}

func TestIsNewer_Malformed(t *testing.T) {
	newer, err := IsNewer("1.0.0", "latest")
	if err == nil {
		t.Fatal("expected error for malformed latest version")
	}
	if newer {
		t.Error("malformed input must not report an update")
	}
}
