package security

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pursue-app/pursue-tools/internal/errors"
)

func TestNewDefaultValidator(t *testing.T) {
	v := NewDefaultValidator()

	if v == nil {
		t.Fatal("NewDefaultValidator returned nil")
	}

	expectedBlockedPaths := []string{
		"/etc", "/usr/bin", "/usr/sbin", "/sbin", "/bin", "/sys", "/proc",
	}
	if len(v.blockedPaths) != len(expectedBlockedPaths) {
		t.Errorf("expected %d blocked paths, got %d", len(expectedBlockedPaths), len(v.blockedPaths))
	}

	if len(v.allowedPaths) != 0 {
		t.Errorf("expected 0 allowed paths, got %d", len(v.allowedPaths))
	}
}

func TestWithAllowedPaths(t *testing.T) {
	v := NewDefaultValidator()
	paths := []string{"/home/user/", "/tmp"}

	v.WithAllowedPaths(paths)

	if len(v.allowedPaths) != len(paths) {
		t.Fatalf("expected %d allowed paths, got %d", len(paths), len(v.allowedPaths))
	}
	if v.allowedPaths[0] != "/home/user" {
		t.Errorf("allowed paths should be cleaned, got %q", v.allowedPaths[0])
	}

	// Verify paths are copied, not referenced
	paths[1] = "/modified"
	if v.allowedPaths[1] == "/modified" {
		t.Error("allowed paths should be copied, not referenced")
	}

	roots := v.Roots()
	roots[0] = "/changed"
	if v.allowedPaths[0] != "/home/user" {
		t.Error("Roots should return a copy")
	}
}

func TestWithBlockedPaths(t *testing.T) {
	v := NewDefaultValidator()
	initialBlockedCount := len(v.blockedPaths)
	additionalPaths := []string{"/custom/blocked", "/another/blocked"}

	v.WithBlockedPaths(additionalPaths)

	expectedCount := initialBlockedCount + len(additionalPaths)
	if len(v.blockedPaths) != expectedCount {
		t.Errorf("expected %d blocked paths, got %d", expectedCount, len(v.blockedPaths))
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		allowedPaths  []string
		blockedPaths  []string
		wantErr       bool
		errorContains string
	}{
		// Basic validation tests
		{
			name:          "relative path should fail",
			path:          "relative/path",
			wantErr:       true,
			errorContains: "path must be absolute",
		},
		{
			name:          "empty path should fail",
			path:          "",
			wantErr:       true,
			errorContains: "path must be absolute",
		},
		{
			name:    "absolute path with no restrictions should pass",
			path:    "/home/user/book.md",
			wantErr: false,
		},
		{
			name:          "default blocked directory should fail",
			path:          "/etc/passwd",
			wantErr:       true,
			errorContains: "path is blocked",
		},

		// Blocked paths tests
		{
			name:          "custom blocked path should fail",
			path:          "/custom/blocked/file",
			blockedPaths:  []string{"/custom/blocked"},
			wantErr:       true,
			errorContains: "path is blocked",
		},
		{
			name:         "sibling sharing a blocked prefix should pass",
			path:         "/custom/blockedness/file",
			blockedPaths: []string{"/custom/blocked"},
			wantErr:      false,
		},

		// Allowed paths tests
		{
			name:          "path outside allowed list should fail",
			path:          "/not/allowed/file",
			allowedPaths:  []string{"/home/user", "/tmp"},
			wantErr:       true,
			errorContains: "path not allowed",
		},
		{
			name:         "path inside allowed list should pass",
			path:         "/home/user/docs/book.md",
			allowedPaths: []string{"/home/user"},
			wantErr:      false,
		},
		{
			name:         "path at allowed root should pass",
			path:         "/home/user",
			allowedPaths: []string{"/home/user"},
			wantErr:      false,
		},
		{
			name:          "sibling sharing an allowed prefix should fail",
			path:          "/home/user2/book.md",
			allowedPaths:  []string{"/home/user"},
			wantErr:       true,
			errorContains: "path not allowed",
		},

		// Path traversal tests
		{
			name:          "path with .. traversal to blocked directory should fail",
			path:          "/allowed/user/../../blocked/secret",
			allowedPaths:  []string{"/allowed"},
			blockedPaths:  []string{"/blocked"},
			wantErr:       true,
			errorContains: "path is blocked",
		},
		{
			name:          "path with .. escaping allowed directory should fail",
			path:          "/home/user/../other/book.md",
			allowedPaths:  []string{"/home/user"},
			wantErr:       true,
			errorContains: "path not allowed",
		},
		{
			name:         "path with multiple .. traversals should be cleaned",
			path:         "/home/user/../user/./docs/../book.md",
			allowedPaths: []string{"/home/user"},
			wantErr:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewDefaultValidator()
			if len(tt.allowedPaths) > 0 {
				v.WithAllowedPaths(tt.allowedPaths)
			}
			if len(tt.blockedPaths) > 0 {
				v.WithBlockedPaths(tt.blockedPaths)
			}

			err := v.ValidatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil && tt.errorContains != "" && !strings.Contains(err.Error(), tt.errorContains) {
				t.Errorf("ValidatePath() error = %v, want error containing %q", err, tt.errorContains)
			}
			if err != nil && !errors.Is(err, errors.ErrInput) {
				t.Errorf("ValidatePath() error = %v, want an input error", err)
			}
		})
	}
}

func TestValidatePathFollowsSymlinks(t *testing.T) {
	root := t.TempDir()
	allowed := filepath.Join(root, "allowed")
	secret := filepath.Join(root, "secret")
	for _, dir := range []string{allowed, secret} {
		if err := os.Mkdir(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	link := filepath.Join(allowed, "escape")
	if err := os.Symlink(secret, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	v := NewDefaultValidator().WithAllowedPaths([]string{allowed}).WithBlockedPaths([]string{secret})

	err := v.ValidatePath(link)
	if err == nil || !strings.Contains(err.Error(), "path is blocked") {
		t.Errorf("ValidatePath(%s) error = %v, want blocked", link, err)
	}
}

func TestSanitizePath(t *testing.T) {
	base := t.TempDir()
	v := NewDefaultValidator().WithBaseDir(base).WithAllowedPaths([]string{base})

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "relative path joins base", path: "docs/book.md", want: filepath.Join(base, "docs", "book.md")},
		{name: "absolute path is cleaned", path: base + "/docs/./book.md", want: filepath.Join(base, "docs", "book.md")},
		{name: "dot is base", path: ".", want: base},
		{name: "relative escape fails", path: "../elsewhere.md", wantErr: true},
		{name: "empty path fails", path: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.SanitizePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SanitizePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SanitizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestSanitizePathUsesWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	got, err := NewDefaultValidator().SanitizePath("book.md")
	if err != nil {
		t.Fatalf("SanitizePath() error = %v", err)
	}
	if want := filepath.Join(wd, "book.md"); got != want {
		t.Errorf("SanitizePath() = %q, want %q", got, want)
	}
}
