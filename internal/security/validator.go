// Package security provides path validation for MCP tool arguments.
package security

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pursue-app/pursue-tools/internal/errors"
)

// Validator defines the path validation interface.
type Validator interface {
	ValidatePath(path string) error
	SanitizePath(path string) (string, error)
}

// DefaultValidator provides default path validation.
type DefaultValidator struct {
	baseDir      string
	allowedPaths []string
	blockedPaths []string
}

// NewDefaultValidator creates a new default validator with secure defaults.
// Relative paths resolve against the working directory.
func NewDefaultValidator() *DefaultValidator {
	return &DefaultValidator{
		allowedPaths: []string{},
		blockedPaths: []string{
			"/etc",
			"/usr/bin",
			"/usr/sbin",
			"/sbin",
			"/bin",
			"/sys",
			"/proc",
		},
	}
}

// WithBaseDir sets the directory relative paths resolve against.
func (v *DefaultValidator) WithBaseDir(dir string) *DefaultValidator {
	v.baseDir = filepath.Clean(dir)
	return v
}

// WithAllowedPaths restricts file operations to the given roots.
func (v *DefaultValidator) WithAllowedPaths(paths []string) *DefaultValidator {
	v.allowedPaths = make([]string, 0, len(paths))
	for _, p := range paths {
		v.allowedPaths = append(v.allowedPaths, filepath.Clean(p))
	}
	return v
}

// Roots returns the allowed roots. Empty means any path outside the
// blocked directories is allowed.
func (v *DefaultValidator) Roots() []string {
	return slices.Clone(v.allowedPaths)
}

// WithBlockedPaths adds blocked paths to the default list.
func (v *DefaultValidator) WithBlockedPaths(paths []string) *DefaultValidator {
	for _, p := range paths {
		v.blockedPaths = append(v.blockedPaths, filepath.Clean(p))
	}
	return v
}

// ValidatePath checks that an absolute path is outside every blocked
// directory and, when roots are configured, inside one of them.
func (v *DefaultValidator) ValidatePath(path string) error {
	if !filepath.IsAbs(path) {
		return errors.Input("path must be absolute: %q", path)
	}

	candidates := resolve(path)

	for _, blocked := range v.blockedPaths {
		if anyWithin(candidates, resolve(blocked)) {
			return errors.Input("path is blocked: %s is in a restricted system directory", path)
		}
	}

	if len(v.allowedPaths) == 0 {
		return nil
	}
	for _, allowed := range v.allowedPaths {
		if anyWithin(candidates, resolve(allowed)) {
			return nil
		}
	}
	return errors.Input("path not allowed: %s is outside the allowed directories", path)
}

// SanitizePath makes path absolute and clean, then validates it.
func (v *DefaultValidator) SanitizePath(path string) (string, error) {
	if path == "" {
		return "", errors.Input("path is required")
	}

	if !filepath.IsAbs(path) {
		base := v.baseDir
		if base == "" {
			wd, err := os.Getwd()
			if err != nil {
				return "", errors.InputWithCause(err, "cannot resolve relative path %q", path)
			}
			base = wd
		}
		path = filepath.Join(base, path)
	}

	cleanPath := filepath.Clean(path)
	if err := v.ValidatePath(cleanPath); err != nil {
		return "", err
	}
	return cleanPath, nil
}

// resolve returns the cleaned path and, when it differs, the path with
// symlinks evaluated. Paths that do not exist yet only have the former.
func resolve(path string) []string {
	cleanPath := filepath.Clean(path)
	resolved, err := filepath.EvalSymlinks(cleanPath)
	if err != nil || resolved == cleanPath {
		return []string{cleanPath}
	}
	return []string{cleanPath, resolved}
}

func anyWithin(paths, roots []string) bool {
	for _, p := range paths {
		for _, root := range roots {
			if within(p, root) {
				return true
			}
		}
	}
	return false
}

// within reports whether path is root or lies below it.
func within(path, root string) bool {
	if path == root || root == string(filepath.Separator) {
		return true
	}
	return strings.HasPrefix(path, root+string(filepath.Separator))
}
