package splitter

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/pursue-app/pursue-tools/internal/errors"
)

// LoadSource resolves path, checks that it names a regular file holding
// UTF-8 text and reads it whole. It returns the absolute path along with
// the document. Every failure is an input error.
func LoadSource(path string) (string, *Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", nil, errors.InputWithCause(err, "Cannot resolve source path: %s", path)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, errors.Input("Source file does not exist: %s", abs)
		}
		return "", nil, errors.InputWithCause(err, "Cannot access source: %s", abs)
	}
	if !info.Mode().IsRegular() {
		return "", nil, errors.Input("Source is not a file: %s", abs)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return "", nil, errors.InputWithCause(err, "Cannot read source: %s", abs)
	}
	if !utf8.Valid(data) {
		return "", nil, errors.Input("Source is not valid UTF-8: %s", abs)
	}

	return abs, NewDocument(string(data)), nil
}
