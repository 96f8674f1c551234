// Package icons processes launcher icon images: it clears their border
// to transparency and renders density-specific copies for an Android
// resource tree.
//
// Both operations are batches over the files matching a glob. A file
// that cannot be processed is reported and skipped; the batch goes on.
package icons

import (
	"bytes"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register the WebP decoder used by imaging.Open

	"github.com/pursue-app/pursue-tools/internal/errors"
)

// Failure records a file the batch skipped.
type Failure struct {
	Path string `json:"path"`
	Err  error  `json:"-"`
}

// BatchResult summarizes a batch.
type BatchResult struct {
	Matched   []string  `json:"matched"`
	Processed []string  `json:"processed"`
	Failed    []Failure `json:"failed,omitempty"`
}

// Match returns the files in dir matching pattern, sorted by name.
func Match(dir, pattern string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, errors.ConfigurationWithCause(err, "invalid pattern %q", pattern)
	}
	return files, nil
}

// decode opens an image file in any registered format.
func decode(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, errors.ProcessingWithCause(err, "failed to decode %s", filepath.Base(path))
	}
	return img, nil
}

// writePNG encodes img as PNG and replaces path. The file is left alone
// when encoding fails.
func writePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return errors.ProcessingWithCause(err, "failed to encode %s", filepath.Base(path))
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Output(err, "failed to write %s", path)
	}
	return nil
}
