package icons

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/pursue-app/pursue-tools/internal/config"
	"github.com/pursue-app/pursue-tools/internal/errors"
	"github.com/pursue-app/pursue-tools/internal/logging"
)

// Resize scales img to a size×size square with Lanczos resampling.
// The aspect ratio is not preserved.
func Resize(img image.Image, size int) *image.NRGBA {
	return imaging.Resize(img, size, size, imaging.Lanczos)
}

// DensityFileName returns the PNG name for a source icon: its name with
// the extension replaced by ".png".
func DensityFileName(source string) string {
	name := filepath.Base(source)
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
}

// GenerateDensityFile renders one source icon into every bucket under
// resDir. It reports each written file through written.
func GenerateDensityFile(source string, cfg config.DensitiesConfig, written func(bucket, name string, size int)) error {
	img, err := decode(source)
	if err != nil {
		return err
	}

	name := DensityFileName(source)
	for _, bucket := range cfg.Buckets {
		dir := filepath.Join(cfg.ResDir, bucket.Name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Output(err, "failed to create %s", dir)
		}

		size := bucket.Size(cfg.BaseSize)
		if err := writePNG(filepath.Join(dir, name), Resize(img, size)); err != nil {
			return err
		}
		written(bucket.Name, name, size)
	}
	return nil
}

// GenerateDensities renders every icon matching cfg into the resource
// tree, printing progress to out.
func GenerateDensities(cfg config.DensitiesConfig, out io.Writer, logger *logging.Logger) (*BatchResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Discard()
	}

	files, err := Match(cfg.SourceDir, cfg.Pattern)
	if err != nil {
		return nil, err
	}
	result := &BatchResult{Matched: files}
	if len(files) == 0 {
		_, _ = fmt.Fprintf(out, "No %s files found in %s\n", cfg.Pattern, cfg.SourceDir)
		return result, nil
	}

	_, _ = fmt.Fprintf(out, "Generating densities for %d icons with base size %ddp...\n", len(files), cfg.BaseSize)
	_, _ = fmt.Fprintf(out, "Source: %s\n", cfg.SourceDir)
	_, _ = fmt.Fprintf(out, "Destination Resources: %s\n", cfg.ResDir)

	for _, path := range files {
		fileName := filepath.Base(path)
		_, _ = fmt.Fprintf(out, "Processing %s...\n", fileName)

		err := GenerateDensityFile(path, cfg, func(bucket, name string, size int) {
			_, _ = fmt.Fprintf(out, "  -> %s/%s (%dx%d)\n", bucket, name, size, size)
		})
		if err != nil {
			logger.Warn("Skipping icon", slog.String("file", path), slog.Any("error", err))
			_, _ = fmt.Fprintf(out, "  Error processing %s: %v\n", fileName, err)
			result.Failed = append(result.Failed, Failure{Path: path, Err: err})
			continue
		}
		result.Processed = append(result.Processed, path)
	}

	_, _ = fmt.Fprintln(out, "\nDensity generation complete.")
	return result, nil
}
