package icons

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"

	"github.com/disintegration/imaging"

	"github.com/pursue-app/pursue-tools/internal/config"
	"github.com/pursue-app/pursue-tools/internal/errors"
	"github.com/pursue-app/pursue-tools/internal/logging"
)

// FixBorder returns a copy of src, at the same size, whose outer border
// pixels are fully transparent and whose interior is unchanged.
func FixBorder(src image.Image, border int) (*image.NRGBA, error) {
	img := imaging.Clone(src)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w < 2*border || h < 2*border {
		return nil, errors.Processing("image %dx%d is too small for a %dpx border", w, h, border)
	}

	interior := imaging.Crop(img, image.Rect(border, border, w-border, h-border))
	canvas := imaging.New(w, h, color.NRGBA{})
	return imaging.Paste(canvas, interior, image.Pt(border, border)), nil
}

// FixBorderFile rewrites the image at path as a PNG with its border cleared.
func FixBorderFile(path string, border int) error {
	src, err := decode(path)
	if err != nil {
		return err
	}
	fixed, err := FixBorder(src, border)
	if err != nil {
		return err
	}
	return writePNG(path, fixed)
}

// FixBorders clears the border of every icon matching cfg in place,
// printing progress to out.
func FixBorders(cfg config.IconsConfig, out io.Writer, logger *logging.Logger) (*BatchResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Discard()
	}

	files, err := Match(cfg.Dir, cfg.Pattern)
	if err != nil {
		return nil, err
	}
	result := &BatchResult{Matched: files}
	if len(files) == 0 {
		_, _ = fmt.Fprintf(out, "No %s files found in %s\n", cfg.Pattern, cfg.Dir)
		return result, nil
	}

	_, _ = fmt.Fprintf(out, "Fixing %dpx borders for %d icons...\n", cfg.Border, len(files))

	for _, path := range files {
		_, _ = fmt.Fprintf(out, "Fixing border for %s...\n", path)

		if err := FixBorderFile(path, cfg.Border); err != nil {
			logger.Warn("Skipping icon", slog.String("file", path), slog.Any("error", err))
			_, _ = fmt.Fprintf(out, "  Error fixing %s: %v\n", path, err)
			result.Failed = append(result.Failed, Failure{Path: path, Err: err})
			continue
		}

		_, _ = fmt.Fprintf(out, "  Fixed %s\n", path)
		result.Processed = append(result.Processed, path)
	}

	_, _ = fmt.Fprintln(out, "\nBorder fix complete.")
	return result, nil
}
