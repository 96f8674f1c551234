package splitter

import (
	"fmt"
	"io"
)

// Reporter receives progress while chunks are written.
type Reporter interface {
	// ChunkWritten is called after each file is written (or planned, in a dry run).
	ChunkWritten(path string, lines int)

	// Finished is called once after the last chunk.
	Finished(files int, outDir string)
}

// TextReporter prints one human-readable line per chunk and a summary.
type TextReporter struct {
	w      io.Writer
	dryRun bool
}

// NewTextReporter creates a reporter writing to w. In a dry run the
// per-chunk lines say "Would write" instead of "Wrote".
func NewTextReporter(w io.Writer, dryRun bool) *TextReporter {
	return &TextReporter{w: w, dryRun: dryRun}
}

// ChunkWritten implements Reporter.
func (r *TextReporter) ChunkWritten(path string, lines int) {
	verb := "Wrote"
	if r.dryRun {
		verb = "Would write"
	}
	_, _ = fmt.Fprintf(r.w, "%s %s (%d lines)\n", verb, path, lines)
}

// Finished implements Reporter.
func (r *TextReporter) Finished(files int, outDir string) {
	_, _ = fmt.Fprintf(r.w, "\nDone. %d files in %s\n", files, outDir)
}

type discardReporter struct{}

func (discardReporter) ChunkWritten(string, int) {}
func (discardReporter) Finished(int, string)     {}
