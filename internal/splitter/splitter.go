package splitter

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pursue-app/pursue-tools/internal/errors"
	"github.com/pursue-app/pursue-tools/internal/logging"
)

// Options configures a Splitter.
type Options struct {
	Mode Mode

	// DryRun plans every file without creating directories or writing.
	DryRun bool

	// Reporter receives progress. Nil discards it.
	Reporter Reporter

	// Logger receives diagnostics. Nil discards them.
	Logger *logging.Logger
}

// Splitter writes one file per chunk of a markdown document.
type Splitter struct {
	mode     Mode
	dryRun   bool
	reporter Reporter
	logger   *logging.Logger
}

// OutputFile describes one written (or planned) file.
type OutputFile struct {
	Path    string  `json:"path"`
	Heading Heading `json:"heading"`
	Lines   int     `json:"lines"`
}

// Result summarizes a split.
type Result struct {
	Source string       `json:"source"`
	OutDir string       `json:"out_dir"`
	Files  []OutputFile `json:"files"`
	DryRun bool         `json:"dry_run"`
}

// New creates a Splitter.
func New(opts Options) *Splitter {
	if opts.Reporter == nil {
		opts.Reporter = discardReporter{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &Splitter{
		mode:     opts.Mode,
		dryRun:   opts.DryRun,
		reporter: opts.Reporter,
		logger:   opts.Logger,
	}
}

// Split splits the markdown file at source. An empty outDir asks the mode
// to derive one from the source path.
//
// Input errors (missing source, not a file, no headings) are returned
// before anything is written. Output errors abort the run and leave
// already written files in place. Existing files at a destination are
// overwritten; files from earlier runs that no longer have a heading are
// left alone.
func (s *Splitter) Split(source, outDir string) (*Result, error) {
	abs, doc, err := LoadSource(source)
	if err != nil {
		return nil, err
	}
	log := s.logger.WithFile(abs)

	dir, err := s.resolveOutDir(abs, outDir)
	if err != nil {
		return nil, err
	}

	headings := s.mode.Scan(doc)
	log.Debug("Scanned headings",
		slog.String("marker", s.mode.Marker()),
		slog.Int("headings", len(headings)),
		slog.Int("lines", doc.LineCount()))
	if len(headings) == 0 {
		return nil, errors.Input("No %s %ss found.", s.mode.Marker(), s.mode.Name)
	}
	if n := countLevel(Outline(doc), s.mode.Depth); n != len(headings) {
		log.Debug("CommonMark heading count differs from line scan",
			slog.Int("commonmark", n),
			slog.Int("scanned", len(headings)))
	}

	if !s.dryRun {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Output(err, "failed to create output directory %s", dir)
		}
	}

	result := &Result{Source: abs, OutDir: dir, DryRun: s.dryRun}
	for i, chunk := range Extract(doc, headings) {
		path := filepath.Join(dir, s.mode.FileName(i+1, chunk.Heading))
		if !s.dryRun {
			if err := os.WriteFile(path, []byte(chunk.Text), 0644); err != nil {
				return result, errors.Output(err, "failed to write %s", path)
			}
		}
		log.Debug("Chunk", slog.String("path", path), slog.Int("start", chunk.Start), slog.Int("end", chunk.End))

		result.Files = append(result.Files, OutputFile{Path: path, Heading: chunk.Heading, Lines: chunk.LineCount()})
		s.reporter.ChunkWritten(path, chunk.LineCount())
	}
	s.reporter.Finished(len(result.Files), dir)

	return result, nil
}

func (s *Splitter) resolveOutDir(source, outDir string) (string, error) {
	if outDir == "" {
		if s.mode.OutputDir == nil {
			return "", errors.Configuration("an output directory is required for %s splitting", s.mode.Name)
		}
		return s.mode.OutputDir(source), nil
	}
	abs, err := filepath.Abs(outDir)
	if err != nil {
		return "", errors.InputWithCause(err, "Cannot resolve output directory: %s", outDir)
	}
	return abs, nil
}
