package splitter

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Mode parameterizes the split: which heading depth starts a chunk, how
// heading numbers are stripped from slugs, and where files go.
type Mode struct {
	// Name is the singular noun for a chunk ("chapter", "section"). It is
	// also the fallback slug.
	Name string

	// Depth is the number of '#' characters in a splitting heading.
	Depth int

	// Prefixes are stripped from the heading text, in order, before slugging.
	Prefixes []*regexp.Regexp

	// Numbered names files after the heading's section number when it has one.
	Numbered bool

	// OutputDir derives the output directory from the absolute source path.
	// Nil means the caller must supply one.
	OutputDir func(source string) string

	heading *regexp.Regexp
}

var (
	// Chapters splits on "## " headings into {out_dir}/{NN}-{slug}.md.
	Chapters = NewMode("chapter", 2, false, nil,
		regexp.MustCompile(`^\d+\.\s*`),
	)

	// Sections splits on "### " headings into <parent>/<stem>/{number}-{slug}.md.
	Sections = NewMode("section", 3, true, SiblingDir,
		regexp.MustCompile(`^\d+\.\d+\.?\s*`),
		regexp.MustCompile(`^\d+\.?\s*`),
	)
)

// NewMode builds a Mode and compiles its heading pattern.
func NewMode(name string, depth int, numbered bool, outputDir func(string) string, prefixes ...*regexp.Regexp) Mode {
	return Mode{
		Name:      name,
		Depth:     depth,
		Prefixes:  prefixes,
		Numbered:  numbered,
		OutputDir: outputDir,
		heading:   regexp.MustCompile(fmt.Sprintf(`^%s (.+)$`, regexp.QuoteMeta(strings.Repeat("#", depth)))),
	}
}

// ModeByName returns the mode for "chapters" or "sections". The singular
// form is accepted too.
func ModeByName(name string) (Mode, bool) {
	switch strings.TrimSuffix(strings.ToLower(name), "s") {
	case Chapters.Name:
		return Chapters, true
	case Sections.Name:
		return Sections, true
	}
	return Mode{}, false
}

// Marker returns the heading marker, e.g. "##".
func (m Mode) Marker() string {
	return strings.Repeat("#", m.Depth)
}

// FileName returns the output file name for the chunk at the 1-based index.
func (m Mode) FileName(index int, h Heading) string {
	slug := m.Slug(h.Text)
	if m.Numbered {
		if number, ok := SectionNumber(h.Text); ok {
			return number + "-" + slug + ".md"
		}
	}
	return fmt.Sprintf("%02d-%s.md", index, slug)
}

// SiblingDir returns <parent>/<stem> for a source path, so
// specs/ui/04-screens.md splits into specs/ui/04-screens/.
func SiblingDir(source string) string {
	return filepath.Join(filepath.Dir(source), stem(filepath.Base(source)))
}

// stem strips the last extension. Dot files without another dot keep
// their name, as do names ending in a dot.
func stem(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return name
	}
	return name[:i]
}
