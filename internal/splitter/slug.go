package splitter

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	nonSlugRun    = regexp.MustCompile(`[^a-z0-9]+`)
	hyphenRun     = regexp.MustCompile(`-+`)
	sectionNumber = regexp.MustCompile(`^(\d+(?:\.\d+)*)\.?\s+`)
)

// Slug derives a filesystem-safe name from heading text. The result is
// never empty: text with nothing sluggable yields the mode name.
//
//	Chapters.Slug("3. Getting Started") == "getting-started"
//	Sections.Slug("4.2.3. Deep Dive")   == "deep-dive"
func (m Mode) Slug(heading string) string {
	s := heading
	for _, prefix := range m.Prefixes {
		s = strings.TrimSpace(prefix.ReplaceAllString(s, ""))
	}
	// cases.Caser keeps state, so one per call.
	s = cases.Lower(language.Und).String(s)
	s = nonSlugRun.ReplaceAllString(s, "-")
	s = strings.Trim(hyphenRun.ReplaceAllString(s, "-"), "-")
	if s == "" {
		return m.Name
	}
	return s
}

// SectionNumber returns the leading dotted number of a heading, such as
// "4.1" for "4.1 Home Screen" or "4.2.3" for "4.2.3. Deep Dive". The
// number must be followed by whitespace.
func SectionNumber(heading string) (string, bool) {
	match := sectionNumber.FindStringSubmatch(heading)
	if match == nil {
		return "", false
	}
	return match[1], true
}
