package splitter

import "strings"

// Heading is a line that starts a chunk.
type Heading struct {
	Line int    // 1-based line number
	Text string // text after the marker, trimmed
}

// Scan returns every heading at the mode's depth in document order.
//
// A line matches only when it starts with exactly Depth '#' characters, a
// single space and at least one more character. Deeper and shallower
// headings are ignored.
func (m Mode) Scan(doc *Document) []Heading {
	var headings []Heading
	for i, line := range doc.lines {
		match := m.heading.FindStringSubmatch(trimEOL(line))
		if match == nil {
			continue
		}
		headings = append(headings, Heading{
			Line: i + 1,
			Text: strings.TrimSpace(match[1]),
		})
	}
	return headings
}
