// Package splitter partitions markdown documents at heading lines and writes
// each part as a standalone file.
//
// A split goes through four steps, each exposed on its own so it can be
// tested in isolation:
//
//	doc := NewDocument(text)        // lines keep their terminators
//	headings := Chapters.Scan(doc)  // "## " lines in document order
//	chunks := Extract(doc, headings) // exact source spans
//	name := Chapters.FileName(i+1, chunks[i].Heading)
//
// Splitter.Split runs the whole pipeline against the filesystem.
package splitter

import (
	"sort"
	"strings"
)

// Document is a text split into lines. Every line keeps its original
// terminator ("\n", "\r\n" or a lone "\r"), so joining the lines yields
// the text unchanged.
type Document struct {
	lines   []string
	offsets []int // byte offset of each line start
}

// NewDocument splits text into lines.
func NewDocument(text string) *Document {
	doc := &Document{}
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
		default:
			continue
		}
		doc.lines = append(doc.lines, text[start:i+1])
		doc.offsets = append(doc.offsets, start)
		start = i + 1
	}
	if start < len(text) {
		doc.lines = append(doc.lines, text[start:])
		doc.offsets = append(doc.offsets, start)
	}
	return doc
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the 1-based line n including its terminator.
func (d *Document) Line(n int) string {
	return d.lines[n-1]
}

// Span returns the exact text of the 1-based half-open line range [start, end).
func (d *Document) Span(start, end int) string {
	return strings.Join(d.lines[start-1:end-1], "")
}

// Text returns the whole document.
func (d *Document) Text() string {
	return strings.Join(d.lines, "")
}

// LineAt returns the 1-based line containing the byte offset.
func (d *Document) LineAt(offset int) int {
	return sort.Search(len(d.offsets), func(i int) bool {
		return d.offsets[i] > offset
	})
}

// trimEOL removes a trailing line terminator.
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
