package splitter

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// OutlineEntry is a heading as a CommonMark parser sees it.
type OutlineEntry struct {
	Level int    `json:"level"`
	Line  int    `json:"line"` // 0 when the heading has no text
	Text  string `json:"text"`
}

// Outline parses the document with goldmark and lists its headings in
// document order, including setext headings and headings nested in
// block quotes or lists. Lines inside fenced code blocks are not headings.
func Outline(doc *Document) []OutlineEntry {
	src := []byte(doc.Text())
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var entries []OutlineEntry
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		entry := OutlineEntry{Level: heading.Level}
		lines := heading.Lines()
		if lines.Len() > 0 {
			entry.Line = doc.LineAt(lines.At(0).Start)
			var buf bytes.Buffer
			for i := 0; i < lines.Len(); i++ {
				segment := lines.At(i)
				buf.Write(segment.Value(src))
			}
			entry.Text = strings.TrimSpace(buf.String())
		}
		entries = append(entries, entry)
		return ast.WalkSkipChildren, nil
	})

	return entries
}

// countLevel returns how many outline entries sit at level.
func countLevel(entries []OutlineEntry, level int) int {
	n := 0
	for _, e := range entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

// WriteOutline prints the outline as "<line>: <marker> <text>" rows.
func WriteOutline(w io.Writer, entries []OutlineEntry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%d: %s %s\n", e.Line, strings.Repeat("#", e.Level), e.Text); err != nil {
			return err
		}
	}
	return nil
}
