package splitter

// Chunk is the span of lines from one heading up to the next heading of
// the same depth, or the end of the document.
type Chunk struct {
	Heading Heading
	Start   int    // first line, 1-based
	End     int    // line after the last one
	Text    string // exact source text of [Start, End)
}

// LineCount returns the number of lines in the chunk.
func (c Chunk) LineCount() int {
	return c.End - c.Start
}

// Extract cuts the document at each heading. Lines before the first
// heading belong to no chunk.
func Extract(doc *Document, headings []Heading) []Chunk {
	chunks := make([]Chunk, 0, len(headings))
	for i, h := range headings {
		end := doc.LineCount() + 1
		if i+1 < len(headings) {
			end = headings[i+1].Line
		}
		chunks = append(chunks, Chunk{
			Heading: h,
			Start:   h.Line,
			End:     end,
			Text:    doc.Span(h.Line, end),
		})
	}
	return chunks
}
