// Package markdown turns note text into a flat sequence of typed blocks and
// resolves inline emphasis inside paragraph and list item lines.
//
// The dialect is deliberately small: three heading levels, fenced code,
// dash lists and paragraphs. Malformed input never fails; it degrades to
// literal text.
package markdown

// Block is one structural unit of a parsed note.
type Block interface {
	block()
}

// Heading is a `#`, `##` or `###` line.
type Heading struct {
	Level int
	Text  string
}

// CodeBlock is a fenced block. Lines are kept verbatim.
type CodeBlock struct {
	Language string
	Lines    []string
}

// List is a contiguous run of `- ` lines.
type List struct {
	Items []string
}

// Paragraph is any other non-blank line.
type Paragraph struct {
	Text string
}

func (Heading) block()   {}
func (CodeBlock) block() {}
func (List) block()      {}
func (Paragraph) block() {}

// Spans resolves the paragraph's inline markup.
func (p Paragraph) Spans() []Span {
	return Inline(p.Text)
}

// ItemSpans resolves the inline markup of item i.
func (l List) ItemSpans(i int) []Span {
	return Inline(l.Items[i])
}
