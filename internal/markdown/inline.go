package markdown

import "regexp"

// SpanKind identifies how a fragment of a line is displayed.
type SpanKind int

const (
	Plain SpanKind = iota
	Bold
	Italic
	Code
)

func (k SpanKind) String() string {
	switch k {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	default:
		return "plain"
	}
}

// Span is a fragment of a line. Plain spans carry Text and are displayed
// as-is. Bold, Italic and Code spans carry Children, which may nest other
// kinds.
type Span struct {
	Kind     SpanKind
	Text     string
	Children []Span
}

// inlineRules run in this order, each once over the whole line. A later
// rule sees the text inside and around spans made by earlier rules, so
// matches may nest or cross them. `.` does not match newlines, which keeps
// every match line-local.
var inlineRules = []struct {
	kind SpanKind
	re   *regexp.Regexp
}{
	{Bold, regexp.MustCompile(`\*\*(.*?)\*\*`)},
	{Italic, regexp.MustCompile(`\*(.*?)\*`)},
	{Code, regexp.MustCompile("`(.*?)`")},
}

// token is one rune of line text, or an open/close marker left where a
// rule consumed its delimiters.
type token struct {
	text   string
	kind   SpanKind
	closes bool
}

func (t token) marker() bool {
	return t.text == ""
}

// Inline resolves bold, italic and inline code in line. Unpaired
// delimiters are left in the plain text.
func Inline(line string) []Span {
	if line == "" {
		return nil
	}

	toks := make([]token, 0, len(line))
	for _, r := range line {
		toks = append(toks, token{text: string(r)})
	}

	for _, rule := range inlineRules {
		toks = applyRule(toks, rule.kind, rule.re)
	}

	return nest(toks)
}

const (
	keep = iota
	open
	closing
	drop
)

// applyRule matches re against the visible text of toks and swaps each
// match's delimiters for markers. Markers already present stay where they
// are, inside or around the new pair.
func applyRule(toks []token, kind SpanKind, re *regexp.Regexp) []token {
	var visible []byte
	var at []int // byte offset in visible -> token index
	for i, t := range toks {
		if t.marker() {
			continue
		}
		for j := 0; j < len(t.text); j++ {
			at = append(at, i)
		}
		visible = append(visible, t.text...)
	}

	matches := re.FindAllSubmatchIndex(visible, -1)
	if matches == nil {
		return toks
	}

	edits := make([]int, len(toks))
	for _, m := range matches {
		markDelimiter(edits, at, m[0], m[2], open)
		markDelimiter(edits, at, m[3], m[1], closing)
	}

	out := make([]token, 0, len(toks))
	for i, t := range toks {
		switch edits[i] {
		case open:
			out = append(out, token{kind: kind})
		case closing:
			out = append(out, token{kind: kind, closes: true})
		case drop:
		default:
			out = append(out, t)
		}
	}
	return out
}

// markDelimiter turns the first token of the delimiter at [from, to) into
// a marker and drops the rest.
func markDelimiter(edits, at []int, from, to, mark int) {
	edits[at[from]] = mark
	for off := from + 1; off < to; off++ {
		edits[at[off]] = drop
	}
}

// frame is an open span while nest walks the token stream.
type frame struct {
	kind     SpanKind
	children []Span
}

func (f *frame) appendText(s string) {
	if n := len(f.children); n > 0 && f.children[n-1].Kind == Plain {
		f.children[n-1].Text += s
		return
	}
	f.children = append(f.children, Span{Kind: Plain, Text: s})
}

// nest turns markers into a span tree. Pairs that cross are split the way
// an HTML parser treats misnested formatting tags: closing an outer span
// closes the inner ones too, and they reopen at the next text or marker.
// A reopened span that never receives content is not emitted.
func nest(toks []token) []Span {
	stack := []*frame{{kind: Plain}}
	var pending []SpanKind

	pop := func() {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		parent := stack[len(stack)-1]
		parent.children = append(parent.children, Span{Kind: top.kind, Children: top.children})
	}

	reopen := func() {
		for _, k := range pending {
			stack = append(stack, &frame{kind: k})
		}
		pending = nil
	}

	for _, t := range toks {
		switch {
		case !t.marker():
			reopen()
			stack[len(stack)-1].appendText(t.text)

		case !t.closes:
			reopen()
			stack = append(stack, &frame{kind: t.kind})

		default:
			if i := lastKind(pending, t.kind); i >= 0 {
				pending = append(pending[:i], pending[i+1:]...)
				continue
			}

			depth := -1
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].kind == t.kind {
					depth = i
					break
				}
			}
			if depth < 0 {
				continue
			}

			var reopened []SpanKind
			for _, f := range stack[depth+1:] {
				reopened = append(reopened, f.kind)
			}
			for len(stack) > depth {
				pop()
			}
			pending = append(reopened, pending...)
		}
	}

	for len(stack) > 1 {
		pop()
	}
	return stack[0].children
}

func lastKind(kinds []SpanKind, k SpanKind) int {
	for i := len(kinds) - 1; i >= 0; i-- {
		if kinds[i] == k {
			return i
		}
	}
	return -1
}
