package render

import (
	"html"
	"strings"

	"github.com/gerunddev/notekeep/internal/markdown"
)

// HTML renders blocks as an HTML fragment. Span text is always escaped, so
// markup typed into a note shows up literally.
func HTML(blocks []markdown.Block) string {
	var out strings.Builder

	if len(blocks) == 0 {
		out.WriteString(`<p class="placeholder">`)
		out.WriteString(html.EscapeString(Placeholder))
		out.WriteString("</p>\n")
		return out.String()
	}

	for _, b := range blocks {
		switch b := b.(type) {
		case markdown.Heading:
			tag := headingTag(b.Level)
			out.WriteString("<" + tag + ">")
			out.WriteString(html.EscapeString(b.Text))
			out.WriteString("</" + tag + ">\n")

		case markdown.CodeBlock:
			out.WriteString(`<div class="code-block">`)
			if b.Language != "" {
				out.WriteString(`<div class="code-language">`)
				out.WriteString(html.EscapeString(b.Language))
				out.WriteString("</div>")
			}
			out.WriteString("<pre><code>")
			out.WriteString(html.EscapeString(strings.Join(b.Lines, "\n")))
			out.WriteString("</code></pre></div>\n")

		case markdown.List:
			out.WriteString("<ul>\n")
			for i := range b.Items {
				out.WriteString("<li>")
				writeHTMLSpans(&out, b.ItemSpans(i))
				out.WriteString("</li>\n")
			}
			out.WriteString("</ul>\n")

		case markdown.Paragraph:
			out.WriteString("<p>")
			writeHTMLSpans(&out, b.Spans())
			out.WriteString("</p>\n")
		}
	}

	return out.String()
}

func headingTag(level int) string {
	switch level {
	case 1:
		return "h1"
	case 2:
		return "h2"
	default:
		return "h3"
	}
}

func writeHTMLSpans(out *strings.Builder, spans []markdown.Span) {
	for _, s := range spans {
		var tag string
		switch s.Kind {
		case markdown.Bold:
			tag = "strong"
		case markdown.Italic:
			tag = "em"
		case markdown.Code:
			tag = "code"
		default:
			out.WriteString(html.EscapeString(s.Text))
			continue
		}

		out.WriteString("<" + tag + ">")
		writeHTMLSpans(out, s.Children)
		out.WriteString("</" + tag + ">")
	}
}
