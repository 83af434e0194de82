// Package render draws parsed markdown blocks for the terminal preview and
// as HTML for export.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gerunddev/notekeep/internal/markdown"
	"github.com/gerunddev/notekeep/internal/styles"
)

// Placeholder is shown instead of an empty preview.
const Placeholder = "Start writing to see the preview..."

// DefaultWidth is used when a caller passes a non-positive width.
const DefaultWidth = 80

// Terminal renders blocks with lipgloss styles.
type Terminal struct {
	width int
}

// NewTerminal creates a terminal renderer wrapping text at width columns.
func NewTerminal(width int) *Terminal {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Terminal{width: width}
}

// Width returns the wrap width.
func (t *Terminal) Width() int {
	return t.width
}

// Render draws blocks separated by blank lines.
func (t *Terminal) Render(blocks []markdown.Block) string {
	if len(blocks) == 0 {
		return styles.PlaceholderStyle.Render(Placeholder)
	}

	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, t.renderBlock(b))
	}

	return strings.Join(parts, "\n\n")
}

func (t *Terminal) renderBlock(b markdown.Block) string {
	switch b := b.(type) {
	case markdown.Heading:
		return headingStyle(b.Level).Width(t.width).Render(b.Text)

	case markdown.CodeBlock:
		body := styles.CodeBlockStyle.Render(strings.Join(b.Lines, "\n"))
		if b.Language == "" {
			return body
		}
		return lipgloss.JoinVertical(lipgloss.Left, styles.CodeLabelStyle.Render(b.Language), body)

	case markdown.List:
		items := make([]string, 0, len(b.Items))
		for i := range b.Items {
			bullet := styles.BulletStyle.Render("• ")
			text := lipgloss.NewStyle().
				Width(t.width - lipgloss.Width(bullet)).
				Render(renderSpans(b.ItemSpans(i)))
			items = append(items, lipgloss.JoinHorizontal(lipgloss.Top, bullet, text))
		}
		return strings.Join(items, "\n")

	case markdown.Paragraph:
		return styles.ParagraphStyle.Width(t.width).Render(renderSpans(b.Spans()))
	}

	return ""
}

func headingStyle(level int) lipgloss.Style {
	switch level {
	case 1:
		return styles.H1Style
	case 2:
		return styles.H2Style
	default:
		return styles.H3Style
	}
}

func renderSpans(spans []markdown.Span) string {
	var out strings.Builder
	writeSpans(&out, spans, lipgloss.NewStyle(), false)
	return out.String()
}

// writeSpans renders nested spans with the styles of every enclosing span
// combined, so inner text keeps the outer bold or italic.
func writeSpans(out *strings.Builder, spans []markdown.Span, style lipgloss.Style, styled bool) {
	for _, s := range spans {
		switch s.Kind {
		case markdown.Bold:
			writeSpans(out, s.Children, styles.BoldStyle.Inherit(style), true)
		case markdown.Italic:
			writeSpans(out, s.Children, styles.ItalicStyle.Inherit(style), true)
		case markdown.Code:
			writeSpans(out, s.Children, styles.InlineCodeStyle.Inherit(style), true)
		default:
			if styled {
				out.WriteString(style.Render(s.Text))
			} else {
				out.WriteString(s.Text)
			}
		}
	}
}

// Preview parses text and renders it for a terminal of the given width.
func Preview(text string, width int) string {
	return NewTerminal(width).Render(markdown.Parse(text))
}
