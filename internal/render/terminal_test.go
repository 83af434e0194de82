package render

import (
	"strings"
	"testing"

	"github.com/gerunddev/notekeep/internal/markdown"
)

func TestTerminalPlaceholder(t *testing.T) {
	out := Preview("", 40)
	if !strings.Contains(out, Placeholder) {
		t.Errorf("expected placeholder, got %q", out)
	}

	out = Preview("\n\n  \n", 40)
	if !strings.Contains(out, Placeholder) {
		t.Errorf("expected placeholder for blank-only text, got %q", out)
	}
}

func TestTerminalRender(t *testing.T) {
	text := "# Title\n\nSome **bold** words\n\n- first\n- second\n\n```go\nfmt.Println(1)\n```"
	out := Preview(text, 60)

	for _, want := range []string{"Title", "bold", "words", "• ", "first", "second", "go", "fmt.Println(1)"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "**") {
		t.Errorf("bold delimiters should be consumed:\n%s", out)
	}
	if strings.Contains(out, "```") {
		t.Errorf("fence markers should be consumed:\n%s", out)
	}
}

func TestTerminalCodeBlockKeepsMarkup(t *testing.T) {
	out := NewTerminal(40).Render([]markdown.Block{
		markdown.CodeBlock{Lines: []string{"**not bold**"}},
	})
	if !strings.Contains(out, "**not bold**") {
		t.Errorf("code block should be verbatim, got %q", out)
	}
}

func TestNewTerminalDefaultWidth(t *testing.T) {
	if w := NewTerminal(0).Width(); w != DefaultWidth {
		t.Errorf("Width() = %d, want %d", w, DefaultWidth)
	}
	if w := NewTerminal(-5).Width(); w != DefaultWidth {
		t.Errorf("Width() = %d, want %d", w, DefaultWidth)
	}
	if w := NewTerminal(33).Width(); w != 33 {
		t.Errorf("Width() = %d, want 33", w)
	}
}

func TestTerminalNestedSpans(t *testing.T) {
	out := Preview("**see `cfg.json`** and *a **b** c*", 60)

	for _, want := range []string{"see", "cfg.json", "a", "b", "c"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
	for _, delim := range []string{"*", "`"} {
		if strings.Contains(out, delim) {
			t.Errorf("delimiter %q should be consumed:\n%s", delim, out)
		}
	}
}
