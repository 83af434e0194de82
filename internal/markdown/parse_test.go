package markdown

import (
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Block
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "only blank lines",
			input:    "\n   \n\t\n",
			expected: nil,
		},
		{
			name:  "heading levels",
			input: "# One\n## Two\n### Three",
			expected: []Block{
				Heading{Level: 1, Text: "One"},
				Heading{Level: 2, Text: "Two"},
				Heading{Level: 3, Text: "Three"},
			},
		},
		{
			name:  "four hashes is a paragraph",
			input: "#### Four",
			expected: []Block{
				Paragraph{Text: "#### Four"},
			},
		},
		{
			name:  "hash without space is a paragraph",
			input: "#tag",
			expected: []Block{
				Paragraph{Text: "#tag"},
			},
		},
		{
			name:  "fenced code with language",
			input: "```js\nconsole.log(1)\n```",
			expected: []Block{
				CodeBlock{Language: "js", Lines: []string{"console.log(1)"}},
			},
		},
		{
			name:  "unterminated fence",
			input: "```py\nx=1",
			expected: []Block{
				CodeBlock{Language: "py", Lines: []string{"x=1"}},
			},
		},
		{
			name:  "fence without language keeps markup verbatim",
			input: "```\n# not a heading\n- not a list\n\n**raw**\n```\nafter",
			expected: []Block{
				CodeBlock{Lines: []string{"# not a heading", "- not a list", "", "**raw**"}},
				Paragraph{Text: "after"},
			},
		},
		{
			name:  "closing fence content is discarded",
			input: "```go\nx := 1\n```trailing\ntext",
			expected: []Block{
				CodeBlock{Language: "go", Lines: []string{"x := 1"}},
				Paragraph{Text: "text"},
			},
		},
		{
			name:     "empty fence at end of input",
			input:    "```",
			expected: []Block{CodeBlock{}},
		},
		{
			name:  "consecutive list lines form one block",
			input: "- one\n- two\n- three",
			expected: []Block{
				List{Items: []string{"one", "two", "three"}},
			},
		},
		{
			name:  "blank line splits lists",
			input: "- one\n\n- two",
			expected: []Block{
				List{Items: []string{"one"}},
				List{Items: []string{"two"}},
			},
		},
		{
			name:  "list followed by paragraph",
			input: "- one\n- two\nplain",
			expected: []Block{
				List{Items: []string{"one", "two"}},
				Paragraph{Text: "plain"},
			},
		},
		{
			name:  "dash without space is a paragraph",
			input: "-nope",
			expected: []Block{
				Paragraph{Text: "-nope"},
			},
		},
		{
			name:  "indented dash is a paragraph",
			input: "  - nested",
			expected: []Block{
				Paragraph{Text: "  - nested"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := Parse(tt.input)
			if !reflect.DeepEqual(actual, tt.expected) {
				t.Errorf("Parse(%q)\n got: %#v\nwant: %#v", tt.input, actual, tt.expected)
			}
		})
	}
}

func TestParseWelcomeNote(t *testing.T) {
	content, err := os.ReadFile("testdata/welcome.md")
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}

	blocks := Parse(string(content))

	expected := []Block{
		Heading{Level: 1, Text: "Welcome to Your Note Taking App"},
		Paragraph{Text: "This is your first note! You can:"},
		List{Items: []string{
			"Write in **markdown**",
			"Organize with folders",
			"Add #tags",
			"Search everything",
		}},
		CodeBlock{Language: "javascript", Lines: []string{
			"// Even add code blocks!",
			`console.log("Hello, world!");`,
		}},
		Paragraph{Text: "Happy note taking! 📝"},
	}

	if !reflect.DeepEqual(blocks, expected) {
		t.Errorf("Parse mismatch\n got: %#v\nwant: %#v", blocks, expected)
	}
}

func TestParseBlockCountBoundedByLines(t *testing.T) {
	inputs := []string{
		"a\nb\nc",
		"# h\n\n- x\n- y\n\n```\ncode\n```\n",
		"\n\n\n",
		"```\n```\n```\n```",
		"- a\nb\n- c\nd",
	}

	for _, input := range inputs {
		lines := len(strings.Split(input, "\n"))
		if got := len(Parse(input)); got > lines {
			t.Errorf("Parse(%q) produced %d blocks from %d lines", input, got, lines)
		}
	}
}

func TestParseIdempotent(t *testing.T) {
	input := "# Title\n\nSome **bold** text\n- a\n- b\n```sh\necho hi\n"

	first := Parse(input)
	second := Parse(input)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Parse is not idempotent:\n%#v\n%#v", first, second)
	}
}

func TestListItemSpans(t *testing.T) {
	blocks := Parse("- Write in **markdown**")
	list, ok := blocks[0].(List)
	if !ok {
		t.Fatalf("expected List, got %T", blocks[0])
	}

	spans := list.ItemSpans(0)
	expected := []Span{
		text("Write in "),
		bold(text("markdown")),
	}
	if !reflect.DeepEqual(spans, expected) {
		t.Errorf("ItemSpans(0) = %#v, want %#v", spans, expected)
	}
}
