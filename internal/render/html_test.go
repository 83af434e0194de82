package render

import (
	"strings"
	"testing"

	"github.com/gerunddev/notekeep/internal/markdown"
)

func TestHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input renders placeholder",
			input:    "",
			expected: "<p class=\"placeholder\">Start writing to see the preview...</p>\n",
		},
		{
			name:     "headings",
			input:    "# A\n## B\n### C",
			expected: "<h1>A</h1>\n<h2>B</h2>\n<h3>C</h3>\n",
		},
		{
			name:     "code block with language",
			input:    "```js\nif (a < b) {}\n```",
			expected: "<div class=\"code-block\"><div class=\"code-language\">js</div><pre><code>if (a &lt; b) {}</code></pre></div>\n",
		},
		{
			name:     "code block without language",
			input:    "```\n**x**\n```",
			expected: "<div class=\"code-block\"><pre><code>**x**</code></pre></div>\n",
		},
		{
			name:     "list with inline markup",
			input:    "- **a**\n- `b`",
			expected: "<ul>\n<li><strong>a</strong></li>\n<li><code>b</code></li>\n</ul>\n",
		},
		{
			name:     "paragraph spans",
			input:    "**bold** and *italic* and `code`",
			expected: "<p><strong>bold</strong> and <em>italic</em> and <code>code</code></p>\n",
		},
		{
			name:     "markup in text is escaped",
			input:    "<script>alert(1)</script> *<b>*",
			expected: "<p>&lt;script&gt;alert(1)&lt;/script&gt; <em>&lt;b&gt;</em></p>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := HTML(markdown.Parse(tt.input))
			if actual != tt.expected {
				t.Errorf("HTML(%q)\n got: %q\nwant: %q", tt.input, actual, tt.expected)
			}
		})
	}
}

func TestHTMLNeverEmitsRawTags(t *testing.T) {
	out := HTML(markdown.Parse("# <img src=x onerror=y>\n- <i>\n```\n</code>\n```"))
	for _, raw := range []string{"<img", "<i>", "</code>\n"} {
		if strings.Contains(out, raw) {
			t.Errorf("output contains unescaped %q:\n%s", raw, out)
		}
	}
}

func TestHTMLNestedSpans(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**see `cfg.json`**", "<p><strong>see <code>cfg.json</code></strong></p>\n"},
		{"*a **b** c*", "<p><em>a <strong>b</strong> c</em></p>\n"},
		{"`a*b*c`", "<p><code>a<em>b</em>c</code></p>\n"},
		{"***text***", "<p><strong><em>text</em></strong></p>\n"},
		{"**a *b** c*", "<p><strong>a <em>b</em></strong><em> c</em></p>\n"},
		{"**`<tag>`**", "<p><strong><code>&lt;tag&gt;</code></strong></p>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual := HTML(markdown.Parse(tt.input))
			if actual != tt.expected {
				t.Errorf("HTML(%q)\n got: %q\nwant: %q", tt.input, actual, tt.expected)
			}
		})
	}
}
