package diff

import (
	"strings"
	"testing"
)

func TestUnified(t *testing.T) {
	tests := []struct {
		name     string
		before   string
		after    string
		contains []string
		empty    bool
	}{
		{
			name:   "unchanged",
			before: "# Title\nbody\n",
			after:  "# Title\nbody\n",
			empty:  true,
		},
		{
			name:     "line changed",
			before:   "# Title\nbody\n",
			after:    "# Title\nnew body\n",
			contains: []string{"--- note.md (opened)", "+++ note.md (current)", "-body", "+new body"},
		},
		{
			name:     "line added",
			before:   "- a\n",
			after:    "- a\n- b\n",
			contains: []string{"+- b"},
		},
		{
			name:     "from empty note",
			before:   "",
			after:    "hello\n",
			contains: []string{"+hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Unified("note.md", tt.before, tt.after)
			if tt.empty {
				if out != "" {
					t.Errorf("expected empty diff, got %q", out)
				}
				return
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("diff missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestRender(t *testing.T) {
	if out := Render("note.md", "same", "same", 80); out != "" {
		t.Errorf("expected empty render for unchanged note, got %q", out)
	}

	out := Render("note.md", "old line\n", "new line\n", 80)
	if !strings.Contains(out, "new line") || !strings.Contains(out, "old line") {
		t.Errorf("rendered diff missing content:\n%s", out)
	}
}
