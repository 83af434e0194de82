// Package diff shows what changed in a note since it was opened.
package diff

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Unified returns a unified diff from before to after, labelled with name.
// It returns an empty string when the texts are equal.
func Unified(name, before, after string) string {
	if before == after {
		return ""
	}

	from := name + " (opened)"
	to := name + " (current)"

	edits := myers.ComputeEdits(span.URIFromPath(name), before, after)
	return fmt.Sprint(gotextdiff.ToUnified(from, to, before, edits))
}

// Render wraps the unified diff in a diff code fence and renders it with
// glamour at the given wrap width. It falls back to the plain fenced diff
// if glamour fails.
func Render(name, before, after string, width int) string {
	unified := Unified(name, before, after)
	if unified == "" {
		return ""
	}

	diffMarkdown := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return diffMarkdown
	}

	rendered, err := renderer.Render(diffMarkdown)
	if err != nil {
		return diffMarkdown
	}

	return rendered
}
