package markdown

import "strings"

const fence = "```"

// headingPrefixes is ordered longest first so "### " wins over "# ".
var headingPrefixes = []struct {
	prefix string
	level  int
}{
	{"### ", 3},
	{"## ", 2},
	{"# ", 1},
}

// Parse splits text into lines and scans them once, front to back.
// Empty input yields a nil slice.
func Parse(text string) []Block {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	var blocks []Block

	i := 0
	for i < len(lines) {
		line := lines[i]

		if h, ok := parseHeading(line); ok {
			blocks = append(blocks, h)
			i++
			continue
		}

		switch {
		case strings.HasPrefix(line, fence):
			code, next := parseCode(lines, i)
			blocks = append(blocks, code)
			i = next

		case strings.HasPrefix(line, "- "):
			list, next := parseList(lines, i)
			blocks = append(blocks, list)
			i = next

		case strings.TrimSpace(line) == "":
			i++

		default:
			blocks = append(blocks, Paragraph{Text: line})
			i++
		}
	}

	return blocks
}

func parseHeading(line string) (Heading, bool) {
	for _, h := range headingPrefixes {
		if strings.HasPrefix(line, h.prefix) {
			return Heading{Level: h.level, Text: line[len(h.prefix):]}, true
		}
	}
	return Heading{}, false
}

// parseCode consumes the opening fence at start, the body and the closing
// fence if there is one. A missing closing fence runs to end of input.
func parseCode(lines []string, start int) (CodeBlock, int) {
	code := CodeBlock{Language: lines[start][len(fence):]}

	i := start + 1
	for i < len(lines) && !strings.HasPrefix(lines[i], fence) {
		code.Lines = append(code.Lines, lines[i])
		i++
	}
	if i < len(lines) {
		// closing fence
		i++
	}

	return code, i
}

func parseList(lines []string, start int) (List, int) {
	var list List

	i := start
	for i < len(lines) && strings.HasPrefix(lines[i], "- ") {
		list.Items = append(list.Items, lines[i][2:])
		i++
	}

	return list, i
}
