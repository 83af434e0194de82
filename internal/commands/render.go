package commands

import (
	"fmt"

	"github.com/gerunddev/notekeep/internal/config"
	"github.com/gerunddev/notekeep/internal/markdown"
	"github.com/gerunddev/notekeep/internal/render"
	"github.com/gerunddev/notekeep/internal/styles"
)

var errorStyle = styles.ErrorStyle

// Preview renders a markdown file (or stdin) to the terminal
func Preview(args []string) {
	cfg, err := config.Load()
	if err != nil {
		fail("Error loading config", err)
	}

	width, err := parseWidth(args, cfg.PreviewWidth)
	if err != nil {
		fail("Error", err)
	}

	text, err := readSource(args)
	if err != nil {
		fail("Error", err)
	}

	fmt.Println(render.Preview(text, width))
}

// HTML renders a markdown file (or stdin) as an HTML fragment
func HTML(args []string) {
	text, err := readSource(args)
	if err != nil {
		fail("Error", err)
	}

	fmt.Print(render.HTML(markdown.Parse(text)))
}
