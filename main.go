package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/notekeep/internal/commands"
	"github.com/gerunddev/notekeep/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		commands.Open()
		return
	}

	command := os.Args[1]

	switch command {
	case "open", "notes":
		commands.Open()
	case "board", "kanban":
		commands.Board()
	case "preview":
		commands.Preview(os.Args[2:])
	case "html":
		commands.HTML(os.Args[2:])
	case "export":
		commands.Export(os.Args[2:])
	case "tags":
		commands.Tags()
	case "version", "-v", "--version":
		fmt.Printf("notekeep v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`notekeep - Markdown notes with folders, tags and a task board

Usage:
  notekeep [command] [options]

Commands:
  open        Browse and edit notes (default)
  board       Open the kanban task board
  preview     Render a markdown file in the terminal (--width N)
  html        Render a markdown file as HTML
  export      Print notes with YAML front matter (optionally by title)
  tags        List tags in use
  version     Show version information
  help        Show this help message

Examples:
  notekeep
  notekeep board
  notekeep preview notes/todo.md --width 100
  cat notes/todo.md | notekeep html
  notekeep export "Welcome to Notes"

Notes are kept in memory for the session. Set notes_dir in the config file
to import a folder of markdown files at startup.

Configuration:
  Config file: %s
  Log file:    %s

For more information, visit: https://github.com/gerunddev/notekeep
`, config.ConfigPath(), config.LogFilePath())
	fmt.Print(usage)
}
