package styles

import "github.com/charmbracelet/lipgloss"

// Monokai Pro color palette
const (
	// Base colors
	Background = "#2D2A2E"
	Foreground = "#FCFCFA"

	// Accent colors
	Red     = "#FF6188" // Errors, danger, inline code
	Orange  = "#FC9867" // Warnings, h3
	Yellow  = "#FFD866" // Highlights, h2
	Green   = "#A9DC76" // Success, code blocks
	Cyan    = "#78DCE8" // Info, tags
	Blue    = "#AB9DF2" // Folders
	Magenta = "#FF6188" // Titles, h1

	// UI colors
	Comment = "#727072" // Dim text, help, placeholders
	Border  = "#5B595C" // Borders, separators
	Surface = "#403E41" // Code backgrounds
)

// Common styles
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	DimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Magenta))
	HelpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	TagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Cyan))
	FolderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(Blue))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(Magenta))

	SelectedTagStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(Background)).
				Background(lipgloss.Color(Green))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Background)).
			Background(lipgloss.Color(Yellow))

	NormalTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Foreground))

	PaneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Border)).
			Padding(0, 1)
)

// Preview styles used by the markdown terminal renderer.
var (
	H1Style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Magenta)).MarginBottom(1)
	H2Style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Yellow)).MarginBottom(1)
	H3Style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Orange))

	ParagraphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Foreground))
	BoldStyle      = lipgloss.NewStyle().Bold(true)
	ItalicStyle    = lipgloss.NewStyle().Italic(true)

	InlineCodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Red)).
			Background(lipgloss.Color(Surface))

	CodeLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Comment)).
			Italic(true)

	CodeBlockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Green)).
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderTop(false).
			BorderRight(false).
			BorderBottom(false).
			BorderForeground(lipgloss.Color(Border)).
			PaddingLeft(1)

	BulletStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(Cyan))
	PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment)).Italic(true)
)
