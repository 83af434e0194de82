package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gerunddev/notekeep/internal/diff"
	"github.com/gerunddev/notekeep/internal/notes"
	"github.com/gerunddev/notekeep/internal/render"
	"github.com/gerunddev/notekeep/internal/styles"
)

type editorMode int

const (
	editing editorMode = iota
	previewing
	diffing
	tagging
	renaming
	confirmingDelete
)

type editorModel struct {
	store        *notes.Store
	textarea     textarea.Model
	viewport     viewport.Model
	input        textinput.Model
	mode         editorMode
	noteID       string
	opened       string // content when the note was opened, for diffs
	previewWidth int
	status       string
	width        int
	height       int
}

func newEditorModel(store *notes.Store, previewWidth int) editorModel {
	ta := textarea.New()
	ta.Placeholder = "Start writing in markdown..."
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(80)
	ta.SetHeight(20)

	vp := viewport.New(80, 20)
	vp.Style = styles.PaneStyle

	in := textinput.New()

	return editorModel{
		store:        store,
		textarea:     ta,
		viewport:     vp,
		input:        in,
		previewWidth: previewWidth,
	}
}

func (m editorModel) setSize(width, height int) editorModel {
	m.width = width
	m.height = height
	m.textarea.SetWidth(max(width-2, 20))
	m.textarea.SetHeight(max(height-8, 5))
	m.viewport.Width = max(width-2, 20)
	m.viewport.Height = max(height-8, 5)
	return m
}

// renderWidth is the preview wrap width: the configured width, narrowed
// to fit the viewport.
func (m editorModel) renderWidth() int {
	w := m.previewWidth
	if inner := m.viewport.Width - 4; m.width > 0 && inner < w {
		w = inner
	}
	return w
}

func (m editorModel) open(id string) (editorModel, tea.Cmd) {
	n, err := m.store.Get(id)
	if err != nil {
		m.status = styles.ErrorStyle.Render("✗ " + err.Error())
		return m, nil
	}

	m.noteID = n.ID
	m.opened = n.Content
	m.mode = editing
	m.status = ""
	m.textarea.SetValue(n.Content)
	cmd := m.textarea.Focus()
	return m, cmd
}

func (m editorModel) note() (notes.Note, bool) {
	n, err := m.store.Get(m.noteID)
	return n, err == nil
}

func (m editorModel) startInput(mode editorMode, prompt, placeholder, value string) (editorModel, tea.Cmd) {
	m.mode = mode
	m.textarea.Blur()
	m.input.Prompt = prompt
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	cmd := m.input.Focus()
	return m, cmd
}

func (m editorModel) backToEditing() (editorModel, tea.Cmd) {
	m.mode = editing
	m.input.Blur()
	m.input.Reset()
	cmd := m.textarea.Focus()
	return m, cmd
}

func (m editorModel) update(msg tea.Msg) (editorModel, tea.Cmd) {
	var cmd tea.Cmd

	keyMsg, isKey := msg.(tea.KeyMsg)

	switch m.mode {
	case previewing, diffing:
		if isKey {
			switch keyMsg.String() {
			case "esc", "ctrl+p", "ctrl+d":
				m.mode = editing
				cmd = m.textarea.Focus()
				return m, cmd
			}
		}
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case confirmingDelete:
		if !isKey {
			return m, nil
		}
		switch keyMsg.String() {
		case "y", "Y":
			if err := m.store.DeleteNote(m.noteID); err != nil {
				m.status = styles.ErrorStyle.Render("✗ " + err.Error())
				m.mode = editing
				return m, nil
			}
			m.noteID = ""
			m.mode = editing
			return m, closeEditor
		default:
			m.mode = editing
			m.status = styles.DimStyle.Render("Delete cancelled")
			cmd = m.textarea.Focus()
			return m, cmd
		}

	case tagging, renaming:
		if isKey {
			switch keyMsg.String() {
			case "esc":
				return m.backToEditing()
			case "enter":
				m = m.applyInput()
				return m.backToEditing()
			}
		}
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if isKey {
		switch keyMsg.String() {
		case "esc":
			m.textarea.Blur()
			return m, closeEditor

		case "ctrl+p":
			m.mode = previewing
			m.textarea.Blur()
			m.viewport.SetContent(render.Preview(m.textarea.Value(), m.renderWidth()))
			m.viewport.GotoTop()
			return m, nil

		case "ctrl+d":
			n, _ := m.note()
			out := diff.Render(n.Title, m.opened, m.textarea.Value(), m.renderWidth())
			if out == "" {
				m.status = styles.DimStyle.Render("No changes since opened")
				return m, nil
			}
			m.mode = diffing
			m.textarea.Blur()
			m.viewport.SetContent(out)
			m.viewport.GotoTop()
			return m, nil

		case "ctrl+t":
			return m.startInput(tagging, "# ", "tag (existing tags are removed)", "")

		case "ctrl+r":
			n, _ := m.note()
			return m.startInput(renaming, "Title: ", "Note title...", n.Title)

		case "ctrl+x":
			m.mode = confirmingDelete
			m.textarea.Blur()
			return m, nil
		}
	}

	before := m.textarea.Value()
	m.textarea, cmd = m.textarea.Update(msg)
	if after := m.textarea.Value(); after != before {
		if _, err := m.store.UpdateNote(m.noteID, notes.Patch{Content: &after}); err != nil {
			m.status = styles.ErrorStyle.Render("✗ " + err.Error())
		}
	}
	return m, cmd
}

// applyInput commits the tag or title prompt. Entering a tag the note
// already has removes it.
func (m editorModel) applyInput() editorModel {
	value := strings.TrimSpace(m.input.Value())
	n, ok := m.note()
	if !ok {
		return m
	}

	var err error
	switch m.mode {
	case tagging:
		if n.HasTag(value) {
			_, err = m.store.RemoveTag(n.ID, value)
		} else {
			_, err = m.store.AddTag(n.ID, value)
		}
	case renaming:
		if value != "" {
			_, err = m.store.UpdateNote(n.ID, notes.Patch{Title: &value})
		}
	}
	if err != nil {
		m.status = styles.ErrorStyle.Render("✗ " + err.Error())
	}
	return m
}

func (m editorModel) header() string {
	n, ok := m.note()
	if !ok {
		return styles.DimStyle.Render("Select a note from the sidebar or create a new one to get started.")
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(n.Title))
	if f, err := m.store.Folder(n.FolderID); err == nil {
		b.WriteString("  ")
		b.WriteString(styles.FolderStyle.Render("in " + f.Name))
	}
	if len(n.Tags) > 0 {
		b.WriteString("  ")
		b.WriteString(styles.TagStyle.Render(formatTags(n.Tags)))
	}
	if m.mode == previewing {
		b.WriteString("  ")
		b.WriteString(styles.DimStyle.Render("[preview]"))
	}
	if m.mode == diffing {
		b.WriteString("  ")
		b.WriteString(styles.DimStyle.Render("[changes]"))
	}
	return b.String()
}

func (m editorModel) view() string {
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n\n")

	switch m.mode {
	case previewing, diffing:
		b.WriteString(m.viewport.View())
	default:
		b.WriteString(m.textarea.View())
	}
	b.WriteString("\n")

	switch m.mode {
	case tagging, renaming:
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case confirmingDelete:
		b.WriteString(styles.WarningStyle.Render("Are you sure you want to delete this note? (y/n)"))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpStyle.Render("esc: back • ctrl+p: preview • ctrl+d: changes • ctrl+t: tag • ctrl+r: rename • ctrl+x: delete"))
	return b.String()
}
