package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gerunddev/notekeep/internal/kanban"
	"github.com/gerunddev/notekeep/internal/logger"
	"github.com/gerunddev/notekeep/internal/notes"
)

type view int

const (
	browseView view = iota
	editorView
	boardView
)

// StartView selects the screen the program opens on.
type StartView string

const (
	StartBrowse StartView = "browse"
	StartBoard  StartView = "board"
)

// Model is the root Bubble Tea model. It routes messages to the browse,
// editor and board screens.
type Model struct {
	store *notes.Store
	log   *logger.Logger

	view   view
	width  int
	height int

	browse browseModel
	editor editorModel
	board  boardModel
}

// New creates the application model.
func New(store *notes.Store, board *kanban.Board, log *logger.Logger, previewWidth int, start StartView) Model {
	if log == nil {
		log = logger.Discard()
	}

	m := Model{
		store:  store,
		log:    log,
		browse: newBrowseModel(store),
		editor: newEditorModel(store, previewWidth),
		board:  newBoardModel(board),
	}
	if start == StartBoard {
		m.view = boardView
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// openNoteMsg switches to the editor for a note.
type openNoteMsg struct{ id string }

// closeEditorMsg returns from the editor to the browser.
type closeEditorMsg struct{}

// switchViewMsg moves between the browser and the board.
type switchViewMsg struct{ to view }

func openNote(id string) tea.Cmd {
	return func() tea.Msg { return openNoteMsg{id: id} }
}

func closeEditor() tea.Msg { return closeEditorMsg{} }

func switchView(to view) tea.Cmd {
	return func() tea.Msg { return switchViewMsg{to: to} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.browse = m.browse.setSize(msg.Width, msg.Height)
		m.editor = m.editor.setSize(msg.Width, msg.Height)
		m.board = m.board.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case openNoteMsg:
		if err := m.store.SetActive(msg.id); err != nil {
			m.log.Error("failed to open note", "id", msg.id, "error", err)
			return m, nil
		}
		m.view = editorView
		m.editor, cmd = m.editor.open(msg.id)
		return m, cmd

	case closeEditorMsg:
		m.view = browseView
		m.browse = m.browse.refresh()
		return m, nil

	case switchViewMsg:
		m.view = msg.to
		if msg.to == browseView {
			m.browse = m.browse.refresh()
		}
		return m, nil
	}

	switch m.view {
	case editorView:
		m.editor, cmd = m.editor.update(msg)
	case boardView:
		m.board, cmd = m.board.update(msg)
	default:
		m.browse, cmd = m.browse.update(msg)
	}

	return m, cmd
}

func (m Model) View() string {
	switch m.view {
	case editorView:
		return m.editor.view()
	case boardView:
		return m.board.view()
	default:
		return m.browse.view()
	}
}
