package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gerunddev/notekeep/internal/kanban"
	"github.com/gerunddev/notekeep/internal/styles"
)

var (
	columnStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(styles.Border)).
			Padding(0, 1)

	activeColumnStyle = columnStyle.
				BorderForeground(lipgloss.Color(styles.Yellow))
)

type boardModel struct {
	board  *kanban.Board
	input  textinput.Model
	col    int
	row    int
	adding bool
	status string
	width  int
	height int
}

func newBoardModel(board *kanban.Board) boardModel {
	in := textinput.New()
	in.Placeholder = "Task title"
	in.Prompt = "+ "

	return boardModel{
		board: board,
		input: in,
	}
}

func (m boardModel) setSize(width, height int) boardModel {
	m.width = width
	m.height = height
	return m
}

func (m boardModel) selectedTask() (kanban.Task, kanban.Column, bool) {
	cols := m.board.Columns()
	if m.col >= len(cols) {
		return kanban.Task{}, kanban.Column{}, false
	}
	c := cols[m.col]
	if m.row < 0 || m.row >= len(c.Tasks) {
		return kanban.Task{}, c, false
	}
	return c.Tasks[m.row], c, true
}

// clamp keeps the cursor inside the board after tasks move or vanish.
func (m boardModel) clamp() boardModel {
	cols := m.board.Columns()
	if len(cols) == 0 {
		m.col, m.row = 0, 0
		return m
	}
	m.col = min(max(m.col, 0), len(cols)-1)
	m.row = min(m.row, len(cols[m.col].Tasks)-1)
	m.row = max(m.row, 0)
	return m
}

func (m boardModel) update(msg tea.Msg) (boardModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.adding {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.adding {
		switch keyMsg.String() {
		case "esc":
			m.adding = false
			m.input.Reset()
			m.input.Blur()
			return m, nil
		case "enter":
			cols := m.board.Columns()
			if _, err := m.board.AddTask(cols[m.col].ID, m.input.Value()); err != nil {
				m.status = styles.ErrorStyle.Render("✗ " + err.Error())
			} else {
				m.status = ""
				m.row = len(cols[m.col].Tasks)
			}
			m.adding = false
			m.input.Reset()
			m.input.Blur()
			return m.clamp(), nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit

	case "esc", "b":
		return m, switchView(browseView)

	case "left", "h":
		m.col--
	case "right", "l":
		m.col++
	case "up", "k":
		m.row--
	case "down", "j":
		m.row++

	case "H", "shift+left":
		m = m.move(-1)
	case "L", "shift+right":
		m = m.move(1)

	case "a":
		m.adding = true
		cmd := m.input.Focus()
		return m, cmd

	case "x":
		task, col, ok := m.selectedTask()
		if ok {
			if err := m.board.RemoveTask(col.ID, task.ID); err != nil {
				m.status = styles.ErrorStyle.Render("✗ " + err.Error())
			}
		}
	}

	return m.clamp(), nil
}

// move drops the selected task onto the neighbouring column and follows it.
func (m boardModel) move(delta int) boardModel {
	task, _, ok := m.selectedTask()
	if !ok {
		return m
	}

	cols := m.board.Columns()
	target := m.col + delta
	if target < 0 || target >= len(cols) {
		return m
	}

	moved, err := m.board.MoveTask(task.ID, cols[target].ID)
	if err != nil {
		m.status = styles.ErrorStyle.Render("✗ " + err.Error())
		return m
	}
	if moved {
		m.col = target
		m.row = len(cols[target].Tasks)
	}
	return m
}

func (m boardModel) view() string {
	cols := m.board.Columns()

	width := 30
	if m.width > 0 && len(cols) > 0 {
		width = max(m.width/len(cols)-4, 16)
	}

	rendered := make([]string, 0, len(cols))
	for ci, c := range cols {
		var body strings.Builder
		body.WriteString(styles.HeaderStyle.Render(c.Title))
		body.WriteString("\n\n")

		for ti, t := range c.Tasks {
			line := t.Title
			if ci == m.col && ti == m.row {
				line = styles.SelectedStyle.Render(line)
			} else {
				line = styles.NormalTextStyle.Render(line)
			}
			body.WriteString(line)
			body.WriteString("\n")
			if t.Description != "" {
				body.WriteString(styles.DimStyle.Render("  " + t.Description))
				body.WriteString("\n")
			}
		}

		style := columnStyle
		if ci == m.col {
			style = activeColumnStyle
		}
		rendered = append(rendered, style.Width(width).Render(body.String()))
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Kanban Board"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	b.WriteString("\n")

	if m.adding {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpStyle.Render("←/→ ↑/↓: select • H/L: move task • a: add • x: remove • b: notes • q: quit"))
	return b.String()
}
