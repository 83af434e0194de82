package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gerunddev/notekeep/internal/notes"
	"github.com/gerunddev/notekeep/internal/styles"
)

// treeRow maps a table row back to the folder or note it shows.
type treeRow struct {
	folderID string
	noteID   string // empty for folder rows
}

type browseModel struct {
	store  *notes.Store
	table  table.Model
	search textinput.Model
	prompt textinput.Model
	rows   []treeRow

	searching     bool
	namingFolder  bool
	status        string
	width, height int
}

func newBrowseModel(store *notes.Store) browseModel {
	columns := []table.Column{
		{Title: "Name", Width: 40},
		{Title: "Tags", Width: 24},
		{Title: "Updated", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.Border)).
		BorderBottom(true).
		Bold(false)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color(styles.Background)).
		Background(lipgloss.Color(styles.Yellow)).
		Bold(false)
	t.SetStyles(ts)

	search := textinput.New()
	search.Placeholder = "Search notes, tags, or content..."
	search.Prompt = "/ "

	prompt := textinput.New()
	prompt.Placeholder = "Folder name"
	prompt.Prompt = "+ "

	m := browseModel{
		store:  store,
		table:  t,
		search: search,
		prompt: prompt,
	}
	return m.refresh()
}

func (m browseModel) setSize(width, height int) browseModel {
	m.width = width
	m.height = height
	m.table.SetHeight(max(height-10, 5))
	m.search.Width = max(width-6, 10)
	return m
}

// refresh rebuilds the table from the store's folder tree, keeping the
// cursor on the same item when it is still visible.
func (m browseModel) refresh() browseModel {
	var selected treeRow
	if c := m.table.Cursor(); c >= 0 && c < len(m.rows) {
		selected = m.rows[c]
	}

	var rows []table.Row
	var treeRows []treeRow
	for _, node := range m.store.Tree() {
		indent := strings.Repeat("  ", node.Depth)
		icon := "▸ "
		if node.Folder.Expanded {
			icon = "▾ "
		}
		if !node.HasChildren && len(node.Notes) == 0 {
			icon = "  "
		}
		rows = append(rows, table.Row{indent + icon + node.Folder.Name, "", ""})
		treeRows = append(treeRows, treeRow{folderID: node.Folder.ID})

		for _, n := range node.Notes {
			rows = append(rows, table.Row{
				indent + "    " + n.Title,
				formatTags(n.Tags),
				n.UpdatedAt.Format("Jan 02 15:04"),
			})
			treeRows = append(treeRows, treeRow{folderID: node.Folder.ID, noteID: n.ID})
		}
	}
	m.rows = treeRows
	m.table.SetRows(rows)

	for i, r := range m.rows {
		if r == selected {
			m.table.SetCursor(i)
			break
		}
	}
	return m
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return "#" + strings.Join(tags, " #")
}

func (m browseModel) selected() (treeRow, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.rows) {
		return treeRow{}, false
	}
	return m.rows[c], true
}

func (m browseModel) update(msg tea.Msg) (browseModel, tea.Cmd) {
	var cmd tea.Cmd

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	if m.searching {
		switch keyMsg.String() {
		case "enter", "esc":
			m.searching = false
			m.search.Blur()
			m.table.Focus()
			return m, nil
		}
		m.search, cmd = m.search.Update(msg)
		m.store.SetSearchQuery(m.search.Value())
		return m.refresh(), cmd
	}

	if m.namingFolder {
		switch keyMsg.String() {
		case "esc":
			m.namingFolder = false
			m.prompt.Reset()
			m.prompt.Blur()
			m.table.Focus()
			return m, nil
		case "enter":
			parent := ""
			if r, ok := m.selected(); ok {
				parent = r.folderID
			}
			if f, err := m.store.CreateFolder(m.prompt.Value(), parent); err != nil {
				m.status = styles.ErrorStyle.Render("✗ " + err.Error())
			} else {
				m.status = styles.SuccessStyle.Render("✓ Created folder " + f.Name)
			}
			m.namingFolder = false
			m.prompt.Reset()
			m.prompt.Blur()
			m.table.Focus()
			return m.refresh(), nil
		}
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		m.searching = true
		m.table.Blur()
		cmd = m.search.Focus()
		return m, cmd

	case "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.store.SetSearchQuery("")
			return m.refresh(), nil
		}
		return m, nil

	case "f":
		m.namingFolder = true
		m.table.Blur()
		cmd = m.prompt.Focus()
		return m, cmd

	case "b":
		return m, switchView(boardView)

	case "n":
		folderID := notes.RootFolderID
		if r, ok := m.selected(); ok {
			folderID = r.folderID
		}
		n, err := m.store.CreateNote(folderID)
		if err != nil {
			m.status = styles.ErrorStyle.Render("✗ " + err.Error())
			return m, nil
		}
		return m.refresh(), openNote(n.ID)

	case "enter", " ":
		r, ok := m.selected()
		if !ok {
			return m, nil
		}
		if r.noteID != "" {
			return m, openNote(r.noteID)
		}
		if err := m.store.ToggleFolder(r.folderID); err != nil {
			m.status = styles.ErrorStyle.Render("✗ " + err.Error())
		}
		return m.refresh(), nil

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		tags := m.store.AllTags()
		i := int(keyMsg.String()[0] - '1')
		if i < len(tags) {
			m.store.ToggleTag(tags[i])
		}
		return m.refresh(), nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m browseModel) tagBar() string {
	tags := m.store.AllTags()
	if len(tags) == 0 {
		return ""
	}

	selected := make(map[string]bool)
	for _, t := range m.store.SelectedTags() {
		selected[t] = true
	}

	parts := make([]string, 0, len(tags))
	for i, t := range tags {
		label := t
		if i < 9 {
			label = fmt.Sprintf("%d:%s", i+1, t)
		}
		if selected[t] {
			parts = append(parts, styles.SelectedTagStyle.Render(" "+label+" "))
		} else {
			parts = append(parts, styles.TagStyle.Render(" "+label+" "))
		}
	}
	return styles.DimStyle.Render("Tags ") + strings.Join(parts, " ")
}

func (m browseModel) view() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Notes"))
	b.WriteString("\n\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	if bar := m.tagBar(); bar != "" {
		b.WriteString(bar)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.table.View())
	b.WriteString("\n")

	if m.namingFolder {
		b.WriteString(m.prompt.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpStyle.Render("enter: open/toggle • n: new note • f: new folder • /: search • 1-9: tag filter • b: board • q: quit"))
	return b.String()
}
