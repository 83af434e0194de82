package commands

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gerunddev/notekeep/internal/kanban"
	"github.com/gerunddev/notekeep/internal/notes"
	"github.com/gerunddev/notekeep/internal/styles"
	"github.com/gerunddev/notekeep/internal/tui"
)

// Open runs the interactive notes browser
func Open() {
	run(tui.StartBrowse)
}

// Board runs the interactive kanban board
func Board() {
	run(tui.StartBoard)
}

func run(start tui.StartView) {
	s, err := openSession()
	if err != nil {
		fail("Error", err)
	}
	defer s.Close()

	s.log.Info("session started", "view", start)

	board := kanban.NewBoard(s.log)
	m := tui.New(s.store, board, s.log, s.cfg.PreviewWidth, start)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInput(os.Stdin))

	if _, err := p.Run(); err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Error: " + err.Error()))
		s.log.Error("session failed", "error", err)
		return
	}

	s.log.Info("session ended")
}

// Export prints notes with YAML front matter. With a title argument only
// notes whose title matches (case-insensitive) are printed.
func Export(args []string) {
	s, err := openSession()
	if err != nil {
		fail("Error", err)
	}

	err = exportNotes(os.Stdout, s.store, strings.Join(args, " "))
	s.Close()
	if err != nil {
		fail("Error", err)
	}
}

func exportNotes(w io.Writer, store *notes.Store, title string) error {
	printed := 0
	for _, n := range store.Notes() {
		if title != "" && !strings.EqualFold(n.Title, title) {
			continue
		}

		data, err := store.Export(n.ID)
		if err != nil {
			return fmt.Errorf("failed to export %s: %w", n.Title, err)
		}
		if printed > 0 {
			fmt.Fprintln(w)
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
		printed++
	}

	if printed == 0 {
		return fmt.Errorf("no note titled %q", title)
	}
	return nil
}

// Tags lists every tag with the number of notes carrying it
func Tags() {
	s, err := openSession()
	if err != nil {
		fail("Error", err)
	}
	defer s.Close()

	counts := make(map[string]int)
	for _, n := range s.store.Notes() {
		for _, t := range n.Tags {
			counts[t]++
		}
	}

	tags := s.store.AllTags()
	if len(tags) == 0 {
		fmt.Println(styles.DimStyle.Render("No tags"))
		return
	}

	sort.SliceStable(tags, func(i, j int) bool {
		return counts[tags[i]] > counts[tags[j]]
	})

	for _, t := range tags {
		fmt.Printf("%s %s\n", styles.TagStyle.Render("#"+t), styles.DimStyle.Render(fmt.Sprintf("(%d)", counts[t])))
	}
}
