package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestDomainHelpers(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLevel(&buf, log.DebugLevel)

	l.NoteCreated("n1", "root")
	l.NoteUpdated("n1", []string{"content"})
	l.FolderCreated("f1", "Projects", "root")
	l.TaskMoved("t1", "todo", "done")
	l.ImportSkipped("bad.md", errors.New("broken front matter"))
	l.NotesImported("/notes", 3, 1, 1500*time.Microsecond)

	out := buf.String()
	for _, want := range []string{
		"note created", "id=n1", "folder=root",
		"note updated",
		"folder created", "name=Projects",
		"task moved", "from=todo", "to=done",
		"import skipped", "broken front matter",
		"notes imported", "imported=3", "skipped=1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestDefaultLevelHidesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.NoteUpdated("n1", []string{"title"})
	if buf.Len() != 0 {
		t.Errorf("debug output should be hidden at info level, got %q", buf.String())
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "notekeep.log")

	l, cleanup, err := NewFileLogger(path, "not-a-level")
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	l.NoteDeleted("n1", "Old")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	if !strings.Contains(string(data), "note deleted") {
		t.Errorf("unexpected log contents %q", data)
	}
}
