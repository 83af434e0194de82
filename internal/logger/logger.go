package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that appends to a file. An unparsable
// level falls back to info.
func NewFileLogger(path, level string) (*Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	cleanup := func() {
		f.Close()
	}

	return NewWithLevel(f, lvl), cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(notesDir string, previewWidth int) {
	l.Debug("config loaded",
		"notes_dir", notesDir,
		"preview_width", previewWidth)
}

// NoteCreated logs a new note
func (l *Logger) NoteCreated(id, folderID string) {
	l.Info("note created",
		"id", id,
		"folder", folderID)
}

// NoteUpdated logs a note edit
func (l *Logger) NoteUpdated(id string, fields []string) {
	l.Debug("note updated",
		"id", id,
		"fields", fields)
}

// NoteDeleted logs a note removal
func (l *Logger) NoteDeleted(id, title string) {
	l.Info("note deleted",
		"id", id,
		"title", title)
}

// FolderCreated logs a new folder
func (l *Logger) FolderCreated(id, name, parentID string) {
	l.Info("folder created",
		"id", id,
		"name", name,
		"parent", parentID)
}

// NotesImported logs the outcome of a notes directory import
func (l *Logger) NotesImported(dir string, imported, skipped int, duration time.Duration) {
	l.Info("notes imported",
		"dir", dir,
		"imported", imported,
		"skipped", skipped,
		"duration", duration.Round(time.Millisecond))
}

// ImportSkipped logs a file that could not be imported
func (l *Logger) ImportSkipped(file string, err error) {
	l.Warn("import skipped",
		"file", file,
		"error", err)
}

// TaskMoved logs a task moving between board columns
func (l *Logger) TaskMoved(taskID, from, to string) {
	l.Info("task moved",
		"task", taskID,
		"from", from,
		"to", to)
}

// TaskAdded logs a new board task
func (l *Logger) TaskAdded(taskID, columnID string) {
	l.Info("task added",
		"task", taskID,
		"column", columnID)
}

// TaskRemoved logs a board task removal
func (l *Logger) TaskRemoved(taskID, columnID string) {
	l.Info("task removed",
		"task", taskID,
		"column", columnID)
}
