// Package kanban implements the task board: fixed columns holding ordered
// tasks that can be added, removed and moved between columns.
package kanban

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gerunddev/notekeep/internal/logger"
	"github.com/google/uuid"
)

var (
	ErrColumnNotFound = errors.New("column not found")
	ErrTaskNotFound   = errors.New("task not found")
	ErrEmptyTitle     = errors.New("task title cannot be empty")
)

// Task is a card on the board
type Task struct {
	ID          string
	Title       string
	Description string
}

// Column is an ordered list of tasks
type Column struct {
	ID    string
	Title string
	Tasks []Task
}

// Board holds the columns. It is safe for concurrent use.
type Board struct {
	mu      sync.RWMutex
	columns []Column
	log     *logger.Logger
	newID   func() string
}

// NewBoard creates the default To Do / In Progress / Done board.
func NewBoard(log *logger.Logger) *Board {
	if log == nil {
		log = logger.Discard()
	}

	return &Board{
		log:   log,
		newID: uuid.NewString,
		columns: []Column{
			{
				ID:    "todo",
				Title: "To Do",
				Tasks: []Task{
					{ID: "1", Title: "Research content ideas", Description: "Brainstorm new topics for notes"},
					{ID: "2", Title: "Update profile", Description: "Add more personal information"},
				},
			},
			{
				ID:    "inprogress",
				Title: "In Progress",
				Tasks: []Task{
					{ID: "3", Title: "Write documentation", Description: "Create user guides for the app"},
					{ID: "4", Title: "Design new logo", Description: "Create mockups for review"},
				},
			},
			{
				ID:    "done",
				Title: "Done",
				Tasks: []Task{
					{ID: "5", Title: "Set up project", Description: "Initialize the repository and dependencies"},
					{ID: "6", Title: "Create initial design", Description: "Design the first draft of the UI"},
				},
			},
		},
	}
}

// Columns returns a copy of the board.
func (b *Board) Columns() []Column {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Column, len(b.columns))
	for i, c := range b.columns {
		c.Tasks = append([]Task(nil), c.Tasks...)
		out[i] = c
	}
	return out
}

// AddTask appends a task with a trimmed title to a column.
func (b *Board) AddTask(columnID, title string) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrEmptyTitle
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	ci := b.columnIndex(columnID)
	if ci < 0 {
		return Task{}, fmt.Errorf("add task to %q: %w", columnID, ErrColumnNotFound)
	}

	task := Task{ID: b.newID(), Title: title}
	b.columns[ci].Tasks = append(b.columns[ci].Tasks, task)

	b.log.TaskAdded(task.ID, columnID)
	return task, nil
}

// RemoveTask deletes a task from a column.
func (b *Board) RemoveTask(columnID, taskID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	ci := b.columnIndex(columnID)
	if ci < 0 {
		return fmt.Errorf("remove task from %q: %w", columnID, ErrColumnNotFound)
	}

	ti := taskIndex(b.columns[ci].Tasks, taskID)
	if ti < 0 {
		return fmt.Errorf("remove task %q from %q: %w", taskID, columnID, ErrTaskNotFound)
	}

	tasks := b.columns[ci].Tasks
	b.columns[ci].Tasks = append(tasks[:ti], tasks[ti+1:]...)

	b.log.TaskRemoved(taskID, columnID)
	return nil
}

// MoveTask drops a task onto another column, appending it at the end.
// It reports false when the task already sits in the target column.
func (b *Board) MoveTask(taskID, toColumnID string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	to := b.columnIndex(toColumnID)
	if to < 0 {
		return false, fmt.Errorf("move task to %q: %w", toColumnID, ErrColumnNotFound)
	}

	from, ti := b.locate(taskID)
	if from < 0 {
		return false, fmt.Errorf("move task %q: %w", taskID, ErrTaskNotFound)
	}
	if from == to {
		return false, nil
	}

	task := b.columns[from].Tasks[ti]
	tasks := b.columns[from].Tasks
	b.columns[from].Tasks = append(tasks[:ti], tasks[ti+1:]...)
	b.columns[to].Tasks = append(b.columns[to].Tasks, task)

	b.log.TaskMoved(taskID, b.columns[from].ID, toColumnID)
	return true, nil
}

// Find returns a task and the ID of the column holding it.
func (b *Board) Find(taskID string) (Task, string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ci, ti := b.locate(taskID)
	if ci < 0 {
		return Task{}, "", fmt.Errorf("find task %q: %w", taskID, ErrTaskNotFound)
	}
	return b.columns[ci].Tasks[ti], b.columns[ci].ID, nil
}

func (b *Board) locate(taskID string) (int, int) {
	for ci, c := range b.columns {
		if ti := taskIndex(c.Tasks, taskID); ti >= 0 {
			return ci, ti
		}
	}
	return -1, -1
}

func (b *Board) columnIndex(id string) int {
	for i, c := range b.columns {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func taskIndex(tasks []Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
