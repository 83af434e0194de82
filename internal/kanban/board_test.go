package kanban

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/gerunddev/notekeep/internal/logger"
)

func taskIDs(c Column) []string {
	var ids []string
	for _, t := range c.Tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestNewBoard(t *testing.T) {
	b := NewBoard(nil)
	cols := b.Columns()

	if len(cols) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(cols))
	}

	expected := [][]string{{"1", "2"}, {"3", "4"}, {"5", "6"}}
	for i, c := range cols {
		if !reflect.DeepEqual(taskIDs(c), expected[i]) {
			t.Errorf("column %s tasks = %v, want %v", c.ID, taskIDs(c), expected[i])
		}
	}
}

func TestMoveTask(t *testing.T) {
	tests := []struct {
		name      string
		taskID    string
		to        string
		wantMoved bool
		wantErr   error
		wantCols  [][]string
	}{
		{
			name:      "move to later column appends",
			taskID:    "1",
			to:        "done",
			wantMoved: true,
			wantCols:  [][]string{{"2"}, {"3", "4"}, {"5", "6", "1"}},
		},
		{
			name:      "move backwards",
			taskID:    "6",
			to:        "todo",
			wantMoved: true,
			wantCols:  [][]string{{"1", "2", "6"}, {"3", "4"}, {"5"}},
		},
		{
			name:      "same column is a no-op",
			taskID:    "3",
			to:        "inprogress",
			wantMoved: false,
			wantCols:  [][]string{{"1", "2"}, {"3", "4"}, {"5", "6"}},
		},
		{
			name:     "unknown task",
			taskID:   "99",
			to:       "done",
			wantErr:  ErrTaskNotFound,
			wantCols: [][]string{{"1", "2"}, {"3", "4"}, {"5", "6"}},
		},
		{
			name:     "unknown column",
			taskID:   "1",
			to:       "backlog",
			wantErr:  ErrColumnNotFound,
			wantCols: [][]string{{"1", "2"}, {"3", "4"}, {"5", "6"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(logger.Discard())

			moved, err := b.MoveTask(tt.taskID, tt.to)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("MoveTask error = %v, want %v", err, tt.wantErr)
			}
			if moved != tt.wantMoved {
				t.Errorf("MoveTask moved = %v, want %v", moved, tt.wantMoved)
			}

			for i, c := range b.Columns() {
				if !reflect.DeepEqual(taskIDs(c), tt.wantCols[i]) {
					t.Errorf("column %s = %v, want %v", c.ID, taskIDs(c), tt.wantCols[i])
				}
			}
		})
	}
}

func TestMoveTaskLogs(t *testing.T) {
	var logBuf bytes.Buffer
	b := NewBoard(logger.New(&logBuf))

	if _, err := b.MoveTask("2", "inprogress"); err != nil {
		t.Fatalf("MoveTask failed: %v", err)
	}

	out := logBuf.String()
	if !strings.Contains(out, "task moved") || !strings.Contains(out, "from=todo") {
		t.Errorf("unexpected log output %q", out)
	}
}

func TestAddTask(t *testing.T) {
	b := NewBoard(logger.Discard())
	b.newID = func() string { return "new" }

	task, err := b.AddTask("todo", "  Write tests  ")
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if task.Title != "Write tests" || task.Description != "" {
		t.Errorf("unexpected task %+v", task)
	}
	if ids := taskIDs(b.Columns()[0]); !reflect.DeepEqual(ids, []string{"1", "2", "new"}) {
		t.Errorf("todo tasks = %v", ids)
	}

	if _, err := b.AddTask("todo", "   "); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
	if _, err := b.AddTask("backlog", "x"); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("expected ErrColumnNotFound, got %v", err)
	}
}

func TestRemoveTask(t *testing.T) {
	b := NewBoard(logger.Discard())

	if err := b.RemoveTask("inprogress", "3"); err != nil {
		t.Fatalf("RemoveTask failed: %v", err)
	}
	if ids := taskIDs(b.Columns()[1]); !reflect.DeepEqual(ids, []string{"4"}) {
		t.Errorf("inprogress tasks = %v", ids)
	}

	if err := b.RemoveTask("todo", "3"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound for task in another column, got %v", err)
	}
	if err := b.RemoveTask("nope", "1"); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("expected ErrColumnNotFound, got %v", err)
	}
}

func TestFind(t *testing.T) {
	b := NewBoard(logger.Discard())

	task, col, err := b.Find("4")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if task.Title != "Design new logo" || col != "inprogress" {
		t.Errorf("Find(4) = %+v in %s", task, col)
	}

	if _, _, err := b.Find("x"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestColumnsReturnsCopy(t *testing.T) {
	b := NewBoard(logger.Discard())

	cols := b.Columns()
	cols[0].Tasks[0].Title = "changed"

	if b.Columns()[0].Tasks[0].Title == "changed" {
		t.Error("Columns() must not expose internal slices")
	}
}
