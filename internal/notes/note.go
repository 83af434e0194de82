// Package notes holds the in-memory note and folder state: CRUD, tag
// selection, search filtering and the folder tree shown in the sidebar.
package notes

import (
	"errors"
	"time"
)

// RootFolderID is the folder every other folder descends from.
const RootFolderID = "root"

var (
	ErrNoteNotFound   = errors.New("note not found")
	ErrFolderNotFound = errors.New("folder not found")
	ErrEmptyName      = errors.New("name cannot be empty")
)

// Note is a single markdown note
type Note struct {
	ID        string
	Title     string
	Content   string
	FolderID  string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasTag reports whether the note carries tag exactly.
func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (n Note) clone() Note {
	n.Tags = append([]string(nil), n.Tags...)
	return n
}

// Folder groups notes. ParentID is empty for the root folder.
type Folder struct {
	ID       string
	Name     string
	ParentID string
	Expanded bool
}

// Patch describes a partial note update. Nil fields are left alone.
type Patch struct {
	Title    *string
	Content  *string
	FolderID *string
	Tags     *[]string
}

func (p Patch) fields() []string {
	var fields []string
	if p.Title != nil {
		fields = append(fields, "title")
	}
	if p.Content != nil {
		fields = append(fields, "content")
	}
	if p.FolderID != nil {
		fields = append(fields, "folder")
	}
	if p.Tags != nil {
		fields = append(fields, "tags")
	}
	return fields
}

// TreeNode is one row of the flattened folder tree.
type TreeNode struct {
	Folder      Folder
	Depth       int
	HasChildren bool
	Notes       []Note // filtered notes, empty when the folder is collapsed
}

const welcomeContent = "# Welcome to Your Note Taking App\n\n" +
	"This is your first note! You can:\n\n" +
	"- Write in **markdown**\n" +
	"- Organize with folders\n" +
	"- Add #tags\n" +
	"- Search everything\n\n" +
	"```javascript\n" +
	"// Even add code blocks!\n" +
	"console.log(\"Hello, world!\");\n" +
	"```\n\n" +
	"Happy note taking! 📝"
