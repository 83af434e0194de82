package notes

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gerunddev/notekeep/internal/logger"
	"github.com/google/uuid"
)

// Store keeps notes, folders and the current selection in memory.
// It is safe for concurrent use.
type Store struct {
	mu           sync.RWMutex
	notes        []Note
	folders      []Folder
	activeID     string
	query        string
	selectedTags []string

	log   *logger.Logger
	now   func() time.Time
	newID func() string
}

// NewStore creates a store seeded with the default folders and the
// welcome note, which starts out active.
func NewStore(log *logger.Logger) *Store {
	if log == nil {
		log = logger.Discard()
	}

	s := &Store{
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}

	s.folders = []Folder{
		{ID: RootFolderID, Name: "All Notes", Expanded: true},
		{ID: "personal", Name: "Personal", ParentID: RootFolderID, Expanded: true},
		{ID: "work", Name: "Work", ParentID: RootFolderID, Expanded: false},
	}

	now := s.now()
	s.notes = []Note{{
		ID:        "welcome",
		Title:     "Welcome to Notes",
		Content:   welcomeContent,
		FolderID:  RootFolderID,
		Tags:      []string{"welcome", "markdown"},
		CreatedAt: now,
		UpdatedAt: now,
	}}
	s.activeID = "welcome"

	return s
}

// CreateNote adds an empty note to folderID and makes it active.
func (s *Store) CreateNote(folderID string) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.folderIndex(folderID) < 0 {
		return Note{}, fmt.Errorf("create note in %q: %w", folderID, ErrFolderNotFound)
	}

	now := s.now()
	n := Note{
		ID:        s.newID(),
		Title:     "Untitled Note",
		FolderID:  folderID,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notes = append(s.notes, n)
	s.activeID = n.ID

	s.log.NoteCreated(n.ID, folderID)
	return n.clone(), nil
}

// UpdateNote applies p to the note and bumps its UpdatedAt.
func (s *Store) UpdateNote(id string, p Patch) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(id, p)
}

// update is UpdateNote for callers already holding the write lock.
func (s *Store) update(id string, p Patch) (Note, error) {
	i := s.noteIndex(id)
	if i < 0 {
		return Note{}, fmt.Errorf("update note %q: %w", id, ErrNoteNotFound)
	}
	if p.FolderID != nil && s.folderIndex(*p.FolderID) < 0 {
		return Note{}, fmt.Errorf("move note %q to %q: %w", id, *p.FolderID, ErrFolderNotFound)
	}

	n := &s.notes[i]
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.FolderID != nil {
		n.FolderID = *p.FolderID
	}
	if p.Tags != nil {
		n.Tags = append([]string{}, (*p.Tags)...)
	}
	n.UpdatedAt = s.now()

	s.log.NoteUpdated(id, p.fields())
	return n.clone(), nil
}

// DeleteNote removes a note. Deleting the active note clears the selection.
func (s *Store) DeleteNote(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.noteIndex(id)
	if i < 0 {
		return fmt.Errorf("delete note %q: %w", id, ErrNoteNotFound)
	}

	title := s.notes[i].Title
	s.notes = append(s.notes[:i], s.notes[i+1:]...)
	if s.activeID == id {
		s.activeID = ""
	}

	s.log.NoteDeleted(id, title)
	return nil
}

// AddTag trims tag and appends it to the note. Blank and duplicate tags
// are ignored.
func (s *Store) AddTag(id, tag string) (Note, error) {
	tag = strings.TrimSpace(tag)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.noteIndex(id)
	if i < 0 {
		return Note{}, fmt.Errorf("tag note %q: %w", id, ErrNoteNotFound)
	}
	n := s.notes[i].clone()
	if tag == "" || n.HasTag(tag) {
		return n, nil
	}

	tags := append(n.Tags, tag)
	return s.update(id, Patch{Tags: &tags})
}

// RemoveTag drops tag from the note.
func (s *Store) RemoveTag(id, tag string) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.noteIndex(id)
	if i < 0 {
		return Note{}, fmt.Errorf("untag note %q: %w", id, ErrNoteNotFound)
	}
	n := s.notes[i].clone()
	if !n.HasTag(tag) {
		return n, nil
	}

	tags := make([]string, 0, len(n.Tags))
	for _, t := range n.Tags {
		if t != tag {
			tags = append(tags, t)
		}
	}
	return s.update(id, Patch{Tags: &tags})
}

// CreateFolder adds an expanded folder. An empty parentID means root.
func (s *Store) CreateFolder(name, parentID string) (Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Folder{}, fmt.Errorf("create folder: %w", ErrEmptyName)
	}
	if parentID == "" {
		parentID = RootFolderID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createFolder(name, parentID)
}

// createFolder is CreateFolder for callers already holding the write lock.
// name must already be trimmed and non-empty.
func (s *Store) createFolder(name, parentID string) (Folder, error) {
	if s.folderIndex(parentID) < 0 {
		return Folder{}, fmt.Errorf("create folder under %q: %w", parentID, ErrFolderNotFound)
	}

	f := Folder{
		ID:       s.newID(),
		Name:     name,
		ParentID: parentID,
		Expanded: true,
	}
	s.folders = append(s.folders, f)

	s.log.FolderCreated(f.ID, f.Name, parentID)
	return f, nil
}

// ToggleFolder flips a folder between expanded and collapsed.
func (s *Store) ToggleFolder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.folderIndex(id)
	if i < 0 {
		return fmt.Errorf("toggle folder %q: %w", id, ErrFolderNotFound)
	}
	s.folders[i].Expanded = !s.folders[i].Expanded
	return nil
}

// SetActive selects a note. An empty id clears the selection.
func (s *Store) SetActive(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" && s.noteIndex(id) < 0 {
		return fmt.Errorf("select note %q: %w", id, ErrNoteNotFound)
	}
	s.activeID = id
	return nil
}

// Active returns the selected note, if any.
func (s *Store) Active() (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.noteIndex(s.activeID)
	if i < 0 {
		return Note{}, false
	}
	return s.notes[i].clone(), true
}

// Get returns a copy of a note.
func (s *Store) Get(id string) (Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.noteIndex(id)
	if i < 0 {
		return Note{}, fmt.Errorf("get note %q: %w", id, ErrNoteNotFound)
	}
	return s.notes[i].clone(), nil
}

// Folder returns a folder by ID.
func (s *Store) Folder(id string) (Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.folderIndex(id)
	if i < 0 {
		return Folder{}, fmt.Errorf("get folder %q: %w", id, ErrFolderNotFound)
	}
	return s.folders[i], nil
}

// Notes returns all notes in creation order.
func (s *Store) Notes() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Note, len(s.notes))
	for i, n := range s.notes {
		out[i] = n.clone()
	}
	return out
}

// Folders returns all folders in creation order.
func (s *Store) Folders() []Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Folder(nil), s.folders...)
}

// SetSearchQuery sets the free-text filter.
func (s *Store) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = q
}

// ToggleTag adds tag to the tag filter, or removes it if already selected.
func (s *Store) ToggleTag(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.selectedTags {
		if t == tag {
			s.selectedTags = append(s.selectedTags[:i], s.selectedTags[i+1:]...)
			return
		}
	}
	s.selectedTags = append(s.selectedTags, tag)
}

// SelectedTags returns the tag filter in selection order.
func (s *Store) SelectedTags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.selectedTags...)
}

// AllTags returns every tag in use, deduplicated and sorted.
func (s *Store) AllTags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var tags []string
	for _, n := range s.notes {
		for _, t := range n.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

// Filtered returns notes matching the search query and carrying every
// selected tag.
func (s *Store) Filtered() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtered()
}

func (s *Store) filtered() []Note {
	q := strings.ToLower(s.query)

	var out []Note
	for _, n := range s.notes {
		if matchesQuery(n, q) && matchesTags(n, s.selectedTags) {
			out = append(out, n.clone())
		}
	}
	return out
}

func matchesQuery(n Note, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Content), q) {
		return true
	}
	for _, t := range n.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

func matchesTags(n Note, selected []string) bool {
	for _, t := range selected {
		if !n.HasTag(t) {
			return false
		}
	}
	return true
}

// Tree flattens the folder hierarchy depth-first, starting at folders
// without a parent. Collapsed folders hide their notes and subfolders.
func (s *Store) Tree() []TreeNode {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := s.filtered()
	var out []TreeNode
	s.walkTree("", 0, filtered, &out)
	return out
}

func (s *Store) walkTree(parentID string, depth int, filtered []Note, out *[]TreeNode) {
	for _, f := range s.folders {
		if f.ParentID != parentID {
			continue
		}

		node := TreeNode{
			Folder:      f,
			Depth:       depth,
			HasChildren: s.hasChildren(f.ID),
		}
		if f.Expanded {
			for _, n := range filtered {
				if n.FolderID == f.ID {
					node.Notes = append(node.Notes, n)
				}
			}
		}
		*out = append(*out, node)

		if f.Expanded && node.HasChildren {
			s.walkTree(f.ID, depth+1, filtered, out)
		}
	}
}

func (s *Store) hasChildren(id string) bool {
	for _, f := range s.folders {
		if f.ParentID == id {
			return true
		}
	}
	return false
}

func (s *Store) noteIndex(id string) int {
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) folderIndex(id string) int {
	for i := range s.folders {
		if s.folders[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) folderByName(name string) (Folder, bool) {
	for _, f := range s.folders {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Folder{}, false
}
