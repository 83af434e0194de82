package notes

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// noteMeta is the YAML front matter carried by imported and exported notes.
type noteMeta struct {
	Title  string   `yaml:"title,omitempty"`
	Tags   []string `yaml:"tags,omitempty"`
	Folder string   `yaml:"folder,omitempty"`
}

// ImportResult summarizes an ImportDir run
type ImportResult struct {
	Imported int
	Skipped  []string
	Duration time.Duration
}

// ImportDir loads every .md file under dir into the store. Front matter
// supplies title, tags and folder name; without a folder the first
// subdirectory name is used, else root. Unknown folders are created under
// root. Files on disk are never modified.
func (s *Store) ImportDir(dir string) (*ImportResult, error) {
	start := time.Now()
	result := &ImportResult{}

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".md" {
			return nil
		}

		if err := s.importFile(dir, path); err != nil {
			s.log.ImportSkipped(path, err)
			result.Skipped = append(result.Skipped, path)
			return nil
		}
		result.Imported++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to import %s: %w", dir, err)
	}

	result.Duration = time.Since(start)
	s.log.NotesImported(dir, result.Imported, len(result.Skipped), result.Duration)
	return result, nil
}

func (s *Store) importFile(root, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var meta noteMeta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return fmt.Errorf("failed to parse front matter: %w", err)
	}

	title := meta.Title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), ".md")
	}

	folderName := meta.Folder
	if folderName == "" {
		if rel, err := filepath.Rel(root, filepath.Dir(path)); err == nil && rel != "." {
			folderName = strings.Split(filepath.ToSlash(rel), "/")[0]
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	folderID, err := s.ensureFolder(folderName)
	if err != nil {
		return err
	}

	now := s.now()
	s.notes = append(s.notes, Note{
		ID:        s.newID(),
		Title:     title,
		Content:   strings.TrimPrefix(string(body), "\n"),
		FolderID:  folderID,
		Tags:      append([]string{}, meta.Tags...),
		CreatedAt: now,
		UpdatedAt: now,
	})
	return nil
}

// ensureFolder finds a folder by name, creating it under root if needed.
// An empty name maps to root. The caller holds the write lock.
func (s *Store) ensureFolder(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return RootFolderID, nil
	}

	if f, ok := s.folderByName(name); ok {
		return f.ID, nil
	}

	created, err := s.createFolder(name, RootFolderID)
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

// Export renders a note as markdown with YAML front matter.
func (s *Store) Export(id string) ([]byte, error) {
	n, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	meta := noteMeta{Title: n.Title, Tags: n.Tags}
	if n.FolderID != RootFolderID {
		if f, err := s.Folder(n.FolderID); err == nil {
			meta.Folder = f.Name
		}
	}

	header, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(header)
	buf.WriteString("---\n")
	buf.WriteString(n.Content)
	if !strings.HasSuffix(n.Content, "\n") {
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}
