package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rohithredddy/plagiarism-Check-Demo/internal/models"
)

// FileStore keeps submissions as a pretty-printed JSON array so the corpus
// stays readable in a text editor. Writes go to a temp file followed by a
// rename, so a reader never sees a half-written entry.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() ([]models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() ([]models.Submission, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Submission{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var subs []models.Submission
	if err := json.Unmarshal(data, &subs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return subs, nil
}

func (s *FileStore) Append(sub models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs, err := s.load()
	if err != nil {
		return err
	}
	subs = append(subs, sub)

	data, err := json.MarshalIndent(subs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode submissions: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
