package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/purrfect-leap/internal/config"
)

// FileStore keeps the best score in a YAML file. It is used when the
// SQLite database cannot be opened.
type FileStore struct {
	path string
}

type bestFile struct {
	BestScore int `yaml:"best_score"`
}

// NewFileStore creates a store backed by the file at path. The file is
// created on first save.
func NewFileStore(path string) (*FileStore, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// LoadBest reads the best score. A missing file is a score of 0;
// a corrupt file or negative value is an error.
func (f *FileStore) LoadBest() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}

	var rec bestFile
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("storage: corrupt best score file %s: %w", f.path, err)
	}
	if rec.BestScore < 0 {
		return 0, fmt.Errorf("storage: corrupt best score file %s: negative score %d", f.path, rec.BestScore)
	}
	return rec.BestScore, nil
}

// SaveBest writes the best score, replacing the file atomically.
func (f *FileStore) SaveBest(score int) error {
	data, err := yaml.Marshal(bestFile{BestScore: score})
	if err != nil {
		return fmt.Errorf("storage: cannot encode best score: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("storage: cannot write best score: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", f.path, err)
	}
	return nil
}
