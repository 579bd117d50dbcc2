package harvest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage keeps the extracted line dump of each processed document so a
// batch can be reviewed, and reprocessed after a configuration change
// without the source PDFs.
type Storage interface {
	// SaveLines stores a document's lines and returns the stored name
	SaveLines(name string, lines []string) (string, error)

	// LoadLines reads a stored line dump back as document lines
	LoadLines(name string) ([]string, error)

	// Delete removes a stored line dump
	Delete(name string) error
}

// LocalStorage implements the Storage interface using local filesystem
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new LocalStorage instance
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: basePath,
	}, nil
}

// SaveLines stores a line dump, one document line per file line
func (l *LocalStorage) SaveLines(name string, lines []string) (string, error) {
	path := filepath.Join(l.basePath, name)
	data := []byte(strings.Join(lines, "\n") + "\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing text dump: %w", err)
	}
	return name, nil
}

// LoadLines reads a line dump back, dropping blank lines
func (l *LocalStorage) LoadLines(name string) ([]string, error) {
	fullPath := filepath.Join(l.basePath, name)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("reading text dump: %w", err)
	}

	var lines []string
	for _, ln := range strings.Split(string(data), "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines, nil
}

// Delete removes a line dump
func (l *LocalStorage) Delete(name string) error {
	fullPath := filepath.Join(l.basePath, name)
	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("deleting text dump: %w", err)
	}
	return nil
}
