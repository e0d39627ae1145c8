package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// File is an Adapter that stores each document as <key>.json inside a
// directory. Writes go through a temp file and rename so a crash never
// leaves a half-written document behind.
type File struct {
	dir string
}

// NewFile creates a file adapter rooted at dir, creating the directory
// if needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory %s: %w", dir, err)
	}
	return &File{dir: dir}, nil
}

// Load reads the document stored under key.
func (f *File) Load(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading document %s: %w", key, err)
	}
	return data, true, nil
}

// Save writes the document under key atomically.
func (f *File) Save(key string, data []byte) error {
	target := f.path(key)

	tmp, err := os.CreateTemp(f.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", key, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing document %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file for %s: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing document %s: %w", key, err)
	}
	return nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}
