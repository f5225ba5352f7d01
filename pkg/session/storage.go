package session

import (
	"fmt"
	"os"
	"path/filepath"
)

// storageFileName is the fixed name of the durable session record.
const storageFileName = "rentwise_auth.json"

// FileStorage persists the session record as a JSON file. Saves go
// through a temp file and rename so a concurrent hydrate never observes
// a partial write.
type FileStorage struct {
	dir  string
	path string
}

func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir, path: filepath.Join(dir, storageFileName)}
}

func (fs *FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}
	return data, nil
}

func (fs *FileStorage) Save(data []byte) error {
	if err := os.MkdirAll(fs.dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp, err := os.CreateTemp(fs.dir, storageFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod session file: %w", err)
	}
	if err := os.Rename(tmpName, fs.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

func (fs *FileStorage) Clear() error {
	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
