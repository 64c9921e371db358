package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// FileStore persiste todas as chaves em um único documento JSON.
// Cada operação lê o arquivo do disco; a escrita é atômica (tmp + rename).
type FileStore struct {
	fs   afero.Fs
	path string
	mu   sync.Mutex
}

func NewFileStore(fs afero.Fs, path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("kvstore: file path required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("kvstore: create dir: %w", err)
		}
	}
	return &FileStore{fs: fs, path: path}, nil
}

func (f *FileStore) load() (map[string]string, error) {
	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("kvstore: read %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return map[string]string{}, nil
	}

	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: file %s: %v", ErrCorrupt, f.path, err)
	}
	return entries, nil
}

func (f *FileStore) flush(entries map[string]string) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := afero.WriteFile(f.fs, tmp, data, 0o600); err != nil {
		return fmt.Errorf("kvstore: write %s: %w", tmp, err)
	}
	if err := f.fs.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("kvstore: rename %s: %w", tmp, err)
	}
	return nil
}

func (f *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return "", false, err
	}
	v, ok := entries[key]
	return v, ok, nil
}

func (f *FileStore) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return err
	}
	entries[key] = value
	return f.flush(entries)
}

func (f *FileStore) Remove(ctx context.Context, key string) error {
	return f.MultiRemove(ctx, key)
}

func (f *FileStore) MultiRemove(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return err
	}

	changed := false
	for _, k := range keys {
		if _, ok := entries[k]; ok {
			delete(entries, k)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return f.flush(entries)
}

func (f *FileStore) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, err := f.load()
	return err
}

func (f *FileStore) Driver() Driver { return DriverFile }

var _ Store = (*FileStore)(nil)
