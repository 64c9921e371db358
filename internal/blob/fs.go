package blob

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"
)

type FSStore struct {
	fs afero.Fs
}

// NewFSStore usa fs como raiz; chaves viram caminhos relativos
func NewFSStore(fs afero.Fs) *FSStore {
	return &FSStore{fs: fs}
}

// NewDirStore enraíza o store num diretório do disco
func NewDirStore(dir string) (*FSStore, error) {
	base := afero.NewOsFs()
	if err := base.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("blob dir: %w", err)
	}
	return NewFSStore(afero.NewBasePathFs(base, dir)), nil
}

func cleanKey(key string) (string, error) {
	k := path.Clean("/" + key)
	if k == "/" || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return k, nil
}

func (s *FSStore) Put(_ context.Context, key string, data []byte, _ string) error {
	k, err := cleanKey(key)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(path.Dir(k), 0o755); err != nil {
		return fmt.Errorf("blob put %s: %w", key, err)
	}

	tmp := k + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("blob put %s: %w", key, err)
	}
	if err := s.fs.Rename(tmp, k); err != nil {
		return fmt.Errorf("blob put %s: %w", key, err)
	}
	return nil
}

func (s *FSStore) Get(_ context.Context, key string) ([]byte, error) {
	k, err := cleanKey(key)
	if err != nil {
		return nil, err
	}
	b, err := afero.ReadFile(s.fs, k)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("blob get %s: %w", key, err)
	}
	return b, nil
}

func (s *FSStore) Delete(_ context.Context, key string) error {
	k, err := cleanKey(key)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(k); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("blob delete %s: %w", key, err)
	}
	return nil
}

func (s *FSStore) Driver() Driver { return DriverFS }
