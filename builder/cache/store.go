package cache

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/Kush-Singh-26/agora/builder/utils"
)

// HashStore persists the path -> hash map between runs.
type HashStore interface {
	Load() (map[string]string, error)
	Save(hashes map[string]string) error
}

// FileStore keeps the map as a YAML document.
type FileStore struct {
	fs   afero.Fs
	path string
}

func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

func (s *FileStore) Load() (map[string]string, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	hashes := map[string]string{}
	if err := yaml.Unmarshal(data, &hashes); err != nil {
		return nil, fmt.Errorf("failed to decode cache file %s: %w", s.path, err)
	}
	return hashes, nil
}

func (s *FileStore) Save(hashes map[string]string) error {
	data, err := yaml.Marshal(hashes)
	if err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}
	return utils.WriteFileVFS(s.fs, s.path, data)
}

// OpenStore returns the backend named by cache_backend.
func OpenStore(fs afero.Fs, backend, path string) (HashStore, error) {
	switch backend {
	case "", "file":
		return NewFileStore(fs, path), nil
	case "bolt":
		return NewBoltStore(path), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", backend)
	}
}
