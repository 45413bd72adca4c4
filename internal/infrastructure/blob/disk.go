package blob

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"file-manager-api/internal/application/ports"
)

// Store keeps originals and thumbnail variants as flat files under a
// configured root. Names are random uuids, so a path handed out once is
// never assigned to another record.
type Store struct {
	log  *zap.Logger
	root string
}

func New(logger *zap.Logger, root string) (ports.BlobStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}

	return &Store{log: logger, root: root}, nil
}

func (s *Store) Write(data []byte) (string, error) {
	path := filepath.Join(s.root, uuid.NewString())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}

	return path, nil
}

func (s *Store) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (s *Store) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteAt persists data at an exact path, overwriting any previous
// content. The thumbnail worker uses it for width-suffixed variants so
// redelivered jobs overwrite instead of duplicating.
func (s *Store) WriteAt(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
