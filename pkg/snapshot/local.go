package snapshot

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// snapExt is the file extension of stored snapshots.
const snapExt = ".snap.html"

// LocalStore keeps snapshots as files under a directory. Writes go
// through a uniquely named temp file and a rename, so a crashed test
// run never leaves a half-written golden behind.
type LocalStore struct {
	dir string
	log *logrus.Entry
}

// NewLocalStore creates a store rooted at dir. The directory is created
// lazily on first save.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{
		dir: dir,
		log: logrus.WithField("component", "snapshot.local"),
	}
}

// Load implements Store.
func (s *LocalStore) Load(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save implements Store.
func (s *LocalStore) Save(_ context.Context, name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path(name)), 0o755); err != nil {
		return err
	}
	tmp := s.path(name) + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		os.Remove(tmp)
		return err
	}
	s.log.WithField("name", name).Debug("snapshot written")
	return nil
}

// Delete implements Store.
func (s *LocalStore) Delete(_ context.Context, name string) error {
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *LocalStore) path(name string) string {
	return filepath.Join(s.dir, name+snapExt)
}
