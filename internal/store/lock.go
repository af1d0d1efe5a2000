package store

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

var ErrLocked = errors.New("data dir is in use by another engine")

// LockDataDir takes an exclusive lock on dir/jobboard.lock. The caller must
// Unlock the returned lock on shutdown.
func LockDataDir(dir string) (*flock.Flock, error) {
	path := filepath.Join(dir, "jobboard.lock")
	fl := flock.New(path)

	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("lock %s: %w", path, ErrLocked)
	}
	return fl, nil
}
