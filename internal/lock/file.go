package lock

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"
)

// FileLocker is a Locker shared by every process on a host, backed by one lock file per key.
type FileLocker struct {
	dir string

	mu    sync.Mutex
	locks map[string]*flock.Flock
}

// NewFileLocker creates a FileLocker that keeps its lock files in dir, creating it if needed.
func NewFileLocker(dir string) (*FileLocker, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	return &FileLocker{dir: dir, locks: make(map[string]*flock.Flock)}, nil
}

// TryAcquire takes the file lock for key if no process holds it.
func (l *FileLocker) TryAcquire(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// flock locks are per file descriptor, so a second acquire in this process must be refused here.
	if _, ok := l.locks[key]; ok {
		return false, nil
	}

	fl := flock.New(l.path(key))
	locked, err := fl.TryLock()
	if err != nil {
		return false, fmt.Errorf("cannot acquire lock %s: %w", key, err)
	}
	if !locked {
		return false, nil
	}

	l.locks[key] = fl
	return true, nil
}

// Release unlocks the file lock for key. The lock file itself is left in place.
func (l *FileLocker) Release(_ context.Context, key string) error {
	l.mu.Lock()
	fl, ok := l.locks[key]
	delete(l.locks, key)
	l.mu.Unlock()

	if !ok {
		return nil
	}
	if err := fl.Unlock(); err != nil {
		return fmt.Errorf("cannot release lock %s: %w", key, err)
	}
	return nil
}

func (l *FileLocker) path(key string) string {
	return filepath.Join(l.dir, strings.ReplaceAll(key, ":", "-")+".lock")
}
