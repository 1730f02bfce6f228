// Package lock provides the named, non-blocking locks that keep two writers from re-indexing the same
// entity and site at the same time.
package lock

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_locker.go -package=mocks searchindex/internal/lock Locker

import (
	"context"
	"fmt"
	"sync"
)

// Locker acquires and releases named locks without waiting.
type Locker interface {
	// TryAcquire takes the lock if it is free. It returns false, without error, when the lock is held.
	TryAcquire(ctx context.Context, key string) (bool, error)
	// Release frees a lock taken with TryAcquire.
	Release(ctx context.Context, key string) error
}

// Key returns the lock name for an entity on a site.
func Key(entityID, siteID int64) string {
	return fmt.Sprintf("searchindex:%d:%d", entityID, siteID)
}

// MemoryLocker is a Locker for a single process.
type MemoryLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewMemoryLocker creates a new MemoryLocker.
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{held: make(map[string]struct{})}
}

// TryAcquire takes the lock if no one holds it.
func (l *MemoryLocker) TryAcquire(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[key]; ok {
		return false, nil
	}
	l.held[key] = struct{}{}
	return true, nil
}

// Release frees the lock. Releasing a lock that is not held is a no-op.
func (l *MemoryLocker) Release(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.held, key)
	return nil
}
