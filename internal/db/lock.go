package db

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

// lockRetry is how often a blocked Lock retries.
const lockRetry = 50 * time.Millisecond

// Lock takes an exclusive file lock next to the database file, so that only
// one process at a time runs first-start work (schema creation, seeding).
// The returned function releases the lock.
func Lock(ctx context.Context, path string) (func() error, error) {
	fl := flock.New(path + ".lock")

	ok, err := fl.TryLockContext(ctx, lockRetry)
	if err != nil {
		return nil, fmt.Errorf("locking %s: %w", fl.Path(), err)
	}
	if !ok {
		return nil, fmt.Errorf("locking %s: not acquired", fl.Path())
	}

	return fl.Unlock, nil
}
