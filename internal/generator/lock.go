package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

const (
	defaultLockTimeout = 30 * time.Second
	lockRetryDelay     = 100 * time.Millisecond
)

// lockTarget takes an exclusive lock on target+".lock" so that two build
// steps generating the same artifacts do not interleave their writes.
func lockTarget(ctx context.Context, target string, timeout time.Duration) (func(), error) {
	if timeout <= 0 {
		timeout = defaultLockTimeout
	}
	fl := flock.New(target + ".lock")
	ctx, cancel := context.WithTimeout(ctx, timeout)
	unlock := func() {
		cancel()
		_ = fl.Unlock()
	}

	locked, err := fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		unlock()
		return nil, fmt.Errorf("lock %s: %w", fl.Path(), err)
	}
	if !locked {
		unlock()
		return nil, fmt.Errorf("lock %s: held by another process", fl.Path())
	}
	return unlock, nil
}
