package api

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Limiter bounds how many renders run at once. Each render costs one unit.
type Limiter struct {
	sem  *semaphore.Weighted
	size int64
}

// NewLimiter allows up to n concurrent renders; n below 1 is treated as 1.
func NewLimiter(n int) *Limiter {
	if n < 1 {
		n = 1
	}
	return &Limiter{sem: semaphore.NewWeighted(int64(n)), size: int64(n)}
}

// Acquire blocks until a slot is free or ctx is done.
func (l *Limiter) Acquire(ctx context.Context) error {
	return l.sem.Acquire(ctx, 1)
}

// Release frees a slot taken by Acquire.
func (l *Limiter) Release() {
	l.sem.Release(1)
}

// Size reports the configured concurrency.
func (l *Limiter) Size() int {
	return int(l.size)
}
