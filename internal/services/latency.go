package services

import (
	"context"
	"time"
)

// latency simulates remote I/O inside the mock service layer. A zero delay
// (tests) returns immediately; otherwise the wait is cancellable.
type latency struct {
	delay time.Duration
}

func (l latency) simulate(ctx context.Context) error {
	if l.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(l.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
