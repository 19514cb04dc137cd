package coordinator

import (
	"context"
	"time"
)

// StartSweeper launches a background goroutine that evicts workers whose
// LastSeen exceeds deadThreshold every interval (spec.md §4.5 "Liveness
// sweep"). It returns immediately; the goroutine exits when ctx is
// cancelled.
func (c *Coordinator) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// sweep evicts dead workers and logs each eviction (spec.md §4.5, §4.6).
func (c *Coordinator) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	dead := c.registry.Sweep(c.clock.Now(), c.deadThreshold)
	for _, engineID := range dead {
		c.addLog("engine %s evicted after missing heartbeat window", engineID)
	}
}
