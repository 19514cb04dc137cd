package coordinator

import (
	"time"

	"github.com/flowstack/mrword/internal/jobstore"
	"github.com/flowstack/mrword/internal/registry"
)

// Stats is the aggregate counters reported by GET /api/stats (spec.md §6).
type Stats struct {
	TotalEngines    int
	Mappers         int
	Reducers        int
	MapQueueSize    int
	ReduceQueueSize int
	TotalJobs       int
	ActiveJobs      int
}

// GetStats computes the aggregate counters under the coordinator's lock.
func (c *Coordinator) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	mappers, reducers := c.registry.Counts()
	total, active := 0, 0
	for _, j := range c.jobs.All() {
		total++
		if j.Status != jobstore.StatusDone {
			active++
		}
	}

	return Stats{
		TotalEngines:    c.registry.Len(),
		Mappers:         mappers,
		Reducers:        reducers,
		MapQueueSize:    c.mapQ.Len(),
		ReduceQueueSize: c.reduceQ.Len(),
		TotalJobs:       total,
		ActiveJobs:      active,
	}
}

// Engines returns a snapshot of every registered worker (spec.md §6 GET
// /api/engines). Workers are copied by value while the lock is held so
// the HTTP handler's later field reads can never race a concurrent
// Touch/TryCharge/Discharge on the live *registry.Worker (spec.md §5).
func (c *Coordinator) Engines() []registry.Worker {
	c.mu.Lock()
	defer c.mu.Unlock()
	workers := c.registry.All()
	out := make([]registry.Worker, len(workers))
	for i, w := range workers {
		out[i] = *w
	}
	return out
}

// Now exposes the coordinator's clock so callers (the HTTP surface's
// EngineInfo.status derivation) compute liveness against the same time
// source the sweeper uses, rather than a fresh time.Now().
func (c *Coordinator) Now() time.Time {
	return c.clock.Now()
}
