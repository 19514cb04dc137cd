// Package coordinator ties together the registry, task queues, job
// store, and activity log behind a single mutex (spec.md §5), and
// implements the dispatch protocol (spec.md §4.4) that mediates every
// worker interaction with that state.
//
// A Coordinator has no mechanism to detect that a worker fetched but
// never reported a task (spec.md §9 "Lost-task recovery"); a task handed
// out and never reported leaves its job stalled in MAP or REDUCE forever.
// This is a documented limitation, not an oversight.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/flowstack/mrword/internal/activitylog"
	"github.com/flowstack/mrword/internal/jobstore"
	"github.com/flowstack/mrword/internal/queue"
	"github.com/flowstack/mrword/internal/registry"
)

// ErrJobNotFound is returned by GetJob for an unknown job ID (spec.md §7
// "Unknown job on GET /jobs/{id}"). Unknown-worker and capacity-exhausted
// conditions are not errors per spec.md §7 — FetchJob reports them as a
// silent TaskNone result instead.
var ErrJobNotFound = errors.New("job not found")

// Sink persists a best-effort job summary on creation (spec.md §6
// "Persistence sink interface"). Failure is logged and swallowed by the
// caller — Sink implementations should not be expected to retry.
type Sink interface {
	InsertJobSummary(ctx context.Context, summary JobSummary) error
}

// JobSummary is the one record shape the persistence sink accepts
// (spec.md §6).
type JobSummary struct {
	JobID      string
	TextLength int
	NumShards  int
	Status     string
	CreatedAt  time.Time
}

// Clock lets tests substitute a deterministic time source. Production
// callers use RealClock.
type Clock interface{ Now() time.Time }

// RealClock wraps time.Now.
type RealClock struct{}

// Now returns the current wall-clock time.
func (RealClock) Now() time.Time { return time.Now() }

// Coordinator owns every piece of mutable coordinator state described in
// spec.md §2 behind a single sync.Mutex, matching spec.md §5's simplest
// correct strategy.
type Coordinator struct {
	mu sync.Mutex

	registry *registry.Registry
	mapQ     *queue.MapQueue
	reduceQ  *queue.ReduceQueue
	jobs     *jobstore.Store
	log      *activitylog.Log

	clock Clock
	sink  Sink
	logger zerolog.Logger

	deadThreshold time.Duration
}

// New constructs a Coordinator. sink may be nil, in which case job
// creation skips persistence entirely (equivalent to spec.md §6's "null
// implementation").
func New(clock Clock, sink Sink, deadThreshold time.Duration, logger zerolog.Logger) *Coordinator {
	if clock == nil {
		clock = RealClock{}
	}
	return &Coordinator{
		registry:      registry.New(),
		mapQ:          queue.NewMapQueue(),
		reduceQ:       queue.NewReduceQueue(),
		jobs:          jobstore.New(),
		log:           activitylog.New(),
		clock:         clock,
		sink:          sink,
		logger:        logger,
		deadThreshold: deadThreshold,
	}
}

func (c *Coordinator) addLog(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	c.log.Add(c.clock.Now(), msg)
	c.logger.Info().Msg(msg)
}

// RecentLogs returns the last n activity log entries (spec.md §4.6).
func (c *Coordinator) RecentLogs(n int) []activitylog.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.log.Recent(n)
}
