package coordinator

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/flowstack/mrword/internal/jobstore"
	"github.com/flowstack/mrword/internal/queue"
	"github.com/flowstack/mrword/internal/tokenize"
)

// JobView is an immutable snapshot of a Job's externally observable
// fields, taken while holding the coordinator's lock. Callers (the HTTP
// layer) read it after the lock is released, so it must never alias
// mutable state — a live *jobstore.Job read after unlock would race with
// concurrent RecordMapResult/RecordReduceResult writers and could violate
// spec.md §5's "transitions appear atomic to any observer" (a torn read
// of TopWords could also panic, which spec.md §8 forbids on valid input).
type JobView struct {
	JobID           string
	Status          jobstore.Status
	TextLength      int
	NumShards       int
	TopWords        []jobstore.TopWord // nil until Done, matching Job.TopWords
	CreatedAt       time.Time
	CompletedAt     time.Time // zero value until Done
	DurationSeconds *float64
}

func toJobView(j *jobstore.Job) JobView {
	var topWords []jobstore.TopWord
	if j.TopWords != nil {
		topWords = make([]jobstore.TopWord, len(j.TopWords))
		copy(topWords, j.TopWords)
	}
	return JobView{
		JobID:           j.JobID,
		Status:          j.Status,
		TextLength:      len(j.Text),
		NumShards:       j.NumShards,
		TopWords:        topWords,
		CreatedAt:       j.CreatedAt,
		CompletedAt:     j.CompletedAt,
		DurationSeconds: j.DurationSeconds(),
	}
}

// CreateJob implements spec.md §4.3 create_job: tokenizes text, shards
// it, inserts the JobRecord, seeds map_queue, and best-effort persists a
// summary. The requested strategy is stored but never consulted by
// dispatch (spec.md §9).
func (c *Coordinator) CreateJob(ctx context.Context, text string, strategy jobstore.BalancingStrategy) JobView {
	if strategy == "" {
		strategy = jobstore.StrategyRoundRobin
	}

	words := tokenize.Words(text)
	shards := tokenize.Shards(words)

	c.mu.Lock()
	jobID := uuid.NewString()
	now := c.clock.Now()
	job := c.jobs.Create(jobID, text, len(shards), strategy, now)
	for _, shard := range shards {
		c.mapQ.Enqueue(queue.MapTask{JobID: jobID, ShardID: shard.ShardID, ShardText: shard.Text})
	}
	c.addLog("job %s created with %d shards", jobID, len(shards))
	sink := c.sink
	view := toJobView(job)
	c.mu.Unlock()

	// Persistence happens outside the lock: best-effort, failure logged,
	// never blocks job progress (spec.md §5, §7).
	if sink != nil {
		summary := JobSummary{
			JobID:      jobID,
			TextLength: len(text),
			NumShards:  len(shards),
			Status:     string(jobstore.StatusMap),
			CreatedAt:  now,
		}
		if err := sink.InsertJobSummary(ctx, summary); err != nil {
			c.logger.Error().Err(err).Str("job_id", jobID).Msg("persistence sink insert failed")
		}
	}

	return view
}

// GetJob returns a snapshot of the job for jobID, or ErrJobNotFound if no
// such job exists (spec.md §7 "Unknown job on GET /jobs/{id}").
func (c *Coordinator) GetJob(jobID string) (JobView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	job, ok := c.jobs.Get(jobID)
	if !ok {
		return JobView{}, ErrJobNotFound
	}
	return toJobView(job), nil
}

// ListJobs returns a snapshot of every job. Order is not stable across
// calls.
func (c *Coordinator) ListJobs() []JobView {
	c.mu.Lock()
	defer c.mu.Unlock()
	jobs := c.jobs.All()
	out := make([]JobView, len(jobs))
	for i, j := range jobs {
		out[i] = toJobView(j)
	}
	return out
}

// JobCount returns the total number of jobs and how many are not yet
// Done (spec.md §6 "stats").
func (c *Coordinator) JobCount() (total, active int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	jobs := c.jobs.All()
	total = len(jobs)
	for _, j := range jobs {
		if j.Status != jobstore.StatusDone {
			active++
		}
	}
	return total, active
}
