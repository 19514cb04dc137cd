package coordinator

import (
	"github.com/flowstack/mrword/internal/queue"
	"github.com/flowstack/mrword/internal/registry"
)

// RegisterEngine implements spec.md §4.4 RegisterEngine: unconditionally
// stores or overwrites the worker entry. Always succeeds.
func (c *Coordinator) RegisterEngine(engineID string, role registry.Role, capacity int) (message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	c.registry.Register(engineID, role, capacity, now)
	c.addLog("engine %s registered as %s with capacity %d", engineID, role, capacity)
	return "engine " + engineID + " registered successfully"
}

// TaskType discriminates a FetchJob response (spec.md §4.4).
type TaskType string

const (
	TaskNone   TaskType = "none"
	TaskMap    TaskType = "map"
	TaskReduce TaskType = "reduce"
)

// FetchResult is the outcome of a FetchJob call.
type FetchResult struct {
	TaskType   TaskType
	MapTask    queue.MapTask
	ReduceTask queue.ReduceTask
}

// FetchJob implements spec.md §4.4 FetchJob's dispatch policy: dequeue
// the head of the queue matching the worker's role, try_charge, and
// re-enqueue at the head on a failed charge. An unknown worker, a
// saturated worker, or a queue with no task matching the worker's role
// all yield TaskNone.
func (c *Coordinator) FetchJob(engineID string) FetchResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	w, ok := c.registry.Get(engineID)
	if !ok {
		return FetchResult{TaskType: TaskNone}
	}
	c.registry.Touch(engineID, c.clock.Now())

	if w.CurrentLoad >= w.Capacity {
		return FetchResult{TaskType: TaskNone}
	}

	switch w.Role {
	case registry.RoleMapper:
		task, ok := c.mapQ.Dequeue()
		if !ok {
			return FetchResult{TaskType: TaskNone}
		}
		if !c.registry.TryCharge(engineID) {
			c.mapQ.EnqueueFront(task)
			return FetchResult{TaskType: TaskNone}
		}
		c.addLog("map task assigned (job=%s, shard=%d) to %s", task.JobID, task.ShardID, engineID)
		return FetchResult{TaskType: TaskMap, MapTask: task}

	case registry.RoleReducer:
		task, ok := c.reduceQ.Dequeue()
		if !ok {
			return FetchResult{TaskType: TaskNone}
		}
		if !c.registry.TryCharge(engineID) {
			c.reduceQ.EnqueueFront(task)
			return FetchResult{TaskType: TaskNone}
		}
		c.addLog("reduce task assigned (job=%s, word=%s) to %s", task.JobID, task.Word, engineID)
		return FetchResult{TaskType: TaskReduce, ReduceTask: task}
	}

	return FetchResult{TaskType: TaskNone}
}

// ReportMapResult implements the map branch of spec.md §4.4 ReportResult:
// discharge the reporting worker's load, then record the shard's
// outputs. ok is false if jobID is unknown (the worker's result is
// dropped; its load is still discharged).
func (c *Coordinator) ReportMapResult(engineID, jobID string, shardID int, outputs map[string]int) (ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.registry.Touch(engineID, c.clock.Now())
	c.registry.Discharge(engineID)

	res, found := c.jobs.RecordMapResult(jobID, outputs, c.clock.Now())
	if !found {
		return false
	}
	c.addLog("map result received from %s (job=%s, shard=%d)", engineID, jobID, shardID)

	if res.TransitionedToReduce {
		// Enqueue in the deterministic first-seen order recorded by
		// RecordMapResult, not map iteration order, so reduce task
		// dispatch (and therefore the top_words tie-break) is
		// reproducible across runs (spec.md §8 S6).
		for _, word := range res.ReduceWords {
			c.reduceQ.Enqueue(queue.ReduceTask{JobID: jobID, Word: word, Counts: res.ReduceTasks[word]})
		}
		j, _ := c.jobs.Get(jobID)
		c.addLog("job %s entering REDUCE with %d tasks", jobID, j.NumReduceTasks)
	}
	return true
}

// ReportReduceResult implements the reduce branch of spec.md §4.4
// ReportResult: discharge the reporting worker's load, then record the
// word's total. ok is false if jobID is unknown.
func (c *Coordinator) ReportReduceResult(engineID, jobID, word string, total int) (ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.registry.Touch(engineID, c.clock.Now())
	c.registry.Discharge(engineID)

	res, found := c.jobs.RecordReduceResult(jobID, word, total, c.clock.Now())
	if !found {
		return false
	}
	c.addLog("reduce result received from %s (job=%s, word=%s, count=%d)", engineID, jobID, word, total)

	if res.TransitionedToDone {
		j, _ := c.jobs.Get(jobID)
		c.addLog("job %s DONE with %d unique words", jobID, len(j.ReduceResults))
	}
	return true
}
