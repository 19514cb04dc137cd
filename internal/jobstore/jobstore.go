// Package jobstore implements the coordinator's job records and the
// MAP -> REDUCE -> DONE lifecycle engine (spec.md §3 "Job", §4.3).
package jobstore

import (
	"sort"
	"time"
)

// Status is the closed three-value job status enum. spec.md §9 notes the
// source's transient "shuffle" label is an implementation artifact that
// should be dropped — MAP -> REDUCE is a single step here.
type Status string

const (
	StatusMap    Status = "map"
	StatusReduce Status = "reduce"
	StatusDone   Status = "done"
)

// BalancingStrategy is stored on a job but never consulted by dispatch
// (spec.md §4.3 step 7, §9 "Inert balancing strategy").
type BalancingStrategy string

const (
	StrategyRoundRobin  BalancingStrategy = "round_robin"
	StrategyLeastLoaded BalancingStrategy = "least_loaded"
)

// TopWord is one entry of a completed job's top-K summary (spec.md §3
// "top_words").
type TopWord struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// TopK is the number of highest-count words retained on completion
// (spec.md GLOSSARY "Top-K").
const TopK = 10

// Job is one JobRecord (spec.md §3 "Job").
type Job struct {
	JobID             string
	Text              string
	Status            Status
	BalancingStrategy BalancingStrategy

	NumShards       int
	CompletedShards int
	MapResults      map[string][]int // word -> partial counts (spec.md §9 open question)

	NumReduceTasks       int
	CompletedReduceTasks int
	ReduceResults        map[string]int

	TopWords []TopWord // nil until Done

	CreatedAt   time.Time
	CompletedAt time.Time // zero value until Done
}

// insertionOrder records each word's first arrival in MapResults (noted by
// RecordMapResult) to give top_words a
// deterministic tie-break (spec.md §3 "stable tie-break on insertion
// order"). It lives alongside Job rather than inside it because it is
// bookkeeping, not part of the externally observable record.
type insertionOrder struct {
	seq map[string]int
	n   int
}

func newInsertionOrder() *insertionOrder { return &insertionOrder{seq: make(map[string]int)} }

func (o *insertionOrder) note(word string) {
	if _, ok := o.seq[word]; !ok {
		o.seq[word] = o.n
		o.n++
	}
}

// words returns every noted word ordered by first-seen sequence number.
func (o *insertionOrder) words() []string {
	out := make([]string, len(o.seq))
	for w, i := range o.seq {
		out[i] = w
	}
	return out
}

// Store is the job_id -> Job map plus lifecycle transitions. Callers must
// hold the coordinator's lock around every method (spec.md §5).
type Store struct {
	jobs  map[string]*Job
	order map[string]*insertionOrder
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		jobs:  make(map[string]*Job),
		order: make(map[string]*insertionOrder),
	}
}

// Create inserts a new Job in MAP phase with zeroed counters (spec.md
// §4.3 step 4). numShards == 0 transitions the job directly to DONE with
// an empty top_words (spec.md §4.3 step 3, §7 "Input with zero words").
func (s *Store) Create(jobID, text string, numShards int, strategy BalancingStrategy, now time.Time) *Job {
	j := &Job{
		JobID:             jobID,
		Text:              text,
		Status:            StatusMap,
		BalancingStrategy: strategy,
		NumShards:         numShards,
		MapResults:        make(map[string][]int),
		ReduceResults:     make(map[string]int),
		CreatedAt:         now,
	}
	s.jobs[jobID] = j
	s.order[jobID] = newInsertionOrder()

	if numShards == 0 {
		j.Status = StatusDone
		j.CompletedAt = now
		j.TopWords = []TopWord{}
	}
	return j
}

// Get returns the job for jobID, and whether it is known.
func (s *Store) Get(jobID string) (*Job, bool) {
	j, ok := s.jobs[jobID]
	return j, ok
}

// All returns every job. Order is not stable across calls.
func (s *Store) All() []*Job {
	out := make([]*Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, j)
	}
	return out
}

// Len returns the number of jobs in the store.
func (s *Store) Len() int { return len(s.jobs) }

// RecordMapResultResult reports what happened to the job's phase after a
// map result was recorded, so the caller (internal/coordinator) can seed
// the reduce queue outside the job store's own bookkeeping.
type RecordMapResultResult struct {
	TransitionedToReduce bool
	ReduceWords          []string         // deterministic first-seen order, only set when TransitionedToReduce
	ReduceTasks          map[string][]int // word -> counts, only set when TransitionedToReduce
}

// RecordMapResult applies one shard's map outputs (spec.md §4.3
// record_map_result). ok is false if jobID is unknown.
//
// outputs is a Go map and iterates in randomized order, so words are
// sorted before being folded into MapResults and the insertion-order
// tracker: this keeps word first-seen order (and therefore reduce queue
// seeding order and the top_words tie-break) deterministic across runs,
// mirroring the Python original's insertion-ordered dict (spec.md §8 S6).
func (s *Store) RecordMapResult(jobID string, outputs map[string]int, now time.Time) (RecordMapResultResult, bool) {
	j, ok := s.jobs[jobID]
	if !ok {
		return RecordMapResultResult{}, false
	}

	j.CompletedShards++
	words := make([]string, 0, len(outputs))
	for word := range outputs {
		words = append(words, word)
	}
	sort.Strings(words)

	order := s.order[jobID]
	for _, word := range words {
		j.MapResults[word] = append(j.MapResults[word], outputs[word])
		order.note(word)
	}

	var res RecordMapResultResult
	if j.CompletedShards == j.NumShards {
		res.TransitionedToReduce = true
		res.ReduceWords = order.words()
		res.ReduceTasks = j.MapResults
		j.NumReduceTasks = len(j.MapResults)
		j.Status = StatusReduce
	}
	return res, true
}

// RecordReduceResultResult reports whether the job transitioned to DONE.
type RecordReduceResultResult struct {
	TransitionedToDone bool
}

// RecordReduceResult applies one word's reduce total (spec.md §4.3
// record_reduce_result). ok is false if jobID is unknown.
func (s *Store) RecordReduceResult(jobID, word string, total int, now time.Time) (RecordReduceResultResult, bool) {
	j, ok := s.jobs[jobID]
	if !ok {
		return RecordReduceResultResult{}, false
	}

	j.ReduceResults[word] = total
	j.CompletedReduceTasks++

	var res RecordReduceResultResult
	if j.CompletedReduceTasks == j.NumReduceTasks {
		res.TransitionedToDone = true
		j.Status = StatusDone
		j.CompletedAt = now
		j.TopWords = topWords(j.ReduceResults, s.order[jobID])
	}
	return res, true
}

// topWords sorts reduceResults by count descending, breaking ties by
// insertion order, and returns the first TopK (spec.md §3 invariant 6,
// §8 property 3).
func topWords(reduceResults map[string]int, order *insertionOrder) []TopWord {
	words := make([]TopWord, 0, len(reduceResults))
	for w, c := range reduceResults {
		words = append(words, TopWord{Word: w, Count: c})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return order.seq[words[i].Word] < order.seq[words[j].Word]
	})
	if len(words) > TopK {
		words = words[:TopK]
	}
	return words
}

// DurationSeconds returns the job's completion duration, or nil if the
// job has not completed (spec.md §6 JobResponse.duration_seconds).
func (j *Job) DurationSeconds() *float64 {
	if j.CompletedAt.IsZero() {
		return nil
	}
	d := j.CompletedAt.Sub(j.CreatedAt).Seconds()
	return &d
}
