package coordinator

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/flowstack/mrword/internal/jobstore"
	"github.com/flowstack/mrword/internal/registry"
)

// fakeClock lets tests control time deterministically instead of racing
// against time.Now().
type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time         { return f.now }
func (f *fakeClock) advance(d time.Duration) { f.now = f.now.Add(d) }

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func newTestCoordinator() (*Coordinator, *fakeClock) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	c := New(clock, nil, 15*time.Second, testLogger())
	return c, clock
}

// getJob re-fetches jobID's current snapshot. GetJob, not a stale local
// JobView, is how a caller observes state change after a mutation.
func getJob(t *testing.T, c *Coordinator, jobID string) JobView {
	t.Helper()
	job, err := c.GetJob(jobID)
	require.NoError(t, err)
	return job
}

func TestCreateJob_SingleShardSingleWorker(t *testing.T) {
	// S1 from spec.md §8: "hello hello world", one worker of each role.
	c, _ := newTestCoordinator()
	ctx := context.Background()

	job := c.CreateJob(ctx, "hello hello world", jobstore.StrategyRoundRobin)
	require.Equal(t, jobstore.StatusMap, job.Status)
	require.Equal(t, 1, job.NumShards)

	c.RegisterEngine("mapper-1", registry.RoleMapper, 1)
	c.RegisterEngine("reducer-1", registry.RoleReducer, 1)

	fetched := c.FetchJob("mapper-1")
	require.Equal(t, TaskMap, fetched.TaskType)
	require.Equal(t, job.JobID, fetched.MapTask.JobID)

	ok := c.ReportMapResult("mapper-1", job.JobID, fetched.MapTask.ShardID, map[string]int{"hello": 2, "world": 1})
	require.True(t, ok)
	require.Equal(t, jobstore.StatusReduce, getJob(t, c, job.JobID).Status)

	for i := 0; i < 2; i++ {
		fr := c.FetchJob("reducer-1")
		require.Equal(t, TaskReduce, fr.TaskType)
		total := 0
		for _, n := range fr.ReduceTask.Counts {
			total += n
		}
		ok := c.ReportReduceResult("reducer-1", job.JobID, fr.ReduceTask.Word, total)
		require.True(t, ok)
	}

	done := getJob(t, c, job.JobID)
	require.Equal(t, jobstore.StatusDone, done.Status)
	require.Equal(t, []jobstore.TopWord{{Word: "hello", Count: 2}, {Word: "world", Count: 1}}, done.TopWords)
}

func TestCreateJob_EmptyInputCompletesImmediately(t *testing.T) {
	// spec.md §7 "Input with zero words".
	c, _ := newTestCoordinator()
	job := c.CreateJob(context.Background(), "", jobstore.StrategyRoundRobin)
	require.Equal(t, jobstore.StatusDone, job.Status)
	require.Equal(t, []jobstore.TopWord{}, job.TopWords)
}

func TestFetchJob_UnknownEngineYieldsNone(t *testing.T) {
	c, _ := newTestCoordinator()
	c.CreateJob(context.Background(), "hello world", jobstore.StrategyRoundRobin)

	fetched := c.FetchJob("ghost")
	require.Equal(t, TaskNone, fetched.TaskType)
}

func TestFetchJob_CapacityGating(t *testing.T) {
	// spec.md §4.4: a saturated worker never receives a task, and the task
	// stays queued for the next worker with spare capacity.
	c, _ := newTestCoordinator()
	job := c.CreateJob(context.Background(), "alpha beta", jobstore.StrategyRoundRobin)
	require.Equal(t, 1, job.NumShards)

	c.RegisterEngine("mapper-1", registry.RoleMapper, 0)
	fetched := c.FetchJob("mapper-1")
	require.Equal(t, TaskNone, fetched.TaskType)

	c.RegisterEngine("mapper-2", registry.RoleMapper, 1)
	fetched = c.FetchJob("mapper-2")
	require.Equal(t, TaskMap, fetched.TaskType)
	require.Equal(t, job.JobID, fetched.MapTask.JobID)
}

func TestFetchJob_RoleMismatchYieldsNone(t *testing.T) {
	c, _ := newTestCoordinator()
	c.CreateJob(context.Background(), "hello world", jobstore.StrategyRoundRobin)

	c.RegisterEngine("reducer-1", registry.RoleReducer, 1)
	fetched := c.FetchJob("reducer-1")
	require.Equal(t, TaskNone, fetched.TaskType)
}

func TestReportMapResult_UnknownJobDropsResultButStillDischarges(t *testing.T) {
	c, _ := newTestCoordinator()
	c.RegisterEngine("mapper-1", registry.RoleMapper, 1)

	// manually charge so Discharge has something to undo
	w, ok := c.registry.Get("mapper-1")
	require.True(t, ok)
	require.True(t, c.registry.TryCharge("mapper-1"))
	require.Equal(t, 1, w.CurrentLoad)

	ok = c.ReportMapResult("mapper-1", "ghost-job", 0, map[string]int{"a": 1})
	require.False(t, ok)
	require.Equal(t, 0, w.CurrentLoad)
}

func TestSweep_EvictsWorkerPastDeadThreshold(t *testing.T) {
	// spec.md §4.5 "Liveness sweep", S4-style worker churn scenario.
	c, clock := newTestCoordinator()
	c.RegisterEngine("mapper-1", registry.RoleMapper, 1)

	clock.advance(16 * time.Second)
	c.sweep()

	_, ok := c.registry.Get("mapper-1")
	require.False(t, ok)
}

func TestSweep_BoundaryNotEvicted(t *testing.T) {
	c, clock := newTestCoordinator()
	c.RegisterEngine("mapper-1", registry.RoleMapper, 1)

	clock.advance(15 * time.Second)
	c.sweep()

	_, ok := c.registry.Get("mapper-1")
	require.True(t, ok)
}

func TestMultiShardJob_ReduceQueueSeededOnlyAfterAllShardsArrive(t *testing.T) {
	c, _ := newTestCoordinator()
	ctx := context.Background()

	words := make([]byte, 0, 250)
	for i := 0; i < 250; i++ {
		words = append(words, 'a', ' ')
	}
	job := c.CreateJob(ctx, string(words), jobstore.StrategyRoundRobin)
	require.True(t, job.NumShards > 1)

	c.RegisterEngine("mapper-1", registry.RoleMapper, job.NumShards)
	c.RegisterEngine("reducer-1", registry.RoleReducer, 1)

	for i := 0; i < job.NumShards-1; i++ {
		fr := c.FetchJob("mapper-1")
		require.Equal(t, TaskMap, fr.TaskType)
		c.ReportMapResult("mapper-1", job.JobID, fr.MapTask.ShardID, map[string]int{"a": 1})
		require.Equal(t, jobstore.StatusMap, getJob(t, c, job.JobID).Status)

		rf := c.FetchJob("reducer-1")
		require.Equal(t, TaskNone, rf.TaskType)
	}

	fr := c.FetchJob("mapper-1")
	c.ReportMapResult("mapper-1", job.JobID, fr.MapTask.ShardID, map[string]int{"a": 1})
	require.Equal(t, jobstore.StatusReduce, getJob(t, c, job.JobID).Status)

	rf := c.FetchJob("reducer-1")
	require.Equal(t, TaskReduce, rf.TaskType)
	require.Equal(t, "a", rf.ReduceTask.Word)
	require.Len(t, rf.ReduceTask.Counts, job.NumShards)
}

func TestEndToEnd_MassConservation(t *testing.T) {
	// spec.md §8 property 4: total counted words equal the token count of
	// the original input, carried intact through map then reduce.
	c, _ := newTestCoordinator()
	ctx := context.Background()

	job := c.CreateJob(ctx, "hello hello world", jobstore.StrategyRoundRobin)
	c.RegisterEngine("mapper-1", registry.RoleMapper, 1)
	c.RegisterEngine("reducer-1", registry.RoleReducer, 2)

	fr := c.FetchJob("mapper-1")
	require.Equal(t, TaskMap, fr.TaskType)
	c.ReportMapResult("mapper-1", job.JobID, fr.MapTask.ShardID, map[string]int{"hello": 2, "world": 1})

	total := 0
	for getJob(t, c, job.JobID).Status != jobstore.StatusDone {
		rf := c.FetchJob("reducer-1")
		require.Equal(t, TaskReduce, rf.TaskType)
		sum := 0
		for _, n := range rf.ReduceTask.Counts {
			sum += n
		}
		total += sum
		c.ReportReduceResult("reducer-1", job.JobID, rf.ReduceTask.Word, sum)
	}

	require.Equal(t, 3, total)
}

func TestRecentLogs_ReflectsActivity(t *testing.T) {
	c, _ := newTestCoordinator()
	c.RegisterEngine("mapper-1", registry.RoleMapper, 1)
	c.CreateJob(context.Background(), "hello world", jobstore.StrategyRoundRobin)

	logs := c.RecentLogs(10)
	require.NotEmpty(t, logs)
}
