package persistence

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/flowstack/mrword/internal/coordinator"
)

func newTestSink(t *testing.T) *SQLiteSink {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "mrword.db")
	sink, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sink.Close() })
	return sink
}

func TestInsertJobSummary_RoundTrip(t *testing.T) {
	sink := newTestSink(t)
	ctx := context.Background()

	summary := coordinator.JobSummary{
		JobID:      "job-1",
		TextLength: 42,
		NumShards:  1,
		Status:     "map",
		CreatedAt:  time.Now().Truncate(time.Second),
	}
	require.NoError(t, sink.InsertJobSummary(ctx, summary))

	var gotStatus string
	var gotShards int
	row := sink.db.QueryRowContext(ctx, "SELECT status, num_shards FROM job_summaries WHERE job_id = ?", "job-1")
	require.NoError(t, row.Scan(&gotStatus, &gotShards))
	require.Equal(t, "map", gotStatus)
	require.Equal(t, 1, gotShards)
}

func TestInsertJobSummary_UpsertOnConflict(t *testing.T) {
	sink := newTestSink(t)
	ctx := context.Background()

	base := coordinator.JobSummary{JobID: "job-1", TextLength: 10, NumShards: 1, Status: "map", CreatedAt: time.Now()}
	require.NoError(t, sink.InsertJobSummary(ctx, base))

	base.Status = "done"
	require.NoError(t, sink.InsertJobSummary(ctx, base))

	var gotStatus string
	row := sink.db.QueryRowContext(ctx, "SELECT status FROM job_summaries WHERE job_id = ?", "job-1")
	require.NoError(t, row.Scan(&gotStatus))
	require.Equal(t, "done", gotStatus)
}
