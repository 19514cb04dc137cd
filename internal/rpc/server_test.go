package rpc

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/flowstack/mrword/internal/coordinator"
	"github.com/flowstack/mrword/internal/jobstore"
	"github.com/flowstack/mrword/internal/rpc/jobspb"
)

func newTestServer() *Server {
	coord := coordinator.New(coordinator.RealClock{}, nil, 15*time.Second, zerolog.New(io.Discard))
	return NewServer(coord, zerolog.New(io.Discard))
}

func TestRegisterEngine_AlwaysSucceeds(t *testing.T) {
	s := newTestServer()
	reply, err := s.RegisterEngine(context.Background(), &jobspb.RegisterEngineRequest{
		EngineId: "mapper-1", Role: "mapper", Capacity: 2,
	})
	require.NoError(t, err)
	require.True(t, reply.Success)
}

func TestFetchJob_UnknownEngineYieldsNone(t *testing.T) {
	s := newTestServer()
	reply, err := s.FetchJob(context.Background(), &jobspb.FetchJobRequest{EngineId: "ghost"})
	require.NoError(t, err)
	require.Equal(t, "none", reply.TaskType)
	require.Nil(t, reply.MapTask)
	require.Nil(t, reply.ReduceTask)
}

func TestFullDispatchRoundTrip(t *testing.T) {
	s := newTestServer()
	job := s.coord.CreateJob(context.Background(), "hello hello world", jobstore.StrategyRoundRobin)

	_, err := s.RegisterEngine(context.Background(), &jobspb.RegisterEngineRequest{
		EngineId: "mapper-1", Role: "mapper", Capacity: 1,
	})
	require.NoError(t, err)

	fetchReply, err := s.FetchJob(context.Background(), &jobspb.FetchJobRequest{EngineId: "mapper-1"})
	require.NoError(t, err)
	require.Equal(t, "map", fetchReply.TaskType)
	require.NotNil(t, fetchReply.MapTask)
	require.Equal(t, job.JobID, fetchReply.MapTask.JobId)

	reportReply, err := s.ReportResult(context.Background(), &jobspb.ReportResultRequest{
		EngineId: "mapper-1",
		JobId:    job.JobID,
		TaskType: "map",
		ShardId:  fetchReply.MapTask.ShardId,
		MapOutputs: map[string]int32{
			"hello": 2,
			"world": 1,
		},
	})
	require.NoError(t, err)
	require.True(t, reportReply.Success)

	updated, err := s.coord.GetJob(job.JobID)
	require.NoError(t, err)
	require.Equal(t, jobstore.StatusReduce, updated.Status)
}

func TestReportResult_UnknownJobReturnsFailure(t *testing.T) {
	s := newTestServer()
	_, err := s.RegisterEngine(context.Background(), &jobspb.RegisterEngineRequest{
		EngineId: "mapper-1", Role: "mapper", Capacity: 1,
	})
	require.NoError(t, err)

	reply, err := s.ReportResult(context.Background(), &jobspb.ReportResultRequest{
		EngineId: "mapper-1",
		JobId:    "ghost-job",
		TaskType: "map",
	})
	require.NoError(t, err)
	require.False(t, reply.Success)
	require.Equal(t, "job not found", reply.Message)
}
