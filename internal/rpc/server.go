// Package rpc adapts the coordinator's dispatch protocol (spec.md §4.4)
// to a gRPC service, listening on port 50051 by default (spec.md §6).
package rpc

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/flowstack/mrword/internal/coordinator"
	"github.com/flowstack/mrword/internal/queue"
	"github.com/flowstack/mrword/internal/registry"
	"github.com/flowstack/mrword/internal/rpc/jobspb"
)

// Server implements jobspb.JobDispatchServer over a *coordinator.Coordinator.
type Server struct {
	jobspb.UnimplementedJobDispatchServer

	coord  *coordinator.Coordinator
	logger zerolog.Logger
}

// NewServer returns a Server backed by coord.
func NewServer(coord *coordinator.Coordinator, logger zerolog.Logger) *Server {
	return &Server{coord: coord, logger: logger}
}

// RegisterEngine implements jobspb.JobDispatchServer.
func (s *Server) RegisterEngine(ctx context.Context, req *jobspb.RegisterEngineRequest) (*jobspb.RegisterEngineReply, error) {
	message := s.coord.RegisterEngine(req.GetEngineId(), registry.Role(req.GetRole()), int(req.GetCapacity()))
	return &jobspb.RegisterEngineReply{Success: true, Message: message}, nil
}

// FetchJob implements jobspb.JobDispatchServer.
func (s *Server) FetchJob(ctx context.Context, req *jobspb.FetchJobRequest) (*jobspb.FetchJobReply, error) {
	fetched := s.coord.FetchJob(req.GetEngineId())

	reply := &jobspb.FetchJobReply{TaskType: string(fetched.TaskType)}
	switch fetched.TaskType {
	case coordinator.TaskMap:
		reply.MapTask = mapTaskToPB(fetched.MapTask)
	case coordinator.TaskReduce:
		reply.ReduceTask = reduceTaskToPB(fetched.ReduceTask)
	}
	return reply, nil
}

// ReportResult implements jobspb.JobDispatchServer.
func (s *Server) ReportResult(ctx context.Context, req *jobspb.ReportResultRequest) (*jobspb.ReportResultReply, error) {
	var ok bool
	switch req.GetTaskType() {
	case "map":
		outputs := make(map[string]int, len(req.GetMapOutputs()))
		for word, count := range req.GetMapOutputs() {
			outputs[word] = int(count)
		}
		ok = s.coord.ReportMapResult(req.GetEngineId(), req.GetJobId(), int(req.GetShardId()), outputs)
	case "reduce":
		ok = s.coord.ReportReduceResult(req.GetEngineId(), req.GetJobId(), req.GetWord(), int(req.GetTotalCount()))
	}

	if !ok {
		return &jobspb.ReportResultReply{Success: false, Message: "job not found"}, nil
	}
	return &jobspb.ReportResultReply{Success: true, Message: "result recorded"}, nil
}

func mapTaskToPB(t queue.MapTask) *jobspb.MapTask {
	return &jobspb.MapTask{
		JobId:       t.JobID,
		ShardId:     int32(t.ShardID),
		TextContent: t.ShardText,
	}
}

func reduceTaskToPB(t queue.ReduceTask) *jobspb.ReduceTask {
	counts := make([]int32, len(t.Counts))
	for i, c := range t.Counts {
		counts[i] = int32(c)
	}
	return &jobspb.ReduceTask{
		JobId:  t.JobID,
		Word:   t.Word,
		Counts: counts,
	}
}
