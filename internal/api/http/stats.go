package http

import (
	"net/http"

	"github.com/flowstack/mrword/internal/api/respond"
	"github.com/flowstack/mrword/internal/coordinator"
)

// StatsHandler serves GET /api/stats (spec.md §6).
type StatsHandler struct {
	coord *coordinator.Coordinator
}

// NewStatsHandler constructs a StatsHandler backed by coord.
func NewStatsHandler(coord *coordinator.Coordinator) *StatsHandler {
	return &StatsHandler{coord: coord}
}

func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	s := h.coord.GetStats()
	respond.WriteJSON(w, http.StatusOK, Stats{
		TotalEngines:    s.TotalEngines,
		Mappers:         s.Mappers,
		Reducers:        s.Reducers,
		MapQueueSize:    s.MapQueueSize,
		ReduceQueueSize: s.ReduceQueueSize,
		TotalJobs:       s.TotalJobs,
		ActiveJobs:      s.ActiveJobs,
	})
}
