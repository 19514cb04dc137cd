package http

import (
	"net/http"

	"github.com/flowstack/mrword/internal/activitylog"
	"github.com/flowstack/mrword/internal/api/respond"
	"github.com/flowstack/mrword/internal/coordinator"
)

// LogsHandler serves GET /api/logs: the last 50 activity log entries
// (spec.md §4.6, §6).
type LogsHandler struct {
	coord *coordinator.Coordinator
}

// NewLogsHandler constructs a LogsHandler backed by coord.
func NewLogsHandler(coord *coordinator.Coordinator) *LogsHandler {
	return &LogsHandler{coord: coord}
}

func (h *LogsHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	entries := h.coord.RecentLogs(activitylog.DefaultReadWindow)
	out := make([]LogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, LogEntry{
			Timestamp: e.Timestamp.UTC().Format(timeLayout),
			Message:   e.Message,
		})
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
