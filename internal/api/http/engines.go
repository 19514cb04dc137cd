package http

import (
	"net/http"
	"time"

	"github.com/flowstack/mrword/internal/api/respond"
	"github.com/flowstack/mrword/internal/coordinator"
)

// EnginesHandler serves GET /api/engines (spec.md §6).
type EnginesHandler struct {
	coord           *coordinator.Coordinator
	activeThreshold time.Duration
}

// NewEnginesHandler constructs an EnginesHandler. activeThreshold is the
// now-last_seen cutoff below which a worker reports "active" rather than
// "idle" (spec.md §6 EngineInfo.status).
func NewEnginesHandler(coord *coordinator.Coordinator, activeThreshold time.Duration) *EnginesHandler {
	return &EnginesHandler{coord: coord, activeThreshold: activeThreshold}
}

func (h *EnginesHandler) ListEngines(w http.ResponseWriter, r *http.Request) {
	workers := h.coord.Engines()
	now := h.coord.Now()

	out := make([]EngineInfo, 0, len(workers))
	for _, wk := range workers {
		status := "idle"
		if now.Sub(wk.LastSeen) < h.activeThreshold {
			status = "active"
		}
		out = append(out, EngineInfo{
			EngineID:    wk.EngineID,
			Role:        string(wk.Role),
			Capacity:    wk.Capacity,
			CurrentLoad: wk.CurrentLoad,
			LastSeen:    wk.LastSeen.UTC().Format(timeLayout),
			Status:      status,
		})
	}

	respond.WriteJSON(w, http.StatusOK, out)
}
