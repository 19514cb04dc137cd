// Package http implements the coordinator's operator-facing HTTP/JSON
// surface under the /api prefix (spec.md §6).
package http

import (
	"time"

	"github.com/gorilla/mux"

	"github.com/flowstack/mrword/internal/api/recovery"
	"github.com/flowstack/mrword/internal/coordinator"
)

// NewRouter builds the full operator API router (spec.md §6's route
// table), wired to coord. corsOrigins/corsCredentials come from
// config.Config.CORSOriginList; activeThreshold is the EngineInfo
// active/idle cutoff.
func NewRouter(coord *coordinator.Coordinator, corsOrigins []string, corsCredentials bool, activeThreshold time.Duration) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)
	router.Use(CORS(corsOrigins, corsCredentials))

	jobs := NewJobsHandler(coord)
	engines := NewEnginesHandler(coord, activeThreshold)
	logs := NewLogsHandler(coord)
	stats := NewStatsHandler(coord)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/jobs", jobs.CreateJob).Methods("POST")
	api.HandleFunc("/jobs/upload", jobs.UploadJob).Methods("POST")
	api.HandleFunc("/jobs", jobs.ListJobs).Methods("GET")
	api.HandleFunc("/jobs/{job_id}", jobs.GetJob).Methods("GET")
	api.HandleFunc("/engines", engines.ListEngines).Methods("GET")
	api.HandleFunc("/logs", logs.GetLogs).Methods("GET")
	api.HandleFunc("/stats", stats.GetStats).Methods("GET")

	return router
}
