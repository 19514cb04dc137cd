package http

import "github.com/flowstack/mrword/internal/jobstore"

// JobResponse is the wire shape for every job-returning endpoint
// (spec.md §6). status uses the English vocabulary "map"/"reduce"/"done"
// (spec.md §6's noted Spanish variant is not carried over).
type JobResponse struct {
	JobID           string             `json:"job_id"`
	Status          jobstore.Status    `json:"status"`
	TextLength      int                `json:"text_length"`
	NumShards       int                `json:"num_shards"`
	TopWords        []jobstore.TopWord `json:"top_words"`
	CreatedAt       string             `json:"created_at"`
	CompletedAt     *string            `json:"completed_at,omitempty"`
	DurationSeconds *float64           `json:"duration_seconds,omitempty"`
}

// EngineInfo is the wire shape for GET /api/engines (spec.md §6).
type EngineInfo struct {
	EngineID    string `json:"engine_id"`
	Role        string `json:"role"`
	Capacity    int    `json:"capacity"`
	CurrentLoad int    `json:"current_load"`
	LastSeen    string `json:"last_seen"`
	Status      string `json:"status"`
}

// LogEntry is the wire shape for GET /api/logs (spec.md §4.6, §6).
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

// Stats is the wire shape for GET /api/stats (spec.md §6).
type Stats struct {
	TotalEngines     int `json:"total_engines"`
	Mappers          int `json:"mappers"`
	Reducers         int `json:"reducers"`
	MapQueueSize     int `json:"map_queue_size"`
	ReduceQueueSize  int `json:"reduce_queue_size"`
	TotalJobs        int `json:"total_jobs"`
	ActiveJobs       int `json:"active_jobs"`
}

// JobCreateRequest is the POST /api/jobs request body.
type JobCreateRequest struct {
	Text              string `json:"text"`
	BalancingStrategy string `json:"balancing_strategy,omitempty"`
}
