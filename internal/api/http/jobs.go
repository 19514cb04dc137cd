package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/flowstack/mrword/internal/api/respond"
	"github.com/flowstack/mrword/internal/coordinator"
	"github.com/flowstack/mrword/internal/jobstore"
)

// JobsHandler serves the /api/jobs* routes (spec.md §6).
type JobsHandler struct {
	coord *coordinator.Coordinator
}

// NewJobsHandler constructs a JobsHandler backed by coord.
func NewJobsHandler(coord *coordinator.Coordinator) *JobsHandler {
	return &JobsHandler{coord: coord}
}

// CreateJob handles POST /api/jobs.
func (h *JobsHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req JobCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON body")
		return
	}
	h.createFromText(w, r, req.Text, req.BalancingStrategy)
}

// UploadJob handles POST /api/jobs/upload: a multipart file field "file"
// containing UTF-8 text, otherwise identical to CreateJob (spec.md §6).
func (h *JobsHandler) UploadJob(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		respond.WriteBadRequest(w, "missing multipart file field \"file\"")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		respond.WriteBadRequest(w, "failed to read uploaded file")
		return
	}
	h.createFromText(w, r, string(content), "")
}

func (h *JobsHandler) createFromText(w http.ResponseWriter, r *http.Request, text, strategy string) {
	job := h.coord.CreateJob(r.Context(), text, jobstore.BalancingStrategy(strategy))
	respond.WriteJSON(w, http.StatusOK, toJobResponse(job))
}

// ListJobs handles GET /api/jobs.
func (h *JobsHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs := h.coord.ListJobs()
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toJobResponse(j))
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// GetJob handles GET /api/jobs/{job_id}.
func (h *JobsHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["job_id"]
	job, err := h.coord.GetJob(jobID)
	if errors.Is(err, coordinator.ErrJobNotFound) {
		respond.WriteNotFound(w, "job not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, toJobResponse(job))
}

func toJobResponse(j coordinator.JobView) JobResponse {
	resp := JobResponse{
		JobID:      j.JobID,
		Status:     j.Status,
		TextLength: j.TextLength,
		NumShards:  j.NumShards,
		TopWords:   j.TopWords,
		CreatedAt:  j.CreatedAt.UTC().Format(timeLayout),
	}
	if !j.CompletedAt.IsZero() {
		completed := j.CompletedAt.UTC().Format(timeLayout)
		resp.CompletedAt = &completed
		resp.DurationSeconds = j.DurationSeconds
	}
	return resp
}

const timeLayout = "2006-01-02T15:04:05.999999Z07:00"
