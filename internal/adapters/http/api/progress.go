package api

import (
	"context"
	"net/http"

	service "github.com/okian/salesboard/internal/app"
)

// ProgressDependencies defines the interface for progress evaluation.
type ProgressDependencies interface {
	EvaluateUser(ctx context.Context, req service.ProgressRequest) (service.UserProgress, error)
	EvaluateTeam(ctx context.Context, reqs []service.ProgressRequest) (service.TeamProgress, error)
}

// ProgressHandler handles progress requests.
type ProgressHandler struct {
	deps ProgressDependencies
}

// NewProgressHandler creates a new progress handler.
func NewProgressHandler(deps ProgressDependencies) *ProgressHandler {
	return &ProgressHandler{deps: deps}
}

// HandlePostProgress handles POST /progress requests.
func (h *ProgressHandler) HandlePostProgress(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_progress"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req service.ProgressRequest
	if !decodeBody(w, r, op, &req) {
		return
	}
	up, err := h.deps.EvaluateUser(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, up)
}

// HandlePostTeamProgress handles POST /progress/team requests. The body is a
// JSON array of progress requests.
func (h *ProgressHandler) HandlePostTeamProgress(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_team_progress"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var reqs []service.ProgressRequest
	if !decodeBody(w, r, op, &reqs) {
		return
	}
	team, err := h.deps.EvaluateTeam(r.Context(), reqs)
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, team)
}
