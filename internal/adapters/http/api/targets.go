package api

import (
	"net/http"

	"github.com/okian/salesboard/internal/domain/progress"
	"github.com/okian/salesboard/internal/domain/targets"
)

// TargetsDependencies exposes the effective organizational targets.
type TargetsDependencies interface {
	DefaultTargets() targets.Set
}

type defaultsResponse struct {
	Defaults   targets.Set          `json:"defaults"`
	Thresholds []progress.Threshold `json:"thresholds"`
}

// TargetsHandler handles target requests.
type TargetsHandler struct {
	deps TargetsDependencies
}

// NewTargetsHandler creates a new targets handler.
func NewTargetsHandler(deps TargetsDependencies) *TargetsHandler {
	return &TargetsHandler{deps: deps}
}

// HandleGetDefaults handles GET /targets/defaults requests. The status
// thresholds are included so every client renders the same table.
func (h *TargetsHandler) HandleGetDefaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, defaultsResponse{
		Defaults:   h.deps.DefaultTargets(),
		Thresholds: progress.Thresholds(),
	})
}
