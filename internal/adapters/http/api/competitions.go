package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	service "github.com/okian/salesboard/internal/app"
	"github.com/okian/salesboard/internal/domain/model"
)

// CompetitionDependencies defines the interface for competition operations.
type CompetitionDependencies interface {
	CompetitionStatus(ctx context.Context, comp model.Competition, now *time.Time) (service.CompetitionStatus, error)
	Leaderboard(ctx context.Context, comp model.Competition, rows []model.RawLeaderboardEntry, limit int) (service.Leaderboard, error)
}

type statusRequest struct {
	Competition model.Competition `json:"competition"`
	// Now overrides the evaluation instant; the server clock is used when absent.
	Now *time.Time `json:"now,omitempty"`
}

type leaderboardRequest struct {
	Competition model.Competition           `json:"competition"`
	Entries     []model.RawLeaderboardEntry `json:"entries"`
}

// CompetitionHandler handles competition requests.
type CompetitionHandler struct {
	deps CompetitionDependencies
}

// NewCompetitionHandler creates a new competition handler.
func NewCompetitionHandler(deps CompetitionDependencies) *CompetitionHandler {
	return &CompetitionHandler{deps: deps}
}

// HandlePostStatus handles POST /competitions/status requests.
func (h *CompetitionHandler) HandlePostStatus(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_competition_status"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req statusRequest
	if !decodeBody(w, r, op, &req) {
		return
	}
	st, err := h.deps.CompetitionStatus(r.Context(), req.Competition, req.Now)
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// HandlePostLeaderboard handles POST /competitions/leaderboard?limit=N
// requests. Without limit the service maximum applies.
func (h *CompetitionHandler) HandlePostLeaderboard(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_leaderboard"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "bad_request",
				WrapKind(op, ErrBadRequest, errors.New("limit must be a positive integer")))
			return
		}
		limit = n
	}
	var req leaderboardRequest
	if !decodeBody(w, r, op, &req) {
		return
	}
	lb, err := h.deps.Leaderboard(r.Context(), req.Competition, req.Entries, limit)
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, lb)
}
