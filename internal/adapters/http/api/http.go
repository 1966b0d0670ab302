// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	service "github.com/okian/salesboard/internal/app"
	"github.com/okian/salesboard/internal/domain/model"
	"github.com/okian/salesboard/pkg/logger"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 4 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ProgressDependencies
	CompetitionDependencies
	PermissionDependencies
	TargetsDependencies
	StatsProvider
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	targetsHandler     *TargetsHandler
	progressHandler    *ProgressHandler
	competitionHandler *CompetitionHandler
	permissionHandler  *PermissionHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(deps),
		targetsHandler:     NewTargetsHandler(deps),
		progressHandler:    NewProgressHandler(deps),
		competitionHandler: NewCompetitionHandler(deps),
		permissionHandler:  NewPermissionHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/targets/defaults", MetricsMiddleware(s.targetsHandler.HandleGetDefaults, "targets_defaults"))
	mux.HandleFunc("/progress", MetricsMiddleware(s.progressHandler.HandlePostProgress, "progress"))
	mux.HandleFunc("/progress/team", MetricsMiddleware(s.progressHandler.HandlePostTeamProgress, "progress_team"))
	mux.HandleFunc("/competitions/status", MetricsMiddleware(s.competitionHandler.HandlePostStatus, "competitions_status"))
	mux.HandleFunc("/competitions/leaderboard", MetricsMiddleware(s.competitionHandler.HandlePostLeaderboard, "competitions_leaderboard"))
	mux.HandleFunc("/permissions/profile-edit", MetricsMiddleware(s.permissionHandler.HandlePostProfileEdit, "permissions_profile_edit"))
}

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{
		Code:      code,
		Message:   msg,
		RequestID: logger.RequestIDFromContext(r.Context()),
	})
}

// decodeJSON reads exactly one JSON value from the request body into v.
func decodeJSON(r *http.Request, w http.ResponseWriter, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: body exceeds %d bytes", ErrTooLarge, tooLarge.Limit)
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must contain a single JSON value")
	}
	return nil
}

// decodeBody decodes the request body, writing the error response itself
// when decoding fails. It reports whether the handler should continue.
func decodeBody(w http.ResponseWriter, r *http.Request, op string, v any) bool {
	err := decodeJSON(r, w, v)
	switch {
	case err == nil:
		return true
	case errors.Is(err, ErrTooLarge):
		writeError(w, r, http.StatusRequestEntityTooLarge, "too_large", Wrap(op, err))
	default:
		writeError(w, r, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
	}
	return false
}

// writeServiceError translates service errors into HTTP responses.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, service.ErrBatchTooLarge):
		writeError(w, r, http.StatusRequestEntityTooLarge, "batch_too_large", WrapKind(op, ErrTooLarge, err))
	case errors.Is(err, model.ErrInvertedWindow), errors.Is(err, model.ErrMissingWindow):
		writeError(w, r, http.StatusBadRequest, "invalid_window", WrapKind(op, ErrBadRequest, err))
	case errors.Is(err, service.ErrMissingUserID),
		errors.Is(err, service.ErrTotalUserMismatch),
		errors.Is(err, service.ErrMissingCompetition),
		errors.Is(err, model.ErrUnknownPeriod),
		errors.Is(err, model.ErrUnknownRole):
		writeError(w, r, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
	default:
		logger.Get().Error(r.Context(), "request failed", logger.String("op", op), logger.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal_error", NewKind(op, ErrInternal))
	}
}
