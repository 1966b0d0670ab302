package api

import (
	"context"
	"net/http"

	"github.com/okian/salesboard/internal/domain/model"
	"github.com/okian/salesboard/internal/domain/permission"
)

// PermissionDependencies defines the interface for profile edit hints.
type PermissionDependencies interface {
	CanEditProfile(ctx context.Context, actor permission.Actor, target model.User) bool
}

type profileEditRequest struct {
	Actor  permission.Actor `json:"actor"`
	Target model.User       `json:"target"`
}

type profileEditResponse struct {
	CanEdit bool `json:"canEdit"`
}

// PermissionHandler handles permission requests.
type PermissionHandler struct {
	deps PermissionDependencies
}

// NewPermissionHandler creates a new permission handler.
func NewPermissionHandler(deps PermissionDependencies) *PermissionHandler {
	return &PermissionHandler{deps: deps}
}

// HandlePostProfileEdit handles POST /permissions/profile-edit requests.
// Role names are normalized, so "team-head" and "TEAM_HEAD" are equivalent.
func (h *PermissionHandler) HandlePostProfileEdit(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_profile_edit"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req profileEditRequest
	if !decodeBody(w, r, op, &req) {
		return
	}

	actorRole, err := model.ParseRole(string(req.Actor.Role))
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}
	targetRole, err := model.ParseRole(string(req.Target.Role))
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}
	req.Actor.Role = actorRole
	req.Target.Role = targetRole

	writeJSON(w, http.StatusOK, profileEditResponse{
		CanEdit: h.deps.CanEditProfile(r.Context(), req.Actor, req.Target),
	})
}
