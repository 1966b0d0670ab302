package service

import (
	"context"

	"github.com/okian/salesboard/internal/domain/model"
	"github.com/okian/salesboard/internal/domain/permission"
	"github.com/okian/salesboard/pkg/logger"
	"github.com/okian/salesboard/pkg/metrics"
)

// CanEditProfile reports whether the console should offer editing target's
// profile to actor.
func (s *Service) CanEditProfile(ctx context.Context, actor permission.Actor, target model.User) bool {
	allowed := permission.CanEditUser(actor, target)

	s.permissionChecks.Add(1)
	metrics.RecordPermissionDecision(string(actor.Role), allowed)
	s.log().Debug(ctx, "profile edit decision",
		logger.String("actorRole", string(actor.Role)),
		logger.String("targetRole", string(target.Role)),
		logger.Bool("allowed", allowed),
	)
	return allowed
}
