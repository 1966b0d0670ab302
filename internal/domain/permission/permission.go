// Package permission decides whether the console should offer profile-edit
// affordances. It is a UI hint only; the system of record re-validates every
// mutating request.
package permission

import "github.com/okian/salesboard/internal/domain/model"

// Actor is the signed-in user on whose behalf a decision is made. It is
// always passed explicitly and never read from session state.
type Actor struct {
	Role model.Role `json:"role"`
	ID   string     `json:"id"`
}

// CanEdit reports whether actor may edit a profile with targetRole.
//
//	SUPER_ADMIN -> always
//	ADMIN       -> own profile, or TEAM_HEAD / SALESPERSON / CUSTOMER profiles
//	anyone else -> own profile only
func CanEdit(actor Actor, targetRole model.Role, isSelf bool) bool {
	switch actor.Role {
	case model.RoleSuperAdmin:
		return true
	case model.RoleAdmin:
		return isSelf || belowAdmin(targetRole)
	default:
		return isSelf
	}
}

// IsSelf reports whether targetUserID is the actor. Empty ids never match.
func IsSelf(actor Actor, targetUserID string) bool {
	return actor.ID != "" && actor.ID == targetUserID
}

// CanEditUser applies CanEdit to a user record.
func CanEditUser(actor Actor, target model.User) bool {
	return CanEdit(actor, target.Role, IsSelf(actor, target.ID))
}

func belowAdmin(r model.Role) bool {
	switch r {
	case model.RoleTeamHead, model.RoleSalesperson, model.RoleCustomer:
		return true
	}
	return false
}
