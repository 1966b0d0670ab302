package permission_test

import (
	"testing"

	"github.com/okian/salesboard/internal/domain/model"
	"github.com/okian/salesboard/internal/domain/permission"
	"github.com/smartystreets/goconvey/convey"
)

func TestCanEdit(t *testing.T) {
	convey.Convey("Given the profile edit decision table", t, func() {
		convey.Convey("When the actor is a super admin", func() {
			actor := permission.Actor{Role: model.RoleSuperAdmin, ID: "root"}

			convey.Convey("Then every profile should be editable", func() {
				for _, r := range model.Roles() {
					convey.So(permission.CanEdit(actor, r, false), convey.ShouldBeTrue)
					convey.So(permission.CanEdit(actor, r, true), convey.ShouldBeTrue)
				}
			})
		})

		convey.Convey("When the actor is an admin", func() {
			actor := permission.Actor{Role: model.RoleAdmin, ID: "adm"}

			convey.Convey("Then roles below admin should be editable", func() {
				convey.So(permission.CanEdit(actor, model.RoleCustomer, false), convey.ShouldBeTrue)
				convey.So(permission.CanEdit(actor, model.RoleSalesperson, false), convey.ShouldBeTrue)
				convey.So(permission.CanEdit(actor, model.RoleTeamHead, false), convey.ShouldBeTrue)
			})

			convey.Convey("And peers or superiors should not be editable", func() {
				convey.So(permission.CanEdit(actor, model.RoleAdmin, false), convey.ShouldBeFalse)
				convey.So(permission.CanEdit(actor, model.RoleSuperAdmin, false), convey.ShouldBeFalse)
			})

			convey.Convey("And the admin's own profile should be editable", func() {
				convey.So(permission.CanEdit(actor, model.RoleAdmin, true), convey.ShouldBeTrue)
			})

			convey.Convey("And an unknown target role should not be editable", func() {
				convey.So(permission.CanEdit(actor, model.Role("MANAGER"), false), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When the actor has any other role", func() {
			for _, role := range []model.Role{model.RoleTeamHead, model.RoleSalesperson, model.RoleCustomer, model.Role("")} {
				actor := permission.Actor{Role: role, ID: "me"}

				convey.So(permission.CanEdit(actor, model.RoleSalesperson, false), convey.ShouldBeFalse)
				convey.So(permission.CanEdit(actor, model.RoleCustomer, false), convey.ShouldBeFalse)
				convey.So(permission.CanEdit(actor, role, true), convey.ShouldBeTrue)
			}
		})
	})
}

func TestCanEditUser(t *testing.T) {
	convey.Convey("Given user records", t, func() {
		me := model.User{ID: "u1", Role: model.RoleSalesperson}
		other := model.User{ID: "u2", Role: model.RoleSalesperson}

		convey.Convey("When a salesperson looks at profiles", func() {
			actor := permission.Actor{Role: model.RoleSalesperson, ID: "u1"}
			convey.So(permission.CanEditUser(actor, me), convey.ShouldBeTrue)
			convey.So(permission.CanEditUser(actor, other), convey.ShouldBeFalse)
		})

		convey.Convey("When ids are empty", func() {
			actor := permission.Actor{Role: model.RoleSalesperson}
			convey.So(permission.IsSelf(actor, ""), convey.ShouldBeFalse)
			convey.So(permission.CanEditUser(actor, model.User{Role: model.RoleSalesperson}), convey.ShouldBeFalse)
		})
	})
}
