// Package permissions is the pure rule set deciding whether a role may perform an action.
// Functions here never touch storage and never fail; enforcement lives in the usecase layer.
package permissions

import "team-membership-service/internal/entities"

// CanManageTeam reports whether the role may update team fields and settings.
func CanManageTeam(role entities.TeamRole) bool {
	return role == entities.RoleOwner || role == entities.RoleAdmin
}

// CanInviteMembers reports whether the role may invite, honoring the
// allow_member_invites team setting for regular members.
func CanInviteMembers(role entities.TeamRole, settings entities.TeamSettings) bool {
	if role == entities.RoleOwner || role == entities.RoleAdmin {
		return true
	}
	return settings.AllowMemberInvites && role == entities.RoleMember
}

// CanManageProjects reports whether the role may create and edit team projects.
func CanManageProjects(role entities.TeamRole) bool {
	switch role {
	case entities.RoleOwner, entities.RoleAdmin, entities.RoleMember:
		return true
	}
	return false
}

// CanViewTeam reports whether the role may read team data. Any valid role can.
func CanViewTeam(role entities.TeamRole) bool {
	return role.Valid()
}

// CanDeleteTeam reports whether the role may delete the team. Owner only.
func CanDeleteTeam(role entities.TeamRole) bool {
	return role == entities.RoleOwner
}

// CanRemoveMembers reports whether role may remove a member holding targetRole.
// Owners remove anyone; admins remove only non-privileged members.
func CanRemoveMembers(role, targetRole entities.TeamRole) bool {
	if role == entities.RoleOwner {
		return true
	}
	if role == entities.RoleAdmin {
		return targetRole != entities.RoleOwner && targetRole != entities.RoleAdmin
	}
	return false
}

// CanUpdateMemberRole reports whether role may change targetRole to newRole.
// Admins can never touch an owner's role or grant ownership.
func CanUpdateMemberRole(role, targetRole, newRole entities.TeamRole) bool {
	if role == entities.RoleOwner {
		return true
	}
	if role == entities.RoleAdmin {
		return targetRole != entities.RoleOwner && newRole != entities.RoleOwner
	}
	return false
}
