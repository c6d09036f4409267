// Package entities contains core business entities.
package entities

import "time"

// TeamRole is the privilege level a user holds inside a team.
type TeamRole string

const (
	// RoleOwner is the single owner created with the team.
	RoleOwner TeamRole = "owner"
	// RoleAdmin can manage the team and its members below owner.
	RoleAdmin TeamRole = "admin"
	// RoleMember can work on team projects.
	RoleMember TeamRole = "member"
	// RoleViewer has read-only access.
	RoleViewer TeamRole = "viewer"
)

// Valid reports whether r is a known role.
func (r TeamRole) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember, RoleViewer:
		return true
	}
	return false
}

// TeamMember binds one user to one team with exactly one role.
type TeamMember struct {
	ID        string
	TeamID    string
	UserID    string
	Role      TeamRole
	JoinedAt  time.Time
	InvitedBy *string
}

// MemberProfile is a member row joined with display fields from the identity store.
type MemberProfile struct {
	TeamMember
	Email       string
	DisplayName string
	AvatarURL   *string
}
