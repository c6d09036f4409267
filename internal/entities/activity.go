// Package entities contains core business entities.
package entities

import "time"

// Audit action tags written by the service.
const (
	ActionTeamCreated        = "team_created"
	ActionTeamUpdated        = "team_updated"
	ActionTeamDeleted        = "team_deleted"
	ActionMemberAdded        = "member_added"
	ActionMemberRoleUpdated  = "member_role_updated"
	ActionMemberRemoved      = "member_removed"
	ActionMemberInvited      = "member_invited"
	ActionInvitationAccepted = "invitation_accepted"
	ActionInvitationDeclined = "invitation_declined"
)

// Audit resource types.
const (
	ResourceTeam       = "team"
	ResourceMember     = "team_member"
	ResourceInvitation = "team_invitation"
)

// ActivityLog is an append-only audit record of a state-changing action.
type ActivityLog struct {
	ID           string
	UserID       string
	Action       string
	ResourceType string
	ResourceID   *string
	TeamID       *string
	ProjectID    *string
	Metadata     map[string]any
	CreatedAt    time.Time
}

// ActivityEntry is an audit record joined with actor display fields for feeds.
type ActivityEntry struct {
	ActivityLog
	ActorName   string
	ActorEmail  string
	ActorAvatar *string
}
