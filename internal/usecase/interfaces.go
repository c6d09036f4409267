package usecase

import (
	"context"

	"team-membership-service/internal/entities"
)

// MembershipInterface abstracts team and member operations for the delivery layer.
type MembershipInterface interface {
	CreateTeam(ctx context.Context, actor entities.Actor, draft entities.TeamDraft) (*entities.Team, error)
	Team(ctx context.Context, actor entities.Actor, teamID string) (*entities.Team, error)
	TeamsForUser(ctx context.Context, actor entities.Actor) ([]entities.Team, error)
	UpdateTeam(ctx context.Context, actor entities.Actor, teamID string, patch entities.TeamPatch) (*entities.Team, error)
	DeleteTeam(ctx context.Context, actor entities.Actor, teamID string) error
	Members(ctx context.Context, actor entities.Actor, teamID string) ([]entities.MemberProfile, error)
	AddMember(ctx context.Context, actor entities.Actor, teamID, userID string, role entities.TeamRole) (*entities.TeamMember, error)
	UpdateMemberRole(ctx context.Context, actor entities.Actor, teamID, userID string, newRole entities.TeamRole) (*entities.TeamMember, error)
	RemoveMember(ctx context.Context, actor entities.Actor, teamID, userID string) error
}

// InvitationInterface abstracts invitation operations.
type InvitationInterface interface {
	Invite(ctx context.Context, actor entities.Actor, teamID, email string, role entities.TeamRole) (*entities.TeamInvitation, error)
	PendingForTeam(ctx context.Context, actor entities.Actor, teamID string) ([]entities.TeamInvitation, error)
	PendingForUser(ctx context.Context, actor entities.Actor) ([]entities.TeamInvitation, error)
	Accept(ctx context.Context, actor entities.Actor, invitationID string) (*entities.TeamMember, error)
	Decline(ctx context.Context, actor entities.Actor, invitationID string) error
}

// ActivityInterface abstracts the audit feed.
type ActivityInterface interface {
	ActivityForTeam(ctx context.Context, actor entities.Actor, teamID string, limit int) ([]entities.ActivityEntry, error)
}
