// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"
	"time"

	"team-membership-service/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ProfileInterface exposes the identity join table. Rows mirror the external
// session provider; the service only ever upserts what a session presented.
type ProfileInterface interface {
	UpsertProfile(ctx context.Context, profile entities.Profile) error
	GetProfile(ctx context.Context, userID string) (*entities.Profile, error)
}

// TeamInterface exposes team-related operations.
type TeamInterface interface {
	// CreateTeam inserts the team and its owner membership in one transaction.
	CreateTeam(ctx context.Context, team entities.Team, owner entities.TeamMember) (*entities.Team, error)
	GetTeam(ctx context.Context, teamID string) (*entities.Team, error)
	ListTeamsForUser(ctx context.Context, userID string) ([]entities.Team, error)
	UpdateTeam(ctx context.Context, teamID string, patch entities.TeamPatch) (*entities.Team, error)
	DeleteTeam(ctx context.Context, teamID string) error
}

// MemberInterface exposes membership operations.
type MemberInterface interface {
	GetMember(ctx context.Context, teamID, userID string) (*entities.TeamMember, error)
	GetMemberByEmail(ctx context.Context, teamID, email string) (*entities.TeamMember, error)
	ListMembers(ctx context.Context, teamID string) ([]entities.MemberProfile, error)
	AddMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error)
	UpdateMemberRole(ctx context.Context, teamID, userID string, role entities.TeamRole) (*entities.TeamMember, error)
	RemoveMember(ctx context.Context, teamID, userID string) error
	CountMembersWithRole(ctx context.Context, teamID string, role entities.TeamRole) (int64, error)
}

// InvitationInterface exposes invitation operations.
type InvitationInterface interface {
	CreateInvitation(ctx context.Context, inv entities.TeamInvitation) (*entities.TeamInvitation, error)
	GetInvitation(ctx context.Context, invitationID string) (*entities.TeamInvitation, error)
	ListPendingForTeam(ctx context.Context, teamID string, now time.Time) ([]entities.TeamInvitation, error)
	ListPendingForEmail(ctx context.Context, email string, now time.Time) ([]entities.TeamInvitation, error)
	// AcceptInvitation stamps accepted_at and inserts the membership in one
	// transaction, guarded by accepted_at IS NULL.
	AcceptInvitation(ctx context.Context, invitationID string, member entities.TeamMember, now time.Time) (*entities.TeamMember, error)
	DeleteInvitation(ctx context.Context, invitationID string) error
}

// ActivityInterface exposes the append-only audit sink and its feed.
type ActivityInterface interface {
	AppendActivity(ctx context.Context, entry entities.ActivityLog) error
	ListActivityForTeam(ctx context.Context, teamID string, limit int) ([]entities.ActivityEntry, error)
}
