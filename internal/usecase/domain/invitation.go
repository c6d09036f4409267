// Package domain contains application Usecases orchestrating domain logic by invitation.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"team-membership-service/internal/entities"
	"team-membership-service/internal/permissions"

	"github.com/google/uuid"
)

// Invite creates a pending invitation expiring after the configured TTL.
// Inviting an email that already belongs to the team is rejected; a second
// pending invitation for the same email is allowed and simply supersedes.
func (u *Usecase) Invite(ctx context.Context, actor entities.Actor, teamID, email string, role entities.TeamRole) (*entities.TeamInvitation, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.Authenticated() {
		return nil, entities.ErrNotAuthenticated
	}
	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", entities.ErrInvalidArgument)
	}
	if !role.Valid() || role == entities.RoleOwner {
		return nil, fmt.Errorf("%w: role must be admin, member or viewer", entities.ErrInvalidArgument)
	}

	m, err := u.memberForMutation(ctx, actor, teamID)
	if err != nil {
		return nil, err
	}
	team, err := u.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !permissions.CanInviteMembers(m.Role, team.Settings) {
		return nil, entities.ErrPermissionDenied
	}

	if _, err := u.repo.GetMemberByEmail(ctx, teamID, email); err == nil {
		return nil, entities.ErrAlreadyMember
	} else if !errors.Is(err, entities.ErrMemberNotFound) {
		return nil, err
	}

	now := time.Now()
	inv := entities.TeamInvitation{
		ID:        uuid.NewString(),
		TeamID:    teamID,
		Email:     email,
		Role:      role,
		InvitedBy: actor.ID,
		ExpiresAt: now.Add(u.invitationTTL),
		CreatedAt: now,
	}

	created, err := u.repo.CreateInvitation(ctx, inv)
	if err != nil {
		return nil, err
	}

	u.audit.Record(entities.ActivityLog{
		UserID:       actor.ID,
		Action:       entities.ActionMemberInvited,
		ResourceType: entities.ResourceInvitation,
		ResourceID:   &created.ID,
		TeamID:       &teamID,
		Metadata:     map[string]any{"email": email, "role": string(role)},
	})

	u.log.Infow("invitation sent", "team_id", teamID, "invitation_id", created.ID)
	return created, nil
}

// PendingForTeam lists unexpired, unaccepted invitations for a team the actor can view.
func (u *Usecase) PendingForTeam(ctx context.Context, actor entities.Actor, teamID string) ([]entities.TeamInvitation, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.Authenticated() {
		return nil, entities.ErrNotAuthenticated
	}
	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}

	m, err := u.memberForView(ctx, actor, teamID)
	if err != nil {
		return nil, err
	}
	if !permissions.CanViewTeam(m.Role) {
		return nil, entities.ErrTeamNotFound
	}

	return u.repo.ListPendingForTeam(ctx, teamID, time.Now())
}

// PendingForUser lists unexpired, unaccepted invitations addressed to the actor's email.
func (u *Usecase) PendingForUser(ctx context.Context, actor entities.Actor) ([]entities.TeamInvitation, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.Authenticated() {
		return nil, entities.ErrNotAuthenticated
	}

	return u.repo.ListPendingForEmail(ctx, actor.Email, time.Now())
}

// Accept materializes the invitation into a membership for the acting user.
// The repository performs both writes in one transaction; a second accept
// surfaces ErrInvitationAccepted and never creates another membership row.
func (u *Usecase) Accept(ctx context.Context, actor entities.Actor, invitationID string) (*entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.Authenticated() {
		return nil, entities.ErrNotAuthenticated
	}
	if invitationID == "" {
		return nil, fmt.Errorf("%w: invitation_id is required", entities.ErrInvalidArgument)
	}

	inv, err := u.repo.GetInvitation(ctx, invitationID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if inv.AcceptedAt != nil {
		return nil, entities.ErrInvitationAccepted
	}
	if inv.Expired(now) {
		return nil, entities.ErrInvitationExpired
	}

	if err := u.repo.UpsertProfile(ctx, entities.Profile{ID: actor.ID, Email: actor.Email}); err != nil {
		return nil, err
	}

	member, err := u.repo.AcceptInvitation(ctx, invitationID, entities.TeamMember{
		ID:        uuid.NewString(),
		TeamID:    inv.TeamID,
		UserID:    actor.ID,
		Role:      inv.Role,
		InvitedBy: &inv.InvitedBy,
	}, now)
	if err != nil {
		return nil, err
	}

	u.audit.Record(entities.ActivityLog{
		UserID:       actor.ID,
		Action:       entities.ActionInvitationAccepted,
		ResourceType: entities.ResourceInvitation,
		ResourceID:   &invitationID,
		TeamID:       &inv.TeamID,
		Metadata:     map[string]any{"role": string(inv.Role)},
	})

	u.log.Infow("invitation accepted", "invitation_id", invitationID, "team_id", inv.TeamID, "user_id", actor.ID)
	return member, nil
}

// Decline removes the invitation without membership side effects.
func (u *Usecase) Decline(ctx context.Context, actor entities.Actor, invitationID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.Authenticated() {
		return entities.ErrNotAuthenticated
	}
	if invitationID == "" {
		return fmt.Errorf("%w: invitation_id is required", entities.ErrInvalidArgument)
	}

	inv, err := u.repo.GetInvitation(ctx, invitationID)
	if err != nil {
		return err
	}

	if err := u.repo.DeleteInvitation(ctx, invitationID); err != nil {
		return err
	}

	u.audit.Record(entities.ActivityLog{
		UserID:       actor.ID,
		Action:       entities.ActionInvitationDeclined,
		ResourceType: entities.ResourceInvitation,
		ResourceID:   &invitationID,
		TeamID:       &inv.TeamID,
	})

	return nil
}
