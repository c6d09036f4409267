// Package domain contains application Usecases orchestrating domain logic by membership.
package domain

import (
	"context"
	"errors"
	"fmt"

	"team-membership-service/internal/entities"
	"team-membership-service/internal/permissions"

	"github.com/google/uuid"
)

// Members returns the team roster with profile display fields, oldest first.
func (u *Usecase) Members(ctx context.Context, actor entities.Actor, teamID string) ([]entities.MemberProfile, error) {
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

	return u.repo.ListMembers(ctx, teamID)
}

// AddMember inserts a membership directly, bypassing the invitation flow.
// Management-level action; acceptance of invitations takes the transactional path instead.
func (u *Usecase) AddMember(ctx context.Context, actor entities.Actor, teamID, userID string, role entities.TeamRole) (*entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.Authenticated() {
		return nil, entities.ErrNotAuthenticated
	}
	if teamID == "" || userID == "" {
		return nil, fmt.Errorf("%w: team_id and user_id are required", entities.ErrInvalidArgument)
	}
	if !role.Valid() || role == entities.RoleOwner {
		return nil, fmt.Errorf("%w: role must be admin, member or viewer", entities.ErrInvalidArgument)
	}

	m, err := u.memberForMutation(ctx, actor, teamID)
	if err != nil {
		return nil, err
	}
	if !permissions.CanManageTeam(m.Role) {
		return nil, entities.ErrPermissionDenied
	}

	if _, err := u.repo.GetProfile(ctx, userID); err != nil {
		if errors.Is(err, entities.ErrProfileNotFound) {
			return nil, fmt.Errorf("%w: unknown user_id", entities.ErrInvalidArgument)
		}
		return nil, err
	}

	added, err := u.repo.AddMember(ctx, entities.TeamMember{
		ID:        uuid.NewString(),
		TeamID:    teamID,
		UserID:    userID,
		Role:      role,
		InvitedBy: &actor.ID,
	})
	if err != nil {
		return nil, err
	}

	u.audit.Record(entities.ActivityLog{
		UserID:       actor.ID,
		Action:       entities.ActionMemberAdded,
		ResourceType: entities.ResourceMember,
		ResourceID:   &added.ID,
		TeamID:       &teamID,
		Metadata:     map[string]any{"user_id": userID, "role": string(role)},
	})

	return added, nil
}

// UpdateMemberRole changes a member's role after an authorization check.
// Owner is not an assignable role and the sole owner can never be demoted.
func (u *Usecase) UpdateMemberRole(ctx context.Context, actor entities.Actor, teamID, userID string, newRole entities.TeamRole) (*entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.Authenticated() {
		return nil, entities.ErrNotAuthenticated
	}
	if teamID == "" || userID == "" {
		return nil, fmt.Errorf("%w: team_id and user_id are required", entities.ErrInvalidArgument)
	}
	if !newRole.Valid() || newRole == entities.RoleOwner {
		return nil, fmt.Errorf("%w: role must be admin, member or viewer", entities.ErrInvalidArgument)
	}

	m, err := u.memberForMutation(ctx, actor, teamID)
	if err != nil {
		return nil, err
	}
	target, err := u.repo.GetMember(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}
	if !permissions.CanUpdateMemberRole(m.Role, target.Role, newRole) {
		return nil, entities.ErrPermissionDenied
	}

	if target.Role == entities.RoleOwner && newRole != entities.RoleOwner {
		owners, err := u.repo.CountMembersWithRole(ctx, teamID, entities.RoleOwner)
		if err != nil {
			return nil, err
		}
		if owners <= 1 {
			return nil, entities.ErrLastOwner
		}
	}

	updated, err := u.repo.UpdateMemberRole(ctx, teamID, userID, newRole)
	if err != nil {
		return nil, err
	}

	u.audit.Record(entities.ActivityLog{
		UserID:       actor.ID,
		Action:       entities.ActionMemberRoleUpdated,
		ResourceType: entities.ResourceMember,
		ResourceID:   &updated.ID,
		TeamID:       &teamID,
		Metadata:     map[string]any{"user_id": userID, "old_role": string(target.Role), "new_role": string(newRole)},
	})

	return updated, nil
}

// RemoveMember deletes a membership after an authorization check.
// Removing the only owner is rejected.
func (u *Usecase) RemoveMember(ctx context.Context, actor entities.Actor, teamID, userID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.Authenticated() {
		return entities.ErrNotAuthenticated
	}
	if teamID == "" || userID == "" {
		return fmt.Errorf("%w: team_id and user_id are required", entities.ErrInvalidArgument)
	}

	m, err := u.memberForMutation(ctx, actor, teamID)
	if err != nil {
		return err
	}
	target, err := u.repo.GetMember(ctx, teamID, userID)
	if err != nil {
		return err
	}
	if !permissions.CanRemoveMembers(m.Role, target.Role) {
		return entities.ErrPermissionDenied
	}

	if target.Role == entities.RoleOwner {
		owners, err := u.repo.CountMembersWithRole(ctx, teamID, entities.RoleOwner)
		if err != nil {
			return err
		}
		if owners <= 1 {
			return entities.ErrLastOwner
		}
	}

	if err := u.repo.RemoveMember(ctx, teamID, userID); err != nil {
		return err
	}

	u.audit.Record(entities.ActivityLog{
		UserID:       actor.ID,
		Action:       entities.ActionMemberRemoved,
		ResourceType: entities.ResourceMember,
		ResourceID:   &target.ID,
		TeamID:       &teamID,
		Metadata:     map[string]any{"user_id": userID, "role": string(target.Role)},
	})

	return nil
}
