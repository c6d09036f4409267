// Package domain contains application Usecases orchestrating domain logic by team.
package domain

import (
	"context"
	"fmt"

	"team-membership-service/internal/entities"
	"team-membership-service/internal/permissions"

	"github.com/google/uuid"
)

func mergeSettings(base entities.TeamSettings, patch *entities.TeamSettingsPatch) entities.TeamSettings {
	if patch == nil {
		return base
	}
	if patch.IsPublic != nil {
		base.IsPublic = *patch.IsPublic
	}
	if patch.AllowMemberInvites != nil {
		base.AllowMemberInvites = *patch.AllowMemberInvites
	}
	if patch.DefaultProjectVisibility != nil {
		base.DefaultProjectVisibility = *patch.DefaultProjectVisibility
	}
	if patch.RequireApprovalForJoin != nil {
		base.RequireApprovalForJoin = *patch.RequireApprovalForJoin
	}
	return base
}

// CreateTeam creates a team together with its owner membership and records the event.
func (u *Usecase) CreateTeam(ctx context.Context, actor entities.Actor, draft entities.TeamDraft) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.Authenticated() {
		return nil, entities.ErrNotAuthenticated
	}
	if draft.Name == "" {
		u.log.Errorw("failed to create team: missing name")
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if draft.Settings != nil && draft.Settings.DefaultProjectVisibility != nil && !draft.Settings.DefaultProjectVisibility.Valid() {
		return nil, fmt.Errorf("%w: unknown project visibility", entities.ErrInvalidArgument)
	}

	if err := u.repo.UpsertProfile(ctx, entities.Profile{ID: actor.ID, Email: actor.Email}); err != nil {
		return nil, err
	}

	team := entities.Team{
		ID:          uuid.NewString(),
		Name:        draft.Name,
		Description: draft.Description,
		OwnerID:     actor.ID,
		AvatarURL:   draft.AvatarURL,
		Settings:    mergeSettings(entities.DefaultTeamSettings(), draft.Settings),
	}
	owner := entities.TeamMember{
		ID:     uuid.NewString(),
		TeamID: team.ID,
		UserID: actor.ID,
		Role:   entities.RoleOwner,
	}

	created, err := u.repo.CreateTeam(ctx, team, owner)
	if err != nil {
		return nil, err
	}

	u.audit.Record(entities.ActivityLog{
		UserID:       actor.ID,
		Action:       entities.ActionTeamCreated,
		ResourceType: entities.ResourceTeam,
		ResourceID:   &created.ID,
		TeamID:       &created.ID,
		Metadata:     map[string]any{"name": created.Name},
	})

	u.log.Infow("team created", "team_id", created.ID, "owner_id", actor.ID)
	return created, nil
}

// Team returns a team visible to the actor.
func (u *Usecase) Team(ctx context.Context, actor entities.Actor, teamID string) (*entities.Team, error) {
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

	return u.repo.GetTeam(ctx, teamID)
}

// TeamsForUser returns the teams the actor belongs to, newest first.
func (u *Usecase) TeamsForUser(ctx context.Context, actor entities.Actor) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.Authenticated() {
		return nil, entities.ErrNotAuthenticated
	}

	return u.repo.ListTeamsForUser(ctx, actor.ID)
}

// UpdateTeam merges patch fields into the team after a management check.
func (u *Usecase) UpdateTeam(ctx context.Context, actor entities.Actor, teamID string, patch entities.TeamPatch) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.Authenticated() {
		return nil, entities.ErrNotAuthenticated
	}
	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}
	if patch.Name != nil && *patch.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", entities.ErrInvalidArgument)
	}
	if patch.Settings != nil && patch.Settings.DefaultProjectVisibility != nil && !patch.Settings.DefaultProjectVisibility.Valid() {
		return nil, fmt.Errorf("%w: unknown project visibility", entities.ErrInvalidArgument)
	}

	m, err := u.memberForMutation(ctx, actor, teamID)
	if err != nil {
		return nil, err
	}
	if !permissions.CanManageTeam(m.Role) {
		return nil, entities.ErrPermissionDenied
	}

	updated, err := u.repo.UpdateTeam(ctx, teamID, patch)
	if err != nil {
		return nil, err
	}

	u.audit.Record(entities.ActivityLog{
		UserID:       actor.ID,
		Action:       entities.ActionTeamUpdated,
		ResourceType: entities.ResourceTeam,
		ResourceID:   &teamID,
		TeamID:       &teamID,
	})

	return updated, nil
}

// DeleteTeam removes a team. Owner only; cascades handled by storage.
func (u *Usecase) DeleteTeam(ctx context.Context, actor entities.Actor, teamID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.Authenticated() {
		return entities.ErrNotAuthenticated
	}
	if teamID == "" {
		return fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}

	m, err := u.memberForMutation(ctx, actor, teamID)
	if err != nil {
		return err
	}
	if !permissions.CanDeleteTeam(m.Role) {
		return entities.ErrPermissionDenied
	}

	if err := u.repo.DeleteTeam(ctx, teamID); err != nil {
		return err
	}

	u.audit.Record(entities.ActivityLog{
		UserID:       actor.ID,
		Action:       entities.ActionTeamDeleted,
		ResourceType: entities.ResourceTeam,
		ResourceID:   &teamID,
		TeamID:       &teamID,
	})

	u.log.Infow("team deleted", "team_id", teamID, "actor_id", actor.ID)
	return nil
}
