// Package domain contains application Usecases orchestrating domain logic by activity feed.
package domain

import (
	"context"
	"fmt"

	"team-membership-service/internal/entities"
	"team-membership-service/internal/permissions"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

// ActivityForTeam returns the newest audit entries for a team the actor can view.
func (u *Usecase) ActivityForTeam(ctx context.Context, actor entities.Actor, teamID string, limit int) ([]entities.ActivityEntry, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.Authenticated() {
		return nil, entities.ErrNotAuthenticated
	}
	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	m, err := u.memberForView(ctx, actor, teamID)
	if err != nil {
		return nil, err
	}
	if !permissions.CanViewTeam(m.Role) {
		return nil, entities.ErrTeamNotFound
	}

	return u.repo.ListActivityForTeam(ctx, teamID, limit)
}
