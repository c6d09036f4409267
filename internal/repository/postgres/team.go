package postgres

import (
	"context"
	"errors"
	"fmt"

	"team-membership-service/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	teamColumns = `id, name, description, owner_id, avatar_url,
is_public, allow_member_invites, default_project_visibility, require_approval_for_join,
created_at, updated_at`

	insertTeamQuery = `
INSERT INTO teams(id, name, description, owner_id, avatar_url, is_public, allow_member_invites, default_project_visibility, require_approval_for_join)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING created_at, updated_at`

	insertOwnerMemberQuery = `
INSERT INTO team_members(id, team_id, user_id, role, invited_by)
VALUES ($1, $2, $3, $4, $5)`

	selectTeamQuery = `SELECT ` + teamColumns + ` FROM teams WHERE id=$1`

	selectTeamsForUserQuery = `
SELECT t.id, t.name, t.description, t.owner_id, t.avatar_url,
       t.is_public, t.allow_member_invites, t.default_project_visibility, t.require_approval_for_join,
       t.created_at, t.updated_at
FROM teams t
JOIN team_members m ON m.team_id = t.id
WHERE m.user_id = $1
ORDER BY t.created_at DESC`

	// NULL parameters keep the stored value; a PATCH can therefore never
	// clear description or avatar_url back to NULL, only overwrite them.
	updateTeamQuery = `
UPDATE teams SET
    name = COALESCE($2, name),
    description = COALESCE($3, description),
    avatar_url = COALESCE($4, avatar_url),
    is_public = COALESCE($5, is_public),
    allow_member_invites = COALESCE($6, allow_member_invites),
    default_project_visibility = COALESCE($7, default_project_visibility),
    require_approval_for_join = COALESCE($8, require_approval_for_join),
    updated_at = now()
WHERE id = $1
RETURNING ` + teamColumns

	deleteTeamQuery = `DELETE FROM teams WHERE id=$1`
)

type teamRow interface {
	Scan(dest ...any) error
}

func scanTeam(row teamRow) (*entities.Team, error) {
	var t entities.Team
	var visibility string
	err := row.Scan(
		&t.ID, &t.Name, &t.Description, &t.OwnerID, &t.AvatarURL,
		&t.Settings.IsPublic, &t.Settings.AllowMemberInvites, &visibility, &t.Settings.RequireApprovalForJoin,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Settings.DefaultProjectVisibility = entities.ProjectVisibility(visibility)
	return &t, nil
}

// CreateTeam inserts the team and its owner membership in a single transaction,
// so a team is never observable without an owner row.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team, owner entities.TeamMember) (*entities.Team, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, insertTeamQuery,
		team.ID, team.Name, team.Description, team.OwnerID, team.AvatarURL,
		team.Settings.IsPublic, team.Settings.AllowMemberInvites,
		string(team.Settings.DefaultProjectVisibility), team.Settings.RequireApprovalForJoin,
	).Scan(&team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert team: %w", err)
	}

	if _, err := tx.Exec(ctx, insertOwnerMemberQuery,
		owner.ID, team.ID, owner.UserID, string(owner.Role), owner.InvitedBy,
	); err != nil {
		return nil, fmt.Errorf("insert owner member: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("team created", "team_id", team.ID, "owner_id", team.OwnerID)
	return &team, nil
}

// GetTeam fetches a team by id.
func (p *Postgres) GetTeam(ctx context.Context, teamID string) (*entities.Team, error) {
	t, err := scanTeam(p.db.QueryRow(ctx, selectTeamQuery, teamID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return t, nil
}

// ListTeamsForUser returns the teams where the user holds a membership, newest first.
func (p *Postgres) ListTeamsForUser(ctx context.Context, userID string) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, selectTeamsForUserQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, *t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}

	return teams, nil
}

// UpdateTeam merges non-nil patch fields and refreshes updated_at.
func (p *Postgres) UpdateTeam(ctx context.Context, teamID string, patch entities.TeamPatch) (*entities.Team, error) {
	var visibility *string
	settings := patch.Settings
	if settings == nil {
		settings = &entities.TeamSettingsPatch{}
	}
	if settings.DefaultProjectVisibility != nil {
		v := string(*settings.DefaultProjectVisibility)
		visibility = &v
	}

	t, err := scanTeam(p.db.QueryRow(ctx, updateTeamQuery,
		teamID, patch.Name, patch.Description, patch.AvatarURL,
		settings.IsPublic, settings.AllowMemberInvites, visibility, settings.RequireApprovalForJoin,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("update team: %w", err)
	}

	p.log.Infow("team updated", "team_id", teamID)
	return t, nil
}

// DeleteTeam removes the team; members and invitations cascade at the schema level.
func (p *Postgres) DeleteTeam(ctx context.Context, teamID string) error {
	tag, err := p.db.Exec(ctx, deleteTeamQuery, teamID)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTeamNotFound
	}

	p.log.Infow("team deleted", "team_id", teamID)
	return nil
}
