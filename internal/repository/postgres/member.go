package postgres

import (
	"context"
	"errors"
	"fmt"

	"team-membership-service/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	selectMemberQuery = `
SELECT id, team_id, user_id, role, joined_at, invited_by
FROM team_members
WHERE team_id=$1 AND user_id=$2`

	selectMemberByEmailQuery = `
SELECT m.id, m.team_id, m.user_id, m.role, m.joined_at, m.invited_by
FROM team_members m
JOIN profiles p ON p.id = m.user_id
WHERE m.team_id=$1 AND lower(p.email)=lower($2)`

	selectMembersQuery = `
SELECT m.id, m.team_id, m.user_id, m.role, m.joined_at, m.invited_by,
       p.email, p.display_name, p.avatar_url
FROM team_members m
JOIN profiles p ON p.id = m.user_id
WHERE m.team_id=$1
ORDER BY m.joined_at ASC`

	insertMemberQuery = `
INSERT INTO team_members(id, team_id, user_id, role, invited_by)
VALUES ($1, $2, $3, $4, $5)
RETURNING joined_at`

	updateMemberRoleQuery = `
UPDATE team_members SET role=$3
WHERE team_id=$1 AND user_id=$2
RETURNING id, team_id, user_id, role, joined_at, invited_by`

	deleteMemberQuery = `DELETE FROM team_members WHERE team_id=$1 AND user_id=$2`

	countMembersWithRoleQuery = `SELECT count(*) FROM team_members WHERE team_id=$1 AND role=$2`
)

const uniqueViolation = "23505"

func scanMember(row teamRow) (*entities.TeamMember, error) {
	var m entities.TeamMember
	var role string
	if err := row.Scan(&m.ID, &m.TeamID, &m.UserID, &role, &m.JoinedAt, &m.InvitedBy); err != nil {
		return nil, err
	}
	m.Role = entities.TeamRole(role)
	return &m, nil
}

// GetMember returns the membership row for (teamID, userID).
func (p *Postgres) GetMember(ctx context.Context, teamID, userID string) (*entities.TeamMember, error) {
	m, err := scanMember(p.db.QueryRow(ctx, selectMemberQuery, teamID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return m, nil
}

// GetMemberByEmail resolves a membership through the profiles join.
func (p *Postgres) GetMemberByEmail(ctx context.Context, teamID, email string) (*entities.TeamMember, error) {
	m, err := scanMember(p.db.QueryRow(ctx, selectMemberByEmailQuery, teamID, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member by email: %w", err)
	}
	return m, nil
}

// ListMembers returns member rows joined with profile display fields, oldest first.
func (p *Postgres) ListMembers(ctx context.Context, teamID string) ([]entities.MemberProfile, error) {
	rows, err := p.db.Query(ctx, selectMembersQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.MemberProfile, 0)
	for rows.Next() {
		var m entities.MemberProfile
		var role string
		if err := rows.Scan(
			&m.ID, &m.TeamID, &m.UserID, &role, &m.JoinedAt, &m.InvitedBy,
			&m.Email, &m.DisplayName, &m.AvatarURL,
		); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		m.Role = entities.TeamRole(role)
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	return members, nil
}

// AddMember inserts a membership row.
func (p *Postgres) AddMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error) {
	err := p.db.QueryRow(ctx, insertMemberQuery,
		member.ID, member.TeamID, member.UserID, string(member.Role), member.InvitedBy,
	).Scan(&member.JoinedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, entities.ErrDuplicateMember
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}

	p.log.Infow("member added", "team_id", member.TeamID, "user_id", member.UserID, "role", member.Role)
	return &member, nil
}

// UpdateMemberRole sets a new role on the membership row.
func (p *Postgres) UpdateMemberRole(ctx context.Context, teamID, userID string, role entities.TeamRole) (*entities.TeamMember, error) {
	m, err := scanMember(p.db.QueryRow(ctx, updateMemberRoleQuery, teamID, userID, string(role)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("update member role: %w", err)
	}

	p.log.Infow("member role updated", "team_id", teamID, "user_id", userID, "role", role)
	return m, nil
}

// RemoveMember deletes the membership row.
func (p *Postgres) RemoveMember(ctx context.Context, teamID, userID string) error {
	tag, err := p.db.Exec(ctx, deleteMemberQuery, teamID, userID)
	if err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrMemberNotFound
	}

	p.log.Infow("member removed", "team_id", teamID, "user_id", userID)
	return nil
}

// CountMembersWithRole counts memberships holding the given role.
func (p *Postgres) CountMembersWithRole(ctx context.Context, teamID string, role entities.TeamRole) (int64, error) {
	var n int64
	if err := p.db.QueryRow(ctx, countMembersWithRoleQuery, teamID, string(role)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}
	return n, nil
}
