package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"team-membership-service/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	invitationColumns = `id, team_id, email, role, invited_by, expires_at, accepted_at, created_at`

	// created_at is supplied by the caller so expires_at stays an exact
	// TTL offset from it, independent of the database clock.
	insertInvitationQuery = `
INSERT INTO team_invitations(id, team_id, email, role, invited_by, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	selectInvitationQuery = `SELECT ` + invitationColumns + ` FROM team_invitations WHERE id=$1`

	selectPendingForTeamQuery = `
SELECT ` + invitationColumns + `
FROM team_invitations
WHERE team_id=$1 AND accepted_at IS NULL AND expires_at > $2
ORDER BY created_at DESC`

	selectPendingForEmailQuery = `
SELECT ` + invitationColumns + `
FROM team_invitations
WHERE lower(email)=lower($1) AND accepted_at IS NULL AND expires_at > $2
ORDER BY created_at DESC`

	acceptInvitationQuery = `
UPDATE team_invitations SET accepted_at=$2
WHERE id=$1 AND accepted_at IS NULL
RETURNING team_id`

	deleteInvitationQuery = `DELETE FROM team_invitations WHERE id=$1`
)

func scanInvitation(row teamRow) (*entities.TeamInvitation, error) {
	var inv entities.TeamInvitation
	var role string
	err := row.Scan(&inv.ID, &inv.TeamID, &inv.Email, &role, &inv.InvitedBy,
		&inv.ExpiresAt, &inv.AcceptedAt, &inv.CreatedAt)
	if err != nil {
		return nil, err
	}
	inv.Role = entities.TeamRole(role)
	return &inv, nil
}

// CreateInvitation inserts a pending invitation row.
func (p *Postgres) CreateInvitation(ctx context.Context, inv entities.TeamInvitation) (*entities.TeamInvitation, error) {
	_, err := p.db.Exec(ctx, insertInvitationQuery,
		inv.ID, inv.TeamID, inv.Email, string(inv.Role), inv.InvitedBy, inv.ExpiresAt, inv.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert invitation: %w", err)
	}

	p.log.Infow("invitation created", "invitation_id", inv.ID, "team_id", inv.TeamID, "role", inv.Role)
	return &inv, nil
}

// GetInvitation fetches an invitation by id.
func (p *Postgres) GetInvitation(ctx context.Context, invitationID string) (*entities.TeamInvitation, error) {
	inv, err := scanInvitation(p.db.QueryRow(ctx, selectInvitationQuery, invitationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	return inv, nil
}

// ListPendingForTeam returns unaccepted, unexpired invitations for a team, newest first.
func (p *Postgres) ListPendingForTeam(ctx context.Context, teamID string, now time.Time) ([]entities.TeamInvitation, error) {
	return p.listPending(ctx, selectPendingForTeamQuery, teamID, now)
}

// ListPendingForEmail returns unaccepted, unexpired invitations addressed to an email, newest first.
func (p *Postgres) ListPendingForEmail(ctx context.Context, email string, now time.Time) ([]entities.TeamInvitation, error) {
	return p.listPending(ctx, selectPendingForEmailQuery, email, now)
}

func (p *Postgres) listPending(ctx context.Context, query string, key any, now time.Time) ([]entities.TeamInvitation, error) {
	rows, err := p.db.Query(ctx, query, key, now)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	defer rows.Close()

	invs := make([]entities.TeamInvitation, 0)
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invitation: %w", err)
		}
		invs = append(invs, *inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invitations: %w", err)
	}

	return invs, nil
}

// AcceptInvitation stamps accepted_at and inserts the membership in one
// transaction. The accepted_at IS NULL guard makes a second accept a no-op
// at the row level, so double-acceptance cannot create a second membership.
func (p *Postgres) AcceptInvitation(ctx context.Context, invitationID string, member entities.TeamMember, now time.Time) (*entities.TeamMember, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var teamID string
	if err := tx.QueryRow(ctx, acceptInvitationQuery, invitationID, now).Scan(&teamID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrInvitationAccepted
		}
		return nil, fmt.Errorf("accept invitation: %w", err)
	}

	err = tx.QueryRow(ctx, insertMemberQuery,
		member.ID, teamID, member.UserID, string(member.Role), member.InvitedBy,
	).Scan(&member.JoinedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, entities.ErrDuplicateMember
		}
		return nil, fmt.Errorf("insert accepted member: %w", err)
	}
	member.TeamID = teamID

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("invitation accepted", "invitation_id", invitationID, "team_id", teamID, "user_id", member.UserID)
	return &member, nil
}

// DeleteInvitation removes the invitation row.
func (p *Postgres) DeleteInvitation(ctx context.Context, invitationID string) error {
	tag, err := p.db.Exec(ctx, deleteInvitationQuery, invitationID)
	if err != nil {
		return fmt.Errorf("delete invitation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrInvitationNotFound
	}

	p.log.Infow("invitation deleted", "invitation_id", invitationID)
	return nil
}
