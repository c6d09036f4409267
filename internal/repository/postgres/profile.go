package postgres

import (
	"context"
	"errors"
	"fmt"

	"team-membership-service/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	upsertProfileQuery = `
INSERT INTO profiles(id, email, display_name, avatar_url)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email`

	selectProfileQuery = `SELECT id, email, display_name, avatar_url FROM profiles WHERE id=$1`
)

// UpsertProfile mirrors a session identity into the profiles join table.
func (p *Postgres) UpsertProfile(ctx context.Context, profile entities.Profile) error {
	_, err := p.db.Exec(ctx, upsertProfileQuery,
		profile.ID, profile.Email, profile.DisplayName, profile.AvatarURL,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

// GetProfile fetches identity display fields by user id.
func (p *Postgres) GetProfile(ctx context.Context, userID string) (*entities.Profile, error) {
	var pr entities.Profile
	err := p.db.QueryRow(ctx, selectProfileQuery, userID).
		Scan(&pr.ID, &pr.Email, &pr.DisplayName, &pr.AvatarURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &pr, nil
}
