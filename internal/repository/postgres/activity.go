package postgres

import (
	"context"
	"fmt"

	"team-membership-service/internal/entities"
)

const (
	insertActivityQuery = `
INSERT INTO activity_logs(id, user_id, action, resource_type, resource_id, team_id, project_id, metadata)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	selectActivityForTeamQuery = `
SELECT a.id, a.user_id, a.action, a.resource_type, a.resource_id, a.team_id, a.project_id, a.metadata, a.created_at,
       p.display_name, p.email, p.avatar_url
FROM activity_logs a
JOIN profiles p ON p.id = a.user_id
WHERE a.team_id=$1
ORDER BY a.created_at DESC
LIMIT $2`
)

// AppendActivity inserts one audit row. Metadata is stored as jsonb.
func (p *Postgres) AppendActivity(ctx context.Context, entry entities.ActivityLog) error {
	metadata := entry.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	_, err := p.db.Exec(ctx, insertActivityQuery,
		entry.ID, entry.UserID, entry.Action, entry.ResourceType,
		entry.ResourceID, entry.TeamID, entry.ProjectID, metadata,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListActivityForTeam returns the newest audit rows for a team enriched with actor display fields.
func (p *Postgres) ListActivityForTeam(ctx context.Context, teamID string, limit int) ([]entities.ActivityEntry, error) {
	rows, err := p.db.Query(ctx, selectActivityForTeamQuery, teamID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	entries := make([]entities.ActivityEntry, 0)
	for rows.Next() {
		var e entities.ActivityEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Action, &e.ResourceType, &e.ResourceID,
			&e.TeamID, &e.ProjectID, &e.Metadata, &e.CreatedAt,
			&e.ActorName, &e.ActorEmail, &e.ActorAvatar,
		); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity: %w", err)
	}

	return entries, nil
}
