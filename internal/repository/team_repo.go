package repository

import (
	"context"
	"fmt"

	"club-site/internal/model"
)

// TeamRepo читает состав команды из таблицы team_members.
type TeamRepo struct {
	db *Postgres
}

func NewTeamRepo(db *Postgres) *TeamRepo {
	return &TeamRepo{db: db}
}

// ListMembers возвращает всех участников в порядке display_order.
func (r *TeamRepo) ListMembers(ctx context.Context) ([]model.TeamMember, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT id::text, name, position, email, linkedin_url, image_url, display_order
FROM team_members
ORDER BY display_order ASC
`)
	if err != nil {
		return nil, fmt.Errorf("query team: %w", err)
	}
	defer rows.Close()

	members := make([]model.TeamMember, 0)
	for rows.Next() {
		var m model.TeamMember
		var id string
		var linkedinURL, imageURL *string

		if err := rows.Scan(&id, &m.Name, &m.Position, &m.Email, &linkedinURL, &imageURL, &m.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		m.ID = model.ID(id)
		if linkedinURL != nil {
			m.LinkedInURL = *linkedinURL
		}
		if imageURL != nil {
			m.ImageURL = *imageURL
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return members, nil
}
