package repository

import (
	"context"
	"fmt"

	"club-site/internal/model"
)

const (
	listEventsAsc = `
SELECT id::text, title, description, event_date, venue, image_url, is_upcoming, registration_link
FROM events
WHERE is_upcoming = $1
ORDER BY event_date ASC
`
	listEventsDesc = `
SELECT id::text, title, description, event_date, venue, image_url, is_upcoming, registration_link
FROM events
WHERE is_upcoming = $1
ORDER BY event_date DESC
`
)

// EventRepo читает события из таблицы events базы Supabase.
type EventRepo struct {
	db *Postgres
}

// NewEventRepo создаёт новый экземпляр EventRepo c переданным подключением к PostgreSQL.
func NewEventRepo(db *Postgres) *EventRepo {
	return &EventRepo{db: db}
}

// ListEvents возвращает события с заданным флагом is_upcoming, отсортированные по event_date.
func (r *EventRepo) ListEvents(ctx context.Context, q model.EventQuery) ([]model.Event, error) {
	query := listEventsDesc
	if q.Ascending {
		query = listEventsAsc
	}

	rows, err := r.db.Pool.Query(ctx, query, q.Upcoming)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	events := make([]model.Event, 0)
	for rows.Next() {
		var e model.Event
		var id string
		var imageURL, registrationLink *string
		if err := rows.Scan(
			&id, &e.Title, &e.Description, &e.EventDate, &e.Venue,
			&imageURL, &e.IsUpcoming, &registrationLink,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.ID = model.ID(id)
		if imageURL != nil {
			e.ImageURL = *imageURL
		}
		if registrationLink != nil {
			e.RegistrationLink = *registrationLink
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return events, nil
}
