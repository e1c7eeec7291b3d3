// Package model содержит доменные структуры сайта: события, участников команды и статический контент.
package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Колонка timestamp без часового пояса приходит без смещения и читается как UTC.
const localTimestampLayout = "2006-01-02T15:04:05.999999999"

// Event описывает мероприятие клуба из таблицы events.
// Разбиение на прошедшие и предстоящие задаёт флаг IsUpcoming, а не сравнение EventDate с текущим временем.
type Event struct {
	ID               ID        `json:"id" yaml:"id"`
	Title            string    `json:"title" yaml:"title"`
	Description      string    `json:"description" yaml:"description"`
	EventDate        time.Time `json:"event_date" yaml:"event_date"`
	Venue            string    `json:"venue" yaml:"venue"`
	ImageURL         string    `json:"image_url,omitempty" yaml:"image_url"`
	IsUpcoming       bool      `json:"is_upcoming" yaml:"is_upcoming"`
	RegistrationLink string    `json:"registration_link,omitempty" yaml:"registration_link"`
}

func (e *Event) UnmarshalJSON(data []byte) error {
	type plain Event
	aux := struct {
		*plain
		EventDate *string `json:"event_date"`
	}{plain: (*plain)(e)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	e.EventDate = time.Time{}
	if aux.EventDate == nil || *aux.EventDate == "" {
		return nil
	}
	t, err := ParseTimestamp(*aux.EventDate)
	if err != nil {
		return err
	}
	e.EventDate = t
	return nil
}

// ParseTimestamp разбирает RFC 3339, а при отсутствии смещения считает время указанным в UTC.
// PostgREST отдаёт timestamptz как "2025-03-15T18:00:00+00:00", а timestamp как "2025-03-15T18:00:00".
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(localTimestampLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse event_date %q: %w", s, err)
	}
	return t, nil
}

// EventQuery описывает одну выборку событий: фильтр по is_upcoming и направление сортировки по event_date.
type EventQuery struct {
	Upcoming  bool
	Ascending bool
}
