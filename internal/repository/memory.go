package repository

import (
	"context"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"club-site/internal/model"
)

// MemoryConfig указывает YAML-файл с данными для локального просмотра сайта без Supabase.
type MemoryConfig struct {
	SeedFile string
}

type seed struct {
	Events      []model.Event      `yaml:"events"`
	TeamMembers []model.TeamMember `yaml:"team_members"`
}

// Memory хранит строки из YAML-файла и выполняет над ними те же фильтры и сортировки, что и Supabase.
type Memory struct {
	events  []model.Event
	members []model.TeamMember
}

// NewMemory читает файл с данными. Файл читается один раз, дальше данные не меняются.
func NewMemory(cfg MemoryConfig) (*Memory, error) {
	raw, err := os.ReadFile(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	var s seed
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSeed, cfg.SeedFile, err)
	}
	return NewMemoryFrom(s.Events, s.TeamMembers), nil
}

// NewMemoryFrom создаёт источник из уже готовых строк.
func NewMemoryFrom(events []model.Event, members []model.TeamMember) *Memory {
	return &Memory{events: events, members: members}
}

func (m *Memory) ListEvents(ctx context.Context, q model.EventQuery) ([]model.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	events := make([]model.Event, 0, len(m.events))
	for _, e := range m.events {
		if e.IsUpcoming == q.Upcoming {
			events = append(events, e)
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		if q.Ascending {
			return events[i].EventDate.Before(events[j].EventDate)
		}
		return events[i].EventDate.After(events[j].EventDate)
	})
	return events, nil
}

func (m *Memory) ListMembers(ctx context.Context) ([]model.TeamMember, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	members := make([]model.TeamMember, len(m.members))
	copy(members, m.members)
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].DisplayOrder < members[j].DisplayOrder
	})
	return members, nil
}
