// Package sourcebuilder выбирает реализацию источника данных по конфигурации.
package sourcebuilder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"club-site/internal/repository"
	"club-site/internal/service"
)

const (
	TypeSupabase = "supabase"
	TypePostgres = "postgres"
	TypeMemory   = "memory"
)

type Config struct {
	Type         string
	FetchTimeout time.Duration
	Supabase     repository.SupabaseConfig
	Postgres     repository.PostgresConfig
	Memory       repository.MemoryConfig
}

// Source описывает выбранный источник. Если Configured == false, Events и Team равны nil
// и сервисы секций не должны к ним обращаться.
type Source struct {
	Type       string
	Events     service.EventRepository
	Team       service.TeamRepository
	Configured bool

	close func()
}

// Close освобождает ресурсы источника (пул соединений Postgres).
func (s *Source) Close() {
	if s.close != nil {
		s.close()
	}
}

// New создаёт источник. Отсутствие реквизитов не ошибка: источник возвращается ненастроенным.
// Ошибкой считаются неизвестный тип и некорректные реквизиты.
func New(ctx context.Context, config Config) (*Source, error) {
	src := &Source{Type: config.Type}

	switch config.Type {
	case TypeSupabase:
		if config.Supabase.URL == "" || config.Supabase.AnonKey == "" {
			return src, nil
		}
		var client *http.Client
		if config.FetchTimeout > 0 {
			client = &http.Client{Timeout: config.FetchTimeout}
		}
		sb, err := repository.NewSupabase(config.Supabase, client)
		if err != nil {
			return nil, fmt.Errorf("failed to init supabase source: %w", err)
		}
		src.Events, src.Team = sb, sb

	case TypePostgres:
		if config.Postgres.DSN == "" {
			return src, nil
		}
		db, err := repository.NewPostgres(ctx, config.Postgres)
		if err != nil {
			return nil, fmt.Errorf("failed to init postgres source: %w", err)
		}
		src.Events = repository.NewEventRepo(db)
		src.Team = repository.NewTeamRepo(db)
		src.close = db.Close

	case TypeMemory:
		if config.Memory.SeedFile == "" {
			return src, nil
		}
		m, err := repository.NewMemory(config.Memory)
		if err != nil {
			return nil, fmt.Errorf("failed to init memory source: %w", err)
		}
		src.Events, src.Team = m, m

	default:
		return nil, fmt.Errorf("unknown source type %q", config.Type)
	}

	src.Configured = true
	return src, nil
}
