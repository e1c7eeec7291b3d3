// Package repository содержит источники данных для секций сайта: Supabase (PostgREST), PostgreSQL и YAML-файл.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConfig описывает подключение к базе Supabase напрямую.
type PostgresConfig struct {
	DSN      string
	MaxConns int32
}

type Postgres struct {
	Pool *pgxpool.Pool
}

// NewPostgres создаёт пул соединений. Соединения открываются лениво,
// поэтому недоступная база проявится ошибкой запроса, а не ошибкой старта.
func NewPostgres(ctx context.Context, cfg PostgresConfig) (*Postgres, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	return &Postgres{Pool: pool}, nil
}

// Close закрывает пул соединений.
func (p *Postgres) Close() {
	p.Pool.Close()
}
