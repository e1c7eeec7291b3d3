package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"club-site/internal/model"
)

// TeamRepository описывает контракт источника состава команды.
// Строки должны приходить уже упорядоченными по display_order.
type TeamRepository interface {
	ListMembers(ctx context.Context) ([]model.TeamMember, error)
}

// TeamService загружает секцию команды одним запросом.
type TeamService struct {
	repo       TeamRepository
	configured bool
	timeout    time.Duration
	log        *slog.Logger
}

// NewTeamService создаёт сервис секции команды.
func NewTeamService(repo TeamRepository, configured bool, timeout time.Duration, log *slog.Logger) *TeamService {
	return &TeamService{
		repo:       repo,
		configured: configured,
		timeout:    timeout,
		log:        log,
	}
}

// Load возвращает участников в порядке, в котором их отдал источник.
func (s *TeamService) Load(ctx context.Context) TeamSection {
	if !s.configured {
		return TeamSection{State: StateUnconfigured, Members: []model.TeamMember{}}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	members, err := s.repo.ListMembers(ctx)
	if err != nil {
		err = fmt.Errorf("list team members: %w", err)
		s.log.Error("failed to fetch team members",
			slog.String("section", "team"),
			slog.Any("err", err),
		)
		return TeamSection{State: StateEmpty, Members: []model.TeamMember{}, Err: err}
	}

	if len(members) == 0 {
		return TeamSection{State: StateEmpty, Members: []model.TeamMember{}}
	}
	return TeamSection{State: StatePopulated, Members: members}
}
