package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"club-site/internal/model"
)

// EventRepository описывает контракт источника событий.
type EventRepository interface {
	ListEvents(ctx context.Context, q model.EventQuery) ([]model.Event, error)
}

var (
	// Прошедшие: сначала самые недавние.
	pastEventsQuery = model.EventQuery{Upcoming: false, Ascending: false}
	// Предстоящие: сначала ближайшие.
	upcomingEventsQuery = model.EventQuery{Upcoming: true, Ascending: true}
)

// EventService загружает секцию событий: два независимых запроса (прошедшие и предстоящие).
type EventService struct {
	repo       EventRepository
	configured bool
	timeout    time.Duration
	log        *slog.Logger
}

// NewEventService создаёт сервис секции событий.
// configured определяется один раз при старте по наличию реквизитов источника.
func NewEventService(repo EventRepository, configured bool, timeout time.Duration, log *slog.Logger) *EventService {
	return &EventService{
		repo:       repo,
		configured: configured,
		timeout:    timeout,
		log:        log,
	}
}

// Load выполняет ровно одну попытку загрузки. Ошибка любого из запросов обнуляет оба списка:
// секция переходит в StateEmpty, а ошибка логируется и возвращается в поле Err.
func (s *EventService) Load(ctx context.Context) EventsSection {
	if !s.configured {
		return EventsSection{State: StateUnconfigured, Upcoming: []model.Event{}, Past: []model.Event{}}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var past, upcoming []model.Event
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		past, err = s.repo.ListEvents(gctx, pastEventsQuery)
		if err != nil {
			return fmt.Errorf("list past events: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		upcoming, err = s.repo.ListEvents(gctx, upcomingEventsQuery)
		if err != nil {
			return fmt.Errorf("list upcoming events: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.Error("failed to fetch events",
			slog.String("section", "events"),
			slog.Any("err", err),
		)
		return EventsSection{State: StateEmpty, Upcoming: []model.Event{}, Past: []model.Event{}, Err: err}
	}

	section := EventsSection{State: StatePopulated, Upcoming: upcoming, Past: past}
	if section.Upcoming == nil {
		section.Upcoming = []model.Event{}
	}
	if section.Past == nil {
		section.Past = []model.Event{}
	}
	if len(section.Upcoming) == 0 && len(section.Past) == 0 {
		section.State = StateEmpty
	}
	return section
}
