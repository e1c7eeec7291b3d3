package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"club-site/internal/model"
	"club-site/internal/service"
	"club-site/internal/view"
)

// EventsLoader загружает секцию событий для одного просмотра страницы.
type EventsLoader interface {
	Load(ctx context.Context) service.EventsSection
}

// TeamLoader загружает секцию команды для одного просмотра страницы.
type TeamLoader interface {
	Load(ctx context.Context) service.TeamSection
}

// Options содержит параметры отображения, не зависящие от источника данных.
type Options struct {
	Site           model.Site
	Deferred       bool
	AllowedOrigins []string
	Now            func() time.Time
}

type Handler struct {
	Events   EventsLoader
	Team     TeamLoader
	Renderer *view.Renderer
	Opts     Options
	Log      *slog.Logger
}

func NewHandler(events EventsLoader, team TeamLoader, renderer *view.Renderer, opts Options, log *slog.Logger) *Handler {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	return &Handler{
		Events:   events,
		Team:     team,
		Renderer: renderer,
		Opts:     opts,
		Log:      log,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, "not_found", service.ErrNotFound("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, "method_not_allowed", service.ErrMethodNotAllowed("method not allowed"))
	})

	r.Get("/health", h.handleHealth)
	r.Get("/", h.handlePage)
	r.Get("/events.ics", h.handleCalendar)
	r.Handle("/static/*", http.StripPrefix("/static", view.StaticHandler()))

	r.Route("/sections", func(r chi.Router) {
		r.Get("/events", h.handleEventsSection)
		r.Get("/team", h.handleTeamSection)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.Opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept"},
			MaxAge:         300,
		}))
		r.Get("/events", h.handleAPIEvents)
		r.Get("/team", h.handleAPITeam)
	})

	return r
}

// logRequests пишет одну запись на каждый обработанный запрос.
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		h.Log.Info("http request processed",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("ip", r.RemoteAddr),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("latency", time.Since(start)),
		)
	})
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	appErr, ok := err.(*service.AppError)
	if !ok {
		appErr = service.ErrInternal("internal error", err)
	}

	level := slog.LevelWarn
	if appErr.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.Log.Log(context.Background(), level, "handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
