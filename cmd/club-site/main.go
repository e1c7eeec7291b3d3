// Package main запускает сайт студенческого клуба.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	httpapi "club-site/internal/http"
	"club-site/internal/service"
	"club-site/internal/sourcebuilder"
	"club-site/internal/view"
)

func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "", "Path to configuration file")
	flag.Parse()

	config, err := NewConfig(configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация логгера (JSON)
	level, _ := config.LogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	// Источник данных; без реквизитов секции показывают заглушки
	src, err := sourcebuilder.New(ctx, config.SourceBuilder())
	if err != nil {
		logger.Error("failed to init data source", slog.Any("err", err))
		os.Exit(1)
	}
	defer src.Close()

	if !src.Configured {
		logger.Warn("data source is not configured, sections will render empty",
			slog.String("source", src.Type))
	}

	eventService := service.NewEventService(src.Events, src.Configured, config.Source.FetchTimeout, logger)
	teamService := service.NewTeamService(src.Team, src.Configured, config.Source.FetchTimeout, logger)

	loc, _ := config.Location()
	renderer, err := view.New(loc)
	if err != nil {
		logger.Error("failed to init templates", slog.Any("err", err))
		os.Exit(1)
	}

	handler := httpapi.NewHandler(eventService, teamService, renderer, httpapi.Options{
		Site:           config.Site,
		Deferred:       config.Deferred(),
		AllowedOrigins: config.HTTP.AllowedOrigins,
	}, logger)

	server := &http.Server{
		Addr:              config.HTTP.Addr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: config.HTTP.ReadTimeout,
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server",
			slog.String("addr", server.Addr),
			slog.String("source", src.Type),
			slog.String("render_mode", config.Render.Mode))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), config.HTTP.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
