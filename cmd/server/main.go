package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mwatari/lesson_scheduler/internal/app"
	"github.com/mwatari/lesson_scheduler/internal/config"
	"github.com/mwatari/lesson_scheduler/internal/controller/httpapi"
	"github.com/mwatari/lesson_scheduler/internal/repository"
	"github.com/mwatari/lesson_scheduler/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment, "lesson-scheduler")
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	migrator.Close()

	settingsRepo := repository.NewDaySettingsRepository(pool)
	lessonRepo := repository.NewLessonRepository(pool)
	availRepo := repository.NewAvailabilityRepository(pool)
	weeklyRepo := repository.NewWeeklyMasterRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	timetables := service.NewTimetableService(pool, settingsRepo, lessonRepo, weeklyRepo, logger)
	lessons := service.NewLessonService(pool, settingsRepo, lessonRepo, availRepo, logger)
	availability := service.NewAvailabilityService(settingsRepo, lessonRepo, availRepo, timetables, logger)
	roster := service.NewRosterService(userRepo, logger)

	scheduler := app.NewScheduler(lessons, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	handler := httpapi.NewHandler(timetables, lessons, availability, roster, logger)
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.NewRouter(handler),
	}

	go func() {
		logger.Info("Starting HTTP server",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("environment", cfg.Environment),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
}
