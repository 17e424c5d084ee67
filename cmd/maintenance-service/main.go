// Package main запускает HTTP-сервис учёта оборудования и заявок на обслуживание
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"maintenance-service/internal/cache"
	"maintenance-service/internal/config"
	httpapi "maintenance-service/internal/http"
	"maintenance-service/internal/logger"
	"maintenance-service/internal/repository"
	"maintenance-service/internal/service"
)

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	// Подключение к БД
	db, err := repository.NewPostgres(ctx, cfg.Database.DSN)
	if err != nil {
		logg.Fatal("failed to init postgres", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.Migrate {
		if err := repository.Migrate(ctx, db); err != nil {
			logg.Fatal("failed to apply migrations", zap.Error(err))
		}
	}

	// Кэш календаря: Redis, если задан адрес
	var calendarCache service.CalendarCache = cache.NopCache{}
	if cfg.Redis.Addr != "" {
		rc, err := cache.NewRedisCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Cache.CalendarTTL)
		if err != nil {
			logg.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer func() { _ = rc.Close() }()
		calendarCache = rc
		logg.Info("calendar cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	// 1. Инициализация репозиториев
	userRepo := repository.NewUserRepo(db)
	teamRepo := repository.NewTeamRepo(db)
	equipmentRepo := repository.NewEquipmentRepo(db)
	requestRepo := repository.NewRequestRepo(db)

	// 2. Инициализация Менеджера Транзакций
	txManager := repository.NewTransactionManager(db)

	// 3. Инициализация сервисов
	services := httpapi.Services{
		Equipment: service.NewEquipmentService(equipmentRepo, requestRepo, teamRepo, userRepo, calendarCache, logg),
		Teams:     service.NewTeamService(teamRepo, userRepo, txManager, calendarCache, logg),
		Users:     service.NewUserService(userRepo, teamRepo),
		Requests:  service.NewRequestService(requestRepo, equipmentRepo, teamRepo, txManager, calendarCache, logg),
		Calendar:  service.NewCalendarService(requestRepo, calendarCache, logg),
	}

	// 4. Инициализация HTTP-обработчика
	handler := httpapi.NewHandler(services, logg, httpapi.Options{
		CORSOrigins:     cfg.HTTP.CORSOrigins,
		DefaultPageSize: cfg.Pagination.PageSize,
	})

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: handler.Router(),
	}

	// Запуск сервера в горутине
	go func() {
		logg.Info("starting http server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error("server error", zap.Error(err))
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
	logg.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logg.Error("server shutdown error", zap.Error(err))
	}

	logg.Info("server stopped")
}
