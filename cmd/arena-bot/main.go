// Package main запускает Discord-бота регистрации команд и status-сервер
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	"arena-team-bot/internal/bot"
	"arena-team-bot/internal/config"
	"arena-team-bot/internal/discord"
	httpapi "arena-team-bot/internal/http"
	"arena-team-bot/internal/metrics"
	"arena-team-bot/internal/repository"
	"arena-team-bot/internal/service"
)

const shutdownTimeout = 5 * time.Second

// snapshotBackend: хранилище снапшота, которое закрывается при остановке.
type snapshotBackend interface {
	service.SnapshotStore
	Close() error
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := pflag.NewFlagSet("arena-bot", pflag.ContinueOnError)
	cfg, err := config.Parse(fs, os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	// Инициализация логгера (JSON)
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	// Контекст для корректного завершения
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Хранилище снапшота
	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}

	// 2. Состояние и сервисы
	state := service.NewState(store, logger)
	if err := state.Load(ctx); err != nil {
		return multierr.Append(fmt.Errorf("load state: %w", err), store.Close())
	}

	session, err := discord.NewSession(discord.Options{
		Token:        cfg.Token,
		GuildID:      cfg.GuildID,
		SyncGlobal:   cfg.SyncGlobal,
		EventTimeout: cfg.EventTimeout,
	}, logger)
	if err != nil {
		return multierr.Append(err, store.Close())
	}
	platform := discord.NewPlatform(session.Discord(), cfg.GuildID)

	teamService := service.NewTeamService(state)
	inviteService := service.NewInviteService(state, platform)
	provisioner := service.NewProvisioner(teamService, platform, logger)

	// 3. Метрики
	m, err := metrics.New(teamService)
	if err != nil {
		return multierr.Append(fmt.Errorf("init metrics: %w", err), store.Close())
	}

	// 4. Обработчики бота и HTTP
	handler := bot.NewHandler(teamService, inviteService, provisioner, platform, m, logger)
	api := httpapi.NewHandler(teamService, m.Handler(), logger)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	if err := session.Open(handler); err != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return multierr.Combine(err, server.Shutdown(shutdownCtx), store.Close())
	}
	logger.Info("bot started", slog.String("guild_id", cfg.GuildID))

	var runErr error
	select {
	case <-ctx.Done():
	case err, ok := <-serverErr:
		if ok {
			runErr = fmt.Errorf("http server: %w", err)
		}
	}

	// Graceful Shutdown
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = multierr.Combine(
		runErr,
		session.Close(),
		server.Shutdown(shutdownCtx),
		store.Close(),
	)
	if err != nil {
		logger.Error("shutdown error", slog.Any("err", err))
		return err
	}

	logger.Info("bot stopped")
	return nil
}

// openStore выбирает Postgres, если задан DSN, иначе JSON-файл.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (snapshotBackend, error) {
	if cfg.DatabaseDSN == "" {
		logger.Info("using file store", slog.String("path", cfg.StateFile))
		return repository.NewFileStore(cfg.StateFile), nil
	}

	db, err := repository.NewPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("init postgres: %w", err)
	}

	repo := repository.NewSnapshotRepo(db, repository.NewTransactionManager(db))
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, multierr.Append(fmt.Errorf("ensure schema: %w", err), repo.Close())
	}
	logger.Info("using postgres store")
	return repo, nil
}
