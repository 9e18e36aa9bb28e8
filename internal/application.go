package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gridduelinc/gridduel-backend/internal/config"
	"github.com/gridduelinc/gridduel-backend/internal/repository"
	"github.com/gridduelinc/gridduel-backend/internal/repository/storage"
	"github.com/gridduelinc/gridduel-backend/internal/service"
	"github.com/gridduelinc/gridduel-backend/internal/usecase"
	"github.com/gridduelinc/gridduel-backend/transport/rest"
	"github.com/gridduelinc/gridduel-backend/transport/websocket"
)

var (
	ErrAddrNotFound       = errors.New("redis address string is empty")
	ErrUnknownStorageKind = errors.New("unknown storage kind")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	gameRepo, closeStorage, err := openStorage(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open game storage: %w", err)
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close game storage", "error", err)
		}
	}()

	gameUseCase := usecase.NewGameUseCase(
		logger,
		service.NewInvitationService(gameRepo),
		service.NewGameplayService(gameRepo),
		service.NewQueryService(gameRepo),
	)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		restServer := rest.New(logger, gameUseCase)
		if httpErr := restServer.Start(conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameUseCase)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// openStorage builds the game repository on the configured backend and
// returns the close hook that releases it.
func openStorage(ctx context.Context, conf *config.Config) (repository.GameRepository, func() error, error) {
	switch conf.Storage.Kind {
	case config.StorageRedis:
		if conf.Storage.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, conf.Storage.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewGameRepository(redisStorage.Connection), redisStorage.Close, nil

	case config.StorageSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.Storage.SQLite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteGameRepository(sqliteStorage.Connection), sqliteStorage.Close, nil

	case config.StorageMemory:
		return repository.NewMemoryGameRepository(), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStorageKind, conf.Storage.Kind)
	}
}
