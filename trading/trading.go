// Package trading wires the mutual trade matching and session provisioning
// engine: matching, session lifecycle, messaging channel health, and their
// persistence. It has no command-line surface; the host application embeds
// App and calls the services directly.
package trading

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/thong1990/t3turbo-sub000/trading/chat"
	"github.com/thong1990/t3turbo-sub000/trading/database"
	"github.com/thong1990/t3turbo-sub000/trading/database/repositories"
	"github.com/thong1990/t3turbo-sub000/trading/logger"
	"github.com/thong1990/t3turbo-sub000/trading/matching"
	"github.com/thong1990/t3turbo-sub000/trading/messaging"
	"github.com/thong1990/t3turbo-sub000/trading/services"
	"github.com/thong1990/t3turbo-sub000/trading/session"
)

type App struct {
	Cfg Config
	DB  *database.DB

	InventoryRepository    repositories.InventoryRepository
	TradeSessionRepository repositories.TradeSessionRepository
	ChatSessionRepository  repositories.ChatSessionRepository

	CardImages *services.CardImageService
	Messenger  messaging.Client

	Matcher        *matching.Engine
	Provisioner    *session.Provisioner
	Lifecycle      *session.Lifecycle
	ChannelMonitor *chat.Monitor
}

func setupLogger(cfg LogConfig) {
	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:     cfg.Level,
			AddSource: cfg.AddSource,
		})
	default:
		handler = logger.NewHandler()
	}
	slog.SetDefault(slog.New(handler))
}

// New connects to the session store and wires all engine services. The
// caller owns the returned App and must Close it.
func New(ctx context.Context, cfg Config) (*App, error) {
	setupLogger(cfg.Log)

	db, err := database.New(ctx, database.DBConfig{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		PoolSize: cfg.DB.PoolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.InitializeSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	images, err := services.NewCardImageService(
		cfg.Spaces.Key,
		cfg.Spaces.Secret,
		cfg.Spaces.Region,
		cfg.Spaces.Bucket,
		cfg.Spaces.CardRoot,
	)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize card image service: %w", err)
	}

	messenger := messaging.NewRestClient(messaging.Config{
		BaseURL:  cfg.Messaging.BaseURL,
		AppID:    cfg.Messaging.AppID,
		APIToken: cfg.Messaging.APIToken,
		Timeout:  time.Duration(cfg.Messaging.TimeoutSeconds) * time.Second,
	})

	inventoryRepo := repositories.NewInventoryRepository(db.BunDB(), images)
	tradeRepo := repositories.NewTradeSessionRepository(db.BunDB())
	chatRepo := repositories.NewChatSessionRepository(db.BunDB())

	app := &App{
		Cfg:                    cfg,
		DB:                     db,
		InventoryRepository:    inventoryRepo,
		TradeSessionRepository: tradeRepo,
		ChatSessionRepository:  chatRepo,
		CardImages:             images,
		Messenger:              messenger,
		Matcher:                matching.NewEngine(inventoryRepo),
		Provisioner:            session.NewProvisioner(tradeRepo, chatRepo, messenger),
		Lifecycle:              session.NewLifecycle(tradeRepo),
		ChannelMonitor:         chat.NewMonitor(tradeRepo, chatRepo, messenger),
	}

	logger.LogSystem("Trade engine initialized",
		slog.String("database", cfg.DB.Database))

	return app, nil
}

// StartExpirySweeper periodically expires stale pending trade sessions and
// chat sessions until ctx is cancelled. Hosts that run their own sweeper can
// skip this.
func (a *App) StartExpirySweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := a.TradeSessionRepository.ExpireOld(ctx); err != nil {
					logger.LogError("Failed to expire trade sessions", err)
				}
				if _, err := a.ChatSessionRepository.ExpireOld(ctx); err != nil {
					logger.LogError("Failed to expire chat sessions", err)
				}
			}
		}
	}()
}

func (a *App) Close() error {
	return a.DB.Close()
}
