package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/wealthwise/internal/accounts"
	"github.com/dmitrijs2005/wealthwise/internal/assistant"
	"github.com/dmitrijs2005/wealthwise/internal/cli"
	"github.com/dmitrijs2005/wealthwise/internal/config"
	"github.com/dmitrijs2005/wealthwise/internal/conversations"
	"github.com/dmitrijs2005/wealthwise/internal/kv"
	"github.com/dmitrijs2005/wealthwise/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewDefault(slog.LevelInfo)

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open storage backend: %v", err)
	}
	defer store.Close()

	manager := accounts.NewManager(store, logger, []byte(cfg.SessionSecret), cfg.SessionTTL)
	conversationStore := conversations.NewStore(store, manager, logger)
	completionClient := assistant.NewHTTPClient(cfg.APIBaseURL, cfg.APIKey, cfg.APITimeout, logger)
	orchestrator := assistant.NewOrchestrator(completionClient, logger)

	app := cli.NewApp(manager, conversationStore, orchestrator, logger)

	fmt.Println("WealthWise CLI (type 'help' for commands)")
	app.Run(ctx)
}

func openStore(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return kv.NewMemoryStore(), nil
	case config.BackendSQLite:
		return kv.NewSQLite(ctx, cfg.SQLitePath)
	case config.BackendRedis:
		return kv.NewRedis(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword)
	case config.BackendPostgres:
		return kv.NewPostgres(ctx, cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
