// Undertow analysis engine server — drives the four-pass story pipeline and
// serves the HTTP control API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	agentrt "github.com/100percenttuna/undertow/pkg/agent"
	"github.com/100percenttuna/undertow/pkg/api"
	"github.com/100percenttuna/undertow/pkg/budget"
	"github.com/100percenttuna/undertow/pkg/cleanup"
	"github.com/100percenttuna/undertow/pkg/config"
	"github.com/100percenttuna/undertow/pkg/database"
	"github.com/100percenttuna/undertow/pkg/debate"
	"github.com/100percenttuna/undertow/pkg/escalation"
	"github.com/100percenttuna/undertow/pkg/events"
	"github.com/100percenttuna/undertow/pkg/gateway"
	"github.com/100percenttuna/undertow/pkg/llm"
	"github.com/100percenttuna/undertow/pkg/metrics"
	"github.com/100percenttuna/undertow/pkg/pipeline"
	"github.com/100percenttuna/undertow/pkg/queue"
	"github.com/100percenttuna/undertow/pkg/router"
	"github.com/100percenttuna/undertow/pkg/services"
	"github.com/100percenttuna/undertow/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// Load .env from the config directory (local development convenience)
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	gin.SetMode(getEnv("GIN_MODE", gin.ReleaseMode))

	slog.Info("Starting undertow engine",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()
	registry := metrics.Init()

	// Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL, schema migrated")

	// Services
	storyService := services.NewStoryService(dbClient.Client)
	runService := services.NewRunService(dbClient.Client, storyService)
	ledgerService := services.NewLedgerService(dbClient.Client)
	escalationService := services.NewEscalationService(dbClient.Client, storyService)
	articleService := services.NewArticleService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)

	// Event publisher over NOTIFY
	publisher := events.NewPublisher(dbClient.DB())

	// Budget controller, seeded from the persisted ledger
	budgetCtl := budget.NewController(cfg.Budget)
	daySpent, monthSpent, err := ledgerService.WindowTotals(ctx, time.Now())
	if err != nil {
		slog.Error("Failed to seed budget from ledger", "error", err)
		os.Exit(1)
	}
	budgetCtl.Seed(daySpent, monthSpent)
	budgetCtl.OnExhausted = func(windowKey string) {
		publisher.PublishBudgetAlert(context.Background(), windowKey)
	}
	slog.Info("Budget seeded", "day_spent_usd", daySpent, "month_spent_usd", monthSpent)

	// Provider adapters
	providerCfgs := cfg.Providers.GetAll()
	providers := make(map[string]llm.Provider, len(providerCfgs))
	for name, pCfg := range providerCfgs {
		provider, err := llm.NewProviderFromConfig(name, pCfg)
		if err != nil {
			slog.Error("Failed to build provider adapter", "provider", name, "error", err)
			os.Exit(1)
		}
		providers[name] = provider
		if !pCfg.HasCredential() {
			slog.Warn("Provider has no credential; unavailable until configured",
				"provider", name, "api_key_env", pCfg.APIKeyEnv)
		}
	}

	// Gateway, router, runtime
	gw := gateway.New(providers, providerCfgs, cfg.Retry, cfg.Cache, budgetCtl, ledgerService)
	modelRouter := router.New(cfg, gw)
	runtime := agentrt.NewRuntime(modelRouter, gw, cfg, storyService)

	// Debate, escalation, orchestrator
	deb := debate.New(runtime, cfg.Debate, cfg.Pipeline.ConfidenceDecayPerOrder)
	escalator := escalation.NewManager(cfg.Escalation, escalationService)
	orchestrator := pipeline.New(cfg, runtime, deb, storyService, articleService, escalator, publisher)

	// Worker pool
	podID := getEnv("POD_ID", version.AppName+"-local")
	pool := queue.NewWorkerPool(podID, dbClient.Client, cfg, orchestrator,
		storyService, runService, publisher, nil, modelRouter, gw)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// Retention cleanup
	cleaner := cleanup.NewService(cfg.Retention, eventService, ledgerService)
	cleaner.Start(ctx)

	// HTTP API
	server := api.NewServer(cfg, dbClient, runService, storyService,
		escalationService, ledgerService, pool, budgetCtl, gw, registry)
	go func() {
		if err := server.Start(":" + httpPort); err != nil {
			slog.Error("API server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("API server shutdown failed", "error", err)
	}
	cleaner.Stop()
	pool.Stop()
	slog.Info("Shutdown complete")
}
