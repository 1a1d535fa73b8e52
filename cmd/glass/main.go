package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/glass/internal/analysis"
	rediscache "github.com/davidbz/glass/internal/cache/redis"
	"github.com/davidbz/glass/internal/config"
	"github.com/davidbz/glass/internal/domain"
	"github.com/davidbz/glass/internal/http"
	"github.com/davidbz/glass/internal/http/middleware"
	"github.com/davidbz/glass/internal/observability"
	"github.com/davidbz/glass/internal/ollama"
	"github.com/davidbz/glass/internal/report"
)

const (
	modeAnalyze = "analyze"
	modeServe   = "serve"

	shutdownTimeout  = 10 * time.Second
	redisPingTimeout = 2 * time.Second
)

func main() {
	mode := modeAnalyze
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	container := buildContainer()

	var err error
	switch mode {
	case modeAnalyze:
		err = container.Invoke(runAnalysis)
	case modeServe:
		err = container.Invoke(runServer)
	default:
		fmt.Fprintf(os.Stderr, "usage: %s [%s|%s]\n", os.Args[0], modeAnalyze, modeServe)
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("%s failed: %v", mode, err)
	}
}

func runAnalysis(runner *analysis.Runner) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := runner.Run(ctx); err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	return nil
}

func runServer(server *http.Server) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Invoke(observability.SetLogger); err != nil {
		log.Fatalf("Failed to install logger: %v", err)
	}

	// Inference server client
	if err := container.Provide(func(cfg *ollama.Config) domain.ModelClient {
		return ollama.NewClient(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide model client: %v", err)
	}

	// Answer cache (optional)
	if err := container.Provide(newSuggestionCache); err != nil {
		log.Fatalf("Failed to provide suggestion cache: %v", err)
	}

	// Domain Services
	if err := container.Provide(domain.NewAssistantService); err != nil {
		log.Fatalf("Failed to provide assistant service: %v", err)
	}

	// Batch analysis
	if err := container.Provide(func() *report.Printer {
		return report.NewPrinter(os.Stdout)
	}); err != nil {
		log.Fatalf("Failed to provide report printer: %v", err)
	}
	if err := container.Provide(analysis.NewRunner); err != nil {
		log.Fatalf("Failed to provide analysis runner: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

// newSuggestionCache connects to Redis when configured. A server that does
// not answer disables caching instead of failing startup.
func newSuggestionCache(cfg *config.RedisConfig, logger *zap.Logger) domain.SuggestionCache {
	if !cfg.Enabled() {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	cache := rediscache.NewSuggestionCache(client, cfg.Prefix)

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := cache.Ping(ctx); err != nil {
		logger.Warn("redis unavailable, answer cache disabled",
			observability.String("addr", cfg.Addr),
			observability.Error(err))
		_ = client.Close()
		return nil
	}

	logger.Info("answer cache enabled", observability.String("addr", cfg.Addr))
	return cache
}
