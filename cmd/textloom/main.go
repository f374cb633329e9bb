// TextLoom orchestrator server — provides the task HTTP API, manages queue
// workers, and drives the text-to-video pipeline.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/textloom/textloom/pkg/api"
	"github.com/textloom/textloom/pkg/cleanup"
	"github.com/textloom/textloom/pkg/clients"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/database"
	"github.com/textloom/textloom/pkg/pipeline"
	"github.com/textloom/textloom/pkg/poller"
	"github.com/textloom/textloom/pkg/queue"
	"github.com/textloom/textloom/pkg/services"
	"github.com/textloom/textloom/pkg/storage"
	"github.com/textloom/textloom/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configPath := flag.String("config",
		getEnv("TEXTLOOM_CONFIG", "./textloom.yaml"),
		"Path to configuration file")
	flag.Parse()

	// Load .env next to the binary if present
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, continuing with existing environment")
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting TextLoom",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config", *configPath)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configPath)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
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
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan requeue: tasks this pod was processing
	// when it last died go back to pending.
	if err := queue.RequeueStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to requeue startup orphans", "error", err)
		// Non-fatal — the lease reclaimer catches these too
	}

	// 4. Domain services
	taskService := services.NewTaskService(dbClient.Client, cfg.Pipeline.VariantCountMax, cfg.Workspace.Root)
	subTaskService := services.NewSubTaskService(dbClient.Client)
	mediaService := services.NewMediaService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. Collaborator adapters
	fetcher := clients.NewHTTPFetcher()
	analyzer := clients.NewAnalyzerClient(cfg.Collaborators)
	generator := clients.NewScriptClient(cfg.Collaborators)
	merger := clients.NewMergeClient(cfg.Collaborators)
	subtitles := clients.NewSubtitleClient(cfg.Collaborators)
	uploader := storage.NewLocalUploader(cfg.Storage)
	slog.Info("Collaborator clients initialized",
		"analyzer", cfg.Collaborators.MediaAnalyzerURL,
		"script_generator", cfg.Collaborators.ScriptGeneratorURL,
		"video_merge", cfg.Collaborators.VideoMergeURL,
		"subtitle_renderer", cfg.Collaborators.SubtitleRendererURL)

	// 6. Pipeline executor and worker pool
	executor := pipeline.NewTaskExecutor(
		taskService, subTaskService, mediaService,
		cfg.Pipeline, fetcher, analyzer, generator, merger, uploader)

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, taskService, cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 7. Merge poller and cleanup service
	pollerService := poller.NewService(cfg.Poller, taskService, subTaskService, mediaService, merger, subtitles)
	pollerService.Start(ctx)

	cleanupService := cleanup.NewService(cfg.Retention, cfg.Workspace.Root, taskService)
	cleanupService.Start(ctx)

	// 8. HTTP server
	apiServer := api.NewServer(dbClient, taskService, subTaskService, mediaService, workerPool, cfg)
	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: apiServer.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("TextLoom started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: background loops first, then the worker pool
	// (waits for in-flight tasks), then the HTTP server.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	pollerService.Stop()
	cleanupService.Stop()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete tasks will be lease-reclaimed")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
