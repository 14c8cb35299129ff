package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/gridtrace/gridtrace/internal/config"
	"github.com/gridtrace/gridtrace/internal/pkg/database"
	"github.com/gridtrace/gridtrace/internal/pkg/logger"
	"github.com/gridtrace/gridtrace/internal/repository/redisrepo"
	"github.com/gridtrace/gridtrace/internal/service"
	"github.com/gridtrace/gridtrace/internal/worker"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.Log
	log.Info("starting worker service")

	// Initialize dependencies
	deps, cleanup, err := initWorkerDependencies(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize dependencies", zap.Error(err))
	}
	defer cleanup()

	// Create worker server
	workerServer, err := worker.NewServer(log, cfg, deps)
	if err != nil {
		log.Fatal("failed to create worker server", zap.Error(err))
	}

	// Start worker in a goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- workerServer.Start()
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Info("shutting down worker...")
		workerServer.Stop()
	case err := <-errCh:
		if err != nil {
			log.Error("worker server error", zap.Error(err))
		}
	}

	log.Info("worker stopped")
}

// initWorkerDependencies initializes dependencies for the worker
func initWorkerDependencies(cfg *config.Config, log *zap.Logger) (*worker.WorkerDependencies, func(), error) {
	ctx := context.Background()

	redisDB, err := database.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	runTTL := time.Duration(cfg.Solver.TraceTTLDays) * 24 * time.Hour
	puzzleRepo := redisrepo.NewPuzzleRepository(redisDB)
	runRepo := redisrepo.NewSolveRunRepository(redisDB, runTTL)

	// The worker executes runs inline; it never enqueues more of them.
	solveService := service.NewSolveService(puzzleRepo, runRepo, nil, log)

	deps := &worker.WorkerDependencies{
		SolveExecutor: solveService,
		IndexPruner:   runRepo,
	}

	cleanup := func() {
		redisDB.Close()
	}

	return deps, cleanup, nil
}
