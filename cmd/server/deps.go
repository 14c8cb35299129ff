package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/gridtrace/gridtrace/internal/config"
	"github.com/gridtrace/gridtrace/internal/handler"
	"github.com/gridtrace/gridtrace/internal/middleware"
	"github.com/gridtrace/gridtrace/internal/pkg/database"
	"github.com/gridtrace/gridtrace/internal/repository/redisrepo"
	"github.com/gridtrace/gridtrace/internal/service"
	"github.com/gridtrace/gridtrace/internal/worker"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *zap.Logger

	// Database connections
	Redis *database.RedisDB

	// Repositories
	PuzzleRepo   *redisrepo.PuzzleRepository
	SolveRunRepo *redisrepo.SolveRunRepository

	// Services
	PuzzleService *service.PuzzleService
	SolveService  *service.SolveService
	ReplayService *service.ReplayService

	// Handlers
	HealthHandler  *handler.HealthHandler
	PuzzlesHandler *handler.PuzzlesHandler
	SolvesHandler  *handler.SolvesHandler
	ReplayHandler  *handler.ReplayHandler
	DocsHandler    *handler.DocsHandler

	// Middleware
	RateLimitMiddleware *middleware.RateLimitMiddleware

	// Task client for async solve runs
	TaskClient *worker.Client
}

// initDependencies initializes all dependencies
func initDependencies(cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	ctx := context.Background()

	redisDB, err := database.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}
	deps.Redis = redisDB

	runTTL := time.Duration(cfg.Solver.TraceTTLDays) * 24 * time.Hour
	deps.PuzzleRepo = redisrepo.NewPuzzleRepository(redisDB)
	deps.SolveRunRepo = redisrepo.NewSolveRunRepository(redisDB, runTTL)

	deps.TaskClient = worker.NewClient(cfg.Redis)

	deps.PuzzleService = service.NewPuzzleService(deps.PuzzleRepo, logger)
	deps.SolveService = service.NewSolveService(deps.PuzzleRepo, deps.SolveRunRepo, deps.TaskClient, logger)
	deps.ReplayService = service.NewReplayService(deps.SolveRunRepo)

	deps.HealthHandler = handler.NewHealthHandler(redisDB.Client, appVersion)
	deps.PuzzlesHandler = handler.NewPuzzlesHandler(deps.PuzzleService, logger)
	deps.SolvesHandler = handler.NewSolvesHandler(deps.SolveService, cfg.Solver.AsyncThreshold, logger)
	deps.ReplayHandler = handler.NewReplayHandler(deps.ReplayService, deps.SolveService, logger)
	deps.DocsHandler = handler.NewDocsHandler()

	if cfg.RateLimit.Enabled {
		deps.RateLimitMiddleware = middleware.NewRateLimitMiddleware(redisDB.Client, middleware.RateLimitConfig{
			Max:    cfg.RateLimit.RequestsPerMinute,
			Window: time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
		})
	}

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() {
	if d.TaskClient != nil {
		d.TaskClient.Close()
	}
	if d.Redis != nil {
		d.Redis.Close()
	}
}
