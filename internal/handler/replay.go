package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/gridtrace/gridtrace/internal/dto"
	"github.com/gridtrace/gridtrace/internal/service"
)

// ReplayHandler handles trace and replay endpoints
type ReplayHandler struct {
	replayService *service.ReplayService
	solveService  *service.SolveService
	logger        *zap.Logger
}

// NewReplayHandler creates a new replay handler
func NewReplayHandler(replayService *service.ReplayService, solveService *service.SolveService, logger *zap.Logger) *ReplayHandler {
	return &ReplayHandler{
		replayService: replayService,
		solveService:  solveService,
		logger:        logger,
	}
}

// GetTrace handles GET /api/v1/solves/:runId/trace.
// Without query parameters the full event log is returned; offset/limit
// select a window.
func (h *ReplayHandler) GetTrace(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "runId")
	if err != nil {
		return err
	}

	if c.Query("offset") != "" || c.Query("limit") != "" {
		offset := parseIntParam(c, "offset", 0)
		limit := parseIntParam(c, "limit", 200)

		window, err := h.replayService.Window(c.Context(), id, offset, limit)
		if err != nil {
			return serviceError(c, h.logger, err, "Failed to get trace window")
		}
		return c.JSON(window)
	}

	run, err := h.solveService.GetRun(c.Context(), id)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to get trace")
	}

	return c.JSON(dto.FromTrace(run))
}

// GetReplayStep handles GET /api/v1/solves/:runId/replay/:step
func (h *ReplayHandler) GetReplayStep(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "runId")
	if err != nil {
		return err
	}

	index, err := strconv.Atoi(c.Params("step"))
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid step")
	}

	step, err := h.replayService.Step(c.Context(), id, index)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to replay step")
	}

	return c.JSON(step)
}

// GetSummary handles GET /api/v1/solves/:runId/summary
func (h *ReplayHandler) GetSummary(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "runId")
	if err != nil {
		return err
	}

	summary, err := h.replayService.Summary(c.Context(), id)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to summarize solve run")
	}

	return c.JSON(summary)
}

// RegisterRoutes registers replay routes
func (h *ReplayHandler) RegisterRoutes(api fiber.Router) {
	api.Get("/solves/:runId/trace", h.GetTrace)
	api.Get("/solves/:runId/replay/:step", h.GetReplayStep)
	api.Get("/solves/:runId/summary", h.GetSummary)
}
