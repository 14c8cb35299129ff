package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/gridtrace/gridtrace/internal/domain"
	"github.com/gridtrace/gridtrace/internal/dto"
	"github.com/gridtrace/gridtrace/internal/service"
)

// SolvesHandler handles solve run endpoints
type SolvesHandler struct {
	solveService *service.SolveService
	// asyncThreshold is the empty-cell count above which synchronous
	// responses carry an X-Async-Recommended header. Zero disables it.
	asyncThreshold int
	logger         *zap.Logger
}

// NewSolvesHandler creates a new solves handler
func NewSolvesHandler(solveService *service.SolveService, asyncThreshold int, logger *zap.Logger) *SolvesHandler {
	return &SolvesHandler{
		solveService:   solveService,
		asyncThreshold: asyncThreshold,
		logger:         logger,
	}
}

// SolvePuzzle handles POST /api/v1/puzzles/:puzzleId/solve.
// With ?async=true the run is enqueued and returned pending with 202;
// otherwise the solver runs inline and the completed run comes back.
func (h *SolvesHandler) SolvePuzzle(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "puzzleId")
	if err != nil {
		return err
	}

	async := c.QueryBool("async", false)

	run, err := h.solveService.Solve(c.Context(), id, async)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to solve puzzle")
	}

	status := fiber.StatusOK
	if async {
		status = fiber.StatusAccepted
	} else if h.asyncThreshold > 0 && emptyCellCount(run.StartCells) > h.asyncThreshold {
		c.Set("X-Async-Recommended", "true")
	}
	return c.Status(status).JSON(dto.FromSolveRun(run))
}

// GetSolveRun handles GET /api/v1/solves/:runId
func (h *SolvesHandler) GetSolveRun(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "runId")
	if err != nil {
		return err
	}

	run, err := h.solveService.GetRun(c.Context(), id)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to get solve run")
	}

	return c.JSON(dto.FromSolveRun(run))
}

// ListSolveRuns handles GET /api/v1/solves
func (h *SolvesHandler) ListSolveRuns(c *fiber.Ctx) error {
	limit := parseIntParam(c, "limit", 20)
	offset := parseIntParam(c, "offset", 0)

	list, err := h.solveService.ListRuns(c.Context(), limit, offset)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list solve runs")
	}

	return c.JSON(dto.FromSolveRunList(list))
}

// ListPuzzleSolveRuns handles GET /api/v1/puzzles/:puzzleId/solves
func (h *SolvesHandler) ListPuzzleSolveRuns(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "puzzleId")
	if err != nil {
		return err
	}

	limit := parseIntParam(c, "limit", 20)
	offset := parseIntParam(c, "offset", 0)

	list, err := h.solveService.ListRunsByPuzzle(c.Context(), id, limit, offset)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list solve runs")
	}

	return c.JSON(dto.FromSolveRunList(list))
}

func emptyCellCount(cells domain.Cells) int {
	n := 0
	for _, row := range cells {
		for _, d := range row {
			if d == 0 {
				n++
			}
		}
	}
	return n
}

// RegisterRoutes registers solve run routes
func (h *SolvesHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/puzzles/:puzzleId/solve", h.SolvePuzzle)
	api.Get("/puzzles/:puzzleId/solves", h.ListPuzzleSolveRuns)
	api.Get("/solves", h.ListSolveRuns)
	api.Get("/solves/:runId", h.GetSolveRun)
}
