package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/gridtrace/gridtrace/internal/dto"
	apperrors "github.com/gridtrace/gridtrace/internal/pkg/errors"
	"github.com/gridtrace/gridtrace/internal/service"
)

// PuzzlesHandler handles puzzle endpoints
type PuzzlesHandler struct {
	puzzleService *service.PuzzleService
	logger        *zap.Logger
}

// NewPuzzlesHandler creates a new puzzles handler
func NewPuzzlesHandler(puzzleService *service.PuzzleService, logger *zap.Logger) *PuzzlesHandler {
	return &PuzzlesHandler{
		puzzleService: puzzleService,
		logger:        logger,
	}
}

// CreatePuzzle handles POST /api/v1/puzzles
func (h *PuzzlesHandler) CreatePuzzle(c *fiber.Ctx) error {
	var req dto.CreatePuzzleRequest
	if err := dto.ParseAndValidate(c, &req); err != nil {
		return err
	}

	cells, err := req.ToDomainCells()
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	puzzle, conflicts, err := h.puzzleService.Create(c.Context(), req.Name, cells)
	if err != nil {
		if apperrors.IsUnprocessable(err) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":     "Unprocessable Entity",
				"message":   "Puzzle clues conflict",
				"conflicts": conflicts,
			})
		}
		return serviceError(c, h.logger, err, "Failed to create puzzle")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromPuzzle(puzzle))
}

// CreateExamplePuzzle handles POST /api/v1/puzzles/example
func (h *PuzzlesHandler) CreateExamplePuzzle(c *fiber.Ctx) error {
	puzzle, err := h.puzzleService.CreateExample(c.Context())
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create example puzzle")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromPuzzle(puzzle))
}

// GetPuzzle handles GET /api/v1/puzzles/:puzzleId
func (h *PuzzlesHandler) GetPuzzle(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "puzzleId")
	if err != nil {
		return err
	}

	puzzle, err := h.puzzleService.Get(c.Context(), id)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to get puzzle")
	}

	return c.JSON(dto.FromPuzzle(puzzle))
}

// ListPuzzles handles GET /api/v1/puzzles
func (h *PuzzlesHandler) ListPuzzles(c *fiber.Ctx) error {
	limit := parseIntParam(c, "limit", 20)
	offset := parseIntParam(c, "offset", 0)

	list, err := h.puzzleService.List(c.Context(), limit, offset)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list puzzles")
	}

	return c.JSON(dto.FromPuzzleList(list))
}

// DeletePuzzle handles DELETE /api/v1/puzzles/:puzzleId
func (h *PuzzlesHandler) DeletePuzzle(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "puzzleId")
	if err != nil {
		return err
	}

	if err := h.puzzleService.Delete(c.Context(), id); err != nil {
		return serviceError(c, h.logger, err, "Failed to delete puzzle")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateCell handles PUT /api/v1/puzzles/:puzzleId/cells
func (h *PuzzlesHandler) UpdateCell(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "puzzleId")
	if err != nil {
		return err
	}

	var req dto.UpdateCellRequest
	if err := dto.ParseAndValidate(c, &req); err != nil {
		return err
	}

	puzzle, err := h.puzzleService.SetCell(c.Context(), id, *req.Row, *req.Col, uint8(*req.Digit))
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to update cell")
	}

	return c.JSON(dto.FromPuzzle(puzzle))
}

// RegisterRoutes registers puzzle routes
func (h *PuzzlesHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/puzzles", h.CreatePuzzle)
	api.Post("/puzzles/example", h.CreateExamplePuzzle)
	api.Get("/puzzles", h.ListPuzzles)
	api.Get("/puzzles/:puzzleId", h.GetPuzzle)
	api.Delete("/puzzles/:puzzleId", h.DeletePuzzle)
	api.Put("/puzzles/:puzzleId/cells", h.UpdateCell)
}
