package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gridtrace/gridtrace/internal/domain"
	"github.com/gridtrace/gridtrace/internal/dto"
	"github.com/gridtrace/gridtrace/internal/service"
	"github.com/gridtrace/gridtrace/internal/testutil"
)

func newReplayApp(runRepo *testutil.MockSolveRunRepository) *fiber.App {
	app := fiber.New()
	puzzleRepo := new(testutil.MockPuzzleRepository)
	h := NewReplayHandler(
		service.NewReplayService(runRepo),
		service.NewSolveService(puzzleRepo, runRepo, nil, zap.NewNop()),
		zap.NewNop(),
	)
	h.RegisterRoutes(app.Group("/api/v1"))
	return app
}

func TestReplayHandler_GetTrace(t *testing.T) {
	run := testutil.NewCompletedRun(uuid.New(), testutil.ExampleCells())

	t.Run("returns the full event log", func(t *testing.T) {
		runRepo := new(testutil.MockSolveRunRepository)
		runRepo.On("GetByID", mock.Anything, run.ID).Return(run, nil)
		app := newReplayApp(runRepo)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/solves/"+run.ID.String()+"/trace", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result dto.TraceResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, len(run.Trace), result.Total)
		assert.Len(t, result.Events, len(run.Trace))
		assert.Equal(t, run.Trace[0], result.Events[0])
	})

	t.Run("windows the log with offset and limit", func(t *testing.T) {
		runRepo := new(testutil.MockSolveRunRepository)
		runRepo.On("GetByID", mock.Anything, run.ID).Return(run, nil)
		app := newReplayApp(runRepo)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/solves/"+run.ID.String()+"/trace?offset=3&limit=2", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result domain.ReplayWindow
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, 3, result.Offset)
		assert.Len(t, result.Events, 2)
		assert.Equal(t, run.Trace[3], result.Events[0])
	})
}

func TestReplayHandler_GetReplayStep(t *testing.T) {
	run := testutil.NewCompletedRun(uuid.New(), testutil.ExampleCells())

	t.Run("step zero is the starting grid", func(t *testing.T) {
		runRepo := new(testutil.MockSolveRunRepository)
		runRepo.On("GetByID", mock.Anything, run.ID).Return(run, nil)
		app := newReplayApp(runRepo)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/solves/"+run.ID.String()+"/replay/0", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result domain.ReplayStep
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Nil(t, result.Event)
		assert.Equal(t, testutil.ExampleCells(), result.Cells)
	})

	t.Run("final step is the solved grid", func(t *testing.T) {
		runRepo := new(testutil.MockSolveRunRepository)
		runRepo.On("GetByID", mock.Anything, run.ID).Return(run, nil)
		app := newReplayApp(runRepo)

		url := fmt.Sprintf("/api/v1/solves/%s/replay/%d", run.ID, len(run.Trace))
		req := httptest.NewRequest(http.MethodGet, url, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result domain.ReplayStep
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		require.NotNil(t, result.Event)
		assert.Equal(t, testutil.SolvedCells(), result.Cells)
	})

	t.Run("out-of-range step is 400", func(t *testing.T) {
		runRepo := new(testutil.MockSolveRunRepository)
		runRepo.On("GetByID", mock.Anything, run.ID).Return(run, nil)
		app := newReplayApp(runRepo)

		url := fmt.Sprintf("/api/v1/solves/%s/replay/%d", run.ID, len(run.Trace)+1)
		req := httptest.NewRequest(http.MethodGet, url, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("pending run is 409", func(t *testing.T) {
		pending := &domain.SolveRun{
			ID:         uuid.New(),
			Status:     domain.SolveStatusPending,
			StartCells: testutil.ExampleCells(),
		}
		runRepo := new(testutil.MockSolveRunRepository)
		runRepo.On("GetByID", mock.Anything, pending.ID).Return(pending, nil)
		app := newReplayApp(runRepo)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/solves/"+pending.ID.String()+"/replay/0", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestReplayHandler_GetSummary(t *testing.T) {
	t.Run("summarizes a solved run", func(t *testing.T) {
		run := testutil.NewCompletedRun(uuid.New(), testutil.ExampleCells())
		runRepo := new(testutil.MockSolveRunRepository)
		runRepo.On("GetByID", mock.Anything, run.ID).Return(run, nil)
		app := newReplayApp(runRepo)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/solves/"+run.ID.String()+"/summary", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result domain.ReplaySummary
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.True(t, result.Solved)
		assert.Equal(t, 51, result.EmptyCells)
		assert.Equal(t, result.TotalEvents, result.Placements+result.Backtracks)
	})
}
