package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	t.Run("formats code and message", func(t *testing.T) {
		err := NotFound("puzzle")
		assert.Equal(t, "NOT_FOUND: puzzle not found", err.Error())
		assert.Equal(t, http.StatusNotFound, err.StatusCode)
	})

	t.Run("wraps an underlying error", func(t *testing.T) {
		cause := fmt.Errorf("redis: connection refused")
		err := Internal("storage unavailable").WithError(cause)

		assert.ErrorContains(t, err, "connection refused")
		assert.Equal(t, cause, err.Unwrap())
	})

	t.Run("details are attached", func(t *testing.T) {
		err := Validation("digit out of range").WithDetail("digit", "12")
		assert.Equal(t, "12", err.Details["digit"])
	})
}

func TestErrorClassification(t *testing.T) {
	t.Run("through fmt wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading run: %w", NotFound("solve run"))

		assert.True(t, IsNotFound(wrapped))
		assert.False(t, IsValidation(wrapped))
		assert.Equal(t, http.StatusNotFound, GetStatusCode(wrapped))
	})

	t.Run("non-app errors default to internal", func(t *testing.T) {
		err := fmt.Errorf("plain failure")

		assert.False(t, IsAppError(err))
		require.Nil(t, GetAppError(err))
		assert.Equal(t, http.StatusInternalServerError, GetStatusCode(err))
	})

	t.Run("each constructor maps its status", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, Validation("x").StatusCode)
		assert.Equal(t, http.StatusBadRequest, BadRequest("x").StatusCode)
		assert.Equal(t, http.StatusUnprocessableEntity, Unprocessable("x").StatusCode)
		assert.Equal(t, http.StatusConflict, Conflict("x").StatusCode)
		assert.Equal(t, http.StatusTooManyRequests, RateLimited().StatusCode)
		assert.True(t, IsUnprocessable(Unprocessable("x")))
		assert.True(t, IsConflict(Conflict("x")))
		assert.True(t, IsRateLimited(RateLimited()))
	})
}
