package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	t.Parallel()

	detailed := ErrValidationFailed.WithDetails("rating: must be between 0 and 5")

	assert.ErrorIs(t, detailed, ErrValidationFailed)
	assert.NotErrorIs(t, detailed, ErrNotFound)
	assert.Equal(t, "rating: must be between 0 and 5", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	t.Parallel()

	err := ErrRestaurantNotFound.WrapMessage("find restaurant 42")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "RESTAURANT_NOT_FOUND", appErr.ErrorCode())
	assert.Equal(t, "Restaurant not found", appErr.Message())
	assert.Contains(t, err.Error(), "find restaurant 42")
}

func TestDatabaseExecuteError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "save report")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "save report", err.Details())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
}
